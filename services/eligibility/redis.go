package eligibility

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "cxos:eligibility:"

// RedisCache stores eligibility windows in Redis. The entry expires when the
// window closes, so a present key always means blocked. SET is last-writer-wins,
// which is exactly the upsert semantics Record requires.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Check(ctx context.Context, key string) (Status, error) {
	value, err := c.client.Get(ctx, redisKeyPrefix+key).Result()
	if err == redis.Nil {
		return Status{Eligible: true}, nil
	}
	if err != nil {
		return Status{}, err
	}

	next, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		// Unreadable entry; treat as absent rather than lock the user out.
		return Status{Eligible: true}, nil
	}
	if !next.After(time.Now()) {
		return Status{Eligible: true}, nil
	}
	return Status{Eligible: false, NextAllowedAt: next}, nil
}

func (c *RedisCache) Record(ctx context.Context, key string, last, next time.Time) error {
	ttl := time.Until(next)
	if ttl <= 0 {
		return nil
	}
	return c.client.Set(ctx, redisKeyPrefix+key, next.Format(time.RFC3339Nano), ttl).Err()
}
