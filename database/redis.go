package database

import (
	"context"
	"log"
	"time"

	"cxos/config"

	"github.com/redis/go-redis/v9"
)

// Redis is the optional shared client. Nil when REDIS_URL is not configured;
// the eligibility cache then uses the SQL store.
var Redis *redis.Client

// ConnectRedis initializes the Redis client when configured.
func ConnectRedis() {
	if config.AppConfig.RedisURL == "" {
		return
	}

	opts, err := redis.ParseURL(config.AppConfig.RedisURL)
	if err != nil {
		log.Fatalf("Invalid REDIS_URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	Redis = client
	log.Println("Connected to Redis")
}
