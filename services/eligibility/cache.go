package eligibility

import (
	"context"
	"time"
)

// Status is the answer to an eligibility check.
type Status struct {
	Eligible      bool
	NextAllowedAt time.Time // zero unless blocked
}

// Cache maps an identity key to its submission window. Record must be an
// atomic last-writer-wins upsert; the new value never depends on the old one.
type Cache interface {
	Check(ctx context.Context, key string) (Status, error)
	Record(ctx context.Context, key string, last, next time.Time) error
}
