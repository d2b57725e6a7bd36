package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	// IncrementWithTTL bumps a counter and starts its expiry on first use.
	IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error)
}
