package ports

import (
	"context"
	"time"
)

// Cache is the optional result-cache capability. Implementations: Redis,
// and an in-memory fallback when Redis is not configured or unreachable.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping() error
	Close() error
}
