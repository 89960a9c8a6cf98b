package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache is a string key/value store with per-entry expiry.
type Cache interface {
	// Has reports whether key holds an unexpired value.
	Has(ctx context.Context, key string) (bool, error)
	// Get returns the value stored at key. The boolean is false on a miss.
	Get(ctx context.Context, key string) (string, bool, error)
	// Put stores value at key. A ttl of zero or less never expires.
	Put(ctx context.Context, key, value string, ttl time.Duration) error
	// Flush removes every entry.
	Flush(ctx context.Context) error
}

// New creates the cache selected by cfg.Driver.
func New(cfg Config) (Cache, error) {
	switch cfg.Driver {
	case "", DriverMemory:
		return NewMemory(cfg.Size)
	case DriverRedis:
		return NewRedis(cfg.RedisURL)
	default:
		return nil, fmt.Errorf("unsupported cache driver: %s", cfg.Driver)
	}
}
