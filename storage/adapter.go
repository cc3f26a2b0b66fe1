package storage

import (
	"context"
	"time"
)

// Adapter is the pluggable key-value contract shared by rate limiting,
// analytics and template persistence. Implementations must make Increment
// atomic under concurrent access.
type Adapter interface {
	// Get returns the value for key. The boolean reports whether the key
	// existed (and had not expired).
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Increment atomically adds one to the counter at key, creating it at 1
	// when absent, and returns the new value.
	Increment(ctx context.Context, key string) (int64, error)

	// Expire sets the remaining lifetime of key.
	Expire(ctx context.Context, key string, ttl time.Duration) error

	// Ping reports backend health.
	Ping(ctx context.Context) error

	Close() error
}
