package repository

import (
	"context"
	"time"
)

// CacheRepository defines the TTL key-value contract the engines rely on.
// Implementations must tolerate backend unavailability: callers treat every
// error as a cache miss, they never fail a request over it.
type CacheRepository interface {
	// Get returns the cached bytes, or nil on miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key with a TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a single key.
	Delete(ctx context.Context, key string) error

	// ClearPattern removes every key matching a glob pattern (e.g. "spots:list:*").
	ClearPattern(ctx context.Context, pattern string) error
}
