// Package cache provides the key/value cache behind the session store, with
// Redis and in-memory drivers. The in-memory driver takes an injectable clock
// so TTL behavior is testable without sleeping.
package cache

import (
	"context"
	"time"
)

// Service is the cache contract consumed by the session store.
type Service interface {
	// Get returns the stored value and whether the key was present and live.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value under key for ttl. A non-positive ttl means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Invalidate removes key. Removing an absent key is not an error.
	Invalidate(ctx context.Context, key string) error
}
