// Package cache defines the key-value cache used for upstream feed
// responses. It is an explicit, injected dependency with a per-entry
// TTL rather than ambient global state; callers choose the memory or
// Redis implementation at wiring time.
package cache

import (
	"context"
	"time"
)

// Cache stores JSON-serializable values under string keys with a TTL.
type Cache interface {
	// Get unmarshals the cached value for key into dest. The boolean
	// reports whether the key was present and not expired.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set stores value under key for the given TTL.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Delete removes a key; absent keys are not an error.
	Delete(ctx context.Context, key string) error
}
