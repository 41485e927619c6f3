// Package cache provides a pluggable byte cache for forecast responses.
// The forecasting algorithm itself is pure and keeps no cross-call state;
// the cache sits above it and only short-circuits identical requests.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte payloads under string keys with a TTL.
type Cache interface {
	// Get returns the payload for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores the payload under key for at most ttl. A non-positive
	// ttl means the backend default applies.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Close releases backend resources.
	Close() error
}
