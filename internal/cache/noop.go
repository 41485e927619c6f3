package cache

import (
	"context"
	"time"
)

// NoopCache implements Cache but never stores anything. Used when caching
// is disabled in configuration.
type NoopCache struct{}

// NewNoopCache creates a cache that always misses.
func NewNoopCache() *NoopCache {
	return &NoopCache{}
}

// Get always reports a miss.
func (c *NoopCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards the payload.
func (c *NoopCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

// Close is a no-op.
func (c *NoopCache) Close() error {
	return nil
}
