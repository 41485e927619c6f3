package cache

import (
	"fmt"
	"strings"

	"github.com/tricasthq/tricast/internal/config"
)

// New creates a Cache instance based on configuration.
// Default is the in-memory cache if type is not specified.
func New(cfg config.CacheConfig) (Cache, error) {
	switch strings.ToLower(cfg.Type) {
	case "", "memory":
		return NewMemoryCache(cfg.MaxEntries, cfg.TTL), nil

	case "redis":
		return newRedisCache(RedisConfig{
			URL:        cfg.URL,
			Password:   cfg.Password,
			DB:         cfg.DB,
			KeyPrefix:  cfg.KeyPrefix,
			DefaultTTL: cfg.TTL,
		})

	case "none":
		return NewNoopCache(), nil

	default:
		return nil, fmt.Errorf("unsupported cache type: %s (supported: memory, redis, none)", cfg.Type)
	}
}
