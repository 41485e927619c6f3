package config

import (
	"fmt"
	"time"

	"github.com/tricasthq/tricast/internal/utils"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Forecast ForecastConfig `mapstructure:"forecast"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host     string `mapstructure:"host"`      // Bind address (e.g., 0.0.0.0 for all interfaces)
	HTTPPort int    `mapstructure:"http_port"` // HTTP server port
}

// AuthConfig represents authentication configuration
type AuthConfig struct {
	Enabled bool     `mapstructure:"enabled"`  // Enable/disable API key authentication
	APIKeys []string `mapstructure:"api_keys"` // List of valid API keys
}

// CacheConfig represents forecast response cache configuration
type CacheConfig struct {
	Type       string        `mapstructure:"type"`        // Cache type: memory (default), redis, none
	URL        string        `mapstructure:"url"`         // Redis URL (e.g., redis://localhost:6379)
	Password   string        `mapstructure:"password"`    // Optional Redis password
	DB         int           `mapstructure:"db"`          // Redis database number (default: 0)
	KeyPrefix  string        `mapstructure:"key_prefix"`  // Key prefix for cache entries (default: "tricast")
	TTL        time.Duration `mapstructure:"ttl"`         // Entry time-to-live (default: 10m)
	MaxEntries int           `mapstructure:"max_entries"` // Memory cache capacity (default: 1024)
}

// ForecastConfig holds the defaults applied when a request leaves the
// smoothing parameters unset, plus the service-level input cap.
type ForecastConfig struct {
	Alpha           float64 `mapstructure:"alpha"`             // Level smoothing weight
	Beta            float64 `mapstructure:"beta"`              // Trend smoothing weight
	Gamma           float64 `mapstructure:"gamma"`             // Seasonal smoothing weight
	SeasonalPeriod  int     `mapstructure:"seasonal_period"`   // Observations per seasonal cycle
	Horizon         int     `mapstructure:"horizon"`           // Forecast steps past the series end
	Interval        string  `mapstructure:"interval"`          // Label interval for forecast points (1m, 5m, 1h, 1d, ...)
	MaxSeriesLength int     `mapstructure:"max_series_length"` // Reject series longer than this
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, file path
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}
	if err := c.Cache.Validate(); err != nil {
		return fmt.Errorf("cache config: %w", err)
	}
	if err := c.Forecast.Validate(); err != nil {
		return fmt.Errorf("forecast config: %w", err)
	}
	return nil
}

// Validate validates the server configuration
func (c *ServerConfig) Validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid http_port: %d", c.HTTPPort)
	}
	return nil
}

// Validate validates the cache configuration
func (c *CacheConfig) Validate() error {
	switch c.Type {
	case "", "memory", "redis", "none":
	default:
		return fmt.Errorf("unsupported cache type: %s (supported: memory, redis, none)", c.Type)
	}
	if c.TTL < 0 {
		return fmt.Errorf("ttl must not be negative: %s", c.TTL)
	}
	if c.MaxEntries < 0 {
		return fmt.Errorf("max_entries must not be negative: %d", c.MaxEntries)
	}
	return nil
}

// Validate validates the forecast defaults
func (c *ForecastConfig) Validate() error {
	for name, v := range map[string]float64{
		"alpha": c.Alpha,
		"beta":  c.Beta,
		"gamma": c.Gamma,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be in [0, 1]: %v", name, v)
		}
	}
	if c.SeasonalPeriod <= 0 {
		return fmt.Errorf("seasonal_period must be positive: %d", c.SeasonalPeriod)
	}
	if c.Horizon < 0 {
		return fmt.Errorf("horizon must not be negative: %d", c.Horizon)
	}
	if c.Interval != "" && !utils.ValidInterval(c.Interval) {
		return fmt.Errorf("unsupported interval: %s", c.Interval)
	}
	if c.MaxSeriesLength <= 0 {
		return fmt.Errorf("max_series_length must be positive: %d", c.MaxSeriesLength)
	}
	return nil
}
