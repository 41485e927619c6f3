package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/tricast")
	}

	setDefaults(v)

	// Enable environment variable overrides
	v.SetEnvPrefix("TRICAST")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; use defaults
			return parseConfig(v)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return parseConfig(v)
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.http_port", 5580)

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.url", "redis://localhost:6379")
	v.SetDefault("cache.key_prefix", "tricast")
	v.SetDefault("cache.ttl", "10m")
	v.SetDefault("cache.max_entries", 1024)

	// Forecast defaults
	v.SetDefault("forecast.alpha", 0.5)
	v.SetDefault("forecast.beta", 0.3)
	v.SetDefault("forecast.gamma", 0.3)
	v.SetDefault("forecast.seasonal_period", 12)
	v.SetDefault("forecast.horizon", 12)
	v.SetDefault("forecast.interval", "1h")
	v.SetDefault("forecast.max_series_length", 100000)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output_path", "stdout")
}

// parseConfig parses viper config into Config struct
func parseConfig(v *viper.Viper) (*Config, error) {
	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault loads configuration from file or returns default config
func LoadOrDefault(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:     "0.0.0.0",
			HTTPPort: 5580,
		},
		Cache: CacheConfig{
			Type:       "memory",
			URL:        "redis://localhost:6379",
			KeyPrefix:  "tricast",
			TTL:        10 * time.Minute,
			MaxEntries: 1024,
		},
		Forecast: ForecastConfig{
			Alpha:           0.5,
			Beta:            0.3,
			Gamma:           0.3,
			SeasonalPeriod:  12,
			Horizon:         12,
			Interval:        "1h",
			MaxSeriesLength: 100000,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			OutputPath: "stdout",
		},
	}
}
