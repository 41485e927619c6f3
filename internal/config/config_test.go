package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "memory", cfg.Cache.Type)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 12, cfg.Forecast.SeasonalPeriod)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 5580, cfg.Server.HTTPPort)
	assert.Equal(t, 0.5, cfg.Forecast.Alpha)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  http_port: 9000
cache:
  type: none
forecast:
  alpha: 0.8
  seasonal_period: 24
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.HTTPPort)
	assert.Equal(t, "none", cfg.Cache.Type)
	assert.Equal(t, 0.8, cfg.Forecast.Alpha)
	assert.Equal(t, 24, cfg.Forecast.SeasonalPeriod)
	// Untouched sections keep their defaults.
	assert.Equal(t, 0.3, cfg.Forecast.Beta)
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Server.HTTPPort = 0 }},
		{"bad cache type", func(c *Config) { c.Cache.Type = "memcached" }},
		{"negative ttl", func(c *Config) { c.Cache.TTL = -time.Second }},
		{"alpha out of range", func(c *Config) { c.Forecast.Alpha = 1.2 }},
		{"zero period", func(c *Config) { c.Forecast.SeasonalPeriod = 0 }},
		{"negative horizon", func(c *Config) { c.Forecast.Horizon = -1 }},
		{"unsupported interval", func(c *Config) { c.Forecast.Interval = "2h" }},
		{"zero max series length", func(c *Config) { c.Forecast.MaxSeriesLength = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadOrDefault_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  http_port: -5\n"), 0644))

	cfg := LoadOrDefault(path)
	assert.Equal(t, 5580, cfg.Server.HTTPPort)
}
