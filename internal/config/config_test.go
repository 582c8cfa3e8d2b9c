package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, BackendMemory, cfg.CacheBackend)
	assert.True(t, cfg.CacheEnabled)
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
	assert.Equal(t, 200*time.Millisecond, cfg.CacheTimeout)
	assert.Equal(t, 5, cfg.MatrixTopInsights)
	assert.False(t, cfg.IsProduction())
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/2")
	t.Setenv("CACHE_TTL", "90m")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("MATRIX_TOP_INSIGHTS", "8")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 90*time.Minute, cfg.CacheTTL)
	assert.False(t, cfg.CacheEnabled)
	assert.Equal(t, 8, cfg.MatrixTopInsights)
	assert.NoError(t, cfg.Validate())
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("CACHE_TTL", "soon")
	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown backend", func(c *Config) { c.CacheBackend = "memcached" }},
		{"redis without url", func(c *Config) { c.CacheBackend = BackendRedis; c.RedisURL = "" }},
		{"postgres without url", func(c *Config) { c.CacheBackend = BackendPostgres; c.DatabaseURL = "" }},
		{"zero entries", func(c *Config) { c.CacheMaxEntries = 0 }},
		{"zero timeout", func(c *Config) { c.CacheTimeout = 0 }},
		{"too many insights", func(c *Config) { c.MatrixTopInsights = 101 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load()
			require.NoError(t, err)
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
