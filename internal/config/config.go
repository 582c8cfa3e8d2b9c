// internal/config/config.go
// Environment-driven configuration for the fusion API and CLI

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendNone     = "none"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port         string        `env:"PORT" envDefault:"8080"`
	Environment  string        `env:"ENVIRONMENT" envDefault:"development"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`

	// Stores, both optional
	RedisURL    string `env:"REDIS_URL"`
	DatabaseURL string `env:"DATABASE_URL"`

	// Result cache
	CacheBackend         string        `env:"CACHE_BACKEND" envDefault:"memory"`
	CacheEnabled         bool          `env:"CACHE_ENABLED" envDefault:"true"`
	CacheMaxEntries      int           `env:"CACHE_MAX_ENTRIES" envDefault:"1024"`
	CacheTTL             time.Duration `env:"CACHE_TTL" envDefault:"24h"`
	CacheTimeout         time.Duration `env:"CACHE_TIMEOUT" envDefault:"200ms"`
	CacheKeyPrefix       string        `env:"CACHE_KEY_PREFIX" envDefault:"fusion:"`
	CacheCleanupInterval time.Duration `env:"CACHE_CLEANUP_INTERVAL" envDefault:"1h"`

	// Destiny matrix
	MatrixTopInsights int `env:"MATRIX_TOP_INSIGHTS" envDefault:"5"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.CacheBackend {
	case BackendMemory, BackendNone:
	case BackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required for the redis cache backend")
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres cache backend")
		}
	default:
		return fmt.Errorf("invalid cache backend: %s", c.CacheBackend)
	}

	if c.CacheMaxEntries < 1 {
		return fmt.Errorf("cache max entries must be positive")
	}
	if c.CacheTTL <= 0 || c.CacheTimeout <= 0 || c.CacheCleanupInterval <= 0 {
		return fmt.Errorf("cache durations must be positive")
	}
	if c.MatrixTopInsights < 1 || c.MatrixTopInsights > 100 {
		return fmt.Errorf("matrix top insights must be between 1 and 100")
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 {
		return fmt.Errorf("server timeouts must be positive")
	}
	return nil
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
