// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Database
	DBPath string `env:"DB_PATH" envDefault:"./data/settleup.db"`

	// Settlement cache. An empty REDIS_URL keeps the cache in SQLite.
	RedisURL                string        `env:"REDIS_URL"                  envDefault:""`
	CacheStoreMaxRetries    int           `env:"CACHE_STORE_MAX_RETRIES"    envDefault:"3"`
	CacheStoreRetryInterval time.Duration `env:"CACHE_STORE_RETRY_INTERVAL" envDefault:"50ms"`

	// Events. An empty NATS_URL disables publishing.
	NATSURL string `env:"NATS_URL" envDefault:""`

	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"`
	HTTPIdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT"     envDefault:"60s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH must not be empty")
	}
	if c.CacheStoreMaxRetries < 0 {
		return fmt.Errorf("CACHE_STORE_MAX_RETRIES must not be negative, got %d", c.CacheStoreMaxRetries)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	return nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return ":" + c.HTTPPort
}
