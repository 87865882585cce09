package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/settleup/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "./data/settleup.db", cfg.DBPath)
	assert.Empty(t, cfg.RedisURL)
	assert.Empty(t, cfg.NATSURL)
	assert.Equal(t, 3, cfg.CacheStoreMaxRetries)
	assert.Equal(t, 50*time.Millisecond, cfg.CacheStoreRetryInterval)
	assert.Equal(t, 10*time.Second, cfg.HTTPShutdownTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_PATH", "/tmp/settleup.db")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("NATS_URL", "nats://localhost:4222")
	t.Setenv("CACHE_STORE_MAX_RETRIES", "5")
	t.Setenv("CACHE_STORE_RETRY_INTERVAL", "200ms")
	t.Setenv("HTTP_READ_TIMEOUT", "45s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "/tmp/settleup.db", cfg.DBPath)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, "nats://localhost:4222", cfg.NATSURL)
	assert.Equal(t, 5, cfg.CacheStoreMaxRetries)
	assert.Equal(t, 200*time.Millisecond, cfg.CacheStoreRetryInterval)
	assert.Equal(t, 45*time.Second, cfg.HTTPReadTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unparsable duration", key: "HTTP_READ_TIMEOUT", value: "soon"},
		{name: "unparsable retries", key: "CACHE_STORE_MAX_RETRIES", value: "many"},
		{name: "negative retries", key: "CACHE_STORE_MAX_RETRIES", value: "-1"},
		{name: "unknown log format", key: "LOG_FORMAT", value: "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
