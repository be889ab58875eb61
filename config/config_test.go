package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Empty(t, cfg.RedisAddr)
	assert.False(t, cfg.TracingEnabled)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("STOREFRONT_API_URL", "https://catalog.internal:8443")
	t.Setenv("STOREFRONT_HTTP_TIMEOUT", "5s")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://catalog.internal:8443", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_InvalidBaseURL(t *testing.T) {
	t.Setenv("STOREFRONT_API_URL", "not a url")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STOREFRONT_API_URL")
}

func TestLoad_InvalidSampleRate(t *testing.T) {
	t.Setenv("TRACE_SAMPLE_RATE", "1.5")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TRACE_SAMPLE_RATE")
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{
		PostgresHost: "db",
		PostgresPort: 5432,
		PostgresUser: "storefront",
		PostgresPass: "secret",
		PostgresDB:   "storefront",
		PostgresSSL:  "disable",
	}
	assert.Equal(t,
		"postgres://storefront:secret@db:5432/storefront?sslmode=disable",
		cfg.PostgresDSN(),
	)
}
