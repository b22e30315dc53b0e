package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEnv(t *testing.T) {
	t.Setenv("STOREFRONT_DATABASE_URL", "postgres://localhost:5432/storefront?sslmode=disable")
	t.Setenv("STOREFRONT_AUTH_JWT_SECRET", strings.Repeat("s", 32))
}

func TestLoadDefaults(t *testing.T) {
	validEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 60, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, 2, cfg.Notify.Workers)
	assert.Equal(t, 100, cfg.Notify.QueueSize)
}

func TestLoadEnvOverrides(t *testing.T) {
	validEnv(t)
	t.Setenv("STOREFRONT_SERVER_PORT", "9090")
	t.Setenv("STOREFRONT_SERVER_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
}

func TestLoadValidation(t *testing.T) {
	t.Run("missing database url", func(t *testing.T) {
		t.Setenv("STOREFRONT_AUTH_JWT_SECRET", strings.Repeat("s", 32))

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("short jwt secret", func(t *testing.T) {
		t.Setenv("STOREFRONT_DATABASE_URL", "postgres://localhost:5432/storefront")
		t.Setenv("STOREFRONT_AUTH_JWT_SECRET", "too-short")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("invalid log level", func(t *testing.T) {
		validEnv(t)
		t.Setenv("STOREFRONT_SERVER_LOG_LEVEL", "loud")

		_, err := Load()
		assert.Error(t, err)
	})
}
