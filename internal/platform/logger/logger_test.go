package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/hollis-dev/storefront-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level falls back to info", "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := Setup(config.ServerConfig{Port: 8080, LogLevel: tt.logLevel})
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, slog.Default(), FromContext(ctx))

	scoped := slog.Default().With("trace_id", "abc123")
	ctx = WithLogger(ctx, scoped)
	assert.Equal(t, scoped, FromContext(ctx))

	fallback := slog.Default().With("component", "test")
	assert.Equal(t, scoped, FromContextOrDefault(ctx, fallback))
	assert.Equal(t, fallback, FromContextOrDefault(context.Background(), fallback))
}
