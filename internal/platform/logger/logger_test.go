package logger

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskhive/taskhive-api/internal/config"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
	}{
		{name: "debug level", logLevel: "debug"},
		{name: "info level", logLevel: "info"},
		{name: "warn level", logLevel: "warn"},
		{name: "error level", logLevel: "error"},
		{name: "case insensitive", logLevel: "INFO"},
		{name: "invalid falls back to info", logLevel: "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := Setup(config.ServerConfig{LogLevel: tt.logLevel})
			require.NoError(t, err)
			require.NotNil(t, log)
			assert.Same(t, log, slog.Default())
		})
	}
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	base := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := WithLogger(context.Background(), base)

	assert.Same(t, base, FromContext(ctx))
	assert.Same(t, base, FromContextOrDefault(ctx, nil))

	// Without a context logger, the provided default wins.
	def := slog.New(slog.NewTextHandler(os.Stderr, nil))
	assert.Same(t, def, FromContextOrDefault(context.Background(), def))

	// Without either, the process default is returned.
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}
