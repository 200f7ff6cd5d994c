package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/phrazzld/social-spark/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	t.Helper()
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })
}

func TestSetup(t *testing.T) {
	restoreDefault(t)

	l, err := Setup(config.ServerConfig{LogLevel: "info"})

	require.NoError(t, err)
	require.NotNil(t, l, "Setup should return the configured logger")
	assert.Equal(t, l, slog.Default(), "Setup should install the logger as default")
}

func TestSetupWritesJSONAtConfiguredLevel(t *testing.T) {
	restoreDefault(t)

	tests := []struct {
		level       string
		debugLogged bool
		infoLogged  bool
	}{
		{level: "debug", debugLogged: true, infoLogged: true},
		{level: "INFO", debugLogged: false, infoLogged: true},
		{level: "warn", debugLogged: false, infoLogged: false},
		{level: "bogus", debugLogged: false, infoLogged: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			l := setup(&buf, config.ServerConfig{LogLevel: tt.level})

			l.Debug("debug message")
			l.Info("info message", "component", "test")

			out := buf.String()
			assert.Equal(t, tt.debugLogged, strings.Contains(out, "debug message"))
			assert.Equal(t, tt.infoLogged, strings.Contains(out, "info message"))

			if tt.infoLogged {
				line := strings.Split(strings.TrimSpace(out), "\n")
				var entry map[string]interface{}
				require.NoError(t, json.Unmarshal([]byte(line[len(line)-1]), &entry))
				assert.Equal(t, "test", entry["component"])
				assert.Equal(t, "INFO", entry["level"])
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, ok := ParseLevel("Error")
	assert.True(t, ok)
	assert.Equal(t, slog.LevelError, level)

	level, ok = ParseLevel("verbose")
	assert.False(t, ok)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestFromContextOrDefault(t *testing.T) {
	defaultLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	customLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	tests := []struct {
		name     string
		ctx      context.Context
		expected *slog.Logger
	}{
		{
			name:     "nil_context_returns_default",
			ctx:      nil,
			expected: defaultLogger,
		},
		{
			name:     "context_without_logger_returns_default",
			ctx:      context.Background(),
			expected: defaultLogger,
		},
		{
			name:     "context_with_logger_returns_context_logger",
			ctx:      WithLogger(context.Background(), customLogger),
			expected: customLogger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FromContextOrDefault(tt.ctx, defaultLogger)
			assert.Same(t, tt.expected, result)
		})
	}
}

func TestWithLogger(t *testing.T) {
	t.Run("valid_logger", func(t *testing.T) {
		customLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		ctx := WithLogger(context.Background(), customLogger)

		assert.Same(t, customLogger, FromContext(ctx))
	})

	t.Run("nil_logger_panics", func(t *testing.T) {
		assert.Panics(t, func() {
			WithLogger(context.Background(), nil)
		})
	})
}
