package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestInitLoggerTo_FiltersByLevel(t *testing.T) {
	defer func(prev *slog.Logger) {
		globalLogger = nil
		slog.SetDefault(prev)
	}(slog.Default())

	var buf bytes.Buffer
	require.NoError(t, InitLoggerTo(&buf, "warn"))

	GetLogger().Info("hidden")
	GetLogger().Warn("shown", "scene", "room")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "scene=room")
}

func TestInitLogger_InvalidLevel(t *testing.T) {
	assert.Error(t, InitLogger("invalid"))
}

func TestGetLogger_BeforeInit(t *testing.T) {
	globalLogger = nil
	assert.Equal(t, slog.Default(), GetLogger())
}

func TestOrDefault(t *testing.T) {
	globalLogger = nil
	l := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, l, OrDefault(l))
	assert.Equal(t, slog.Default(), OrDefault(nil))
}
