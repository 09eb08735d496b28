// Package logger configures the process-wide slog logger.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

var globalLogger *slog.Logger

// ParseLevel maps debug/info/warn/error to a slog level
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", level)
	}
}

// InitLogger installs a text logger on stderr at the given level
func InitLogger(level string) error {
	return InitLoggerTo(os.Stderr, level)
}

// InitLoggerTo installs a text logger writing to w
func InitLoggerTo(w io.Writer, level string) error {
	slogLevel, err := ParseLevel(level)
	if err != nil {
		return err
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slogLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)

	return nil
}

// GetLogger returns the installed logger, or slog.Default before InitLogger
func GetLogger() *slog.Logger {
	if globalLogger == nil {
		return slog.Default()
	}
	return globalLogger
}

// OrDefault returns l, or GetLogger() when l is nil
func OrDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return GetLogger()
	}
	return l
}
