package logging

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger so call sites don't depend on the handler setup.
type Logger struct {
	*slog.Logger
}

// New creates a JSON logger writing to stdout at the given level.
// Unknown levels fall back to info.
func New(level string) *Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	return &Logger{Logger: slog.New(handler)}
}

// Default returns an info-level logger.
func Default() *Logger {
	return New("info")
}

// With returns a logger that includes the given attributes on every record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
