package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/basedlsg/PLugg-sub000/internal/platform/correlation"
)

// ParseLevel maps "debug", "info", "warn" and "error" to a slog level.
// Anything else is info.
func ParseLevel(level string) slog.Level {
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

// NewLogger builds a correlation-aware logger writing to w in "json" or "text" format.
func NewLogger(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(correlation.NewHandler(handler))
}

// InitLogger installs the process-wide default logger. Logs go to stderr so
// stdout stays free for command output.
func InitLogger(level, format string) *slog.Logger {
	logger := NewLogger(os.Stderr, level, format)
	slog.SetDefault(logger)
	return logger
}
