package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/crm-backend/internal/config"
)

// appName tags every record so logs of the API, migrate and cleanup
// binaries can be told apart from other services in one sink.
const appName = "crm-backend"

// NewLogger builds the process logger, writes to stderr and installs it
// as the slog default.
//
// Format "json" is meant for production; anything else gives text output
// with source locations. Level is debug, info, warn or error and defaults
// to info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	asJSON := strings.EqualFold(strings.TrimSpace(cfg.Format), "json")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !asJSON,
	}

	var handler slog.Handler
	if asJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With(
		slog.String("app", appName),
		slog.String("version", Version),
	)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
