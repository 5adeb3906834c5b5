package app

import (
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/lexikon/internal/config"
)

// NewLogger builds the *slog.Logger for a pipeline run and installs it as
// the process default via slog.SetDefault.
//
// Format "json" emits structured records for log collectors; "text" emits
// human-readable lines with source locations for local runs. Level is one
// of debug, info, warn, error (case-insensitive) and defaults to info.
// Everything goes to os.Stderr so shell redirection of pipeline output
// stays clean.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	level := parseLevel(cfg.Level)

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
