// Package logging configures the process-wide log/slog logger.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Setup installs a text or JSON slog handler writing to w as the default
// logger.
//
// Level values: "debug", "info", "warn", "error"; anything else means "info".
// Format values: "text", "json"; anything else means "text". The effective
// defaults come from config (config.DefaultLogLevel, config.DefaultLogFormat).
func Setup(w io.Writer, level, format string) {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// ParseLevel converts a string log level to slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
