// Package logger builds the application *slog.Logger. The chat UI runs on
// the terminal's alternate screen, so console targets would paint over it:
// logs go to a file when one is configured and are dropped otherwise.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"advisor-ai/internal/infra/config"
)

// New creates a configured *slog.Logger. Output is a log file path, or
// "discard"/empty to drop records. The returned closer flushes the file
// handle and should be deferred.
func New(cfg config.LoggerConfig) (*slog.Logger, func() error, error) {
	var writer io.Writer = io.Discard
	closer := func() error { return nil }

	if out := strings.ToLower(strings.TrimSpace(cfg.Output)); out != "" && out != "discard" {
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		writer, closer = f, f.Close
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(writer, opts)
	default:
		handler = slog.NewTextHandler(writer, opts)
	}

	return slog.New(handler), closer, nil
}

// parseLevel converts a string level to slog.Level.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
