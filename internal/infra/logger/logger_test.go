package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"advisor-ai/internal/infra/config"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewDiscardsWithoutFile(t *testing.T) {
	for _, out := range []string{"", "discard"} {
		log, closer, err := New(config.LoggerConfig{Level: "debug", Output: out})
		if err != nil {
			t.Fatalf("New(%q): %v", out, err)
		}
		log.Info("dropped")
		if err := closer(); err != nil {
			t.Errorf("closer(%q): %v", out, err)
		}
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "advisor.log")
	log, closer, err := New(config.LoggerConfig{Level: "info", Format: "json", Output: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	log.Info("stream completed", "chars", 42)
	if err := closer(); err != nil {
		t.Fatalf("closer: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "stream completed") {
		t.Errorf("log file missing entry: %s", data)
	}
}
