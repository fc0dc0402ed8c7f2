package logging

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestToFileWritesDebugRecords(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	path := filepath.Join(t.TempDir(), "debug.log")
	closer, err := ToFile(path)
	if err != nil {
		t.Fatalf("failed to open log file: %v", err)
	}

	slog.Debug("dataset loaded", "items", 3)
	if err := closer.Close(); err != nil {
		t.Fatalf("failed to close log file: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "dataset loaded") || !strings.Contains(string(data), "items=3") {
		t.Fatalf("expected debug record in log file, got %q", data)
	}
}

func TestCommandLoggerSkipsInfo(t *testing.T) {
	logger := NewCommandLogger()
	if logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatalf("expected info records to be filtered")
	}
	if !logger.Enabled(context.Background(), slog.LevelWarn) {
		t.Fatalf("expected warnings to be logged")
	}
}
