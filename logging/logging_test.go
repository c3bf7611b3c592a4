package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "chart.log")

	logger, cleanup, err := New(Config{FilePath: path, Level: "debug"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Info("terminal initialized")
	cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected log file to exist: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, `"msg":"terminal initialized"`) {
		t.Errorf("Expected JSON entry with the message, got %q", line)
	}
	if !strings.Contains(line, `"level":"info"`) {
		t.Errorf("Expected lowercase level field, got %q", line)
	}
}

func TestNewLevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.log")

	logger, cleanup, err := New(Config{FilePath: path, Level: "warn"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Info("dropped")
	logger.Warn("kept")
	cleanup()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "dropped") {
		t.Error("Expected info entry to be filtered at warn level")
	}
	if !strings.Contains(string(data), "kept") {
		t.Error("Expected warn entry to be written")
	}
}

func TestNewBadLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.log")

	logger, cleanup, err := New(Config{FilePath: path, Level: "loud"})
	if err != nil {
		t.Fatalf("Expected unknown level to fall back, got %v", err)
	}
	logger.Debug("dropped")
	logger.Info("kept")
	cleanup()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "dropped") {
		t.Error("Expected debug entry to be filtered at the info fallback")
	}
	if !strings.Contains(string(data), "kept") {
		t.Error("Expected info entry to be written")
	}
}

func TestNewEmptyPathIsNop(t *testing.T) {
	logger, cleanup, err := New(Config{})
	if err != nil {
		t.Fatalf("Expected nop logger, got error %v", err)
	}
	logger.Info("goes nowhere")
	cleanup()
}
