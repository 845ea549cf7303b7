package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLogging_Debug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	logger, closeLog, err := setupLogging(true, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Printf("state %s -> %s", "ready", "countdown")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "state ready -> countdown") {
		t.Errorf("expected log line in file, got %q", data)
	}
}

func TestSetupLogging_Disabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	logger, closeLog, err := setupLogging(false, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Printf("discarded")
	closeLog()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected no log file without debug")
	}
}

func TestSetupLogging_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "debug.log")

	if _, _, err := setupLogging(true, path); err == nil {
		t.Error("expected error for a missing directory")
	}
}
