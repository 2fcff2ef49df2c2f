package logging

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// setupTestDir points the package at a temporary log directory and resets
// global state, returning a cleanup function.
func setupTestDir(t *testing.T) (cleanup func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "jsbind-logging-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	origLogDir := logDir
	origInitErr := initErr
	origInitOnce := initOnce
	origRunID := runID
	origRunIDOnce := runIDOnce

	logDir = tempDir
	initErr = nil
	initOnce = sync.Once{}
	runID = ""
	runIDOnce = sync.Once{}

	return func() {
		logDir = origLogDir
		initErr = origInitErr
		initOnce = origInitOnce
		runID = origRunID
		runIDOnce = origRunIDOnce

		os.RemoveAll(tempDir)
	}
}

func TestNewLogger(t *testing.T) {
	cleanup := setupTestDir(t)
	defer cleanup()

	logger, err := NewLogger("test-component")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	if logger.component != "test-component" {
		t.Errorf("Expected component 'test-component', got %q", logger.component)
	}

	if logger.RunID() == "" {
		t.Error("Expected non-empty run ID")
	}

	if logger.LogPath() == "" {
		t.Error("Expected non-empty log path")
	}

	if _, err := os.Stat(logger.LogPath()); os.IsNotExist(err) {
		t.Errorf("Log file does not exist at %s", logger.LogPath())
	}
}

func TestLoggerFormatting(t *testing.T) {
	cleanup := setupTestDir(t)
	defer cleanup()

	logger, err := NewLogger("test")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	logger.Debugf("Debug message")
	logger.Infof("Info message %d", 123)
	logger.Warnf("Warning message")
	logger.Errorf("Error message")

	content, err := os.ReadFile(logger.LogPath())
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	logContent := string(content)

	expectedPatterns := []string{
		"[test] [DEBUG] Debug message",
		"[test] [INFO] Info message 123",
		"[test] [WARN] Warning message",
		"[test] [ERROR] Error message",
	}

	for _, pattern := range expectedPatterns {
		if !strings.Contains(logContent, pattern) {
			t.Errorf("Log content missing expected pattern: %q\nContent:\n%s", pattern, logContent)
		}
	}
}

func TestMultipleComponentsShareFile(t *testing.T) {
	cleanup := setupTestDir(t)
	defer cleanup()

	logger1, err := NewLogger("driver")
	if err != nil {
		t.Fatalf("Failed to create logger1: %v", err)
	}
	defer logger1.Close()

	logger2, err := NewLogger("inspector")
	if err != nil {
		t.Fatalf("Failed to create logger2: %v", err)
	}
	defer logger2.Close()

	if logger1.RunID() != logger2.RunID() {
		t.Errorf("Expected same run ID, got %q and %q", logger1.RunID(), logger2.RunID())
	}

	if logger1.LogPath() != logger2.LogPath() {
		t.Errorf("Expected same log path, got %q and %q", logger1.LogPath(), logger2.LogPath())
	}

	logger1.Infof("Message from driver")
	logger2.Infof("Message from inspector")

	content, err := os.ReadFile(logger1.LogPath())
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	logContent := string(content)
	if !strings.Contains(logContent, "[driver]") {
		t.Error("Log missing driver entries")
	}
	if !strings.Contains(logContent, "[inspector]") {
		t.Error("Log missing inspector entries")
	}
}

func TestGetLogDirectory(t *testing.T) {
	cleanup := setupTestDir(t)
	defer cleanup()

	dir, err := GetLogDirectory()
	if err != nil {
		t.Fatalf("Failed to get log directory: %v", err)
	}

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("Log directory does not exist or is not a directory: %s", dir)
	}
}

func TestLoggerClose(t *testing.T) {
	cleanup := setupTestDir(t)
	defer cleanup()

	logger, err := NewLogger("test")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	if err := logger.Close(); err != nil {
		t.Errorf("First close failed: %v", err)
	}

	// Close again should be safe
	if err := logger.Close(); err != nil {
		t.Errorf("Second close failed: %v", err)
	}
}

func TestLogPathFormat(t *testing.T) {
	cleanup := setupTestDir(t)
	defer cleanup()

	logger, err := NewLogger("test")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	fileName := filepath.Base(logger.LogPath())
	if !strings.HasSuffix(fileName, "-jsbind.log") {
		t.Errorf("Expected log file to end with '-jsbind.log', got %q", fileName)
	}

	runPart := strings.TrimSuffix(fileName, "-jsbind.log")
	if !strings.Contains(runPart, "-") {
		t.Errorf("Expected run ID part to contain dashes (UUID format), got %q", runPart)
	}
}
