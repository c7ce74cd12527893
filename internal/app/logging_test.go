package app

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		result := tt.level.String()
		if result != tt.expected {
			t.Errorf("LogLevel(%d).String() = '%s', expected '%s'", tt.level, result, tt.expected)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"WARNING", LogLevelWarn},
		{"error", LogLevelError},
		{"unknown", LogLevelInfo}, // Default
		{"", LogLevelInfo},        // Default
	}

	for _, tt := range tests {
		result := ParseLogLevel(tt.input)
		if result != tt.expected {
			t.Errorf("ParseLogLevel('%s') = %d, expected %d", tt.input, result, tt.expected)
		}
	}
}

func decodeEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("invalid log line %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf, Prefix: "test"})

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("careful %d", 1)
	logger.Error("broken")

	entries := decodeEntries(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %s", len(entries), buf.String())
	}
	if entries[0]["message"] != "careful 1" {
		t.Errorf("expected formatted message, got %v", entries[0]["message"])
	}
	if entries[0]["level"] != "warn" {
		t.Errorf("expected level warn, got %v", entries[0]["level"])
	}
	if entries[1]["app"] != "test" {
		t.Errorf("expected app field test, got %v", entries[1]["app"])
	}
}

func TestLogger_NoArgsKeepsPercent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf})

	logger.Info("100% done")

	entries := decodeEntries(t, &buf)
	if len(entries) != 1 || entries[0]["message"] != "100% done" {
		t.Errorf("expected literal message, got %s", buf.String())
	}
}

func TestLogger_WithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf})

	logger.WithComponent("input").WithField("state", "bracket").Debug("fallback")

	entries := decodeEntries(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0]["component"] != "input" {
		t.Errorf("expected component input, got %v", entries[0]["component"])
	}
	if entries[0]["state"] != "bracket" {
		t.Errorf("expected state field, got %v", entries[0]["state"])
	}
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelError, Output: &buf})

	logger.Info("hidden")
	logger.SetLevel(LogLevelInfo)
	logger.Info("shown")

	entries := decodeEntries(t, &buf)
	if len(entries) != 1 || entries[0]["message"] != "shown" {
		t.Errorf("expected only the message after SetLevel, got %s", buf.String())
	}
}

func TestNullLogger(t *testing.T) {
	if NewLogger(LoggerConfig{}) != NullLogger {
		t.Error("expected NullLogger for nil output")
	}
	// Must not panic.
	NullLogger.WithComponent("x").Error("dropped %s", "silently")
}

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig()
	if cfg.Level != LogLevelInfo {
		t.Errorf("expected level info, got %v", cfg.Level)
	}
	if cfg.Prefix != "charlie" {
		t.Errorf("expected prefix charlie, got %q", cfg.Prefix)
	}
	if cfg.Output != nil {
		t.Error("expected nil output")
	}
}
