package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"WARN", LevelWarn},
		{"error", LevelError},
		{"unknown", LevelInfo}, // default
		{"", LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseLevel(tt.input)
			if result != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{Level(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := tt.level.String()
			if result != tt.expected {
				t.Errorf("Level.String() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
	}{
		{"json", FormatJSON},
		{"text", FormatText},
		{"unknown", FormatText}, // default
		{"", FormatText},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseFormat(tt.input)
			if result != tt.expected {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}
	return entry
}

func TestLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, LevelDebug, FormatJSON)

	l.Info("changeset rendered", "format", "ldif", "records", 42)

	entry := decodeEntry(t, &buf)
	if entry["level"] != "info" {
		t.Errorf("Expected level=info, got %v", entry["level"])
	}
	if entry["msg"] != "changeset rendered" {
		t.Errorf("Expected msg='changeset rendered', got %v", entry["msg"])
	}
	if entry["format"] != "ldif" {
		t.Errorf("Expected format=ldif, got %v", entry["format"])
	}
	if entry["records"] != float64(42) { // JSON numbers are float64
		t.Errorf("Expected records=42, got %v", entry["records"])
	}
}

func TestLoggerText(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, LevelDebug, FormatText)

	l.Info("changeset rendered", "zeta", 1, "alpha", "x")

	output := buf.String()
	if !strings.Contains(output, "[info] changeset rendered") {
		t.Errorf("Expected level tag and message in output, got: %s", output)
	}
	if !strings.HasSuffix(strings.TrimSpace(output), "alpha=x zeta=1") {
		t.Errorf("Expected fields in key order, got: %s", output)
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, LevelWarn, FormatText)

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")
	l.Error("error message")

	output := buf.String()
	if strings.Contains(output, "debug message") {
		t.Error("Debug message should be filtered")
	}
	if strings.Contains(output, "info message") {
		t.Error("Info message should be filtered")
	}
	if !strings.Contains(output, "warn message") {
		t.Error("Warn message should be present")
	}
	if !strings.Contains(output, "error message") {
		t.Error("Error message should be present")
	}
}

func TestLoggerWithRunID(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, LevelDebug, FormatJSON)

	l.WithRunID("run-123").Info("rendering")

	entry := decodeEntry(t, &buf)
	if entry["run_id"] != "run-123" {
		t.Errorf("Expected run_id=run-123, got %v", entry["run_id"])
	}
}

func TestLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, LevelDebug, FormatJSON)

	l.WithFields("input", "changes.yaml", "compressed", true).Info("rendering")

	entry := decodeEntry(t, &buf)
	if entry["input"] != "changes.yaml" {
		t.Errorf("Expected input=changes.yaml, got %v", entry["input"])
	}
	if entry["compressed"] != true {
		t.Errorf("Expected compressed=true, got %v", entry["compressed"])
	}
}

func TestLoggerCloneIsolation(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, LevelDebug, FormatJSON)

	child := l.WithFields("child_field", "value")

	l.Info("parent message")
	parentEntry := decodeEntry(t, &buf)
	if _, ok := parentEntry["child_field"]; ok {
		t.Error("Parent logger should not have child's fields")
	}

	buf.Reset()
	child.Info("child message")
	childEntry := decodeEntry(t, &buf)
	if childEntry["child_field"] != "value" {
		t.Errorf("Child logger should have its fields, got %v", childEntry["child_field"])
	}
}

func TestNewLogger(t *testing.T) {
	l := New(Config{Level: "debug", Format: "json", Output: "stderr"})
	if l == nil {
		t.Fatal("New returned nil")
	}
}

func TestLoggerCloseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "obavi.log")
	l := New(Config{Level: "info", Format: "text", Output: path}).WithRunID("run-1")

	l.Info("rendered")

	closer, ok := l.(io.Closer)
	if !ok {
		t.Fatal("logger returned by New does not implement io.Closer")
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "rendered") || !strings.Contains(string(data), "run_id=run-1") {
		t.Errorf("unexpected log file contents: %q", data)
	}
}

func TestLoggerCloseStandardStream(t *testing.T) {
	l := New(Config{Output: "stderr"})
	closer, ok := l.(io.Closer)
	if !ok {
		t.Fatal("logger returned by New does not implement io.Closer")
	}
	if err := closer.Close(); err != nil {
		t.Errorf("Close on stderr logger should be a no-op, got %v", err)
	}
}

func TestNopLogger(t *testing.T) {
	l := NewNop()

	// These should not panic
	l.Debug("test")
	l.Info("test")
	l.Warn("test")
	l.Error("test")

	if l.WithRunID("run-123") == nil {
		t.Error("WithRunID returned nil")
	}
	if l.WithFields("key", "value") == nil {
		t.Error("WithFields returned nil")
	}
}

func TestGenerateRunID(t *testing.T) {
	id1 := GenerateRunID()
	id2 := GenerateRunID()

	if id1 == "" || id2 == "" {
		t.Fatal("GenerateRunID returned empty string")
	}
	if id1 == id2 {
		t.Errorf("GenerateRunID returned duplicate IDs: %s", id1)
	}
	if len(strings.Split(id1, "-")) != 5 {
		t.Errorf("Expected UUID format, got %s", id1)
	}
}
