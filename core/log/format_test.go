// File: format_test.go
// Title: Log Format Tests
// Description: Tests for the JSON, text, and console formatters.
// Version: v0.1.0
// Created: 2026-01-13
// Modified: 2026-01-13
//
// Change History:
// - 2026-01-13 v0.1.0: Initial implementation with formatter tests

package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"TEXT", FormatText, false},
		{" console ", FormatConsole, false},
		{"xml", FormatJSON, true},
		{"", FormatJSON, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}

			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestJSONFormatter(t *testing.T) {
	formatter := NewJSONFormatter()

	entry := NewEntry(LevelInfo, "test message").
		WithLogger("test-logger").
		WithField("key", "value").
		WithDuration(1500 * time.Millisecond)

	data, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if result["level"] != "info" {
		t.Errorf("JSON level = %v, want \"info\"", result["level"])
	}

	if result["message"] != "test message" {
		t.Errorf("JSON message = %v, want \"test message\"", result["message"])
	}

	if result["logger"] != "test-logger" {
		t.Errorf("JSON logger = %v, want \"test-logger\"", result["logger"])
	}

	if result["key"] != "value" {
		t.Errorf("JSON custom field = %v, want \"value\"", result["key"])
	}

	if result["duration_ms"] != float64(1500) {
		t.Errorf("JSON duration_ms = %v, want 1500", result["duration_ms"])
	}
}

func TestJSONFormatterWithError(t *testing.T) {
	formatter := NewJSONFormatter()

	entry := NewEntry(LevelError, "operation failed").
		WithError(errors.New("boom"))

	data, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if result["error"] != "boom" {
		t.Errorf("JSON error = %v, want \"boom\"", result["error"])
	}
}

func TestTextFormatter(t *testing.T) {
	formatter := NewTextFormatter()
	formatter.DisableTimestamp = true

	entry := NewEntry(LevelWarn, "something odd").
		WithLogger("lexer").
		WithField("line", 3)

	data, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := string(data)

	expectedParts := []string{"[WRN]", "{lexer}", "something odd", "line=3"}
	for _, part := range expectedParts {
		if !strings.Contains(output, part) {
			t.Errorf("Format() output should contain %q, got %q", part, output)
		}
	}

	if !strings.HasSuffix(output, "\n") {
		t.Error("Format() output should end with a newline")
	}
}

func TestConsoleFormatterColors(t *testing.T) {
	formatter := NewConsoleFormatter()
	formatter.DisableTimestamp = true

	entry := NewEntry(LevelError, "red alert")

	data, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := string(data)

	if !strings.Contains(output, "\033[31m") {
		t.Errorf("Format() output should contain the red color code, got %q", output)
	}

	if !strings.Contains(output, "\033[0m") {
		t.Errorf("Format() output should contain the reset code, got %q", output)
	}
}

func TestConsoleFormatterNoColors(t *testing.T) {
	formatter := NewConsoleFormatter()
	formatter.DisableColors = true
	formatter.DisableTimestamp = true

	entry := NewEntry(LevelError, "plain alert")

	data, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if strings.Contains(string(data), "\033[") {
		t.Errorf("Format() output should not contain ANSI codes, got %q", string(data))
	}
}

func TestGetFormatter(t *testing.T) {
	if _, ok := GetFormatter(FormatJSON).(*JSONFormatter); !ok {
		t.Error("GetFormatter(FormatJSON) should return a *JSONFormatter")
	}

	if _, ok := GetFormatter(FormatText).(*TextFormatter); !ok {
		t.Error("GetFormatter(FormatText) should return a *TextFormatter")
	}

	if _, ok := GetFormatter(FormatConsole).(*ConsoleFormatter); !ok {
		t.Error("GetFormatter(FormatConsole) should return a *ConsoleFormatter")
	}

	// Unknown formats fall back to JSON
	if _, ok := GetFormatter(Format(42)).(*JSONFormatter); !ok {
		t.Error("GetFormatter() should fall back to *JSONFormatter for unknown formats")
	}
}
