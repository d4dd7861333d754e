package integration

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTempFile writes content below dir and returns the full path
func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// requireNoError fails the test if err is not nil
func requireNoError(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: %v", msg, err)
	}
}

// requireTrue fails the test if condition is false
func requireTrue(t *testing.T, condition bool, msg string) {
	t.Helper()
	if !condition {
		t.Fatalf("Expected true: %s", msg)
	}
}

// requireEqual fails the test if expected != actual
func requireEqual(t *testing.T, expected, actual interface{}, msg string) {
	t.Helper()
	if expected != actual {
		t.Fatalf("%s: expected %v, got %v", msg, expected, actual)
	}
}

// requireNotEmpty fails the test if value is empty
func requireNotEmpty(t *testing.T, value string, msg string) {
	t.Helper()
	if value == "" {
		t.Fatalf("%s: expected non-empty string", msg)
	}
}

// logTestStart logs the start of a test with area info
func logTestStart(t *testing.T, area, testName string) {
	t.Helper()
	t.Logf("=== %s: %s ===", area, testName)
}
