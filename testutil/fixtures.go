// Package testutil provides utilities for testing notifykit packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// LoadFixture loads a fixture file from the testdata directory.
// The path is relative to the testdata directory.
func LoadFixture(t *testing.T, path string) []byte {
	t.Helper()

	fullPath := filepath.Join("testdata", path)
	data, err := os.ReadFile(fullPath)
	if err != nil {
		t.Fatalf("failed to load fixture %s: %v", path, err)
	}

	return data
}

// FixturePath returns the path of a fixture under testdata.
func FixturePath(path string) string {
	return filepath.Join("testdata", path)
}

// TempFile creates a temporary file with the given content.
// Returns the file path. File is automatically cleaned up when the test ends.
func TempFile(t *testing.T, name string, content []byte) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, name)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create temp dir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to create temp file %s: %v", name, err)
	}

	return path
}

// TempFileString creates a temporary file with string content.
func TempFileString(t *testing.T, name, content string) string {
	t.Helper()
	return TempFile(t, name, []byte(content))
}
