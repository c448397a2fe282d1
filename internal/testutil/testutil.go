// Package testutil provides helper functions for testing.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TempDir creates a temporary directory and registers a cleanup function.
// The directory is automatically deleted when the test completes.
func TempDir(t *testing.T) string {
	t.Helper()

	dir, err := os.MkdirTemp("", "fill-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	t.Cleanup(func() {
		if err := os.RemoveAll(dir); err != nil {
			t.Errorf("failed to cleanup temp dir %s: %v", dir, err)
		}
	})

	return dir
}

// WriteTemplate writes content to a temporary template file and returns the path.
// The file is automatically deleted when the test completes.
func WriteTemplate(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(TempDir(t), "template.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write template file: %v", err)
	}

	return path
}

// IsolateConfig points config discovery at an empty home directory and
// clears FILL_* overrides, so tests never read the developer's config.
func IsolateConfig(t *testing.T) {
	t.Helper()

	t.Setenv("HOME", TempDir(t))
	t.Setenv("XDG_CONFIG_HOME", "")
	for _, env := range os.Environ() {
		key, _, _ := strings.Cut(env, "=")
		if strings.HasPrefix(key, "FILL_") {
			t.Setenv(key, "")
		}
	}
}
