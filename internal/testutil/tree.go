// Package testutil builds throwaway directory trees for tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TempRoot returns a fresh temporary directory with symlinks resolved, so
// paths compare equal to what os.Getwd reports after a chdir into it.
func TempRoot(t testing.TB) string {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}
	return root
}

// MakeTree creates entries under root. Entries are slash-separated relative
// paths; a trailing slash creates a directory, anything else an empty file.
// Missing parents are created.
func MakeTree(t testing.TB, root string, entries ...string) {
	t.Helper()
	for _, entry := range entries {
		full := filepath.Join(root, filepath.FromSlash(strings.TrimSuffix(entry, "/")))
		if strings.HasSuffix(entry, "/") {
			if err := os.MkdirAll(full, 0o755); err != nil {
				t.Fatalf("failed to create directory %s: %v", full, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("failed to create directory %s: %v", filepath.Dir(full), err)
		}
		if err := os.WriteFile(full, nil, 0o644); err != nil {
			t.Fatalf("failed to create file %s: %v", full, err)
		}
	}
}

// Abs joins a slash-separated relative path onto root.
func Abs(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}
