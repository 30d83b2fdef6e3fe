package fs

import (
	"os"

	"github.com/pkg/errors"
)

// OSLister enumerates directories on the local filesystem.
type OSLister struct{}

// ListChildren returns the names of the immediate entries of dir, sorted by
// name. It fails when dir does not exist or cannot be read.
func (OSLister) ListChildren(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// IsDir reports whether path is a directory, following symlinks. Missing or
// unreadable paths are not directories.
func (OSLister) IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
