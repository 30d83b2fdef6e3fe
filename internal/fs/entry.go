package fs

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// Entry represents a single file or directory on disk.
type Entry struct {
	Name      string
	FullPath  string
	IsDir     bool
	IsSymlink bool
	Size      int64
	Modified  time.Time
	Mode      os.FileMode
}

// Stat describes the entry at fullPath. Symlinks are reported as such but
// size and mode come from the link target when it resolves.
func Stat(fullPath string) (Entry, error) {
	linfo, err := os.Lstat(fullPath)
	if err != nil {
		return Entry{}, errors.WithStack(err)
	}

	info := linfo
	isSymlink := linfo.Mode()&os.ModeSymlink != 0
	if isSymlink {
		if target, statErr := os.Stat(fullPath); statErr == nil {
			info = target
		}
	}

	return Entry{
		Name:      filepath.Base(fullPath),
		FullPath:  fullPath,
		IsDir:     info.IsDir(),
		IsSymlink: isSymlink,
		Size:      info.Size(),
		Modified:  info.ModTime(),
		Mode:      info.Mode(),
	}, nil
}
