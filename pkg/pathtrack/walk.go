package pathtrack

import (
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/text/unicode/norm"

	fsutil "github.com/kk-code-lab/pathtrack/internal/fs"
)

// isHiddenFn and isProtectedFn mirror the fs helpers for test overrides.
var (
	isHiddenFn    = fsutil.IsHidden
	isProtectedFn = fsutil.IsProtected
)

// walker owns the accumulator for one top-level search.
type walker struct {
	target     string
	exclude    map[string]struct{}
	lister     Lister
	skipHidden bool
	normalize  bool
	logger     *log.Logger

	paths []string
}

func newWalker(target string, opts Options) *walker {
	w := &walker{
		target:     target,
		exclude:    opts.excludeSet(),
		lister:     opts.Lister,
		skipHidden: !opts.IncludeHidden,
		normalize:  opts.NormalizeUnicode,
		logger:     opts.Logger,
		paths:      append([]string(nil), opts.Seed...),
	}
	if w.normalize {
		w.target = norm.NFC.String(target)
	}
	return w
}

// run walks root and derives the result from everything accumulated.
func (w *walker) run(root string) (*Result, error) {
	if err := w.walk(root); err != nil {
		return nil, err
	}
	return resultFrom(w.paths), nil
}

func (w *walker) walk(dir string) error {
	names, err := w.lister.ListChildren(dir)
	if err != nil {
		return &ListError{Path: dir, Err: err}
	}

	for _, name := range names {
		if _, excluded := w.exclude[name]; excluded {
			w.logger.Debug("skipping excluded entry", "dir", dir, "name", name)
			continue
		}

		child := filepath.Join(dir, name)
		if w.skipHidden && (isHiddenFn(child, name) || isProtectedFn(child, name)) {
			w.logger.Debug("skipping hidden entry", "path", child)
			continue
		}

		// Descendants first: a matching directory lands after its own matches.
		if w.lister.IsDir(child) {
			if err := w.walk(child); err != nil {
				return err
			}
		}

		if w.matches(name) {
			w.logger.Debug("match", "path", child)
			w.paths = append(w.paths, child)
		}
	}

	return nil
}

func (w *walker) matches(name string) bool {
	if w.normalize {
		return norm.NFC.String(name) == w.target
	}
	return name == w.target
}
