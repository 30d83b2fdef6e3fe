package pathtrack

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	fsutil "github.com/kk-code-lab/pathtrack/internal/fs"
)

// DefaultExclude is skipped when Options.Exclude is nil.
var DefaultExclude = []string{"node_modules"}

// Lister enumerates directories for the walker.
type Lister interface {
	// ListChildren returns the bare names of dir's immediate entries. The
	// walker preserves the returned order.
	ListChildren(dir string) ([]string, error)
	// IsDir reports whether path is a directory. It must return false,
	// not fail, for paths that do not exist.
	IsDir(path string) bool
}

// Options configures a search. The zero value searches the working
// directory with DefaultExclude.
type Options struct {
	// Root is where the walk starts. Empty means the working directory;
	// relative roots are resolved against it.
	Root string
	// Exclude lists bare entry names skipped at any depth together with
	// their subtrees. Nil means DefaultExclude, an empty slice excludes
	// nothing. Entries containing a separator never match.
	Exclude []string
	// Seed pre-populates the result list. It is copied, never modified.
	Seed []string
	// IncludeHidden also visits hidden entries and, on Windows, protected
	// system junctions. Both are skipped by default, the way plain ls
	// leaves out dot-files.
	IncludeHidden bool
	// NormalizeUnicode compares names in Unicode NFC form.
	NormalizeUnicode bool
	// Lister defaults to the local filesystem.
	Lister Lister
	// Logger receives debug traces of the walk. Nil discards them.
	Logger *log.Logger
}

// DefaultOptions returns the options used for a zero Options value, with the
// root resolved to the working directory.
func DefaultOptions() (Options, error) {
	return Options{}.withDefaults()
}

func (o Options) withDefaults() (Options, error) {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Lister == nil {
		o.Lister = fsutil.OSLister{}
	}
	if o.Exclude == nil {
		o.Exclude = append([]string(nil), DefaultExclude...)
	}

	switch {
	case o.Root == "":
		root, err := RootPath()
		if err != nil {
			return o, err
		}
		o.Root = root
	case !filepath.IsAbs(o.Root):
		root, err := filepath.Abs(o.Root)
		if err != nil {
			return o, errors.Wrapf(err, "resolving root %q", o.Root)
		}
		o.Root = root
	default:
		o.Root = filepath.Clean(o.Root)
	}

	for _, name := range o.Exclude {
		if strings.ContainsAny(name, `/\`) {
			o.Logger.Warn("exclusion contains a path separator and matches nothing", "exclude", name)
		}
	}

	return o, nil
}

func (o Options) excludeSet() map[string]struct{} {
	set := make(map[string]struct{}, len(o.Exclude))
	for _, name := range o.Exclude {
		set[name] = struct{}{}
	}
	return set
}
