package pathtrack

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

const sep = string(filepath.Separator)

// RootPath returns the working directory of the process.
func RootPath() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "resolving working directory")
	}
	return wd, nil
}

// Searcher runs queries against one resolved set of options.
type Searcher struct {
	opts Options
}

// New resolves the defaults in opts once and returns a Searcher bound to
// them.
func New(opts Options) (*Searcher, error) {
	resolved, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	return &Searcher{opts: resolved}, nil
}

// Options returns the resolved options.
func (s *Searcher) Options() Options {
	return s.opts
}

// FindByName returns every path under the root whose final component is
// name.
func FindByName(name string, opts Options) (*Result, error) {
	s, err := New(opts)
	if err != nil {
		return nil, err
	}
	return s.FindByName(name)
}

// FindBySegment returns the paths under the root that end in the last
// component of segment and contain the whole segment.
func FindBySegment(segment string, opts Options) (*Result, error) {
	s, err := New(opts)
	if err != nil {
		return nil, err
	}
	return s.FindBySegment(segment)
}

// FindByName is the method form of the package-level FindByName.
func (s *Searcher) FindByName(name string) (*Result, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	s.opts.Logger.Debug("searching by name", "name", name, "root", s.opts.Root)
	return newWalker(name, s.opts).run(s.opts.Root)
}

// FindBySegment is the method form of the package-level FindBySegment.
func (s *Searcher) FindBySegment(segment string) (*Result, error) {
	q, err := parseSegment(segment)
	if err != nil {
		return nil, err
	}
	s.opts.Logger.Debug("searching by segment", "segment", segment, "target", q.target, "root", s.opts.Root)

	res, err := newWalker(q.target, s.opts).run(s.opts.Root)
	if err != nil {
		return nil, err
	}
	if !res.Found() {
		return res, nil
	}

	kept := filterPaths(res.Paths, func(p string) bool {
		return q.containedIn(p, s.opts.NormalizeUnicode)
	})
	narrowed := resultFrom(kept)
	if narrowed.Ambiguous() {
		narrowed.Message = q.ambiguityMessage(len(kept))
	}
	return narrowed, nil
}

func validateName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return errors.Wrapf(ErrInvalidQuery, "name %q", name)
	case strings.ContainsAny(name, `/\`):
		return errors.Wrapf(ErrInvalidQuery, "name %q contains a path separator", name)
	}
	return nil
}

type segmentQuery struct {
	raw    string
	target string
	needle string
	first  string
}

// parseSegment converts the segment to native separators, takes the last
// cleaned component as the target and keeps the segment itself, minus any
// trailing separators, as the containment needle. A leading separator is
// kept so "/a.txt" only matches whole components.
func parseSegment(segment string) (segmentQuery, error) {
	native := filepath.FromSlash(segment)
	cleaned := filepath.Clean(native)
	target := filepath.Base(cleaned)
	if segment == "" || target == "." || target == ".." || target == sep {
		return segmentQuery{}, errors.Wrapf(ErrInvalidQuery, "segment %q", segment)
	}

	first := target
	for _, part := range strings.Split(cleaned, sep) {
		if part != "" && part != "." {
			first = part
			break
		}
	}

	return segmentQuery{
		raw:    segment,
		target: target,
		needle: strings.TrimRight(native, sep),
		first:  first,
	}, nil
}

func (q segmentQuery) containedIn(path string, normalize bool) bool {
	if normalize {
		return strings.Contains(norm.NFC.String(path), norm.NFC.String(q.needle))
	}
	return strings.Contains(path, q.needle)
}

func (q segmentQuery) ambiguityMessage(n int) string {
	return fmt.Sprintf("%d paths match %q; prefix it with the parent folder of %q for a unique result", n, q.raw, q.first)
}

func filterPaths(paths []string, keep func(string) bool) []string {
	var out []string
	for _, p := range paths {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
