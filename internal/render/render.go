// Package render prints search results as text, JSON or YAML.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
	"gopkg.in/yaml.v3"

	"github.com/kk-code-lab/pathtrack/internal/config"
	fsutil "github.com/kk-code-lab/pathtrack/internal/fs"
	"github.com/kk-code-lab/pathtrack/internal/textutil"
	"github.com/kk-code-lab/pathtrack/pkg/pathtrack"
)

const timeLayout = "2006-01-02 15:04"

// statFn mirrors fs.Stat for test overrides.
var statFn = fsutil.Stat

// Printer writes results. Paths go to Out, advisory text goes to Err so
// Out stays usable in pipelines.
type Printer struct {
	Out    io.Writer
	Err    io.Writer
	Format string
	Color  bool
	Long   bool
	// Width truncates long-format lines from the left; 0 disables it.
	Width int
}

// Entry is the long-format description of one path.
type Entry struct {
	Path     string    `json:"path" yaml:"path"`
	Kind     string    `json:"kind" yaml:"kind"`
	Size     int64     `json:"size" yaml:"size"`
	Modified time.Time `json:"modified" yaml:"modified"`
}

// Report is the structured output document.
type Report struct {
	Query   string           `json:"query" yaml:"query"`
	Code    pathtrack.Status `json:"code" yaml:"code"`
	Paths   []string         `json:"paths" yaml:"paths"`
	Message string           `json:"message,omitempty" yaml:"message,omitempty"`
	Entries []Entry          `json:"entries,omitempty" yaml:"entries,omitempty"`
}

// Print writes res for query in the configured format.
func (p *Printer) Print(query string, res *pathtrack.Result) error {
	switch p.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(p.Out)
		enc.SetIndent("", "  ")
		return errors.WithStack(enc.Encode(p.report(query, res)))
	case config.FormatYAML:
		enc := yaml.NewEncoder(p.Out)
		enc.SetIndent(2)
		if err := enc.Encode(p.report(query, res)); err != nil {
			return errors.WithStack(err)
		}
		return errors.WithStack(enc.Close())
	default:
		return p.printText(res)
	}
}

func (p *Printer) report(query string, res *pathtrack.Result) Report {
	r := Report{Query: query, Code: res.Code, Paths: res.Paths, Message: res.Message}
	if p.Long {
		for _, path := range res.Paths {
			r.Entries = append(r.Entries, describe(path))
		}
	}
	return r
}

func (p *Printer) printText(res *pathtrack.Result) error {
	dirColor := p.paint(color.FgBlue, color.Bold)
	for _, path := range res.Paths {
		var line string
		if p.Long {
			line = p.longLine(describe(path), dirColor)
		} else {
			line = textutil.SanitizeTerminalText(path)
			if p.Color && describe(path).Kind == kindDir {
				line = dirColor.Sprint(line)
			}
		}
		if _, err := fmt.Fprintln(p.Out, line); err != nil {
			return errors.WithStack(err)
		}
	}

	if res.Message != "" && p.Err != nil {
		hint := p.paint(color.FgYellow)
		if _, err := fmt.Fprintln(p.Err, hint.Sprint("hint: "+res.Message)); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

// NotFound reports an empty result on Err.
func (p *Printer) NotFound(query string) {
	if p.Err == nil || p.Format != config.FormatText {
		return
	}
	warn := p.paint(color.FgRed)
	fmt.Fprintln(p.Err, warn.Sprintf("no match for %q", textutil.SanitizeTerminalText(query)))
}

func (p *Printer) longLine(e Entry, dirColor *color.Color) string {
	kind := "-"
	if e.Kind == kindDir {
		kind = "d"
	} else if e.Kind == kindMissing {
		kind = "?"
	}

	prefix := fmt.Sprintf("%s %s  %s  ", kind, textutil.PadRight(formatSize(e.Size), 9), e.Modified.Format(timeLayout))
	if e.Kind == kindMissing {
		prefix = fmt.Sprintf("%s %s  %s  ", kind, textutil.PadRight("-", 9), strings.Repeat(" ", len(timeLayout)))
	}

	path := textutil.SanitizeTerminalText(e.Path)
	if p.Width > 0 {
		path = textutil.TruncateLeft(path, p.Width-textutil.DisplayWidth(prefix))
	}
	if e.Kind == kindDir {
		path = dirColor.Sprint(path)
	}
	return prefix + path
}

func (p *Printer) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if p.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

const (
	kindFile    = "file"
	kindDir     = "dir"
	kindSymlink = "symlink"
	kindMissing = "missing"
)

func describe(path string) Entry {
	info, err := statFn(path)
	if err != nil {
		return Entry{Path: path, Kind: kindMissing}
	}
	kind := kindFile
	switch {
	case info.IsDir:
		kind = kindDir
	case info.IsSymlink:
		kind = kindSymlink
	}
	return Entry{Path: path, Kind: kind, Size: info.Size, Modified: info.Modified}
}

func formatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}
