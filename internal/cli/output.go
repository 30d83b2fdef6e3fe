package cli

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/kk-code-lab/pathtrack/internal/config"
	"github.com/kk-code-lab/pathtrack/internal/render"
)

func (a *app) printer(out, errOut io.Writer) *render.Printer {
	return &render.Printer{
		Out:    out,
		Err:    errOut,
		Format: a.cfg.Output.Format,
		Color:  a.useColor(out),
		Long:   a.cfg.Output.Long,
		Width:  terminalWidth(out),
	}
}

// stderrPrinter writes plain text to w regardless of the output format.
func (a *app) stderrPrinter(w io.Writer) *render.Printer {
	p := a.printer(w, w)
	p.Format = config.FormatText
	return p
}

func (a *app) useColor(w io.Writer) bool {
	switch a.cfg.Output.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	// color.NoColor honours NO_COLOR and TERM=dumb.
	return !color.NoColor && isTerminal(w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// terminalWidth returns the column count of w, or 0 when w is not a
// terminal.
func terminalWidth(w io.Writer) int {
	if !isTerminal(w) {
		return 0
	}
	width, _, err := term.GetSize(int(w.(*os.File).Fd()))
	if err != nil {
		return 0
	}
	return width
}
