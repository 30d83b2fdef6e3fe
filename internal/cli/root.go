// Package cli implements the pathtrack command line.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/kk-code-lab/pathtrack/internal/config"
	"github.com/kk-code-lab/pathtrack/internal/logging"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// ErrNoMatch and ErrAmbiguous are returned after the outcome has already
// been reported, so Run prints nothing more for them.
var (
	ErrNoMatch   = errors.New("no match")
	ErrAmbiguous = errors.New("ambiguous match")
)

// Exit statuses.
const (
	ExitFound    = 0
	ExitNotFound = 1
	ExitError    = 2
)

type globalFlags struct {
	configPath string
	root       string
	exclude    []string
	all        bool
	nfc        bool
	logLevel   string
	format     string
	long       bool
	noColor    bool
}

// app carries the state resolved for one invocation.
type app struct {
	flags  globalFlags
	cfg    *config.Config
	logger *log.Logger
	// cfgPath is the file the configuration was read from.
	cfgPath string
}

// NewRootCommand creates and returns the root cobra command for pathtrack
func NewRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "pathtrack",
		Short: "Find files and directories by name below a root",
		Long: `pathtrack walks a directory tree depth-first and prints every path whose
final component matches a name.

A segment query such as "dir1/file1.txt" narrows the bare-name matches to
paths that contain the whole segment. Directories named in the exclusion
list (node_modules by default) and hidden entries are never entered; pass
--all to include hidden ones.

Exit code: 0 if something matched, 1 if nothing did, 2 on errors`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.prepare(cmd)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&a.flags.configPath, "config", "", "config file (default $PATHTRACK_CONFIG or the user config dir)")
	f.StringVarP(&a.flags.root, "root", "r", "", "directory to search from (default: working directory)")
	f.StringSliceVarP(&a.flags.exclude, "exclude", "x", nil, "directory names to skip; replaces the configured list")
	f.BoolVarP(&a.flags.all, "all", "a", false, "also search hidden files and directories")
	f.BoolVar(&a.flags.nfc, "nfc", false, "compare names in Unicode NFC")
	f.StringVar(&a.flags.logLevel, "log-level", "", "log level: "+strings.Join(logging.ValidLevels, ", "))
	f.StringVarP(&a.flags.format, "format", "f", "", "output format: text, json or yaml")
	f.BoolVarP(&a.flags.long, "long", "l", false, "show kind, size and modification time")
	f.BoolVar(&a.flags.noColor, "no-color", false, "disable coloured output")

	cmd.AddCommand(newNameCommand(a))
	cmd.AddCommand(newSegmentCommand(a))
	cmd.AddCommand(newDirCommand(a))
	cmd.AddCommand(newRootPathCommand(a))
	cmd.AddCommand(newSetupCommand(a))
	cmd.AddCommand(newConfigCommand(a))

	return cmd
}

// Run executes the command line with args and returns the exit status.
func Run(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err != nil && !errors.Is(err, ErrNoMatch) && !errors.Is(err, ErrAmbiguous) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return ExitCode(err)
}

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitFound
	case errors.Is(err, ErrNoMatch), errors.Is(err, ErrAmbiguous):
		return ExitNotFound
	default:
		return ExitError
	}
}

// prepare resolves the configuration with precedence defaults < file <
// environment < flags, then builds the logger.
func (a *app) prepare(cmd *cobra.Command) error {
	path := a.flags.configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}

	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return err
	}

	fl := cmd.Flags()
	if fl.Changed("root") {
		cfg.Search.Root = a.flags.root
	}
	if fl.Changed("exclude") {
		cfg.Search.Exclude = append([]string{}, a.flags.exclude...)
	}
	if fl.Changed("all") {
		cfg.Search.IncludeHidden = a.flags.all
	}
	if fl.Changed("nfc") {
		cfg.Search.NormalizeUnicode = a.flags.nfc
	}
	if fl.Changed("log-level") {
		cfg.Log.Level = strings.ToLower(strings.TrimSpace(a.flags.logLevel))
	}
	if fl.Changed("format") {
		cfg.Output.Format = strings.ToLower(strings.TrimSpace(a.flags.format))
	}
	if fl.Changed("long") {
		cfg.Output.Long = a.flags.long
	}
	if a.flags.noColor {
		cfg.Output.Color = config.ColorNever
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid flags")
	}

	a.cfg = cfg
	a.cfgPath = path
	a.logger = logging.New(cmd.ErrOrStderr(), cfg.Log.Level)
	a.logger.Debug("configuration resolved", "path", path, "root", cfg.Search.Root, "format", cfg.Output.Format)
	return nil
}
