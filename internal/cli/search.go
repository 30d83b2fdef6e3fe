package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/kk-code-lab/pathtrack/internal/textutil"
	"github.com/kk-code-lab/pathtrack/pkg/pathtrack"
)

type findFunc func(s *pathtrack.Searcher, query string) (*pathtrack.Result, error)

func newNameCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "name <name>",
		Short: "Print every path whose final component is <name>",
		Long: `Walk the tree below the root and print every file or directory named
exactly <name>. Descendants of a matching directory are printed before the
directory itself.`,
		Example: `  pathtrack name settings.json
  pathtrack name --root ~/src --exclude vendor,node_modules go.mod`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.search(cmd, args[0], (*pathtrack.Searcher).FindByName)
		},
	}
}

func newSegmentCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "segment <segment>",
		Short: "Print the paths that end in <segment>",
		Long: `Search for the last component of <segment> and keep only the paths that
contain the whole segment. When several paths remain a hint on stderr names
the parent folder to add for a unique result.`,
		Example: `  pathtrack segment dir1/file1.txt
  pathtrack segment /index.js`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.search(cmd, args[0], (*pathtrack.Searcher).FindBySegment)
		},
	}
}

func newDirCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dir <query>",
		Short: "Print the directory of a unique match",
		Long: `Resolve <query> to exactly one path and print it if it is a directory,
or its parent directory otherwise. Queries containing a separator run as a
segment search. Used by the shell function printed by "pathtrack setup".

Exit code: 0 on a unique match, 1 when nothing or more than one path matched`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.dir(cmd, args[0])
		},
	}
}

func newRootPathCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "root",
		Short: "Print the directory searches start from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.searcher()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s.Options().Root)
			return errors.WithStack(err)
		},
	}
}

func (a *app) searcher() (*pathtrack.Searcher, error) {
	opts := a.cfg.SearchOptions()
	opts.Logger = a.logger
	return pathtrack.New(opts)
}

func (a *app) search(cmd *cobra.Command, query string, find findFunc) error {
	s, err := a.searcher()
	if err != nil {
		return err
	}
	res, err := find(s, query)
	if err != nil {
		return err
	}
	a.logger.Debug("search finished", "query", query, "code", res.Code, "paths", len(res.Paths))

	p := a.printer(cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err := p.Print(query, res); err != nil {
		return err
	}
	if !res.Found() {
		p.NotFound(query)
		return ErrNoMatch
	}
	return nil
}

func (a *app) dir(cmd *cobra.Command, query string) error {
	s, err := a.searcher()
	if err != nil {
		return err
	}

	find := (*pathtrack.Searcher).FindByName
	if strings.ContainsAny(query, `/\`) {
		find = (*pathtrack.Searcher).FindBySegment
	}
	res, err := find(s, query)
	if err != nil {
		return err
	}

	errOut := cmd.ErrOrStderr()
	switch {
	case !res.Found():
		a.stderrPrinter(errOut).NotFound(query)
		return ErrNoMatch
	case res.Ambiguous():
		// Candidates go to stderr; stdout must stay empty for the shell.
		p := a.stderrPrinter(errOut)
		if err := p.Print(query, res); err != nil {
			return err
		}
		if res.Message == "" {
			fmt.Fprintf(errOut, "hint: %d paths are named %q; use a longer segment such as parent/%s\n",
				len(res.Paths), textutil.SanitizeTerminalText(query), textutil.SanitizeTerminalText(query))
		}
		return ErrAmbiguous
	}

	target := res.Paths[0]
	if !s.Options().Lister.IsDir(target) {
		target = filepath.Dir(target)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), target)
	return errors.WithStack(err)
}
