package cli

import (
	"github.com/spf13/cobra"

	"github.com/kk-code-lab/pathtrack/internal/shellsetup"
)

var parentShellDetector = shellsetup.DetectParentShellName

func newSetupCommand(a *app) *cobra.Command {
	var funcName string

	cmd := &cobra.Command{
		Use:   "setup [shell]",
		Short: "Print the shell integration snippet",
		Long: `Print a shell function that changes to the directory of a unique match:

  eval "$(pathtrack setup)"        # bash, zsh, sh, ksh
  pathtrack setup fish | source    # fish
  pathtrack setup pwsh | Invoke-Expression

The shell is detected from $SHELL or the parent process when not given.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"bash", "zsh", "sh", "ksh", "fish", "pwsh", "tcsh", "csh", "cmd"},
		RunE: func(cmd *cobra.Command, args []string) error {
			override := ""
			if len(args) == 1 {
				override = args[0]
			}
			shell, err := shellsetup.PrintSetup(cmd.OutOrStdout(), override, shellsetup.Config{
				DetectParent: parentShellDetector,
				FuncName:     funcName,
			})
			a.logger.Debug("printed shell integration", "shell", shell)
			return err
		},
	}
	cmd.Flags().StringVar(&funcName, "name", shellsetup.DefaultFuncName, "name of the generated shell function")

	return cmd
}
