package cli

import (
	"github.com/spf13/cobra"

	"github.com/eriklarko/boolean-algebra/src/environment"
	"github.com/eriklarko/boolean-algebra/src/tui"
)

func newShellCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
	}
}

func runShell(cmd *cobra.Command, opts *options) error {
	ui := tui.New(opts.enumerator())
	ui.SetInput(cmd.InOrStdin())
	ui.SetOutput(cmd.OutOrStdout())
	ui.SetInteractive(environment.IsInteractive())

	return ui.Run(cmd.Context())
}
