package cli

import (
	"github.com/spf13/cobra"
)

func newTableCmd(opts *options) *cobra.Command {
	var csvOutput bool

	cmd := &cobra.Command{
		Use:   "table EXPRESSION",
		Short: "Print the truth table of an expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := opts.enumerator().Generate(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if csvOutput {
				return table.WriteCSV(cmd.OutOrStdout())
			}
			return table.Render(cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&csvOutput, "csv", false, "Output the table as CSV")

	return cmd
}
