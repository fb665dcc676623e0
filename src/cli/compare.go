package cli

import (
	"github.com/spf13/cobra"
)

func newCompareCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "compare EXPRESSION1 EXPRESSION2",
		Short: "Compare the truth tables of two expressions",
		Long: `Compare the truth tables of two expressions, listing every variable
assignment the two disagree on. Exits with a non-zero status when the
expressions are not equivalent.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			comparison, err := opts.enumerator().Compare(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			if err := comparison.Render(cmd.OutOrStdout()); err != nil {
				return err
			}
			if !comparison.Equal {
				return ErrInequivalent
			}
			return nil
		},
	}
}
