package cli

import (
	"github.com/spf13/cobra"

	"github.com/eriklarko/boolean-algebra/src/checker"
)

func newCheckStepsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "checksteps INITIAL STEP...",
		Short:   "Check that each simplification step is equivalent to the initial expression",
		Example: `  boolalg checksteps "AB+AB'" "A(B+B')" "A"`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := checker.CheckSteps(cmd.Context(), opts.enumerator(), args[0], args[1:])
			if err != nil {
				return err
			}

			if err := report.Render(cmd.OutOrStdout()); err != nil {
				return err
			}
			if report.HasInvalidStep() {
				return ErrInvalidStep
			}
			return nil
		},
	}
}
