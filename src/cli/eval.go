package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/eriklarko/boolean-algebra/src/boolexpr"
)

func newEvalCmd(opts *options) *cobra.Command {
	var values map[string]string

	cmd := &cobra.Command{
		Use:     "eval EXPRESSION",
		Short:   "Evaluate an expression for the given variable values",
		Example: "  boolalg eval \"A(B+C')\" --set A=1,B=0,C=0",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := boolexpr.New(args[0])
			if err != nil {
				return err
			}

			binding, err := parseBinding(values)
			if err != nil {
				return err
			}

			result, err := expr.Eval(binding)
			if err != nil {
				return fmt.Errorf("failed to evaluate '%s': %w", expr.Source, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
	cmd.Flags().StringToStringVarP(&values, "set", "s", map[string]string{}, "Variable values, e.g. A=1,B=0")

	return cmd
}

func parseBinding(values map[string]string) (boolexpr.Binding, error) {
	binding := make(boolexpr.Binding, len(values))
	for name, value := range values {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value '%s' for variable %s, expected 0 or 1", value, name)
		}
		binding[name] = b
	}
	return binding, nil
}
