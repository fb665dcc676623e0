package checker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/eriklarko/boolean-algebra/src/boolexpr"
	"github.com/eriklarko/boolean-algebra/src/truthtable"
)

// StepChecker verifies the steps of a simplification. Every step is
// compared with the initial expression, not with the step before it.
type StepChecker struct {
	enumerator *truthtable.Enumerator
	initial    *boolexpr.Expression
}

func NewStepChecker(enumerator *truthtable.Enumerator, initial string) (*StepChecker, error) {
	expr, err := boolexpr.New(initial)
	if err != nil {
		return nil, fmt.Errorf("failed to parse initial expression: %w", err)
	}

	return &StepChecker{
		enumerator: enumerator,
		initial:    expr,
	}, nil
}

func (sc *StepChecker) Initial() string {
	return sc.initial.Source
}

// Check compares a single step with the initial expression.
func (sc *StepChecker) Check(ctx context.Context, step string) (*truthtable.Comparison, error) {
	expr, err := boolexpr.New(step)
	if err != nil {
		return nil, fmt.Errorf("failed to parse step: %w", err)
	}

	comparison, err := sc.enumerator.CompareExpressions(ctx, sc.initial, expr)
	if err != nil {
		return nil, err
	}

	slog.Debug("checked step", "initial", sc.initial.Source, "step", step, "equal", comparison.Equal)
	return comparison, nil
}

// CheckSteps checks the steps in order and stops at the first one that is
// not equivalent to the initial expression. An expression that cannot be
// parsed or evaluated aborts the check; the report then holds the steps
// accepted so far.
func CheckSteps(ctx context.Context, enumerator *truthtable.Enumerator, initial string, steps []string) (*Report, error) {
	sc, err := NewStepChecker(enumerator, initial)
	if err != nil {
		return nil, err
	}

	report := &Report{Initial: initial}
	previous := initial
	for i, step := range steps {
		comparison, err := sc.Check(ctx, step)
		if err != nil {
			return report, fmt.Errorf("failed to check step %d '%s': %w", i+1, step, err)
		}

		report.RecordDecision(Step{
			Number:     i + 1,
			Expression: step,
			Previous:   previous,
			Comparison: comparison,
		})
		if report.HasInvalidStep() {
			break
		}
		previous = step
	}

	return report, nil
}
