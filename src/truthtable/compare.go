package truthtable

import (
	"context"
	"fmt"
	"io"

	"github.com/eriklarko/boolean-algebra/src/boolexpr"
	"github.com/samber/lo"
)

// Mismatch is a binding the two compared expressions disagree on.
type Mismatch struct {
	Binding boolexpr.Binding
	Left    int
	Right   int
}

type Comparison struct {
	Left      string
	Right     string
	Variables []string
	// Mismatches are in enumeration order.
	Mismatches []Mismatch
	Equal      bool
}

// Compare checks whether two expressions agree on every binding of the
// first expression's variables. The second expression must not use a
// variable the first one doesn't.
func (e *Enumerator) Compare(ctx context.Context, expr1, expr2 string) (*Comparison, error) {
	left, err := boolexpr.New(expr1)
	if err != nil {
		return nil, fmt.Errorf("failed to parse first expression: %w", err)
	}
	right, err := boolexpr.New(expr2)
	if err != nil {
		return nil, fmt.Errorf("failed to parse second expression: %w", err)
	}
	return e.CompareExpressions(ctx, left, right)
}

func (e *Enumerator) CompareExpressions(ctx context.Context, left, right *boolexpr.Expression) (*Comparison, error) {
	vars := left.Variables()
	if missing := lo.Without(right.Variables(), vars...); len(missing) > 0 {
		return nil, boolexpr.NewVariableSetMismatchError(missing)
	}

	total, err := e.Count(vars)
	if err != nil {
		return nil, err
	}

	// one slot per binding, nil where both sides agree
	outcomes := make([]*Mismatch, total)
	err = e.Each(ctx, vars, func(index int, binding boolexpr.Binding) error {
		l, err := left.Eval(binding)
		if err != nil {
			return fmt.Errorf("failed solving left expression: %w", err)
		}
		r, err := right.Eval(binding)
		if err != nil {
			return fmt.Errorf("failed solving right expression: %w", err)
		}

		if l != r {
			outcomes[index] = &Mismatch{Binding: binding, Left: l, Right: r}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compare '%s' with '%s': %w", left.Source, right.Source, err)
	}

	mismatches := lo.FilterMap(outcomes, func(m *Mismatch, _ int) (Mismatch, bool) {
		if m == nil {
			return Mismatch{}, false
		}
		return *m, true
	})

	return &Comparison{
		Left:       left.Source,
		Right:      right.Source,
		Variables:  vars,
		Mismatches: mismatches,
		Equal:      len(mismatches) == 0,
	}, nil
}

// Render writes every failing binding followed by the verdict.
func (c *Comparison) Render(w io.Writer) error {
	for _, m := range c.Mismatches {
		_, err := fmt.Fprintf(w, "Failure with parameters:\n%s (%d != %d)\n", m.Binding, m.Left, m.Right)
		if err != nil {
			return fmt.Errorf("failed to write mismatch: %w", err)
		}
	}

	if c.Equal {
		_, err := fmt.Fprintln(w, "Statements are identical")
		return err
	}
	_, err := fmt.Fprintf(w, "Statements are NOT identical\nFailures encountered: %d\n", len(c.Mismatches))
	return err
}
