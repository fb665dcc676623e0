package truthtable

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/eriklarko/boolean-algebra/src/boolexpr"
	"github.com/samber/lo"
)

// resultColumn heads the result column of a rendered table
const resultColumn = "X"

type Row struct {
	// Values holds the value of each variable, in the order of
	// Table.Variables.
	Values []bool
	Result bool
}

// Table is the truth table of an expression. Rows are in enumeration order.
type Table struct {
	Expression string
	Variables  []string
	Rows       []Row
}

// Generate builds the truth table of an expression.
func (e *Enumerator) Generate(ctx context.Context, expression string) (*Table, error) {
	expr, err := boolexpr.New(expression)
	if err != nil {
		return nil, fmt.Errorf("failed to parse expression: %w", err)
	}
	return e.GenerateFor(ctx, expr)
}

// GenerateFor builds the truth table of an already parsed expression.
func (e *Enumerator) GenerateFor(ctx context.Context, expr *boolexpr.Expression) (*Table, error) {
	vars := expr.Variables()
	total, err := e.Count(vars)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, total)
	err = e.Each(ctx, vars, func(index int, binding boolexpr.Binding) error {
		result, err := expr.Solve(binding)
		if err != nil {
			return fmt.Errorf("failed to evaluate %s: %w", binding, err)
		}
		rows[index] = Row{
			Values: lo.Map(vars, func(name string, _ int) bool { return binding[name] }),
			Result: result,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate truth table for '%s': %w", expr.Source, err)
	}

	return &Table{
		Expression: expr.Source,
		Variables:  vars,
		Rows:       rows,
	}, nil
}

// Render writes the table as text, one line per row:
//
//	A B | X
//	0 0 | 0
//	0 1 | 1
func (t *Table) Render(w io.Writer) error {
	header := append(append([]string{}, t.Variables...), "|", resultColumn)
	if _, err := fmt.Fprintln(w, strings.Join(header, " ")); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range t.Rows {
		cells := append(bitStrings(row.Values), "|", bitString(row.Result))
		if _, err := fmt.Fprintln(w, strings.Join(cells, " ")); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}
	return nil
}

// WriteCSV writes the table as CSV with a header naming the variables and
// the expression.
func (t *Table) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	header := append(append([]string{}, t.Variables...), t.Expression)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header %v: %w", header, err)
	}

	for _, row := range t.Rows {
		record := append(bitStrings(row.Values), bitString(row.Result))
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %v: %w", record, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func bitStrings(values []bool) []string {
	return lo.Map(values, func(v bool, _ int) string { return bitString(v) })
}

func bitString(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
