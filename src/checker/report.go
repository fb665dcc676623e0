package checker

import (
	"fmt"
	"io"

	"github.com/eriklarko/boolean-algebra/src/truthtable"
)

type Step struct {
	Number     int
	Expression string
	// Previous is the expression the step was derived from, the initial
	// expression for the first step.
	Previous   string
	Comparison *truthtable.Comparison
}

type Report struct {
	Initial string

	Valid   []Step
	Invalid *Step
}

func (r *Report) RecordDecision(step Step) {
	if step.Comparison.Equal {
		r.RecordValid(step)
	} else {
		r.RecordInvalid(step)
	}
}

// RecordValid records a step that is equivalent to the initial expression
func (r *Report) RecordValid(step Step) {
	r.Valid = append(r.Valid, step)
}

// RecordInvalid records the step that broke equivalence
func (r *Report) RecordInvalid(step Step) {
	r.Invalid = &step
}

func (r *Report) HasInvalidStep() bool {
	return r.Invalid != nil
}

func (r *Report) Render(w io.Writer) error {
	if !r.HasInvalidStep() {
		_, err := fmt.Fprintf(w, "All %d steps were correct!\n", len(r.Valid))
		return err
	}

	_, err := fmt.Fprintf(w, "Invalid step %d!\n%s != %s\n", r.Invalid.Number, r.Invalid.Previous, r.Invalid.Expression)
	if err != nil {
		return err
	}
	return r.Invalid.Comparison.Render(w)
}
