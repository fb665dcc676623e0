package truthtable

import (
	"fmt"
)

// TooManyVariablesError is returned instead of enumerating more bindings
// than the configured limit allows.
type TooManyVariablesError struct {
	Count int
	Max   int
}

func NewTooManyVariablesError(count, limit int) error {
	return &TooManyVariablesError{Count: count, Max: limit}
}

func (e TooManyVariablesError) Error() string {
	return fmt.Sprintf("expression has %d variables, at most %d are allowed (%d bindings)", e.Count, e.Max, 1<<e.Count)
}
