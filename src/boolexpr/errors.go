package boolexpr

import (
	"fmt"
	"strings"
)

// ParseError is returned when an expression, or one of its sub-expressions,
// cannot be turned into a tree.
type ParseError struct {
	Expression string
	// Position is the byte offset the problem was found at, -1 if unknown.
	Position int
	Reason   string
}

// NewParseError creates a new ParseError.
func NewParseError(expression string, position int, reason string) error {
	return &ParseError{Expression: expression, Position: position, Reason: reason}
}

func (e ParseError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("cannot parse '%s': %s", e.Expression, e.Reason)
	}
	return fmt.Sprintf("cannot parse '%s' at position %d: %s", e.Expression, e.Position, e.Reason)
}

// UnboundVariableError is returned when an expression references a variable
// the binding has no value for.
type UnboundVariableError struct {
	VariableName string
}

// NewUnboundVariableError creates a new UnboundVariableError with the given variable name.
func NewUnboundVariableError(variableName string) error {
	return &UnboundVariableError{VariableName: variableName}
}

func (e UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable: %s", e.VariableName)
}

// VariableSetMismatchError is returned when the second of two compared
// expressions uses variables the first one does not.
type VariableSetMismatchError struct {
	Missing []string
}

func NewVariableSetMismatchError(missing []string) error {
	return &VariableSetMismatchError{Missing: missing}
}

func (e VariableSetMismatchError) Error() string {
	return fmt.Sprintf("variables missing from the first expression: %s", strings.Join(e.Missing, ", "))
}
