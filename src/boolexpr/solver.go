package boolexpr

import (
	"fmt"
)

// Solve evaluates the tree under the given binding. Every variable reached
// must be bound, whatever the values of its siblings are; the binding is
// only read.
func Solve(node Node, binding Binding) (bool, error) {
	switch n := node.(type) {
	case Literal:
		return n.Value, nil

	case Variable:
		value, ok := binding[n.Name]
		if !ok {
			return false, NewUnboundVariableError(n.Name)
		}
		return value, nil

	case Not:
		result, err := Solve(n.Child, binding)
		if err != nil {
			return false, fmt.Errorf("failed solving NOT sub-expression: %w", err)
		}
		return !result, nil

	case And:
		return fold(n.Children, binding, true, func(acc, value bool) bool { return acc && value })

	case Or:
		return fold(n.Children, binding, false, func(acc, value bool) bool { return acc || value })
	}

	return false, fmt.Errorf("unknown node type: %T", node)
}

func fold(children []Node, binding Binding, seed bool, combine func(acc, value bool) bool) (bool, error) {
	acc := seed
	for i, child := range children {
		value, err := Solve(child, binding)
		if err != nil {
			return false, fmt.Errorf("failed solving operand %d: %w", i+1, err)
		}
		acc = combine(acc, value)
	}
	return acc, nil
}
