package boolexpr

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

type Operator int

const (
	LITERAL Operator = iota
	VARIABLE
	NOT
	AND
	OR
)

func (o Operator) String() string {
	switch o {
	case LITERAL:
		return "LITERAL"
	case VARIABLE:
		return "VARIABLE"
	case NOT:
		return "NOT"
	case AND:
		return "AND"
	case OR:
		return "OR"
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

// Node is a node in an expression tree. It is always one of Literal,
// Variable, Not, And or Or.
type Node interface {
	Operator() Operator
	// String renders the node with every AND written out and only the
	// brackets precedence requires.
	String() string

	node()
}

// Literal is one of the constants 0 and 1.
type Literal struct {
	Value bool
}

// Variable references a single upper case letter that is bound at
// evaluation time.
type Variable struct {
	Name string
}

type Not struct {
	Child Node
}

// And holds at least two children.
type And struct {
	Children []Node
}

// Or holds at least two children.
type Or struct {
	Children []Node
}

func (Literal) Operator() Operator  { return LITERAL }
func (Variable) Operator() Operator { return VARIABLE }
func (Not) Operator() Operator      { return NOT }
func (And) Operator() Operator      { return AND }
func (Or) Operator() Operator       { return OR }

func (Literal) node()  {}
func (Variable) node() {}
func (Not) node()      {}
func (And) node()      {}
func (Or) node()       {}

func (n Literal) String() string {
	if n.Value {
		return "1"
	}
	return "0"
}

func (n Variable) String() string {
	return n.Name
}

func (n Not) String() string {
	return group(n.Child, AND) + string(notMarker)
}

func (n And) String() string {
	return join(n.Children, andMarker, OR)
}

func (n Or) String() string {
	return join(n.Children, orMarker, OR+1)
}

func join(children []Node, marker byte, bracketFrom Operator) string {
	parts := lo.Map(children, func(child Node, _ int) string {
		return group(child, bracketFrom)
	})
	return strings.Join(parts, string(marker))
}

// group wraps a child in brackets when its operator binds no tighter than
// the threshold.
func group(child Node, bracketFrom Operator) string {
	if child.Operator() >= bracketFrom {
		return "(" + child.String() + ")"
	}
	return child.String()
}

// Binding assigns a value to every variable of an expression.
type Binding map[string]bool

// String renders the binding as "A=0 B=1", ordered by variable name.
func (b Binding) String() string {
	names := lo.Keys(b)
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%d", name, toInt(b[name]))
	}
	return strings.Join(parts, " ")
}

// Expression is a parsed expression, ready to be evaluated any number of
// times.
type Expression struct {
	Source     string
	Normalized string
	Root       Node

	variables []string
}

// New creates a new solvable boolean expression based on the given input string
// Example usage:
//
//	expr, err := boolexpr.New("A(B+C')")
//	if err != nil {
//		log.Fatalf("failed to parse expression: %v", err)
//	}
//	fmt.Println(expr.Eval(boolexpr.Binding{"A": true, "B": false, "C": false})) // Output: 1 <nil>
func New(expression string) (*Expression, error) {
	tokens, err := tokenize(expression)
	if err != nil {
		return nil, fmt.Errorf("failed to build tree for expression '%s': %w", expression, err)
	}
	tokens = insertImplicitAnds(tokens)

	root, err := buildTree(tokens)
	if err != nil {
		return nil, fmt.Errorf("failed to build tree for expression '%s': %w", expression, err)
	}

	return &Expression{
		Source:     expression,
		Normalized: render(tokens),
		Root:       root,
		variables:  collectVariables(root),
	}, nil
}

// Variables returns the distinct variable names of the expression, sorted
// ascending.
func (e *Expression) Variables() []string {
	return append([]string(nil), e.variables...)
}

func (e *Expression) Solve(binding Binding) (bool, error) {
	return Solve(e.Root, binding)
}

// Eval is Solve with the result in its public 0/1 form.
func (e *Expression) Eval(binding Binding) (int, error) {
	result, err := e.Solve(binding)
	if err != nil {
		return 0, err
	}
	return toInt(result), nil
}

func (e *Expression) String() string {
	return e.Root.String()
}

func collectVariables(root Node) []string {
	var names []string
	var walk func(Node)
	walk = func(n Node) {
		switch n := n.(type) {
		case Variable:
			names = append(names, n.Name)
		case Not:
			walk(n.Child)
		case And:
			lo.ForEach(n.Children, func(child Node, _ int) { walk(child) })
		case Or:
			lo.ForEach(n.Children, func(child Node, _ int) { walk(child) })
		}
	}
	walk(root)

	names = lo.Uniq(names)
	sort.Strings(names)
	return names
}

func toInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
