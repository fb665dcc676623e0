package boolexpr_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/eriklarko/boolean-algebra/src/boolexpr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiterals(t *testing.T) {
	tests := map[string]int{
		"1":     1,
		"0":     0,
		"1'":    0,
		"0'":    1,
		"10":    0,
		"1+0":   1,
		"(0+0)": 0,
	}
	runSolverTests(t, tests, boolexpr.Binding{})
}

func TestVariables(t *testing.T) {
	binding := boolexpr.Binding{
		"A": true,
		"B": false,
	}
	tests := map[string]int{
		"A": 1, // A is true in the binding
		"B": 0, // B is false in the binding

		"A'": 0,
		"B'": 1,

		"AB":  0,
		"A+B": 1,
	}
	runSolverTests(t, tests, binding)
}

func TestImplicitAnd(t *testing.T) {
	runSolverTests(t, map[string]int{"AB": 1}, boolexpr.Binding{"A": true, "B": true})
	runSolverTests(t, map[string]int{"AB": 0}, boolexpr.Binding{"A": true, "B": false})
}

func TestPrecedence(t *testing.T) {
	// AND binds tighter than OR
	runSolverTests(t, map[string]int{"A+B*C": 1, "A+BC": 1}, boolexpr.Binding{"A": false, "B": true, "C": true})
	runSolverTests(t, map[string]int{"A+B*C": 0, "A+BC": 0}, boolexpr.Binding{"A": false, "B": true, "C": false})

	// NOT binds tighter than AND: A'B is (A')*B
	runSolverTests(t, map[string]int{"A'B": 1}, boolexpr.Binding{"A": false, "B": true})
	runSolverTests(t, map[string]int{"A'B": 0}, boolexpr.Binding{"A": true, "B": true})
}

func TestRecursiveExpressions(t *testing.T) {
	binding := boolexpr.Binding{"A": true, "B": false, "C": true}
	tests := map[string]int{
		"A(B+C)":       1,
		"(A+B)'":       0,
		"(AB)'":        1,
		"A'+B'":        1,
		"((A)(C))'+B":  0,
		"(A+B)(B+C)'":  0,
		"A(B'C+BC')":   1,
		"(A+(B(C+A)))": 1,
	}
	runSolverTests(t, tests, binding)
}

func TestRedundantBrackets(t *testing.T) {
	bracketed, err := boolexpr.New("(A+B)")
	require.NoError(t, err)
	plain, err := boolexpr.New("A+B")
	require.NoError(t, err)

	for _, a := range []bool{false, true} {
		for _, b := range []bool{false, true} {
			binding := boolexpr.Binding{"A": a, "B": b}
			t.Run(binding.String(), func(t *testing.T) {
				want, err := plain.Eval(binding)
				require.NoError(t, err)
				got, err := bracketed.Eval(binding)
				require.NoError(t, err)

				assert.Equal(t, want, got)
			})
		}
	}
}

func runSolverTests(t *testing.T, tests map[string]int, binding boolexpr.Binding) {
	for expression, expected := range tests {
		t.Run(fmt.Sprintf("%s with %s", expression, binding), func(t *testing.T) {
			expr, err := boolexpr.New(expression)
			require.NoError(t, err)

			result, err := expr.Eval(binding)
			require.NoError(t, err)
			assert.Equal(t, expected, result)
		})
	}
}

func TestUnboundVariable(t *testing.T) {
	t.Run("variable leaf", func(t *testing.T) {
		_, err := boolexpr.Solve(boolexpr.Variable{Name: "Z"}, boolexpr.Binding{"A": true})

		var errUnbound *boolexpr.UnboundVariableError
		require.ErrorAs(t, err, &errUnbound)
		assert.Equal(t, "Z", errUnbound.VariableName)
	})

	t.Run("nested in an expression", func(t *testing.T) {
		expr, err := boolexpr.New("A+Z'")
		require.NoError(t, err)

		// A alone would decide the result, Z must still be bound
		_, err = expr.Solve(boolexpr.Binding{"A": true})
		var errUnbound *boolexpr.UnboundVariableError
		assert.ErrorAs(t, err, &errUnbound)
		assert.Contains(t, err.Error(), "unbound variable: Z")
	})
}

func TestSolveDoesNotModifyBinding(t *testing.T) {
	expr, err := boolexpr.New("A'B+C")
	require.NoError(t, err)

	binding := boolexpr.Binding{"A": false, "B": true, "C": false}
	_, err = expr.Solve(binding)
	require.NoError(t, err)

	assert.Equal(t, boolexpr.Binding{"A": false, "B": true, "C": false}, binding)
}

func TestSolveConcurrently(t *testing.T) {
	expr, err := boolexpr.New("AB+A'B'")
	require.NoError(t, err)

	type outcome struct {
		binding boolexpr.Binding
		result  int
	}
	outcomes := make([]outcome, 4)

	var wg sync.WaitGroup
	for i := range outcomes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			binding := boolexpr.Binding{"A": i&2 != 0, "B": i&1 != 0}
			result, err := expr.Eval(binding)
			assert.NoError(t, err)
			outcomes[i] = outcome{binding: binding, result: result}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, []int{1, 0, 0, 1}, []int{outcomes[0].result, outcomes[1].result, outcomes[2].result, outcomes[3].result})
}

func TestNew(t *testing.T) {
	t.Run("records source and normalized form", func(t *testing.T) {
		expr, err := boolexpr.New("A'(B + C)")
		require.NoError(t, err)

		assert.Equal(t, "A'(B + C)", expr.Source)
		assert.Equal(t, "A'*(B+C)", expr.Normalized)
		assert.Equal(t, boolexpr.Normalize(expr.Source), expr.Normalized)
		assert.Equal(t, "A'*(B+C)", expr.String())
	})

	t.Run("collects sorted variables", func(t *testing.T) {
		expr, err := boolexpr.New("CB+A'C+1")
		require.NoError(t, err)

		assert.Equal(t, []string{"A", "B", "C"}, expr.Variables())
	})

	t.Run("malformed expression", func(t *testing.T) {
		_, err := boolexpr.New("A+(B")

		var parseErr *boolexpr.ParseError
		assert.ErrorAs(t, err, &parseErr)
		assert.Contains(t, err.Error(), "failed to build tree for expression 'A+(B'")
	})

	t.Run("character outside the alphabet", func(t *testing.T) {
		_, err := boolexpr.New("A && B")

		var parseErr *boolexpr.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, 2, parseErr.Position)
	})
}

func TestBindingString(t *testing.T) {
	binding := boolexpr.Binding{"B": true, "A": false, "C": true}
	assert.Equal(t, "A=0 B=1 C=1", binding.String())
}
