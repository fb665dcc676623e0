package boolexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	testCases := map[string]string{
		"A":      "A",
		"A+B":    "A+B",
		"AB":     "A*B",
		"ABC":    "A*B*C",
		"A(B+C)": "A*(B+C)",
		"A'B":    "A'*B",
		"(A)(B)": "(A)*(B)",
		"10":     "1*0",
		"1A":     "1*A",
		"A B":    "A*B",
		"A''":    "A''",
		"A*B":    "A*B",

		"(A+B)'C":   "(A+B)'*C",
		"A'B'+AB":   "A'*B'+A*B",
		"A(B(C+D))": "A*(B*(C+D))",
	}

	for expression, expected := range testCases {
		t.Run(expression, func(t *testing.T) {
			normalized := Normalize(expression)
			assert.Equal(t, expected, normalized)

			// normalizing twice must not add markers
			assert.Equal(t, normalized, Normalize(normalized))
		})
	}
}

func TestStripRedundantBrackets(t *testing.T) {
	testCases := map[string]string{
		"A":         "A",
		"(A)":       "A",
		"(A+B)":     "A+B",
		"((A+B))":   "A+B",
		"(A)+(B)":   "(A)+(B)",
		"((A)+(B))": "(A)+(B)",
		"(A+B)'":    "(A+B)'",
		"(A+B)*(C)": "(A+B)*(C)",
		"((A)":      "((A)",
		"()":        "",
	}

	for expression, expected := range testCases {
		t.Run(expression, func(t *testing.T) {
			stripped := StripRedundantBrackets(expression)
			assert.Equal(t, expected, stripped)

			// stripping is a fixed point
			assert.Equal(t, stripped, StripRedundantBrackets(stripped))
		})
	}
}

func TestTokenize(t *testing.T) {
	t.Run("valid expression", func(t *testing.T) {
		tokens, err := tokenize("A + (1)'")
		require.NoError(t, err)

		assert.Equal(t, []Token{
			{Type: TokenVariable, Value: 'A', Pos: 0},
			{Type: TokenOr, Value: '+', Pos: 2},
			{Type: TokenLParen, Value: '(', Pos: 4},
			{Type: TokenConstant, Value: '1', Pos: 5},
			{Type: TokenRParen, Value: ')', Pos: 6},
			{Type: TokenNot, Value: '\'', Pos: 7},
		}, tokens)
	})

	t.Run("unknown character", func(t *testing.T) {
		_, err := tokenize("A&B")

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, 1, parseErr.Position)
		assert.Equal(t, "A&B", parseErr.Expression)
	})

	t.Run("lower case variable", func(t *testing.T) {
		_, err := tokenize("a")

		var parseErr *ParseError
		assert.ErrorAs(t, err, &parseErr)
	})
}

func TestInsertImplicitAnds(t *testing.T) {
	tokens, err := tokenize("A'(B)")
	require.NoError(t, err)

	withAnds := insertImplicitAnds(tokens)
	assert.Equal(t, "A'*(B)", render(withAnds))
	// the inserted AND takes the position of the bracket following it
	assert.Equal(t, Token{Type: TokenAnd, Value: '*', Pos: 2}, withAnds[2])
}

func parse(t *testing.T, expression string) (Node, error) {
	t.Helper()

	tokens, err := tokenize(expression)
	require.NoError(t, err)
	return buildTree(insertImplicitAnds(tokens))
}

func TestBuildTree(t *testing.T) {
	a := Variable{Name: "A"}
	b := Variable{Name: "B"}
	c := Variable{Name: "C"}

	testCases := map[string]Node{
		"A":     a,
		"1":     Literal{Value: true},
		"0":     Literal{Value: false},
		"((A))": a,

		"A'":  Not{Child: a},
		"A''": Not{Child: Not{Child: a}},

		"A*B": And{Children: []Node{a, b}},
		"AB":  And{Children: []Node{a, b}},
		"A+B": Or{Children: []Node{a, b}},

		// the first free operator of the loosest kind becomes the root
		"A+B+C": Or{Children: []Node{a, Or{Children: []Node{b, c}}}},
		"A+B*C": Or{Children: []Node{a, And{Children: []Node{b, c}}}},
		"A*B+C": Or{Children: []Node{And{Children: []Node{a, b}}, c}},

		"(A+B)C":  And{Children: []Node{Or{Children: []Node{a, b}}, c}},
		"A'B":     And{Children: []Node{Not{Child: a}, b}},
		"(AB)'":   Not{Child: And{Children: []Node{a, b}}},
		"(A)+(B)": Or{Children: []Node{a, b}},
	}

	for expression, expected := range testCases {
		t.Run(expression, func(t *testing.T) {
			result, err := parse(t, expression)
			require.NoError(t, err)

			assert.Equal(t, expected, result)
		})
	}
}

func TestBuildTreeErrors(t *testing.T) {
	testCases := map[string]string{
		"":      "empty expression",
		"()":    "empty brackets",
		"A+":    "missing right operand of '+'",
		"*A":    "missing left operand of '*'",
		"'A":    "operator without operand",
		"+":     "operator without operand",
		"(A+B":  "no operator found",
		"A)+(B": "no operator found",
	}

	for expression, reason := range testCases {
		t.Run(expression, func(t *testing.T) {
			_, err := parse(t, expression)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, reason, parseErr.Reason)
		})
	}
}

func TestNodeString(t *testing.T) {
	testCases := map[string]string{
		"A":          "A",
		"AB+C":       "A*B+C",
		"A(B+C)":     "A*(B+C)",
		"(AB)'":      "(A*B)'",
		"((A+B))'":   "(A+B)'",
		"A'B'":       "A'*B'",
		"(A+B)(C+D)": "(A+B)*(C+D)",
		"1+0'":       "1+0'",
	}

	for expression, expected := range testCases {
		t.Run(expression, func(t *testing.T) {
			node, err := parse(t, expression)
			require.NoError(t, err)

			assert.Equal(t, expected, node.String())
		})
	}
}
