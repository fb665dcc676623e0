package truthtable_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/eriklarko/boolean-algebra/src/boolexpr"
	"github.com/eriklarko/boolean-algebra/src/truthtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	enumerator := truthtable.NewEnumerator(2, 0)

	table, err := enumerator.Generate(context.Background(), "A'+B")
	require.NoError(t, err)

	assert.Equal(t, "A'+B", table.Expression)
	assert.Equal(t, []string{"A", "B"}, table.Variables)
	assert.Equal(t, []truthtable.Row{
		{Values: []bool{false, false}, Result: true},
		{Values: []bool{false, true}, Result: true},
		{Values: []bool{true, false}, Result: false},
		{Values: []bool{true, true}, Result: true},
	}, table.Rows)
}

func TestGenerate_Errors(t *testing.T) {
	t.Run("malformed expression", func(t *testing.T) {
		_, err := truthtable.NewEnumerator(1, 0).Generate(context.Background(), "A+")

		var parseErr *boolexpr.ParseError
		assert.ErrorAs(t, err, &parseErr)
	})

	t.Run("too many variables", func(t *testing.T) {
		_, err := truthtable.NewEnumerator(1, 2).Generate(context.Background(), "ABC")

		var errTooMany *truthtable.TooManyVariablesError
		assert.ErrorAs(t, err, &errTooMany)
	})
}

func TestRender(t *testing.T) {
	enumerator := truthtable.NewEnumerator(1, 0)

	t.Run("with variables", func(t *testing.T) {
		table, err := enumerator.Generate(context.Background(), "AB")
		require.NoError(t, err)

		var out bytes.Buffer
		require.NoError(t, table.Render(&out))

		assert.Equal(t, "A B | X\n"+
			"0 0 | 0\n"+
			"0 1 | 0\n"+
			"1 0 | 0\n"+
			"1 1 | 1\n", out.String())
	})

	t.Run("constant expression", func(t *testing.T) {
		table, err := enumerator.Generate(context.Background(), "1+0")
		require.NoError(t, err)

		var out bytes.Buffer
		require.NoError(t, table.Render(&out))

		assert.Equal(t, "| X\n| 1\n", out.String())
	})
}

func TestWriteCSV(t *testing.T) {
	table, err := truthtable.NewEnumerator(1, 0).Generate(context.Background(), "A+B")
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, table.WriteCSV(&out))

	assert.Equal(t, "A,B,A+B\n"+
		"0,0,0\n"+
		"0,1,1\n"+
		"1,0,1\n"+
		"1,1,1\n", out.String())
}
