package tools

import (
	"context"
	"testing"

	"github.com/rodrigo1987mza/reactagent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "addition", input: "1 + 2", expected: "3"},
		{name: "precedence", input: "2 + 3 * 4", expected: "14"},
		{name: "parentheses", input: "(2 + 3) * 4", expected: "20"},
		{name: "exact division", input: "10 / 4", expected: "2.5"},
		{name: "integral division", input: "12 / 4", expected: "3"},
		{name: "repeating fraction", input: "1 / 3", expected: "0.3333333333333333"},
		{name: "unary minus", input: "-5 + 2", expected: "-3"},
		{name: "nested unary", input: "-(-(4))", expected: "4"},
		{name: "decimals", input: "0.1 + 0.2", expected: "0.3"},
		{name: "decimal with integral result", input: "1.5 * 2", expected: "3"},
		{name: "remainder", input: "17 % 5", expected: "2"},
		{name: "large integers stay exact", input: "99999999999 * 99999999999", expected: "9999999999800000000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Evaluate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "division by zero", input: "1 / 0", expected: "division by zero"},
		{name: "remainder by zero", input: "1 % 0", expected: "division by zero"},
		{name: "float remainder", input: "1.5 % 1", expected: "requires integer operands"},
		{name: "identifiers", input: "x + 1", expected: "unsupported expression"},
		{name: "function calls", input: "sqrt(4)", expected: "unsupported expression"},
		{name: "strings", input: `"a" + "b"`, expected: "unsupported literal"},
		{name: "bitwise operators", input: "1 << 2", expected: "unsupported operator"},
		{name: "syntax error", input: "1 +", expected: "cannot parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}

func TestCalculate_Call(t *testing.T) {
	calc := NewCalculate()

	t.Run("uses the first argument only", func(t *testing.T) {
		result, err := calc.Call(context.Background(), []string{"1 + 2", "3"})
		require.NoError(t, err)
		assert.Equal(t, "3", result)
	})

	t.Run("missing expression", func(t *testing.T) {
		_, err := calc.Call(context.Background(), nil)
		var execErr *reactagent.ExecutionError
		require.ErrorAs(t, err, &execErr)
		assert.Equal(t, "expression required", execErr.Message)
	})

	t.Run("bad expression", func(t *testing.T) {
		_, err := calc.Call(context.Background(), []string{"two plus two"})
		var execErr *reactagent.ExecutionError
		require.ErrorAs(t, err, &execErr)
		assert.Contains(t, execErr.Message, "invalid mathematical expression")
	})
}
