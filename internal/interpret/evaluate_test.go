package interpret_test

import (
	"math"
	"sync"
	"testing"

	"github.com/ian-shakespeare/librpn/internal/interpret"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()

	valid := []struct {
		name   string
		line   string
		expect int64
	}{
		{"add", "2 3 +", 5},
		{"subtract", "2 3 -", -1},
		{"multiply", "2 3 *", 6},
		{"divide", "7 2 /", 3},
		{"modulus", "7 2 %", 1},
		{"power", "2 3 ^", 8},
		{"operandOrder", "10 3 -", 7},
		{"multidigit", "12 3 +", 15},
		{"comment", "2 3 + # ignored", 5},
		{"commentHidesGarbage", "2 3 + # @ 4 4", 5},
		{"commentNoSpace", "2 3 +#", 5},
		{"extraWhitespace", "2   3 +", 5},
		{"tabsAndNewlines", "\t2\n3\r\n+ ", 5},
		{"noWhitespaceAroundOperators", "2 3+4*", 20},
		{"singleNumber", "42", 42},
		{"chained", "5 1 2 + 4 * + 3 -", 14},
		{"divideTruncatesNegative", "0 7 - 2 /", -3},
		{"modulusSignOfDividend", "0 7 - 2 %", -1},
		{"powerZero", "5 0 ^", 1},
		{"powerZeroZero", "0 0 ^", 1},
		{"powerLarge", "2 62 ^", 1 << 62},
		{"powerWraps", "2 64 ^", 0},
		{"powerWrapsNegative", "2 63 ^", math.MinInt64},
		{"multiplyWraps", "9223372036854775807 2 *", -2},
		{"minDivideMinusOne", "9223372036854775807 1 + 0 1 - /", math.MinInt64},
		{"minModulusMinusOne", "9223372036854775807 1 + 0 1 - %", 0},
	}

	for _, input := range valid {
		t.Run(input.name, func(t *testing.T) {
			t.Parallel()

			result, err := interpret.New().Evaluate(input.line)
			assert.NoError(t, err)
			assert.Equal(t, input.expect, result)
		})
	}

	t.Run("invalidRPN", func(t *testing.T) {
		t.Parallel()

		for _, line := range []string{"2 3", "", "   ", "# only a comment", "1 2 3 +"} {
			_, err := interpret.Evaluate(line)
			assert.ErrorIs(t, err, interpret.ErrInvalidRPN, line)
		}
	})

	t.Run("argCountMismatch", func(t *testing.T) {
		t.Parallel()

		inputs := []struct {
			line string
			got  int
		}{
			{"+", 0},
			{"2 +", 1},
			{"2 3 + *", 1},
		}

		for _, input := range inputs {
			_, err := interpret.Evaluate(input.line)
			var evalErr *interpret.EvalError
			require.ErrorAs(t, err, &evalErr, input.line)
			assert.Equal(t, interpret.ARG_COUNT_MISMATCH, evalErr.Type)
			assert.Equal(t, 2, evalErr.Required)
			assert.Equal(t, input.got, evalErr.Got)
		}
	})

	t.Run("operatorNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := interpret.Evaluate("2 3 @")
		var evalErr *interpret.EvalError
		require.ErrorAs(t, err, &evalErr)
		assert.Equal(t, interpret.OPERATOR_NOT_FOUND, evalErr.Type)
		assert.Equal(t, '@', evalErr.Symbol)
	})

	t.Run("operatorNotFoundBeforeUnderflow", func(t *testing.T) {
		t.Parallel()

		_, err := interpret.Evaluate("x")
		assert.ErrorIs(t, err, interpret.ErrOperatorNotFound)
	})

	t.Run("operatorNotFoundReportedWhenScanned", func(t *testing.T) {
		t.Parallel()

		// The later underflow is never reached.
		_, err := interpret.Evaluate("2 3 @ + + +")
		assert.ErrorIs(t, err, interpret.ErrOperatorNotFound)

		// An earlier underflow wins over a later unknown symbol.
		_, err = interpret.Evaluate("+ @")
		assert.ErrorIs(t, err, interpret.ErrArgCountMismatch)
	})

	t.Run("controlCharactersAreOperators", func(t *testing.T) {
		t.Parallel()

		for _, symbol := range []rune{'\b', '\x00'} {
			_, err := interpret.Evaluate("2 3 " + string(symbol) + " +")
			var evalErr *interpret.EvalError
			require.ErrorAs(t, err, &evalErr)
			assert.Equal(t, interpret.OPERATOR_NOT_FOUND, evalErr.Type)
			assert.Equal(t, symbol, evalErr.Symbol)
		}
	})

	t.Run("divisionByZero", func(t *testing.T) {
		t.Parallel()

		for _, line := range []string{"5 0 /", "5 0 %", "0 0 /", "5 2 2 - %"} {
			_, err := interpret.Evaluate(line)
			assert.ErrorIs(t, err, interpret.ErrDivisionByZero, line)
		}
	})

	t.Run("invalidExponent", func(t *testing.T) {
		t.Parallel()

		_, err := interpret.Evaluate("2 0 1 - ^")
		assert.ErrorIs(t, err, interpret.ErrInvalidExponent)
	})

	t.Run("syntaxError", func(t *testing.T) {
		t.Parallel()

		_, err := interpret.Evaluate("2 3 \xff +")
		assert.ErrorIs(t, err, interpret.ErrSyntax)
	})
}

func TestEvaluateIdempotent(t *testing.T) {
	t.Parallel()

	line := "5 1 2 + 4 * + 3 -"

	first, err := interpret.New().Evaluate(line)
	require.NoError(t, err)
	second, err := interpret.New().Evaluate(line)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Failures leave nothing behind for the next call on the same evaluator.
	e := interpret.New()
	_, err = e.Evaluate("1 2 3")
	require.Error(t, err)
	result, err := e.Evaluate(line)
	require.NoError(t, err)
	assert.Equal(t, first, result)
}

func TestEvaluateConcurrent(t *testing.T) {
	t.Parallel()

	e := interpret.New()

	var wg sync.WaitGroup
	results := make([]int64, 64)
	errs := make([]error, len(results))
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = e.Evaluate("6 7 * 2 ^")
		}()
	}
	wg.Wait()

	for i := range results {
		assert.NoError(t, errs[i])
		assert.Equal(t, int64(1764), results[i])
	}
}
