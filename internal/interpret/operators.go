package interpret

import (
	"maps"
	"slices"
)

// BinaryFunc reduces the left operand a and the right operand b to one value.
type BinaryFunc func(a, b int64) (int64, error)

// OperatorTable maps an operator symbol to its reduction. It is never
// mutated after NewOperatorTable, so one table may serve concurrent
// evaluations.
type OperatorTable map[rune]BinaryFunc

func NewOperatorTable() OperatorTable {
	return OperatorTable{
		'+': add,
		'-': subtract,
		'*': multiply,
		'/': divide,
		'%': modulus,
		'^': power,
	}
}

func (t OperatorTable) Lookup(symbol rune) (BinaryFunc, bool) {
	fn, ok := t[symbol]
	return fn, ok
}

// Symbols returns the known operator symbols in ascending order.
func (t OperatorTable) Symbols() []rune {
	return slices.Sorted(maps.Keys(t))
}

func add(a, b int64) (int64, error) {
	return a + b, nil
}

func subtract(a, b int64) (int64, error) {
	return a - b, nil
}

func multiply(a, b int64) (int64, error) {
	return a * b, nil
}

// divide truncates toward zero. math.MinInt64 / -1 wraps to math.MinInt64.
func divide(a, b int64) (int64, error) {
	if b == 0 {
		return 0, NewDivisionByZeroError()
	}
	return a / b, nil
}

// modulus takes the sign of a.
func modulus(a, b int64) (int64, error) {
	if b == 0 {
		return 0, NewDivisionByZeroError()
	}
	return a % b, nil
}

// power computes base**exp by squaring. Overflow wraps exactly as repeated
// multiplication would.
func power(base, exp int64) (int64, error) {
	if exp < 0 {
		return 0, NewInvalidExponentError()
	}

	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result, nil
}
