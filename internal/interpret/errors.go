package interpret

import "fmt"

type ErrorType string

const (
	INVALID_RPN        ErrorType = "invalidrpn"
	OPERATOR_NOT_FOUND ErrorType = "operatornotfound"
	ARG_COUNT_MISMATCH ErrorType = "argcountmismatch"
	DIVISION_BY_ZERO   ErrorType = "divisionbyzero"
	INVALID_EXPONENT   ErrorType = "invalidexponent"
	SYNTAX_ERROR       ErrorType = "syntaxerror"
)

// Sentinels for errors.Is. Matching compares Type only.
var (
	ErrInvalidRPN       = &EvalError{Type: INVALID_RPN}
	ErrOperatorNotFound = &EvalError{Type: OPERATOR_NOT_FOUND}
	ErrArgCountMismatch = &EvalError{Type: ARG_COUNT_MISMATCH}
	ErrDivisionByZero   = &EvalError{Type: DIVISION_BY_ZERO}
	ErrInvalidExponent  = &EvalError{Type: INVALID_EXPONENT}
	ErrSyntax           = &EvalError{Type: SYNTAX_ERROR}
)

type EvalError struct {
	Type    ErrorType
	Message string

	// Symbol is set for OPERATOR_NOT_FOUND.
	Symbol rune
	// Required and Got are set for ARG_COUNT_MISMATCH.
	Required int
	Got      int
}

func NewInvalidRPNError() *EvalError {
	return &EvalError{
		Type:    INVALID_RPN,
		Message: "Invalid RPN!",
	}
}

func NewOperatorNotFoundError(symbol rune) *EvalError {
	return &EvalError{
		Type:    OPERATOR_NOT_FOUND,
		Message: fmt.Sprintf("Operator %c not found", symbol),
		Symbol:  symbol,
	}
}

func NewArgCountMismatchError(required, got int) *EvalError {
	return &EvalError{
		Type:     ARG_COUNT_MISMATCH,
		Message:  fmt.Sprintf("ArgCountMismatch: required %d, got: %d", required, got),
		Required: required,
		Got:      got,
	}
}

func NewDivisionByZeroError() *EvalError {
	return &EvalError{
		Type:    DIVISION_BY_ZERO,
		Message: "division by zero",
	}
}

func NewInvalidExponentError() *EvalError {
	return &EvalError{
		Type:    INVALID_EXPONENT,
		Message: "negative exponent",
	}
}

func NewSyntaxError(message string) *EvalError {
	return &EvalError{
		Type:    SYNTAX_ERROR,
		Message: message,
	}
}

func NewSyntaxErrorf(format string, a ...any) *EvalError {
	return NewSyntaxError(fmt.Sprintf(format, a...))
}

func (e *EvalError) Error() string {
	if e.Message == "" {
		return string(e.Type)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *EvalError) Is(target error) bool {
	t, ok := target.(*EvalError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}
