package interpret

type TokenType int

const (
	NUMBER_TOKEN   TokenType = 1
	OPERATOR_TOKEN TokenType = 2
	COMMENT_TOKEN  TokenType = 3
)

func (t TokenType) String() string {
	switch t {
	case NUMBER_TOKEN:
		return "number"
	case OPERATOR_TOKEN:
		return "operator"
	case COMMENT_TOKEN:
		return "comment"
	default:
		return "unknown"
	}
}

type Token struct {
	Type  TokenType
	Value []rune
	// Number is the literal's value for NUMBER_TOKEN.
	Number int64
}

func (t *Token) Append(char ...rune) {
	t.Value = append(t.Value, char...)
}

// Symbol returns the operator character of an OPERATOR_TOKEN.
func (t Token) Symbol() rune {
	if t.Type != OPERATOR_TOKEN || len(t.Value) == 0 {
		return 0
	}
	return t.Value[0]
}
