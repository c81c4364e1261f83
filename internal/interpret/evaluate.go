package interpret

import "strings"

// Required operand count for every operator in the table.
const arity = 2

type Evaluator struct {
	operators OperatorTable
}

func New() *Evaluator {
	return &Evaluator{
		operators: NewOperatorTable(),
	}
}

// Evaluate reduces one line of RPN to its value. Each call works on its own
// stack, so an Evaluator may be shared between goroutines.
func (e *Evaluator) Evaluate(line string) (int64, error) {
	stack := NewOperandStack()

	s := NewScanner(strings.NewReader(line))
	for token, err := range s.Tokens() {
		if err != nil {
			return 0, err
		}

		switch token.Type {
		case NUMBER_TOKEN:
			stack.Push(token.Number)
		case OPERATOR_TOKEN:
			if err := e.apply(stack, token.Symbol()); err != nil {
				return 0, err
			}
		case COMMENT_TOKEN:
			// Nothing follows a comment.
		}
	}

	if stack.Len() != 1 {
		return 0, NewInvalidRPNError()
	}
	return stack.Pop()
}

func (e *Evaluator) apply(stack *OperandStack, symbol rune) error {
	fn, ok := e.operators.Lookup(symbol)
	if !ok {
		return NewOperatorNotFoundError(symbol)
	}

	args, err := stack.PopN(arity)
	if err != nil {
		return err
	}

	result, err := fn(args[0], args[1])
	if err != nil {
		return err
	}
	stack.Push(result)
	return nil
}

var defaultEvaluator = New()

// Evaluate evaluates line with a shared Evaluator.
func Evaluate(line string) (int64, error) {
	return defaultEvaluator.Evaluate(line)
}
