package interpret

// OperandStack holds pending values during one evaluation.
type OperandStack struct {
	items []int64
}

func NewOperandStack() *OperandStack {
	return &OperandStack{}
}

func (s *OperandStack) Len() int {
	return len(s.items)
}

func (s *OperandStack) Push(v int64) {
	s.items = append(s.items, v)
}

// PopN removes the top n values and returns them deepest first, so for
// "a b" on the stack PopN(2) returns [a, b]. The stack is left untouched
// when it holds fewer than n values.
func (s *OperandStack) PopN(n int) ([]int64, error) {
	d := len(s.items) - n
	if d < 0 {
		return nil, NewArgCountMismatchError(n, len(s.items))
	}
	v := make([]int64, n)
	copy(v, s.items[d:])
	s.items = s.items[:d]
	return v, nil
}

func (s *OperandStack) Pop() (int64, error) {
	v, err := s.PopN(1)
	if err != nil {
		return 0, err
	}
	return v[0], nil
}
