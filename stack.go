package rpn

// tokenStack is a bounded LIFO of tokens, the scratch space of the
// shunting-yard converter. The zero value is empty but has no capacity;
// use newTokenStack.
type tokenStack struct {
	data []Token
}

func newTokenStack() *tokenStack {
	return &tokenStack{data: make([]Token, 0, MaxStackDepth)}
}

// push stores a token at the top of the stack. If the stack is full, push
// returns a CapacityError and the stack is unchanged.
func (s *tokenStack) push(t Token) error {
	if len(s.data) >= cap(s.data) {
		return &CapacityError{What: "stack", Limit: cap(s.data)}
	}
	s.data = append(s.data, t)
	return nil
}

// pop removes and returns the top token. If the stack is empty, pop
// returns an UnderflowError.
func (s *tokenStack) pop() (Token, error) {
	if len(s.data) == 0 {
		return Token{}, &UnderflowError{}
	}
	t := s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return t, nil
}

// peek returns the top token without removing it. If the stack is empty,
// peek returns an UnderflowError.
func (s *tokenStack) peek() (Token, error) {
	if len(s.data) == 0 {
		return Token{}, &UnderflowError{}
	}
	return s.data[len(s.data)-1], nil
}

func (s *tokenStack) empty() bool {
	return len(s.data) == 0
}

func (s *tokenStack) len() int {
	return len(s.data)
}

// valueStack is a bounded LIFO of operands, the scratch space of the
// postfix evaluator. The zero value is empty but has no capacity; use
// newValueStack.
type valueStack struct {
	data []float64
}

func newValueStack() *valueStack {
	return &valueStack{data: make([]float64, 0, MaxStackDepth)}
}

func (s *valueStack) push(v float64) error {
	if len(s.data) >= cap(s.data) {
		return &CapacityError{What: "stack", Limit: cap(s.data)}
	}
	s.data = append(s.data, v)
	return nil
}

func (s *valueStack) pop() (float64, error) {
	if len(s.data) == 0 {
		return 0, &UnderflowError{}
	}
	v := s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return v, nil
}

func (s *valueStack) peek() (float64, error) {
	if len(s.data) == 0 {
		return 0, &UnderflowError{}
	}
	return s.data[len(s.data)-1], nil
}

func (s *valueStack) empty() bool {
	return len(s.data) == 0
}

func (s *valueStack) len() int {
	return len(s.data)
}

// reset empties the stack, keeping its capacity.
func (s *valueStack) reset() {
	s.data = s.data[:0]
}
