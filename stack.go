package calcbrain

// Stack is an append-only program of ops in the order they were pushed. The
// zero value is an empty stack.
type Stack struct {
	ops []Op
}

// Append adds op to the top of the stack. Malformed programs are accepted.
func (s *Stack) Append(op Op) {
	s.ops = append(s.ops, op)
}

// Snapshot returns a copy of the ops on the stack, bottom first.
func (s *Stack) Snapshot() []Op {
	if len(s.ops) == 0 {
		return nil
	}
	r := make([]Op, len(s.ops))
	copy(r, s.ops)
	return r
}

// view returns the stack's ops without copying. The result must not be
// modified.
func (s *Stack) view() []Op {
	return s.ops[:len(s.ops):len(s.ops)]
}

// Len returns the number of ops on the stack.
func (s *Stack) Len() int {
	return len(s.ops)
}

// Reset empties the stack.
func (s *Stack) Reset() {
	s.ops = nil
}

func (s *Stack) String() string {
	return joinOps(s.ops)
}
