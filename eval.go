package calcbrain

import (
	"io"
	"math"
	"strconv"
)

// Evaluator is an RPN calculator. Each push appends one op to the stack and
// then evaluates the entire stack. It is not safe to use an Evaluator
// concurrently.
type Evaluator struct {
	reg   *Registry
	stack Stack
}

// Option is an option used when creating an evaluator.
type Option interface {
	evalOption()
}

type (
	regopt  struct{ reg *Registry }
	progopt []Op
)

func (regopt) evalOption()  {}
func (progopt) evalOption() {}

// UseRegistry sets the registry in which the evaluator looks up operators and
// constants. The default is Default().
func UseRegistry(reg *Registry) Option {
	return regopt{reg}
}

// Program preloads the evaluator's stack with ops.
func Program(ops ...Op) Option {
	return progopt(ops)
}

// New creates an evaluator with an empty stack.
func New(opts ...Option) *Evaluator {
	e := Evaluator{reg: Default()}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case regopt:
			if opt.reg != nil {
				e.reg = opt.reg
			}
		case progopt:
			for _, op := range opt {
				e.stack.Append(op)
			}
		default:
			panic("calcbrain: unknown option type")
		}
	}
	return &e
}

// Evaluate reduces the stack and returns its value. ok is false if the stack
// is empty or its top cannot be reduced. Ops left over beneath a complete
// expression are ignored. Evaluate does not modify the stack.
func (e *Evaluator) Evaluate() (v float64, ok bool) {
	v, ok, _ = Reduce(e.stack.view())
	return v, ok
}

// Push appends op to the stack and returns the new value of the stack.
func (e *Evaluator) Push(op Op) (float64, bool) {
	e.stack.Append(op)
	return e.Evaluate()
}

// PushOperand pushes a literal value.
func (e *Evaluator) PushOperand(v float64) (float64, bool) {
	return e.Push(Operand(v))
}

// PushConstant pushes the constant with the given name. If the registry has
// no such constant, the stack is unchanged. Either way, the result is the
// value of the stack.
func (e *Evaluator) PushConstant(name string) (float64, bool) {
	if op, ok := e.reg.Constant(name); ok {
		e.stack.Append(op)
	}
	return e.Evaluate()
}

// PushOperator pushes the operator with the given name. If the registry has
// no such operator, the stack is unchanged. Either way, the result is the
// value of the stack.
func (e *Evaluator) PushOperator(name string) (float64, bool) {
	if op, ok := e.reg.Operator(name); ok {
		e.stack.Append(op)
	}
	return e.Evaluate()
}

// Enter pushes a word of RPN text: a number is pushed as an operand, a
// constant name as that constant, and anything else as an operator.
func (e *Evaluator) Enter(word string) (float64, bool) {
	if v, ok := number(word); ok {
		return e.PushOperand(v)
	}
	if _, ok := e.reg.Constant(word); ok {
		return e.PushConstant(word)
	}
	return e.PushOperator(word)
}

// Run scans src as RPN text and enters each word, returning the value of the
// stack after the last one. If src contains a malformed number, Run stops
// there and returns the error; words before it remain on the stack.
func (e *Evaluator) Run(src io.RuneScanner) (float64, bool, error) {
	scan := NewScanner(src)
	for {
		w, err := scan.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			v, ok := e.Evaluate()
			return v, ok, err
		}
		e.Enter(w.Text)
	}
	v, ok := e.Evaluate()
	return v, ok, nil
}

// Stack returns a copy of the evaluator's stack, bottom first.
func (e *Evaluator) Stack() []Op {
	return e.stack.Snapshot()
}

// Len returns the number of ops on the stack.
func (e *Evaluator) Len() int {
	return e.stack.Len()
}

// Clear empties the stack.
func (e *Evaluator) Clear() {
	e.stack.Reset()
}

// Registry returns the registry the evaluator uses.
func (e *Evaluator) Registry() *Registry {
	return e.reg
}

// String returns the stack's ops separated by spaces, bottom first.
func (e *Evaluator) String() string {
	return e.stack.String()
}

// Reduce evaluates the expression at the top of ops. It consumes ops from the
// end: an operand or constant is its own value, and an operator first reduces
// what lies beneath it to get its arguments. rest is the part of ops beneath
// the reduced expression.
//
// If the expression is incomplete, ok is false and rest is ops itself, even
// when a nested operator failed after others had consumed their arguments.
// Reduce never modifies ops.
func Reduce(ops []Op) (v float64, ok bool, rest []Op) {
	if len(ops) == 0 {
		return 0, false, ops
	}
	n := len(ops) - 1
	op, rem := ops[n], ops[:n:n]
	switch op.kind {
	case KindOperand, KindConstant:
		return op.value, true, rem
	case KindUnary:
		if x, ok, r := Reduce(rem); ok {
			return op.unary(x), true, r
		}
	case KindBinary:
		// The first value popped is the right-hand side.
		if y, ok, r := Reduce(rem); ok {
			if x, ok, r := Reduce(r); ok {
				return op.binary(x, y), true, r
			}
		}
	}
	return 0, false, ops
}

// number parses a numeric word as produced by the scanner.
func number(word string) (float64, bool) {
	switch {
	case word == "inf", word == "Inf", word == "∞":
		return math.Inf(1), true
	case word == "", word[0] != '.' && (word[0] < '0' || '9' < word[0]):
		return 0, false
	}
	v, err := strconv.ParseFloat(word, 64)
	if err != nil {
		// Out-of-range literals still parse to ±Inf or 0.
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return v, true
		}
		return 0, false
	}
	return v, true
}
