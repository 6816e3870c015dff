package calcbrain

import (
	"strconv"
	"strings"
)

// Op is one element of an evaluator's stack: an operand, a named constant, or
// a named operator. Ops are immutable; the zero Op has kind KindNone and never
// produces a value.
type Op struct {
	kind OpKind

	name  string
	value float64

	unary  func(float64) float64
	binary func(lhs, rhs float64) float64
}

// OpKind is the variant of an Op.
type OpKind int8

const (
	KindNone OpKind = iota

	KindOperand  // literal value
	KindConstant // named value
	KindUnary    // f(x)
	KindBinary   // f(lhs, rhs)
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=OpKind -trimprefix=Kind
//go:generate go mod tidy

// Operand creates an operand holding v.
func Operand(v float64) Op {
	return Op{kind: KindOperand, value: v}
}

// Constant creates a constant named name with value v. Panics if name is
// empty.
func Constant(name string, v float64) Op {
	if name == "" {
		panic("calcbrain: constant with empty name")
	}
	return Op{kind: KindConstant, name: name, value: v}
}

// Unary creates an operator of one argument. Panics if name is empty or f is
// nil.
func Unary(name string, f func(float64) float64) Op {
	if name == "" || f == nil {
		panic("calcbrain: invalid unary operator " + strconv.Quote(name))
	}
	return Op{kind: KindUnary, name: name, unary: f}
}

// Binary creates an operator of two arguments. When the operator is
// evaluated, rhs is the value nearest the operator on the stack and lhs the
// one beneath it, so that "a b op" computes f(a, b). Panics if name is empty
// or f is nil.
func Binary(name string, f func(lhs, rhs float64) float64) Op {
	if name == "" || f == nil {
		panic("calcbrain: invalid binary operator " + strconv.Quote(name))
	}
	return Op{kind: KindBinary, name: name, binary: f}
}

// Kind returns the variant of op.
func (op Op) Kind() OpKind {
	return op.kind
}

// Value returns the value of an operand or constant. It is 0 for operators.
func (op Op) Value() float64 {
	return op.value
}

// Name returns the name under which op is registered. For operands, which
// have no name, it is the same as String.
func (op Op) Name() string {
	if op.kind == KindOperand {
		return op.String()
	}
	return op.name
}

// String returns the display form of op: the value of an operand or constant,
// or the symbol of an operator.
func (op Op) String() string {
	switch op.kind {
	case KindOperand, KindConstant:
		return strconv.FormatFloat(op.value, 'g', -1, 64)
	case KindUnary, KindBinary:
		return op.name
	default:
		return "<" + op.kind.String() + ">"
	}
}

// joinOps writes the display forms of ops separated by spaces.
func joinOps(ops []Op) string {
	var b strings.Builder
	for i, op := range ops {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(op.String())
	}
	return b.String()
}
