package calcbrain

import (
	"math"
	"math/big"
	"sort"

	"github.com/zephyrtronium/bigfloat"
)

// Registry maps symbols to the operators and constants they name. A Registry
// is not modified after NewRegistry returns, so it is safe to share between
// evaluators and goroutines.
type Registry struct {
	ops    map[string]Op
	consts map[string]Op
}

// constprec is the precision in bits to which default constants are computed
// before rounding to float64.
const constprec = 128

var defaultops = []Op{
	Binary("×", func(lhs, rhs float64) float64 { return lhs * rhs }),
	Binary("÷", func(lhs, rhs float64) float64 { return lhs / rhs }),
	Binary("+", func(lhs, rhs float64) float64 { return lhs + rhs }),
	Binary("−", func(lhs, rhs float64) float64 { return lhs - rhs }),
	Unary("√", math.Sqrt),
	Unary("cos", math.Cos),
	Unary("sin", math.Sin),
}

var defaultconsts = []Op{
	Constant("π", niladic(bigfloat.Pi)),
	Constant("e", niladic(func(out *big.Float) *big.Float {
		var one big.Float
		one.SetFloat64(1)
		return bigfloat.Exp(out, &one)
	})),
}

// niladic computes a constant to constprec bits and rounds it to the nearest
// float64.
func niladic(f func(out *big.Float) *big.Float) float64 {
	r := new(big.Float).SetPrec(constprec)
	f(r)
	v, _ := r.Float64()
	return v
}

var defaultRegistry = NewRegistry()

// Default returns the registry of built-in operators and constants: × ÷ + −
// √ cos sin, π and e.
func Default() *Registry {
	return defaultRegistry
}

// RegistryOption is an option used when creating a registry.
type RegistryOption interface {
	registryOption()
}

type (
	defopt        struct{ op Op }
	nodefaultsopt struct{}
)

func (defopt) registryOption()        {}
func (nodefaultsopt) registryOption() {}

// DefineOperator adds a unary or binary operator to the registry under its
// name, replacing any default operator of the same name. Panics if op is not
// an operator.
func DefineOperator(op Op) RegistryOption {
	if op.kind != KindUnary && op.kind != KindBinary {
		panic("calcbrain: DefineOperator with " + op.kind.String() + " op")
	}
	return defopt{op}
}

// DefineConstant adds a constant to the registry, replacing any default
// constant of the same name.
func DefineConstant(name string, v float64) RegistryOption {
	return defopt{Constant(name, v)}
}

// NoDefaults creates the registry without the built-in operators and
// constants.
func NoDefaults() RegistryOption {
	return nodefaultsopt{}
}

// NewRegistry creates a registry holding the built-in operators and constants
// plus any defined by options. Options apply in order.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := Registry{
		ops:    make(map[string]Op, len(defaultops)),
		consts: make(map[string]Op, len(defaultconsts)),
	}
	defaults := true
	for _, opt := range opts {
		if _, ok := opt.(nodefaultsopt); ok {
			defaults = false
			break
		}
	}
	if defaults {
		for _, op := range defaultops {
			r.ops[op.name] = op
		}
		for _, op := range defaultconsts {
			r.consts[op.name] = op
		}
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case defopt:
			if opt.op.kind == KindConstant {
				r.consts[opt.op.name] = opt.op
			} else {
				r.ops[opt.op.name] = opt.op
			}
		case nodefaultsopt:
			// Already done. Do nothing.
		default:
			panic("calcbrain: unknown registry option type")
		}
	}
	return &r
}

// Operator looks up an operator by symbol.
func (r *Registry) Operator(name string) (Op, bool) {
	op, ok := r.ops[name]
	return op, ok
}

// Constant looks up a constant by symbol.
func (r *Registry) Constant(name string) (Op, bool) {
	op, ok := r.consts[name]
	return op, ok
}

// Operators returns the sorted symbols of all operators in the registry.
func (r *Registry) Operators() []string {
	return sortedKeys(r.ops)
}

// Constants returns the sorted symbols of all constants in the registry.
func (r *Registry) Constants() []string {
	return sortedKeys(r.consts)
}

func sortedKeys(m map[string]Op) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
