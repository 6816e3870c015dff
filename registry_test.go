package calcbrain_test

import (
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/zephyrtronium/calcbrain"
)

func TestDefaultRegistry(t *testing.T) {
	reg := calcbrain.Default()
	ops := []string{"+", "cos", "sin", "×", "÷", "−", "√"}
	if got := reg.Operators(); !reflect.DeepEqual(got, ops) {
		t.Errorf("wrong operators:\n\twant %q\n\tgot  %q", ops, got)
	}
	consts := []string{"e", "π"}
	if got := reg.Constants(); !reflect.DeepEqual(got, consts) {
		t.Errorf("wrong constants:\n\twant %q\n\tgot  %q", consts, got)
	}
	kinds := map[string]calcbrain.OpKind{
		"×":   calcbrain.KindBinary,
		"÷":   calcbrain.KindBinary,
		"+":   calcbrain.KindBinary,
		"−":   calcbrain.KindBinary,
		"√":   calcbrain.KindUnary,
		"cos": calcbrain.KindUnary,
		"sin": calcbrain.KindUnary,
	}
	for name, kind := range kinds {
		op, ok := reg.Operator(name)
		if !ok {
			t.Errorf("no operator %q", name)
			continue
		}
		if op.Kind() != kind || op.Name() != name || op.String() != name {
			t.Errorf("operator %q is %v named %q displayed %q", name, op.Kind(), op.Name(), op)
		}
	}
	for name, want := range map[string]float64{"π": math.Pi, "e": math.E} {
		op, ok := reg.Constant(name)
		if !ok {
			t.Errorf("no constant %q", name)
			continue
		}
		if op.Kind() != calcbrain.KindConstant || op.Name() != name {
			t.Errorf("constant %q is %v named %q", name, op.Kind(), op.Name())
		}
		if op.Value() != want {
			t.Errorf("constant %q: want %v, got %v", name, want, op.Value())
		}
	}
	if _, ok := reg.Operator("π"); ok {
		t.Errorf("π is an operator")
	}
	if _, ok := reg.Constant("cos"); ok {
		t.Errorf("cos is a constant")
	}
}

func TestRegistryOptions(t *testing.T) {
	pow := calcbrain.Binary("^", math.Pow)
	twice := calcbrain.Unary("+", func(x float64) float64 { return 2 * x })
	cases := []struct {
		name   string
		opts   []calcbrain.RegistryOption
		ops    []string
		consts []string
	}{
		{"none", nil, []string{"+", "cos", "sin", "×", "÷", "−", "√"}, []string{"e", "π"}},
		{"nil", []calcbrain.RegistryOption{nil}, []string{"+", "cos", "sin", "×", "÷", "−", "√"}, []string{"e", "π"}},
		{"no-defaults", []calcbrain.RegistryOption{calcbrain.NoDefaults()}, nil, nil},
		{"define", []calcbrain.RegistryOption{calcbrain.DefineOperator(pow), calcbrain.DefineConstant("τ", 2*math.Pi)}, []string{"+", "^", "cos", "sin", "×", "÷", "−", "√"}, []string{"e", "π", "τ"}},
		{"only", []calcbrain.RegistryOption{calcbrain.DefineOperator(pow), calcbrain.NoDefaults()}, []string{"^"}, nil},
		{"replace", []calcbrain.RegistryOption{calcbrain.DefineOperator(twice), calcbrain.DefineConstant("e", 3)}, []string{"+", "cos", "sin", "×", "÷", "−", "√"}, []string{"e", "π"}},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			reg := calcbrain.NewRegistry(c.opts...)
			if got := reg.Operators(); !reflect.DeepEqual(got, c.ops) {
				t.Errorf("wrong operators:\n\twant %q\n\tgot  %q", c.ops, got)
			}
			if got := reg.Constants(); !reflect.DeepEqual(got, c.consts) {
				t.Errorf("wrong constants:\n\twant %q\n\tgot  %q", c.consts, got)
			}
		})
	}
}

func TestRegistryReplace(t *testing.T) {
	twice := calcbrain.Unary("+", func(x float64) float64 { return 2 * x })
	reg := calcbrain.NewRegistry(calcbrain.DefineOperator(twice), calcbrain.DefineConstant("e", 3))
	e := calcbrain.New(calcbrain.UseRegistry(reg))
	e.PushConstant("e")
	if v, ok := e.PushOperator("+"); !ok || v != 6 {
		t.Errorf("want 6, got %g %t", v, ok)
	}
	// The default registry is untouched.
	if op, _ := calcbrain.Default().Operator("+"); op.Kind() != calcbrain.KindBinary {
		t.Errorf("default + became %v", op.Kind())
	}
}

func TestConstructorPanics(t *testing.T) {
	cases := []struct {
		name string
		f    func()
	}{
		{"constant-empty", func() { calcbrain.Constant("", 1) }},
		{"unary-empty", func() { calcbrain.Unary("", math.Abs) }},
		{"unary-nil", func() { calcbrain.Unary("abs", nil) }},
		{"binary-empty", func() { calcbrain.Binary("", math.Max) }},
		{"binary-nil", func() { calcbrain.Binary("max", nil) }},
		{"define-operand", func() { calcbrain.DefineOperator(calcbrain.Operand(1)) }},
		{"define-constant", func() { calcbrain.DefineOperator(calcbrain.Constant("k", 1)) }},
		{"define-zero", func() { calcbrain.DefineOperator(calcbrain.Op{}) }},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("no panic")
				}
			}()
			c.f()
		})
	}
}

func TestOpString(t *testing.T) {
	cases := []struct {
		op   calcbrain.Op
		kind calcbrain.OpKind
		name string
		str  string
	}{
		{calcbrain.Operand(3), calcbrain.KindOperand, "3", "3"},
		{calcbrain.Operand(-0.25), calcbrain.KindOperand, "-0.25", "-0.25"},
		{calcbrain.Operand(1e21), calcbrain.KindOperand, "1e+21", "1e+21"},
		{calcbrain.Constant("k", 1.5), calcbrain.KindConstant, "k", "1.5"},
		{calcbrain.Unary("abs", math.Abs), calcbrain.KindUnary, "abs", "abs"},
		{calcbrain.Binary("max", math.Max), calcbrain.KindBinary, "max", "max"},
		{calcbrain.Op{}, calcbrain.KindNone, "", "<None>"},
	}
	for _, c := range cases {
		if c.op.Kind() != c.kind {
			t.Errorf("%v: want kind %v, got %v", c.op, c.kind, c.op.Kind())
		}
		if c.op.Name() != c.name {
			t.Errorf("%v: want name %q, got %q", c.op, c.name, c.op.Name())
		}
		if c.op.String() != c.str {
			t.Errorf("want string %q, got %q", c.str, c.op.String())
		}
	}
	if s := calcbrain.OpKind(9).String(); s != "OpKind(9)" {
		t.Errorf("bad kind string %q", s)
	}
}

func ExampleDefineOperator() {
	reg := calcbrain.NewRegistry(
		calcbrain.DefineOperator(calcbrain.Binary("^", math.Pow)),
		calcbrain.DefineConstant("τ", 2*math.Pi),
	)
	e := calcbrain.New(calcbrain.UseRegistry(reg))
	e.PushOperand(2)
	e.PushOperand(10)
	fmt.Println(e.PushOperator("^"))
	e.Clear()
	e.PushConstant("τ")
	e.PushOperand(2)
	fmt.Println(e.PushOperator("÷"))
	fmt.Println(e)

	// Output:
	// 1024 true
	// 3.141592653589793 true
	// 6.283185307179586 2 ÷
}
