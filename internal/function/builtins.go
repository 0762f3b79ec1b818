package function

import (
	"fmt"
	"math"
	"sort"

	"github.com/expr-lang/expr"
)

var constants = map[string]float64{
	"pi": math.Pi,
}

// unary math functions exposed to expressions. abs, ceil, floor, min and
// max are expr built-ins already and never reach the identifier table.
var unary = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"asin": math.Asin,
	"acos": math.Acos,
	"atan": math.Atan,
	"sinh": math.Sinh,
	"cosh": math.Cosh,
	"tanh": math.Tanh,
	"exp":  math.Exp,
	"log":  math.Log,
	"ln":   math.Log,
	"sqrt": math.Sqrt,
}

var exprBuiltins = map[string]bool{
	"abs": true, "ceil": true, "floor": true, "round": true,
	"min": true, "max": true,
}

func isBuiltin(name string) bool {
	if _, ok := constants[name]; ok {
		return true
	}
	if _, ok := unary[name]; ok {
		return true
	}
	return name == "pow" || exprBuiltins[name]
}

// Builtins lists the names usable inside expressions that are not free
// variables: constants, math functions and pow, in lexicographic order.
func Builtins() []string {
	names := make([]string, 0, len(constants)+len(unary)+len(exprBuiltins)+1)
	for name := range constants {
		names = append(names, name)
	}
	for name := range unary {
		names = append(names, name)
	}
	for name := range exprBuiltins {
		names = append(names, name)
	}
	names = append(names, "pow")
	sort.Strings(names)
	return names
}

func builtins() []expr.Option {
	opts := make([]expr.Option, 0, len(unary)+1)
	for name, fn := range unary {
		opts = append(opts, expr.Function(name, wrapUnary(name, fn)))
	}
	opts = append(opts, expr.Function("pow", func(params ...any) (any, error) {
		if len(params) != 2 {
			return nil, fmt.Errorf("pow: expected 2 arguments, got %d", len(params))
		}
		base, err := toFloat(params[0])
		if err != nil {
			return nil, err
		}
		exp, err := toFloat(params[1])
		if err != nil {
			return nil, err
		}
		return math.Pow(base, exp), nil
	}))
	return opts
}

func wrapUnary(name string, fn func(float64) float64) func(params ...any) (any, error) {
	return func(params ...any) (any, error) {
		if len(params) != 1 {
			return nil, fmt.Errorf("%s: expected 1 argument, got %d", name, len(params))
		}
		x, err := toFloat(params[0])
		if err != nil {
			return nil, err
		}
		return fn(x), nil
	}
}
