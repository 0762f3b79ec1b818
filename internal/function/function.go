package function

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
	"github.com/expr-lang/expr/vm"
)

// Function is a parsed algebraic expression. It is immutable once parsed
// and safe to evaluate from several goroutines.
type Function struct {
	src       string
	variables []string
	program   *vm.Program
}

// Parse parses src into a Function. Identifiers that are not built-ins
// become free variables.
func Parse(src string) (*Function, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, fmt.Errorf("function: empty expression")
	}

	tree, err := parser.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("function: parse %q: %w", src, err)
	}

	collector := &identCollector{seen: make(map[string]bool)}
	ast.Walk(&tree.Node, collector)

	vars := make([]string, 0, len(collector.seen))
	for name := range collector.seen {
		vars = append(vars, name)
	}
	sort.Strings(vars)

	env := make(map[string]any, len(vars)+len(constants))
	for name, v := range constants {
		env[name] = v
	}
	for _, name := range vars {
		env[name] = 0.0
	}

	opts := append([]expr.Option{expr.Env(env)}, builtins()...)
	program, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("function: compile %q: %w", src, err)
	}

	return &Function{src: src, variables: vars, program: program}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level presets.
func MustParse(src string) *Function {
	f, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Function) String() string { return f.src }

// Variables returns the free variables in lexicographic order.
func (f *Function) Variables() []string {
	out := make([]string, len(f.variables))
	copy(out, f.variables)
	return out
}

// HasVariable reports whether name is one of the free variables.
func (f *Function) HasVariable(name string) bool {
	i := sort.SearchStrings(f.variables, name)
	return i < len(f.variables) && f.variables[i] == name
}

// Eval evaluates the function with the given variable bindings. Every free
// variable must be bound.
func (f *Function) Eval(vars map[string]float64) (float64, error) {
	env := make(map[string]any, len(f.variables)+len(constants))
	for name, v := range constants {
		env[name] = v
	}
	for _, name := range f.variables {
		v, ok := vars[name]
		if !ok {
			return 0, fmt.Errorf("function: variable %s is unbound in %q", name, f.src)
		}
		env[name] = v
	}

	out, err := expr.Run(f.program, env)
	if err != nil {
		return 0, fmt.Errorf("function: evaluate %q: %w", f.src, err)
	}
	return toFloat(out)
}

// At evaluates a function of the single variable name at x.
func (f *Function) At(name string, x float64) (float64, error) {
	return f.Eval(map[string]float64{name: x})
}

// Bind returns f as a function of name alone. It fails when f has any
// other free variable, since nothing could ever bind it.
func (f *Function) Bind(name string) (func(float64) (float64, error), error) {
	var unbound []string
	for _, v := range f.variables {
		if v != name {
			unbound = append(unbound, v)
		}
	}
	if len(unbound) > 0 {
		return nil, fmt.Errorf("function: %q has unbound variables %s besides %s",
			f.src, strings.Join(unbound, ", "), name)
	}
	return func(x float64) (float64, error) {
		return f.At(name, x)
	}, nil
}

type identCollector struct {
	seen map[string]bool
}

func (c *identCollector) Visit(node *ast.Node) {
	switch n := (*node).(type) {
	case *ast.IdentifierNode:
		if isBuiltin(n.Value) {
			return
		}
		c.seen[n.Value] = true
	}
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	default:
		return math.NaN(), fmt.Errorf("function: result %v (%T) is not a number", v, v)
	}
}
