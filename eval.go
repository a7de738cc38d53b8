package formula

import "math"

// Vars binds variable names to values for one evaluation.
type Vars map[string]float64

// Eval evaluates a tree with the given variable bindings. Every undefined
// operation gives NaN instead of an error: division by zero, a function
// argument outside the function's domain, a variable missing from vars, and
// a call that matches no built-in function. Eval of a nil node is NaN.
//
// Eval does not modify n, so the same tree may be evaluated concurrently as
// long as each goroutine uses its own vars.
func Eval(n Node, vars Vars) float64 {
	switch n := n.(type) {
	case *Number:
		return n.Value
	case *Variable:
		v, ok := vars[n.Name]
		if !ok {
			return nan
		}
		return v
	case *Binary:
		// Both sides are always evaluated.
		l := Eval(n.Left, vars)
		r := Eval(n.Right, vars)
		switch n.Op {
		case OpAdd:
			return l + r
		case OpSubtract:
			return l - r
		case OpMultiply:
			return l * r
		case OpDivide:
			// Division by zero is NaN, not ±Inf.
			if r == 0 {
				return nan
			}
			return l / r
		case OpPower:
			return math.Pow(l, r)
		}
	case *Unary:
		v := Eval(n.Operand, vars)
		switch n.Op {
		case OpNegate:
			return -v
		case OpIdentity:
			return v
		}
	case *Call:
		var buf [4]float64
		args := buf[:0]
		for _, arg := range n.Args {
			args = append(args, Eval(arg, vars))
		}
		return call(n.Name, args)
	}
	return nan
}

// Eval evaluates the expression with the given variable bindings. See the
// package-level Eval for the handling of undefined operations.
func (e *Expr) Eval(vars Vars) float64 {
	if e == nil {
		return nan
	}
	return Eval(e.root, vars)
}

// EvalString is a shortcut to parse and evaluate a formula.
func EvalString(src string, vars Vars) (float64, error) {
	a, err := Parse(src)
	if err != nil {
		return nan, err
	}
	return a.Eval(vars), nil
}
