package formula

import "math"

// nan is the result of every undefined operation.
var nan = math.NaN()

type (
	monadic func(float64) float64
	dyadic  func(a, b float64) float64
)

// monadics are the functions callable with exactly one argument.
var monadics = map[string]monadic{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"asin": math.Asin,
	"acos": math.Acos,
	"atan": math.Atan,
	"sinh": math.Sinh,
	"cosh": math.Cosh,
	"tanh": math.Tanh,
	"sqrt": func(x float64) float64 {
		if x < 0 {
			return nan
		}
		return math.Sqrt(x)
	},
	"cbrt":  math.Cbrt,
	"abs":   math.Abs,
	"ceil":  math.Ceil,
	"floor": math.Floor,
	// math.Round rounds half away from zero, like C.
	"round": math.Round,
	"log":   positive(math.Log),
	"log2":  positive(math.Log2),
	"log10": positive(math.Log10),
	"exp":   math.Exp,
	"sign": func(x float64) float64 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		case x == 0:
			return 0
		default:
			return nan
		}
	},
}

// dyadics are the functions callable with exactly two arguments.
var dyadics = map[string]dyadic{
	"atan2": math.Atan2,
	"pow":   math.Pow,
	"min":   math.Min,
	"max":   math.Max,
	"mod": func(a, b float64) float64 {
		if b == 0 {
			return nan
		}
		return math.Mod(a, b)
	},
	// log(base, value)
	"log": func(base, x float64) float64 {
		if base <= 0 || x <= 0 || base == 1 {
			return nan
		}
		return math.Log(x) / math.Log(base)
	},
}

// constants are folded into number literals at parse time.
var constants = map[string]float64{
	"pi":  math.Pi,
	"e":   math.E,
	"tau": 2 * math.Pi,
}

// positive wraps a logarithm so that it gives NaN rather than -Inf at zero.
func positive(f monadic) monadic {
	return func(x float64) float64 {
		if x <= 0 {
			return nan
		}
		return f(x)
	}
}

// IsFunc returns whether name is a built-in function.
func IsFunc(name string) bool {
	return monadics[name] != nil || dyadics[name] != nil
}

// Constant returns the value of a built-in constant.
func Constant(name string) (float64, bool) {
	v, ok := constants[name]
	return v, ok
}

// Funcs returns the sorted names of the built-in functions.
func Funcs() []string {
	names := make([]string, 0, len(monadics)+len(dyadics))
	for k := range monadics {
		names = append(names, k)
	}
	for k := range dyadics {
		if monadics[k] == nil {
			names = append(names, k)
		}
	}
	sortstrs(names)
	return names
}

// call applies a built-in function to evaluated arguments. Calls with more
// arguments than the function takes use only the first argument, so sin(x, y)
// is sin(x). Anything else that does not match a function is NaN.
func call(name string, args []float64) float64 {
	switch len(args) {
	case 0:
		return nan
	case 1:
		if f := monadics[name]; f != nil {
			return f(args[0])
		}
		return nan
	case 2:
		if f := dyadics[name]; f != nil {
			return f(args[0], args[1])
		}
	}
	return call(name, args[:1])
}
