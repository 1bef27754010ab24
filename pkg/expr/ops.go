package expr

import "math"

// The primitive operations. Division-like and domain-restricted
// operations are protected so every tree evaluates without faulting:
// log returns 0 at zero and takes |x| otherwise, sqrt returns 0 for
// negative input, and aq is the analytical quotient
// aq(x1, x2) = x1 / sqrt(1 + x2^2), which never divides by zero.
var (
	Add = &Func{Name: "add", Arity: 2, Apply: func(args ...float64) float64 {
		return args[0] + args[1]
	}}

	Sub = &Func{Name: "sub", Arity: 2, Apply: func(args ...float64) float64 {
		return args[0] - args[1]
	}}

	Mul = &Func{Name: "mul", Arity: 2, Apply: func(args ...float64) float64 {
		return args[0] * args[1]
	}}

	AQ = &Func{Name: "aq", Arity: 2, Apply: func(args ...float64) float64 {
		return args[0] / math.Sqrt(1+args[1]*args[1])
	}}

	Sin = &Func{Name: "sin", Arity: 1, Apply: func(args ...float64) float64 {
		return math.Sin(args[0])
	}}

	Tanh = &Func{Name: "tanh", Arity: 1, Apply: func(args ...float64) float64 {
		return math.Tanh(args[0])
	}}

	Exp = &Func{Name: "exp", Arity: 1, Apply: func(args ...float64) float64 {
		return math.Exp(args[0])
	}}

	Log = &Func{Name: "log", Arity: 1, Apply: func(args ...float64) float64 {
		if args[0] == 0 {
			return 0
		}
		return math.Log(math.Abs(args[0]))
	}}

	Sqrt = &Func{Name: "sqrt", Arity: 1, Apply: func(args ...float64) float64 {
		if args[0] < 0 {
			return 0
		}
		return math.Sqrt(args[0])
	}}
)
