package mathex

import (
	"math"
	"strconv"
)

// Func is a built-in function over fully reduced arguments. Each
// implementation validates its own arity.
type Func struct {
	Name string
	Fn   func(args []Number) (Number, error)
}

// builtins is the fixed function table, populated once and never mutated.
// Lookup is a linear scan; the table is small enough that anything fancier
// would be a loss.
var builtins = []Func{
	{"sqrt", fnSqrt},
	{"log2", fnLog2},
	{"ln", fnLn},
}

// FindFunc returns the built-in function with the given name, or nil if
// there is none.
func FindFunc(name string) *Func {
	for i := range builtins {
		if builtins[i].Name == name {
			return &builtins[i]
		}
	}
	return nil
}

func arityError(name string, got int) error {
	return &ExecutionError{Message: name + " expects 1 argument, got " + strconv.Itoa(got)}
}

func fnSqrt(args []Number) (Number, error) {
	if len(args) != 1 {
		return Number{}, arityError("sqrt", len(args))
	}
	x := args[0].Float64()
	if x < 0 {
		return Number{}, &ExecutionError{Message: "sqrt of negative number " + args[0].String()}
	}
	return Float(math.Sqrt(x)), nil
}

func fnLog2(args []Number) (Number, error) {
	if len(args) != 1 {
		return Number{}, arityError("log2", len(args))
	}
	x := args[0].Float64()
	if x <= 0 {
		return Number{}, &ExecutionError{Message: "log2 of non-positive number " + args[0].String()}
	}
	return Float(math.Log2(x)), nil
}

func fnLn(args []Number) (Number, error) {
	if len(args) != 1 {
		return Number{}, arityError("ln", len(args))
	}
	x := args[0].Float64()
	if x <= 0 {
		return Number{}, &ExecutionError{Message: "ln of non-positive number " + args[0].String()}
	}
	return Float(math.Log(x)), nil
}
