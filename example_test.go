package mathex_test

import (
	"fmt"

	"github.com/qnrq/mathex"
)

func Example() {
	vm := &mathex.VM{}
	v, err := mathex.EvalString("x^2 + 1", vm)
	if err != nil {
		panic(err)
	}
	fmt.Println(v)

	vm.Insert("x", mathex.Constant(mathex.Int(3)))
	v, err = mathex.EvalString("x^2 + 1", vm)
	if err != nil {
		panic(err)
	}
	fmt.Println(v)
	// Output:
	// ((x ^ 2) + 1)
	// 10
}
