package mathex_test

import (
	"testing"

	"github.com/qnrq/mathex"
)

func FuzzParse(f *testing.F) {
	f.Add("x")
	f.Add("1+1")
	f.Add("-2(2)^3")
	f.Add("sqrt(1,2)")
	f.Add("1.2.3")
	f.Fuzz(func(t *testing.T, s string) {
		mathex.ParseString(s)
	})
}
