package mathex

import (
	"math"
	"strconv"
)

// Number is a numeric value that is either a 64-bit signed integer or a
// double. Arithmetic between two integers stays integral except for division
// and fractional or negative exponents, which promote to double.
type Number struct {
	i     int64
	f     float64
	isInt bool
}

// Int returns the integer Number i.
func Int(i int64) Number { return Number{i: i, isInt: true} }

// Float returns the double Number f.
func Float(f float64) Number { return Number{f: f} }

// numberFromToken parses a number literal token. Tokens with a decimal point
// become doubles, all others integers.
func numberFromToken(t Token) (Number, bool) {
	if t.HasDecimal {
		f, err := strconv.ParseFloat(t.Text, 64)
		if err != nil {
			return Number{}, false
		}
		return Float(f), true
	}
	i, err := strconv.ParseInt(t.Text, 10, 64)
	if err != nil {
		return Number{}, false
	}
	return Int(i), true
}

// IsInt reports whether the number is an integer.
func (n Number) IsInt() bool { return n.isInt }

// Int returns the integer value. It is zero if the number is a double.
func (n Number) Int() int64 { return n.i }

// Float returns the double value. It is zero if the number is an integer.
func (n Number) Float() float64 { return n.f }

// Float64 promotes the number to a double.
func (n Number) Float64() float64 {
	if n.isInt {
		return float64(n.i)
	}
	return n.f
}

// Add returns n + m, integral if both operands are.
func (n Number) Add(m Number) Number {
	if n.isInt && m.isInt {
		return Int(n.i + m.i)
	}
	return Float(n.Float64() + m.Float64())
}

// Sub returns n - m, integral if both operands are.
func (n Number) Sub(m Number) Number {
	if n.isInt && m.isInt {
		return Int(n.i - m.i)
	}
	return Float(n.Float64() - m.Float64())
}

// Mul returns n * m, integral if both operands are.
func (n Number) Mul(m Number) Number {
	if n.isInt && m.isInt {
		return Int(n.i * m.i)
	}
	return Float(n.Float64() * m.Float64())
}

// Div returns n / m. Division always promotes to double; integer division is
// never performed.
func (n Number) Div(m Number) Number {
	return Float(n.Float64() / m.Float64())
}

// Pow returns n raised to m. An integer base with a non-negative integer
// exponent stays in the integer domain; everything else evaluates as a
// floating-point power. A zero base with a non-positive exponent yields 0 to
// avoid a domain error.
func (n Number) Pow(m Number) Number {
	if n.isInt && m.isInt {
		return ipow(n.i, m.i)
	}
	return fpow(n.Float64(), m.Float64())
}

func ipow(base, exp int64) Number {
	if base == 0 && exp <= 0 {
		return Int(0)
	}
	if exp < 0 {
		return Float(1 / ipow(base, -exp).Float64())
	}
	var r int64 = 1
	for b := base; exp > 0; exp >>= 1 {
		if exp&1 == 1 {
			r *= b
		}
		b *= b
	}
	return Int(r)
}

func fpow(base, exp float64) Number {
	if base == 0 && exp <= 0 {
		return Float(0)
	}
	return Float(math.Pow(base, exp))
}

// Equal reports strict, type-aware equality: an integer never equals a
// double.
func (n Number) Equal(m Number) bool {
	if n.isInt != m.isInt {
		return false
	}
	if n.isInt {
		return n.i == m.i
	}
	return n.f == m.f
}

const approxEpsilon = 1e-9

// ApproxEqual promotes both numbers to double and compares within a small
// epsilon.
func (n Number) ApproxEqual(m Number) bool {
	d := n.Float64() - m.Float64()
	return d < approxEpsilon && d > -approxEpsilon
}

func (n Number) String() string {
	if n.isInt {
		return strconv.FormatInt(n.i, 10)
	}
	return strconv.FormatFloat(n.f, 'g', -1, 64)
}
