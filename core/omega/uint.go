package omega

import (
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/ezoic/ztensor/pkg/errors"
)

// UInt is an unsigned omega integer: a natural number N or ω.
// The zero value is natural zero.
type UInt[N constraints.Unsigned] struct {
	omega bool
	v     N
}

// Natural returns the finite unsigned omega integer v.
func Natural[N constraints.Unsigned](v N) UInt[N] {
	return UInt[N]{v: v}
}

// Omega returns ω.
func Omega[N constraints.Unsigned]() UInt[N] {
	return UInt[N]{omega: true}
}

// IsOmega reports whether x is ω.
func (x UInt[N]) IsOmega() bool { return x.omega }

// Value returns the finite value of x. ok is false for ω.
func (x UInt[N]) Value() (v N, ok bool) {
	if x.omega {
		return 0, false
	}
	return x.v, true
}

// IsZero reports whether x is natural zero.
func (x UInt[N]) IsZero() bool { return !x.omega && x.v == 0 }

// Compare returns -1, 0 or +1 as x is less than, equal to or greater than y.
func (x UInt[N]) Compare(y UInt[N]) int {
	switch {
	case x.omega && y.omega:
		return 0
	case x.omega:
		return 1
	case y.omega:
		return -1
	case x.v < y.v:
		return -1
	case x.v > y.v:
		return 1
	}
	return 0
}

// Less reports whether x < y.
func (x UInt[N]) Less(y UInt[N]) bool { return x.Compare(y) < 0 }

// Equal reports whether x == y.
func (x UInt[N]) Equal(y UInt[N]) bool { return x.Compare(y) == 0 }

// MinU returns the smaller of x and y.
func MinU[N constraints.Unsigned](x, y UInt[N]) UInt[N] {
	if y.Less(x) {
		return y
	}
	return x
}

// MaxU returns the larger of x and y.
func MaxU[N constraints.Unsigned](x, y UInt[N]) UInt[N] {
	if x.Less(y) {
		return y
	}
	return x
}

// Add returns x + y. ω absorbs; finite overflow is undefined.
func (x UInt[N]) Add(y UInt[N]) (UInt[N], error) {
	if x.omega || y.omega {
		return Omega[N](), nil
	}
	s := x.v + y.v
	if s < x.v {
		return UInt[N]{}, errors.NewArithmeticError("UInt.Add", x, y, "overflow")
	}
	return Natural(s), nil
}

// Sub returns x - y. ω - n is ω; subtracting ω or going below zero is undefined.
func (x UInt[N]) Sub(y UInt[N]) (UInt[N], error) {
	switch {
	case y.omega:
		return UInt[N]{}, errors.NewArithmeticError("UInt.Sub", x, y, "subtracting omega")
	case x.omega:
		return x, nil
	case y.v > x.v:
		return UInt[N]{}, errors.NewArithmeticError("UInt.Sub", x, y, "negative result")
	}
	return Natural(x.v - y.v), nil
}

// Mul returns x * y. ω times zero and finite overflow are undefined.
func (x UInt[N]) Mul(y UInt[N]) (UInt[N], error) {
	if x.omega || y.omega {
		if x.IsZero() || y.IsZero() {
			return UInt[N]{}, errors.NewArithmeticError("UInt.Mul", x, y, "omega times zero")
		}
		return Omega[N](), nil
	}
	if x.v == 0 || y.v == 0 {
		return Natural[N](0), nil
	}
	p := x.v * y.v
	if p/y.v != x.v {
		return UInt[N]{}, errors.NewArithmeticError("UInt.Mul", x, y, "overflow")
	}
	return Natural(p), nil
}

// Div returns x / y truncated. n / ω is zero and ω / n is ω; ω / ω and
// division by zero are undefined.
func (x UInt[N]) Div(y UInt[N]) (UInt[N], error) {
	switch {
	case y.IsZero():
		return UInt[N]{}, errors.NewArithmeticError("UInt.Div", x, y, "division by zero")
	case x.omega && y.omega:
		return UInt[N]{}, errors.NewArithmeticError("UInt.Div", x, y, "omega divided by omega")
	case x.omega:
		return x, nil
	case y.omega:
		return Natural[N](0), nil
	}
	return Natural(x.v / y.v), nil
}

// String formats x as "ω" or a decimal integer.
func (x UInt[N]) String() string {
	if x.omega {
		return "ω"
	}
	return strconv.FormatUint(uint64(x.v), 10)
}
