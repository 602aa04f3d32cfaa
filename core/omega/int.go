// Package omega implements integers extended with infinities.
//
// Int is a signed integer extended with two absorbing elements, -inf and +inf.
// UInt is an unsigned integer extended with a single infinity, ω. Both use a
// tagged representation: no finite value is ever reinterpreted as infinity.
//
// Ordering is total and always defined:
//
//	-inf < every finite value < +inf
//
// Arithmetic is partial. Operations without a consistent value (+inf + -inf,
// inf * 0, finite overflow, ...) return an error matching
// errors.ErrUndefinedArithmetic instead of wrapping around or saturating.
//
// Values are immutable and safe to share between goroutines.
package omega

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/ezoic/ztensor/pkg/errors"
)

type form uint8

const (
	finite form = iota
	posInf
	negInf
)

// Int is a signed omega integer: -inf, a finite N, or +inf.
// The zero value is finite zero.
type Int[N constraints.Signed] struct {
	form form
	v    N
}

// Finite returns the finite omega integer v.
func Finite[N constraints.Signed](v N) Int[N] {
	return Int[N]{v: v}
}

// PosInf returns +inf.
func PosInf[N constraints.Signed]() Int[N] {
	return Int[N]{form: posInf}
}

// NegInf returns -inf.
func NegInf[N constraints.Signed]() Int[N] {
	return Int[N]{form: negInf}
}

// IsFinite reports whether x is neither infinity.
func (x Int[N]) IsFinite() bool { return x.form == finite }

// IsPosInf reports whether x is +inf.
func (x Int[N]) IsPosInf() bool { return x.form == posInf }

// IsNegInf reports whether x is -inf.
func (x Int[N]) IsNegInf() bool { return x.form == negInf }

// Value returns the finite value of x. ok is false for both infinities.
func (x Int[N]) Value() (v N, ok bool) {
	if x.form != finite {
		return 0, false
	}
	return x.v, true
}

// Sign returns -1, 0 or +1.
func (x Int[N]) Sign() int {
	switch x.form {
	case posInf:
		return 1
	case negInf:
		return -1
	}
	switch {
	case x.v > 0:
		return 1
	case x.v < 0:
		return -1
	}
	return 0
}

// rank orders the three forms: -inf, finite, +inf.
func (x Int[N]) rank() int {
	switch x.form {
	case negInf:
		return 0
	case posInf:
		return 2
	}
	return 1
}

// Compare returns -1, 0 or +1 as x is less than, equal to or greater than y.
func (x Int[N]) Compare(y Int[N]) int {
	rx, ry := x.rank(), y.rank()
	switch {
	case rx < ry:
		return -1
	case rx > ry:
		return 1
	case rx != 1:
		return 0
	case x.v < y.v:
		return -1
	case x.v > y.v:
		return 1
	}
	return 0
}

// Less reports whether x < y.
func (x Int[N]) Less(y Int[N]) bool { return x.Compare(y) < 0 }

// Equal reports whether x == y.
func (x Int[N]) Equal(y Int[N]) bool { return x.Compare(y) == 0 }

// Min returns the smaller of x and y.
func Min[N constraints.Signed](x, y Int[N]) Int[N] {
	if y.Less(x) {
		return y
	}
	return x
}

// Max returns the larger of x and y.
func Max[N constraints.Signed](x, y Int[N]) Int[N] {
	if x.Less(y) {
		return y
	}
	return x
}

// isMinValue reports whether v is the most negative value of N.
func isMinValue[N constraints.Signed](v N) bool {
	return v < 0 && -v < 0
}

// Add returns x + y. Opposite infinities and finite overflow are undefined.
func (x Int[N]) Add(y Int[N]) (Int[N], error) {
	if x.form != finite || y.form != finite {
		switch {
		case x.form == finite:
			return y, nil
		case y.form == finite, x.form == y.form:
			return x, nil
		}
		return Int[N]{}, errors.NewArithmeticError("Int.Add", x, y, "opposite infinities")
	}
	s := x.v + y.v
	if (y.v > 0 && s < x.v) || (y.v < 0 && s > x.v) {
		return Int[N]{}, errors.NewArithmeticError("Int.Add", x, y, "overflow")
	}
	return Finite(s), nil
}

// Sub returns x - y, defined as x + (-y): equal infinities are undefined.
func (x Int[N]) Sub(y Int[N]) (Int[N], error) {
	if x.form != finite || y.form != finite {
		switch {
		case x.form == finite:
			return y.flip(), nil
		case y.form == finite, x.form != y.form:
			return x, nil
		}
		return Int[N]{}, errors.NewArithmeticError("Int.Sub", x, y, "equal infinities")
	}
	d := x.v - y.v
	if (y.v > 0 && d > x.v) || (y.v < 0 && d < x.v) {
		return Int[N]{}, errors.NewArithmeticError("Int.Sub", x, y, "overflow")
	}
	return Finite(d), nil
}

// flip negates an infinity. x must not be finite.
func (x Int[N]) flip() Int[N] {
	if x.form == posInf {
		return NegInf[N]()
	}
	return PosInf[N]()
}

// Neg returns -x. Negating the most negative finite value overflows.
func (x Int[N]) Neg() (Int[N], error) {
	if x.form != finite {
		return x.flip(), nil
	}
	if isMinValue(x.v) {
		return Int[N]{}, errors.NewUnaryArithmeticError("Int.Neg", x, "overflow")
	}
	return Finite(-x.v), nil
}

// Abs returns |x|; both infinities map to +inf.
func (x Int[N]) Abs() (Int[N], error) {
	if x.Sign() < 0 {
		return x.Neg()
	}
	return x, nil
}

// Signum returns the finite value -1, 0 or +1 with the sign of x.
func (x Int[N]) Signum() Int[N] {
	return Finite(N(x.Sign()))
}

// infWithSign returns the infinity with the given non-zero sign.
func infWithSign[N constraints.Signed](sign int) Int[N] {
	if sign > 0 {
		return PosInf[N]()
	}
	return NegInf[N]()
}

// Mul returns x * y. An infinity times zero and finite overflow are undefined.
func (x Int[N]) Mul(y Int[N]) (Int[N], error) {
	if x.form != finite || y.form != finite {
		s := x.Sign() * y.Sign()
		if s == 0 {
			return Int[N]{}, errors.NewArithmeticError("Int.Mul", x, y, "infinity times zero")
		}
		return infWithSign[N](s), nil
	}
	if x.v == 0 || y.v == 0 {
		return Finite[N](0), nil
	}
	if (x.v == -1 && isMinValue(y.v)) || (y.v == -1 && isMinValue(x.v)) {
		return Int[N]{}, errors.NewArithmeticError("Int.Mul", x, y, "overflow")
	}
	p := x.v * y.v
	if p/y.v != x.v {
		return Int[N]{}, errors.NewArithmeticError("Int.Mul", x, y, "overflow")
	}
	return Finite(p), nil
}

// Div returns x / y truncated toward zero. A finite value divided by an
// infinity is zero; an infinity divided by a non-zero finite value keeps the
// sign rule. Division by zero, infinity by infinity and overflow are undefined.
func (x Int[N]) Div(y Int[N]) (Int[N], error) {
	if y.form == finite && y.v == 0 {
		return Int[N]{}, errors.NewArithmeticError("Int.Div", x, y, "division by zero")
	}
	switch {
	case x.form != finite && y.form != finite:
		return Int[N]{}, errors.NewArithmeticError("Int.Div", x, y, "infinity divided by infinity")
	case x.form != finite:
		return infWithSign[N](x.Sign() * y.Sign()), nil
	case y.form != finite:
		return Finite[N](0), nil
	}
	if y.v == -1 && isMinValue(x.v) {
		return Int[N]{}, errors.NewArithmeticError("Int.Div", x, y, "overflow")
	}
	return Finite(x.v / y.v), nil
}

// Rem returns the remainder of x / y for finite operands, with the sign of x.
func (x Int[N]) Rem(y Int[N]) (Int[N], error) {
	if x.form != finite || y.form != finite {
		return Int[N]{}, errors.NewArithmeticError("Int.Rem", x, y, "infinite operand")
	}
	if y.v == 0 {
		return Int[N]{}, errors.NewArithmeticError("Int.Rem", x, y, "division by zero")
	}
	if y.v == -1 {
		return Finite[N](0), nil
	}
	return Finite(x.v % y.v), nil
}

// String formats x as "-inf", "+inf" or a decimal integer.
func (x Int[N]) String() string {
	switch x.form {
	case posInf:
		return "+inf"
	case negInf:
		return "-inf"
	}
	return strconv.FormatInt(int64(x.v), 10)
}

// Parse parses "-inf", "+inf", "inf" or a decimal integer that fits N.
func Parse[N constraints.Signed](s string) (Int[N], error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "+inf", "inf":
		return PosInf[N](), nil
	case "-inf":
		return NegInf[N](), nil
	}
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return Int[N]{}, errors.Wrapf(err, "omega: parse %q", s)
	}
	n := N(v)
	if int64(n) != v {
		return Int[N]{}, errors.Newf("omega: parse %q: value out of range", s)
	}
	return Finite(n), nil
}

// MarshalText implements encoding.TextMarshaler.
func (x Int[N]) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Int[N]) UnmarshalText(text []byte) error {
	v, err := Parse[N](string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}
