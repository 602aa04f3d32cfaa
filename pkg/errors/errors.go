// Package errors defines the error taxonomy shared by every ztensor package.
//
// All errors are local and recoverable. Typed errors carry the operation that
// failed and enough context to report the offending axis or operand, and each
// one matches a package sentinel through errors.Is:
//
//	_, err := t.Get(tensor.C(5, 0))
//	if errors.Is(err, errors.ErrOutOfBounds) {
//		// coordinate outside the shape
//	}
//
// The package re-exports the cockroachdb/errors constructors so callers need a
// single import for both sentinels and wrapping.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"go.uber.org/multierr"
)

const prefix = "ztensor"

// Sentinel errors. Typed errors below unwrap to (or match) one of these.
var (
	// ErrInvalidRange marks a range with start > end, or an empty slice intersection.
	ErrInvalidRange = errors.New("invalid range")
	// ErrOutOfBounds marks a coordinate outside a shape, including a dimension-count mismatch.
	ErrOutOfBounds = errors.New("index out of bounds")
	// ErrDimensionMismatch marks an operand with the wrong number of dimensions.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrUndefinedArithmetic marks opposite infinities combined, or finite overflow.
	ErrUndefinedArithmetic = errors.New("undefined arithmetic")
	// ErrInfiniteDimension marks bulk evaluation requested over an unbounded axis.
	ErrInfiniteDimension = errors.New("infinite dimension")
	// ErrNotImplemented marks an unsupported operation.
	ErrNotImplemented = errors.New("not implemented")
	// ErrPanic marks a panic recovered by Recover.
	ErrPanic = errors.New("panic")
)

// Re-exported constructors from cockroachdb/errors.
var (
	New    = errors.New
	Newf   = errors.Newf
	Wrap   = errors.Wrap
	Wrapf  = errors.Wrapf
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
)

// RangeError reports a malformed range on one axis.
type RangeError struct {
	Op     string
	Axis   int // -1 when the range is not tied to an axis
	Start  string
	End    string
	Reason string
}

func (e *RangeError) Error() string {
	if e.Axis < 0 {
		return fmt.Sprintf("%s: %s: invalid range [%s, %s): %s", prefix, e.Op, e.Start, e.End, e.Reason)
	}
	return fmt.Sprintf("%s: %s: invalid range [%s, %s) on axis %d: %s", prefix, e.Op, e.Start, e.End, e.Axis, e.Reason)
}

func (e *RangeError) Unwrap() error { return ErrInvalidRange }

// NewRangeError creates a RangeError not tied to an axis.
func NewRangeError(op string, start, end fmt.Stringer, reason string) error {
	return &RangeError{Op: op, Axis: -1, Start: start.String(), End: end.String(), Reason: reason}
}

// NewAxisRangeError creates a RangeError for the given axis.
func NewAxisRangeError(op string, axis int, start, end fmt.Stringer, reason string) error {
	return &RangeError{Op: op, Axis: axis, Start: start.String(), End: end.String(), Reason: reason}
}

// IndexError reports a coordinate component outside its axis range.
type IndexError struct {
	Op    string
	Axis  int
	Index string
	Range string
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: %s: index %s out of bounds for axis %d with range %s", prefix, e.Op, e.Index, e.Axis, e.Range)
}

func (e *IndexError) Unwrap() error { return ErrOutOfBounds }

// NewIndexError creates an IndexError.
func NewIndexError(op string, axis int, index, rng fmt.Stringer) error {
	return &IndexError{Op: op, Axis: axis, Index: index.String(), Range: rng.String()}
}

// DimensionError reports a dimension-count mismatch. It matches both
// ErrDimensionMismatch and ErrOutOfBounds. Axis is -1 when the mismatch is
// in the number of dimensions rather than on a single axis.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int
}

func (e *DimensionError) Error() string {
	if e.Axis < 0 {
		return fmt.Sprintf("%s: %s: dimension mismatch: expected %d, got %d", prefix, e.Op, e.Expected, e.Got)
	}
	return fmt.Sprintf("%s: %s: dimension mismatch: expected %d, got %d (axis %d)", prefix, e.Op, e.Expected, e.Got, e.Axis)
}

// Is reports whether target is one of the sentinels a DimensionError stands for.
func (e *DimensionError) Is(target error) bool {
	return target == ErrDimensionMismatch || target == ErrOutOfBounds
}

// NewDimensionError creates a DimensionError.
func NewDimensionError(op string, expected, got, axis int) error {
	return &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
}

// ArithmeticError reports an omega-integer operation without a defined result.
type ArithmeticError struct {
	Op     string
	Lhs    string
	Rhs    string
	Reason string
}

func (e *ArithmeticError) Error() string {
	if e.Rhs == "" {
		return fmt.Sprintf("%s: %s: %s: %s", prefix, e.Op, e.Lhs, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s, %s: %s", prefix, e.Op, e.Lhs, e.Rhs, e.Reason)
}

func (e *ArithmeticError) Unwrap() error { return ErrUndefinedArithmetic }

// NewArithmeticError creates an ArithmeticError for a binary operation.
func NewArithmeticError(op string, lhs, rhs fmt.Stringer, reason string) error {
	return &ArithmeticError{Op: op, Lhs: lhs.String(), Rhs: rhs.String(), Reason: reason}
}

// NewUnaryArithmeticError creates an ArithmeticError for a unary operation.
func NewUnaryArithmeticError(op string, x fmt.Stringer, reason string) error {
	return &ArithmeticError{Op: op, Lhs: x.String(), Reason: reason}
}

// InfiniteDimensionError reports an unbounded axis where a finite one is required.
type InfiniteDimensionError struct {
	Op    string
	Axis  int
	Range string
}

func (e *InfiniteDimensionError) Error() string {
	return fmt.Sprintf("%s: %s: axis %d has unbounded range %s", prefix, e.Op, e.Axis, e.Range)
}

func (e *InfiniteDimensionError) Unwrap() error { return ErrInfiniteDimension }

// NewInfiniteDimensionError creates an InfiniteDimensionError.
func NewInfiniteDimensionError(op string, axis int, rng fmt.Stringer) error {
	return &InfiniteDimensionError{Op: op, Axis: axis, Range: rng.String()}
}

// ValueError reports an invalid argument.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: %s: %s", prefix, e.Op, e.Message)
}

// NewValueError creates a ValueError.
func NewValueError(op, message string) error {
	return &ValueError{Op: op, Message: message}
}

// TensorError wraps an underlying error with the operation and a short kind.
type TensorError struct {
	Op   string
	Kind string
	Err  error
}

func (e *TensorError) Error() string {
	return fmt.Sprintf("%s: %s: %s: %v", prefix, e.Op, e.Kind, e.Err)
}

func (e *TensorError) Unwrap() error { return e.Err }

// NewTensorError creates a TensorError.
func NewTensorError(op, kind string, err error) error {
	return &TensorError{Op: op, Kind: kind, Err: err}
}

// Recover converts a panic in the calling function into an error stored in
// *err. It must be deferred directly:
//
//	func (t *Lazy[E]) Get(c Coord) (_ E, err error) {
//		defer errors.Recover(&err, "Lazy.Get")
//		...
//	}
func Recover(err *error, op string) {
	if r := recover(); r != nil {
		*err = NewTensorError(op, "panic", errors.Wrapf(ErrPanic, "%v", r))
	}
}

// Append combines err and next. Either may be nil. The result matches every
// member through errors.Is and errors.As.
func Append(err, next error) error {
	return multierr.Append(err, next)
}

// Errors returns the members of an error built with Append.
func Errors(err error) []error {
	return multierr.Errors(err)
}
