package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ztErrors "github.com/ezoic/ztensor/pkg/errors"
)

// TestErrorWrappingCompatibility tests Go 1.13+ error wrapping with our custom types
func TestErrorWrappingCompatibility(t *testing.T) {
	originalErr := ztErrors.NewInfiniteDimensionError("dense.Materialize", 1, label("[0, +inf)"))
	wrappedErr := fmt.Errorf("export failed: %w", originalErr)

	assert.True(t, errors.Is(wrappedErr, originalErr))
	assert.True(t, errors.Is(wrappedErr, ztErrors.ErrInfiniteDimension))

	var infErr *ztErrors.InfiniteDimensionError
	require.True(t, errors.As(wrappedErr, &infErr))
	assert.Equal(t, 1, infErr.Axis)
	assert.Equal(t, "[0, +inf)", infErr.Range)
}

// TestSentinelMatching checks every typed error against its sentinel
func TestSentinelMatching(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"range", ztErrors.NewRangeError("NewRange", label("3"), label("1"), "start greater than end"), ztErrors.ErrInvalidRange},
		{"axis range", ztErrors.NewAxisRangeError("Lazy.Slice", 2, label("3"), label("3"), "empty intersection"), ztErrors.ErrInvalidRange},
		{"index", ztErrors.NewIndexError("Lazy.Get", 0, label("9"), label("[0, 5)")), ztErrors.ErrOutOfBounds},
		{"dimension mismatch", ztErrors.NewDimensionError("Lazy.Get", 2, 1, -1), ztErrors.ErrDimensionMismatch},
		{"dimension out of bounds", ztErrors.NewDimensionError("Lazy.Get", 2, 1, -1), ztErrors.ErrOutOfBounds},
		{"arithmetic", ztErrors.NewArithmeticError("Int.Add", label("+inf"), label("-inf"), "opposite infinities"), ztErrors.ErrUndefinedArithmetic},
		{"unary arithmetic", ztErrors.NewUnaryArithmeticError("Int.Neg", label("-9223372036854775808"), "overflow"), ztErrors.ErrUndefinedArithmetic},
		{"infinite", ztErrors.NewInfiniteDimensionError("dense.Materialize", 0, label("(-inf, 0)")), ztErrors.ErrInfiniteDimension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.err, tt.sentinel))
			assert.True(t, ztErrors.Is(fmt.Errorf("ctx: %w", tt.err), tt.sentinel))
		})
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	err := ztErrors.NewIndexError("Lazy.Get", 0, label("9"), label("[0, 5)"))
	assert.False(t, errors.Is(err, ztErrors.ErrInvalidRange))
	assert.False(t, errors.Is(err, ztErrors.ErrDimensionMismatch))

	rangeErr := ztErrors.NewRangeError("NewRange", label("3"), label("1"), "start greater than end")
	assert.False(t, errors.Is(rangeErr, ztErrors.ErrOutOfBounds))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t,
		"ztensor: NewRange: invalid range [3, 1): start greater than end",
		ztErrors.NewRangeError("NewRange", label("3"), label("1"), "start greater than end").Error())
	assert.Equal(t,
		"ztensor: Lazy.Slice: invalid range [5, 5) on axis 1: empty intersection",
		ztErrors.NewAxisRangeError("Lazy.Slice", 1, label("5"), label("5"), "empty intersection").Error())
	assert.Equal(t,
		"ztensor: Int.Add: +inf, -inf: opposite infinities",
		ztErrors.NewArithmeticError("Int.Add", label("+inf"), label("-inf"), "opposite infinities").Error())
	assert.Equal(t,
		"ztensor: Lazy.New: value function is nil",
		ztErrors.NewValueError("Lazy.New", "value function is nil").Error())
}

// TestCombinedErrorTypes tests TensorError wrapping a standard error
func TestCombinedErrorTypes(t *testing.T) {
	stdErr := fmt.Errorf("standard error")
	tensorErr := ztErrors.NewTensorError("Lazy.Get", "evaluation", stdErr)
	wrappedErr := fmt.Errorf("operation context: %w", tensorErr)

	assert.True(t, errors.Is(wrappedErr, stdErr))

	var te *ztErrors.TensorError
	require.True(t, errors.As(wrappedErr, &te))
	assert.Equal(t, stdErr, te.Unwrap())
}

func TestRecover(t *testing.T) {
	run := func() (err error) {
		defer ztErrors.Recover(&err, "Lazy.Get")
		panic("boom")
	}

	err := run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ztErrors.ErrPanic))
	assert.Contains(t, err.Error(), "boom")

	var te *ztErrors.TensorError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "Lazy.Get", te.Op)
}

func TestRecoverWithoutPanic(t *testing.T) {
	run := func() (err error) {
		defer ztErrors.Recover(&err, "Lazy.Get")
		return nil
	}
	assert.NoError(t, run())
}

func TestAppend(t *testing.T) {
	assert.NoError(t, ztErrors.Append(nil, nil))

	first := ztErrors.NewIndexError("Lazy.Get", 0, label("9"), label("[0, 5)"))
	assert.Equal(t, first, ztErrors.Append(nil, first))

	second := ztErrors.NewRangeError("NewRange", label("3"), label("1"), "start greater than end")
	combined := ztErrors.Append(first, second)
	assert.Len(t, ztErrors.Errors(combined), 2)
	assert.True(t, errors.Is(combined, ztErrors.ErrOutOfBounds))
	assert.True(t, errors.Is(combined, ztErrors.ErrInvalidRange))

	var re *ztErrors.RangeError
	assert.True(t, errors.As(combined, &re))
}

func TestDimensionErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		axis int
		want string
	}{
		{"dimension count", -1, "ztensor: Lazy.Get: dimension mismatch: expected 2, got 1"},
		{"single axis", 3, "ztensor: Lazy.Get: dimension mismatch: expected 2, got 1 (axis 3)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, ztErrors.NewDimensionError("Lazy.Get", 2, 1, tt.axis), tt.want)
		})
	}
}
