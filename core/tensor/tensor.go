package tensor

import (
	"github.com/ezoic/ztensor/pkg/errors"
)

// ValueFunc computes the element at a coordinate. It is only ever called with
// coordinates valid in the tensor's Shape, and must be pure: the same
// coordinate always yields the same element, with no observable side effects.
type ValueFunc[E any] func(c Coord) E

// Tensor is the capability set shared by lazy and materialized tensors.
type Tensor[E any] interface {
	// Shape returns the coordinate domain.
	Shape() Shape
	// Get returns the element at c, or an error if c is not valid in Shape.
	Get(c Coord) (E, error)
	// Slice returns a view narrowed to ranges, keeping absolute coordinates.
	Slice(ranges ...Range) (Tensor[E], error)
}

// Lazy is a tensor whose elements are computed on demand by a value function.
// It never caches: every Get calls the function once.
type Lazy[E any] struct {
	shape Shape
	fn    ValueFunc[E]
}

var _ Tensor[float64] = (*Lazy[float64])(nil)

// New returns a Lazy tensor over shape. The function is stored unevaluated.
func New[E any](shape Shape, fn ValueFunc[E]) (*Lazy[E], error) {
	if fn == nil {
		return nil, errors.NewValueError("tensor.New", "value function is nil")
	}
	return &Lazy[E]{shape: shape, fn: fn}, nil
}

// FromRangesValues returns a Lazy tensor with one range per dimension.
func FromRangesValues[E any](ranges []Range, fn ValueFunc[E]) (*Lazy[E], error) {
	return New(NewShape(ranges...), fn)
}

// Shape returns the coordinate domain of t.
func (t *Lazy[E]) Shape() Shape { return t.shape }

// Dims returns the number of dimensions of t.
func (t *Lazy[E]) Dims() int { return t.shape.Dims() }

// Get validates c against the shape and evaluates the value function at c.
// Out-of-bounds components and dimension mismatches are returned as errors;
// a panic in the value function is returned as a TensorError.
func (t *Lazy[E]) Get(c Coord) (elem E, err error) {
	defer errors.Recover(&err, "Lazy.Get")
	if err = t.shape.check("Lazy.Get", c); err != nil {
		return elem, err
	}
	return t.fn(c), nil
}

// At is Get with finite components given inline.
func (t *Lazy[E]) At(idx ...int64) (E, error) {
	return t.Get(coordOf(append([]int64(nil), idx...)))
}
