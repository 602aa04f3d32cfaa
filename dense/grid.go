package dense

import (
	"math"

	"github.com/ezoic/ztensor/core/tensor"
	"github.com/ezoic/ztensor/pkg/errors"
)

// Grid is a materialized tensor: every element of a finite Shape stored in
// row-major order. It answers Get at the same absolute coordinates as the
// tensor it was built from. A Grid is never modified after Materialize returns.
type Grid[E any] struct {
	shape   tensor.Shape
	origin  []int64
	dims    []int
	strides []int
	data    []E
}

var _ tensor.Tensor[float64] = (*Grid[float64])(nil)

// newGrid allocates a Grid over a finite shape.
func newGrid[E any](op string, shape tensor.Shape) (*Grid[E], error) {
	if axis, found := shape.FirstInfinite(); found {
		return nil, errors.NewInfiniteDimensionError(op, axis, shape.Range(axis))
	}
	size, err := shape.Size()
	if err != nil {
		return nil, err
	}
	n, _ := size.Value()
	if n > math.MaxInt {
		return nil, errors.Wrapf(errors.ErrUndefinedArithmetic, "%s: %d elements exceed addressable memory", op, n)
	}

	rank := shape.Dims()
	g := &Grid[E]{
		shape:   shape,
		origin:  make([]int64, rank),
		dims:    make([]int, rank),
		strides: make([]int, rank),
		data:    make([]E, int(n)),
	}
	for axis := 0; axis < rank; axis++ {
		r := shape.Range(axis)
		start, _ := r.Start().Value()
		length, _ := r.Len()
		if length > math.MaxInt {
			return nil, errors.Wrapf(errors.ErrUndefinedArithmetic, "%s: axis %d length %d exceeds addressable memory", op, axis, length)
		}
		g.origin[axis] = start
		g.dims[axis] = int(length)
	}
	stride := 1
	for axis := rank - 1; axis >= 0; axis-- {
		g.strides[axis] = stride
		stride *= g.dims[axis]
	}
	return g, nil
}

// Shape returns the coordinate domain of g.
func (g *Grid[E]) Shape() tensor.Shape { return g.shape }

// Dims returns the length of each axis.
func (g *Grid[E]) Dims() []int { return append([]int(nil), g.dims...) }

// Len returns the number of elements.
func (g *Grid[E]) Len() int { return len(g.data) }

// Data returns a copy of the elements in row-major order.
func (g *Grid[E]) Data() []E { return append([]E(nil), g.data...) }

// Get returns the stored element at c.
func (g *Grid[E]) Get(c tensor.Coord) (E, error) {
	if err := g.shape.Check(c); err != nil {
		var zero E
		return zero, errors.Wrap(err, "Grid.Get")
	}
	return g.data[g.offset(c)], nil
}

// At is Get with finite components given inline.
func (g *Grid[E]) At(idx ...int64) (E, error) {
	return g.Get(tensor.C(idx...))
}

// Slice returns a lazy view of g narrowed to ranges. The view reads from g and
// keeps absolute coordinates.
func (g *Grid[E]) Slice(ranges ...tensor.Range) (tensor.Tensor[E], error) {
	shape, err := g.shape.Narrow(ranges...)
	if err != nil {
		return nil, err
	}
	view, err := tensor.New(shape, g.lookup)
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Lazy returns a lazy tensor reading from g over g's full shape.
func (g *Grid[E]) Lazy() *tensor.Lazy[E] {
	t, _ := tensor.New(g.shape, g.lookup) // lookup is never nil
	return t
}

func (g *Grid[E]) lookup(c tensor.Coord) E {
	return g.data[g.offset(c)]
}

// offset returns the row-major position of a coordinate valid in g.
func (g *Grid[E]) offset(c tensor.Coord) int {
	off := 0
	for axis, stride := range g.strides {
		off += int(c.At(axis)-g.origin[axis]) * stride
	}
	return off
}

// coordAt fills idx with the coordinate stored at row-major position k.
func (g *Grid[E]) coordAt(k int, idx []int64) {
	for axis := len(g.dims) - 1; axis >= 0; axis-- {
		idx[axis] = g.origin[axis] + int64(k%g.dims[axis])
		k /= g.dims[axis]
	}
}

// advance moves idx to the next coordinate in row-major order.
func (g *Grid[E]) advance(idx []int64) {
	for axis := len(g.dims) - 1; axis >= 0; axis-- {
		idx[axis]++
		if idx[axis] < g.origin[axis]+int64(g.dims[axis]) {
			return
		}
		idx[axis] = g.origin[axis]
	}
}
