package tensor

import (
	"math/cmplx"

	"github.com/ezoic/ztensor/pkg/errors"
)

// Permute returns a lazy view whose axis i is axis axes[i] of t. axes must be
// a permutation of 0..Dims()-1.
func (t *Lazy[E]) Permute(axes ...int) (*Lazy[E], error) {
	n := t.shape.Dims()
	if len(axes) != n {
		return nil, errors.NewDimensionError("Lazy.Permute", n, len(axes), -1)
	}
	seen := make([]bool, n)
	ranges := make([]Range, n)
	for i, a := range axes {
		if a < 0 || a >= n || seen[a] {
			return nil, errors.NewValueError("Lazy.Permute", "axes must be a permutation of the tensor dimensions")
		}
		seen[a] = true
		ranges[i] = t.shape.ranges[a]
	}
	perm := append([]int(nil), axes...)
	fn := t.fn
	return &Lazy[E]{
		shape: Shape{ranges: ranges},
		fn: func(c Coord) E {
			src := make([]int64, len(perm))
			for i, a := range perm {
				src[a] = c.vals[i]
			}
			return fn(coordOf(src))
		},
	}, nil
}

// Transpose swaps the two axes of a 2-D tensor.
func (t *Lazy[E]) Transpose() (*Lazy[E], error) {
	if t.shape.Dims() != 2 {
		return nil, errors.NewDimensionError("Lazy.Transpose", 2, t.shape.Dims(), -1)
	}
	return t.Permute(1, 0)
}

// Map returns a lazy tensor over t's shape whose elements are fn applied to
// t's elements. fn must be pure.
func Map[E, F any](t *Lazy[E], fn func(E) F) (*Lazy[F], error) {
	if fn == nil {
		return nil, errors.NewValueError("tensor.Map", "map function is nil")
	}
	src := t.fn
	return &Lazy[F]{
		shape: t.shape,
		fn:    func(c Coord) F { return fn(src(c)) },
	}, nil
}

// ConjTranspose returns the conjugate transpose of a 2-D complex tensor.
func ConjTranspose(t *Lazy[complex128]) (*Lazy[complex128], error) {
	tr, err := t.Transpose()
	if err != nil {
		return nil, err
	}
	return Map(tr, cmplx.Conj)
}
