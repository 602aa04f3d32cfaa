package tensor

// Narrow returns t restricted to the intersection of its shape with ranges,
// one range per dimension. An empty intersection on any axis fails with
// ErrInvalidRange, a wrong number of ranges with ErrOutOfBounds.
//
// The result shares t's value function: coordinates keep their absolute
// values and nothing is evaluated until the result is indexed. Requesting an
// unbounded range never widens a finite axis.
func (t *Lazy[E]) Narrow(ranges ...Range) (*Lazy[E], error) {
	shape, err := t.shape.narrow("Lazy.Slice", ranges)
	if err != nil {
		return nil, err
	}
	return &Lazy[E]{shape: shape, fn: t.fn}, nil
}

// Slice is Narrow returning the Tensor interface.
func (t *Lazy[E]) Slice(ranges ...Range) (Tensor[E], error) {
	n, err := t.Narrow(ranges...)
	if err != nil {
		return nil, err
	}
	return n, nil
}
