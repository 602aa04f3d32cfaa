package tensor

import (
	"fmt"

	"github.com/ezoic/ztensor/core/omega"
	"github.com/ezoic/ztensor/pkg/errors"
)

// Range is the half-open interval [start, end) over omega integers.
// Either bound may be infinite. start == end is a valid empty range.
// The zero value is the empty range [0, 0).
type Range struct {
	start Index
	end   Index
}

// NewRange returns [start, end). It fails with ErrInvalidRange when start > end.
func NewRange(start, end Index) (Range, error) {
	if end.Less(start) {
		return Range{}, errors.NewRangeError("NewRange", start, end, "start greater than end")
	}
	return Range{start: start, end: end}, nil
}

// Span returns the finite range [start, end).
func Span(start, end int64) (Range, error) {
	return NewRange(I(start), I(end))
}

// MustSpan is like Span but panics on a reversed range.
// It is intended for literals in tests and examples.
func MustSpan(start, end int64) Range {
	r, err := Span(start, end)
	if err != nil {
		panic(err)
	}
	return r
}

// From returns [start, +inf).
func From(start int64) Range {
	return Range{start: I(start), end: PosInf}
}

// Below returns [-inf, end).
func Below(end int64) Range {
	return Range{start: NegInf, end: I(end)}
}

// Full returns [-inf, +inf).
func Full() Range {
	return Range{start: NegInf, end: PosInf}
}

// Start returns the inclusive lower bound.
func (r Range) Start() Index { return r.start }

// End returns the exclusive upper bound.
func (r Range) End() Index { return r.end }

// Contains reports whether start <= i < end.
func (r Range) Contains(i Index) bool {
	return !i.Less(r.start) && i.Less(r.end)
}

// ContainsInt reports whether the finite value v lies in r.
func (r Range) ContainsInt(v int64) bool {
	return r.Contains(I(v))
}

// IsFinite reports whether both bounds are finite.
func (r Range) IsFinite() bool {
	return r.start.IsFinite() && r.end.IsFinite()
}

// IsEmpty reports whether r contains nothing.
func (r Range) IsEmpty() bool {
	return !r.start.Less(r.end)
}

// UnboundedBelow reports whether start is -inf.
func (r Range) UnboundedBelow() bool { return r.start.IsNegInf() }

// UnboundedAbove reports whether end is +inf.
func (r Range) UnboundedAbove() bool { return r.end.IsPosInf() }

// Len returns end - start. ok is false when either bound is infinite.
func (r Range) Len() (n uint64, ok bool) {
	s, sok := r.start.Value()
	e, eok := r.end.Value()
	if !sok || !eok {
		return 0, false
	}
	// end >= start, so the difference fits in uint64 even across the sign.
	return uint64(e) - uint64(s), true
}

// Extent returns the number of positions in r: its length, or ω when r is
// infinite and non-empty.
func (r Range) Extent() omega.UInt[uint64] {
	if n, ok := r.Len(); ok {
		return omega.Natural(n)
	}
	if r.IsEmpty() {
		return omega.Natural[uint64](0)
	}
	return omega.Omega[uint64]()
}

// Intersect returns [max(starts), min(ends)). Disjoint ranges give an empty
// range whose end is clamped to its start.
func (r Range) Intersect(o Range) Range {
	start := omega.Max(r.start, o.start)
	end := omega.Min(r.end, o.end)
	if end.Less(start) {
		end = start
	}
	return Range{start: start, end: end}
}

// Equal reports whether r and o have the same bounds.
func (r Range) Equal(o Range) bool {
	return r.start.Equal(o.start) && r.end.Equal(o.end)
}

// String formats r as "[start, end)".
func (r Range) String() string {
	return fmt.Sprintf("[%v, %v)", r.start, r.end)
}
