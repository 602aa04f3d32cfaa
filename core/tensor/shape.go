package tensor

import (
	"strings"

	"github.com/ezoic/ztensor/core/omega"
	"github.com/ezoic/ztensor/pkg/errors"
)

// Shape is the coordinate domain of a tensor: one Range per dimension.
// The number of dimensions is fixed at construction and a Shape is never
// modified afterwards.
type Shape struct {
	ranges []Range
}

// NewShape returns a Shape over copies of ranges.
func NewShape(ranges ...Range) Shape {
	return Shape{ranges: append([]Range(nil), ranges...)}
}

// FromBounds builds a Shape from raw [start, end) pairs. Every reversed pair is
// reported, not only the first.
func FromBounds(bounds ...[2]Index) (Shape, error) {
	ranges := make([]Range, len(bounds))
	var err error
	for axis, b := range bounds {
		if b[1].Less(b[0]) {
			err = errors.Append(err, errors.NewAxisRangeError("FromBounds", axis, b[0], b[1], "start greater than end"))
			continue
		}
		ranges[axis] = Range{start: b[0], end: b[1]}
	}
	if err != nil {
		return Shape{}, err
	}
	return Shape{ranges: ranges}, nil
}

// Dims returns the number of dimensions.
func (s Shape) Dims() int { return len(s.ranges) }

// Range returns the range of axis. It panics if axis is out of range.
func (s Shape) Range(axis int) Range { return s.ranges[axis] }

// Ranges returns a copy of the per-dimension ranges.
func (s Shape) Ranges() []Range {
	return append([]Range(nil), s.ranges...)
}

// Contains reports whether every component of c lies in its axis range.
// A Coord with the wrong number of dimensions is an error.
func (s Shape) Contains(c Coord) (bool, error) {
	if c.Dims() != len(s.ranges) {
		return false, errors.NewDimensionError("Shape.Contains", len(s.ranges), c.Dims(), -1)
	}
	for axis, r := range s.ranges {
		if !r.ContainsInt(c.vals[axis]) {
			return false, nil
		}
	}
	return true, nil
}

// Check returns nil if c is valid in s, or an error naming the first offending
// axis otherwise.
func (s Shape) Check(c Coord) error {
	return s.check("Shape.Check", c)
}

func (s Shape) check(op string, c Coord) error {
	if c.Dims() != len(s.ranges) {
		return errors.NewDimensionError(op, len(s.ranges), c.Dims(), -1)
	}
	for axis, r := range s.ranges {
		if !r.ContainsInt(c.vals[axis]) {
			return errors.NewIndexError(op, axis, c.Index(axis), r)
		}
	}
	return nil
}

// IsFinite reports whether every range is finite.
func (s Shape) IsFinite() bool {
	_, found := s.FirstInfinite()
	return !found
}

// FirstInfinite returns the first axis whose range is not finite.
func (s Shape) FirstInfinite() (axis int, found bool) {
	for i, r := range s.ranges {
		if !r.IsFinite() {
			return i, true
		}
	}
	return -1, false
}

// Size returns the number of coordinates in s: ω when some axis is unbounded
// and none is empty. A shape with zero dimensions has one coordinate.
func (s Shape) Size() (omega.UInt[uint64], error) {
	size := omega.Natural[uint64](1)
	for _, r := range s.ranges {
		if r.IsEmpty() {
			return omega.Natural[uint64](0), nil
		}
	}
	for _, r := range s.ranges {
		var err error
		size, err = size.Mul(r.Extent())
		if err != nil {
			return omega.UInt[uint64]{}, errors.Wrapf(err, "shape %v", s)
		}
	}
	return size, nil
}

// Narrow intersects each range of s with the matching request. The request
// must have one range per dimension and every intersection must be non-empty;
// all failing axes are reported together.
func (s Shape) Narrow(ranges ...Range) (Shape, error) {
	return s.narrow("Shape.Narrow", ranges)
}

func (s Shape) narrow(op string, ranges []Range) (Shape, error) {
	if len(ranges) != len(s.ranges) {
		return Shape{}, errors.NewDimensionError(op, len(s.ranges), len(ranges), -1)
	}
	out := make([]Range, len(s.ranges))
	var err error
	for axis, parent := range s.ranges {
		req := ranges[axis]
		r := parent.Intersect(req)
		if r.IsEmpty() {
			err = errors.Append(err, errors.NewAxisRangeError(op, axis, req.start, req.end,
				"empty intersection with "+parent.String()))
			continue
		}
		out[axis] = r
	}
	if err != nil {
		return Shape{}, err
	}
	return Shape{ranges: out}, nil
}

// Equal reports whether s and o have the same ranges.
func (s Shape) Equal(o Shape) bool {
	if len(s.ranges) != len(o.ranges) {
		return false
	}
	for i := range s.ranges {
		if !s.ranges[i].Equal(o.ranges[i]) {
			return false
		}
	}
	return true
}

// String formats s as "[0, 5) x [-inf, +inf)"; a scalar shape is "()".
func (s Shape) String() string {
	if len(s.ranges) == 0 {
		return "()"
	}
	parts := make([]string, len(s.ranges))
	for i, r := range s.ranges {
		parts[i] = r.String()
	}
	return strings.Join(parts, " x ")
}
