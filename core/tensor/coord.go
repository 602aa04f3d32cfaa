package tensor

import (
	"strconv"
	"strings"

	"github.com/ezoic/ztensor/pkg/errors"
)

// Coord identifies one element position, one finite value per dimension.
// Coords are immutable; the zero value has zero dimensions.
type Coord struct {
	vals []int64
}

// NewCoord builds a Coord from omega integers. An infinite component names no
// element and fails with ErrOutOfBounds.
func NewCoord(vals ...Index) (Coord, error) {
	out := make([]int64, len(vals))
	for axis, v := range vals {
		f, ok := v.Value()
		if !ok {
			return Coord{}, errors.NewIndexError("NewCoord", axis, v, Full())
		}
		out[axis] = f
	}
	return Coord{vals: out}, nil
}

// C builds a Coord from finite values.
func C(vals ...int64) Coord {
	return Coord{vals: append([]int64(nil), vals...)}
}

// coordOf wraps vals without copying. The caller must not modify vals afterwards.
func coordOf(vals []int64) Coord {
	return Coord{vals: vals}
}

// Dims returns the number of components.
func (c Coord) Dims() int { return len(c.vals) }

// At returns the component on axis. It panics if axis is out of range.
func (c Coord) At(axis int) int64 { return c.vals[axis] }

// Index returns the component on axis as an omega integer.
func (c Coord) Index(axis int) Index { return I(c.vals[axis]) }

// Values returns a copy of the components.
func (c Coord) Values() []int64 {
	return append([]int64(nil), c.vals...)
}

// Equal reports whether c and o have the same components.
func (c Coord) Equal(o Coord) bool {
	if len(c.vals) != len(o.vals) {
		return false
	}
	for i := range c.vals {
		if c.vals[i] != o.vals[i] {
			return false
		}
	}
	return true
}

// String formats c as "(i, j, ...)".
func (c Coord) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range c.vals {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatInt(v, 10))
	}
	b.WriteByte(')')
	return b.String()
}
