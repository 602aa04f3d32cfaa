package tensor

import "github.com/ezoic/ztensor/core/omega"

// Index is the omega integer used for tensor bounds and coordinates.
type Index = omega.Int[int64]

// Infinite bounds.
var (
	PosInf = omega.PosInf[int64]()
	NegInf = omega.NegInf[int64]()
)

// I returns the finite Index v.
func I(v int64) Index {
	return omega.Finite(v)
}
