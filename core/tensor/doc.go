// Package tensor provides lazy tensors indexed by omega integers.
//
// A Lazy tensor pairs a Shape, one half-open Range per dimension, with a pure
// value function. Ranges may be finite or unbounded in either direction, so a
// tensor can describe an infinite grid in constant memory: elements are only
// computed when indexed.
//
//	rows, _ := tensor.Span(0, 5)
//	t, err := tensor.FromRangesValues([]tensor.Range{rows, tensor.Full()},
//		func(c tensor.Coord) float64 { return float64(c.At(0) * c.At(1)) })
//	v, err := t.At(2, -7) // -14
//
// Slicing narrows the valid domain without renumbering coordinates: a slice
// answers Get at the same absolute coordinates as its parent, and shares the
// parent's value function, so a chain of slices still costs one function call
// per Get.
//
// The value function must be pure. Lazy tensors hold no mutable state and are
// safe for concurrent use as long as their value functions are.
package tensor
