// Package dense converts lazy tensors into dense, materialized form.
//
// Materialize is the only bulk-evaluation entry point in ztensor: it requires
// every axis to be finite, fails before evaluating anything otherwise, and
// evaluates each coordinate exactly once in row-major order (last axis
// fastest). The result is a Grid, itself a Tensor that keeps the absolute
// coordinates of its source.
//
// The gonum boundary converts finite 2-D float64 and complex128 tensors to
// *mat.Dense and *mat.CDense (and 1-D float64 tensors to *mat.VecDense), and
// wraps gonum matrices back into lazy tensors:
//
//	m, err := dense.ToDense(window) // window: finite 2-D tensor.Tensor[float64]
//	if err != nil {
//		return err
//	}
//	var inv mat.Dense
//	err = inv.Inverse(m)
//
// gonum matrices are indexed from zero, so conversion re-bases coordinates:
// element (i, j) of the matrix is the tensor element at (start0+i, start1+j).
package dense
