package dense

import (
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/ezoic/ztensor/core/tensor"
	"github.com/ezoic/ztensor/pkg/errors"
	"github.com/ezoic/ztensor/pkg/log"
)

// ToDense materializes a finite 2-D tensor into a *mat.Dense. Element (i, j)
// of the matrix is the tensor element at (start0+i, start1+j).
func ToDense(t tensor.Tensor[float64], opts ...Option) (*mat.Dense, error) {
	g, err := materializeMatrix("dense.ToDense", t, opts)
	if err != nil {
		return nil, err
	}
	return mat.NewDense(g.dims[0], g.dims[1], g.data), nil
}

// ToCDense materializes a finite 2-D complex tensor into a *mat.CDense.
func ToCDense(t tensor.Tensor[complex128], opts ...Option) (*mat.CDense, error) {
	g, err := materializeMatrix("dense.ToCDense", t, opts)
	if err != nil {
		return nil, err
	}
	return mat.NewCDense(g.dims[0], g.dims[1], g.data), nil
}

// ToVecDense materializes a finite 1-D tensor into a *mat.VecDense.
func ToVecDense(t tensor.Tensor[float64], opts ...Option) (*mat.VecDense, error) {
	const op = "dense.ToVecDense"
	if d := t.Shape().Dims(); d != 1 {
		return nil, errors.NewDimensionError(op, 1, d, -1)
	}
	cfg := newConfig(opts)
	g, err := materialize(op, t, cfg)
	if err != nil {
		return nil, err
	}
	if g.dims[0] == 0 {
		return nil, errors.NewValueError(op, "gonum vectors cannot be empty")
	}
	logConversion(cfg, op, g.dims)
	return mat.NewVecDense(g.dims[0], g.data), nil
}

// materializeMatrix checks that t is 2-D, materializes it and rejects empty
// axes, which gonum matrices cannot represent.
func materializeMatrix[E any](op string, t tensor.Tensor[E], opts []Option) (*Grid[E], error) {
	if d := t.Shape().Dims(); d != 2 {
		return nil, errors.NewDimensionError(op, 2, d, -1)
	}
	cfg := newConfig(opts)
	g, err := materialize(op, t, cfg)
	if err != nil {
		return nil, err
	}
	if g.dims[0] == 0 || g.dims[1] == 0 {
		return nil, errors.NewValueError(op, "gonum matrices cannot have an empty axis")
	}
	logConversion(cfg, op, g.dims)
	return g, nil
}

func logConversion(cfg *config, op string, dims []int) {
	if cfg.logger == nil {
		return
	}
	cfg.logger.Debug("Converted to gonum",
		log.OperationKey, log.OperationConvert,
		"target", op,
		log.DimsKey, dims,
	)
}

// FromMatrix returns a lazy tensor over [0, rows) x [0, cols) reading from a
// private copy of m, so later changes to m are not observed.
func FromMatrix(m mat.Matrix) (*tensor.Lazy[float64], error) {
	r, c := m.Dims()
	shape := tensor.NewShape(tensor.MustSpan(0, int64(r)), tensor.MustSpan(0, int64(c)))
	if r == 0 || c == 0 {
		return tensor.New(shape, func(tensor.Coord) float64 { return 0 })
	}
	cp := mat.DenseCopyOf(m)
	return tensor.New(shape, func(at tensor.Coord) float64 {
		return cp.At(int(at.At(0)), int(at.At(1)))
	})
}

// FromCMatrix is FromMatrix for complex matrices.
func FromCMatrix(m mat.CMatrix) (*tensor.Lazy[complex128], error) {
	r, c := m.Dims()
	shape := tensor.NewShape(tensor.MustSpan(0, int64(r)), tensor.MustSpan(0, int64(c)))
	data := make([]complex128, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data[i*c+j] = m.At(i, j)
		}
	}
	return tensor.New(shape, func(at tensor.Coord) complex128 {
		return data[int(at.At(0))*c+int(at.At(1))]
	})
}

// FromVector returns a 1-D lazy tensor over [0, len) reading from a private
// copy of v.
func FromVector(v mat.Vector) (*tensor.Lazy[float64], error) {
	n := v.Len()
	data := make([]float64, n)
	for i := range data {
		data[i] = v.AtVec(i)
	}
	return tensor.New(tensor.NewShape(tensor.MustSpan(0, int64(n))), func(at tensor.Coord) float64 {
		return data[at.At(0)]
	})
}

// FromGrid returns a lazy tensor over g's shape reading from g.
func FromGrid[E any](g *Grid[E]) *tensor.Lazy[E] {
	return g.Lazy()
}

// RoundTrip materializes t and checks that the Grid answers every coordinate
// exactly as t does, using eq to compare elements. It returns the Grid.
func RoundTrip[E any](t tensor.Tensor[E], eq func(a, b E) bool, opts ...Option) (*Grid[E], error) {
	const op = "dense.RoundTrip"
	cfg := newConfig(opts)
	startTime := time.Now()
	g, err := materialize(op, t, cfg)
	if err != nil {
		return nil, err
	}
	idx := make([]int64, len(g.dims))
	for k := 0; k < len(g.data); k++ {
		g.coordAt(k, idx)
		c := tensor.C(idx...)
		want, err := t.Get(c)
		if err != nil {
			return nil, errors.NewTensorError(op, "evaluation", err)
		}
		got, err := g.Get(c)
		if err != nil {
			return nil, errors.NewTensorError(op, "lookup", err)
		}
		if !eq(want, got) {
			return nil, errors.NewTensorError(op, "mismatch",
				errors.Newf("element at %v differs between tensor and grid", c))
		}
	}
	if cfg.logger != nil {
		cfg.logger.Debug("Round trip verified",
			log.OperationKey, log.OperationMaterialize,
			log.ElementsKey, len(g.data),
			log.DurationMsKey, time.Since(startTime).Milliseconds(),
		)
	}
	return g, nil
}
