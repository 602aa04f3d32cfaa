package dense

import (
	"sync"
	"time"

	"github.com/ezoic/ztensor/core/parallel"
	"github.com/ezoic/ztensor/core/tensor"
	"github.com/ezoic/ztensor/pkg/errors"
	"github.com/ezoic/ztensor/pkg/log"
)

// Materialize evaluates every element of t into a Grid.
//
// Every axis of t must be finite; otherwise Materialize fails with
// ErrInfiniteDimension before any evaluation. Each coordinate is evaluated
// exactly once. Above the parallel threshold the work is split across
// goroutines, which relies on the value function being pure. If any
// evaluation fails, the first error is returned and no Grid is produced.
//
// Materialize does not support cancellation; a large finite shape may take
// arbitrarily long.
func Materialize[E any](t tensor.Tensor[E], opts ...Option) (*Grid[E], error) {
	return materialize("dense.Materialize", t, newConfig(opts))
}

func materialize[E any](op string, t tensor.Tensor[E], cfg *config) (*Grid[E], error) {
	startTime := time.Now()
	shape := t.Shape()

	g, err := newGrid[E](op, shape)
	if err != nil {
		if cfg.logger != nil {
			cfg.logger.Debug("Materialization rejected",
				log.OperationKey, log.OperationMaterialize,
				log.PhaseKey, log.PhaseValidation,
				log.ShapeKey, shape.String(),
				log.ErrorKey, err,
			)
		}
		return nil, err
	}

	n := len(g.data)
	if cfg.logger != nil {
		cfg.logger.Debug("Materialization started",
			log.OperationKey, log.OperationMaterialize,
			log.PhaseKey, log.PhaseEvaluation,
			log.ShapeKey, shape.String(),
			log.ElementsKey, n,
			log.WorkersKey, cfg.workers,
		)
	}

	var (
		once     sync.Once
		firstErr error
	)
	eval := func(start, end int) {
		idx := make([]int64, len(g.dims))
		g.coordAt(start, idx)
		for k := start; k < end; k++ {
			v, err := t.Get(tensor.C(idx...))
			if err != nil {
				once.Do(func() { firstErr = err })
				return
			}
			g.data[k] = v
			g.advance(idx)
		}
	}
	switch {
	case n < cfg.parallelThreshold:
		parallel.ParallelizeWithThreshold(n, cfg.parallelThreshold, eval)
	case cfg.workers > 0:
		parallel.ParallelizeWorkers(n, cfg.workers, eval)
	default:
		parallel.Parallelize(n, eval)
	}

	if firstErr != nil {
		return nil, errors.NewTensorError(op, "evaluation", firstErr)
	}

	if cfg.logger != nil {
		cfg.logger.Debug("Materialization completed",
			log.OperationKey, log.OperationMaterialize,
			log.PhaseKey, log.PhaseOutput,
			log.ElementsKey, n,
			log.DurationMsKey, time.Since(startTime).Milliseconds(),
		)
	}
	return g, nil
}
