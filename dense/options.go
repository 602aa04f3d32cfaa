package dense

import "github.com/ezoic/ztensor/pkg/log"

// DefaultParallelThreshold is the element count from which Materialize
// evaluates on several goroutines.
const DefaultParallelThreshold = 4096

type config struct {
	parallelThreshold int
	workers           int
	logger            log.Logger
}

// Option configures Materialize and the gonum conversions.
type Option func(*config)

// WithParallelThreshold sets the element count from which evaluation is split
// across goroutines. Values <= 0 mean always.
func WithParallelThreshold(n int) Option {
	return func(c *config) { c.parallelThreshold = n }
}

// WithWorkers caps the number of goroutines. Values <= 0 use GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l log.Logger) Option {
	return func(c *config) { c.logger = l }
}

func newConfig(opts []Option) *config {
	c := &config{
		parallelThreshold: DefaultParallelThreshold,
		logger:            log.GetLoggerWithName("dense").With(log.ComponentKey, "dense"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
