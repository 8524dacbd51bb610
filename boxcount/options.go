package boxcount

import (
	"math"
	"slices"
)

// DefaultWorkers counts scales sequentially.
const DefaultWorkers = 1

// Option customizes Estimate. Constructors panic on meaningless input.
type Option func(*config)

type config struct {
	scales  []float64
	workers int
}

func newConfig(opts ...Option) config {
	cfg := config{workers: DefaultWorkers}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithScales replaces the default schedule. It needs at least two sizes,
// all finite and > 0; the slice is copied. A schedule of identical sizes
// makes Estimate fail with numeric.ErrZeroVariance.
func WithScales(sizes []float64) Option {
	if len(sizes) < 2 {
		panic("boxcount: WithScales needs at least two sizes")
	}
	for _, s := range sizes {
		if !(s > 0) || math.IsInf(s, 1) {
			panic("boxcount: WithScales: size must be finite and > 0")
		}
	}
	cp := slices.Clone(sizes)
	return func(c *config) {
		c.scales = cp
	}
}

// WithWorkers bounds the number of scales counted concurrently. n must be ≥ 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("boxcount: WithWorkers(n<1)")
	}
	return func(c *config) {
		c.workers = n
	}
}
