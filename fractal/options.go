package fractal

import (
	"math/rand"

	"github.com/katalvlaran/sierpinski/boxcount"
	"github.com/katalvlaran/sierpinski/chaosgame"
	"github.com/katalvlaran/sierpinski/geom"
	"github.com/katalvlaran/sierpinski/labels"
)

// Option customizes Build and Generate. Each option forwards to the stage
// that owns the setting; constructors panic on meaningless input, exactly
// like the stage options they wrap.
type Option func(*config)

type config struct {
	labelOpts []labels.Option
	countOpts []boxcount.Option
	start     geom.Point
	vertices  *chaosgame.VertexSet
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand supplies the random source for the Random strategy.
func WithRand(r *rand.Rand) Option {
	o := labels.WithRand(r)
	return func(c *config) { c.labelOpts = append(c.labelOpts, o) }
}

// WithSeed creates a deterministic random source for the Random strategy.
func WithSeed(seed int64) Option {
	o := labels.WithSeed(seed)
	return func(c *config) { c.labelOpts = append(c.labelOpts, o) }
}

// WithShuffle overrides labels.DefaultShuffle.
func WithShuffle(p labels.ShufflePolicy) Option {
	o := labels.WithShuffle(p)
	return func(c *config) { c.labelOpts = append(c.labelOpts, o) }
}

// WithScales overrides the box-counting schedule.
func WithScales(sizes []float64) Option {
	o := boxcount.WithScales(sizes)
	return func(c *config) { c.countOpts = append(c.countOpts, o) }
}

// WithWorkers bounds concurrent per-scale counting.
func WithWorkers(n int) Option {
	o := boxcount.WithWorkers(n)
	return func(c *config) { c.countOpts = append(c.countOpts, o) }
}

// WithStart replaces the vertex set's start point. The point is copied;
// a dimension mismatch surfaces as chaosgame.ErrDimensionMismatch.
func WithStart(p geom.Point) Option {
	if len(p) == 0 {
		panic("fractal: WithStart(empty point)")
	}
	cp := p.Clone()
	return func(c *config) { c.start = cp }
}

// WithVertexSet replaces the geometry of the request's Kind with vs.
// Labels are drawn from 1..vs.K(); Kind only names the result.
func WithVertexSet(vs chaosgame.VertexSet) Option {
	if vs.K() < 2 {
		panic("fractal: WithVertexSet(empty set)")
	}
	return func(c *config) { c.vertices = &vs }
}
