package labels

import "math/rand"

// DefaultShuffle is the shuffle policy used when WithShuffle is not given.
const DefaultShuffle = ShuffleTriangleOnly

// Option customizes Assign by mutating a config before labeling begins.
// Option constructors panic on meaningless input; Assign itself never panics.
type Option func(*config)

type config struct {
	rng     *rand.Rand
	shuffle ShufflePolicy
}

func newConfig(opts ...Option) config {
	cfg := config{shuffle: DefaultShuffle}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand supplies the random source for the Random strategy.
// The source is consumed, not copied; do not share it across goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("labels: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a fresh deterministic source from seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithShuffle overrides DefaultShuffle.
func WithShuffle(p ShufflePolicy) Option {
	if p < ShuffleTriangleOnly || p > ShuffleNever {
		panic("labels: WithShuffle(unknown policy)")
	}
	return func(c *config) {
		c.shuffle = p
	}
}
