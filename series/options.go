// SPDX-License-Identifier: MIT

package series

import "math/rand"

// Defaults resolved by newConfig when no option overrides them.
const (
	DefaultSeed      int64 = 1
	DefaultAmplitude       = 1.0
	DefaultFrequency       = 0.125 // cycles/sample, period 8
	DefaultDuty            = 0.5
	DefaultNoise           = 0.0
	DefaultTrend           = 0.0

	// chirpEndFactor sets the sweep end frequency f1 = f0·chirpEndFactor.
	chirpEndFactor = 2.0
)

// Option customizes a generator. Constructors panic on meaningless values.
type Option func(*config)

type config struct {
	rng        *rand.Rand
	amplitude  float64
	frequency  float64
	duty       float64
	triangular bool
	noise      float64
	trend      float64
}

func newConfig(opts ...Option) config {
	cfg := config{
		amplitude: DefaultAmplitude,
		frequency: DefaultFrequency,
		duty:      DefaultDuty,
		noise:     DefaultNoise,
		trend:     DefaultTrend,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return cfg
}

// WithRand shares an explicit RNG stream.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("series: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed creates a private deterministic RNG stream.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithAmplitude sets the peak amplitude (Pulse, Chirp) or step scale (RandomWalk). A must be > 0.
func WithAmplitude(a float64) Option {
	if !(a > 0) {
		panic("series: WithAmplitude(A<=0)")
	}
	return func(c *config) { c.amplitude = a }
}

// WithFrequency sets the base frequency in cycles/sample. f0 must be > 0.
func WithFrequency(f0 float64) Option {
	if !(f0 > 0) {
		panic("series: WithFrequency(f0<=0)")
	}
	return func(c *config) { c.frequency = f0 }
}

// WithDuty sets the rectangular pulse duty cycle in [0,1].
func WithDuty(duty float64) Option {
	if !(duty >= 0 && duty <= 1) {
		panic("series: WithDuty(duty∉[0,1])")
	}
	return func(c *config) { c.duty = duty }
}

// WithTriangular switches Pulse to a triangular envelope.
func WithTriangular() Option {
	return func(c *config) { c.triangular = true }
}

// WithNoise adds Gaussian noise with standard deviation sigma ≥ 0.
func WithNoise(sigma float64) Option {
	if !(sigma >= 0) {
		panic("series: WithNoise(sigma<0)")
	}
	return func(c *config) { c.noise = sigma }
}

// WithTrend adds k·i to sample i.
func WithTrend(k float64) Option {
	return func(c *config) { c.trend = k }
}
