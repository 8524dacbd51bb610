// SPDX-License-Identifier: MIT

package series

import (
	"fmt"
	"math"
)

const tau = 2 * math.Pi

// Pulse returns a length-n periodic pulse.
//   - Rectangular: A while frac(i·f0) < duty, else 0.
//   - Triangular:  A·(1 − |2·frac(i·f0) − 1|).
//
// Trend and noise are added afterwards.
// Complexity: O(n).
func Pulse(n int, opts ...Option) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("Pulse: n=%d: %w", n, ErrBadSize)
	}
	cfg := newConfig(opts...)

	out := make([]float64, n)
	for i := range out {
		frac := math.Mod(float64(i)*cfg.frequency, 1)
		var v float64
		switch {
		case cfg.triangular:
			v = cfg.amplitude * (1 - math.Abs(2*frac-1))
		case frac < cfg.duty:
			v = cfg.amplitude
		}
		out[i] = cfg.finish(v, i)
	}

	return out, nil
}

// Chirp returns a length-n linear chirp sweeping f0 → 2·f0.
//
//	fᵢ = f0 + (f1 − f0)·i/(n−1);  θᵢ₊₁ = θᵢ + τ·fᵢ;  yᵢ = A·sin(θᵢ)
//
// Complexity: O(n).
func Chirp(n int, opts ...Option) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("Chirp: n=%d: %w", n, ErrBadSize)
	}
	cfg := newConfig(opts...)
	f0 := cfg.frequency
	f1 := f0 * chirpEndFactor

	out := make([]float64, n)
	theta := 0.0
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		theta += tau * (f0 + (f1-f0)*t)
		out[i] = cfg.finish(cfg.amplitude*math.Sin(theta), i)
	}

	return out, nil
}

// RandomWalk returns a length-n Gaussian random walk starting at 0:
// y₀ = 0, yᵢ = yᵢ₋₁ + A·N(0,1). Trend and noise are added per sample.
// Complexity: O(n).
func RandomWalk(n int, opts ...Option) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("RandomWalk: n=%d: %w", n, ErrBadSize)
	}
	cfg := newConfig(opts...)

	out := make([]float64, n)
	pos := 0.0
	for i := range out {
		if i > 0 {
			pos += cfg.amplitude * cfg.rng.NormFloat64()
		}
		out[i] = cfg.finish(pos, i)
	}

	return out, nil
}

// finish applies trend and noise to a base sample.
func (c config) finish(v float64, i int) float64 {
	v += c.trend * float64(i)
	if c.noise > 0 {
		v += c.noise * c.rng.NormFloat64()
	}

	return v
}
