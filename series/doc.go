// SPDX-License-Identifier: MIT
// Package series generates deterministic scalar series used as fixtures and
// demo inputs for the fractal pipeline.
//
// Generators:
//   - Pulse:      rectangular or triangular periodic pulse.
//   - Chirp:      linear frequency sweep f0 → f1.
//   - RandomWalk: cumulative Gaussian steps.
//
// Every generator accepts the same Option set (amplitude, frequency, duty,
// trend, noise, RNG). Same n, options and seed ⇒ identical output.
//
// RNG policy:
//   - WithRand(r) shares a caller stream; WithSeed(s) creates a private one.
//   - Without either, DefaultSeed is used so output stays reproducible.
package series
