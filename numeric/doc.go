// SPDX-License-Identifier: MIT
// Package numeric provides the two numeric kernels behind box counting:
// log-spaced scale schedules and an ordinary-least-squares line fit.
//
// Exposed API:
//   - Logspace(start, stop, n) -> 10^linspace(start, stop, n)
//   - LinearFit(xs, ys)        -> Fit{Slope, Intercept, R2}
//
// Determinism:
//   - Fixed left-to-right accumulation; identical inputs yield bit-identical outputs.
//
// Errors:
//   - ErrBadSize: n < 1 for Logspace.
//   - ErrLengthMismatch: len(xs) != len(ys).
//   - ErrTooFewPoints: fewer than two observations for a fit.
//   - ErrZeroVariance: all xs identical, slope undefined.
//   - ErrNonFinite: NaN or ±Inf among inputs.
package numeric
