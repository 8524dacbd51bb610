// SPDX-License-Identifier: MIT

package numeric

import "errors"

var (
	// ErrBadSize indicates a non-positive schedule length.
	ErrBadSize = errors.New("numeric: size must be ≥ 1")

	// ErrLengthMismatch indicates xs and ys of different lengths.
	ErrLengthMismatch = errors.New("numeric: xs and ys lengths differ")

	// ErrTooFewPoints indicates fewer than two observations for a line fit.
	ErrTooFewPoints = errors.New("numeric: at least two points are required")

	// ErrZeroVariance indicates that every x is identical, so no slope exists.
	ErrZeroVariance = errors.New("numeric: xs have zero variance")

	// ErrNonFinite indicates a NaN or ±Inf input value.
	ErrNonFinite = errors.New("numeric: NaN or Inf encountered")
)
