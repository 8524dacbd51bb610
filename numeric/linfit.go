// SPDX-License-Identifier: MIT

package numeric

import "fmt"

const opLinearFit = "LinearFit"

// Fit is the result of an ordinary-least-squares line fit y = Slope·x + Intercept.
type Fit struct {
	Slope     float64
	Intercept float64
	// R2 is the coefficient of determination; 1 when ys have no variance.
	R2 float64
}

// LinearFit fits a straight line through (xs[i], ys[i]) by ordinary least squares,
// the same degree-1 polynomial fit used for log-log dimension regressions.
//
// Implementation:
//   - Stage 1: validate lengths and finiteness.
//   - Stage 2: means, then centered sums Sxx, Sxy, Syy (two-pass for stability).
//   - Stage 3: slope = Sxy/Sxx, intercept = ȳ - slope·x̄, R² = 1 - SSres/Syy.
//
// Errors:
//   - ErrLengthMismatch, ErrTooFewPoints, ErrNonFinite, ErrZeroVariance.
//
// Complexity: O(n) time, O(1) extra space.
func LinearFit(xs, ys []float64) (Fit, error) {
	if len(xs) != len(ys) {
		return Fit{}, fmt.Errorf("%s: %d xs vs %d ys: %w", opLinearFit, len(xs), len(ys), ErrLengthMismatch)
	}
	n := len(xs)
	if n < 2 {
		return Fit{}, fmt.Errorf("%s: n=%d: %w", opLinearFit, n, ErrTooFewPoints)
	}

	var sx, sy float64
	for i := 0; i < n; i++ {
		if !finite(xs[i]) || !finite(ys[i]) {
			return Fit{}, fmt.Errorf("%s: index %d: %w", opLinearFit, i, ErrNonFinite)
		}
		sx += xs[i]
		sy += ys[i]
	}
	mx, my := sx/float64(n), sy/float64(n)

	var sxx, sxy, syy float64
	for i := 0; i < n; i++ {
		dx, dy := xs[i]-mx, ys[i]-my
		sxx += dx * dx
		sxy += dx * dy
		syy += dy * dy
	}
	if sxx == 0 {
		return Fit{}, fmt.Errorf("%s: %w", opLinearFit, ErrZeroVariance)
	}

	slope := sxy / sxx
	fit := Fit{Slope: slope, Intercept: my - slope*mx, R2: 1}
	if syy > 0 {
		var ssRes float64
		for i := 0; i < n; i++ {
			r := ys[i] - (fit.Intercept + slope*xs[i])
			ssRes += r * r
		}
		fit.R2 = 1 - ssRes/syy
	}

	return fit, nil
}
