package boxcount

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/sierpinski/geom"
	"github.com/katalvlaran/sierpinski/numeric"
)

const opEstimate = "Estimate"

// Estimate computes the box-counting dimension of cloud.
//
// Implementation:
//   - Stage 1: Normalize (validation + per-axis rescale to [0,1]).
//   - Stage 2: resolve the schedule (WithScales, else DefaultScales(d)) and
//     validate every size.
//   - Stage 3: count occupied cells per size (optionally concurrent).
//   - Stage 4: OLS fit of (log(1/s), log N(s)).
//
// Behavior highlights:
//   - Pure: no randomness, no state between calls; re-running on the same
//     cloud yields the same Result.
//   - A degenerate axis yields ErrDegenerateDistribution and a zero Result;
//     it is never reported as a numeric placeholder.
//
// Errors:
//   - Normalize errors, ErrUnsupportedDimension (no schedule), ErrBadScale,
//     numeric.ErrZeroVariance (all sizes equal).
func Estimate(cloud geom.Cloud, opts ...Option) (Result, error) {
	cfg := newConfig(opts...)

	norm, err := Normalize(cloud)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opEstimate, err)
	}

	scales := cfg.scales
	if scales == nil {
		if scales, err = DefaultScales(norm.Dim()); err != nil {
			return Result{}, fmt.Errorf("%s: %w", opEstimate, err)
		}
	} else {
		scales = slices.Clone(scales)
	}
	for _, s := range scales {
		if err = checkScale(s); err != nil {
			return Result{}, fmt.Errorf("%s: %w", opEstimate, err)
		}
	}

	counts := countAll(norm, scales, cfg.workers)

	xs := make([]float64, len(scales))
	ys := make([]float64, len(scales))
	for i, s := range scales {
		xs[i] = math.Log(1 / s)
		ys[i] = math.Log(float64(counts[i]))
	}
	fit, err := numeric.LinearFit(xs, ys)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opEstimate, err)
	}

	return Result{
		Dimension: fit.Slope,
		Intercept: fit.Intercept,
		R2:        fit.R2,
		Scales:    scales,
		Counts:    counts,
	}, nil
}
