// Package boxcount estimates the box-counting (Minkowski–Bouligand) dimension
// of a point cloud.
//
// 🚀 What is box counting?
//
//	Cover the cloud with a grid of cells of side s and count N(s), the
//	number of cells holding at least one point. For a self-similar set
//	N(s) ∝ s^(-D); the slope of log N(s) against log(1/s) estimates D.
//	Reference values: Sierpinski triangle log 3 / log 2 ≈ 1.585,
//	Sierpinski tetrahedron log 4 / log 2 = 2.
//
// ✨ Pipeline:
//  1. Normalize every axis to [0,1] by (x - min)/(max - min).
//  2. For each size s in a fixed 10-step log-spaced schedule, count distinct
//     cells ⌊x/s⌋ (composite integer key per cell, no packing collisions).
//  3. Fit (log(1/s), log N(s)) by ordinary least squares; slope = dimension.
//
// ⚙️ Usage:
//
//	res, err := boxcount.Estimate(cloud)
//	if errors.Is(err, boxcount.ErrDegenerateDistribution) {
//		// a flat axis: keep the cloud, skip the dimension
//	}
//	fmt.Printf("%.4f\n", res.Dimension)
//
// Schedules (tuned to the unit-normalized cloud; changing them changes every estimate):
//
//   - 2D: 10^-3 … 10^0
//   - 3D: 0.005 … 0.3
//
// Concurrency:
//
//	WithWorkers(n) counts scales on up to n goroutines (errgroup). Each scale
//	owns its own result slot; slots are combined only by the regression, so
//	the estimate is identical for every n.
//
// Performance:
//
//   - Time:   O(S·n·d) with S scales.
//   - Memory: O(n·d) for the normalized copy + O(n) per in-flight scale.
package boxcount
