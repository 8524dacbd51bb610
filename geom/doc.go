// Package geom holds the small geometric vocabulary shared by the
// chaos-game engine and the box-counting estimator.
//
// What:
//
//   - Point is a coordinate tuple in ℝ^d (d = 2 for the triangle, 3 for
//     the tetrahedron). It is a plain []float64 so 2D and 3D clouds share
//     one code path.
//   - Cloud is an ordered sequence of Points of one common dimension.
//   - Midpoint is the contraction kernel of the chaos game (ratio 1/2).
//   - Bounds returns per-axis [min, max] ranges used for normalization.
//
// Errors:
//
//   - ErrEmptyCloud: the cloud has no points (or zero-length points).
//   - ErrMixedDimension: points of different dimensions in one cloud.
//   - ErrNonFinite: a coordinate is NaN or ±Inf.
//
// Complexity:
//
//   - Validate, Bounds: O(n·d) time, O(d) memory.
//   - Midpoint: O(d).
package geom
