// Package sierpinski turns an ordered series of scalar measurements into a
// chaos-game fractal and measures its box-counting dimension.
//
// 🚀 What is sierpinski?
//
//	A small, deterministic, pure-Go toolkit that brings together:
//		• Labeling: rank partition or seeded random draws over 1..k
//		• Chaos game: midpoint IFS over the Sierpinski triangle (2D) or tetrahedron (3D)
//		• Box counting: normalized grids, log-spaced scales, least-squares slope
//		• Pipeline: one call from series to dimension, with mode parsing
//
// ✨ Why choose sierpinski?
//
//   - Reproducible – every random draw comes from a caller-seeded source
//   - Honest errors – an undefined dimension is an error, never a magic number
//   - Parallel where it pays – per-scale counting on a bounded errgroup
//
// Under the hood, everything is organized into small subpackages:
//
//	geom/:      Point and Cloud types, midpoint kernel, bounds, validation
//	numeric/:   log-spaced schedules and ordinary least squares
//	labels/:    Deterministic and Random label assignment
//	chaosgame/: vertex sets and the midpoint recurrence
//	boxcount/:  normalization, occupied-cell counting, dimension estimate
//	fractal/:   the series → labels → cloud → dimension pipeline
//	series/:    synthetic pulse, chirp and random-walk signals
//
// Quick ASCII example (triangle vertices, labels pick the target corner):
//
//	      3
//	     / \
//	    /   \
//	   1─────2
//
// See examples/ for a runnable comparison of every mode on both geometries.
//
//	go get github.com/katalvlaran/sierpinski
package sierpinski
