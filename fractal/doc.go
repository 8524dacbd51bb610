// Package fractal wires the three stages into one call: a scalar series is
// labeled, played through the chaos game and measured by box counting.
//
// 🚀 What does it produce?
//
//	series ──labels.Assign──▶ samples ──chaosgame.Run──▶ cloud ──boxcount.Estimate──▶ dimension
//
//	Triangle    (k=3, 2D): reference dimension log 3 / log 2 ≈ 1.585
//	Tetrahedron (k=4, 3D): reference dimension 2
//
// ✨ Modes:
//
//	The historical mode strings split into a labeling strategy and a
//	presentation hint:
//
//	  "controls" → Deterministic, HintControl (blue)
//	  "patients" → Deterministic, HintPatient (red)
//	  "random"   → Random,        HintRandom  (green)
//
// ⚙️ Usage:
//
//	strategy, hint, err := fractal.ParseMode("controls")
//	res, err := fractal.Generate(fractal.Request{
//		Series:   values,
//		Kind:     fractal.Triangle,
//		Strategy: strategy,
//		Hint:     hint,
//	})
//	if errors.Is(err, fractal.ErrDegenerateDistribution) {
//		// res.Cloud is still valid; res.Summary() == "-"
//	}
//
// Errors from the stages are returned wrapped, so their sentinels
// (labels.ErrNonFinite, chaosgame.ErrDimensionMismatch, …) match with errors.Is.
package fractal
