// Package labels assigns vertex labels 1..k to an ordered series of scalar
// samples, the first stage of the chaos-game pipeline.
//
// 🚀 What is a label here?
//
//	Each sample becomes one step of the chaos game; its label selects the
//	IFS vertex the current point moves halfway toward. k=3 drives the
//	Sierpinski triangle, k=4 the Sierpinski tetrahedron.
//
// ✨ Strategies:
//   - Deterministic: rank partition. Sort by value (stable on ties), cut the
//     ranks into k contiguous groups of ⌊p/k⌋, the last group absorbs the
//     remainder; labels come back in original input order.
//   - Random: each label drawn uniformly from {1..k}. Under the default
//     ShuffleTriangleOnly policy the k=3 path also permutes the values first,
//     the k=4 path does not (see ShufflePolicy).
//
// ⚙️ Usage:
//
//	samples, err := labels.Assign(series, 3, labels.Deterministic)
//
//	samples, err = labels.Assign(series, 4, labels.Random, labels.WithSeed(7))
//
// Determinism:
//
//	Randomness flows only through WithRand / WithSeed. A Random call without
//	either fails with ErrNeedRandSource; there is no global source.
//
// Performance:
//
//   - Deterministic: O(p log p) time, O(p) memory.
//   - Random:        O(p) time, O(p) memory.
package labels
