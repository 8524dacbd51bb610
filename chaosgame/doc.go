// Package chaosgame renders an iterated function system by the chaos game:
// a single current point repeatedly jumps halfway toward the vertex named by
// the next label.
//
// What:
//
//   - VertexSet: k fixed anchor points in ℝ^(k-1) plus a documented start point.
//     Triangle() and Tetrahedron() are the canonical Sierpinski sets.
//   - Run: consumes a label sequence and returns one point per label, in order.
//
// Why:
//
//   - Each map x ↦ (x + vᵢ)/2 is a contraction of ratio 1/2 toward vᵢ; the
//     orbit settles onto the attractor (Sierpinski triangle for k=3, the
//     tetrahedron for k=4) whatever the label source.
//
// Determinism:
//
//   - No randomness inside this package. Same labels, vertex set and start
//     point give a bit-identical cloud.
//
// Complexity:
//
//   - Run: O(p·d) time, O(p·d) memory (one flat buffer).
//
// Errors:
//
//   - ErrInsufficientSamples: fewer labels than vertices, checked before the loop.
//   - ErrDimensionMismatch: start point and vertices disagree on dimension.
//   - ErrInvalidLabel: a label outside 1..k (an upstream invariant violation).
//   - ErrBadVertexSet: NewVertexSet got fewer than two vertices or mixed dimensions.
package chaosgame
