package chaosgame

import (
	"fmt"

	"github.com/katalvlaran/sierpinski/geom"
)

const opRun = "Run"

// Run plays the chaos game over labels.
//
// Algorithm:
//  1. Validate: len(labels) ≥ vs.K(), dim(start) == vs.Dim(), every label in 1..K.
//  2. current := start.
//  3. For each label l in order: current := (current + vertex[l-1]) / 2;
//     emit a copy of current.
//
// The returned cloud has exactly len(labels) points backed by one flat buffer;
// it never aliases start or the vertex set.
//
// Errors:
//   - ErrInsufficientSamples, ErrDimensionMismatch, ErrInvalidLabel (wrapped with
//     the offending index). Nothing is computed when validation fails.
//
// Complexity: O(p·d) time, O(p·d) memory.
func Run(labels []int, vs VertexSet, start geom.Point) (geom.Cloud, error) {
	k, d := vs.K(), vs.Dim()
	if k == 0 || d == 0 {
		return nil, fmt.Errorf("%s: empty vertex set: %w", opRun, ErrBadVertexSet)
	}
	if len(labels) < k {
		return nil, fmt.Errorf("%s: need at least %d labels, got %d: %w", opRun, k, len(labels), ErrInsufficientSamples)
	}
	if len(start) != d {
		return nil, fmt.Errorf("%s: start has dimension %d, want %d: %w", opRun, len(start), d, ErrDimensionMismatch)
	}
	for i, l := range labels {
		if l < 1 || l > k {
			return nil, fmt.Errorf("%s: index %d: label %d not in 1..%d: %w", opRun, i, l, k, ErrInvalidLabel)
		}
	}

	p := len(labels)
	flat := make([]float64, p*d)
	cloud := make(geom.Cloud, p)
	current := start
	for i, l := range labels {
		next := geom.Point(flat[i*d : (i+1)*d : (i+1)*d])
		geom.Midpoint(next, current, vs.vertices[l-1])
		cloud[i] = next
		current = next
	}

	return cloud, nil
}
