package chaosgame

import "errors"

var (
	// ErrInsufficientSamples indicates fewer labels than vertices.
	ErrInsufficientSamples = errors.New("chaosgame: insufficient samples")

	// ErrDimensionMismatch indicates a start point whose dimension differs from the vertices'.
	ErrDimensionMismatch = errors.New("chaosgame: dimension mismatch")

	// ErrInvalidLabel indicates a label outside 1..k. Label producers in this
	// module never emit one, so seeing it means a broken invariant upstream.
	ErrInvalidLabel = errors.New("chaosgame: label out of range")

	// ErrBadVertexSet indicates a custom vertex set that is too small, empty-dimensional,
	// non-finite or dimensionally inconsistent.
	ErrBadVertexSet = errors.New("chaosgame: invalid vertex set")
)
