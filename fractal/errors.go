package fractal

import (
	"errors"

	"github.com/katalvlaran/sierpinski/boxcount"
	"github.com/katalvlaran/sierpinski/labels"
)

var (
	// ErrInsufficientSamples indicates a series shorter than the vertex count.
	ErrInsufficientSamples = errors.New("fractal: insufficient samples")

	// ErrUnknownMode indicates a mode string ParseMode does not recognize.
	ErrUnknownMode = errors.New("fractal: unknown mode")

	// ErrUnknownKind indicates a Kind outside {Triangle, Tetrahedron}.
	ErrUnknownKind = errors.New("fractal: unknown kind")
)

// Stage sentinels re-exported for callers that only import this package.
var (
	ErrDegenerateDistribution = boxcount.ErrDegenerateDistribution
	ErrNeedRandSource         = labels.ErrNeedRandSource
)
