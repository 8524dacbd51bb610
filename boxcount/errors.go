package boxcount

import (
	"errors"

	"github.com/katalvlaran/sierpinski/geom"
)

var (
	// ErrDegenerateDistribution indicates an axis with zero extent (max == min).
	// The estimate is undefined; the cloud itself is still usable.
	ErrDegenerateDistribution = errors.New("boxcount: degenerate distribution")

	// ErrUnsupportedDimension indicates a cloud dimension outside 1..3, or a
	// dimension without a default schedule and no WithScales override.
	ErrUnsupportedDimension = errors.New("boxcount: unsupported dimension")

	// ErrBadScale indicates a non-positive or non-finite box size.
	ErrBadScale = errors.New("boxcount: box size must be finite and > 0")
)

// Cloud validation sentinels, re-exported so callers can match them from here.
var (
	ErrEmptyCloud     = geom.ErrEmptyCloud
	ErrMixedDimension = geom.ErrMixedDimension
	ErrNonFinite      = geom.ErrNonFinite
)
