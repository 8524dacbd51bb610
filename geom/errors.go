package geom

import "errors"

var (
	// ErrEmptyCloud indicates a cloud with no points, or points with no coordinates.
	ErrEmptyCloud = errors.New("geom: cloud must contain at least one point")
	// ErrMixedDimension indicates points of differing dimensions within one cloud.
	ErrMixedDimension = errors.New("geom: all points must share one dimension")
	// ErrNonFinite indicates a NaN or ±Inf coordinate.
	ErrNonFinite = errors.New("geom: NaN or Inf coordinate")
)
