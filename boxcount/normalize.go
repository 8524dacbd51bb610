package boxcount

import (
	"fmt"

	"github.com/katalvlaran/sierpinski/geom"
)

const opNormalize = "Normalize"

// Normalize rescales every axis of cloud to [0,1] via (x - min)/(max - min).
// The result is a fresh cloud; the input is not modified.
//
// Errors:
//   - ErrEmptyCloud, ErrMixedDimension, ErrNonFinite from validation.
//   - ErrUnsupportedDimension if the dimension exceeds MaxDim.
//   - ErrDegenerateDistribution if max == min on any axis (wrapped with the axis).
//
// Complexity: O(n·d).
func Normalize(cloud geom.Cloud) (geom.Cloud, error) {
	lo, hi, err := cloud.Bounds()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNormalize, err)
	}
	d := len(lo)
	if d > MaxDim {
		return nil, fmt.Errorf("%s: d=%d: %w", opNormalize, d, ErrUnsupportedDimension)
	}
	span := make([]float64, d)
	for j := 0; j < d; j++ {
		span[j] = hi[j] - lo[j]
		if span[j] == 0 {
			return nil, fmt.Errorf("%s: axis %d has zero extent: %w", opNormalize, j, ErrDegenerateDistribution)
		}
	}

	out := cloud.Clone()
	for _, p := range out {
		for j := range p {
			p[j] = (p[j] - lo[j]) / span[j]
		}
	}

	return out, nil
}
