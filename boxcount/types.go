package boxcount

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sierpinski/numeric"
)

// MaxDim is the largest supported cloud dimension.
const MaxDim = 3

// Default schedules, as log10 exponents, with DefaultSteps sizes each.
const (
	DefaultSteps = 10

	Plane2DMinExp = -3.0
	Plane2DMaxExp = 0.0
)

// Space3DMinExp and Space3DMaxExp bound the 3D schedule: 0.005 … 0.3.
var (
	Space3DMinExp = math.Log10(0.005)
	Space3DMaxExp = math.Log10(0.3)
)

// DefaultScales returns the fixed box-size schedule for dimension d.
// Only d=2 and d=3 have defaults.
func DefaultScales(d int) ([]float64, error) {
	switch d {
	case 2:
		return numeric.Logspace(Plane2DMinExp, Plane2DMaxExp, DefaultSteps)
	case 3:
		return numeric.Logspace(Space3DMinExp, Space3DMaxExp, DefaultSteps)
	default:
		return nil, fmt.Errorf("no default schedule for d=%d: %w", d, ErrUnsupportedDimension)
	}
}

// Result is one dimension estimate together with the data it was fitted on.
type Result struct {
	// Dimension is the fitted slope of log N(s) against log(1/s).
	Dimension float64
	// Intercept is the fitted intercept of the same line.
	Intercept float64
	// R2 is the coefficient of determination of the fit.
	R2 float64
	// Scales are the box sizes in schedule order.
	Scales []float64
	// Counts[i] is the number of occupied cells at Scales[i].
	Counts []int
}

// cellKey identifies one grid cell. Unused trailing axes stay zero, so keys
// of one cloud never collide across distinct cells.
type cellKey [MaxDim]int64
