package geom

import (
	"fmt"
	"math"
)

// Point is a coordinate tuple in ℝ^d.
type Point []float64

// Dim returns the number of coordinates of p.
func (p Point) Dim() int { return len(p) }

// Clone returns a deep copy of p.
func (p Point) Clone() Point {
	if p == nil {
		return nil
	}
	cp := make(Point, len(p))
	copy(cp, p)

	return cp
}

// Midpoint writes (a+b)/2 into dst component-wise and returns dst.
// dst may alias a or b. All three must have the same length; the caller
// guarantees it (the chaos-game engine validates dimensions up front).
// Complexity: O(d).
func Midpoint(dst, a, b Point) Point {
	for i := range dst {
		dst[i] = (a[i] + b[i]) / 2
	}

	return dst
}

// Cloud is an ordered point sequence of one common dimension.
type Cloud []Point

// Dim returns the dimension of the first point, or 0 for an empty cloud.
func (c Cloud) Dim() int {
	if len(c) == 0 {
		return 0
	}

	return len(c[0])
}

// Clone returns a deep copy of c backed by a single flat buffer.
func (c Cloud) Clone() Cloud {
	if c == nil {
		return nil
	}
	d := c.Dim()
	flat := make([]float64, len(c)*d)
	out := make(Cloud, len(c))
	for i, p := range c {
		row := flat[i*d : (i+1)*d : (i+1)*d]
		copy(row, p)
		out[i] = row
	}

	return out
}

// Validate checks that c is non-empty, dimensionally consistent and finite.
// Errors are wrapped with the offending point index; match with errors.Is.
// Complexity: O(n·d).
func (c Cloud) Validate() error {
	d := c.Dim()
	if d == 0 {
		return ErrEmptyCloud
	}
	for i, p := range c {
		if len(p) != d {
			return fmt.Errorf("point %d has dimension %d, want %d: %w", i, len(p), d, ErrMixedDimension)
		}
		for _, v := range p {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("point %d: %w", i, ErrNonFinite)
			}
		}
	}

	return nil
}

// Bounds returns the per-axis minimum and maximum of c.
// It validates c first, so the returned slices always have length Dim().
// Complexity: O(n·d) time, O(d) memory.
func (c Cloud) Bounds() (lo, hi []float64, err error) {
	if err = c.Validate(); err != nil {
		return nil, nil, err
	}
	d := c.Dim()
	lo = make([]float64, d)
	hi = make([]float64, d)
	copy(lo, c[0])
	copy(hi, c[0])
	for _, p := range c[1:] {
		for j, v := range p {
			if v < lo[j] {
				lo[j] = v
			}
			if v > hi[j] {
				hi[j] = v
			}
		}
	}

	return lo, hi, nil
}
