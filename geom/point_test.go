package geom_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sierpinski/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMidpoint checks the contraction kernel, including aliasing dst with a.
func TestMidpoint(t *testing.T) {
	a := geom.Point{0.5, 0.5}
	b := geom.Point{1, 0}

	got := geom.Midpoint(make(geom.Point, 2), a, b)
	assert.Equal(t, geom.Point{0.75, 0.25}, got)

	geom.Midpoint(a, a, b)
	assert.Equal(t, geom.Point{0.75, 0.25}, a, "dst may alias an operand")
}

// TestCloud_Validate covers every sentinel surfaced by Validate.
func TestCloud_Validate(t *testing.T) {
	cases := []struct {
		name  string
		cloud geom.Cloud
		err   error
	}{
		{"Nil", nil, geom.ErrEmptyCloud},
		{"ZeroDim", geom.Cloud{{}}, geom.ErrEmptyCloud},
		{"Mixed", geom.Cloud{{0, 0}, {1, 1, 1}}, geom.ErrMixedDimension},
		{"NaN", geom.Cloud{{0, 0}, {math.NaN(), 1}}, geom.ErrNonFinite},
		{"Inf", geom.Cloud{{math.Inf(-1), 0}}, geom.ErrNonFinite},
		{"OK", geom.Cloud{{0, 0}, {1, 1}}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cloud.Validate()
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestCloud_Bounds verifies per-axis extrema on a 3D cloud.
func TestCloud_Bounds(t *testing.T) {
	c := geom.Cloud{{1, -2, 3}, {0, 5, 3}, {4, 1, 3}}
	lo, hi, err := c.Bounds()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, -2, 3}, lo)
	assert.Equal(t, []float64{4, 5, 3}, hi)

	_, _, err = geom.Cloud{}.Bounds()
	assert.ErrorIs(t, err, geom.ErrEmptyCloud)
}

// TestCloud_Clone ensures the copy shares no memory with the source.
func TestCloud_Clone(t *testing.T) {
	src := geom.Cloud{{1, 2}, {3, 4}}
	cp := src.Clone()
	require.Equal(t, src, cp)

	cp[0][0] = 42
	assert.Equal(t, 1.0, src[0][0], "mutating the clone must not touch the source")
	assert.Nil(t, geom.Cloud(nil).Clone())
	assert.Nil(t, geom.Point(nil).Clone())
}
