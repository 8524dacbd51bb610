package boxcount_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sierpinski/boxcount"
	"github.com/katalvlaran/sierpinski/chaosgame"
	"github.com/katalvlaran/sierpinski/geom"
	"github.com/katalvlaran/sierpinski/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sierpinskiTriangleDim    = math.Log(3) / math.Log(2)
	sierpinskiTetrahedronDim = math.Log(4) / math.Log(2)
)

// TestEstimate_SierpinskiTriangle is the large-cloud accuracy check in 2D.
func TestEstimate_SierpinskiTriangle(t *testing.T) {
	if testing.Short() {
		t.Skip("large cloud")
	}
	cloud := chaosCloud(t, chaosgame.Triangle(), largeN, seedDet)

	res, err := boxcount.Estimate(cloud)
	require.NoError(t, err)
	assert.InDelta(t, sierpinskiTriangleDim, res.Dimension, dimTolerance)
	assert.Len(t, res.Scales, boxcount.DefaultSteps)
	assert.Len(t, res.Counts, boxcount.DefaultSteps)
	assert.Greater(t, res.R2, 0.9)
}

// TestEstimate_SierpinskiTetrahedron is the large-cloud accuracy check in 3D.
func TestEstimate_SierpinskiTetrahedron(t *testing.T) {
	if testing.Short() {
		t.Skip("large cloud")
	}
	cloud := chaosCloud(t, chaosgame.Tetrahedron(), largeN, seedDet)

	res, err := boxcount.Estimate(cloud)
	require.NoError(t, err)
	assert.InDelta(t, sierpinskiTetrahedronDim, res.Dimension, dimTolerance)
}

// TestEstimate_CountsMonotone checks that finer grids never occupy fewer cells
// than coarser ones along the default 2D schedule.
func TestEstimate_CountsMonotone(t *testing.T) {
	cloud := chaosCloud(t, chaosgame.Triangle(), 20_000, seedDet)

	res, err := boxcount.Estimate(cloud)
	require.NoError(t, err)
	for i := 1; i < len(res.Scales); i++ {
		require.Less(t, res.Scales[i-1], res.Scales[i])
		assert.GreaterOrEqual(t, res.Counts[i-1], res.Counts[i], "scale %d", i)
	}
}

// TestEstimate_Idempotent re-runs the estimate and expects an identical Result.
func TestEstimate_Idempotent(t *testing.T) {
	cloud := chaosCloud(t, chaosgame.Tetrahedron(), 10_000, seedDet)
	snapshot := cloud.Clone()

	a, err := boxcount.Estimate(cloud)
	require.NoError(t, err)
	b, err := boxcount.Estimate(cloud)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, snapshot, cloud, "Estimate must not modify its input")
}

// TestEstimate_WorkersMatchSequential ensures concurrency does not change output.
func TestEstimate_WorkersMatchSequential(t *testing.T) {
	cloud := chaosCloud(t, chaosgame.Triangle(), 30_000, 9)

	seq, err := boxcount.Estimate(cloud)
	require.NoError(t, err)
	for _, w := range []int{2, 4, 16} {
		par, err := boxcount.Estimate(cloud, boxcount.WithWorkers(w))
		require.NoError(t, err)
		assert.Equal(t, seq, par, "workers=%d", w)
	}
}

// TestEstimate_Degenerate covers a flat axis: no numeric result, a distinct error.
func TestEstimate_Degenerate(t *testing.T) {
	cloud := geom.Cloud{{0.5, 0.1}, {0.5, 0.2}, {0.5, 0.3}}

	res, err := boxcount.Estimate(cloud)
	assert.ErrorIs(t, err, boxcount.ErrDegenerateDistribution)
	assert.Equal(t, boxcount.Result{}, res)

	single := geom.Cloud{{1, 2, 3}}
	_, err = boxcount.Estimate(single)
	assert.ErrorIs(t, err, boxcount.ErrDegenerateDistribution, "a single point is flat on every axis")
}

// TestEstimate_Errors covers validation sentinels.
func TestEstimate_Errors(t *testing.T) {
	cases := []struct {
		name  string
		cloud geom.Cloud
		opts  []boxcount.Option
		err   error
	}{
		{"Empty", geom.Cloud{}, nil, boxcount.ErrEmptyCloud},
		{"Mixed", geom.Cloud{{0, 0}, {1}}, nil, boxcount.ErrMixedDimension},
		{"NaN", geom.Cloud{{0, 0}, {1, math.NaN()}}, nil, boxcount.ErrNonFinite},
		{"FourD", geom.Cloud{{0, 0, 0, 0}, {1, 1, 1, 1}}, nil, boxcount.ErrUnsupportedDimension},
		{"OneDNoSchedule", geom.Cloud{{0}, {1}}, nil, boxcount.ErrUnsupportedDimension},
		{"TinyScale", geom.Cloud{{0, 0}, {1, 1}}, []boxcount.Option{boxcount.WithScales([]float64{1e-300, 1})}, boxcount.ErrBadScale},
		{"FlatSchedule", geom.Cloud{{0, 0}, {1, 1}}, []boxcount.Option{boxcount.WithScales([]float64{0.1, 0.1})}, numeric.ErrZeroVariance},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := boxcount.Estimate(tc.cloud, tc.opts...)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestEstimate_LineWithCustomScales checks a 1D lattice, which has dimension 1.
func TestEstimate_LineWithCustomScales(t *testing.T) {
	cloud := make(geom.Cloud, 1001)
	for i := range cloud {
		cloud[i] = geom.Point{float64(i) / 1000}
	}

	res, err := boxcount.Estimate(cloud, boxcount.WithScales([]float64{0.01, 0.02, 0.05, 0.1}))
	require.NoError(t, err)
	assert.Equal(t, []int{101, 51, 21, 11}, res.Counts)
	assert.InDelta(t, 1.0, res.Dimension, 0.05)
}

// TestWithScales_CopiesInput makes sure later mutation of the caller's slice
// does not leak into the schedule.
func TestWithScales_CopiesInput(t *testing.T) {
	sizes := []float64{0.01, 0.02, 0.05, 0.1}
	opt := boxcount.WithScales(sizes)
	sizes[0] = 0.5

	cloud := geom.Cloud{{0}, {0.5}, {1}}
	res, err := boxcount.Estimate(cloud, opt)
	require.NoError(t, err)
	assert.Equal(t, 0.01, res.Scales[0])
}

// TestOptions_Panics checks that option constructors reject nonsense.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { boxcount.WithScales([]float64{0.1}) })
	assert.Panics(t, func() { boxcount.WithScales([]float64{0.1, 0}) })
	assert.Panics(t, func() { boxcount.WithScales([]float64{0.1, math.NaN()}) })
	assert.Panics(t, func() { boxcount.WithScales([]float64{0.1, math.Inf(1)}) })
	assert.Panics(t, func() { boxcount.WithWorkers(0) })
}

// TestDefaultScales pins the fixed schedules.
func TestDefaultScales(t *testing.T) {
	s2, err := boxcount.DefaultScales(2)
	require.NoError(t, err)
	require.Len(t, s2, 10)
	assert.InDelta(t, 1e-3, s2[0], 1e-15)
	assert.Equal(t, 1.0, s2[9])

	s3, err := boxcount.DefaultScales(3)
	require.NoError(t, err)
	require.Len(t, s3, 10)
	assert.InDelta(t, 0.005, s3[0], 1e-12)
	assert.InDelta(t, 0.3, s3[9], 1e-12)

	_, err = boxcount.DefaultScales(1)
	assert.ErrorIs(t, err, boxcount.ErrUnsupportedDimension)
}
