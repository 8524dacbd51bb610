package boxcount_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sierpinski/chaosgame"
	"github.com/katalvlaran/sierpinski/geom"
)

const (
	// seedDet fixes every label stream in this package's tests.
	seedDet = int64(1)

	// largeN is big enough that the finest default grids are no longer
	// saturated by the sample count.
	largeN = 500_000

	// dimTolerance is the accepted gap to the theoretical dimension.
	dimTolerance = 0.1
)

// chaosCloud plays the chaos game over n uniform labels on vs.
func chaosCloud(t testing.TB, vs chaosgame.VertexSet, n int, seed int64) geom.Cloud {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	lbl := make([]int, n)
	for i := range lbl {
		lbl[i] = rng.Intn(vs.K()) + 1
	}
	cloud, err := chaosgame.Run(lbl, vs, vs.Start())
	if err != nil {
		t.Fatalf("chaosgame.Run: %v", err)
	}

	return cloud
}
