package series_test

import (
	"testing"

	"github.com/katalvlaran/sierpinski/series"
)

func BenchmarkChirp100k(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := series.Chirp(100_000); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRandomWalk100k(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := series.RandomWalk(100_000, series.WithSeed(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
}
