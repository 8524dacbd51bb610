package fractal_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sierpinski/chaosgame"
	"github.com/katalvlaran/sierpinski/fractal"
	"github.com/katalvlaran/sierpinski/geom"
	"github.com/katalvlaran/sierpinski/labels"
)

// ExampleGenerate runs the "controls" mode on nine ordered values.
func ExampleGenerate() {
	req, err := fractal.NewRequest([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, fractal.Triangle, "controls")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := fractal.Generate(req)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(labels.Labels(res.Samples))
	fmt.Println(len(res.Cloud), res.Hint.Color(), res.HasDimension)
	// Output:
	// [1 1 1 2 2 2 3 3 3]
	// 9 blue true
}

// ExampleGenerate_degenerate shows a cloud whose dimension is undefined.
func ExampleGenerate_degenerate() {
	flat, _ := chaosgame.NewVertexSet([]geom.Point{{0, 0.5}, {1, 0.5}, {0.5, 0.5}}, nil)
	res, err := fractal.Generate(fractal.Request{Series: []float64{3, 1, 2, 5}, Kind: fractal.Triangle},
		fractal.WithVertexSet(flat))
	fmt.Println(errors.Is(err, fractal.ErrDegenerateDistribution), len(res.Cloud), res.Summary())
	// Output: true 4 -
}
