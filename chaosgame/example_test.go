package chaosgame_test

import (
	"fmt"

	"github.com/katalvlaran/sierpinski/chaosgame"
)

// ExampleRun walks four steps of the Sierpinski triangle chaos game.
//
//	(0.5,0.5) → toward (0,0) → toward (1,0) → toward (0.5,1) → toward (0.5,1)
func ExampleRun() {
	vs := chaosgame.Triangle()

	cloud, err := chaosgame.Run([]int{1, 2, 3, 3}, vs, vs.Start())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, p := range cloud {
		fmt.Printf("(%.4f, %.4f)\n", p[0], p[1])
	}
	// Output:
	// (0.2500, 0.2500)
	// (0.6250, 0.1250)
	// (0.5625, 0.5625)
	// (0.5312, 0.7812)
}
