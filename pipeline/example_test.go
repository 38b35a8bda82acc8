package pipeline_test

import (
	"fmt"

	"github.com/katalvlaran/manifold/pipeline"
)

// ExampleBuild builds the affinity graph of the unit-square corners with
// k=2 (self + nearest neighbor). Only points 0 and 1 pick each other, so the
// graph keeps exactly that pair, with a symmetric normalized weight.
func ExampleBuild() {
	points := [][]float64{
		{0, 0},
		{1, 0},
		{0, 1},
		{1, 1},
	}

	g, err := pipeline.Build(points, 2, pipeline.WithWorkers(1))
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}

	fmt.Println("rows:", g.Rows())
	fmt.Println("edges:", g.NNZ())
	fmt.Printf("w(0,1)=%.6f w(1,0)=%.6f\n", g.At(0, 1), g.At(1, 0))
	fmt.Printf("w(0,2)=%.6f\n", g.At(0, 2))
	// Output:
	// rows: 4
	// edges: 2
	// w(0,1)=2.718282 w(1,0)=2.718282
	// w(0,2)=0.000000
}
