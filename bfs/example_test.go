package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvconn/bfs"
	"github.com/katalvlaran/lvconn/core"
)

// ExampleBFS demonstrates BFS layering on a 3×3 grid.
func ExampleBFS() {
	g := core.NewGraph[string]()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				_ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1), 1)
			}
			if i+1 < 3 {
				_ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j), 1)
			}
		}
	}

	res, err := bfs.BFS(g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

// ExampleComponents splits three islands and reports each as it completes.
func ExampleComponents() {
	g := core.NewGraph[string]()
	_ = g.AddEdge("A", "B", 4)
	_ = g.AddEdge("C", "D", 4)
	_ = g.AddEdge("E", "F", 1)
	_ = g.AddEdge("F", "G", 1)

	comps, err := bfs.Components(g, bfs.WithOnComponent(func(i int, members []string) {
		fmt.Printf("component %d: %v\n", i, members)
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("total:", comps.Len())
	// Output:
	// component 0: [A B]
	// component 1: [C D]
	// component 2: [E F G]
	// total: 3
}
