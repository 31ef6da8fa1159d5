package gridgraph_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvconn/connectivity"
	"github.com/katalvlaran/lvconn/gridgraph"
)

// ExampleGridGraph_Islands identifies contiguous regions of equal resource IDs.
// Scenario:
//
//   - Grid values: 0 = water, 1,2,3 = different land/resource IDs
//   - Conn4 with SplitByValue: touching regions of different IDs stay apart
//   - Expect three islands, one per resource ID
func ExampleGridGraph_Islands() {
	grid := [][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 2, 2},
		{3, 0, 2, 2, 0},
	}
	opts := gridgraph.DefaultGridOptions()
	opts.SplitByValue = true
	gg, _ := gridgraph.NewGridGraph(grid, opts)

	islands, err := gg.Islands(context.Background(), &connectivity.Analyzer[string]{Strategy: connectivity.BFS})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("islands:", len(islands))
	for i, is := range islands {
		fmt.Printf("island %d (id %d):", i, is[0].Value)
		for _, c := range is {
			fmt.Printf(" (%d,%d)", c.X, c.Y)
		}
		fmt.Println()
	}

	// Output:
	// islands: 3
	// island 0 (id 1): (1,0) (2,0) (1,1) (0,1)
	// island 1 (id 2): (4,0) (4,1) (3,1) (3,2) (2,2)
	// island 2 (id 3): (0,2)
}
