package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvconn/builder"
	"github.com/katalvlaran/lvconn/unionfind"
)

// ExampleBuildGraph assembles a fixture with a known number of components.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDScheme(builder.ExcelColumnIDFn)},
		builder.Disjoint(builder.Path(3), builder.Isolated(1)),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	p, _ := unionfind.Components(g)
	fmt.Println(g.Vertices())
	fmt.Println(p)
	// Output:
	// [c0_A c0_B c0_C c1_A]
	// [[c0_A c0_B c0_C] [c1_A]]
}
