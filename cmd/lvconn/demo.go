package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvconn/core"
)

type demoEdge struct {
	u, v string
	w    int64
}

// demoScenarios are the reference graphs printed by `lvconn demo`.
var demoScenarios = [][]demoEdge{
	{{"A", "B", 4}, {"B", "C", 3}, {"B", "D", 2}, {"D", "A", 1}, {"A", "C", 2}, {"B", "D", 2}},
	{{"A", "B", 4}, {"C", "D", 4}, {"E", "F", 1}, {"F", "G", 1}},
	{{"A", "B", 4}, {"B", "C", 3}, {"D", "E", 5}},
	{},
}

func newDemoCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the selected strategy on the built-in scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := o.analyzer()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "strategy: %s\n", a.Strategy)

			for i, sc := range demoScenarios {
				g := core.NewGraph[string](core.WithLogger(o.log))
				parts := make([]string, 0, len(sc))
				for _, e := range sc {
					if err = g.AddEdge(e.u, e.v, e.w); err != nil {
						return err
					}
					parts = append(parts, fmt.Sprintf("(%s,%s,%d)", e.u, e.v, e.w))
				}
				p, err := a.Components(cmd.Context(), g)
				if err != nil {
					return err
				}
				if len(parts) == 0 {
					parts = append(parts, "(no edges)")
				}
				fmt.Fprintf(out, "\nscenario %d: %s\n", i+1, strings.Join(parts, " "))
				fmt.Fprintf(out, "  components: %v\n", p)
			}

			return nil
		},
	}
}
