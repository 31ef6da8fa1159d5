package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvconn/builder"
	"github.com/katalvlaran/lvconn/core"
	"github.com/katalvlaran/lvconn/source"
)

var generateKinds = []string{"isolated", "path", "cycle", "star", "complete", "grid", "random"}

type generateOptions struct {
	n, rows, cols int
	p             float64
	seed          int64
	copies        int
	prefix        string
	minW, maxW    int64
}

func newGenerateCmd(o *rootOptions) *cobra.Command {
	g := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate KIND",
		Short: "Write a generated graph document to stdout",
		Long: `Generates a graph of the given KIND (` + strings.Join(generateKinds, ", ") + `)
and writes it as a YAML document that analyze can read back. With --copies k the
topology is repeated k times in disjoint label scopes, giving a known component count.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: generateKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			con, err := g.constructor(args[0])
			if err != nil {
				return err
			}
			if g.copies > 1 {
				cons := make([]builder.Constructor, g.copies)
				for i := range cons {
					cons[i] = con
				}
				con = builder.Disjoint(cons...)
			}

			bopts := []builder.BuilderOption{
				builder.WithSeed(g.seed),
				builder.WithUniformWeight(g.minW, g.maxW),
			}
			if g.prefix != "" {
				bopts = append(bopts, builder.WithPrefix(g.prefix))
			}
			graph, err := builder.BuildGraph([]core.GraphOption{core.WithLogger(o.log)}, bopts, con)
			if err != nil {
				return err
			}
			o.log.V(2).Info("generated graph", "kind", args[0], "vertices", graph.Size(), "edges", graph.EdgeCount())

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err = enc.Encode(source.FromGraph(graph)); err != nil {
				return errors.Wrap(err, "encoding document")
			}

			return enc.Close()
		},
	}

	fs := cmd.Flags()
	fs.IntVar(&g.n, "n", 10, "number of vertices (isolated, path, cycle, star, complete, random)")
	fs.IntVar(&g.rows, "rows", 3, "grid rows")
	fs.IntVar(&g.cols, "cols", 3, "grid columns")
	fs.Float64Var(&g.p, "p", 0.1, "edge probability (random)")
	fs.Int64Var(&g.seed, "seed", 1, "random seed")
	fs.IntVar(&g.copies, "copies", 1, "number of disjoint copies")
	fs.StringVar(&g.prefix, "prefix", "", "vertex label prefix (default decimal labels)")
	fs.Int64Var(&g.minW, "min-weight", builder.DefaultEdgeWeight, "minimum edge weight")
	fs.Int64Var(&g.maxW, "max-weight", builder.DefaultEdgeWeight, "maximum edge weight")

	return cmd
}

func (g *generateOptions) constructor(kind string) (builder.Constructor, error) {
	if g.minW < 0 || g.maxW < g.minW {
		return nil, errors.Errorf("invalid weight range [%d, %d]", g.minW, g.maxW)
	}
	if g.copies < 1 {
		return nil, errors.Errorf("--copies must be at least 1, got %d", g.copies)
	}

	switch kind {
	case "isolated":
		return builder.Isolated(g.n), nil
	case "path":
		return builder.Path(g.n), nil
	case "cycle":
		return builder.Cycle(g.n), nil
	case "star":
		return builder.Star(g.n), nil
	case "complete":
		return builder.Complete(g.n), nil
	case "grid":
		return builder.Grid(g.rows, g.cols), nil
	case "random":
		return builder.RandomSparse(g.n, g.p), nil
	default:
		return nil, fmt.Errorf("unknown kind %q (want one of %s)", kind, strings.Join(generateKinds, ", "))
	}
}
