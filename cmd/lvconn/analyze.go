package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvconn/connectivity"
	"github.com/katalvlaran/lvconn/core"
	"github.com/katalvlaran/lvconn/render"
	"github.com/katalvlaran/lvconn/source"
)

func newAnalyzeCmd(o *rootOptions) *cobra.Command {
	var (
		vars  []string
		trace bool
	)
	cmd := &cobra.Command{
		Use:   "analyze FILE",
		Short: "Compute the connected components of a graph file",
		Long: `Loads FILE (.yaml, .yml, .json, .hcl or .grid), computes its connected components
with the selected strategy and writes them in the selected format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := o.loadFile(args[0], vars)
			if err != nil {
				return err
			}
			a, err := o.analyzer()
			if err != nil {
				return err
			}
			if trace {
				a.Observer = traceTo(cmd.ErrOrStderr())
			}

			p, err := a.Components(cmd.Context(), g)
			if err != nil {
				return err
			}

			return render.Write(cmd.OutOrStdout(), o.renderFormat(), a.Strategy.String(), g, p)
		},
	}
	cmd.Flags().StringArrayVar(&vars, "var", nil, "HCL variable as name=value, repeatable")
	cmd.Flags().BoolVar(&trace, "trace", false, "print every traversal step to stderr")

	return cmd
}

// loadFile reads a graph document, merging config vars with flag vars.
func (o *rootOptions) loadFile(path string, flagVars []string) (*core.Graph[string], error) {
	vars, err := source.ParseVars(append(o.cfg.VarPairs(), flagVars...))
	if err != nil {
		return nil, err
	}
	doc, err := source.LoadFile(path, vars)
	if err != nil {
		return nil, err
	}
	o.log.V(2).Info("loaded document", "path", path, "vertices", len(doc.Vertices), "edges", len(doc.Edges))

	return doc.Graph(core.WithLogger(o.log))
}

// traceTo writes one line per step, indented by component.
func traceTo(w io.Writer) connectivity.Observer[string] {
	return func(s connectivity.Step[string]) {
		switch s.Kind {
		case connectivity.Merge:
			fmt.Fprintf(w, "%-15s %s-%s merged=%t\n", s.Kind, s.Vertex, s.Other, s.Merged)
		case connectivity.ComponentDone:
			fmt.Fprintf(w, "%-15s #%d\n", s.Kind, s.Component)
		default:
			fmt.Fprintf(w, "%-15s #%d %s frontier=%v\n", s.Kind, s.Component, s.Vertex, s.Frontier)
		}
	}
}
