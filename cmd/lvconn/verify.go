package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvconn/connectivity"
)

func newVerifyCmd(o *rootOptions) *cobra.Command {
	var vars []string
	cmd := &cobra.Command{
		Use:   "verify FILE",
		Short: "Run every strategy on a graph file and check that they agree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := o.loadFile(args[0], vars)
			if err != nil {
				return err
			}
			a := connectivity.Analyzer[string]{Logger: o.log}
			rep, err := a.Verify(cmd.Context(), g)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, s := range connectivity.Strategies() {
				status := "ok"
				if err, bad := rep.Invalid[s]; bad {
					status = err.Error()
				}
				fmt.Fprintf(out, "%-14s %3d components  %s\n", s, rep.Partitions[s].Len(), status)
			}
			if err = rep.Err(); err != nil {
				return err
			}
			fmt.Fprintln(out, "all strategies agree")

			return nil
		},
	}
	cmd.Flags().StringArrayVar(&vars, "var", nil, "HCL variable as name=value, repeatable")

	return cmd
}
