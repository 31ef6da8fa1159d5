package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvconn/core"
	"github.com/katalvlaran/lvconn/render"
	"github.com/katalvlaran/lvconn/source"
)

func newPgCmd(o *rootOptions) *cobra.Command {
	var dsn, table, fromCol, toCol, weightCol string
	cmd := &cobra.Command{
		Use:   "pg",
		Short: "Compute the connected components of a Postgres edge table",
		Long: `Reads one edge per row from a Postgres table and computes its connected
components. Rows whose to-column is NULL contribute an isolated vertex.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fs := cmd.Flags()
			pg := &o.cfg.Postgres
			for name, dst := range map[string]*string{
				"dsn": &pg.DSN, "table": &pg.Table, "from-column": &pg.FromColumn,
				"to-column": &pg.ToColumn, "weight-column": &pg.WeightColumn,
			} {
				if fs.Changed(name) {
					v, _ := fs.GetString(name)
					*dst = v
				}
			}
			if err := o.cfg.ValidateForPostgres(); err != nil {
				return err
			}

			ctx := cmd.Context()
			pool, err := source.Connect(ctx, pg.DSN)
			if err != nil {
				return err
			}
			defer pool.Close()

			doc, err := source.LoadPostgres(ctx, pool, o.cfg.TableSpec())
			if err != nil {
				return err
			}
			g, err := doc.Graph(core.WithLogger(o.log))
			if err != nil {
				return err
			}
			a, err := o.analyzer()
			if err != nil {
				return err
			}
			p, err := a.Components(ctx, g)
			if err != nil {
				return err
			}

			return render.Write(cmd.OutOrStdout(), o.renderFormat(), a.Strategy.String(), g, p)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&dsn, "dsn", "", "Postgres connection string (default $DATABASE_URL)")
	fs.StringVar(&table, "table", "", "edge table, optionally schema-qualified (default edges)")
	fs.StringVar(&fromCol, "from-column", "", "column holding the first endpoint (default src)")
	fs.StringVar(&toCol, "to-column", "", "column holding the second endpoint (default dst)")
	fs.StringVar(&weightCol, "weight-column", "", "column holding the weight; empty for unit weights (default weight)")

	return cmd
}
