package main

import (
	"flag"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/lvconn/connectivity"
	"github.com/katalvlaran/lvconn/internal/config"
	"github.com/katalvlaran/lvconn/render"
)

// rootOptions is shared by every subcommand once PersistentPreRunE ran.
type rootOptions struct {
	configPath string
	strategy   string
	format     string

	cfg *config.Config
	log logr.Logger
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "lvconn",
		Short: "Partition undirected graphs into connected components",
		Long: `lvconn loads an undirected weighted graph from a YAML, JSON, HCL or grid file,
or from a Postgres edge table, and partitions its vertices into connected components
using BFS, DFS or union-find.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return o.complete(cmd.Flags())
		},
	}

	fs := cmd.PersistentFlags()
	fs.StringVar(&o.configPath, "config", "", "path to YAML config file")
	fs.StringVar(&o.strategy, "strategy", "", "components strategy: bfs, dfs, dfs-recursive or union-find")
	fs.StringVar(&o.format, "format", "", "output format: text, mermaid, json or yaml")
	addKlogFlags(fs)

	cmd.AddCommand(
		newAnalyzeCmd(o),
		newVerifyCmd(o),
		newPgCmd(o),
		newDemoCmd(o),
		newGenerateCmd(o),
	)

	return cmd
}

// addKlogFlags registers klog's flags (-v, -logtostderr, ...) on fs.
func addKlogFlags(fs *pflag.FlagSet) {
	var klogFlags flag.FlagSet
	klog.InitFlags(&klogFlags)
	fs.AddGoFlagSet(&klogFlags)
}

// complete loads the config file and lets explicitly set flags win.
func (o *rootOptions) complete(fs *pflag.FlagSet) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if fs.Changed("strategy") {
		cfg.Strategy = o.strategy
	}
	if fs.Changed("format") {
		cfg.Format = o.format
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg
	o.log = klog.Background().WithName("lvconn")

	return nil
}

func (o *rootOptions) analyzer() (*connectivity.Analyzer[string], error) {
	s, err := connectivity.ParseStrategy(o.cfg.Strategy)
	if err != nil {
		return nil, err
	}

	return &connectivity.Analyzer[string]{Strategy: s, Logger: o.log}, nil
}

func (o *rootOptions) renderFormat() render.Format {
	f, _ := render.ParseFormat(o.cfg.Format) // checked by complete

	return f
}
