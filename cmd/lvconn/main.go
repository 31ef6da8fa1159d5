// Command lvconn partitions a graph description into connected components.
//
//	lvconn analyze graph.yaml --strategy dfs --format mermaid
//	lvconn verify graph.hcl --var heavy=9
//	lvconn pg --dsn postgres://localhost/db --table edges
//	lvconn demo
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"k8s.io/klog/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	defer klog.Flush()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		klog.Flush()
		os.Exit(1)
	}
}
