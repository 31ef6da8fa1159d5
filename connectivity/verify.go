package connectivity

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvconn/core"
	"github.com/katalvlaran/lvconn/partition"
)

// ErrDisagreement is returned by VerifyReport.Err when strategies disagree
// or produce an invalid partition.
var ErrDisagreement = errors.New("connectivity: strategies disagree")

// VerifyReport collects the partitions of every strategy for one graph.
type VerifyReport[V comparable] struct {
	// Partitions holds each strategy's result.
	Partitions map[Strategy]partition.Partition[V]

	// Invalid holds partition.Validate failures by strategy.
	Invalid map[Strategy]error

	// Disagree lists strategies whose grouping differs from BFS.
	Disagree []Strategy

	// OrderMismatch is set when the two DFS walkers differ in any order.
	OrderMismatch bool
}

// OK reports whether every partition is valid and all agree.
func (r *VerifyReport[V]) OK() bool {
	return len(r.Invalid) == 0 && len(r.Disagree) == 0 && !r.OrderMismatch
}

// Components returns the number of components found by BFS.
func (r *VerifyReport[V]) Components() int {
	return r.Partitions[BFS].Len()
}

// Err summarizes a failed report as an ErrDisagreement, or returns nil.
func (r *VerifyReport[V]) Err() error {
	if r.OK() {
		return nil
	}
	var parts []string
	for _, s := range Strategies() {
		if err, ok := r.Invalid[s]; ok {
			parts = append(parts, fmt.Sprintf("%s invalid: %v", s, err))
		}
	}
	for _, s := range r.Disagree {
		parts = append(parts, fmt.Sprintf("%s differs from %s", s, BFS))
	}
	if r.OrderMismatch {
		parts = append(parts, fmt.Sprintf("%s and %s visit in different orders", DFS, DFSRecursive))
	}

	return fmt.Errorf("%w: %s", ErrDisagreement, strings.Join(parts, "; "))
}

// Verify runs every strategy on g concurrently and cross-checks the results.
// g must not be mutated until Verify returns.
// The returned error covers only a nil graph or cancellation;
// disagreement is reported through the VerifyReport.
func (a *Analyzer[V]) Verify(ctx context.Context, g *core.Graph[V]) (*VerifyReport[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	rep := &VerifyReport[V]{
		Partitions: make(map[Strategy]partition.Partition[V], len(Strategies())),
		Invalid:    make(map[Strategy]error),
	}
	vertices := g.Vertices()
	strategies := Strategies()
	results := make([]partition.Partition[V], len(strategies))

	// the graph is only read here, so strategies may run side by side
	eg, egCtx := errgroup.WithContext(ctx)
	for i, s := range strategies {
		i, s := i, s // per-iteration copies (go directive < 1.22)
		eg.Go(func() error {
			run := Analyzer[V]{Strategy: s, Logger: a.Logger}
			p, err := run.Components(egCtx, g)
			results[i] = p

			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for i, s := range strategies {
		rep.Partitions[s] = results[i]
		if err := partition.Validate(results[i], vertices); err != nil {
			rep.Invalid[s] = err
		}
	}

	base := rep.Partitions[BFS]
	for _, s := range Strategies()[1:] {
		if !partition.Equivalent(base, rep.Partitions[s]) {
			rep.Disagree = append(rep.Disagree, s)
		}
	}
	rep.OrderMismatch = !slices.EqualFunc(rep.Partitions[DFS], rep.Partitions[DFSRecursive],
		func(a, b partition.Component[V]) bool { return slices.Equal(a, b) })

	a.logger().V(2).Info("verify", "ok", rep.OK(), "components", rep.Components())

	return rep, nil
}
