package connectivity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvconn/bfs"
	"github.com/katalvlaran/lvconn/core"
	"github.com/katalvlaran/lvconn/dfs"
	"github.com/katalvlaran/lvconn/partition"
	"github.com/katalvlaran/lvconn/unionfind"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("connectivity: graph is nil")

// Analyzer computes connected components with a chosen Strategy.
// The zero value runs BFS without observer or logging.
type Analyzer[V comparable] struct {
	Strategy Strategy
	Observer Observer[V]
	Logger   logr.Logger
}

// Components partitions g into connected components.
// Errors are limited to a nil graph, an unknown strategy, and ctx cancellation.
func (a *Analyzer[V]) Components(ctx context.Context, g *core.Graph[V]) (partition.Partition[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	strategy := a.Strategy
	if strategy == "" {
		strategy = BFS
	}
	log := a.logger().WithValues("strategy", strategy)
	tr := &tracer[V]{obs: a.Observer, log: log, comp: -1}

	begin := time.Now()
	var (
		p   partition.Partition[V]
		err error
	)
	switch strategy {
	case BFS:
		p, err = runBFS(ctx, g, tr)
	case DFS, DFSRecursive:
		p, err = runDFS(ctx, g, tr, strategy == DFSRecursive)
	case UnionFind:
		p, err = runUnionFind(ctx, g, tr)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
	if err != nil {
		log.V(1).Info("components aborted", "err", err.Error())
		return nil, err
	}
	log.V(2).Info("components computed",
		"vertices", g.Size(), "edges", g.EdgeCount(), "components", p.Len(), "elapsed", time.Since(begin))

	return p, nil
}

func (a *Analyzer[V]) logger() logr.Logger {
	if a.Logger.GetSink() == nil {
		return logr.Discard()
	}

	return a.Logger
}

func runBFS[V comparable](ctx context.Context, g *core.Graph[V], tr *tracer[V]) (partition.Partition[V], error) {
	opts := []bfs.Option[V]{
		bfs.WithContext[V](ctx),
		bfs.WithOnComponent(tr.done),
	}
	if tr.active() {
		opts = append(opts,
			bfs.WithOnEnqueue(func(v V, depth int) {
				if depth == 0 {
					tr.start(v)
				}
				tr.frontier = append(tr.frontier, v)
				tr.emit(Discover, v)
			}),
			bfs.WithOnDequeue(func(v V, _ int) {
				tr.frontier = tr.frontier[1:]
				tr.emit(Expand, v)
			}),
		)
	}

	return bfs.Components(g, opts...)
}

func runDFS[V comparable](ctx context.Context, g *core.Graph[V], tr *tracer[V], recursive bool) (partition.Partition[V], error) {
	opts := []dfs.Option[V]{
		dfs.WithContext[V](ctx),
		dfs.WithOnComponent(tr.done),
	}
	if recursive {
		opts = append(opts, dfs.WithRecursion[V]())
	}
	if tr.active() {
		opts = append(opts,
			dfs.WithOnVisit(func(v V, depth int) error {
				if depth == 0 {
					tr.start(v)
				}
				tr.frontier = append(tr.frontier, v)
				tr.emit(Discover, v)

				return nil
			}),
			dfs.WithOnExit(func(v V) error {
				tr.frontier = tr.frontier[:len(tr.frontier)-1]
				tr.emit(Finish, v)

				return nil
			}),
		)
	}

	return dfs.Components(g, opts...)
}

// runUnionFind reports merges as they happen and replays the grouping
// as start, discover and done steps once the forest is complete.
func runUnionFind[V comparable](ctx context.Context, g *core.Graph[V], tr *tracer[V]) (partition.Partition[V], error) {
	opts := []unionfind.Option[V]{unionfind.WithContext[V](ctx)}
	if tr.active() {
		opts = append(opts, unionfind.WithOnUnion(tr.merge))
	}

	p, err := unionfind.Components(g, opts...)
	if err != nil {
		return nil, err
	}
	for i, c := range p {
		if tr.active() {
			tr.start(c[0])
			for _, v := range c {
				tr.emit(Discover, v)
			}
		}
		tr.done(i, c)
	}

	return p, nil
}

// tracer turns walker hooks into Steps and log lines.
type tracer[V comparable] struct {
	obs      Observer[V]
	log      logr.Logger
	comp     int
	frontier []V
}

// active reports whether per-step hooks are worth installing.
func (t *tracer[V]) active() bool {
	return t.obs != nil || t.log.V(4).Enabled()
}

func (t *tracer[V]) start(seed V) {
	t.comp++
	t.frontier = t.frontier[:0]
	t.emit(ComponentStart, seed)
}

func (t *tracer[V]) emit(kind StepKind, v V) {
	t.log.V(4).Info("step", "kind", kind.String(), "vertex", v, "component", t.comp, "frontier", len(t.frontier))
	if t.obs == nil {
		return
	}
	var frontier []V
	if len(t.frontier) > 0 {
		frontier = make([]V, len(t.frontier))
		copy(frontier, t.frontier)
	}
	t.obs(Step[V]{Kind: kind, Vertex: v, Component: t.comp, Frontier: frontier})
}

func (t *tracer[V]) merge(u, v V, merged bool) {
	t.log.V(4).Info("step", "kind", Merge.String(), "vertex", u, "other", v, "merged", merged)
	if t.obs != nil {
		t.obs(Step[V]{Kind: Merge, Vertex: u, Other: v, Component: -1, Merged: merged})
	}
}

func (t *tracer[V]) done(index int, members []V) {
	t.log.V(2).Info("component", "index", index, "size", len(members), "seed", members[0])
	if t.obs != nil {
		t.obs(Step[V]{Kind: ComponentDone, Component: index})
	}
}
