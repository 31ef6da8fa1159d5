package bfs

import (
	"context"
	"fmt"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/katalvlaran/lvconn/core"
	"github.com/katalvlaran/lvconn/partition"
)

// queueItem pairs a vertex with its BFS depth and its parent.
type queueItem[V comparable] struct {
	id        V
	depth     int
	parent    V
	hasParent bool
}

// walker encapsulates mutable BFS state. One walker may run several
// trees in sequence (Components); visited is shared across them.
type walker[V comparable] struct {
	graph   *core.Graph[V]
	opts    Options[V]
	ctx     context.Context
	queue   []queueItem[V]
	visited sets.Set[V]
	res     *Result[V]
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// the context error on cancellation, or any user-supplied hook error.
// Edge weights are ignored.
func BFS[V comparable](g *core.Graph[V], start V, opts ...Option[V]) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	// Validate start vertex
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	w := newWalker(g, o)
	w.res.Start = start
	// Seed queue with start vertex (no parent)
	w.enqueue(queueItem[V]{id: start})
	// Main loop
	return w.res, w.loop()
}

// Components partitions every vertex of g into connected components.
//
// Vertices are scanned in g.Vertices() order; each vertex not yet visited
// seeds a new component which is explored breadth-first, so each component
// lists its vertices layer by layer from its seed. An empty graph yields an
// empty partition. Components recomputes from scratch on every call.
//
// WithMaxDepth and WithFilterNeighbor are rejected with ErrOptionViolation:
// both would leave reachable vertices out of their component.
func Components[V comparable](g *core.Graph[V], opts ...Option[V]) (partition.Partition[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if o.MaxDepth > 0 || o.filtered {
		return nil, fmt.Errorf("%w: depth limits and neighbor filters break component completeness", ErrOptionViolation)
	}

	w := newWalker(g, o)
	out := make(partition.Partition[V], 0)
	for _, v := range g.Vertices() {
		if w.visited.Has(v) {
			continue
		}
		from := len(w.res.Order)
		w.enqueue(queueItem[V]{id: v})
		if err = w.loop(); err != nil {
			return out, err
		}

		comp := make(partition.Component[V], len(w.res.Order)-from)
		copy(comp, w.res.Order[from:])
		out = append(out, comp)
		w.opts.OnComponent(len(out)-1, comp)
	}

	return out, nil
}

// buildOptions applies opts over DefaultOptions and surfaces the first violation.
func buildOptions[V comparable](opts []Option[V]) (Options[V], error) {
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// newWalker prepares a walker sized for g.
func newWalker[V comparable](g *core.Graph[V], o Options[V]) *walker[V] {
	n := g.Size()

	return &walker[V]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem[V], 0, n),
		visited: make(sets.Set[V], n),
		res: &Result[V]{
			Order:  make([]V, 0, n),
			Depth:  make(map[V]int, n),
			Parent: make(map[V]V, n),
		},
	}
}

// enqueue marks the item visited at its depth, calls OnEnqueue, records its
// parent, and adds it to the queue.
func (w *walker[V]) enqueue(item queueItem[V]) {
	w.visited.Insert(item.id)
	w.res.Depth[item.id] = item.depth
	if item.hasParent {
		w.res.Parent[item.id] = item.parent
	}
	w.opts.OnEnqueue(item.id, item.depth)
	w.queue = append(w.queue, item)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[V]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[V]) dequeue() queueItem[V] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[V]) visit(item queueItem[V]) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors retrieves neighbors, applies filtering and MaxDepth,
// and enqueues each unseen neighbor. Returns ErrNeighbors on lookup failure.
func (w *walker[V]) enqueueNeighbors(item queueItem[V]) error {
	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %v: %v", ErrNeighbors, item.id, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.id, nbr.Vertex) {
			continue
		}
		// first time seen?
		if !w.visited.Has(nbr.Vertex) {
			w.enqueue(queueItem[V]{id: nbr.Vertex, depth: nextDepth, parent: item.id, hasParent: true})
		}
	}

	return nil
}
