package dfs

import (
	"fmt"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/katalvlaran/lvconn/core"
	"github.com/katalvlaran/lvconn/partition"
)

// frame is one explicit-stack entry: a discovered vertex and the cursor
// into its neighbor snapshot.
type frame[V comparable] struct {
	v     V
	depth int
	nbrs  []core.Neighbor[V]
	next  int
}

// walker encapsulates state during DFS.
type walker[V comparable] struct {
	graph *core.Graph[V]
	opts  Options[V]
	res   *Result[V]
	stack []frame[V]
}

// DFS performs depth-first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components; otherwise, it starts only from start.
// Returns the Result or an error if aborted by context or hook.
func DFS[V comparable](g *core.Graph[V], start V, opts ...Option[V]) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := buildOptions(opts)
	if !o.FullTraversal && !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	w := newWalker(g, o)
	roots := []V{start}
	if o.FullTraversal {
		roots = g.Vertices()
	}
	for _, v := range roots {
		if w.res.Visited.Has(v) {
			continue
		}
		if err := w.run(v); err != nil {
			return w.res, err
		}
	}
	w.res.SkippedNeighbors = w.opts.SkippedNeighbors

	return w.res, nil
}

// Components partitions every vertex of g into connected components.
//
// Vertices are scanned in g.Vertices() order; each unvisited vertex roots a
// new DFS tree whose pre-order becomes one component. The explicit-stack and
// recursive walkers yield the same partition with the same orders. An empty
// graph yields an empty partition.
//
// WithMaxDepth and WithFilterNeighbor are rejected with ErrOptionViolation.
func Components[V comparable](g *core.Graph[V], opts ...Option[V]) (partition.Partition[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := buildOptions(opts)
	if o.MaxDepth >= 0 || o.FilterNeighbor != nil {
		return nil, fmt.Errorf("%w: depth limits and neighbor filters break component completeness", ErrOptionViolation)
	}

	w := newWalker(g, o)
	out := make(partition.Partition[V], 0)
	for _, v := range g.Vertices() {
		if w.res.Visited.Has(v) {
			continue
		}
		from := len(w.res.PreOrder)
		if err := w.run(v); err != nil {
			return out, err
		}

		comp := make(partition.Component[V], len(w.res.PreOrder)-from)
		copy(comp, w.res.PreOrder[from:])
		out = append(out, comp)
		if o.OnComponent != nil {
			o.OnComponent(len(out)-1, comp)
		}
	}

	return out, nil
}

func buildOptions[V comparable](opts []Option[V]) Options[V] {
	o := DefaultOptions[V]()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

func newWalker[V comparable](g *core.Graph[V], o Options[V]) *walker[V] {
	n := g.Size()

	return &walker[V]{
		graph: g,
		opts:  o,
		res: &Result[V]{
			PreOrder: make([]V, 0, n),
			Order:    make([]V, 0, n),
			Depth:    make(map[V]int, n),
			Parent:   make(map[V]V, n),
			Visited:  make(sets.Set[V], n),
		},
	}
}

// run walks one tree rooted at root with the configured walker.
func (w *walker[V]) run(root V) error {
	if w.opts.Recursive {
		return w.traverse(root, 0)
	}

	return w.iterate(root)
}

// traverse visits v at the given depth, recursing to neighbors.
func (w *walker[V]) traverse(v V, depth int) error {
	nbrs, err := w.enter(v, depth)
	if err != nil {
		return err
	}
	for _, nb := range nbrs {
		if !w.descend(nb.Vertex, depth) {
			continue
		}
		w.res.Parent[nb.Vertex] = v
		if err = w.traverse(nb.Vertex, depth+1); err != nil {
			return err
		}
	}

	return w.exit(v)
}

// iterate is traverse on an explicit stack. Each frame keeps a cursor into
// its neighbor snapshot, so vertices are discovered and finished in exactly
// the order the recursive walker produces.
func (w *walker[V]) iterate(root V) error {
	nbrs, err := w.enter(root, 0)
	if err != nil {
		return err
	}
	w.stack = append(w.stack[:0], frame[V]{v: root, nbrs: nbrs})

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if top.next < len(top.nbrs) {
			nxt := top.nbrs[top.next].Vertex
			top.next++
			if !w.descend(nxt, top.depth) {
				continue
			}
			parent, depth := top.v, top.depth+1
			w.res.Parent[nxt] = parent
			if nbrs, err = w.enter(nxt, depth); err != nil {
				return err
			}
			w.stack = append(w.stack, frame[V]{v: nxt, depth: depth, nbrs: nbrs})
			continue
		}

		done := top.v
		w.stack = w.stack[:len(w.stack)-1]
		if err = w.exit(done); err != nil {
			return err
		}
	}

	return nil
}

// enter discovers v: it honors cancellation, marks v visited, runs OnVisit,
// and returns the neighbor snapshot to explore.
func (w *walker[V]) enter(v V, depth int) ([]core.Neighbor[V], error) {
	select {
	case <-w.opts.Ctx.Done():
		return nil, w.opts.Ctx.Err()
	default:
	}

	w.res.Visited.Insert(v)
	w.res.Depth[v] = depth
	w.res.PreOrder = append(w.res.PreOrder, v)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v, depth); err != nil {
			// abort and clear post-order
			w.res.Order = nil

			return nil, fmt.Errorf("dfs: OnVisit hook for %v: %w", v, err)
		}
	}

	nbrs, err := w.graph.Neighbors(v)
	if err != nil {
		w.res.Order = nil

		return nil, fmt.Errorf("dfs: Neighbors(%v): %w", v, err)
	}

	return nbrs, nil
}

// descend reports whether the walk should step from a vertex at depth into nb.
func (w *walker[V]) descend(nb V, depth int) bool {
	if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nb) {
		w.opts.SkippedNeighbors++
		return false
	}
	if w.res.Visited.Has(nb) {
		return false
	}

	return w.opts.MaxDepth < 0 || depth+1 <= w.opts.MaxDepth
}

// exit runs OnExit and records v as finished.
func (w *walker[V]) exit(v V) error {
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %v: %w", v, err)
		}
	}
	w.res.Order = append(w.res.Order, v)

	return nil
}
