package unionfind

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvconn/core"
	"github.com/katalvlaran/lvconn/partition"
)

// ErrGraphNil is returned if a nil graph pointer is passed to Components.
var ErrGraphNil = errors.New("unionfind: graph is nil")

// DisjointSet is a union-find forest keyed by label.
// The zero value is not usable; call New.
type DisjointSet[V comparable] struct {
	parent map[V]V
	size   map[V]int
	sets   int
}

// New returns a DisjointSet holding each of items as a singleton.
func New[V comparable](items ...V) *DisjointSet[V] {
	d := &DisjointSet[V]{
		parent: make(map[V]V, len(items)),
		size:   make(map[V]int, len(items)),
	}
	for _, v := range items {
		d.Add(v)
	}

	return d
}

// Add inserts v as a singleton. Existing members are left alone.
func (d *DisjointSet[V]) Add(v V) {
	if _, ok := d.parent[v]; ok {
		return
	}
	d.parent[v] = v
	d.size[v] = 1
	d.sets++
}

// Has reports whether v has been added.
func (d *DisjointSet[V]) Has(v V) bool {
	_, ok := d.parent[v]
	return ok
}

// Find returns the root of v's set, compressing the path on the way.
// Unknown labels are added as singletons first.
func (d *DisjointSet[V]) Find(v V) V {
	d.Add(v)
	root := v
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for v != root {
		next := d.parent[v]
		d.parent[v] = root
		v = next
	}

	return root
}

// Union merges the sets holding a and b, attaching the smaller tree under
// the larger. It reports whether the sets were separate.
func (d *DisjointSet[V]) Union(a, b V) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	if d.size[ra] < d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
	delete(d.size, rb)
	d.sets--

	return true
}

// Connected reports whether a and b are in the same set.
// Labels never added are connected only to themselves.
func (d *DisjointSet[V]) Connected(a, b V) bool {
	if !d.Has(a) || !d.Has(b) {
		return a == b
	}

	return d.Find(a) == d.Find(b)
}

// SetSize returns the number of members in v's set, or 0 if v is unknown.
func (d *DisjointSet[V]) SetSize(v V) int {
	if !d.Has(v) {
		return 0
	}

	return d.size[d.Find(v)]
}

// Count returns the number of disjoint sets.
func (d *DisjointSet[V]) Count() int { return d.sets }

// Len returns the number of members across all sets.
func (d *DisjointSet[V]) Len() int { return len(d.parent) }

// Option configures Components.
type Option[V comparable] func(*Options[V])

// Options holds the context and hook used by Components.
type Options[V comparable] struct {
	// Ctx is checked once per edge.
	Ctx context.Context

	// OnUnion, if non-nil, runs after each edge is processed with whether
	// it merged two sets.
	OnUnion func(u, v V, merged bool)
}

// WithContext sets a custom context for cancellation.
func WithContext[V comparable](ctx context.Context) Option[V] {
	return func(o *Options[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnUnion installs fn as the per-edge hook.
func WithOnUnion[V comparable](fn func(u, v V, merged bool)) Option[V] {
	return func(o *Options[V]) {
		o.OnUnion = fn
	}
}

// Components partitions the vertices of g by union-find over g.Edges().
// An empty graph yields an empty partition.
func Components[V comparable](g *core.Graph[V], opts ...Option[V]) (partition.Partition[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := Options[V]{Ctx: context.Background()}
	for _, fn := range opts {
		fn(&o)
	}

	vertices := g.Vertices()
	ds := New(vertices...)
	for _, e := range g.Edges() {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		merged := ds.Union(e.From, e.To)
		if o.OnUnion != nil {
			o.OnUnion(e.From, e.To, merged)
		}
	}

	return group(ds, vertices), nil
}

// group lays out the sets of ds in first-vertex order.
func group[V comparable](ds *DisjointSet[V], vertices []V) partition.Partition[V] {
	out := make(partition.Partition[V], 0, ds.Count())
	slot := make(map[V]int, ds.Count())
	for _, v := range vertices {
		root := ds.Find(v)
		i, ok := slot[root]
		if !ok {
			i = len(out)
			slot[root] = i
			out = append(out, make(partition.Component[V], 0, ds.SetSize(root)))
		}
		out[i] = append(out[i], v)
	}

	return out
}
