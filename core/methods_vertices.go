// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns labels in insertion order; removing a vertex keeps
//     the relative order of the others.

package core

// AddVertex inserts v with an empty adjacency list if it is absent.
// Adding an existing vertex is a no-op, so the call cannot fail.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[V]) AddVertex(v V) {
	if _, exists := g.adj[v]; exists {
		return
	}
	g.adj[v] = []Neighbor[V]{}
	g.order = append(g.order, v)
}

// HasVertex reports whether v is in the graph.
//
// Complexity: O(1).
func (g *Graph[V]) HasVertex(v V) bool {
	_, ok := g.adj[v]

	return ok
}

// RemoveVertex deletes v together with every adjacency entry that references it.
//
// Implementation:
//   - Stage 1: Verify presence; emit a diagnostic and return ReferenceNotFound otherwise.
//   - Stage 2: By symmetry every vertex referencing v is listed in adj[v]; strip v from each.
//   - Stage 3: Delete v's own list and drop it from the insertion order.
//
// Errors:
//   - *ReferenceNotFoundError (ErrVertexNotFound) if v is absent.
//
// Complexity:
//   - Time O(V + Σ deg(n)) over n ∈ N(v), Space O(1).
func (g *Graph[V]) RemoveVertex(v V) error {
	nbrs, ok := g.adj[v]
	if !ok {
		return g.vertexNotFound("RemoveVertex", v)
	}

	for _, n := range nbrs {
		if n.Vertex == v {
			continue // self-loop lives in adj[v] only
		}
		g.adj[n.Vertex] = without(g.adj[n.Vertex], v)
	}
	g.edges -= len(nbrs)
	delete(g.adj, v)

	for i, x := range g.order {
		if x == v {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}

	return nil
}

// Vertices returns every vertex label in insertion order.
// The slice is a fresh copy; mutating it does not affect the graph.
//
// Complexity: O(V).
func (g *Graph[V]) Vertices() []V {
	out := make([]V, len(g.order))
	copy(out, g.order)

	return out
}

// Neighbors returns a snapshot of v's adjacency list in edge insertion order.
// The returned slice is owned by the caller.
//
// Errors:
//   - *ReferenceNotFoundError (ErrVertexNotFound) if v is absent.
//
// Complexity: O(deg(v)).
func (g *Graph[V]) Neighbors(v V) ([]Neighbor[V], error) {
	nbrs, ok := g.adj[v]
	if !ok {
		return nil, g.vertexNotFound("Neighbors", v)
	}
	out := make([]Neighbor[V], len(nbrs))
	copy(out, nbrs)

	return out, nil
}

// Degree returns the number of adjacency entries of v (a self-loop counts once).
func (g *Graph[V]) Degree(v V) (int, error) {
	nbrs, ok := g.adj[v]
	if !ok {
		return 0, g.vertexNotFound("Degree", v)
	}

	return len(nbrs), nil
}

// Size returns the number of vertices.
func (g *Graph[V]) Size() int { return len(g.order) }

// IsEmpty reports whether the graph has no vertices.
func (g *Graph[V]) IsEmpty() bool { return len(g.order) == 0 }

// without returns list with the entry for v removed, reusing list's backing array.
func without[V comparable](list []Neighbor[V], v V) []Neighbor[V] {
	for i, n := range list {
		if n.Vertex == v {
			return append(list[:i], list[i+1:]...)
		}
	}

	return list
}
