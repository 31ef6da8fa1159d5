// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.

package core

// Clone returns a deep copy of the graph: vertex order, adjacency lists and the
// diagnostics logger. Mutating the clone never affects g.
//
// Complexity: O(V + E).
func (g *Graph[V]) Clone() *Graph[V] {
	clone := &Graph[V]{
		log:   g.log,
		order: make([]V, len(g.order)),
		adj:   make(map[V][]Neighbor[V], len(g.adj)),
		edges: g.edges,
	}
	copy(clone.order, g.order)
	for v, nbrs := range g.adj {
		list := make([]Neighbor[V], len(nbrs))
		copy(list, nbrs)
		clone.adj[v] = list
	}

	return clone
}

// Clear drops every vertex and edge. The logger is preserved.
//
// Complexity: O(1) for map reallocation; no iteration over existing entries.
func (g *Graph[V]) Clear() {
	g.order = make([]V, 0)
	g.adj = make(map[V][]Neighbor[V])
	g.edges = 0
}
