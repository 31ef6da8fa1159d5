// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edges() walks vertices in insertion order and each list in edge order,
//     reporting every undirected edge exactly once.

package core

import "fmt"

// AddEdge inserts the undirected edge u–v with weight w, adding u and v first if needed.
// If the edge already exists its weight is overwritten in place on both sides,
// so no duplicate adjacency entry is ever created.
//
// Implementation:
//   - Stage 1: Reject w < 0 before touching the graph.
//   - Stage 2: AddVertex(u), AddVertex(v).
//   - Stage 3: Upsert (v,w) into adj[u]; unless u == v, upsert (u,w) into adj[v].
//
// Errors:
//   - ErrNegativeWeight if w < 0 (the graph is left unchanged).
//
// Complexity:
//   - Time O(deg(u) + deg(v)) for the duplicate scan, Space O(1) amortized.
func (g *Graph[V]) AddEdge(u, v V, w int64) error {
	if w < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeWeight, w)
	}
	g.AddVertex(u)
	g.AddVertex(v)

	if !g.upsert(u, v, w) {
		g.edges++
	}
	if u != v {
		g.upsert(v, u, w)
	}

	return nil
}

// upsert sets the weight of the from→to entry, appending it if missing.
// It reports whether the entry already existed.
func (g *Graph[V]) upsert(from, to V, w int64) bool {
	list := g.adj[from]
	for i := range list {
		if list[i].Vertex == to {
			list[i].Weight = w
			return true
		}
	}
	g.adj[from] = append(list, Neighbor[V]{Vertex: to, Weight: w})

	return false
}

// RemoveEdge deletes the undirected edge u–v.
// It succeeds if at least one direction was actually removed.
//
// Errors:
//   - *ReferenceNotFoundError (ErrVertexNotFound) if u or v is absent.
//   - *ReferenceNotFoundError (ErrEdgeNotFound) if both exist but are not adjacent.
//
// Complexity: O(deg(u) + deg(v)).
func (g *Graph[V]) RemoveEdge(u, v V) error {
	if !g.HasVertex(u) {
		return g.vertexNotFound("RemoveEdge", u)
	}
	if !g.HasVertex(v) {
		return g.vertexNotFound("RemoveEdge", v)
	}

	before := len(g.adj[u]) + len(g.adj[v])
	g.adj[u] = without(g.adj[u], v)
	if u != v {
		g.adj[v] = without(g.adj[v], u)
	}
	if len(g.adj[u])+len(g.adj[v]) == before {
		return g.edgeNotFound("RemoveEdge", u, v)
	}
	g.edges--

	return nil
}

// HasEdge reports whether u and v are adjacent.
//
// Complexity: O(deg(u)).
func (g *Graph[V]) HasEdge(u, v V) bool {
	for _, n := range g.adj[u] {
		if n.Vertex == v {
			return true
		}
	}

	return false
}

// EdgeWeight returns the weight of the edge u–v by scanning u's adjacency list.
//
// Errors:
//   - *ReferenceNotFoundError (ErrVertexNotFound) if u is absent.
//   - *ReferenceNotFoundError (ErrEdgeNotFound) if v is not adjacent to u.
//
// Complexity: O(deg(u)).
func (g *Graph[V]) EdgeWeight(u, v V) (int64, error) {
	nbrs, ok := g.adj[u]
	if !ok {
		return 0, g.vertexNotFound("EdgeWeight", u)
	}
	for _, n := range nbrs {
		if n.Vertex == v {
			return n.Weight, nil
		}
	}

	return 0, g.edgeNotFound("EdgeWeight", u, v)
}

// EdgeCount returns the number of undirected edges (a self-loop counts once).
//
// Complexity: O(1).
func (g *Graph[V]) EdgeCount() int { return g.edges }

// Edges returns every undirected edge once. An edge is reported when its
// earlier-inserted endpoint is walked, so From precedes To in Vertices() order.
//
// Complexity: O(V + E).
func (g *Graph[V]) Edges() []Edge[V] {
	out := make([]Edge[V], 0, g.edges)
	seen := make(map[V]struct{}, len(g.order))
	for _, u := range g.order {
		for _, n := range g.adj[u] {
			if _, done := seen[n.Vertex]; done {
				continue // reported from n.Vertex already
			}
			out = append(out, Edge[V]{From: u, To: n.Vertex, Weight: n.Weight})
		}
		seen[u] = struct{}{}
	}

	return out
}
