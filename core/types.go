// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Neighbor and Edge types, construction options, NewGraph.
// Policy:
//   - The Graph is undirected and weighted; multi-edges are collapsed (last write wins).
//   - No internal locking: a Graph is owned by one goroutine at a time.

package core

import "github.com/go-logr/logr"

// Neighbor is one entry of an adjacency list: the adjacent vertex and the
// weight of the undirected edge leading to it.
type Neighbor[V comparable] struct {
	// Vertex is the adjacent vertex label.
	Vertex V

	// Weight is the non-negative edge weight.
	Weight int64
}

// Edge is an undirected weighted edge reported by Graph.Edges.
// From is the endpoint that was inserted into the graph first.
type Edge[V comparable] struct {
	From   V
	To     V
	Weight int64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*graphConfig)

type graphConfig struct {
	log      logr.Logger
	capacity int
}

// WithLogger routes not-found diagnostics to l (verbosity 1).
// By default diagnostics are discarded.
func WithLogger(l logr.Logger) GraphOption {
	return func(c *graphConfig) {
		if l.GetSink() != nil {
			c.log = l
		}
	}
}

// WithCapacity pre-sizes the vertex catalog for n vertices.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(c *graphConfig) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// Graph is a weighted, undirected, vertex-labeled adjacency-list graph.
//
// Invariants maintained by every mutating method:
//   - Symmetry: (u,v,w) in adj[u] iff (v,u,w) in adj[v].
//   - At most one entry per distinct neighbor; re-adding overwrites the weight in place.
//   - A self-loop (u,u) is stored as exactly one entry in adj[u].
//   - order holds every vertex exactly once, in insertion order.
//
// Graph performs no synchronization. Callers sharing a Graph across goroutines
// must guard it themselves.
type Graph[V comparable] struct {
	log logr.Logger

	// order lists vertices in insertion order; Vertices() returns a copy of it.
	order []V

	// adj[v] is v's adjacency list in edge insertion order.
	adj map[V][]Neighbor[V]

	// edges counts undirected edges (a self-loop counts once).
	edges int
}

// NewGraph returns an empty Graph.
//
// Complexity: O(1) (O(n) with WithCapacity(n)).
func NewGraph[V comparable](opts ...GraphOption) *Graph[V] {
	cfg := graphConfig{log: logr.Discard()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[V]{
		log:   cfg.log,
		order: make([]V, 0, cfg.capacity),
		adj:   make(map[V][]Neighbor[V], cfg.capacity),
	}
}
