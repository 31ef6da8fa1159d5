// Package core provides the weighted, undirected, vertex-labeled graph used by
// every connectivity algorithm in this module.
//
// The Graph G = (V,E) is an adjacency list keyed by a comparable label type:
//
//   - Generic vertex labels: Graph[string], Graph[int], Graph[MyID] …
//   - Undirected edges with int64 weights, mirrored in both adjacency lists
//   - No multigraphs: AddEdge on an existing pair overwrites the weight in place
//   - Self-loops stored as a single u→u entry
//   - Isolated vertices via AddVertex
//   - Deterministic iteration: Vertices() in insertion order, Neighbors() in edge order
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v V)                          // O(1), idempotent
//	HasVertex(v V) bool                     // O(1)
//	RemoveVertex(v V) error                 // O(V + Σdeg(N(v)))
//
//	// Edge lifecycle
//	AddEdge(u, v V, w int64) error          // O(deg(u)+deg(v)); ErrNegativeWeight only
//	RemoveEdge(u, v V) error                // O(deg(u)+deg(v))
//	HasEdge(u, v V) bool                    // O(deg(u))
//	EdgeWeight(u, v V) (int64, error)       // O(deg(u))
//
//	// Query
//	Vertices() []V                          // O(V), insertion order, copy
//	Neighbors(v V) ([]Neighbor[V], error)   // O(deg(v)), snapshot copy
//	Edges() []Edge[V]                       // O(V+E), each undirected edge once
//	Degree(v V) (int, error)                // O(1)
//	Size() int / IsEmpty() bool / EdgeCount() int
//
//	// Maintenance
//	Clear()                                 // O(1)
//	Clone() *Graph[V]                       // O(V+E)
//
// Errors:
//
//	Every failed lookup returns a *ReferenceNotFoundError. It matches
//	ErrReferenceNotFound and, by kind, ErrVertexNotFound or ErrEdgeNotFound:
//
//		if err := g.RemoveEdge("A", "Z"); errors.Is(err, core.ErrVertexNotFound) { … }
//
//	The same condition is reported on the diagnostics logger (WithLogger, V(1)).
//	A not-found result never leaves the graph in a partial state.
//
// Concurrency:
//
//	Graph has no internal locking. Guard it externally if it is shared.
package core
