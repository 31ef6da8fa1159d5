// Package lvconn partitions undirected, weighted graphs into connected
// components and lets you compare how different traversals arrive there.
//
// 🚀 What is lvconn?
//
//	An in-memory toolkit that brings together:
//		• Core primitives: a generic adjacency-list Graph[V] with int64 weights
//		• Traversals: BFS (FIFO) and DFS (explicit stack or recursive)
//		• Union-find with path compression and union by size
//		• One Analyzer over all strategies, with step-by-step observation
//		• Loaders: YAML/JSON, HCL, Postgres edge tables, text grids
//		• Renderers: text, Mermaid, JSON, YAML
//
// ✨ Guarantees
//
//   - Every strategy returns a partition: non-empty, disjoint components whose
//     union is exactly the vertex set.
//   - Deterministic output: components follow vertex insertion order, members
//     follow the strategy's visit order.
//   - Every call recomputes from scratch, so mutations between calls are seen.
//
// Packages:
//
//	core/         - Graph[V], Neighbor, Edge, ReferenceNotFoundError
//	partition/    - Partition/Component types, Validate, Equivalent
//	bfs/          - breadth-first search and BFS components
//	dfs/          - depth-first search and DFS components
//	unionfind/    - DisjointSet and union-find components
//	connectivity/ - Analyzer, Strategy, Observer steps, Verify
//	builder/      - deterministic graph fixtures (paths, cycles, grids, G(n,p))
//	gridgraph/    - islands on 2D integer grids
//	source/       - YAML/JSON, HCL, Postgres and grid loaders
//	render/       - text, Mermaid, JSON and YAML output
//	cmd/lvconn/   - the command-line front end
//
// Quick ASCII example:
//
//	    A───B     E
//	    │   │     │
//	    C───D     F
//
//	has two components: {A, B, C, D} and {E, F}.
//
//	go install github.com/katalvlaran/lvconn/cmd/lvconn@latest
package lvconn
