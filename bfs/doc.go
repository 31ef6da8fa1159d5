// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, visit order,
// and the connected components of the whole graph.
//
// What
//
//   - BFS explores vertices in non-decreasing distance (edge count) from a start vertex
//     and returns a Result holding Order, Depth and Parent.
//   - Components scans every vertex in insertion order; each unvisited vertex seeds a
//     fresh BFS tree, and each tree becomes one partition.Component.
//   - Functional hooks at four stages:
//   - OnEnqueue   (a vertex is discovered and marked visited)
//   - OnDequeue   (immediately before visiting)
//   - OnVisit     (when visiting; may abort with an error)
//   - OnComponent (Components only, after a tree is exhausted)
//   - Single-source walks may be pruned with WithFilterNeighbor or WithMaxDepth.
//
// Determinism
//
//	core.Graph.Neighbors returns neighbors in the order their edges were first
//	added, and vertices iterate in insertion order, so both the visit sequence
//	and the component layout are reproducible for a given build sequence.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue, Depth map, Parent map and visited set
//
// Usage
//
//	res, err := bfs.BFS(g, "start")
//
//	comps, err := bfs.Components(g,
//	    bfs.WithContext[string](ctx),
//	    bfs.WithOnComponent(func(i int, members []string) { /* ... */ }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      for a negative MaxDepth, or a depth limit or filter passed to Components.
//   - ErrNeighbors            if core.Graph.Neighbors fails for a queued vertex.
//   - ctx.Err()               on cancellation.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
