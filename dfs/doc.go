// Package dfs implements depth-first traversal and depth-first connected
// components on a core.Graph.
//
// What:
//
//   - DFS explores as far as possible along each branch before backtracking.
//     Supports:
//   - Pre-order (OnVisit) and post-order (OnExit) hooks
//   - Cancellation via context.Context
//   - Depth limiting and neighbor filtering
//   - Forest traversal via WithFullTraversal
//   - Components returns one partition.Component per DFS tree, listing the
//     tree's vertices in discovery (pre-) order.
//
// Walkers:
//
//	The default walker keeps an explicit stack of (vertex, neighbor cursor)
//	frames, so a path of a million vertices costs a million small frames on
//	the heap rather than goroutine stack. WithRecursion selects the
//	call-stack walker. Both discover and finish vertices in the same order.
//
// Key Types:
//
//   - Option: functional options for DFS behavior
//   - Options: holds Context, hooks, MaxDepth, FilterNeighbor
//   - Result: collects pre-order, post-order, Depth and Parent maps, and the Visited set
//
// Complexity:
//
//   - DFS, Components: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex not in graph
//   - ErrOptionViolation      depth limit or filter passed to Components
//   - context.Canceled        walk canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
