// Package connectivity selects and runs a connected-components strategy over
// a core.Graph and exposes the run as a stream of observable steps.
//
// An Analyzer picks one of BFS, DFS (explicit stack), DFS on the goroutine
// stack, or union-find. Every call recomputes from scratch, so mutations
// made between calls are always reflected.
//
// Observers receive a Step for each seed, discovery, queue pop, DFS finish,
// union-find merge and completed component, together with a copy of the
// current frontier. That is enough to animate a traversal without reaching
// into the graph or the walker.
//
// Verify runs every strategy on the same graph and reports whether the
// resulting partitions are valid and equivalent.
package connectivity
