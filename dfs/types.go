// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbor filtering,
// full-graph (forest) traversal, and basic diagnostics.
package dfs

import (
	"context"
	"errors"

	"k8s.io/apimachinery/pkg/util/sets"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or Components.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrOptionViolation indicates an option that the called function cannot honor.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
type Option[V comparable] func(*Options[V])

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options[V comparable] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v V, depth int) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order), before appending to Result.Order.
	// Returning an error aborts traversal and leaves Order empty.
	OnExit func(v V) error

	// OnComponent, if non-nil, is invoked by Components once per finished tree.
	OnComponent func(index int, members []V)

	// MaxDepth, if non-negative, limits descent to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before descending.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(v V) bool

	// FullTraversal, if true, runs DFS from every unvisited vertex in the graph,
	// covering disconnected components (forest traversal). Default is false.
	FullTraversal bool

	// Recursive selects the call-stack walker instead of the explicit stack.
	// Both produce identical orders; the explicit stack is the default.
	Recursive bool

	// SkippedNeighbors tracks how many neighbor vertices were skipped
	// due to FilterNeighbor returning false. Useful for diagnostics.
	SkippedNeighbors int
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Single-source, explicit-stack traversal
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext[V comparable](ctx context.Context) Option[V] {
	return func(o *Options[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit[V comparable](fn func(v V, depth int) error) Option[V] {
	return func(o *Options[V]) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit[V comparable](fn func(v V) error) Option[V] {
	return func(o *Options[V]) {
		o.OnExit = fn
	}
}

// WithOnComponent returns an Option that installs fn as the per-component hook
// of Components. members must not be retained past the call.
func WithOnComponent[V comparable](fn func(index int, members []V)) Option[V] {
	return func(o *Options[V]) {
		o.OnComponent = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited.
func WithMaxDepth[V comparable](limit int) Option[V] {
	return func(o *Options[V]) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbors.
// If fn(v) == false, that neighbor is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor[V comparable](fn func(v V) bool) Option[V] {
	return func(o *Options[V]) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal.
// When set, DFS restarts from each unvisited vertex and ignores its start argument.
func WithFullTraversal[V comparable]() Option[V] {
	return func(o *Options[V]) {
		o.FullTraversal = true
	}
}

// WithRecursion returns an Option that walks on the goroutine stack.
// Depth grows with the longest simple path, so prefer the default
// explicit stack for long chains.
func WithRecursion[V comparable]() Option[V] {
	return func(o *Options[V]) {
		o.Recursive = true
	}
}

// Result captures the outcome of a depth-first traversal.
type Result[V comparable] struct {
	// PreOrder records vertices in the sequence they were discovered.
	PreOrder []V

	// Order records vertices in the sequence they finished (post-order).
	Order []V

	// Depth maps each vertex to its distance (#edges) from its tree root.
	Depth map[V]int

	// Parent maps each vertex to the vertex from which it was first discovered.
	// Tree roots do not appear in this map.
	Parent map[V]V

	// Visited holds the vertices reached during the traversal.
	Visited sets.Set[V]

	// SkippedNeighbors reports how many neighbors were skipped
	// due to FilterNeighbor returning false, aggregated across all trees.
	SkippedNeighbors int
}
