package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvconn/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an empty graph keyed by string labels:
	g := core.NewGraph[string]()

	// 2) Add edges (auto-adds vertices A, B, C):
	_ = g.AddEdge("A", "B", 4)
	_ = g.AddEdge("B", "C", 3)
	_ = g.AddEdge("C", "A", 2)

	// 3) Re-adding a pair overwrites its weight instead of duplicating it:
	_ = g.AddEdge("A", "B", 7)
	w, _ := g.EdgeWeight("B", "A")

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edges:", g.EdgeCount(), "B–A weight:", w)

	// 4) Remove a vertex and its edges:
	_ = g.RemoveVertex("B")
	fmt.Println("After removing B:", g.Vertices(), "edge A–B?", g.HasEdge("A", "B"))

	// Output:
	// Vertices: [A B C]
	// Edges: 3 B–A weight: 7
	// After removing B: [A C] edge A–B? false
}

// ExampleReferenceNotFoundError shows how callers tell a no-op from a success.
func ExampleReferenceNotFoundError() {
	g := core.NewGraph[string]()
	g.AddVertex("A")

	err := g.RemoveEdge("A", "Q")
	fmt.Println(errors.Is(err, core.ErrReferenceNotFound), errors.Is(err, core.ErrVertexNotFound))
	fmt.Println(err)

	// Output:
	// true true
	// core: RemoveEdge: vertex Q not found
}
