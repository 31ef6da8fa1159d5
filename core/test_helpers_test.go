// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for lvconn/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep invariant checks in one place so every mutating test can reuse them.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvconn/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
	VertexZ = "Z"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight1 = 1
	Weight2 = 2
	Weight3 = 3
	Weight4 = 4
	Weight9 = 9
)

// weightedEdge is one AddEdge call in a fixture.
type weightedEdge struct {
	u, v string
	w    int64
}

// scenarioSquare is the first reference scenario (one component {A,B,C,D}).
var scenarioSquare = []weightedEdge{
	{"A", "B", 4}, {"B", "C", 3}, {"B", "D", 2},
	{"D", "A", 1}, {"A", "C", 2}, {"B", "D", 2},
}

// buildGraph RETURNS a string graph populated with edges, failing t on any AddEdge error.
func buildGraph(t testing.TB, edges []weightedEdge) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string]()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.u, e.v, e.w))
	}

	return g
}

// requireSymmetric asserts the undirected symmetry and no-duplicate invariants:
// every (u,v,w) has a mirror (v,u,w), and no list names the same neighbor twice.
func requireSymmetric(t *testing.T, g *core.Graph[string]) {
	t.Helper()
	for _, u := range g.Vertices() {
		nbrs, err := g.Neighbors(u)
		require.NoError(t, err)
		seen := make(map[string]bool, len(nbrs))
		for _, n := range nbrs {
			require.Falsef(t, seen[n.Vertex], "duplicate entry %s→%s", u, n.Vertex)
			seen[n.Vertex] = true

			back, err := g.EdgeWeight(n.Vertex, u)
			require.NoErrorf(t, err, "missing mirror %s→%s", n.Vertex, u)
			require.Equalf(t, n.Weight, back, "asymmetric weight on %s–%s", u, n.Vertex)
		}
	}
}
