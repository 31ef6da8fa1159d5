package dfs_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/katalvlaran/lvconn/core"
	"github.com/katalvlaran/lvconn/dfs"
	"github.com/katalvlaran/lvconn/partition"
)

// buildChain creates a path graph of length n: N0–N1–…–N(n-1).
func buildChain(n int) *core.Graph[string] {
	g := core.NewGraph[string](core.WithCapacity(n))
	g.AddVertex("N0")
	for i := 0; i < n-1; i++ {
		_ = g.AddEdge("N"+strconv.Itoa(i), "N"+strconv.Itoa(i+1), 1)
	}

	return g
}

// buildDiamond creates A–B, A–C, B–D, C–D, D–E, D–F.
func buildDiamond() *core.Graph[string] {
	g := core.NewGraph[string]()
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}, {"D", "F"}} {
		_ = g.AddEdge(e[0], e[1], 1)
	}

	return g
}

// both runs fn once per walker flavor.
func both(t *testing.T, fn func(t *testing.T, extra ...dfs.Option[string])) {
	t.Run("explicit stack", func(t *testing.T) { fn(t) })
	t.Run("recursive", func(t *testing.T) { fn(t, dfs.WithRecursion[string]()) })
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS[string](nil, "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	g := core.NewGraph[string]()
	res, err := dfs.DFS(g, "X")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_SingleVertex_NoEdges(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddVertex("A")

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.PreOrder)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.Equal(t, 0, res.Depth["A"])
	assert.Empty(t, res.Parent)
}

func TestDFS_SelfLoop(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("A", "A", 0))

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
}

func TestDFS_DiamondOrders(t *testing.T) {
	both(t, func(t *testing.T, extra ...dfs.Option[string]) {
		res, err := dfs.DFS(buildDiamond(), "A", extra...)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "D", "C", "E", "F"}, res.PreOrder)
		assert.Equal(t, []string{"C", "E", "F", "D", "B", "A"}, res.Order)
		assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 2, "C": 3, "E": 3, "F": 3}, res.Depth)
		assert.Equal(t, "D", res.Parent["C"])
	})
}

func TestDFS_Disconnected(t *testing.T) {
	g := core.NewGraph[string]()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("X", "Y", 1)

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.False(t, res.Visited.Has("X"))

	res, err = dfs.DFS(g, "ignored", dfs.WithFullTraversal[string]())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "X", "Y"}, res.PreOrder)
	assert.Equal(t, sets.New("A", "B", "X", "Y"), res.Visited)
}

func TestDFS_MaxDepth(t *testing.T) {
	both(t, func(t *testing.T, extra ...dfs.Option[string]) {
		opts := append([]dfs.Option[string]{dfs.WithMaxDepth[string](1)}, extra...)
		res, err := dfs.DFS(buildChain(4), "N0", opts...)
		require.NoError(t, err)
		assert.Equal(t, []string{"N0", "N1"}, res.PreOrder)
	})
}

func TestDFS_FilterNeighbor(t *testing.T) {
	both(t, func(t *testing.T, extra ...dfs.Option[string]) {
		opts := append([]dfs.Option[string]{dfs.WithFilterNeighbor(func(v string) bool { return v != "N2" })}, extra...)
		res, err := dfs.DFS(buildChain(4), "N0", opts...)
		require.NoError(t, err)
		assert.Equal(t, []string{"N0", "N1"}, res.PreOrder)
		assert.Equal(t, 1, res.SkippedNeighbors)
	})
}

func TestDFS_OnExitError(t *testing.T) {
	both(t, func(t *testing.T, extra ...dfs.Option[string]) {
		boom := errors.New("boom")
		opts := append([]dfs.Option[string]{dfs.WithOnExit(func(v string) error {
			if v == "N1" {
				return boom
			}
			return nil
		})}, extra...)

		res, err := dfs.DFS(buildChain(3), "N0", opts...)
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "OnExit hook for N1")
		assert.Nil(t, res.Order)
	})
}

func TestDFS_Cancellation(t *testing.T) {
	both(t, func(t *testing.T, extra ...dfs.Option[string]) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		seen := 0
		opts := append([]dfs.Option[string]{
			dfs.WithContext[string](ctx),
			dfs.WithOnVisit(func(string, int) error {
				seen++
				if seen == 3 {
					cancel()
				}
				return nil
			}),
		}, extra...)

		res, err := dfs.DFS(buildChain(10), "N0", opts...)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Len(t, res.PreOrder, 3)
	})
}

func TestDFS_HookSequence(t *testing.T) {
	both(t, func(t *testing.T, extra ...dfs.Option[string]) {
		g := core.NewGraph[string]()
		_ = g.AddEdge("A", "B", 1)
		_ = g.AddEdge("A", "C", 1)

		var trace []string
		opts := append([]dfs.Option[string]{
			dfs.WithOnVisit(func(v string, d int) error {
				trace = append(trace, fmt.Sprintf("in %s@%d", v, d))
				return nil
			}),
			dfs.WithOnExit(func(v string) error {
				trace = append(trace, "out "+v)
				return nil
			}),
		}, extra...)

		_, err := dfs.DFS(g, "A", opts...)
		require.NoError(t, err)
		assert.Equal(t, []string{"in A@0", "in B@1", "out B", "in C@1", "out C", "out A"}, trace)
	})
}

// TestDFS_LongChain ensures the explicit stack handles paths far deeper
// than a comfortable recursion.
func TestDFS_LongChain(t *testing.T) {
	const n = 200000
	res, err := dfs.DFS(buildChain(n), "N0")
	require.NoError(t, err)
	require.Len(t, res.PreOrder, n)
	assert.Equal(t, n-1, res.Depth["N"+strconv.Itoa(n-1)])
	assert.Equal(t, "N"+strconv.Itoa(n-1), res.Order[0])
	assert.Equal(t, "N0", res.Order[n-1])

	comps, err := dfs.Components(buildChain(n))
	require.NoError(t, err)
	require.Equal(t, 1, comps.Len())
	assert.Len(t, comps[0], n)
}

func TestComponents_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		edges [][2]string
		want  partition.Partition[string]
	}{
		{
			name:  "one component with duplicate edge",
			edges: [][2]string{{"A", "B"}, {"B", "C"}, {"B", "D"}, {"D", "A"}, {"A", "C"}, {"B", "D"}},
			want:  partition.Partition[string]{{"A", "B", "C", "D"}},
		},
		{
			name:  "three components",
			edges: [][2]string{{"A", "B"}, {"C", "D"}, {"E", "F"}, {"F", "G"}},
			want:  partition.Partition[string]{{"A", "B"}, {"C", "D"}, {"E", "F", "G"}},
		},
		{
			name:  "two components",
			edges: [][2]string{{"A", "B"}, {"B", "C"}, {"D", "E"}},
			want:  partition.Partition[string]{{"A", "B", "C"}, {"D", "E"}},
		},
		{
			name: "empty graph",
			want: partition.Partition[string]{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			both(t, func(t *testing.T, extra ...dfs.Option[string]) {
				g := core.NewGraph[string]()
				for _, e := range tc.edges {
					require.NoError(t, g.AddEdge(e[0], e[1], 1))
				}
				got, err := dfs.Components(g, extra...)
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, tc.want, got)
			})
		})
	}
}

func TestComponents_RejectsPruning(t *testing.T) {
	g := buildChain(3)

	_, err := dfs.Components(g, dfs.WithMaxDepth[string](2))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)

	_, err = dfs.Components(g, dfs.WithFilterNeighbor(func(string) bool { return true }))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)

	_, err = dfs.Components[string](nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestComponents_OnComponent(t *testing.T) {
	g := core.NewGraph[string]()
	_ = g.AddEdge("A", "B", 1)
	g.AddVertex("X")

	var got []string
	_, err := dfs.Components(g, dfs.WithOnComponent(func(i int, members []string) {
		got = append(got, fmt.Sprintf("%d:%v", i, members))
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"0:[A B]", "1:[X]"}, got)
}

// TestComponents_WalkersAgree compares both walkers on random graphs,
// including the order inside each component.
func TestComponents_WalkersAgree(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	for round := 0; round < 25; round++ {
		g := core.NewGraph[int]()
		n := 1 + rnd.Intn(80)
		for v := 0; v < n; v++ {
			g.AddVertex(v)
		}
		for k := 0; k < rnd.Intn(3*n); k++ {
			require.NoError(t, g.AddEdge(rnd.Intn(n), rnd.Intn(n), 1))
		}

		iter, err := dfs.Components(g)
		require.NoError(t, err)
		rec, err := dfs.Components(g, dfs.WithRecursion[int]())
		require.NoError(t, err)

		assert.Equal(t, rec, iter)
		require.NoError(t, partition.Validate(iter, g.Vertices()))
		for _, e := range g.Edges() {
			assert.True(t, iter.Connected(e.From, e.To))
		}
	}
}
