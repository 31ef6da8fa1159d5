package unionfind_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvconn/bfs"
	"github.com/katalvlaran/lvconn/core"
	"github.com/katalvlaran/lvconn/partition"
	"github.com/katalvlaran/lvconn/unionfind"
)

func TestDisjointSet_Basics(t *testing.T) {
	d := unionfind.New("a", "b", "c", "d")
	assert.Equal(t, 4, d.Count())
	assert.Equal(t, 4, d.Len())

	assert.True(t, d.Union("a", "b"))
	assert.False(t, d.Union("b", "a"))
	assert.True(t, d.Union("c", "d"))
	assert.Equal(t, 2, d.Count())
	assert.True(t, d.Connected("a", "b"))
	assert.False(t, d.Connected("a", "c"))

	assert.True(t, d.Union("a", "d"))
	assert.Equal(t, 1, d.Count())
	assert.Equal(t, 4, d.SetSize("c"))
	assert.Equal(t, d.Find("a"), d.Find("c"))
}

func TestDisjointSet_UnknownLabels(t *testing.T) {
	d := unionfind.New[int]()
	assert.False(t, d.Has(1))
	assert.True(t, d.Connected(1, 1))
	assert.False(t, d.Connected(1, 2))
	assert.Equal(t, 0, d.SetSize(1))

	// Find adds on demand
	assert.Equal(t, 7, d.Find(7))
	assert.True(t, d.Has(7))
	assert.Equal(t, 1, d.Count())
}

func TestDisjointSet_LongChainCompresses(t *testing.T) {
	const n = 100000
	d := unionfind.New[int]()
	for i := 1; i < n; i++ {
		d.Union(i-1, i)
	}
	assert.Equal(t, 1, d.Count())
	assert.Equal(t, n, d.SetSize(0))
	assert.True(t, d.Connected(0, n-1))
}

func TestComponents_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		edges [][3]any
		want  partition.Partition[string]
	}{
		{
			name: "one component with duplicate edge",
			edges: [][3]any{
				{"A", "B", 4}, {"B", "C", 3}, {"B", "D", 2},
				{"D", "A", 1}, {"A", "C", 2}, {"B", "D", 2},
			},
			want: partition.Partition[string]{{"A", "B", "C", "D"}},
		},
		{
			name:  "three components",
			edges: [][3]any{{"A", "B", 4}, {"C", "D", 4}, {"E", "F", 1}, {"F", "G", 1}},
			want:  partition.Partition[string]{{"A", "B"}, {"C", "D"}, {"E", "F", "G"}},
		},
		{
			name:  "two components",
			edges: [][3]any{{"A", "B", 4}, {"B", "C", 3}, {"D", "E", 5}},
			want:  partition.Partition[string]{{"A", "B", "C"}, {"D", "E"}},
		},
		{
			name: "empty graph",
			want: partition.Partition[string]{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph[string]()
			for _, e := range tc.edges {
				require.NoError(t, g.AddEdge(e[0].(string), e[1].(string), int64(e[2].(int))))
			}
			got, err := unionfind.Components(g)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestComponents_ErrorsAndHooks(t *testing.T) {
	_, err := unionfind.Components[string](nil)
	assert.ErrorIs(t, err, unionfind.ErrGraphNil)

	g := core.NewGraph[string]()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("C", "A", 1)

	var merges []bool
	_, err = unionfind.Components(g, unionfind.WithOnUnion(func(_, _ string, merged bool) {
		merges = append(merges, merged)
	}))
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, false}, merges)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = unionfind.Components(g, unionfind.WithContext[string](ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestComponents_MatchesBFS checks the grouping against BFS on random graphs.
func TestComponents_MatchesBFS(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for round := 0; round < 25; round++ {
		g := core.NewGraph[int]()
		n := 1 + rnd.Intn(70)
		for v := 0; v < n; v++ {
			g.AddVertex(v)
		}
		for k := 0; k < rnd.Intn(2*n); k++ {
			require.NoError(t, g.AddEdge(rnd.Intn(n), rnd.Intn(n), 1))
		}

		uf, err := unionfind.Components(g)
		require.NoError(t, err)
		byBFS, err := bfs.Components(g)
		require.NoError(t, err)

		require.NoError(t, partition.Validate(uf, g.Vertices()))
		assert.True(t, partition.Equivalent(uf, byBFS), "round %d", round)
	}
}
