package render_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvconn/core"
	"github.com/katalvlaran/lvconn/partition"
	"github.com/katalvlaran/lvconn/render"
)

func twoIslands(t *testing.T) (*core.Graph[string], partition.Partition[string]) {
	t.Helper()
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("A", "B", 4))
	require.NoError(t, g.AddEdge("B", "C", 3))
	require.NoError(t, g.AddEdge("D", "E", 5))

	return g, partition.Partition[string]{{"A", "B", "C"}, {"D", "E"}}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]render.Format{
		"": render.Text, "TEXT": render.Text, "mermaid": render.Mermaid,
		"json": render.JSON, "yaml": render.YAML, "yml": render.YAML,
	} {
		got, err := render.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := render.ParseFormat("dot")
	assert.ErrorIs(t, err, render.ErrUnknownFormat)
}

func TestWriteText(t *testing.T) {
	g, p := twoIslands(t)
	var buf bytes.Buffer
	require.NoError(t, render.Write(&buf, render.Text, "bfs", g, p))

	assert.Equal(t, `Strategy: bfs
Vertices: 5
Edges: 3
Connected Components: 2

=== Component 1 (3 vertices) ===
  A B C

=== Component 2 (2 vertices) ===
  D E
`, buf.String())
}

func TestWriteMermaid(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("A", "B", 4))
	require.NoError(t, g.AddEdge("B", "C", 3))
	g.AddVertex("my node")
	p := partition.Partition[string]{{"A", "B", "C"}, {"my node"}}

	var buf bytes.Buffer
	require.NoError(t, render.Write(&buf, render.Mermaid, "bfs", g, p))
	assert.Equal(t, `graph LR
    subgraph component_1
        n0["A"]
        n1["B"]
        n2["C"]
        n0 ---|4| n1
        n1 ---|3| n2
    end

    subgraph component_2
        n3["my node"]
    end
`, buf.String())
}

func TestWriteMermaid_DistinctNodesForSimilarLabels(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("a-b", "x", 1))
	require.NoError(t, g.AddEdge("a_b", `say "hi"`, 2))
	p := partition.Partition[string]{{"a-b", "x"}, {"a_b", `say "hi"`}}

	var buf bytes.Buffer
	require.NoError(t, render.WriteMermaid(&buf, g, p))
	assert.Equal(t, `graph LR
    subgraph component_1
        n0["a-b"]
        n1["x"]
        n0 ---|1| n1
    end

    subgraph component_2
        n2["a_b"]
        n3["say #quot;hi#quot;"]
        n2 ---|2| n3
    end
`, buf.String())
}

func TestWriteJSONAndYAML(t *testing.T) {
	g, p := twoIslands(t)

	var buf bytes.Buffer
	require.NoError(t, render.Write(&buf, render.JSON, "dfs", g, p))
	var fromJSON render.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	assert.Equal(t, *render.NewReport("dfs", g, p), fromJSON)

	buf.Reset()
	require.NoError(t, render.Write(&buf, render.YAML, "dfs", g, p))
	var fromYAML render.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	assert.Equal(t, 2, fromYAML.Count)
	assert.Equal(t, [][]string{{"A", "B", "C"}, {"D", "E"}}, fromYAML.Components)
	assert.Contains(t, buf.String(), "strategy: dfs\n")

	assert.ErrorIs(t, render.Write(&buf, "dot", "dfs", g, p), render.ErrUnknownFormat)
}

func TestNewReport_Empty(t *testing.T) {
	r := render.NewReport("bfs", core.NewGraph[string](), partition.Partition[string]{})
	assert.Equal(t, 0, r.Count)
	assert.NotNil(t, r.Components)

	var buf bytes.Buffer
	require.NoError(t, render.WriteText(&buf, r))
	assert.Contains(t, buf.String(), "Connected Components: 0\n")
}
