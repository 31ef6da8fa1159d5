// Package gridgraph treats a 2D grid of integer cell values as a graph of
// "land" cells so that islands can be found with any connectivity strategy.
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Conversion to a *core.Graph[string] with vertex labels "x,y"
//   - Islands: connected components of land cells, mapped back to Cells
//   - Parse: a whitespace-separated text format for grid files
//
// Cells with value < LandThreshold are "water" and never become vertices.
package gridgraph

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvconn/connectivity"
	"github.com/katalvlaran/lvconn/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		SplitByValue:    opts.SplitByValue,
		neighborOffsets: offsets,
	}, nil
}

// From2D is NewGridGraph with default options and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsLand reports whether (x,y) is in bounds and at or above LandThreshold.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// NeighborOffsets returns the precomputed neighbor offsets in N-first clockwise order.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// linked reports whether neighbouring cells a and b share an edge.
func (gg *GridGraph) linked(ax, ay, bx, by int) bool {
	if !gg.IsLand(bx, by) {
		return false
	}

	return !gg.SplitByValue || gg.CellValues[ay][ax] == gg.CellValues[by][bx]
}

// Graph converts the land cells into an undirected graph with unit weights.
// Vertices are inserted in row-major order, so an isolated land cell is still
// a vertex; edges follow NeighborOffsets for each cell in the same order.
// Complexity: O(W×H×d) time, O(L + E) memory for L land cells.
func (gg *GridGraph) Graph(opts ...core.GraphOption) *core.Graph[string] {
	g := core.NewGraph[string](opts...)
	n := gg.Width * gg.Height
	for i := 0; i < n; i++ {
		if x, y := gg.Coordinate(i); gg.IsLand(x, y) {
			g.AddVertex(VertexID(x, y))
		}
	}
	for i := 0; i < n; i++ {
		x, y := gg.Coordinate(i)
		if !gg.IsLand(x, y) {
			continue
		}
		for _, d := range gg.NeighborOffsets() {
			nx, ny := x+d[0], y+d[1]
			if gg.linked(x, y, nx, ny) {
				_ = g.AddEdge(VertexID(x, y), VertexID(nx, ny), 1) // unit weight never fails
			}
		}
	}

	return g
}

// Islands partitions the land cells with a and maps every label back to its Cell.
// Islands appear in the order a reports components; with the BFS strategy
// each island starts at its first land cell in row-major order.
func (gg *GridGraph) Islands(ctx context.Context, a *connectivity.Analyzer[string]) ([][]Cell, error) {
	p, err := a.Components(ctx, gg.Graph())
	if err != nil {
		return nil, err
	}

	out := make([][]Cell, 0, p.Len())
	for _, comp := range p {
		island := make([]Cell, 0, len(comp))
		for _, id := range comp {
			x, y, err := ParseVertexID(id)
			if err != nil {
				return nil, err
			}
			island = append(island, Cell{X: x, Y: y, Value: gg.CellValues[y][x]})
		}
		out = append(out, island)
	}

	return out, nil
}

// VertexID formats the vertex label of cell (x,y).
func VertexID(x, y int) string {
	return strconv.Itoa(x) + "," + strconv.Itoa(y)
}

// ParseVertexID is the inverse of VertexID.
func ParseVertexID(id string) (x, y int, err error) {
	xs, ys, ok := strings.Cut(id, ",")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadLabel, id)
	}
	if x, err = strconv.Atoi(xs); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadLabel, id)
	}
	if y, err = strconv.Atoi(ys); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadLabel, id)
	}

	return x, y, nil
}

// Coordinate converts a row-major index (y*Width + x) back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
