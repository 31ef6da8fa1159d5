// SPDX-License-Identifier: MIT
//
// topologies.go - deterministic topology constructors.
//
// Contract shared by every constructor here:
//   - Validate parameters first; return ErrTooFewVertices before any mutation.
//   - Add vertices via cfg.idFn in ascending index order.
//   - Emit edges in a fixed, documented order, weight cfg.weight() each.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvconn/core"
)

const (
	methodIsolated     = "Isolated"
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodComplete     = "Complete"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"
	methodDisjoint     = "Disjoint"

	minIsolated = 1
	minPath     = 2
	minCycle    = 3
	minStar     = 2
	minComplete = 1
	minGridSide = 1
	minRandom   = 1
)

// addVertices inserts idFn(0..n-1) in order.
func addVertices(g *core.Graph[string], cfg builderConfig, n int) {
	for i := 0; i < n; i++ {
		g.AddVertex(cfg.idFn(i))
	}
}

// link adds the edge idFn(i)–idFn(j) with the next configured weight.
func link(method string, g *core.Graph[string], cfg builderConfig, i, j int) error {
	u, v := cfg.idFn(i), cfg.idFn(j)
	w := cfg.weight()
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}

// Isolated adds n vertices and no edges: n singleton components.
func Isolated(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minIsolated {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodIsolated, n, minIsolated, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)

		return nil
	}
}

// Path builds P_n with edges i–(i+1) for i = 0..n-2.
func Path(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minPath {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPath, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)
		for i := 0; i+1 < n; i++ {
			if err := link(methodPath, g, cfg, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds C_n with edges i–(i+1)%n for i = 0..n-1.
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCycle {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycle, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			if err := link(methodCycle, g, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a star with center idFn(0) and leaves idFn(1..n-1).
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minStar {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStar, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)
		for i := 1; i < n; i++ {
			if err := link(methodStar, g, cfg, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n, emitting edges i–j for i < j in lexicographic order.
func Complete(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minComplete {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minComplete, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := link(methodComplete, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid builds a rows×cols 4-neighbour lattice. Cell (r,c) gets index r*cols+c;
// for each cell in row-major order the right edge is emitted before the down edge.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridSide, ErrTooFewVertices)
		}
		addVertices(g, cfg, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				i := r*cols + c
				if c+1 < cols {
					if err := link(methodGrid, g, cfg, i, i+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(methodGrid, g, cfg, i, i+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// RandomSparse samples G(n, p): each unordered pair {i,j}, i < j, is an edge
// with probability p, trials in (i asc, j asc) order.
// A seeded RNG is required unless p is exactly 0 or 1.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minRandom {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandom, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var hit bool
				switch {
				case p == 0:
				case p == 1:
					hit = true
				default:
					hit = cfg.rng.Float64() < p
				}
				if !hit {
					continue
				}
				if err := link(methodRandomSparse, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Disjoint applies each constructor in its own label scope "c<k>_", so the
// parts never share a vertex. Disjoint(Cycle(4), Path(2)) yields labels
// c0_0..c0_3 and c1_0, c1_1 in two components.
func Disjoint(cons ...Constructor) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		for k, fn := range cons {
			if fn == nil {
				return fmt.Errorf("%s: nil constructor at index %d: %w", methodDisjoint, k, ErrConstructFailed)
			}
			sub := cfg
			sub.idFn = scoped("c"+strconv.Itoa(k)+"_", cfg.idFn)
			if err := fn(g, sub); err != nil {
				return fmt.Errorf("%s[%d]: %w", methodDisjoint, k, err)
			}
		}

		return nil
	}
}
