// Package builder generates deterministic core.Graph[string] fixtures with a
// known component structure.
//
// A Constructor mutates a graph under a resolved configuration; BuildGraph
// creates the graph and applies constructors in order:
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.BuilderOption{builder.WithSeed(7)},
//		builder.Disjoint(builder.Cycle(5), builder.Path(3), builder.Isolated(2)),
//	)
//	// g has 10 vertices in 4 components
//
// Topologies:
//
//	Isolated(n)        n vertices, no edges          n components
//	Path(n)            P_n                           1 component
//	Cycle(n)           C_n                           1 component
//	Star(n)            center idFn(0) + n-1 leaves   1 component
//	Complete(n)        K_n                           1 component
//	Grid(rows, cols)   4-neighbour lattice           1 component
//	RandomSparse(n, p) G(n, p)                       random
//	Disjoint(cons...)  each constructor in its own label scope
//
// Determinism: equal inputs, options and seed produce identical graphs,
// including vertex and edge insertion order.
//
// Errors: constructors return sentinel errors (ErrTooFewVertices,
// ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed) wrapped with
// the constructor name; branch with errors.Is.
package builder
