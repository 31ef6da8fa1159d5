package connectivity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStrategy is returned by ParseStrategy for an unrecognized name.
var ErrUnknownStrategy = errors.New("connectivity: unknown strategy")

// Strategy names a connected-components algorithm.
type Strategy string

const (
	// BFS grows each component breadth-first from its seed.
	BFS Strategy = "bfs"
	// DFS grows each component depth-first on an explicit stack.
	DFS Strategy = "dfs"
	// DFSRecursive grows each component depth-first on the goroutine stack.
	DFSRecursive Strategy = "dfs-recursive"
	// UnionFind merges edge endpoints in a disjoint-set forest.
	UnionFind Strategy = "union-find"
)

// Strategies lists every supported strategy, BFS first.
func Strategies() []Strategy {
	return []Strategy{BFS, DFS, DFSRecursive, UnionFind}
}

// ParseStrategy maps a case-insensitive name to a Strategy.
// "unionfind" and "uf" are accepted for UnionFind; an empty name means BFS.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "dfs-recursive", "dfs_recursive":
		return DFSRecursive, nil
	case "union-find", "unionfind", "uf":
		return UnionFind, nil
	default:
		return "", fmt.Errorf("%w: %q (want one of %v)", ErrUnknownStrategy, s, Strategies())
	}
}

// String implements fmt.Stringer.
func (s Strategy) String() string { return string(s) }

// Set implements pflag.Value so a Strategy can be bound to a flag directly.
func (s *Strategy) Set(v string) error {
	parsed, err := ParseStrategy(v)
	if err != nil {
		return err
	}
	*s = parsed

	return nil
}

// Type implements pflag.Value.
func (s *Strategy) Type() string { return "strategy" }
