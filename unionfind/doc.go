// Package unionfind provides a generic disjoint-set forest and the
// union-find rendition of connected components over a core.Graph.
//
// What
//
//   - DisjointSet[V] tracks a partition of labels under Union, with path
//     compression in Find and union by size.
//   - Components unions the endpoints of every edge in g.Edges() and groups
//     vertices by root. Output is deterministic: components are ordered by
//     their first vertex in g.Vertices(), members in vertex order.
//
// Complexity
//
//   - Find / Union: amortized O(α(n)).
//   - Components:   O(V + E·α(V)) time, O(V) memory.
//
// Unlike bfs and dfs, component members are not in traversal order: the
// grouping is identical, the layout inside each component is vertex order.
package unionfind
