// SPDX-License-Identifier: MIT

// Package partition defines the result shape of every connected-components
// algorithm in this module and the checks that make strategies comparable.
//
// A Partition is an ordered list of Components; a Component lists vertex
// labels in the order the producing traversal first reached them. Two
// partitions produced by different strategies generally differ in both
// orders, so Equivalent compares them as a set of sets.
//
// Complexity: every function here is O(V) in the number of labelled vertices.
package partition

import (
	"errors"
	"fmt"
	"sort"

	"k8s.io/apimachinery/pkg/util/sets"
)

// Sentinel errors reported by Validate.
var (
	// ErrEmptyComponent indicates a component with no vertices.
	ErrEmptyComponent = errors.New("partition: empty component")

	// ErrDuplicateVertex indicates a vertex listed more than once.
	ErrDuplicateVertex = errors.New("partition: vertex in more than one component")

	// ErrUnknownVertex indicates a vertex that is not in the graph.
	ErrUnknownVertex = errors.New("partition: vertex not in graph")

	// ErrMissingVertex indicates a graph vertex that no component covers.
	ErrMissingVertex = errors.New("partition: vertex not covered")
)

// Component is one connected component in first-visit order.
type Component[V comparable] []V

// Partition is the list of components, one per traversal start point.
type Partition[V comparable] []Component[V]

// Len returns the number of components.
func (p Partition[V]) Len() int { return len(p) }

// Size returns the total number of vertices across all components.
func (p Partition[V]) Size() int {
	n := 0
	for _, c := range p {
		n += len(c)
	}

	return n
}

// Index maps every vertex to the position of its component.
func (p Partition[V]) Index() map[V]int {
	idx := make(map[V]int, p.Size())
	for i, c := range p {
		for _, v := range c {
			idx[v] = i
		}
	}

	return idx
}

// ComponentOf returns the index of the component holding v.
func (p Partition[V]) ComponentOf(v V) (int, bool) {
	for i, c := range p {
		for _, x := range c {
			if x == v {
				return i, true
			}
		}
	}

	return -1, false
}

// Connected reports whether u and v lie in the same component.
// A vertex absent from the partition is connected to nothing.
func (p Partition[V]) Connected(u, v V) bool {
	iu, ok := p.ComponentOf(u)
	if !ok {
		return false
	}
	iv, ok := p.ComponentOf(v)

	return ok && iu == iv
}

// Sets returns each component as a set, in component order.
func (p Partition[V]) Sets() []sets.Set[V] {
	out := make([]sets.Set[V], len(p))
	for i, c := range p {
		out[i] = sets.New[V](c...)
	}

	return out
}

// Equivalent reports whether a and b group the same vertices together,
// ignoring component order and the order inside each component.
func Equivalent[V comparable](a, b Partition[V]) bool {
	if a.Len() != b.Len() || a.Size() != b.Size() {
		return false
	}
	idx := a.Index()
	if len(idx) != a.Size() {
		return false // a lists some vertex twice
	}
	sizes := make([]int, a.Len())
	for i, c := range a {
		sizes[i] = len(c)
	}

	matched := sets.New[int]()
	for _, c := range b {
		if len(c) == 0 {
			return false
		}
		target, ok := idx[c[0]]
		if !ok || matched.Has(target) || sizes[target] != len(c) {
			return false
		}
		members := sets.New[V](c...)
		if members.Len() != len(c) {
			return false
		}
		for v := range members {
			if i, ok := idx[v]; !ok || i != target {
				return false
			}
		}
		matched.Insert(target)
	}

	return matched.Len() == a.Len()
}

// Validate checks the partition invariant against the graph's vertex list:
// components are non-empty, pairwise disjoint, and their union is exactly vertices.
func Validate[V comparable](p Partition[V], vertices []V) error {
	want := sets.New[V](vertices...)
	seen := sets.New[V]()
	for i, c := range p {
		if len(c) == 0 {
			return fmt.Errorf("%w: component %d", ErrEmptyComponent, i)
		}
		for _, v := range c {
			if seen.Has(v) {
				return fmt.Errorf("%w: %v", ErrDuplicateVertex, v)
			}
			if !want.Has(v) {
				return fmt.Errorf("%w: %v", ErrUnknownVertex, v)
			}
			seen.Insert(v)
		}
	}
	if missing := want.Difference(seen); missing.Len() > 0 {
		return fmt.Errorf("%w: %d vertices, e.g. %v", ErrMissingVertex, missing.Len(), firstOf(vertices, missing))
	}

	return nil
}

// Sorted returns a canonical copy of p: members ordered by less, then
// components ordered by their first member. p is not modified.
func Sorted[V comparable](p Partition[V], less func(a, b V) bool) Partition[V] {
	out := make(Partition[V], len(p))
	for i, c := range p {
		cc := make(Component[V], len(c))
		copy(cc, c)
		sort.SliceStable(cc, func(x, y int) bool { return less(cc[x], cc[y]) })
		out[i] = cc
	}
	sort.SliceStable(out, func(x, y int) bool {
		if len(out[x]) == 0 || len(out[y]) == 0 {
			return len(out[x]) < len(out[y])
		}
		return less(out[x][0], out[y][0])
	})

	return out
}

// firstOf returns the first vertex in order that is also in s.
func firstOf[V comparable](order []V, s sets.Set[V]) V {
	for _, v := range order {
		if s.Has(v) {
			return v
		}
	}
	var zero V

	return zero
}
