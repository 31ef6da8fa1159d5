package connectivity

import "fmt"

// StepKind classifies a Step.
type StepKind int

const (
	// ComponentStart: Vertex seeds component Component.
	ComponentStart StepKind = iota
	// Discover: Vertex is marked visited and joins the current component.
	Discover
	// Expand: Vertex leaves the BFS queue and its neighbors are scanned.
	Expand
	// Finish: every neighbor of Vertex has been explored (DFS only).
	Finish
	// Merge: union-find processed the edge Vertex–Other.
	Merge
	// ComponentDone: component Component is complete.
	ComponentDone
)

var stepKindNames = [...]string{"component-start", "discover", "expand", "finish", "merge", "component-done"}

// String implements fmt.Stringer.
func (k StepKind) String() string {
	if k < 0 || int(k) >= len(stepKindNames) {
		return fmt.Sprintf("StepKind(%d)", int(k))
	}

	return stepKindNames[k]
}

// Step is one observable event of a components run.
type Step[V comparable] struct {
	Kind StepKind

	// Vertex is the subject of the step. Unset for ComponentDone.
	Vertex V

	// Other is the second endpoint of a Merge step.
	Other V

	// Component is the index of the component being built, or -1 for Merge.
	Component int

	// Frontier is a copy of the BFS queue (front first) or the DFS stack
	// (root first) after the step took effect. Nil when empty and for union-find.
	Frontier []V

	// Merged reports whether a Merge step joined two sets.
	Merged bool
}

// Observer receives steps synchronously, in order, on the calling goroutine.
type Observer[V comparable] func(Step[V])
