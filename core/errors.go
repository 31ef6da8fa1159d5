// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: The ReferenceNotFound error taxonomy and the diagnostics side channel.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrReferenceNotFound matches every lookup of a vertex or edge that does not exist.
	ErrReferenceNotFound = errors.New("core: reference not found")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates AddEdge was called with a weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// RefKind tells which kind of reference could not be resolved.
type RefKind int

const (
	// VertexRef is a missing vertex.
	VertexRef RefKind = iota
	// EdgeRef is a missing edge between two existing vertices.
	EdgeRef
)

// String returns "vertex" or "edge".
func (k RefKind) String() string {
	if k == EdgeRef {
		return "edge"
	}

	return "vertex"
}

// ReferenceNotFoundError is returned by Graph operations that looked up a
// vertex or edge that is absent. It is non-fatal: the Graph stays usable.
//
// errors.Is matches ErrReferenceNotFound for every kind, plus
// ErrVertexNotFound or ErrEdgeNotFound according to Kind.
type ReferenceNotFoundError struct {
	// Op is the Graph method that failed, e.g. "RemoveEdge".
	Op string

	// Kind is the kind of the missing reference.
	Kind RefKind

	// Refs holds the rendered labels involved: one for a vertex,
	// the two endpoints for an edge.
	Refs []string
}

// Error renders the human-readable diagnostic text.
func (e *ReferenceNotFoundError) Error() string {
	switch {
	case e.Kind == EdgeRef && len(e.Refs) == 2:
		return fmt.Sprintf("core: %s: edge %s-%s not found", e.Op, e.Refs[0], e.Refs[1])
	case len(e.Refs) == 1:
		return fmt.Sprintf("core: %s: vertex %s not found", e.Op, e.Refs[0])
	default:
		return fmt.Sprintf("core: %s: %s %v not found", e.Op, e.Kind, e.Refs)
	}
}

// Is reports whether target is one of the sentinels this error stands for.
func (e *ReferenceNotFoundError) Is(target error) bool {
	switch target {
	case ErrReferenceNotFound:
		return true
	case ErrVertexNotFound:
		return e.Kind == VertexRef
	case ErrEdgeNotFound:
		return e.Kind == EdgeRef
	}

	return false
}

// vertexNotFound builds the error for a missing vertex and emits the diagnostic.
func (g *Graph[V]) vertexNotFound(op string, v V) error {
	err := &ReferenceNotFoundError{Op: op, Kind: VertexRef, Refs: []string{fmt.Sprint(v)}}
	g.log.V(1).Info("reference not found", "op", op, "kind", err.Kind.String(), "vertex", err.Refs[0])

	return err
}

// edgeNotFound builds the error for a missing edge and emits the diagnostic.
func (g *Graph[V]) edgeNotFound(op string, u, v V) error {
	err := &ReferenceNotFoundError{Op: op, Kind: EdgeRef, Refs: []string{fmt.Sprint(u), fmt.Sprint(v)}}
	g.log.V(1).Info("reference not found", "op", op, "kind", err.Kind.String(), "from", err.Refs[0], "to", err.Refs[1])

	return err
}
