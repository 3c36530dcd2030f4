// SPDX-License-Identifier: MIT
// Package core: sentinel error set and engine error translation.
//
// Every engine failure surfaces to callers as one of the sentinels below,
// wrapped with operation context. The original *engine.Error stays reachable
// through errors.Is / errors.As.
//
// Translation table:
//
//	NoMemory, InvalidHandle, KindMismatch, Internal -> ErrResource
//	InvalidVertex, InvalidEdge                      -> ErrIncompatibleGraph
//	InvalidValue, InvalidMode                       -> ErrInvalidRange
//	NotFound                                        -> ErrEdgeNotFound

package core

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvalg/engine"
	"github.com/katalvlaran/lvalg/ownership"
)

var (
	// ErrResource reports an engine allocation, handle or internal failure,
	// including the use of an inert (moved, closed or released) wrapper.
	ErrResource = errors.New("core: engine resource failure")

	// ErrIncompatibleGraph reports ids outside the addressed graph, mixed
	// directedness, or operands that live in different engines.
	ErrIncompatibleGraph = errors.New("core: incompatible graph")

	// ErrInvalidRange reports malformed range or id arguments.
	ErrInvalidRange = errors.New("core: invalid range")

	// ErrOutOfRange reports an index outside a snapshot (adjacency list row).
	ErrOutOfRange = errors.New("core: index out of range")

	// ErrEdgeNotFound reports a vertex pair that no edge joins.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNilGraph reports a nil *Graph argument or receiver.
	ErrNilGraph = errors.New("core: graph is nil")
)

var sentinels = []error{
	ErrResource, ErrIncompatibleGraph, ErrInvalidRange,
	ErrOutOfRange, ErrEdgeNotFound, ErrNilGraph,
}

// Translate maps an engine (or ownership) error to the matching core sentinel
// and prefixes op. Errors already carrying a core sentinel only gain the prefix.
func Translate(op string, err error) error {
	if err == nil {
		return nil
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	if errors.Is(err, ownership.ErrInert) {
		return fmt.Errorf("%s: %w: %w", op, ErrResource, err)
	}

	var kind error
	switch engine.CodeOf(err) {
	case engine.CodeInvalidVertex, engine.CodeInvalidEdge:
		kind = ErrIncompatibleGraph
	case engine.CodeInvalidValue, engine.CodeInvalidMode:
		kind = ErrInvalidRange
	case engine.CodeNotFound:
		kind = ErrEdgeNotFound
	default:
		kind = ErrResource
	}
	log.Trace("translated engine error", "op", op, "kind", kind, "error", err)

	return fmt.Errorf("%s: %w: %w", op, kind, err)
}

// errInert is the error for a wrapper that holds no handle.
func errInert(op string) error {
	return fmt.Errorf("%s: %w: %w", op, ErrResource, ownership.ErrInert)
}
