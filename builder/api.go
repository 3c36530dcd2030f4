// SPDX-License-Identifier: MIT
// Package: lvalg/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Every constructor appends its vertices after the ones already in g, so
//     BuildGraph(nil, nil, Star(3, ...), Ring(4, ...)) yields a 7-vertex graph whose
//     ring occupies ids 3..6.
//   - Functional options (BuilderOption) resolve into a builderConfig passed by value.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; a failing BuildGraph closes the partial graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvalg/core"
)

// Constructor appends a topology to g using the resolved builderConfig.
// Constructors validate parameters before touching g and return sentinel
// errors wrapped with their method tag.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph with gopts, resolves the builder
// configuration from bopts and applies cons in order. A constructor error is
// wrapped as "BuildGraph: %w"; the partial graph is closed before returning.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(0, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			_ = g.Close()
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			_ = g.Close()
			log.Debug("construction failed", "index", i, "error", err)
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	log.Trace("graph built", "constructors", len(cons), "vertices", g.VCount(), "edges", g.ECount())

	return g, nil
}

// NewFull builds K_n on its own, see Full.
func NewFull(n int, loops bool, gopts ...core.GraphOption) (*core.Graph, error) {
	return BuildGraph(gopts, nil, Full(n, loops))
}

// NewStar builds a star on its own, see Star. Directed modes produce a
// directed graph unless gopts say otherwise.
func NewStar(n int, mode StarMode, center int, gopts ...core.GraphOption) (*core.Graph, error) {
	opts := append([]core.GraphOption{core.WithDirected(mode != StarUndirected)}, gopts...)
	return BuildGraph(opts, nil, Star(n, mode, center))
}

// NewRing builds a ring on its own, see Ring.
func NewRing(n int, mutual, circular bool, gopts ...core.GraphOption) (*core.Graph, error) {
	return BuildGraph(gopts, nil, Ring(n, mutual, circular))
}

// NewLattice builds a lattice on its own, see Lattice.
func NewLattice(dims []int, periodic, mutual bool, gopts ...core.GraphOption) (*core.Graph, error) {
	return BuildGraph(gopts, nil, Lattice(dims, periodic, mutual))
}

// NewTree builds a k-ary tree on its own, see Tree. Directed modes produce a
// directed graph unless gopts say otherwise.
func NewTree(n, children int, mode TreeMode, gopts ...core.GraphOption) (*core.Graph, error) {
	opts := append([]core.GraphOption{core.WithDirected(mode != TreeUndirected)}, gopts...)
	return BuildGraph(opts, nil, Tree(n, children, mode))
}

// NewDeBruijn builds a de Bruijn graph on its own, see DeBruijn. The graph
// is directed unless gopts say otherwise.
func NewDeBruijn(m, n int, gopts ...core.GraphOption) (*core.Graph, error) {
	opts := append([]core.GraphOption{core.WithDirected(true)}, gopts...)
	return BuildGraph(opts, nil, DeBruijn(m, n))
}

// NewKautz builds a Kautz graph on its own, see Kautz. The graph is
// directed unless gopts say otherwise.
func NewKautz(m, n int, gopts ...core.GraphOption) (*core.Graph, error) {
	opts := append([]core.GraphOption{core.WithDirected(true)}, gopts...)
	return BuildGraph(opts, nil, Kautz(m, n))
}

// NewLCF builds a graph from LCF notation on its own, see LCF.
func NewLCF(n int, shifts []int, repeats int, gopts ...core.GraphOption) (*core.Graph, error) {
	return BuildGraph(gopts, nil, LCF(n, shifts, repeats))
}

// appendBlock adds n fresh vertices to g and the edges ends, given as
// endpoint pairs local to the block, shifted past the existing vertices.
func appendBlock(method string, g *core.Graph, n int, ends []int) error {
	base := g.VCount()
	if err := g.AddVertices(n); err != nil {
		return fmt.Errorf("%s: AddVertices(%d): %w", method, n, err)
	}
	if len(ends) == 0 {
		return nil
	}
	if base > 0 {
		for i := range ends {
			ends[i] += base
		}
	}
	if err := g.AddEdges(ends...); err != nil {
		return fmt.Errorf("%s: AddEdges(%d edges): %w", method, len(ends)/2, err)
	}

	return nil
}
