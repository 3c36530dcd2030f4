// File: api.go
// Role: Graph construction and ownership transitions.
// Determinism:
//   - Clone produces an independent graph with identical ids.
// Concurrency:
//   - Move must not race with any other use of the source Graph.

package core

import (
	"fmt"

	"github.com/katalvlaran/lvalg/engine"
	"github.com/katalvlaran/lvalg/ownership"
)

// NewGraph creates an owned, edgeless graph with n vertices.
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	cfg := newGraphConfig(opts...)
	h, err := cfg.eng.GraphInit(n, cfg.directed)
	if err != nil {
		return nil, Translate(fmt.Sprintf("NewGraph(n=%d)", n), err)
	}
	return AdoptGraph(cfg.eng, h), nil
}

// NewGraphFromEdges creates an owned graph from a flat endpoint list
// (from0, to0, from1, to1, ...). The vertex count grows to cover every
// endpoint. Nothing is allocated on failure.
func NewGraphFromEdges(n int, endpoints []int, opts ...GraphOption) (*Graph, error) {
	cfg := newGraphConfig(opts...)
	h, err := cfg.eng.GraphCreate(n, cfg.directed, endpoints)
	if err != nil {
		return nil, Translate(fmt.Sprintf("NewGraphFromEdges(n=%d, m=%d)", n, len(endpoints)/2), err)
	}
	return AdoptGraph(cfg.eng, h), nil
}

// AdoptGraph wraps an engine graph handle and takes ownership of it.
func AdoptGraph(eng *engine.Engine, h engine.Handle) *Graph {
	return &Graph{ref: ownership.Own[ownership.GraphKind](eng, h)}
}

// BorrowGraph wraps an engine graph handle without ownership.
func BorrowGraph(eng *engine.Engine, h engine.Handle) *Graph {
	return &Graph{ref: ownership.Borrow[ownership.GraphKind](eng, h)}
}

// Borrow returns a non-owning alias of g. g must outlive the alias.
func (g *Graph) Borrow() *Graph {
	if g == nil || !g.ref.Valid() {
		return &Graph{}
	}
	return BorrowGraph(g.ref.Engine(), g.ref.Handle())
}

// Clone returns an independent, owned deep copy of g.
func (g *Graph) Clone() (*Graph, error) {
	if g == nil {
		return nil, fmt.Errorf("Clone: %w", ErrNilGraph)
	}
	r, err := ownership.Copy(&g.ref)
	if err != nil {
		return nil, Translate("Clone", err)
	}
	return &Graph{ref: r}, nil
}

// Move transfers g's handle and ownership to a new Graph; g becomes inert.
func (g *Graph) Move() *Graph {
	if g == nil {
		return &Graph{}
	}
	return &Graph{ref: g.ref.Move()}
}

// Close destroys the graph if g owns it. Safe to call repeatedly and on nil.
func (g *Graph) Close() error {
	if g == nil {
		return nil
	}
	return Translate("Close", g.ref.Close())
}

// Release disclaims ownership and returns the handle; g becomes inert.
func (g *Graph) Release() engine.Handle {
	if g == nil {
		return engine.NilHandle
	}
	return g.ref.Release()
}

// Mode returns the ownership mode of g.
func (g *Graph) Mode() ownership.Mode {
	if g == nil {
		return ownership.Inert
	}
	return g.ref.Mode()
}

// Handle returns the engine handle, NilHandle when inert.
func (g *Graph) Handle() engine.Handle {
	if g == nil {
		return engine.NilHandle
	}
	return g.ref.Handle()
}

// Engine returns the engine holding the graph, nil when inert.
func (g *Graph) Engine() *engine.Engine {
	if g == nil {
		return nil
	}
	return g.ref.Engine()
}

// Check returns ErrNilGraph for a nil graph and ErrResource (wrapping
// ownership.ErrInert) for an inert one, prefixed with op.
func (g *Graph) Check(op string) error {
	if g == nil {
		return fmt.Errorf("%s: %w", op, ErrNilGraph)
	}
	if !g.ref.Valid() {
		return errInert(op)
	}
	return nil
}

// String renders a short summary such as "Graph{n=6 m=5 undirected}".
func (g *Graph) String() string {
	if g.Check("String") != nil {
		return "Graph{inert}"
	}
	dir := "undirected"
	if g.Directed() {
		dir = "directed"
	}
	return fmt.Sprintf("Graph{n=%d m=%d %s}", g.VCount(), g.ECount(), dir)
}
