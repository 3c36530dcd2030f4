// File: types.go
// Role: Graph wrapper type, options and small value types.
// Determinism:
//   - Vertex ids are dense 0..n-1; edge ids are dense 0..m-1 in insertion order.
// Concurrency:
//   - A Graph value is not safe for concurrent mutation; the engine table
//     itself is serialized, so independent Graphs may be used from different
//     goroutines.

package core

import (
	"github.com/katalvlaran/lvalg/engine"
	"github.com/katalvlaran/lvalg/ownership"
)

// NeighborMode selects which incidences count in directed graphs.
type NeighborMode = engine.Mode

const (
	Out = engine.Out
	In  = engine.In
	All = engine.All
)

// SelfLoops chooses whether self-loops take part in degrees and complements.
type SelfLoops = engine.SelfLoops

const (
	NoSelfLoops      = engine.NoSelfLoops
	ContainSelfLoops = engine.ContainSelfLoops
)

// Edge is one edge of a graph, as stored.
type Edge struct {
	ID   int
	From int
	To   int
}

// Graph wraps one engine graph handle with an ownership mode.
//
// A Graph obtained from NewGraph, Clone, AdoptGraph or an algebra operation
// owns its handle and must be closed. A Graph obtained from Borrow or
// BorrowGraph aliases a handle owned elsewhere; closing it never destroys.
type Graph struct {
	ref ownership.Ref[ownership.GraphKind]
}

type graphConfig struct {
	directed bool
	eng      *engine.Engine
}

// GraphOption configures a Graph before creation.
type GraphOption func(cfg *graphConfig)

// WithDirected sets the graph directedness (default undirected).
func WithDirected(directed bool) GraphOption {
	return func(cfg *graphConfig) { cfg.directed = directed }
}

// WithEngine places the graph in eng instead of engine.Default().
// Panics on nil.
func WithEngine(eng *engine.Engine) GraphOption {
	if eng == nil {
		panic("core: WithEngine(nil)")
	}
	return func(cfg *graphConfig) { cfg.eng = eng }
}

func newGraphConfig(opts ...GraphOption) graphConfig {
	cfg := graphConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.eng == nil {
		cfg.eng = engine.Default()
	}
	return cfg
}

type selectorConfig struct {
	eng *engine.Engine
}

// SelectorOption configures selector and vector construction.
type SelectorOption func(cfg *selectorConfig)

// InEngine builds the selector or vector in eng instead of engine.Default().
// Panics on nil.
func InEngine(eng *engine.Engine) SelectorOption {
	if eng == nil {
		panic("core: InEngine(nil)")
	}
	return func(cfg *selectorConfig) { cfg.eng = eng }
}

func newSelectorConfig(opts ...SelectorOption) selectorConfig {
	cfg := selectorConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.eng == nil {
		cfg.eng = engine.Default()
	}
	return cfg
}
