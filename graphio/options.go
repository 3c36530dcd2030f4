package graphio

import (
	"github.com/katalvlaran/lvalg/engine"
)

// Option configures a Writer or a Reader. Options irrelevant to one side
// are ignored by it.
type Option func(*config)

type config struct {
	names    NameFn
	named    bool
	flow     bool
	source   int
	target   int
	directed bool
	eng      *engine.Engine
}

func newConfig(opts ...Option) config {
	cfg := config{names: DecimalNames}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithNames sets the vertex naming scheme for the symbolic writers.
// Panics on nil.
func WithNames(fn NameFn) Option {
	if fn == nil {
		panic("graphio: WithNames(nil)")
	}
	return func(c *config) {
		c.names, c.named = fn, true
	}
}

// WithFlow makes the DIMACS writer emit a max-flow problem with the given
// source and target. Panics on negative ids.
func WithFlow(source, target int) Option {
	if source < 0 || target < 0 {
		panic("graphio: WithFlow(negative vertex)")
	}
	return func(c *config) {
		c.flow, c.source, c.target = true, source, target
	}
}

// WithDirected sets the directedness of graphs read from formats that do not
// record it (edgelist, ncol, lgl, DIMACS, adjlist). Default undirected.
func WithDirected(directed bool) Option {
	return func(c *config) {
		c.directed = directed
	}
}

// WithEngine creates read graphs in eng instead of engine.Default().
// Panics on nil.
func WithEngine(eng *engine.Engine) Option {
	if eng == nil {
		panic("graphio: WithEngine(nil)")
	}
	return func(c *config) {
		c.eng = eng
	}
}
