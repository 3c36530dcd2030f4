// File: operands.go
// Role: operand validation, edge multisets and result construction shared by
// every algebra operation.
// Determinism:
//   - Multiset results are emitted in ascending (from, to) order, each pair
//     repeated by its multiplicity.

package algebra

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvalg/core"
	"github.com/katalvlaran/lvalg/engine"
)

// shape is what every operand must agree on.
type shape struct {
	eng      *engine.Engine
	directed bool
}

// operands validates gs for op: none may be nil or inert, and all must share
// the first one's engine and directedness.
func operands(op string, gs ...*core.Graph) (shape, error) {
	var s shape
	for i, g := range gs {
		if err := g.Check(fmt.Sprintf("%s: operand %d", op, i)); err != nil {
			return shape{}, err
		}
		if i == 0 {
			s = shape{eng: g.Engine(), directed: g.Directed()}
			continue
		}
		if g.Engine() != s.eng {
			return shape{}, fmt.Errorf("%s: operand %d lives in another engine: %w", op, i, core.ErrIncompatibleGraph)
		}
		if g.Directed() != s.directed {
			return shape{}, fmt.Errorf("%s: operand %d has mixed directedness: %w", op, i, core.ErrIncompatibleGraph)
		}
	}
	return s, nil
}

// emptyGraph is the result of an *All variant called with no graphs.
func emptyGraph(op string) (*core.Graph, error) {
	g, err := core.NewGraph(0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return g, nil
}

// build creates the owned result graph in s's engine.
func (s shape) build(op string, n int, ends []int) (*core.Graph, error) {
	g, err := core.NewGraphFromEdges(n, ends, core.WithEngine(s.eng), core.WithDirected(s.directed))
	if err != nil {
		log.LogError(err, "building result failed", "op", op)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	log.Debug("algebra result", "op", op, "vertices", g.VCount(), "edges", g.ECount(), "directed", s.directed)
	return g, nil
}

// pair is an edge key; undirected pairs are stored with from <= to.
type pair struct{ from, to int }

// multiset counts edge multiplicities of one graph.
type multiset map[pair]int

// edgeMultiset reads g's edges into a multiset.
func edgeMultiset(op string, g *core.Graph, directed bool) (multiset, error) {
	ends, err := g.EdgeList()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	ms := make(multiset, len(ends)/2)
	for i := 0; i+1 < len(ends); i += 2 {
		ms[canonical(ends[i], ends[i+1], directed)]++
	}
	return ms, nil
}

func canonical(u, v int, directed bool) pair {
	if !directed && u > v {
		u, v = v, u
	}
	return pair{u, v}
}

// endpoints flattens ms in ascending pair order.
func (ms multiset) endpoints() []int {
	keys := make([]pair, 0, len(ms))
	for k, c := range ms {
		if c > 0 {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].from != keys[j].from {
			return keys[i].from < keys[j].from
		}
		return keys[i].to < keys[j].to
	})
	var ends []int
	for _, k := range keys {
		for c := ms[k]; c > 0; c-- {
			ends = append(ends, k.from, k.to)
		}
	}
	return ends
}

// maxVCount returns the largest vertex count among gs.
func maxVCount(gs []*core.Graph) int {
	n := 0
	for _, g := range gs {
		if v := g.VCount(); v > n {
			n = v
		}
	}
	return n
}
