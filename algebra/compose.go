// File: compose.go
// Role: complement, relational composition and multiplication.

package algebra

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/katalvlaran/lvalg/adjlist"
	"github.com/katalvlaran/lvalg/core"
)

// Complementer returns the graph joining every pair that a does not join.
// loops adds a self-loop on each vertex that lacks one.
func Complementer(a *core.Graph, loops core.SelfLoops) (*core.Graph, error) {
	const op = "Complementer"
	if _, err := operands(op, a); err != nil {
		return nil, err
	}
	rows, err := adjlist.BuildComplement(a, core.Out, loops)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	g, err := rows.ToGraph(a.Directed())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	log.Debug("algebra result", "op", op, "vertices", g.VCount(), "edges", g.ECount())
	return g, nil
}

// Compose returns the relational composition of a and b: an edge u→w for
// every pair of edges u→v in a and v→w in b, each distinct (u, w) once.
// Undirected operands contribute both orientations of every edge and the
// result is canonicalized. The result has max(|V(a)|, |V(b)|) vertices.
func Compose(a, b *core.Graph) (*core.Graph, error) {
	const op = "Compose"
	s, err := operands(op, a, b)
	if err != nil {
		return nil, err
	}
	first, err := a.EdgeList()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	second, err := b.EdgeList()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	succ := make(map[int][]int)
	for i := 0; i+1 < len(second); i += 2 {
		v, w := second[i], second[i+1]
		succ[v] = append(succ[v], w)
		if !s.directed && v != w {
			succ[w] = append(succ[w], v)
		}
	}

	seen := roaring64.New()
	relate := func(u, v int) {
		for _, w := range succ[v] {
			k := canonical(u, w, s.directed)
			seen.Add(uint64(k.from)<<32 | uint64(k.to))
		}
	}
	for i := 0; i+1 < len(first); i += 2 {
		u, v := first[i], first[i+1]
		relate(u, v)
		if !s.directed && u != v {
			relate(v, u)
		}
	}

	ends := make([]int, 0, 2*seen.GetCardinality())
	it := seen.Iterator()
	for it.HasNext() {
		k := it.Next()
		ends = append(ends, int(k>>32), int(k&0xffffffff))
	}
	return s.build(op, maxVCount([]*core.Graph{a, b}), ends)
}

// Multiply returns the disjoint union of n copies of a. n == 0 yields an
// empty graph with a's directedness; n < 0 fails with core.ErrInvalidRange.
func Multiply(a *core.Graph, n int) (*core.Graph, error) {
	op := fmt.Sprintf("Multiply(%d)", n)
	s, err := operands(op, a)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%s: negative count: %w", op, core.ErrInvalidRange)
	}
	if n == 0 {
		return s.build(op, 0, nil)
	}
	gs := make([]*core.Graph, n)
	for i := range gs {
		gs[i] = a
	}
	return disjointUnion(op, gs)
}
