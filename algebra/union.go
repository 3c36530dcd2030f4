// File: union.go
// Role: disjoint union, merge, intersection and difference.
// Determinism:
//   - DisjointUnion keeps every input edge in input order, shifted by the
//     vertex offset of its graph.
//   - Merge, Intersection and Difference emit edges in ascending endpoint
//     order (see multiset.endpoints).

package algebra

import (
	"fmt"

	"github.com/katalvlaran/lvalg/core"
)

// DisjointUnion returns a new graph holding a and b side by side; b's
// vertices follow a's.
func DisjointUnion(a, b *core.Graph) (*core.Graph, error) {
	return disjointUnion("DisjointUnion", []*core.Graph{a, b})
}

// DisjointUnionAll is DisjointUnion over any number of graphs. An empty list
// yields an empty undirected graph in the default engine.
func DisjointUnionAll(gs []*core.Graph) (*core.Graph, error) {
	return disjointUnion("DisjointUnionAll", gs)
}

func disjointUnion(op string, gs []*core.Graph) (*core.Graph, error) {
	if len(gs) == 0 {
		return emptyGraph(op)
	}
	s, err := operands(op, gs...)
	if err != nil {
		return nil, err
	}
	var (
		ends   []int
		offset int
	)
	for _, g := range gs {
		part, err := g.EdgeList()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		for _, v := range part {
			ends = append(ends, v+offset)
		}
		offset += g.VCount()
	}
	return s.build(op, offset, ends)
}

// Merge returns the union of a and b over shared vertex ids. The result has
// max(|V(a)|, |V(b)|) vertices and each edge appears as many times as in the
// input holding it most often.
func Merge(a, b *core.Graph) (*core.Graph, error) {
	return merge("Merge", []*core.Graph{a, b})
}

// MergeAll is Merge over any number of graphs.
func MergeAll(gs []*core.Graph) (*core.Graph, error) {
	return merge("MergeAll", gs)
}

func merge(op string, gs []*core.Graph) (*core.Graph, error) {
	if len(gs) == 0 {
		return emptyGraph(op)
	}
	s, err := operands(op, gs...)
	if err != nil {
		return nil, err
	}
	acc := multiset{}
	for _, g := range gs {
		ms, err := edgeMultiset(op, g, s.directed)
		if err != nil {
			return nil, err
		}
		for k, c := range ms {
			if c > acc[k] {
				acc[k] = c
			}
		}
	}
	return s.build(op, maxVCount(gs), acc.endpoints())
}

// Intersection returns the edges present in both a and b, each with the
// smaller multiplicity. The result has max(|V(a)|, |V(b)|) vertices.
func Intersection(a, b *core.Graph) (*core.Graph, error) {
	return intersection("Intersection", []*core.Graph{a, b})
}

// IntersectionAll is Intersection over any number of graphs.
func IntersectionAll(gs []*core.Graph) (*core.Graph, error) {
	return intersection("IntersectionAll", gs)
}

func intersection(op string, gs []*core.Graph) (*core.Graph, error) {
	if len(gs) == 0 {
		return emptyGraph(op)
	}
	s, err := operands(op, gs...)
	if err != nil {
		return nil, err
	}
	acc, err := edgeMultiset(op, gs[0], s.directed)
	if err != nil {
		return nil, err
	}
	for _, g := range gs[1:] {
		ms, err := edgeMultiset(op, g, s.directed)
		if err != nil {
			return nil, err
		}
		for k, c := range acc {
			if m := ms[k]; m < c {
				acc[k] = m
			}
		}
	}
	return s.build(op, maxVCount(gs), acc.endpoints())
}

// Difference returns a's edges minus b's, multiplicity max(0, mA-mB). The
// result has a's vertex count; b may be larger or smaller.
func Difference(a, b *core.Graph) (*core.Graph, error) {
	const op = "Difference"
	s, err := operands(op, a, b)
	if err != nil {
		return nil, err
	}
	acc, err := edgeMultiset(op, a, s.directed)
	if err != nil {
		return nil, err
	}
	sub, err := edgeMultiset(op, b, s.directed)
	if err != nil {
		return nil, err
	}
	for k, c := range sub {
		if _, ok := acc[k]; ok {
			acc[k] -= c
		}
	}
	return s.build(op, a.VCount(), acc.endpoints())
}
