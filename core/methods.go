// File: methods.go
// Role: Graph queries. All results are copies; nothing aliases engine storage.
// Determinism:
//   - Neighbors/Incident follow ascending neighbor id, ties by edge id.
// Concurrency:
//   - Read-only on the graph.

package core

import (
	"errors"
	"fmt"
)

// VCount returns the number of vertices, 0 for an inert graph.
func (g *Graph) VCount() int {
	if g.Check("VCount") != nil {
		return 0
	}
	n, _ := g.ref.Engine().VCount(g.ref.Handle())
	return n
}

// ECount returns the number of edges, 0 for an inert graph.
func (g *Graph) ECount() int {
	if g.Check("ECount") != nil {
		return 0
	}
	m, _ := g.ref.Engine().ECount(g.ref.Handle())
	return m
}

// Directed reports the graph directedness, false for an inert graph.
func (g *Graph) Directed() bool {
	if g.Check("Directed") != nil {
		return false
	}
	d, _ := g.ref.Engine().IsDirected(g.ref.Handle())
	return d
}

// Endpoints returns the stored endpoints of edge eid.
func (g *Graph) Endpoints(eid int) (from, to int, err error) {
	op := fmt.Sprintf("Endpoints(%d)", eid)
	if err = g.Check(op); err != nil {
		return -1, -1, err
	}
	from, to, err = g.ref.Engine().Edge(g.ref.Handle(), eid)
	if err != nil {
		return -1, -1, Translate(op, err)
	}
	return from, to, nil
}

// EdgeID returns the smallest edge id joining from and to. With directed
// false (or in an undirected graph) either orientation matches.
// Returns ErrEdgeNotFound when no edge exists.
func (g *Graph) EdgeID(from, to int, directed bool) (int, error) {
	op := fmt.Sprintf("EdgeID(%d,%d)", from, to)
	if err := g.Check(op); err != nil {
		return -1, err
	}
	eid, err := g.ref.Engine().EdgeID(g.ref.Handle(), from, to, directed)
	if err != nil {
		return -1, Translate(op, err)
	}
	return eid, nil
}

// AreConnected reports whether an edge joins u and v (u -> v when directed).
func (g *Graph) AreConnected(u, v int) (bool, error) {
	_, err := g.EdgeID(u, v, true)
	if errors.Is(err, ErrEdgeNotFound) {
		return false, nil
	}
	return err == nil, err
}

// Edges returns every edge in id order.
func (g *Graph) Edges() ([]Edge, error) {
	if err := g.Check("Edges"); err != nil {
		return nil, err
	}
	ends, err := g.ref.Engine().Edges(g.ref.Handle())
	if err != nil {
		return nil, Translate("Edges", err)
	}
	out := make([]Edge, len(ends)/2)
	for i := range out {
		out[i] = Edge{ID: i, From: ends[2*i], To: ends[2*i+1]}
	}
	return out, nil
}

// EdgeList returns the flat endpoint list (from0, to0, from1, to1, ...).
func (g *Graph) EdgeList() ([]int, error) {
	if err := g.Check("EdgeList"); err != nil {
		return nil, err
	}
	ends, err := g.ref.Engine().Edges(g.ref.Handle())
	return ends, Translate("EdgeList", err)
}

// Neighbors returns the neighbors of v under mode, one entry per incidence.
func (g *Graph) Neighbors(v int, mode NeighborMode) ([]int, error) {
	op := fmt.Sprintf("Neighbors(%d)", v)
	if err := g.Check(op); err != nil {
		return nil, err
	}
	nbs, err := g.ref.Engine().Neighbors(g.ref.Handle(), v, mode)
	if err != nil {
		return nil, Translate(op, err)
	}
	return nbs, nil
}

// Incident returns the ids of the edges incident to v under mode.
func (g *Graph) Incident(v int, mode NeighborMode) ([]int, error) {
	op := fmt.Sprintf("Incident(%d)", v)
	if err := g.Check(op); err != nil {
		return nil, err
	}
	eids, err := g.ref.Engine().Incident(g.ref.Handle(), v, mode)
	if err != nil {
		return nil, Translate(op, err)
	}
	return eids, nil
}

// Degree returns the degree of every vertex selected by vs, in selector order.
func (g *Graph) Degree(vs *VertexSelector, mode NeighborMode, loops SelfLoops) ([]int, error) {
	if err := g.Check("Degree"); err != nil {
		return nil, err
	}
	ids, err := vs.Materialize(g)
	if err != nil {
		return nil, fmt.Errorf("Degree: %w", err)
	}
	deg, err := g.ref.Engine().Degree(g.ref.Handle(), ids, mode, loops)
	if err != nil {
		return nil, Translate("Degree", err)
	}
	return deg, nil
}
