// File: methods_edges.go
// Role: In-place graph mutations.
// Determinism:
//   - New edges receive the next ids; deletions compact ids preserving order.
// Concurrency:
//   - Mutating a Graph invalidates selectors and adjacency lists derived from
//     it; callers rebuild them afterwards.

package core

import (
	"fmt"

	"github.com/katalvlaran/lvalg/engine"
)

// AddVertices appends n isolated vertices.
func (g *Graph) AddVertices(n int) error {
	op := fmt.Sprintf("AddVertices(%d)", n)
	if err := g.Check(op); err != nil {
		return err
	}
	return Translate(op, g.ref.Engine().AddVertices(g.ref.Handle(), n))
}

// AddEdge adds one edge and returns its id.
func (g *Graph) AddEdge(from, to int) (int, error) {
	op := fmt.Sprintf("AddEdge(%d,%d)", from, to)
	if err := g.Check(op); err != nil {
		return -1, err
	}
	eid := g.ECount()
	if err := g.ref.Engine().AddEdges(g.ref.Handle(), []int{from, to}); err != nil {
		return -1, Translate(op, err)
	}
	return eid, nil
}

// AddEdges adds edges from a flat endpoint list. Either all edges are added or none.
func (g *Graph) AddEdges(endpoints ...int) error {
	op := fmt.Sprintf("AddEdges(m=%d)", len(endpoints)/2)
	if err := g.Check(op); err != nil {
		return err
	}
	return Translate(op, g.ref.Engine().AddEdges(g.ref.Handle(), endpoints))
}

// DeleteEdges removes every edge selected by es.
func (g *Graph) DeleteEdges(es *EdgeSelector) error {
	if err := g.Check("DeleteEdges"); err != nil {
		return err
	}
	eids, err := es.Materialize(g)
	if err != nil {
		return fmt.Errorf("DeleteEdges: %w", err)
	}
	return Translate("DeleteEdges", g.ref.Engine().DeleteEdges(g.ref.Handle(), eids))
}

// DeleteEdge removes edge eid.
func (g *Graph) DeleteEdge(eid int) error {
	op := fmt.Sprintf("DeleteEdge(%d)", eid)
	if err := g.Check(op); err != nil {
		return err
	}
	return Translate(op, g.ref.Engine().DeleteEdges(g.ref.Handle(), []int{eid}))
}

// DeleteEdgeBetween removes the lowest-id edge joining from and to.
func (g *Graph) DeleteEdgeBetween(from, to int) error {
	eid, err := g.EdgeID(from, to, true)
	if err != nil {
		return fmt.Errorf("DeleteEdgeBetween: %w", err)
	}
	return g.DeleteEdge(eid)
}

// DeleteVertices removes every vertex selected by vs together with its
// incident edges, then renumbers the remaining vertices.
func (g *Graph) DeleteVertices(vs *VertexSelector) error {
	if err := g.Check("DeleteVertices"); err != nil {
		return err
	}
	ids, err := vs.Materialize(g)
	if err != nil {
		return fmt.Errorf("DeleteVertices: %w", err)
	}
	return Translate("DeleteVertices", g.ref.Engine().DeleteVertices(g.ref.Handle(), ids))
}

// ConnectNeighborhood connects every vertex to all vertices reachable from
// it in at most order steps under mode that are not already neighbors.
// Undirected graphs get one new edge per vertex pair. order < 0 fails with
// ErrInvalidRange; order <= 1 leaves g unchanged.
func (g *Graph) ConnectNeighborhood(order int, mode NeighborMode) error {
	op := fmt.Sprintf("ConnectNeighborhood(order=%d)", order)
	if err := g.Check(op); err != nil {
		return err
	}
	if order < 0 {
		return fmt.Errorf("%s: %w", op, ErrInvalidRange)
	}
	if order <= 1 {
		return nil
	}
	eng, h := g.ref.Engine(), g.ref.Handle()
	n := g.VCount()
	directed := g.Directed()

	var add []int
	for v := 0; v < n; v++ {
		dist := map[int]int{v: 0}
		frontier := []int{v}
		for d := 1; d <= order && len(frontier) > 0; d++ {
			var next []int
			for _, u := range frontier {
				nbs, err := eng.Neighbors(h, u, mode)
				if err != nil {
					return Translate(op, err)
				}
				for _, w := range nbs {
					if _, seen := dist[w]; seen {
						continue
					}
					dist[w] = d
					next = append(next, w)
					if d >= 2 && (directed || v < w) {
						add = append(add, v, w)
					}
				}
			}
			frontier = next
		}
	}
	log.Debug("connect neighborhood", "order", order, "added", len(add)/2)

	return Translate(op, eng.AddEdges(h, add))
}

// sameEngine reports whether g lives in eng.
func (g *Graph) sameEngine(eng *engine.Engine) bool {
	return g.ref.Engine() == eng
}
