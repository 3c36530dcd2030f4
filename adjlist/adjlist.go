// File: adjlist.go
// Role: AdjacencyList, an engine-owned per-vertex neighbor snapshot.
// Determinism:
//   - Rows follow the engine neighbor order (ascending neighbor id, ties by
//     edge id); BuildComplement rows are ascending.
// Concurrency:
//   - Independent of the source graph after construction; a single
//     AdjacencyList is not safe for concurrent mutation.

package adjlist

import (
	"fmt"

	"github.com/katalvlaran/lvalg/core"
	"github.com/katalvlaran/lvalg/engine"
	"github.com/katalvlaran/lvalg/ownership"
)

// AdjacencyList holds one neighbor row per vertex of the graph it was built
// from. The row count is frozen at construction.
type AdjacencyList struct {
	ref ownership.Ref[ownership.AdjListKind]
}

// Build captures the neighbor rows of g under mode. An undirected self-loop
// appears twice in its row.
func Build(g *core.Graph, mode core.NeighborMode) (*AdjacencyList, error) {
	const op = "adjlist.Build"
	if err := g.Check(op); err != nil {
		return nil, err
	}
	eng := g.Engine()
	h, err := eng.AdjListInit(g.Handle(), mode)
	if err != nil {
		return nil, core.Translate(op, err)
	}
	log.Debug("built adjacency list", "vertices", g.VCount(), "mode", mode)

	return &AdjacencyList{ref: ownership.Own[ownership.AdjListKind](eng, h)}, nil
}

// BuildComplement captures, for every vertex, the ascending list of vertices
// it is not adjacent to under mode. loops adds a vertex to its own row
// unless it carries a self-loop.
func BuildComplement(g *core.Graph, mode core.NeighborMode, loops core.SelfLoops) (*AdjacencyList, error) {
	const op = "adjlist.BuildComplement"
	if err := g.Check(op); err != nil {
		return nil, err
	}
	eng := g.Engine()
	h, err := eng.AdjListComplementer(g.Handle(), mode, loops)
	if err != nil {
		return nil, core.Translate(op, err)
	}
	return &AdjacencyList{ref: ownership.Own[ownership.AdjListKind](eng, h)}, nil
}

func (a *AdjacencyList) check(op string) error {
	if a == nil || !a.ref.Valid() {
		return fmt.Errorf("%s: %w: %w", op, core.ErrResource, ownership.ErrInert)
	}
	return nil
}

// Size returns the number of rows, 0 when inert.
func (a *AdjacencyList) Size() int {
	if a.check("Size") != nil {
		return 0
	}
	n, _ := a.ref.Engine().AdjListSize(a.ref.Handle())
	return n
}

// Row returns a copy of the neighbor row of v. v outside [0, Size) fails
// with core.ErrOutOfRange.
func (a *AdjacencyList) Row(v int) ([]int, error) {
	op := fmt.Sprintf("Row(%d)", v)
	if err := a.check(op); err != nil {
		return nil, err
	}
	if n := a.Size(); v < 0 || v >= n {
		return nil, fmt.Errorf("%s: size %d: %w", op, n, core.ErrOutOfRange)
	}
	row, err := a.ref.Engine().AdjListRow(a.ref.Handle(), v)
	if err != nil {
		return nil, core.Translate(op, err)
	}
	return row, nil
}

// Sort orders every row ascending.
func (a *AdjacencyList) Sort() error {
	if err := a.check("Sort"); err != nil {
		return err
	}
	return core.Translate("Sort", a.ref.Engine().AdjListSort(a.ref.Handle()))
}

// Simplify removes duplicate neighbors and self-loops from every row and
// leaves the rows sorted.
func (a *AdjacencyList) Simplify() error {
	if err := a.check("Simplify"); err != nil {
		return err
	}
	return core.Translate("Simplify", a.ref.Engine().AdjListSimplify(a.ref.Handle()))
}

// Clone returns an independent copy.
func (a *AdjacencyList) Clone() (*AdjacencyList, error) {
	if err := a.check("Clone"); err != nil {
		return nil, err
	}
	r, err := ownership.Copy(&a.ref)
	if err != nil {
		return nil, core.Translate("Clone", err)
	}
	return &AdjacencyList{ref: r}, nil
}

// Move transfers the list to a new value; a becomes inert.
func (a *AdjacencyList) Move() *AdjacencyList {
	if a == nil {
		return &AdjacencyList{}
	}
	return &AdjacencyList{ref: a.ref.Move()}
}

// Close destroys the list if owned. Safe to call repeatedly.
func (a *AdjacencyList) Close() error {
	if a == nil {
		return nil
	}
	return core.Translate("Close", a.ref.Close())
}

// Mode returns the ownership mode.
func (a *AdjacencyList) Mode() ownership.Mode {
	if a == nil {
		return ownership.Inert
	}
	return a.ref.Mode()
}

// Engine returns the engine holding the list, nil when inert.
func (a *AdjacencyList) Engine() *engine.Engine {
	if a == nil {
		return nil
	}
	return a.ref.Engine()
}

// ToGraph builds a new owned graph from the rows, in the list's engine unless
// opts choose another. A directed result gets one edge v -> w per row entry.
// An undirected result emits each pair from its lower endpoint's row, and a
// self-loop once per two row entries.
func (a *AdjacencyList) ToGraph(directed bool, opts ...core.GraphOption) (*core.Graph, error) {
	const op = "ToGraph"
	if err := a.check(op); err != nil {
		return nil, err
	}
	n := a.Size()
	var ends []int
	for v := 0; v < n; v++ {
		row, err := a.Row(v)
		if err != nil {
			return nil, err
		}
		loops := 0
		for _, w := range row {
			switch {
			case directed:
				ends = append(ends, v, w)
			case w == v:
				loops++
			case v < w:
				ends = append(ends, v, w)
			}
		}
		for i := 0; i < (loops+1)/2; i++ {
			ends = append(ends, v, v)
		}
	}
	gopts := append([]core.GraphOption{core.WithEngine(a.ref.Engine()), core.WithDirected(directed)}, opts...)

	return core.NewGraphFromEdges(n, ends, gopts...)
}
