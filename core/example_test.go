package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvalg/core"
	"github.com/katalvlaran/lvalg/ownership"
)

// ExampleGraph demonstrates creation, mutation and ownership transfer.
func ExampleGraph() {
	g, _ := core.NewGraph(3)
	_ = g.AddEdges(0, 1, 1, 2)
	fmt.Println(g)

	// a borrowed alias sees the same graph and never destroys it
	view := g.Borrow()
	fmt.Println(view.Mode(), view.ECount())
	_ = view.Close()

	// moving leaves the source inert
	owner := g.Move()
	fmt.Println(g.Mode(), owner.Mode(), owner.VCount())
	_ = owner.Close()

	// Output:
	// Graph{n=3 m=2 undirected}
	// borrowed 2
	// inert moved 3
}

// ExampleVertexSeq shows lazy selector resolution.
func ExampleVertexSeq() {
	g, _ := core.NewGraph(6)
	defer g.Close()

	vs, _ := core.VertexSeq(2, 4)
	defer vs.Close()

	ids, _ := vs.Materialize(g)
	fmt.Println(ids)

	// Output:
	// [2 3 4]
}

// ExampleVerticesFromVector shows a selector taking over a vector.
func ExampleVerticesFromVector() {
	g, _ := core.NewGraph(4)
	defer g.Close()

	vec, _ := core.NewVertexVector([]int{3, 1})
	vs, _ := core.VerticesFromVector(vec, ownership.TransferMove)
	defer vs.Close()

	ids, _ := vs.Materialize(g)
	fmt.Println(ids, vec.Mode())

	// Output:
	// [3 1] inert
}
