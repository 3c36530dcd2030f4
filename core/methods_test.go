// SPDX-License-Identifier: MIT
// Package core_test verifies Graph construction, queries and mutations.

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalg/core"
	"github.com/katalvlaran/lvalg/ownership"
)

func TestNewGraph(t *testing.T) {
	eng, c := newEngine()
	g, err := core.NewGraph(N3, core.WithEngine(eng), core.WithDirected(true))
	MustNoError(t, err, "NewGraph(3)")

	assert.Equal(t, N3, g.VCount())
	assert.Equal(t, 0, g.ECount())
	assert.True(t, g.Directed())
	assert.Equal(t, ownership.Owned, g.Mode())
	assert.Equal(t, "Graph{n=3 m=0 directed}", g.String())

	_, err = core.NewGraph(-1, core.WithEngine(eng))
	MustErrorIs(t, err, core.ErrInvalidRange, "NewGraph(-1)")

	MustNoError(t, g.Close(), "Close")
	MustNoLeak(t, eng, c)
}

func TestNewGraph_ResourceFailure(t *testing.T) {
	eng, _ := newEngine()
	eng.SetAllocLimit(0)
	_, err := core.NewGraph(N3, core.WithEngine(eng))
	MustErrorIs(t, err, core.ErrResource, "NewGraph under limit")
	assert.Equal(t, 0, eng.Live())
}

func TestNewGraphFromEdges_HugeVertexID(t *testing.T) {
	eng, _ := newEngine()
	g, err := core.NewGraphFromEdges(0, []int{0, math.MaxInt}, core.WithEngine(eng))
	MustErrorIs(t, err, core.ErrIncompatibleGraph, "NewGraphFromEdges(0, MaxInt)")
	assert.Nil(t, g)
	assert.Equal(t, 0, eng.Live())
}

func TestGraph_EdgesAndQueries(t *testing.T) {
	eng, c := newEngine()
	g, err := core.NewGraph(4, core.WithEngine(eng))
	require.NoError(t, err)

	eid, err := g.AddEdge(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, eid)
	require.NoError(t, g.AddEdges(1, 2, 2, 3, 3, 1))

	edges, err := g.Edges()
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{ID: 0, From: 0, To: 1}, {ID: 1, From: 1, To: 2}, {ID: 2, From: 2, To: 3}, {ID: 3, From: 3, To: 1}}, edges)

	from, to, err := g.Endpoints(2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, []int{from, to})

	_, _, err = g.Endpoints(9)
	MustErrorIs(t, err, core.ErrIncompatibleGraph, "Endpoints(9)")

	id, err := g.EdgeID(1, 3, false)
	require.NoError(t, err)
	assert.Equal(t, 3, id)

	_, err = g.EdgeID(0, 3, false)
	MustErrorIs(t, err, core.ErrEdgeNotFound, "EdgeID(0,3)")

	ok, err := g.AreConnected(2, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = g.AreConnected(0, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	nbs, err := g.Neighbors(1, core.All)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3}, nbs)

	inc, err := g.Incident(1, core.All)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, inc)

	deg, err := g.Degree(core.AllVertices(core.InEngine(eng)), core.All, core.NoSelfLoops)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 2, 2}, deg)

	require.NoError(t, g.Close())
	MustNoLeak(t, eng, c)
}

func TestGraph_AddEdgesIsAtomic(t *testing.T) {
	eng, _ := newEngine()
	g, err := core.NewGraph(2, core.WithEngine(eng))
	require.NoError(t, err)
	defer g.Close()

	MustErrorIs(t, g.AddEdges(0, 1, 1, 5), core.ErrIncompatibleGraph, "AddEdges out of range")
	MustErrorIs(t, g.AddEdges(0), core.ErrInvalidRange, "AddEdges odd")
	assert.Equal(t, 0, g.ECount())
}

func TestGraph_Delete(t *testing.T) {
	eng, c := newEngine()
	g := ring(t, eng, N6)

	require.NoError(t, g.DeleteEdge(0))
	assert.Equal(t, 5, g.ECount())

	require.NoError(t, g.DeleteEdgeBetween(2, 1))
	MustErrorIs(t, g.DeleteEdgeBetween(2, 1), core.ErrEdgeNotFound, "DeleteEdgeBetween twice")

	es, err := core.IncidentEdges(5, core.All, core.InEngine(eng))
	require.NoError(t, err)
	require.NoError(t, g.DeleteEdges(es))
	require.NoError(t, es.Close())
	// left: 2-3, 3-4
	edges, _ := g.Edges()
	assert.Equal(t, []core.Edge{{ID: 0, From: 2, To: 3}, {ID: 1, From: 3, To: 4}}, edges)

	vs, err := core.VertexSeq(0, 1, core.InEngine(eng))
	require.NoError(t, err)
	require.NoError(t, g.DeleteVertices(vs))
	require.NoError(t, vs.Close())
	assert.Equal(t, 4, g.VCount())
	edges, _ = g.Edges()
	assert.Equal(t, []core.Edge{{ID: 0, From: 0, To: 1}, {ID: 1, From: 1, To: 2}}, edges)

	require.NoError(t, g.Close())
	MustNoLeak(t, eng, c)
}

func TestGraph_ConnectNeighborhood(t *testing.T) {
	eng, c := newEngine()
	// path 0-1-2-3
	g, err := core.NewGraphFromEdges(4, []int{0, 1, 1, 2, 2, 3}, core.WithEngine(eng))
	require.NoError(t, err)

	require.NoError(t, g.ConnectNeighborhood(1, core.All))
	assert.Equal(t, 3, g.ECount())

	require.NoError(t, g.ConnectNeighborhood(2, core.All))
	edges, _ := g.Edges()
	assert.Equal(t, []core.Edge{{ID: 0, From: 0, To: 1}, {ID: 1, From: 1, To: 2}, {ID: 2, From: 2, To: 3}, {ID: 3, From: 0, To: 2}, {ID: 4, From: 1, To: 3}}, edges)

	MustErrorIs(t, g.ConnectNeighborhood(-1, core.All), core.ErrInvalidRange, "ConnectNeighborhood(-1)")

	require.NoError(t, g.Close())
	MustNoLeak(t, eng, c)
}

func TestGraph_NilAndInert(t *testing.T) {
	var g *core.Graph
	_, err := g.Edges()
	MustErrorIs(t, err, core.ErrNilGraph, "nil Edges")
	assert.NoError(t, g.Close())
	assert.Equal(t, 0, g.VCount())

	eng, _ := newEngine()
	h, err := core.NewGraph(N3, core.WithEngine(eng))
	require.NoError(t, err)
	moved := h.Move()
	defer moved.Close()

	_, err = h.Neighbors(0, core.All)
	MustErrorIs(t, err, core.ErrResource, "inert Neighbors")
	MustErrorIs(t, err, ownership.ErrInert, "inert Neighbors")
	assert.Equal(t, "Graph{inert}", h.String())
}

func TestGraph_InvalidMode(t *testing.T) {
	eng, _ := newEngine()
	g := ring(t, eng, N3)
	defer g.Close()

	_, err := g.Neighbors(0, core.NeighborMode(9))
	MustErrorIs(t, err, core.ErrInvalidRange, "Neighbors(mode=9)")
}
