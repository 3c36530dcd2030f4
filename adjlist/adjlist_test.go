// SPDX-License-Identifier: MIT
package adjlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalg/adjlist"
	"github.com/katalvlaran/lvalg/builder"
	"github.com/katalvlaran/lvalg/core"
	"github.com/katalvlaran/lvalg/engine"
	"github.com/katalvlaran/lvalg/ownership"
)

// TestBuild_RingSnapshotSurvivesMutation builds the list of ring(6), deletes
// vertex 0 from the source and checks the snapshot is untouched.
func TestBuild_RingSnapshotSurvivesMutation(t *testing.T) {
	eng := engine.New()
	g, err := builder.NewRing(6, false, true, core.WithEngine(eng))
	require.NoError(t, err)

	al, err := adjlist.Build(g, core.All)
	require.NoError(t, err)

	row, err := al.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 5}, row)

	vs, err := core.SingleVertex(0, core.InEngine(eng))
	require.NoError(t, err)
	require.NoError(t, g.DeleteVertices(vs))
	require.NoError(t, vs.Close())
	assert.Equal(t, 5, g.VCount())

	row, err = al.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 5}, row)
	assert.Equal(t, 6, al.Size())

	require.NoError(t, g.Close())
	row, err = al.Row(5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4}, row)

	require.NoError(t, al.Close())
	assert.Equal(t, 0, eng.Live())
}

func TestRow_OutOfRange(t *testing.T) {
	eng := engine.New()
	g, err := core.NewGraph(3, core.WithEngine(eng))
	require.NoError(t, err)
	defer g.Close()

	al, err := adjlist.Build(g, core.Out)
	require.NoError(t, err)
	defer al.Close()

	_, err = al.Row(3)
	assert.ErrorIs(t, err, core.ErrOutOfRange)
	_, err = al.Row(-1)
	assert.ErrorIs(t, err, core.ErrOutOfRange)

	row, err := al.Row(2)
	require.NoError(t, err)
	assert.Empty(t, row)
}

func TestSortAndSimplify(t *testing.T) {
	eng := engine.New()
	// undirected multigraph with a loop: 0-2, 0-1, 1-0, 1-1
	g, err := core.NewGraphFromEdges(3, []int{0, 2, 0, 1, 1, 0, 1, 1}, core.WithEngine(eng))
	require.NoError(t, err)
	defer g.Close()

	al, err := adjlist.Build(g, core.All)
	require.NoError(t, err)
	defer al.Close()

	row, _ := al.Row(1)
	assert.Equal(t, []int{0, 0, 1, 1}, row)

	require.NoError(t, al.Sort())
	require.NoError(t, al.Simplify())
	row, _ = al.Row(1)
	assert.Equal(t, []int{0}, row)
	row, _ = al.Row(0)
	assert.Equal(t, []int{1, 2}, row)
}

func TestBuildComplement(t *testing.T) {
	eng := engine.New()
	g, err := builder.NewStar(4, builder.StarOut, 0, core.WithEngine(eng))
	require.NoError(t, err)
	defer g.Close()

	al, err := adjlist.BuildComplement(g, core.All, core.NoSelfLoops)
	require.NoError(t, err)
	defer al.Close()

	row, _ := al.Row(0)
	assert.Empty(t, row)
	row, _ = al.Row(2)
	assert.Equal(t, []int{1, 3}, row)

	withLoops, err := adjlist.BuildComplement(g, core.All, core.ContainSelfLoops)
	require.NoError(t, err)
	defer withLoops.Close()
	row, _ = withLoops.Row(2)
	assert.Equal(t, []int{1, 2, 3}, row)
}

func TestToGraph_RoundTrip(t *testing.T) {
	eng := engine.New()
	g, err := core.NewGraphFromEdges(4, []int{0, 1, 1, 2, 2, 2, 3, 0}, core.WithEngine(eng))
	require.NoError(t, err)
	defer g.Close()

	al, err := adjlist.Build(g, core.All)
	require.NoError(t, err)
	defer al.Close()

	back, err := al.ToGraph(false)
	require.NoError(t, err)
	defer back.Close()
	assert.Equal(t, 4, back.VCount())
	assert.Equal(t, g.ECount(), back.ECount())
	for _, p := range [][2]int{{0, 1}, {1, 2}, {2, 2}, {0, 3}} {
		ok, err := back.AreConnected(p[0], p[1])
		require.NoError(t, err)
		assert.True(t, ok, "edge %v", p)
	}

	dir, err := al.ToGraph(true)
	require.NoError(t, err)
	defer dir.Close()
	assert.True(t, dir.Directed())
	// every undirected edge yields two arcs, the loop yields two entries
	assert.Equal(t, 8, dir.ECount())
}

func TestOwnership(t *testing.T) {
	eng := engine.New()
	g, err := core.NewGraph(2, core.WithEngine(eng))
	require.NoError(t, err)
	defer g.Close()

	al, err := adjlist.Build(g, core.All)
	require.NoError(t, err)
	cl, err := al.Clone()
	require.NoError(t, err)
	assert.Equal(t, ownership.Copied, cl.Mode())

	mv := al.Move()
	assert.Equal(t, ownership.Inert, al.Mode())
	assert.Equal(t, 0, al.Size())
	_, err = al.Row(0)
	assert.ErrorIs(t, err, ownership.ErrInert)
	assert.ErrorIs(t, al.Sort(), core.ErrResource)

	require.NoError(t, mv.Close())
	require.NoError(t, cl.Close())
	require.NoError(t, al.Close())
	assert.Equal(t, 1, eng.Live())
}

func TestBuild_InertGraph(t *testing.T) {
	var g *core.Graph
	_, err := adjlist.Build(g, core.All)
	assert.ErrorIs(t, err, core.ErrNilGraph)
}
