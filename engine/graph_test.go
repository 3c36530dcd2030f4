package engine_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalg/engine"
)

// ring returns an undirected ring on n vertices.
func ring(t *testing.T, e *engine.Engine, n int) engine.Handle {
	t.Helper()
	var ends []int
	for i := 0; i < n; i++ {
		ends = append(ends, i, (i+1)%n)
	}
	h, err := e.GraphCreate(n, false, ends)
	require.NoError(t, err)
	return h
}

func TestGraphCreate_GrowsVertexCount(t *testing.T) {
	e := engine.New()
	h, err := e.GraphCreate(2, true, []int{0, 4})
	require.NoError(t, err)

	n, _ := e.VCount(h)
	m, _ := e.ECount(h)
	d, _ := e.IsDirected(h)
	assert.Equal(t, 5, n)
	assert.Equal(t, 1, m)
	assert.True(t, d)

	_, err = e.GraphCreate(2, true, []int{0})
	assert.ErrorIs(t, err, engine.ErrInvalidValue)
	_, err = e.GraphCreate(2, true, []int{0, -1})
	assert.ErrorIs(t, err, engine.ErrInvalidVertex)
	assert.Equal(t, 1, e.Live())
}

func TestGraphCreate_RejectsOutOfRangeIDs(t *testing.T) {
	e := engine.New()
	_, err := e.GraphCreate(0, false, []int{0, math.MaxInt})
	assert.ErrorIs(t, err, engine.ErrInvalidVertex)
	_, err = e.GraphCreate(0, false, []int{0, int(engine.MaxVertices)})
	assert.ErrorIs(t, err, engine.ErrInvalidVertex)
	_, err = e.GraphCreate(int(engine.MaxVertices)+1, false, nil)
	assert.ErrorIs(t, err, engine.ErrInvalidValue)
	_, err = e.GraphInit(math.MaxInt, true)
	assert.ErrorIs(t, err, engine.ErrInvalidValue)
	assert.Equal(t, 0, e.Live())

	h, err := e.GraphCreate(0, false, []int{0, int(engine.MaxVertices) - 1})
	require.NoError(t, err)
	n, _ := e.VCount(h)
	assert.Equal(t, int(engine.MaxVertices), n)

	err = e.AddVertices(h, 1)
	assert.ErrorIs(t, err, engine.ErrInvalidValue)
	n, _ = e.VCount(h)
	assert.Equal(t, int(engine.MaxVertices), n)
	assert.ErrorIs(t, e.AddEdges(h, []int{0, int(engine.MaxVertices)}), engine.ErrInvalidVertex)
	require.NoError(t, e.GraphDestroy(h))
}

func TestNeighbors_Order(t *testing.T) {
	e := engine.New()
	// undirected: 0-2, 0-1, 0-0, 2-0
	h, err := e.GraphCreate(3, false, []int{0, 2, 0, 1, 0, 0, 2, 0})
	require.NoError(t, err)

	nbs, err := e.Neighbors(h, 0, engine.Out)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 2, 2}, nbs)

	eids, err := e.Incident(h, 0, engine.All)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 1, 0, 3}, eids)

	deg, err := e.Degree(h, []int{0, 1}, engine.All, engine.ContainSelfLoops)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 1}, deg)
	deg, err = e.Degree(h, []int{0}, engine.All, engine.NoSelfLoops)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, deg)

	_, err = e.Neighbors(h, 0, engine.Mode(7))
	assert.ErrorIs(t, err, engine.ErrInvalidMode)
	_, err = e.Neighbors(h, 3, engine.All)
	assert.ErrorIs(t, err, engine.ErrInvalidVertex)
}

func TestNeighbors_DirectedModes(t *testing.T) {
	e := engine.New()
	h, err := e.GraphCreate(3, true, []int{0, 1, 2, 0, 1, 1})
	require.NoError(t, err)

	out, _ := e.Neighbors(h, 0, engine.Out)
	in, _ := e.Neighbors(h, 0, engine.In)
	all, _ := e.Neighbors(h, 0, engine.All)
	assert.Equal(t, []int{1}, out)
	assert.Equal(t, []int{2}, in)
	assert.Equal(t, []int{1, 2}, all)

	loop, _ := e.Neighbors(h, 1, engine.All)
	assert.Equal(t, []int{0, 1, 1}, loop)
}

func TestEdgeID(t *testing.T) {
	e := engine.New()
	h, err := e.GraphCreate(3, true, []int{0, 1, 1, 0, 0, 1})
	require.NoError(t, err)

	id, err := e.EdgeID(h, 1, 0, true)
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	id, err = e.EdgeID(h, 1, 0, false)
	require.NoError(t, err)
	assert.Equal(t, 0, id)

	_, err = e.EdgeID(h, 0, 2, false)
	assert.ErrorIs(t, err, engine.ErrNotFound)
}

func TestAddEdges_ValidatesBeforeApplying(t *testing.T) {
	e := engine.New()
	h, err := e.GraphInit(2, false)
	require.NoError(t, err)

	assert.ErrorIs(t, e.AddEdges(h, []int{0, 1, 1, 2}), engine.ErrInvalidVertex)
	m, _ := e.ECount(h)
	assert.Equal(t, 0, m)

	require.NoError(t, e.AddVertices(h, 1))
	require.NoError(t, e.AddEdges(h, []int{0, 1, 1, 2}))
	ends, _ := e.Edges(h)
	assert.Equal(t, []int{0, 1, 1, 2}, ends)
	assert.ErrorIs(t, e.AddVertices(h, -1), engine.ErrInvalidValue)
}

func TestDeleteEdges_Compacts(t *testing.T) {
	e := engine.New()
	h := ring(t, e, 4)
	require.NoError(t, e.DeleteEdges(h, []int{1, 1, 3}))

	ends, _ := e.Edges(h)
	assert.Equal(t, []int{0, 1, 2, 3}, ends)
	assert.ErrorIs(t, e.DeleteEdges(h, []int{2}), engine.ErrInvalidEdge)
}

func TestDeleteVertices_Renumbers(t *testing.T) {
	e := engine.New()
	h := ring(t, e, 5)
	require.NoError(t, e.DeleteVertices(h, []int{0}))

	n, _ := e.VCount(h)
	ends, _ := e.Edges(h)
	assert.Equal(t, 4, n)
	// edges 1-2, 2-3, 3-4 survive and shift down by one
	assert.Equal(t, []int{0, 1, 1, 2, 2, 3}, ends)
}

func TestGraphCopy_IsIndependent(t *testing.T) {
	e := engine.New()
	h := ring(t, e, 3)
	c, err := e.GraphCopy(h)
	require.NoError(t, err)

	require.NoError(t, e.AddEdges(h, []int{0, 0}))
	m1, _ := e.ECount(h)
	m2, _ := e.ECount(c)
	assert.Equal(t, 4, m1)
	assert.Equal(t, 3, m2)
}
