package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalg/engine"
)

func TestVSSeq_ResolvesAgainstGraph(t *testing.T) {
	e := engine.New()
	six, _ := e.GraphInit(6, false)
	three, _ := e.GraphInit(3, false)

	s, err := e.VSSeq(2, 4)
	require.NoError(t, err)

	n, err := e.VSSize(s, six)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = e.VSSize(s, three)
	assert.ErrorIs(t, err, engine.ErrInvalidVertex)

	_, err = e.VSSeq(4, 2)
	assert.ErrorIs(t, err, engine.ErrInvalidValue)
	_, err = e.VSSeq(-1, 2)
	assert.ErrorIs(t, err, engine.ErrInvalidValue)
}

func TestVSAdj_NonAdj(t *testing.T) {
	e := engine.New()
	// 0-1, 0-1, 0-3, 2-2
	g, err := e.GraphCreate(5, false, []int{0, 1, 0, 1, 0, 3, 2, 2})
	require.NoError(t, err)

	adj, _ := e.VSAdj(0, engine.All)
	ids, err := e.VSAsVector(adj, g)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, ids)

	non, _ := e.VSNonAdj(0, engine.All)
	ids, err = e.VSAsVector(non, g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4}, ids)

	loopNon, _ := e.VSNonAdj(2, engine.All)
	ids, err = e.VSAsVector(loopNon, g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 4}, ids)
}

func TestVSVector_AliasAndCopy(t *testing.T) {
	e := engine.New()
	g, _ := e.GraphInit(4, false)
	vec, err := e.VectorInit([]int{3, 1})
	require.NoError(t, err)

	alias, err := e.VSVector(vec)
	require.NoError(t, err)
	cp, err := e.VSVectorCopy(vec)
	require.NoError(t, err)

	require.NoError(t, e.VectorAppend(vec, 2))
	a, _ := e.VSAsVector(alias, g)
	c, _ := e.VSAsVector(cp, g)
	assert.Equal(t, []int{3, 1, 2}, a)
	assert.Equal(t, []int{3, 1}, c)

	require.NoError(t, e.VectorDestroy(vec))
	_, err = e.VSAsVector(alias, g)
	assert.ErrorIs(t, err, engine.ErrInvalidHandle)
	_, err = e.VSAsVector(cp, g)
	assert.NoError(t, err)

	typ, _ := e.VSType(alias)
	assert.Equal(t, engine.SelectVector, typ)
}

func TestVSAll_StaticAndCopy(t *testing.T) {
	e := engine.New()
	g, _ := e.GraphInit(3, false)

	all, err := e.VSAsVector(e.VSAll(), g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, all)

	none, err := e.VSAsVector(e.VSNone(), g)
	require.NoError(t, err)
	assert.Empty(t, none)

	c, err := e.VSCopy(e.VSAll())
	require.NoError(t, err)
	isAll, _ := e.VSIsAll(c)
	assert.True(t, isAll)
	require.NoError(t, e.VSDestroy(c))
}

func TestESIncidentAndPairs(t *testing.T) {
	e := engine.New()
	g, err := e.GraphCreate(4, false, []int{0, 1, 1, 2, 2, 3, 3, 0})
	require.NoError(t, err)

	inc, _ := e.ESIncident(1, engine.All)
	ids, err := e.ESAsVector(inc, g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, ids)

	non, _ := e.ESNonIncident(1, engine.All)
	ids, err = e.ESAsVector(non, g)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, ids)

	pairs, err := e.ESPairs([]int{2, 1, 0, 3}, false)
	require.NoError(t, err)
	ids, err = e.ESAsVector(pairs, g)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, ids)

	missing, _ := e.ESPairs([]int{0, 2}, false)
	_, err = e.ESSize(missing, g)
	assert.ErrorIs(t, err, engine.ErrNotFound)

	_, err = e.ESPairs([]int{0}, false)
	assert.ErrorIs(t, err, engine.ErrInvalidValue)
}

func TestESSeq_OutOfRange(t *testing.T) {
	e := engine.New()
	g, _ := e.GraphCreate(3, false, []int{0, 1})
	s, _ := e.ESSeq(0, 1)
	_, err := e.ESSize(s, g)
	assert.ErrorIs(t, err, engine.ErrInvalidEdge)
}

func TestAdjList(t *testing.T) {
	e := engine.New()
	g, err := e.GraphCreate(3, false, []int{0, 2, 0, 1, 0, 1, 1, 1})
	require.NoError(t, err)

	a, err := e.AdjListInit(g, engine.All)
	require.NoError(t, err)
	row, _ := e.AdjListRow(a, 0)
	assert.Equal(t, []int{1, 1, 2}, row)

	require.NoError(t, e.AdjListSimplify(a))
	row, _ = e.AdjListRow(a, 1)
	assert.Equal(t, []int{0}, row)

	size, _ := e.AdjListSize(a)
	assert.Equal(t, 3, size)
	_, err = e.AdjListRow(a, 3)
	assert.ErrorIs(t, err, engine.ErrInvalidVertex)

	c, err := e.AdjListComplementer(g, engine.All, engine.NoSelfLoops)
	require.NoError(t, err)
	row, _ = e.AdjListRow(c, 2)
	assert.Equal(t, []int{1}, row)
	row, _ = e.AdjListRow(c, 1)
	assert.Equal(t, []int{2}, row)

	withLoops, _ := e.AdjListComplementer(g, engine.All, engine.ContainSelfLoops)
	row, _ = e.AdjListRow(withLoops, 2)
	assert.Equal(t, []int{1, 2}, row)
	row, _ = e.AdjListRow(withLoops, 1)
	assert.Equal(t, []int{2}, row)

	// snapshot survives the graph
	require.NoError(t, e.GraphDestroy(g))
	row, err = e.AdjListRow(a, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, row)
}
