// SPDX-License-Identifier: MIT
package engine_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalg/engine"
)

func TestEngine_HandlesAreNeverReused(t *testing.T) {
	e := engine.New()
	h1, err := e.GraphInit(3, false)
	require.NoError(t, err)
	require.NoError(t, e.GraphDestroy(h1))

	h2, err := e.GraphInit(3, false)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)

	// stale handle stays invalid
	_, err = e.VCount(h1)
	assert.ErrorIs(t, err, engine.ErrInvalidHandle)
	assert.ErrorIs(t, e.GraphDestroy(h1), engine.ErrInvalidHandle)
}

func TestEngine_KindMismatch(t *testing.T) {
	e := engine.New()
	v, err := e.VectorInit([]int{1, 2})
	require.NoError(t, err)

	_, err = e.VCount(v)
	assert.ErrorIs(t, err, engine.ErrKindMismatch)
	assert.Equal(t, engine.CodeKindMismatch, engine.CodeOf(err))
	assert.ErrorIs(t, e.GraphDestroy(v), engine.ErrKindMismatch)
	require.NoError(t, e.VectorDestroy(v))
}

func TestEngine_NilHandle(t *testing.T) {
	e := engine.New()
	_, err := e.ECount(engine.NilHandle)
	assert.ErrorIs(t, err, engine.ErrInvalidHandle)
}

func TestEngine_StaticSelectorsCannotBeDestroyed(t *testing.T) {
	e := engine.New()
	assert.ErrorIs(t, e.VSDestroy(e.VSAll()), engine.ErrInvalidHandle)
	assert.ErrorIs(t, e.ESDestroy(e.ESNone()), engine.ErrInvalidHandle)
	assert.True(t, e.IsLive(e.VSAll()))
	assert.Equal(t, 0, e.Live())
}

func TestEngine_AllocLimit(t *testing.T) {
	e := engine.New(engine.WithAllocLimit(1))
	h, err := e.GraphInit(2, false)
	require.NoError(t, err)

	_, err = e.GraphCopy(h)
	require.Error(t, err)
	assert.True(t, errors.Is(err, engine.ErrNoMemory))
	assert.Equal(t, 1, e.Live())

	e.SetAllocLimit(engine.Unlimited)
	c, err := e.GraphCopy(h)
	require.NoError(t, err)
	require.NoError(t, e.GraphDestroy(c))
	require.NoError(t, e.GraphDestroy(h))
}

func TestEngine_ObserverAndStats(t *testing.T) {
	var events []engine.Event
	e := engine.New(engine.WithObserver(func(ev engine.Event) { events = append(events, ev) }))

	h, err := e.GraphInit(1, true)
	require.NoError(t, err)
	c, err := e.GraphCopy(h)
	require.NoError(t, err)
	require.NoError(t, e.GraphDestroy(h))
	require.NoError(t, e.GraphDestroy(c))

	require.Len(t, events, 4)
	assert.Equal(t, engine.EventInit, events[0].Op)
	assert.Equal(t, engine.EventCopy, events[1].Op)
	assert.Equal(t, h, events[1].Source)
	assert.Equal(t, engine.EventDestroy, events[2].Op)
	assert.Equal(t, engine.KindGraph, events[3].Kind)

	s := e.Stats()
	assert.EqualValues(t, 2, s.Allocated)
	assert.EqualValues(t, 1, s.Copied)
	assert.EqualValues(t, 2, s.Destroyed)
	assert.Equal(t, 0, s.Live[engine.KindGraph])
}

func TestEngine_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { engine.WithAllocLimit(-2) })
	assert.Panics(t, func() { engine.WithObserver(nil) })
}

func TestEngine_DefaultIsShared(t *testing.T) {
	assert.Same(t, engine.Default(), engine.Default())
	assert.NotEqual(t, engine.New().ID(), engine.New().ID())
}

func TestError_Format(t *testing.T) {
	e := engine.New()
	_, err := e.GraphInit(-1, false)
	require.Error(t, err)
	assert.Equal(t, "engine: GraphInit: invalid value: negative vertex count -1", err.Error())
	assert.Equal(t, "engine: not found", engine.ErrNotFound.Error())
}
