// SPDX-License-Identifier: MIT
package ownership_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvalg/engine"
	"github.com/katalvlaran/lvalg/ownership"
)

type RefSuite struct {
	suite.Suite
	eng       *engine.Engine
	destroyed map[engine.Handle]int
}

func (s *RefSuite) SetupTest() {
	s.destroyed = map[engine.Handle]int{}
	s.eng = engine.New(engine.WithObserver(func(ev engine.Event) {
		if ev.Op == engine.EventDestroy {
			s.destroyed[ev.Handle]++
		}
	}))
}

// TearDownTest checks that every test leaves no live handle and destroyed each handle at most once.
func (s *RefSuite) TearDownTest() {
	s.Equal(0, s.eng.Live(), "leaked handles")
	for h, n := range s.destroyed {
		s.Equal(1, n, "handle %d destroyed %d times", h, n)
	}
}

func (s *RefSuite) newGraph() engine.Handle {
	h, err := s.eng.GraphInit(3, false)
	s.Require().NoError(err)
	return h
}

func (s *RefSuite) TestOwnCloseDestroysOnce() {
	h := s.newGraph()
	r := ownership.Own[ownership.GraphKind](s.eng, h)
	s.Equal(ownership.Owned, r.Mode())
	s.True(r.Owns())

	s.NoError(r.Close())
	s.NoError(r.Close())
	s.Equal(ownership.Inert, r.Mode())
	s.Equal(engine.NilHandle, r.Handle())
	s.Equal(1, s.destroyed[h])
}

func (s *RefSuite) TestMoveLeavesSourceInert() {
	h := s.newGraph()
	src := ownership.Own[ownership.GraphKind](s.eng, h)
	dst := src.Move()

	s.Equal(ownership.Inert, src.Mode())
	s.Equal(engine.NilHandle, src.Handle())
	s.Equal(ownership.Moved, dst.Mode())
	s.Equal(h, dst.Handle())

	s.NoError(src.Close())
	s.Equal(0, s.destroyed[h])
	s.NoError(dst.Close())
	s.Equal(1, s.destroyed[h])

	// moving an inert ref yields an inert ref
	again := src.Move()
	s.False(again.Valid())
}

func (s *RefSuite) TestBorrowNeverDestroys() {
	h := s.newGraph()
	owner := ownership.Own[ownership.GraphKind](s.eng, h)
	b := ownership.Borrow[ownership.GraphKind](s.eng, h)
	s.Equal(ownership.Borrowed, b.Mode())
	s.False(b.Owns())

	moved := b.Move()
	s.Equal(ownership.Borrowed, moved.Mode())
	s.NoError(moved.Close())
	s.True(s.eng.IsLive(h))

	s.NoError(owner.Close())
	s.False(s.eng.IsLive(h))
}

func (s *RefSuite) TestCopyIsIndependent() {
	h := s.newGraph()
	src := ownership.Own[ownership.GraphKind](s.eng, h)
	cp, err := ownership.Copy(&src)
	s.Require().NoError(err)
	s.Equal(ownership.Copied, cp.Mode())
	s.NotEqual(h, cp.Handle())

	s.NoError(src.Close())
	n, err := s.eng.VCount(cp.Handle())
	s.NoError(err)
	s.Equal(3, n)
	s.NoError(cp.Close())
}

func (s *RefSuite) TestCopyFailureLeaksNothing() {
	h := s.newGraph()
	src := ownership.Own[ownership.GraphKind](s.eng, h)
	s.eng.SetAllocLimit(0)

	cp, err := ownership.Copy(&src)
	s.ErrorIs(err, engine.ErrNoMemory)
	s.False(cp.Valid())
	s.Equal(1, s.eng.Live())

	s.eng.SetAllocLimit(engine.Unlimited)
	s.NoError(src.Close())
}

func (s *RefSuite) TestCopyOfInert() {
	var r ownership.Ref[ownership.VectorKind]
	_, err := ownership.Copy(&r)
	s.ErrorIs(err, ownership.ErrInert)
	s.ErrorIs(r.Check(), ownership.ErrInert)
}

func (s *RefSuite) TestReleaseDisclaims() {
	h := s.newGraph()
	r := ownership.Own[ownership.GraphKind](s.eng, h)
	got := r.Release()
	s.Equal(h, got)
	s.NoError(r.Close())
	s.True(s.eng.IsLive(h))
	s.NoError(s.eng.GraphDestroy(h))
}

func (s *RefSuite) TestCloseReportsEngineFailure() {
	h := s.newGraph()
	r := ownership.Own[ownership.GraphKind](s.eng, h)
	s.NoError(s.eng.GraphDestroy(h))

	err := r.Close()
	s.ErrorIs(err, engine.ErrInvalidHandle)
	s.False(r.Valid())
}

func (s *RefSuite) TestEveryKind() {
	vec, err := s.eng.VectorInit([]int{0})
	s.Require().NoError(err)
	vs, err := s.eng.VSSingle(0)
	s.Require().NoError(err)
	es, err := s.eng.ESSeq(0, 0)
	s.Require().NoError(err)
	g := s.newGraph()
	al, err := s.eng.AdjListInit(g, engine.All)
	s.Require().NoError(err)

	rv := ownership.Own[ownership.VectorKind](s.eng, vec)
	rvs := ownership.Own[ownership.VertexSelectorKind](s.eng, vs)
	res := ownership.Own[ownership.EdgeSelectorKind](s.eng, es)
	ral := ownership.Own[ownership.AdjListKind](s.eng, al)
	rg := ownership.Own[ownership.GraphKind](s.eng, g)

	for _, c := range []interface{ Close() error }{&rv, &rvs, &res, &ral, &rg} {
		s.NoError(c.Close())
	}
}

func TestRefSuite(t *testing.T) {
	suite.Run(t, new(RefSuite))
}

func TestZeroRefIsInert(t *testing.T) {
	var r ownership.Ref[ownership.GraphKind]
	assert.Equal(t, ownership.Inert, r.Mode())
	require.NoError(t, r.Close())
	assert.Nil(t, r.Engine())
	assert.Equal(t, "inert", r.Mode().String())
	assert.Equal(t, "keep-original", ownership.TransferKeepOriginal.String())
}

func TestOwnNilEnginePanics(t *testing.T) {
	assert.Panics(t, func() { ownership.Own[ownership.GraphKind](nil, 1) })
}
