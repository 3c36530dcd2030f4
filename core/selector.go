// File: selector.go
// Role: VertexSelector and EdgeSelector, lazy descriptions of "which
//       vertices/edges" resolved against a Graph on demand.
// Determinism:
//   - Materialize on an unmutated graph always yields the same sequence.
// Concurrency:
//   - Selectors never mutate a graph. A selector value is not safe for
//     concurrent Move/Close.
//
// A selector built with TransferMove retains the caller's vector: the vector
// is owned by the selector, closed with it, and never exposed again.

package core

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvalg/engine"
	"github.com/katalvlaran/lvalg/ownership"
)

// selector is the shared body of VertexSelector and EdgeSelector.
type selector[K ownership.Kind] struct {
	ref      ownership.Ref[K]
	retained ownership.Ref[ownership.VectorKind]
}

type resolveFn func(e *engine.Engine, sel, graph engine.Handle) ([]int, error)
type vectorFn func(e *engine.Engine, vec engine.Handle) (engine.Handle, error)

// Close destroys the selector if owned, then its retained vector.
// Safe to call repeatedly.
func (s *selector[K]) Close() error {
	err := s.ref.Close()
	if rerr := s.retained.Close(); rerr != nil {
		err = errors.Join(err, rerr)
	}
	return Translate("Close", err)
}

// Mode returns the ownership mode of the selector handle.
func (s *selector[K]) Mode() ownership.Mode { return s.ref.Mode() }

// Engine returns the engine holding the selector, nil when inert.
func (s *selector[K]) Engine() *engine.Engine { return s.ref.Engine() }

// Retains reports whether the selector owns a companion vector.
func (s *selector[K]) Retains() bool { return s.retained.Valid() }

func (s *selector[K]) move() selector[K] {
	return selector[K]{ref: s.ref.Move(), retained: s.retained.Move()}
}

func (s *selector[K]) resolve(op string, g *Graph, fn resolveFn) ([]int, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNilGraph)
	}
	if !s.ref.Valid() {
		return nil, errInert(op)
	}
	if err := g.Check(op); err != nil {
		return nil, err
	}
	if !g.sameEngine(s.ref.Engine()) {
		return nil, fmt.Errorf("%s: selector and graph live in different engines: %w", op, ErrIncompatibleGraph)
	}
	ids, err := fn(s.ref.Engine(), s.ref.Handle(), g.Handle())
	if err != nil {
		return nil, Translate(op, err)
	}
	return ids, nil
}

// clone deep-copies the selector. A retained vector is copied too and the
// copy aliases the new vector.
func (s *selector[K]) clone(op string, alias vectorFn) (selector[K], error) {
	if !s.ref.Valid() {
		return selector[K]{}, errInert(op)
	}
	if !s.retained.Valid() {
		r, err := ownership.Copy(&s.ref)
		if err != nil {
			return selector[K]{}, Translate(op, err)
		}
		return selector[K]{ref: r}, nil
	}
	vec, err := ownership.Copy(&s.retained)
	if err != nil {
		return selector[K]{}, Translate(op, err)
	}
	h, err := alias(vec.Engine(), vec.Handle())
	if err != nil {
		_ = vec.Close()
		return selector[K]{}, Translate(op, err)
	}
	return selector[K]{ref: ownership.Own[K](vec.Engine(), h), retained: vec}, nil
}

func fromVector[K ownership.Kind](op string, vec *idVector, transfer ownership.Transfer, alias, copyIDs vectorFn) (selector[K], error) {
	if vec == nil {
		return selector[K]{}, fmt.Errorf("%s: nil vector: %w", op, ErrInvalidRange)
	}
	if !vec.ref.Valid() {
		return selector[K]{}, errInert(op)
	}
	eng, vh := vec.ref.Engine(), vec.ref.Handle()

	var (
		h   engine.Handle
		err error
	)
	switch transfer {
	case ownership.TransferCopy:
		h, err = copyIDs(eng, vh)
	case ownership.TransferMove, ownership.TransferKeepOriginal:
		h, err = alias(eng, vh)
	default:
		return selector[K]{}, fmt.Errorf("%s: transfer %d: %w", op, transfer, ErrInvalidRange)
	}
	if err != nil {
		return selector[K]{}, Translate(op, err)
	}
	s := selector[K]{ref: ownership.Own[K](eng, h)}
	if transfer == ownership.TransferMove {
		s.retained = vec.ref.Move()
	}
	return s, nil
}

func newSelector[K ownership.Kind](op string, opts []SelectorOption, mk func(*engine.Engine) (engine.Handle, error)) (selector[K], error) {
	cfg := newSelectorConfig(opts...)
	h, err := mk(cfg.eng)
	if err != nil {
		return selector[K]{}, Translate(op, err)
	}
	return selector[K]{ref: ownership.Own[K](cfg.eng, h)}, nil
}

// ---- VertexSelector ----

// VertexSelector describes a set of vertices.
type VertexSelector struct {
	selector[ownership.VertexSelectorKind]
}

func wrapVS(s selector[ownership.VertexSelectorKind], err error) (*VertexSelector, error) {
	if err != nil {
		return nil, err
	}
	return &VertexSelector{s}, nil
}

// AllVertices selects every vertex. The handle is a borrowed engine static.
func AllVertices(opts ...SelectorOption) *VertexSelector {
	cfg := newSelectorConfig(opts...)
	return &VertexSelector{selector[ownership.VertexSelectorKind]{
		ref: ownership.Borrow[ownership.VertexSelectorKind](cfg.eng, cfg.eng.VSAll()),
	}}
}

// NoVertices selects nothing. The handle is a borrowed engine static.
func NoVertices(opts ...SelectorOption) *VertexSelector {
	cfg := newSelectorConfig(opts...)
	return &VertexSelector{selector[ownership.VertexSelectorKind]{
		ref: ownership.Borrow[ownership.VertexSelectorKind](cfg.eng, cfg.eng.VSNone()),
	}}
}

// SingleVertex selects vertex v. Negative v fails with ErrInvalidRange.
func SingleVertex(v int, opts ...SelectorOption) (*VertexSelector, error) {
	return wrapVS(newSelector[ownership.VertexSelectorKind](fmt.Sprintf("SingleVertex(%d)", v), opts,
		func(e *engine.Engine) (engine.Handle, error) { return e.VSSingle(v) }))
}

// VertexSeq selects the inclusive range [from, to]. from < 0 or from > to
// fails with ErrInvalidRange.
func VertexSeq(from, to int, opts ...SelectorOption) (*VertexSelector, error) {
	return wrapVS(newSelector[ownership.VertexSelectorKind](fmt.Sprintf("VertexSeq(%d,%d)", from, to), opts,
		func(e *engine.Engine) (engine.Handle, error) { return e.VSSeq(from, to) }))
}

// AdjacentVertices selects the neighbors of v under mode, ascending and unique.
func AdjacentVertices(v int, mode NeighborMode, opts ...SelectorOption) (*VertexSelector, error) {
	return wrapVS(newSelector[ownership.VertexSelectorKind](fmt.Sprintf("AdjacentVertices(%d)", v), opts,
		func(e *engine.Engine) (engine.Handle, error) { return e.VSAdj(v, mode) }))
}

// NonAdjacentVertices selects the vertices not adjacent to v under mode.
// v itself is included unless it carries a self-loop.
func NonAdjacentVertices(v int, mode NeighborMode, opts ...SelectorOption) (*VertexSelector, error) {
	return wrapVS(newSelector[ownership.VertexSelectorKind](fmt.Sprintf("NonAdjacentVertices(%d)", v), opts,
		func(e *engine.Engine) (engine.Handle, error) { return e.VSNonAdj(v, mode) }))
}

// VerticesFromVector selects the ids held by vec, in vector order:
//
//	TransferCopy          ids are copied; vec stays with the caller.
//	TransferMove          the selector takes vec over; vec becomes inert.
//	TransferKeepOriginal  the selector aliases vec; the caller keeps it alive.
func VerticesFromVector(vec *VertexVector, transfer ownership.Transfer) (*VertexSelector, error) {
	var iv *idVector
	if vec != nil {
		iv = &vec.idVector
	}
	return wrapVS(fromVector[ownership.VertexSelectorKind]("VerticesFromVector", iv, transfer,
		(*engine.Engine).VSVector, (*engine.Engine).VSVectorCopy))
}

// Size resolves the selector against g and returns the number of vertices.
// Ids outside g fail with ErrIncompatibleGraph.
func (s *VertexSelector) Size(g *Graph) (int, error) {
	if s == nil {
		return 0, fmt.Errorf("VertexSelector.Size: nil selector: %w", ErrInvalidRange)
	}
	n := 0
	_, err := s.resolve("VertexSelector.Size", g, func(e *engine.Engine, sh, gh engine.Handle) ([]int, error) {
		var err error
		n, err = e.VSSize(sh, gh)
		return nil, err
	})
	return n, err
}

// Materialize resolves the selector against g and returns the vertex ids.
func (s *VertexSelector) Materialize(g *Graph) ([]int, error) {
	if s == nil {
		return nil, fmt.Errorf("VertexSelector.Materialize: nil selector: %w", ErrInvalidRange)
	}
	return s.resolve("VertexSelector.Materialize", g, (*engine.Engine).VSAsVector)
}

// IsAll reports whether the selector matches every vertex.
func (s *VertexSelector) IsAll() bool {
	if s == nil || !s.ref.Valid() {
		return false
	}
	all, _ := s.ref.Engine().VSIsAll(s.ref.Handle())
	return all
}

// Type returns the selector shape, 0 when inert.
func (s *VertexSelector) Type() engine.SelectorType {
	if s == nil || !s.ref.Valid() {
		return 0
	}
	t, _ := s.ref.Engine().VSType(s.ref.Handle())
	return t
}

// Clone returns an independent, owned copy of s.
func (s *VertexSelector) Clone() (*VertexSelector, error) {
	return wrapVS(s.clone("VertexSelector.Clone", (*engine.Engine).VSVector))
}

// Move transfers s (and any retained vector) to a new value; s becomes inert.
func (s *VertexSelector) Move() *VertexSelector {
	return &VertexSelector{s.move()}
}

// ---- EdgeSelector ----

// EdgeSelector describes a set of edges.
type EdgeSelector struct {
	selector[ownership.EdgeSelectorKind]
}

func wrapES(s selector[ownership.EdgeSelectorKind], err error) (*EdgeSelector, error) {
	if err != nil {
		return nil, err
	}
	return &EdgeSelector{s}, nil
}

// AllEdges selects every edge. The handle is a borrowed engine static.
func AllEdges(opts ...SelectorOption) *EdgeSelector {
	cfg := newSelectorConfig(opts...)
	return &EdgeSelector{selector[ownership.EdgeSelectorKind]{
		ref: ownership.Borrow[ownership.EdgeSelectorKind](cfg.eng, cfg.eng.ESAll()),
	}}
}

// NoEdges selects nothing. The handle is a borrowed engine static.
func NoEdges(opts ...SelectorOption) *EdgeSelector {
	cfg := newSelectorConfig(opts...)
	return &EdgeSelector{selector[ownership.EdgeSelectorKind]{
		ref: ownership.Borrow[ownership.EdgeSelectorKind](cfg.eng, cfg.eng.ESNone()),
	}}
}

// SingleEdge selects edge eid.
func SingleEdge(eid int, opts ...SelectorOption) (*EdgeSelector, error) {
	return wrapES(newSelector[ownership.EdgeSelectorKind](fmt.Sprintf("SingleEdge(%d)", eid), opts,
		func(e *engine.Engine) (engine.Handle, error) { return e.ESSingle(eid) }))
}

// EdgeSeq selects the inclusive edge range [from, to].
func EdgeSeq(from, to int, opts ...SelectorOption) (*EdgeSelector, error) {
	return wrapES(newSelector[ownership.EdgeSelectorKind](fmt.Sprintf("EdgeSeq(%d,%d)", from, to), opts,
		func(e *engine.Engine) (engine.Handle, error) { return e.ESSeq(from, to) }))
}

// IncidentEdges selects the edges incident to v under mode, ascending.
func IncidentEdges(v int, mode NeighborMode, opts ...SelectorOption) (*EdgeSelector, error) {
	return wrapES(newSelector[ownership.EdgeSelectorKind](fmt.Sprintf("IncidentEdges(%d)", v), opts,
		func(e *engine.Engine) (engine.Handle, error) { return e.ESIncident(v, mode) }))
}

// NonIncidentEdges selects the edges not incident to v under mode.
func NonIncidentEdges(v int, mode NeighborMode, opts ...SelectorOption) (*EdgeSelector, error) {
	return wrapES(newSelector[ownership.EdgeSelectorKind](fmt.Sprintf("NonIncidentEdges(%d)", v), opts,
		func(e *engine.Engine) (engine.Handle, error) { return e.ESNonIncident(v, mode) }))
}

// EdgesBetween selects, for each consecutive vertex pair in pairs, the
// lowest-id edge joining it. A pair without an edge fails at resolution
// with ErrEdgeNotFound.
func EdgesBetween(pairs []int, directed bool, opts ...SelectorOption) (*EdgeSelector, error) {
	return wrapES(newSelector[ownership.EdgeSelectorKind](fmt.Sprintf("EdgesBetween(n=%d)", len(pairs)/2), opts,
		func(e *engine.Engine) (engine.Handle, error) { return e.ESPairs(pairs, directed) }))
}

// EdgesFromVector selects the edge ids held by vec; see VerticesFromVector
// for the transfer policies.
func EdgesFromVector(vec *EdgeVector, transfer ownership.Transfer) (*EdgeSelector, error) {
	var iv *idVector
	if vec != nil {
		iv = &vec.idVector
	}
	return wrapES(fromVector[ownership.EdgeSelectorKind]("EdgesFromVector", iv, transfer,
		(*engine.Engine).ESVector, (*engine.Engine).ESVectorCopy))
}

// Size resolves the selector against g and returns the number of edges.
func (s *EdgeSelector) Size(g *Graph) (int, error) {
	if s == nil {
		return 0, fmt.Errorf("EdgeSelector.Size: nil selector: %w", ErrInvalidRange)
	}
	n := 0
	_, err := s.resolve("EdgeSelector.Size", g, func(e *engine.Engine, sh, gh engine.Handle) ([]int, error) {
		var err error
		n, err = e.ESSize(sh, gh)
		return nil, err
	})
	return n, err
}

// Materialize resolves the selector against g and returns the edge ids.
func (s *EdgeSelector) Materialize(g *Graph) ([]int, error) {
	if s == nil {
		return nil, fmt.Errorf("EdgeSelector.Materialize: nil selector: %w", ErrInvalidRange)
	}
	return s.resolve("EdgeSelector.Materialize", g, (*engine.Engine).ESAsVector)
}

// IsAll reports whether the selector matches every edge.
func (s *EdgeSelector) IsAll() bool {
	if s == nil || !s.ref.Valid() {
		return false
	}
	all, _ := s.ref.Engine().ESIsAll(s.ref.Handle())
	return all
}

// Type returns the selector shape, 0 when inert.
func (s *EdgeSelector) Type() engine.SelectorType {
	if s == nil || !s.ref.Valid() {
		return 0
	}
	t, _ := s.ref.Engine().ESType(s.ref.Handle())
	return t
}

// Clone returns an independent, owned copy of s.
func (s *EdgeSelector) Clone() (*EdgeSelector, error) {
	return wrapES(s.clone("EdgeSelector.Clone", (*engine.Engine).ESVector))
}

// Move transfers s (and any retained vector) to a new value; s becomes inert.
func (s *EdgeSelector) Move() *EdgeSelector {
	return &EdgeSelector{s.move()}
}
