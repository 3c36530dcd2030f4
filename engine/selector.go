// File: selector.go
// Role: Vertex and edge selector primitives. A selector is a declarative
//       description that is resolved against a graph only when queried.
// Determinism:
//   - Resolution order: All/Seq ascending; Adj/NonAdj ascending unique ids;
//     Vector keeps the vector order; Pairs follows the pair order.
// Concurrency:
//   - Serialized by the engine mutex.

package engine

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// SelectorType identifies the shape of a selector.
type SelectorType uint8

const (
	SelectAll SelectorType = iota + 1
	SelectNone
	SelectSingle
	SelectSeq
	SelectAdj
	SelectNonAdj
	SelectVector
	SelectPairs
)

// String returns the selector type name.
func (t SelectorType) String() string {
	switch t {
	case SelectAll:
		return "all"
	case SelectNone:
		return "none"
	case SelectSingle:
		return "single"
	case SelectSeq:
		return "seq"
	case SelectAdj:
		return "adj"
	case SelectNonAdj:
		return "nonadj"
	case SelectVector:
		return "vector"
	case SelectPairs:
		return "pairs"
	}
	return "invalid"
}

type selectorData struct {
	typ      SelectorType
	id       int
	from, to int
	mode     Mode
	directed bool
	vec      Handle // aliased vector, SelectVector only; NilHandle when ids is used
	ids      []int  // own copy for SelectVector (copy variant) and SelectPairs
}

func (s *selectorData) clone() *selectorData {
	c := *s
	c.ids = append([]int(nil), s.ids...)
	return &c
}

// ---- vertex selectors ----

// VSAll returns the static selector matching every vertex. It must not be destroyed.
func (e *Engine) VSAll() Handle { return e.vsAll }

// VSNone returns the static empty vertex selector. It must not be destroyed.
func (e *Engine) VSNone() Handle { return e.vsNone }

// VSSingle selects vertex v.
func (e *Engine) VSSingle(v int) (Handle, error) {
	return e.newSingle("VSSingle", KindVertexSelector, v)
}

// VSSeq selects the inclusive vertex range [from, to].
func (e *Engine) VSSeq(from, to int) (Handle, error) {
	return e.newSeq("VSSeq", KindVertexSelector, from, to)
}

// VSAdj selects the vertices adjacent to v under mode.
func (e *Engine) VSAdj(v int, mode Mode) (Handle, error) {
	return e.newAdj("VSAdj", KindVertexSelector, SelectAdj, v, mode)
}

// VSNonAdj selects the vertices not adjacent to v under mode. v itself is
// selected unless it carries a self-loop.
func (e *Engine) VSNonAdj(v int, mode Mode) (Handle, error) {
	return e.newAdj("VSNonAdj", KindVertexSelector, SelectNonAdj, v, mode)
}

// VSVector selects the ids held by vector vec without copying them. vec must
// stay alive for as long as the selector is resolved.
func (e *Engine) VSVector(vec Handle) (Handle, error) {
	return e.newVector("VSVector", KindVertexSelector, vec, false)
}

// VSVectorCopy selects a private copy of the ids held by vector vec.
func (e *Engine) VSVectorCopy(vec Handle) (Handle, error) {
	return e.newVector("VSVectorCopy", KindVertexSelector, vec, true)
}

// VSCopy allocates an independent copy of the vertex selector h. An aliasing
// selector's copy aliases the same vector.
func (e *Engine) VSCopy(h Handle) (Handle, error) {
	return e.copySelector("VSCopy", KindVertexSelector, h)
}

// VSDestroy releases the vertex selector h.
func (e *Engine) VSDestroy(h Handle) error {
	return e.destroy("VSDestroy", h, KindVertexSelector)
}

// VSType returns the selector type of h.
func (e *Engine) VSType(h Handle) (SelectorType, error) {
	return e.selectorType("VSType", KindVertexSelector, h)
}

// VSIsAll reports whether h selects every vertex.
func (e *Engine) VSIsAll(h Handle) (bool, error) {
	t, err := e.selectorType("VSIsAll", KindVertexSelector, h)
	return t == SelectAll, err
}

// VSSize resolves h against graph g and returns the number of selected vertices.
func (e *Engine) VSSize(h, g Handle) (int, error) {
	ids, err := e.resolve("VSSize", KindVertexSelector, h, g)
	return len(ids), err
}

// VSAsVector resolves h against graph g and returns the selected vertex ids.
func (e *Engine) VSAsVector(h, g Handle) ([]int, error) {
	return e.resolve("VSAsVector", KindVertexSelector, h, g)
}

// ---- edge selectors ----

// ESAll returns the static selector matching every edge. It must not be destroyed.
func (e *Engine) ESAll() Handle { return e.esAll }

// ESNone returns the static empty edge selector. It must not be destroyed.
func (e *Engine) ESNone() Handle { return e.esNone }

// ESSingle selects edge eid.
func (e *Engine) ESSingle(eid int) (Handle, error) {
	return e.newSingle("ESSingle", KindEdgeSelector, eid)
}

// ESSeq selects the inclusive edge range [from, to].
func (e *Engine) ESSeq(from, to int) (Handle, error) {
	return e.newSeq("ESSeq", KindEdgeSelector, from, to)
}

// ESIncident selects the edges incident to v under mode.
func (e *Engine) ESIncident(v int, mode Mode) (Handle, error) {
	return e.newAdj("ESIncident", KindEdgeSelector, SelectAdj, v, mode)
}

// ESNonIncident selects the edges not incident to v under mode.
func (e *Engine) ESNonIncident(v int, mode Mode) (Handle, error) {
	return e.newAdj("ESNonIncident", KindEdgeSelector, SelectNonAdj, v, mode)
}

// ESVector selects the edge ids held by vector vec without copying them.
func (e *Engine) ESVector(vec Handle) (Handle, error) {
	return e.newVector("ESVector", KindEdgeSelector, vec, false)
}

// ESVectorCopy selects a private copy of the edge ids held by vector vec.
func (e *Engine) ESVectorCopy(vec Handle) (Handle, error) {
	return e.newVector("ESVectorCopy", KindEdgeSelector, vec, true)
}

// ESPairs selects, for each consecutive vertex pair, the smallest edge id
// joining it. Resolution fails with ErrNotFound if a pair has no edge.
func (e *Engine) ESPairs(pairs []int, directed bool) (Handle, error) {
	const op = "ESPairs"
	if len(pairs)%2 != 0 {
		return NilHandle, errorf(CodeInvalidValue, op, "odd pair list length %d", len(pairs))
	}
	for _, v := range pairs {
		if v < 0 {
			return NilHandle, errorf(CodeInvalidValue, op, "negative vertex %d", v)
		}
	}
	return e.alloc(op, KindEdgeSelector, &selectorData{
		typ:      SelectPairs,
		directed: directed,
		ids:      append([]int(nil), pairs...),
	})
}

// ESCopy allocates an independent copy of the edge selector h.
func (e *Engine) ESCopy(h Handle) (Handle, error) {
	return e.copySelector("ESCopy", KindEdgeSelector, h)
}

// ESDestroy releases the edge selector h.
func (e *Engine) ESDestroy(h Handle) error {
	return e.destroy("ESDestroy", h, KindEdgeSelector)
}

// ESType returns the selector type of h.
func (e *Engine) ESType(h Handle) (SelectorType, error) {
	return e.selectorType("ESType", KindEdgeSelector, h)
}

// ESIsAll reports whether h selects every edge.
func (e *Engine) ESIsAll(h Handle) (bool, error) {
	t, err := e.selectorType("ESIsAll", KindEdgeSelector, h)
	return t == SelectAll, err
}

// ESSize resolves h against graph g and returns the number of selected edges.
func (e *Engine) ESSize(h, g Handle) (int, error) {
	ids, err := e.resolve("ESSize", KindEdgeSelector, h, g)
	return len(ids), err
}

// ESAsVector resolves h against graph g and returns the selected edge ids.
func (e *Engine) ESAsVector(h, g Handle) ([]int, error) {
	return e.resolve("ESAsVector", KindEdgeSelector, h, g)
}

// ---- shared construction ----

func (e *Engine) newSingle(op string, kind Kind, id int) (Handle, error) {
	if id < 0 {
		return NilHandle, errorf(CodeInvalidValue, op, "negative id %d", id)
	}
	return e.alloc(op, kind, &selectorData{typ: SelectSingle, id: id})
}

func (e *Engine) newSeq(op string, kind Kind, from, to int) (Handle, error) {
	if from < 0 || from > to {
		return NilHandle, errorf(CodeInvalidValue, op, "bad range [%d,%d]", from, to)
	}
	return e.alloc(op, kind, &selectorData{typ: SelectSeq, from: from, to: to})
}

func (e *Engine) newAdj(op string, kind Kind, typ SelectorType, v int, mode Mode) (Handle, error) {
	if err := checkMode(op, mode); err != nil {
		return NilHandle, err
	}
	if v < 0 {
		return NilHandle, errorf(CodeInvalidValue, op, "negative vertex %d", v)
	}
	return e.alloc(op, kind, &selectorData{typ: typ, id: v, mode: mode})
}

func (e *Engine) newVector(op string, kind Kind, vec Handle, copyIDs bool) (Handle, error) {
	e.mu.Lock()
	v, err := e.vectorLocked(op, vec)
	if err != nil {
		e.mu.Unlock()
		return NilHandle, err
	}
	sd := &selectorData{typ: SelectVector}
	if copyIDs {
		sd.ids = append([]int(nil), v.ids...)
	} else {
		sd.vec = vec
	}
	h, err := e.insertLocked(op, kind, sd)
	e.mu.Unlock()
	if err != nil {
		return NilHandle, err
	}
	e.emit(Event{Op: EventInit, Kind: kind, Handle: h})
	return h, nil
}

func (e *Engine) copySelector(op string, kind Kind, h Handle) (Handle, error) {
	return e.copyOf(op, h, kind, func(d interface{}) interface{} {
		return d.(*selectorData).clone()
	})
}

func (e *Engine) selectorType(op string, kind Kind, h Handle) (SelectorType, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	en, err := e.lookupLocked(op, h, kind)
	if err != nil {
		return 0, err
	}
	return en.data.(*selectorData).typ, nil
}

// ---- resolution ----

// resolve materializes selector h against graph gh.
func (e *Engine) resolve(op string, kind Kind, h, gh Handle) ([]int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	en, err := e.lookupLocked(op, h, kind)
	if err != nil {
		return nil, err
	}
	g, err := e.graphLocked(op, gh)
	if err != nil {
		return nil, err
	}
	s := en.data.(*selectorData)

	limit, check := g.n, g.checkVertex
	if kind == KindEdgeSelector {
		limit, check = len(g.from), g.checkEdge
	}

	switch s.typ {
	case SelectAll:
		return seq(0, limit-1), nil
	case SelectNone:
		return []int{}, nil
	case SelectSingle:
		if err := check(op, s.id); err != nil {
			return nil, err
		}
		return []int{s.id}, nil
	case SelectSeq:
		if err := check(op, s.to); err != nil {
			return nil, err
		}
		return seq(s.from, s.to), nil
	case SelectAdj, SelectNonAdj:
		if err := g.checkVertex(op, s.id); err != nil {
			return nil, err
		}
		return resolveAdjacency(g, kind, s), nil
	case SelectVector:
		ids := s.ids
		if s.vec != NilHandle {
			v, err := e.vectorLocked(op, s.vec)
			if err != nil {
				return nil, err
			}
			ids = v.ids
		}
		for _, id := range ids {
			if err := check(op, id); err != nil {
				return nil, err
			}
		}
		return append([]int{}, ids...), nil
	case SelectPairs:
		return resolvePairs(op, g, s)
	}
	return nil, errorf(CodeInternal, op, "unknown selector type %d", s.typ)
}

func resolveAdjacency(g *graphData, kind Kind, s *selectorData) []int {
	inc := g.incidences(s.id, s.mode)
	hit := roaring.New()
	loop := false
	for _, x := range inc {
		if kind == KindEdgeSelector {
			hit.Add(uint32(x.eid))
		} else {
			hit.Add(uint32(x.nb))
		}
		if x.nb == s.id {
			loop = true
		}
	}
	if s.typ == SelectAdj {
		return toInts(hit)
	}
	limit := g.n
	if kind == KindEdgeSelector {
		limit = len(g.from)
	}
	miss := roaring.New()
	miss.AddRange(0, uint64(limit))
	miss.AndNot(hit)
	if kind == KindVertexSelector && loop {
		miss.Remove(uint32(s.id))
	}
	return toInts(miss)
}

func resolvePairs(op string, g *graphData, s *selectorData) ([]int, error) {
	exact := g.directed && s.directed
	out := make([]int, 0, len(s.ids)/2)
	for i := 0; i+1 < len(s.ids); i += 2 {
		u, v := s.ids[i], s.ids[i+1]
		if err := g.checkVertex(op, u); err != nil {
			return nil, err
		}
		if err := g.checkVertex(op, v); err != nil {
			return nil, err
		}
		found := -1
		for eid := range g.from {
			f, t := g.from[eid], g.to[eid]
			if (f == u && t == v) || (!exact && f == v && t == u) {
				found = eid
				break
			}
		}
		if found < 0 {
			return nil, errorf(CodeNotFound, op, "no edge %d-%d", u, v)
		}
		out = append(out, found)
	}
	return out, nil
}

func seq(from, to int) []int {
	if to < from {
		return []int{}
	}
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

func toInts(b *roaring.Bitmap) []int {
	out := make([]int, 0, b.GetCardinality())
	it := b.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}
