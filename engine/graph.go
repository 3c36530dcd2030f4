// File: graph.go
// Role: Graph primitives: init/create/copy/destroy, queries by value, mutations.
// Determinism:
//   - Edge ids follow insertion order; deletions compact ids preserving order.
//   - Neighbor and incidence lists are ordered by neighbor id, then edge id.
// Concurrency:
//   - Serialized by the engine mutex.

package engine

import (
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
)

// Mode selects which incidences of a vertex are reported in directed graphs.
type Mode uint8

const (
	Out Mode = 1
	In  Mode = 2
	All Mode = Out | In
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Out:
		return "out"
	case In:
		return "in"
	case All:
		return "all"
	}
	return "invalid"
}

// SelfLoops chooses whether self-loops take part in degree counts and complements.
type SelfLoops bool

const (
	NoSelfLoops      SelfLoops = false
	ContainSelfLoops SelfLoops = true
)

// MaxVertices bounds the vertex count of a graph, so every vertex id fits in
// 32 bits. MaxEdges bounds the edge count the same way.
const (
	MaxVertices int64 = 1 << 32
	MaxEdges    int64 = 1 << 32
)

// exceeds reports whether have+add would pass limit.
func exceeds(have, add int, limit int64) bool {
	return int64(add) > limit-int64(have)
}

type graphData struct {
	directed bool
	n        int
	from     []int
	to       []int
}

func (g *graphData) clone() *graphData {
	return &graphData{
		directed: g.directed,
		n:        g.n,
		from:     append([]int(nil), g.from...),
		to:       append([]int(nil), g.to...),
	}
}

func (g *graphData) checkVertex(op string, v int) error {
	if v < 0 || v >= g.n {
		return errorf(CodeInvalidVertex, op, "vertex %d outside [0,%d)", v, g.n)
	}
	return nil
}

func (g *graphData) checkEdge(op string, eid int) error {
	if eid < 0 || eid >= len(g.from) {
		return errorf(CodeInvalidEdge, op, "edge %d outside [0,%d)", eid, len(g.from))
	}
	return nil
}

func checkMode(op string, m Mode) error {
	if m != Out && m != In && m != All {
		return errorf(CodeInvalidMode, op, "mode %d", uint8(m))
	}
	return nil
}

// incidence is one (neighbor, edge) entry of a vertex.
type incidence struct {
	nb  int
	eid int
}

// incidences lists the incidences of v under mode, ordered by neighbor then edge id.
func (g *graphData) incidences(v int, mode Mode) []incidence {
	var out []incidence
	for eid := range g.from {
		f, t := g.from[eid], g.to[eid]
		if !g.directed {
			if f == v {
				out = append(out, incidence{nb: t, eid: eid})
			}
			if t == v {
				out = append(out, incidence{nb: f, eid: eid})
			}
			continue
		}
		if mode&Out != 0 && f == v {
			out = append(out, incidence{nb: t, eid: eid})
		}
		if mode&In != 0 && t == v {
			out = append(out, incidence{nb: f, eid: eid})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].nb != out[j].nb {
			return out[i].nb < out[j].nb
		}
		return out[i].eid < out[j].eid
	})
	return out
}

func (e *Engine) graphLocked(op string, h Handle) (*graphData, error) {
	en, err := e.lookupLocked(op, h, KindGraph)
	if err != nil {
		return nil, err
	}
	return en.data.(*graphData), nil
}

// withGraph runs fn on the graph payload under the engine lock.
func (e *Engine) withGraph(op string, h Handle, fn func(*graphData) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	g, err := e.graphLocked(op, h)
	if err != nil {
		return err
	}
	return fn(g)
}

// GraphInit allocates an edgeless graph with n vertices.
func (e *Engine) GraphInit(n int, directed bool) (Handle, error) {
	if n < 0 {
		return NilHandle, errorf(CodeInvalidValue, "GraphInit", "negative vertex count %d", n)
	}
	if exceeds(0, n, MaxVertices) {
		return NilHandle, errorf(CodeInvalidValue, "GraphInit", "vertex count %d exceeds %d", n, MaxVertices)
	}
	return e.alloc("GraphInit", KindGraph, &graphData{directed: directed, n: n})
}

// GraphCreate allocates a graph from a flat endpoint list (from0, to0, from1, to1, ...).
// The vertex count is max(n, largest id + 1).
func (e *Engine) GraphCreate(n int, directed bool, endpoints []int) (Handle, error) {
	const op = "GraphCreate"
	if n < 0 {
		return NilHandle, errorf(CodeInvalidValue, op, "negative vertex count %d", n)
	}
	if exceeds(0, n, MaxVertices) {
		return NilHandle, errorf(CodeInvalidValue, op, "vertex count %d exceeds %d", n, MaxVertices)
	}
	if len(endpoints)%2 != 0 {
		return NilHandle, errorf(CodeInvalidValue, op, "odd endpoint count %d", len(endpoints))
	}
	if exceeds(0, len(endpoints)/2, MaxEdges) {
		return NilHandle, errorf(CodeInvalidValue, op, "edge count %d exceeds %d", len(endpoints)/2, MaxEdges)
	}
	g := &graphData{directed: directed, n: n}
	for _, v := range endpoints {
		if v < 0 || int64(v) >= MaxVertices {
			return NilHandle, errorf(CodeInvalidVertex, op, "vertex %d outside [0,%d)", v, MaxVertices)
		}
		if v >= g.n {
			g.n = v + 1
		}
	}
	m := len(endpoints) / 2
	g.from = make([]int, m)
	g.to = make([]int, m)
	for i := 0; i < m; i++ {
		g.from[i], g.to[i] = endpoints[2*i], endpoints[2*i+1]
	}
	return e.alloc(op, KindGraph, g)
}

// GraphCopy allocates an independent copy of the graph h.
func (e *Engine) GraphCopy(h Handle) (Handle, error) {
	return e.copyOf("GraphCopy", h, KindGraph, func(d interface{}) interface{} {
		return d.(*graphData).clone()
	})
}

// GraphDestroy releases the graph h.
func (e *Engine) GraphDestroy(h Handle) error {
	return e.destroy("GraphDestroy", h, KindGraph)
}

// VCount returns the vertex count.
func (e *Engine) VCount(h Handle) (n int, err error) {
	err = e.withGraph("VCount", h, func(g *graphData) error {
		n = g.n
		return nil
	})
	return n, err
}

// ECount returns the edge count.
func (e *Engine) ECount(h Handle) (m int, err error) {
	err = e.withGraph("ECount", h, func(g *graphData) error {
		m = len(g.from)
		return nil
	})
	return m, err
}

// IsDirected reports the graph directedness.
func (e *Engine) IsDirected(h Handle) (d bool, err error) {
	err = e.withGraph("IsDirected", h, func(g *graphData) error {
		d = g.directed
		return nil
	})
	return d, err
}

// Edge returns the endpoints of edge eid as stored.
func (e *Engine) Edge(h Handle, eid int) (from, to int, err error) {
	err = e.withGraph("Edge", h, func(g *graphData) error {
		if err := g.checkEdge("Edge", eid); err != nil {
			return err
		}
		from, to = g.from[eid], g.to[eid]
		return nil
	})
	return from, to, err
}

// EdgeID returns the smallest edge id joining from and to. For undirected
// graphs, or when directed is false, either orientation matches.
func (e *Engine) EdgeID(h Handle, from, to int, directed bool) (eid int, err error) {
	const op = "EdgeID"
	eid = -1
	err = e.withGraph(op, h, func(g *graphData) error {
		if err := g.checkVertex(op, from); err != nil {
			return err
		}
		if err := g.checkVertex(op, to); err != nil {
			return err
		}
		exact := g.directed && directed
		for i := range g.from {
			f, t := g.from[i], g.to[i]
			if (f == from && t == to) || (!exact && f == to && t == from) {
				eid = i
				return nil
			}
		}
		return errorf(CodeNotFound, op, "no edge %d-%d", from, to)
	})
	return eid, err
}

// Edges returns all endpoints as a flat list (from0, to0, from1, to1, ...).
func (e *Engine) Edges(h Handle) (endpoints []int, err error) {
	err = e.withGraph("Edges", h, func(g *graphData) error {
		endpoints = make([]int, 0, 2*len(g.from))
		for i := range g.from {
			endpoints = append(endpoints, g.from[i], g.to[i])
		}
		return nil
	})
	return endpoints, err
}

// Neighbors returns the neighbors of v, one entry per incidence.
func (e *Engine) Neighbors(h Handle, v int, mode Mode) (nbs []int, err error) {
	const op = "Neighbors"
	err = e.withGraph(op, h, func(g *graphData) error {
		if err := checkMode(op, mode); err != nil {
			return err
		}
		if err := g.checkVertex(op, v); err != nil {
			return err
		}
		inc := g.incidences(v, mode)
		nbs = make([]int, len(inc))
		for i, x := range inc {
			nbs[i] = x.nb
		}
		return nil
	})
	return nbs, err
}

// Incident returns the ids of the edges incident to v, in neighbor order.
// An undirected self-loop is reported twice.
func (e *Engine) Incident(h Handle, v int, mode Mode) (eids []int, err error) {
	const op = "Incident"
	err = e.withGraph(op, h, func(g *graphData) error {
		if err := checkMode(op, mode); err != nil {
			return err
		}
		if err := g.checkVertex(op, v); err != nil {
			return err
		}
		inc := g.incidences(v, mode)
		eids = make([]int, len(inc))
		for i, x := range inc {
			eids[i] = x.eid
		}
		return nil
	})
	return eids, err
}

// Degree returns the degree of each vertex in vids. A self-loop counts twice
// in undirected graphs and in mode All; loops=false drops them entirely.
func (e *Engine) Degree(h Handle, vids []int, mode Mode, loops SelfLoops) (deg []int, err error) {
	const op = "Degree"
	err = e.withGraph(op, h, func(g *graphData) error {
		if err := checkMode(op, mode); err != nil {
			return err
		}
		for _, v := range vids {
			if err := g.checkVertex(op, v); err != nil {
				return err
			}
		}
		deg = make([]int, len(vids))
		for i, v := range vids {
			for _, x := range g.incidences(v, mode) {
				if !bool(loops) && x.nb == v {
					continue
				}
				deg[i]++
			}
		}
		return nil
	})
	return deg, err
}

// AddVertices appends n isolated vertices.
func (e *Engine) AddVertices(h Handle, n int) error {
	const op = "AddVertices"
	return e.withGraph(op, h, func(g *graphData) error {
		if n < 0 {
			return errorf(CodeInvalidValue, op, "negative count %d", n)
		}
		if exceeds(g.n, n, MaxVertices) {
			return errorf(CodeInvalidValue, op, "vertex count %d+%d exceeds %d", g.n, n, MaxVertices)
		}
		g.n += n
		return nil
	})
}

// AddEdges appends edges from a flat endpoint list. Nothing is added unless
// every endpoint is valid.
func (e *Engine) AddEdges(h Handle, endpoints []int) error {
	const op = "AddEdges"
	return e.withGraph(op, h, func(g *graphData) error {
		if len(endpoints)%2 != 0 {
			return errorf(CodeInvalidValue, op, "odd endpoint count %d", len(endpoints))
		}
		if exceeds(len(g.from), len(endpoints)/2, MaxEdges) {
			return errorf(CodeInvalidValue, op, "edge count %d+%d exceeds %d", len(g.from), len(endpoints)/2, MaxEdges)
		}
		for _, v := range endpoints {
			if err := g.checkVertex(op, v); err != nil {
				return err
			}
		}
		for i := 0; i+1 < len(endpoints); i += 2 {
			g.from = append(g.from, endpoints[i])
			g.to = append(g.to, endpoints[i+1])
		}
		return nil
	})
}

// DeleteEdges removes the given edges and compacts the remaining edge ids.
// Duplicate ids are tolerated.
func (e *Engine) DeleteEdges(h Handle, eids []int) error {
	const op = "DeleteEdges"
	return e.withGraph(op, h, func(g *graphData) error {
		drop := roaring.New()
		for _, eid := range eids {
			if err := g.checkEdge(op, eid); err != nil {
				return err
			}
			drop.Add(uint32(eid))
		}
		if drop.IsEmpty() {
			return nil
		}
		w := 0
		for i := range g.from {
			if drop.Contains(uint32(i)) {
				continue
			}
			g.from[w], g.to[w] = g.from[i], g.to[i]
			w++
		}
		g.from, g.to = g.from[:w], g.to[:w]
		return nil
	})
}

// DeleteVertices removes the given vertices and their incident edges, then
// renumbers the survivors preserving relative order.
func (e *Engine) DeleteVertices(h Handle, vids []int) error {
	const op = "DeleteVertices"
	return e.withGraph(op, h, func(g *graphData) error {
		drop := roaring.New()
		for _, v := range vids {
			if err := g.checkVertex(op, v); err != nil {
				return err
			}
			drop.Add(uint32(v))
		}
		if drop.IsEmpty() {
			return nil
		}
		remap := make([]int, g.n)
		next := 0
		for v := 0; v < g.n; v++ {
			if drop.Contains(uint32(v)) {
				remap[v] = -1
				continue
			}
			remap[v] = next
			next++
		}
		w := 0
		for i := range g.from {
			f, t := remap[g.from[i]], remap[g.to[i]]
			if f < 0 || t < 0 {
				continue
			}
			g.from[w], g.to[w] = f, t
			w++
		}
		g.from, g.to = g.from[:w], g.to[:w]
		g.n = next
		return nil
	})
}
