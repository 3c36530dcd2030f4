package engine

import (
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
)

type adjListData struct {
	rows [][]int
}

func (a *adjListData) clone() *adjListData {
	rows := make([][]int, len(a.rows))
	for i, r := range a.rows {
		rows[i] = append([]int(nil), r...)
	}
	return &adjListData{rows: rows}
}

func (e *Engine) adjListLocked(op string, h Handle) (*adjListData, error) {
	en, err := e.lookupLocked(op, h, KindAdjList)
	if err != nil {
		return nil, err
	}
	return en.data.(*adjListData), nil
}

// AdjListInit snapshots the neighbor lists of graph g under mode.
func (e *Engine) AdjListInit(g Handle, mode Mode) (Handle, error) {
	const op = "AdjListInit"
	if err := checkMode(op, mode); err != nil {
		return NilHandle, err
	}
	e.mu.Lock()
	gd, err := e.graphLocked(op, g)
	if err != nil {
		e.mu.Unlock()
		return NilHandle, err
	}
	rows := make([][]int, gd.n)
	for v := 0; v < gd.n; v++ {
		inc := gd.incidences(v, mode)
		row := make([]int, len(inc))
		for i, x := range inc {
			row[i] = x.nb
		}
		rows[v] = row
	}
	h, err := e.insertLocked(op, KindAdjList, &adjListData{rows: rows})
	e.mu.Unlock()
	if err != nil {
		return NilHandle, err
	}
	e.emit(Event{Op: EventInit, Kind: KindAdjList, Handle: h})
	return h, nil
}

// AdjListComplementer builds, for every vertex, the ascending list of
// vertices it is NOT adjacent to under mode. loops adds v to its own row when
// v carries no self-loop.
func (e *Engine) AdjListComplementer(g Handle, mode Mode, loops SelfLoops) (Handle, error) {
	const op = "AdjListComplementer"
	if err := checkMode(op, mode); err != nil {
		return NilHandle, err
	}
	e.mu.Lock()
	gd, err := e.graphLocked(op, g)
	if err != nil {
		e.mu.Unlock()
		return NilHandle, err
	}
	rows := make([][]int, gd.n)
	for v := 0; v < gd.n; v++ {
		row := roaring.New()
		row.AddRange(0, uint64(gd.n))
		for _, x := range gd.incidences(v, mode) {
			row.Remove(uint32(x.nb))
		}
		if !bool(loops) {
			row.Remove(uint32(v))
		}
		rows[v] = toInts(row)
	}
	h, err := e.insertLocked(op, KindAdjList, &adjListData{rows: rows})
	e.mu.Unlock()
	if err != nil {
		return NilHandle, err
	}
	e.emit(Event{Op: EventInit, Kind: KindAdjList, Handle: h})
	return h, nil
}

// AdjListCopy allocates an independent copy of adjacency list h.
func (e *Engine) AdjListCopy(h Handle) (Handle, error) {
	return e.copyOf("AdjListCopy", h, KindAdjList, func(d interface{}) interface{} {
		return d.(*adjListData).clone()
	})
}

// AdjListDestroy releases adjacency list h.
func (e *Engine) AdjListDestroy(h Handle) error {
	return e.destroy("AdjListDestroy", h, KindAdjList)
}

// AdjListSize returns the number of rows.
func (e *Engine) AdjListSize(h Handle) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	a, err := e.adjListLocked("AdjListSize", h)
	if err != nil {
		return 0, err
	}
	return len(a.rows), nil
}

// AdjListRow returns a copy of row v.
func (e *Engine) AdjListRow(h Handle, v int) ([]int, error) {
	const op = "AdjListRow"
	e.mu.Lock()
	defer e.mu.Unlock()
	a, err := e.adjListLocked(op, h)
	if err != nil {
		return nil, err
	}
	if v < 0 || v >= len(a.rows) {
		return nil, errorf(CodeInvalidVertex, op, "row %d outside [0,%d)", v, len(a.rows))
	}
	return append([]int{}, a.rows[v]...), nil
}

// AdjListSort sorts every row ascending.
func (e *Engine) AdjListSort(h Handle) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	a, err := e.adjListLocked("AdjListSort", h)
	if err != nil {
		return err
	}
	for _, r := range a.rows {
		sort.Ints(r)
	}
	return nil
}

// AdjListSimplify removes duplicate entries and self-loops from every row,
// leaving each row sorted ascending.
func (e *Engine) AdjListSimplify(h Handle) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	a, err := e.adjListLocked("AdjListSimplify", h)
	if err != nil {
		return err
	}
	for v, r := range a.rows {
		set := roaring.New()
		for _, nb := range r {
			if nb != v {
				set.Add(uint32(nb))
			}
		}
		a.rows[v] = toInts(set)
	}
	return nil
}
