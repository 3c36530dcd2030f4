package engine

type vectorData struct {
	ids []int
}

func (e *Engine) vectorLocked(op string, h Handle) (*vectorData, error) {
	en, err := e.lookupLocked(op, h, KindVector)
	if err != nil {
		return nil, err
	}
	return en.data.(*vectorData), nil
}

// VectorInit allocates a vector holding a copy of ids.
func (e *Engine) VectorInit(ids []int) (Handle, error) {
	return e.alloc("VectorInit", KindVector, &vectorData{ids: append([]int(nil), ids...)})
}

// VectorCopy allocates an independent copy of vector h.
func (e *Engine) VectorCopy(h Handle) (Handle, error) {
	return e.copyOf("VectorCopy", h, KindVector, func(d interface{}) interface{} {
		return &vectorData{ids: append([]int(nil), d.(*vectorData).ids...)}
	})
}

// VectorDestroy releases vector h.
func (e *Engine) VectorDestroy(h Handle) error {
	return e.destroy("VectorDestroy", h, KindVector)
}

// VectorData returns a copy of the vector contents.
func (e *Engine) VectorData(h Handle) ([]int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	v, err := e.vectorLocked("VectorData", h)
	if err != nil {
		return nil, err
	}
	return append([]int(nil), v.ids...), nil
}

// VectorLen returns the vector length.
func (e *Engine) VectorLen(h Handle) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	v, err := e.vectorLocked("VectorLen", h)
	if err != nil {
		return 0, err
	}
	return len(v.ids), nil
}

// VectorAppend appends ids to vector h.
func (e *Engine) VectorAppend(h Handle, ids ...int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	v, err := e.vectorLocked("VectorAppend", h)
	if err != nil {
		return err
	}
	v.ids = append(v.ids, ids...)
	return nil
}
