package core

import (
	"fmt"

	"github.com/katalvlaran/lvalg/engine"
	"github.com/katalvlaran/lvalg/ownership"
)

// idVector is the shared body of VertexVector and EdgeVector.
type idVector struct {
	ref ownership.Ref[ownership.VectorKind]
}

func newIDVector(op string, ids []int, opts ...SelectorOption) (idVector, error) {
	cfg := newSelectorConfig(opts...)
	h, err := cfg.eng.VectorInit(ids)
	if err != nil {
		return idVector{}, Translate(op, err)
	}
	return idVector{ref: ownership.Own[ownership.VectorKind](cfg.eng, h)}, nil
}

// Len returns the number of ids, 0 when inert.
func (v *idVector) Len() int {
	if !v.ref.Valid() {
		return 0
	}
	n, _ := v.ref.Engine().VectorLen(v.ref.Handle())
	return n
}

// IDs returns a copy of the ids.
func (v *idVector) IDs() ([]int, error) {
	if !v.ref.Valid() {
		return nil, errInert("IDs")
	}
	ids, err := v.ref.Engine().VectorData(v.ref.Handle())
	return ids, Translate("IDs", err)
}

// Append adds ids at the end.
func (v *idVector) Append(ids ...int) error {
	if !v.ref.Valid() {
		return errInert("Append")
	}
	return Translate("Append", v.ref.Engine().VectorAppend(v.ref.Handle(), ids...))
}

// Close destroys the vector if owned. Safe to call repeatedly.
func (v *idVector) Close() error { return Translate("Close", v.ref.Close()) }

// Mode returns the ownership mode.
func (v *idVector) Mode() ownership.Mode { return v.ref.Mode() }

// Engine returns the engine holding the vector, nil when inert.
func (v *idVector) Engine() *engine.Engine { return v.ref.Engine() }

func (v *idVector) clone(op string) (idVector, error) {
	r, err := ownership.Copy(&v.ref)
	if err != nil {
		return idVector{}, Translate(op, err)
	}
	return idVector{ref: r}, nil
}

// VertexVector is an owned engine vector of vertex ids.
type VertexVector struct{ idVector }

// NewVertexVector allocates a vector holding a copy of ids.
func NewVertexVector(ids []int, opts ...SelectorOption) (*VertexVector, error) {
	v, err := newIDVector(fmt.Sprintf("NewVertexVector(len=%d)", len(ids)), ids, opts...)
	if err != nil {
		return nil, err
	}
	return &VertexVector{v}, nil
}

// Clone returns an independent copy.
func (v *VertexVector) Clone() (*VertexVector, error) {
	c, err := v.clone("VertexVector.Clone")
	if err != nil {
		return nil, err
	}
	return &VertexVector{c}, nil
}

// Move transfers the vector to a new value; v becomes inert.
func (v *VertexVector) Move() *VertexVector {
	return &VertexVector{idVector{ref: v.ref.Move()}}
}

// EdgeVector is an owned engine vector of edge ids.
type EdgeVector struct{ idVector }

// NewEdgeVector allocates a vector holding a copy of ids.
func NewEdgeVector(ids []int, opts ...SelectorOption) (*EdgeVector, error) {
	v, err := newIDVector(fmt.Sprintf("NewEdgeVector(len=%d)", len(ids)), ids, opts...)
	if err != nil {
		return nil, err
	}
	return &EdgeVector{v}, nil
}

// Clone returns an independent copy.
func (v *EdgeVector) Clone() (*EdgeVector, error) {
	c, err := v.clone("EdgeVector.Clone")
	if err != nil {
		return nil, err
	}
	return &EdgeVector{c}, nil
}

// Move transfers the vector to a new value; v becomes inert.
func (v *EdgeVector) Move() *EdgeVector {
	return &EdgeVector{idVector{ref: v.ref.Move()}}
}
