package ownership

import (
	"github.com/katalvlaran/lvalg/engine"
)

// Kind binds a Ref to the lifecycle primitives of one engine entity kind.
type Kind interface {
	// Name is the entity kind name used in errors and logs.
	Name() string
	// Destroy releases h.
	Destroy(e *engine.Engine, h engine.Handle) error
	// Copy allocates an independent copy of h.
	Copy(e *engine.Engine, h engine.Handle) (engine.Handle, error)
}

type (
	GraphKind          struct{}
	VertexSelectorKind struct{}
	EdgeSelectorKind   struct{}
	AdjListKind        struct{}
	VectorKind         struct{}
)

func (GraphKind) Name() string { return engine.KindGraph.String() }
func (GraphKind) Destroy(e *engine.Engine, h engine.Handle) error {
	return e.GraphDestroy(h)
}
func (GraphKind) Copy(e *engine.Engine, h engine.Handle) (engine.Handle, error) {
	return e.GraphCopy(h)
}

func (VertexSelectorKind) Name() string { return engine.KindVertexSelector.String() }
func (VertexSelectorKind) Destroy(e *engine.Engine, h engine.Handle) error {
	return e.VSDestroy(h)
}
func (VertexSelectorKind) Copy(e *engine.Engine, h engine.Handle) (engine.Handle, error) {
	return e.VSCopy(h)
}

func (EdgeSelectorKind) Name() string { return engine.KindEdgeSelector.String() }
func (EdgeSelectorKind) Destroy(e *engine.Engine, h engine.Handle) error {
	return e.ESDestroy(h)
}
func (EdgeSelectorKind) Copy(e *engine.Engine, h engine.Handle) (engine.Handle, error) {
	return e.ESCopy(h)
}

func (AdjListKind) Name() string { return engine.KindAdjList.String() }
func (AdjListKind) Destroy(e *engine.Engine, h engine.Handle) error {
	return e.AdjListDestroy(h)
}
func (AdjListKind) Copy(e *engine.Engine, h engine.Handle) (engine.Handle, error) {
	return e.AdjListCopy(h)
}

func (VectorKind) Name() string { return engine.KindVector.String() }
func (VectorKind) Destroy(e *engine.Engine, h engine.Handle) error {
	return e.VectorDestroy(h)
}
func (VectorKind) Copy(e *engine.Engine, h engine.Handle) (engine.Handle, error) {
	return e.VectorCopy(h)
}
