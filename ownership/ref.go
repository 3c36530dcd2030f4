// File: ref.go
// Role: Ref[K], the single-handle ownership wrapper.
// Determinism:
//   - Close destroys iff the Ref was built by Own or Copy (or moved from one).
// Concurrency:
//   - Not safe for concurrent use.

package ownership

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvalg/engine"
)

// ErrInert is returned when an emptied Ref is used.
var ErrInert = errors.New("ownership: inert reference")

// Mode is the ownership status of a Ref.
type Mode uint8

const (
	Inert Mode = iota
	Owned
	Copied
	Borrowed
	Moved
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Owned:
		return "owned"
	case Copied:
		return "copied"
	case Borrowed:
		return "borrowed"
	case Moved:
		return "moved"
	}
	return "inert"
}

// Transfer chooses how a wrapper takes over a companion resource.
type Transfer uint8

const (
	// TransferCopy deep-copies the resource; the caller keeps its own.
	TransferCopy Transfer = iota
	// TransferMove takes the caller's resource over; the caller's wrapper becomes inert.
	TransferMove
	// TransferKeepOriginal aliases the caller's resource, which must outlive the wrapper.
	TransferKeepOriginal
)

// String returns the policy name.
func (t Transfer) String() string {
	switch t {
	case TransferCopy:
		return "copy"
	case TransferMove:
		return "move"
	case TransferKeepOriginal:
		return "keep-original"
	}
	return "invalid"
}

// Ref wraps one engine handle of kind K with one ownership mode.
// The zero Ref is inert.
type Ref[K Kind] struct {
	eng  *engine.Engine
	h    engine.Handle
	mode Mode
	// teardown is fixed by the constructor: K.Destroy for owning refs, nil otherwise.
	teardown func(*engine.Engine, engine.Handle) error
}

func mustEngine(eng *engine.Engine) {
	if eng == nil {
		panic("ownership: nil engine")
	}
}

// Own wraps h, taking over the responsibility to destroy it.
// A NilHandle yields an inert Ref.
func Own[K Kind](eng *engine.Engine, h engine.Handle) Ref[K] {
	mustEngine(eng)
	if h == engine.NilHandle {
		return Ref[K]{}
	}
	var k K
	return Ref[K]{eng: eng, h: h, mode: Owned, teardown: k.Destroy}
}

// Borrow wraps h without ownership. The owner must outlive the Ref.
func Borrow[K Kind](eng *engine.Engine, h engine.Handle) Ref[K] {
	mustEngine(eng)
	if h == engine.NilHandle {
		return Ref[K]{}
	}
	return Ref[K]{eng: eng, h: h, mode: Borrowed}
}

// Copy allocates an engine copy of src's handle and wraps it as Copied.
// On failure nothing is allocated and the zero Ref is returned.
func Copy[K Kind](src *Ref[K]) (Ref[K], error) {
	var k K
	if !src.Valid() {
		return Ref[K]{}, fmt.Errorf("ownership: copy %s: %w", k.Name(), ErrInert)
	}
	h, err := k.Copy(src.eng, src.h)
	if err != nil {
		return Ref[K]{}, fmt.Errorf("ownership: copy %s: %w", k.Name(), err)
	}
	log.Trace("copied {{kind}} {{source}} -> {{handle}}", "kind", k.Name(), "source", src.h, "handle", h)

	return Ref[K]{eng: src.eng, h: h, mode: Copied, teardown: k.Destroy}, nil
}

// Move transfers the handle and its teardown to a new Ref and leaves r inert.
// The result is Moved when r owned the handle, Borrowed otherwise. Never fails.
func (r *Ref[K]) Move() Ref[K] {
	if !r.Valid() {
		return Ref[K]{}
	}
	dst := *r
	if r.teardown != nil {
		dst.mode = Moved
	}
	*r = Ref[K]{}
	return dst
}

// Close destroys the handle if r owns it and empties r. Closing an inert Ref
// is a no-op, so Close may be called any number of times.
func (r *Ref[K]) Close() error {
	if !r.Valid() {
		return nil
	}
	eng, h, teardown := r.eng, r.h, r.teardown
	*r = Ref[K]{}
	if teardown == nil {
		return nil
	}
	if err := teardown(eng, h); err != nil {
		var k K
		log.LogError(err, "destroy failed", "kind", k.Name(), "handle", h)
		return fmt.Errorf("ownership: close %s: %w", k.Name(), err)
	}
	return nil
}

// Release disclaims ownership and returns the handle; r becomes inert and the
// caller is responsible for destroying the handle.
func (r *Ref[K]) Release() engine.Handle {
	h := r.h
	*r = Ref[K]{}
	return h
}

// Handle returns the wrapped handle, or NilHandle when inert.
func (r *Ref[K]) Handle() engine.Handle { return r.h }

// Engine returns the engine that owns the handle, or nil when inert.
func (r *Ref[K]) Engine() *engine.Engine { return r.eng }

// Mode returns the ownership mode; Inert when the Ref holds no handle.
func (r *Ref[K]) Mode() Mode {
	if !r.Valid() {
		return Inert
	}
	return r.mode
}

// Valid reports whether r holds a handle.
func (r *Ref[K]) Valid() bool { return r != nil && r.h != engine.NilHandle }

// Owns reports whether Close will destroy the handle.
func (r *Ref[K]) Owns() bool { return r.Valid() && r.teardown != nil }

// Check returns ErrInert when r holds no handle.
func (r *Ref[K]) Check() error {
	if !r.Valid() {
		return ErrInert
	}
	return nil
}
