// File: engine.go
// Role: Engine handle table, allocation accounting, observers and options.
// Determinism:
//   - Handle values increase monotonically and are never reused.
// Concurrency:
//   - Every primitive holds e.mu for the table access; observers run after unlock.

package engine

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Handle is an opaque engine resource reference.
type Handle uint64

// NilHandle is the empty handle. It never refers to a live resource.
const NilHandle Handle = 0

// Kind identifies the entity kind behind a handle.
type Kind uint8

const (
	KindGraph Kind = iota + 1
	KindVertexSelector
	KindEdgeSelector
	KindAdjList
	KindVector
)

// numKinds sizes per-kind counters; index 0 is unused.
const numKinds = int(KindVector) + 1

var kindNames = [numKinds]string{
	"invalid",
	"graph",
	"vertex-selector",
	"edge-selector",
	"adjlist",
	"vector",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Unlimited disables the allocation limit.
const Unlimited = -1

// EventOp is the lifecycle operation reported to observers.
type EventOp uint8

const (
	EventInit EventOp = iota + 1
	EventCopy
	EventDestroy
)

// String returns the operation name.
func (o EventOp) String() string {
	switch o {
	case EventInit:
		return "init"
	case EventCopy:
		return "copy"
	case EventDestroy:
		return "destroy"
	}
	return "unknown"
}

// Event describes one handle lifecycle transition.
// Source is set for EventCopy only.
type Event struct {
	Op     EventOp
	Kind   Kind
	Handle Handle
	Source Handle
}

// Stats is a snapshot of the engine accounting.
type Stats struct {
	Allocated uint64       // successful init/copy allocations
	Copied    uint64       // subset of Allocated produced by copy primitives
	Destroyed uint64       // successful destroy calls
	Live      map[Kind]int // live (allocated, not destroyed) handles per kind
}

type entry struct {
	kind   Kind
	static bool
	data   interface{}
}

// Engine is a handle table holding graphs, selectors, adjacency lists and vectors.
type Engine struct {
	mu        sync.Mutex
	id        uuid.UUID
	next      Handle
	table     map[Handle]*entry
	budget    int
	allocated uint64
	copied    uint64
	destroyed uint64
	live      [numKinds]int
	observers []func(Event)

	// static selector handles, borrowed by every caller, never destroyed
	vsAll, vsNone, esAll, esNone Handle
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithAllocLimit allows at most n further allocations; the next one fails
// with ErrNoMemory. Pass Unlimited to disable. Panics on n < Unlimited.
func WithAllocLimit(n int) Option {
	if n < Unlimited {
		panic("engine: WithAllocLimit(n < -1)")
	}
	return func(e *Engine) { e.budget = n }
}

// WithObserver registers fn to receive every init, copy and destroy event.
// Panics on nil.
func WithObserver(fn func(Event)) Option {
	if fn == nil {
		panic("engine: WithObserver(nil)")
	}
	return func(e *Engine) { e.observers = append(e.observers, fn) }
}

// New creates an empty Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		id:     uuid.New(),
		table:  make(map[Handle]*entry),
		budget: Unlimited,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.vsAll = e.insertStatic(KindVertexSelector, &selectorData{typ: SelectAll})
	e.vsNone = e.insertStatic(KindVertexSelector, &selectorData{typ: SelectNone})
	e.esAll = e.insertStatic(KindEdgeSelector, &selectorData{typ: SelectAll})
	e.esNone = e.insertStatic(KindEdgeSelector, &selectorData{typ: SelectNone})
	log.Debug("engine {{engine}} created", "engine", e.id)

	return e
}

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns the process-wide engine used when no engine is chosen.
func Default() *Engine {
	defaultOnce.Do(func() { defaultEngine = New() })
	return defaultEngine
}

// ID returns the engine instance identifier.
func (e *Engine) ID() uuid.UUID { return e.id }

// SetAllocLimit replaces the remaining allocation budget (Unlimited disables it).
func (e *Engine) SetAllocLimit(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if n < Unlimited {
		n = Unlimited
	}
	e.budget = n
}

// Stats returns a snapshot of the accounting counters.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := Stats{
		Allocated: e.allocated,
		Copied:    e.copied,
		Destroyed: e.destroyed,
		Live:      make(map[Kind]int, numKinds-1),
	}
	for k := 1; k < numKinds; k++ {
		s.Live[Kind(k)] = e.live[k]
	}
	return s
}

// Live returns the total number of live non-static handles.
func (e *Engine) Live() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, c := range e.live {
		n += c
	}
	return n
}

// IsLive reports whether h refers to a live handle (static handles included).
func (e *Engine) IsLive(h Handle) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.table[h]
	return ok
}

// KindOf returns the kind of a live handle.
func (e *Engine) KindOf(h Handle) (Kind, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	en, ok := e.table[h]
	if !ok {
		return 0, errorf(CodeInvalidHandle, "KindOf", "handle %d", h)
	}
	return en.kind, nil
}

// insertStatic registers a handle that is shared by all callers and never destroyed.
func (e *Engine) insertStatic(kind Kind, data interface{}) Handle {
	e.next++
	e.table[e.next] = &entry{kind: kind, static: true, data: data}
	return e.next
}

// insertLocked allocates a fresh handle; caller holds e.mu.
func (e *Engine) insertLocked(op string, kind Kind, data interface{}) (Handle, error) {
	if e.budget == 0 {
		log.Debug("allocation of {{kind}} refused by limit", "kind", kind, "op", op, "engine", e.id)
		return NilHandle, errorf(CodeNoMemory, op, "allocation limit reached for %s", kind)
	}
	if e.budget > 0 {
		e.budget--
	}
	e.next++
	h := e.next
	e.table[h] = &entry{kind: kind, data: data}
	e.allocated++
	e.live[kind]++
	log.Trace("allocated {{kind}} handle {{handle}}", "kind", kind, "handle", h, "op", op)

	return h, nil
}

// lookupLocked resolves a live handle of the expected kind; caller holds e.mu.
func (e *Engine) lookupLocked(op string, h Handle, kind Kind) (*entry, error) {
	if h == NilHandle {
		return nil, errorf(CodeInvalidHandle, op, "nil %s handle", kind)
	}
	en, ok := e.table[h]
	if !ok {
		return nil, errorf(CodeInvalidHandle, op, "%s handle %d is unknown or destroyed", kind, h)
	}
	if en.kind != kind {
		return nil, errorf(CodeKindMismatch, op, "handle %d is a %s, want %s", h, en.kind, kind)
	}
	return en, nil
}

// destroy removes a live, non-static handle of the given kind.
func (e *Engine) destroy(op string, h Handle, kind Kind) error {
	e.mu.Lock()
	en, err := e.lookupLocked(op, h, kind)
	if err == nil && en.static {
		err = errorf(CodeInvalidHandle, op, "static %s handle %d cannot be destroyed", kind, h)
	}
	if err != nil {
		e.mu.Unlock()
		log.Debug("destroy failed", "op", op, "handle", h, "error", err)
		return err
	}
	delete(e.table, h)
	e.destroyed++
	e.live[kind]--
	log.Trace("destroyed {{kind}} handle {{handle}}", "kind", kind, "handle", h)
	e.mu.Unlock()

	e.emit(Event{Op: EventDestroy, Kind: kind, Handle: h})
	return nil
}

// alloc inserts data under a fresh handle and notifies observers.
func (e *Engine) alloc(op string, kind Kind, data interface{}) (Handle, error) {
	e.mu.Lock()
	h, err := e.insertLocked(op, kind, data)
	e.mu.Unlock()
	if err != nil {
		return NilHandle, err
	}
	e.emit(Event{Op: EventInit, Kind: kind, Handle: h})
	return h, nil
}

// copyOf duplicates the payload of src through clone and registers the result.
func (e *Engine) copyOf(op string, src Handle, kind Kind, clone func(interface{}) interface{}) (Handle, error) {
	e.mu.Lock()
	en, err := e.lookupLocked(op, src, kind)
	if err != nil {
		e.mu.Unlock()
		return NilHandle, err
	}
	h, err := e.insertLocked(op, kind, clone(en.data))
	if err != nil {
		e.mu.Unlock()
		return NilHandle, err
	}
	e.copied++
	e.mu.Unlock()

	e.emit(Event{Op: EventCopy, Kind: kind, Handle: h, Source: src})
	return h, nil
}

func (e *Engine) emit(ev Event) {
	for _, fn := range e.observers {
		fn(ev)
	}
}
