// Package engine is the native handle layer underneath lvalg.
//
// Every resource the upper layers manipulate (graphs, vertex selectors,
// edge selectors, adjacency tables and plain id vectors) lives in an Engine
// handle table and is addressed only through an opaque Handle. The engine
// offers, per kind, an init primitive, a destroy primitive, an optional copy
// primitive and a set of query primitives that work by value.
//
// Handle values are allocated from a monotonically increasing counter and
// are never reused by the same Engine. A destroyed handle therefore stays
// invalid forever, which turns use-after-destroy and double-destroy into
// reported errors (ErrInvalidHandle) instead of silent corruption.
//
// Data model:
//
//	Graph     dense vertex ids 0..n-1, dense edge ids 0..m-1 in insertion order,
//	          directed or undirected. Deleting edges or vertices compacts ids
//	          while preserving relative order.
//	Selector  a declarative description (all, none, single, seq, adjacent,
//	          non-adjacent, vector, pairs) resolved against a graph on demand.
//	AdjList   a per-vertex neighbor table copied out of a graph.
//	Vector    a plain []int payload.
//
// Vertex and edge counts are bounded by MaxVertices and MaxEdges (2^32), so
// ids always fit the 32-bit bitmaps used by selectors and adjacency tables.
// Creation and growth primitives reject anything larger.
//
// Neighbor order is ascending neighbor id, ties broken by edge id. For
// undirected graphs the neighbor mode is ignored and a self-loop is reported
// twice (once per endpoint); in directed graphs a loop appears once per
// direction included by the mode.
//
// Errors are *Error values carrying a Code. Callers branch with errors.Is
// against the exported sentinels (ErrNoMemory, ErrInvalidHandle, ...).
//
// Fault injection: WithAllocLimit / SetAllocLimit cap the number of further
// allocations, after which every init/copy fails with ErrNoMemory. Observers
// registered with WithObserver receive one Event per init, copy and destroy.
//
// Concurrency: the handle table is serialized by a mutex. Observers are
// invoked after the table lock is released.
package engine
