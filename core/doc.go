// Package core wraps engine graphs, selectors and id vectors in
// ownership-safe Go values.
//
// Graph
//
//	NewGraph(n, WithDirected(true))   owned, edgeless graph with n vertices
//	NewGraphFromEdges(n, endpoints)   owned graph from a flat endpoint list
//	AdoptGraph / BorrowGraph          wrap an existing engine handle
//	g.Borrow()                        non-owning alias (g must outlive it)
//	g.Clone()                         independent owned deep copy
//	g.Move()                          transfer ownership; g becomes inert
//	g.Close()                         destroy if owned; idempotent
//	g.Release()                       disclaim ownership, return the handle
//
// Vertices are dense ids 0..n-1 and edges dense ids 0..m-1 in insertion
// order. Deleting vertices or edges compacts ids while preserving relative
// order, which invalidates selectors and adjacency lists built earlier.
//
// Selectors
//
// VertexSelector and EdgeSelector are lazy descriptions (all, none, single,
// seq, adjacent, non-adjacent, from a vector, vertex pairs). They are tied to
// an engine but not to a graph; Size and Materialize resolve them against a
// concrete Graph and fail with ErrIncompatibleGraph when the selector
// addresses ids the graph does not have.
//
// VerticesFromVector / EdgesFromVector take an ownership.Transfer:
// TransferCopy copies the ids, TransferMove makes the selector own the
// vector (the caller's vector becomes inert), TransferKeepOriginal aliases
// a vector the caller keeps alive.
//
// Errors
//
// Every engine failure is reported as one of ErrResource,
// ErrIncompatibleGraph, ErrInvalidRange, ErrOutOfRange or ErrEdgeNotFound
// (see Translate), wrapped with the failing operation. Using a moved, closed
// or released value yields ErrResource together with ownership.ErrInert.
package core
