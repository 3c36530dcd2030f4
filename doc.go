// Package lvalg is a graph algebra library with explicit ownership of every
// native graph handle.
//
// 🚀 What is lvalg?
//
//	Graphs live in an engine handle table; Go wrappers own, borrow, copy or
//	move those handles, so every graph is destroyed exactly once:
//		• Engine: handle table for graphs, vectors, selectors, adjacency lists
//		• Ownership: Owned / Borrowed / Copied / Moved / Inert references
//		• Graph API: vertices, edges, neighborhoods, selectors
//		• Generators: full, star, ring, lattice, tree, citation, G(n,p)
//		• Algebra: union, merge, intersection, difference, complement,
//		  compose, multiply, decompose, and an expression evaluator
//		• File I/O: edgelist, ncol, lgl, adjlist, GraphML, DOT, Pajek, DIMACS,
//		  optionally gzip/zstd/lz4 compressed
//
// Under the hood, everything is organized in subpackages:
//
//	engine/    - handle table and the native graph primitives
//	ownership/ - the ownership-transfer reference shared by all wrappers
//	core/      - Graph, vertex/edge selectors, vectors, error translation
//	adjlist/   - detached adjacency lists and complements
//	builder/   - deterministic and seeded graph generators
//	algebra/   - whole-graph operations and the operator table
//	graphio/   - readers and writers on any vfs.FileSystem
//	cmd/lvalg  - command line front end
//
// Quick example:
//
//	full, _ := builder.NewFull(6, false)
//	star, _ := builder.NewStar(6, builder.StarUndirected, 0)
//	d, _ := algebra.Difference(full, star) // Graph{n=6 m=10 undirected}
//	defer d.Close()
//
//	go get github.com/katalvlaran/lvalg
package lvalg
