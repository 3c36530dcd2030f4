// Package graphio reads and writes graphs in common text formats.
//
// Supported formats:
//
//	edgelist  "u v" per edge, 0-based ids            read, write
//	ncol      "name name [weight]" per edge          read, write
//	lgl       "# name" header, one neighbor per line read, write
//	adjlist   "v w1 w2 ..." per vertex              read, write
//	graphml   GraphML XML, edgedefault kept          read, write
//	pajek     *Vertices / *Edges / *Arcs, 1-based    read, write
//	dimacs    "p edge" or "p max" with WithFlow      read, write
//	graphviz  DOT graph or digraph                   write only
//
// A Writer borrows the graph it serializes and never changes it. A Reader
// returns a new graph owned by the caller. Symbolic formats number vertices
// in order of first appearance and report the names through Reader.Names.
//
// WriteFile and ReadFile work on any vfs.FileSystem, so callers can target
// the OS or an in-memory filesystem. A .gz, .zst or .lz4 suffix selects
// gzip, zstd or lz4 compression, and FormatAuto derives the format from the
// remaining extension:
//
//	err := graphio.WriteFile(osfs.OsFs, "ring.graphml.gz", g, graphio.FormatAuto)
package graphio
