// Package adjlist provides AdjacencyList, a per-vertex neighbor table copied
// out of a core.Graph.
//
// An AdjacencyList has no back-reference to its source graph: deleting
// vertices or edges from the graph, or closing it, leaves an existing list
// unchanged. Rows can be edited in place with Sort and Simplify and turned
// back into a graph with ToGraph.
package adjlist
