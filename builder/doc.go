// Package builder generates integer-id graphs from composable constructors.
//
// A Constructor appends one topology to a core.Graph; BuildGraph creates the
// graph from core.GraphOption values, resolves BuilderOption values and runs
// the constructors in order, each one placing its vertices after those
// already present:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithDirected(true)},
//		[]builder.BuilderOption{builder.WithSeed(7)},
//		builder.Star(5, builder.StarOut, 0),
//		builder.RandomGNP(10, 0.2),
//	)
//
// Topologies:
//
//   - Full(n, loops): complete graph.
//   - Star(n, mode, center): star with StarOut, StarIn, StarMutual or
//     StarUndirected spokes.
//   - Ring(n, mutual, circular): path or cycle.
//   - Lattice(dims, periodic, mutual): square lattice of any dimension.
//   - Tree(n, children, mode): k-ary tree filled level by level.
//   - FullCitation(n): every vertex cites all earlier ones.
//   - Create(n, edges): explicit edge list.
//   - RandomGNP(n, p): Erdős–Rényi G(n,p); needs WithSeed or WithRand.
//   - DeBruijn(m, n), Kautz(m, n): word graphs, directed by nature.
//   - LCF(n, shifts, repeats): cubic-style graphs from LCF notation, e.g.
//     LCF(14, []int{5, -5}, 7) is the Heawood graph.
//
// NewFull, NewStar, NewRing, NewLattice, NewTree, NewDeBruijn, NewKautz and
// NewLCF are one-shot helpers.
//
// Errors are sentinels (ErrTooFewVertices, ErrBadParameter,
// ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed) wrapped with
// the constructor name; check them with errors.Is. A failed BuildGraph
// closes the graph it started.
package builder
