// SPDX-License-Identifier: MIT
// Package: lvalg/builder
//
// impl_classic.go - deterministic classic topologies: Full, Star, Ring, Tree,
// FullCitation.
//
// Contract:
//   - Vertices are local ids 0..n-1 of the appended block.
//   - Edge order is stable and documented per constructor.
//   - Directedness is taken from the target graph; orientation arguments
//     (StarMode, TreeMode, mutual) only choose which endpoint comes first and
//     whether a reverse edge is added on directed graphs.
//   - Returns sentinel errors; never panics at runtime.

package builder

import (
	"github.com/katalvlaran/lvalg/core"
)

const (
	methodFull         = "Full"
	methodStar         = "Star"
	methodRing         = "Ring"
	methodTree         = "Tree"
	methodFullCitation = "FullCitation"

	minFullNodes     = 1
	minStarNodes     = 1
	minRingNodes     = 1
	minTreeNodes     = 1
	minTreeChildren  = 1
	minCitationNodes = 1
	minCircularRing  = 3
)

// Full returns a Constructor for the complete graph on n vertices.
// Undirected: one edge per pair i<j (i==j too when loops). Directed: every
// ordered pair i!=j (and i==i when loops). Order: i asc, then j asc.
//
// Complexity: O(n^2) edges.
func Full(n int, loops bool) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodFull, "n", n, minFullNodes); err != nil {
			return err
		}
		directed := g.Directed()
		ends := make([]int, 0, n*n)
		for i := 0; i < n; i++ {
			start := 0
			if !directed {
				start = i
			}
			for j := start; j < n; j++ {
				if i == j && !loops {
					continue
				}
				ends = append(ends, i, j)
			}
		}

		return appendBlock(methodFull, g, n, ends)
	}
}

// Star returns a Constructor for a star with n vertices around center.
// Spokes are emitted for leaves in ascending order; StarMutual emits
// center→leaf followed by leaf→center on directed graphs and a single edge
// otherwise.
//
// Complexity: O(n).
func Star(n int, mode StarMode, center int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodStar, "n", n, minStarNodes); err != nil {
			return err
		}
		if center < 0 || center >= n {
			return builderErrorf(methodStar, ErrBadParameter, "center=%d not in [0,%d)", center, n)
		}
		if mode < StarOut || mode > StarUndirected {
			return builderErrorf(methodStar, ErrBadParameter, "mode=%d", int(mode))
		}
		mutual := mode == StarMutual && g.Directed()
		ends := make([]int, 0, 4*(n-1))
		for leaf := 0; leaf < n; leaf++ {
			if leaf == center {
				continue
			}
			switch {
			case mode == StarIn:
				ends = append(ends, leaf, center)
			case mutual:
				ends = append(ends, center, leaf, leaf, center)
			default:
				ends = append(ends, center, leaf)
			}
		}

		return appendBlock(methodStar, g, n, ends)
	}
}

// Ring returns a Constructor for a path 0-1-...-(n-1), closed by (n-1)-0 when
// circular and n >= 3. With mutual on a directed graph each edge is followed
// by its reverse.
//
// Complexity: O(n).
func Ring(n int, mutual, circular bool) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodRing, "n", n, minRingNodes); err != nil {
			return err
		}
		both := mutual && g.Directed()
		ends := make([]int, 0, 4*n)
		link := func(u, v int) {
			ends = append(ends, u, v)
			if both {
				ends = append(ends, v, u)
			}
		}
		for i := 0; i+1 < n; i++ {
			link(i, i+1)
		}
		if circular && n >= minCircularRing {
			link(n-1, 0)
		}

		return appendBlock(methodRing, g, n, ends)
	}
}

// Tree returns a Constructor for a k-ary tree with n vertices, filled level
// by level: the parent of vertex i > 0 is (i-1)/children. Edges are emitted
// by ascending child id.
//
// Complexity: O(n).
func Tree(n, children int, mode TreeMode) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodTree, "n", n, minTreeNodes); err != nil {
			return err
		}
		if err := validateMin(methodTree, "children", children, minTreeChildren); err != nil {
			return err
		}
		if mode < TreeOut || mode > TreeUndirected {
			return builderErrorf(methodTree, ErrBadParameter, "mode=%d", int(mode))
		}
		ends := make([]int, 0, 2*(n-1))
		for child := 1; child < n; child++ {
			parent := (child - 1) / children
			if mode == TreeIn {
				ends = append(ends, child, parent)
			} else {
				ends = append(ends, parent, child)
			}
		}

		return appendBlock(methodTree, g, n, ends)
	}
}

// FullCitation returns a Constructor where every vertex i cites all j < i
// (edge i→j). Order: i asc, then j asc. On undirected graphs this is K_n.
//
// Complexity: O(n^2).
func FullCitation(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodFullCitation, "n", n, minCitationNodes); err != nil {
			return err
		}
		ends := make([]int, 0, n*(n-1))
		for i := 1; i < n; i++ {
			for j := 0; j < i; j++ {
				ends = append(ends, i, j)
			}
		}

		return appendBlock(methodFullCitation, g, n, ends)
	}
}
