// SPDX-License-Identifier: MIT
// Package: lvalg/builder
//
// impl_lattice.go - implementation of Lattice(dims, periodic, mutual).
//
// Contract:
//   - len(dims) ≥ 1 and every dimension ≥ 1 (else ErrTooFewVertices).
//   - Vertex index of coordinate (x0, x1, ...) is x0 + d0*x1 + d0*d1*x2 + ...
//   - Each vertex links to its successor along every dimension, in ascending
//     vertex then dimension order. periodic wraps the last coordinate back to
//     0 when that dimension has at least 3 points.
//   - mutual on a directed graph follows each edge by its reverse.
//
// Complexity:
//   - Time: O(n * len(dims)) where n = Π dims.

package builder

import (
	"github.com/katalvlaran/lvalg/core"
)

const (
	methodLattice   = "Lattice"
	minLatticeDims  = 1
	minLatticeSide  = 1
	minPeriodicSide = 3
)

// Lattice returns a Constructor for a square lattice with the given side
// lengths.
func Lattice(dims []int, periodic, mutual bool) Constructor {
	sides := append([]int(nil), dims...)
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodLattice, "len(dims)", len(sides), minLatticeDims); err != nil {
			return err
		}
		n := 1
		strides := make([]int, len(sides))
		for k, d := range sides {
			if err := validateMin(methodLattice, "dim", d, minLatticeSide); err != nil {
				return err
			}
			strides[k] = n
			n *= d
		}

		both := mutual && g.Directed()
		ends := make([]int, 0, 2*n*len(sides))
		for v := 0; v < n; v++ {
			for k, d := range sides {
				x := (v / strides[k]) % d
				var w int
				switch {
				case x+1 < d:
					w = v + strides[k]
				case periodic && d >= minPeriodicSide:
					w = v - x*strides[k]
				default:
					continue
				}
				ends = append(ends, v, w)
				if both {
					ends = append(ends, w, v)
				}
			}
		}

		return appendBlock(methodLattice, g, n, ends)
	}
}
