// SPDX-License-Identifier: MIT
// Package: lvalg/builder
//
// impl_create.go - Create(n, edges) and RandomGNP(n, p).
//
// Create:
//   - edges is a flat endpoint list; an odd length or a negative endpoint is
//     ErrBadParameter.
//   - The block has max(n, largest endpoint + 1) vertices.
//
// RandomGNP (Erdős–Rényi G(n,p)):
//   - n ≥ 1, 0 ≤ p ≤ 1, cfg.rng required (checked in that order).
//   - Undirected: trials over pairs i<j. Directed: ordered pairs i!=j.
//   - Trial order: i asc, then j asc, so a fixed seed fixes the graph.

package builder

import (
	"github.com/katalvlaran/lvalg/core"
)

const (
	methodCreate    = "Create"
	methodRandomGNP = "RandomGNP"
	minGNPNodes     = 1
)

// Create returns a Constructor adding the explicit edge list edges.
func Create(n int, edges []int) Constructor {
	ends := append([]int(nil), edges...)
	return func(g *core.Graph, _ builderConfig) error {
		if n < 0 {
			return builderErrorf(methodCreate, ErrBadParameter, "n=%d", n)
		}
		if len(ends)%2 != 0 {
			return builderErrorf(methodCreate, ErrBadParameter, "odd endpoint count %d", len(ends))
		}
		size := n
		for _, v := range ends {
			if v < 0 {
				return builderErrorf(methodCreate, ErrBadParameter, "negative endpoint %d", v)
			}
			if v+1 > size {
				size = v + 1
			}
		}

		return appendBlock(methodCreate, g, size, append([]int(nil), ends...))
	}
}

// RandomGNP returns a Constructor sampling G(n,p).
func RandomGNP(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodRandomGNP, "n", n, minGNPNodes); err != nil {
			return err
		}
		if err := validateProbability(methodRandomGNP, p); err != nil {
			return err
		}
		if cfg.rng == nil {
			return builderErrorf(methodRandomGNP, ErrNeedRandSource, "use WithSeed or WithRand")
		}
		directed := g.Directed()
		var ends []int
		for i := 0; i < n; i++ {
			start := 0
			if !directed {
				start = i + 1
			}
			for j := start; j < n; j++ {
				if i == j {
					continue
				}
				if cfg.rng.Float64() < p {
					ends = append(ends, i, j)
				}
			}
		}

		return appendBlock(methodRandomGNP, g, n, ends)
	}
}
