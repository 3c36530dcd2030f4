// SPDX-License-Identifier: MIT
// Package: lvalg/builder
//
// impl_sequence.go - word and shift based families: DeBruijn, Kautz, LCF.
//
// Contract:
//   - Vertices are local ids 0..n-1 of the appended block.
//   - DeBruijn and Kautz number their words in lexicographic order; the
//     vertex count is bounded by engine.MaxVertices.
//   - LCF emits the ring first, then the chords, dropping self-loops and
//     repeated pairs while keeping first-seen order.

package builder

import (
	"github.com/katalvlaran/lvalg/core"
	"github.com/katalvlaran/lvalg/engine"
)

const (
	methodDeBruijn = "DeBruijn"
	methodKautz    = "Kautz"
	methodLCF      = "LCF"

	minAlphabet   = 1
	minWordLength = 1
	minLCFNodes   = 1
)

// power returns base^exp, or ok=false once the result exceeds limit.
func power(base, exp int, limit int64) (int, bool) {
	r := int64(1)
	for i := 0; i < exp; i++ {
		if r > limit/int64(base) {
			return 0, false
		}
		r *= int64(base)
	}
	return int(r), true
}

// DeBruijn returns a Constructor for the de Bruijn graph of words of length
// n over m letters. Vertex v is the word with base-m digits of v; it links
// to the m words obtained by dropping its first letter and appending one.
// Order: v asc, then appended letter asc. Self-loops appear on the
// constant words.
//
// Complexity: O(m^(n+1)).
func DeBruijn(m, n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodDeBruijn, "m", m, minAlphabet); err != nil {
			return err
		}
		if err := validateMin(methodDeBruijn, "n", n, minWordLength); err != nil {
			return err
		}
		count, ok := power(m, n, engine.MaxVertices)
		if !ok {
			return builderErrorf(methodDeBruijn, ErrBadParameter, "%d^%d vertices exceed %d", m, n, engine.MaxVertices)
		}
		if int64(m) > engine.MaxEdges/int64(count) {
			return builderErrorf(methodDeBruijn, ErrBadParameter, "%d*%d edges exceed %d", count, m, engine.MaxEdges)
		}
		ends := make([]int, 0, 2*count*m)
		for v := 0; v < count; v++ {
			shifted := (v * m) % count
			for x := 0; x < m; x++ {
				ends = append(ends, v, shifted+x)
			}
		}

		return appendBlock(methodDeBruijn, g, count, ends)
	}
}

// Kautz returns a Constructor for the Kautz graph K(m, n): words of length
// n+1 over m+1 letters with no two equal neighbors. Each word links to the
// m words obtained by dropping its first letter and appending any letter
// other than its new last one. Order: word asc, then appended letter asc.
//
// Complexity: O((m+1) * m^(n+1)).
func Kautz(m, n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodKautz, "m", m, minAlphabet); err != nil {
			return err
		}
		if n < 0 {
			return builderErrorf(methodKautz, ErrBadParameter, "n=%d < 0", n)
		}
		perm, ok := power(m, n, engine.MaxVertices/int64(m+1))
		if !ok {
			return builderErrorf(methodKautz, ErrBadParameter, "(%d+1)*%d^%d vertices exceed %d", m, m, n, engine.MaxVertices)
		}
		count := (m + 1) * perm
		if int64(m) > engine.MaxEdges/int64(count) {
			return builderErrorf(methodKautz, ErrBadParameter, "%d*%d edges exceed %d", count, m, engine.MaxEdges)
		}
		radix := m + 1

		// words in lexicographic order, encoded base m+1
		words := make([]int, 0, count)
		var walk func(code, last, left int)
		walk = func(code, last, left int) {
			if left == 0 {
				words = append(words, code)
				return
			}
			for x := 0; x < radix; x++ {
				if x != last {
					walk(code*radix+x, x, left-1)
				}
			}
		}
		walk(0, -1, n+1)

		index := make(map[int]int, count)
		for id, code := range words {
			index[code] = id
		}
		top := 1
		for i := 0; i < n; i++ {
			top *= radix
		}
		ends := make([]int, 0, 2*count*m)
		for id, code := range words {
			last := code % radix
			rest := (code % top) * radix
			for x := 0; x < radix; x++ {
				if x != last {
					ends = append(ends, id, index[rest+x])
				}
			}
		}

		return appendBlock(methodKautz, g, count, ends)
	}
}

// LCF returns a Constructor for the graph with LCF notation
// [shifts]^repeats on n vertices: the ring 0-1-...-(n-1)-0 plus, for the
// k-th entry of the repeated shift list, a chord from k mod n to
// (k + shift) mod n. Self-loops and pairs already present are dropped.
//
// Complexity: O(n + len(shifts)*repeats).
func LCF(n int, shifts []int, repeats int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodLCF, "n", n, minLCFNodes); err != nil {
			return err
		}
		if repeats < 0 {
			return builderErrorf(methodLCF, ErrBadParameter, "repeats=%d < 0", repeats)
		}
		directed := g.Directed()
		seen := make(map[[2]int]bool, n+len(shifts)*repeats)
		ends := make([]int, 0, 2*(n+len(shifts)*repeats))
		link := func(u, v int) {
			if u == v {
				return
			}
			k := [2]int{u, v}
			if !directed && u > v {
				k = [2]int{v, u}
			}
			if seen[k] {
				return
			}
			seen[k] = true
			ends = append(ends, u, v)
		}
		for i := 0; i < n; i++ {
			link(i, (i+1)%n)
		}
		for k := 0; k < len(shifts)*repeats; k++ {
			from := k % n
			to := ((from+shifts[k%len(shifts)])%n + n) % n
			link(from, to)
		}

		return appendBlock(methodLCF, g, n, ends)
	}
}
