// File: decompose.go
// Role: split a graph into its connected components.
// Determinism:
//   - Components are ordered by their lowest vertex id.
//   - Each component keeps its vertices in ascending original-id order and
//     its edges in original edge-id order.
// Complexity:
//   - O(V + E) to label components, plus O(E) per emitted component.

package algebra

import (
	"errors"
	"fmt"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/lvalg/adjlist"
	"github.com/katalvlaran/lvalg/core"
)

// Connectedness selects weak or strong components.
type Connectedness int

const (
	// Weak ignores edge direction.
	Weak Connectedness = iota
	// Strong requires a directed path both ways; same as Weak on undirected graphs.
	Strong
)

func (c Connectedness) String() string {
	switch c {
	case Weak:
		return "weak"
	case Strong:
		return "strong"
	}
	return "unknown"
}

// Unlimited is the WithMaxComponents value that keeps every component.
const Unlimited = -1

// DecomposeOption configures Decompose. An invalid value is recorded and
// surfaced as core.ErrInvalidRange when Decompose runs.
type DecomposeOption func(*decomposeOptions)

type decomposeOptions struct {
	mode          Connectedness
	maxComponents int
	minElements   int
	err           error
}

func defaultDecomposeOptions() decomposeOptions {
	return decomposeOptions{mode: Weak, maxComponents: Unlimited, minElements: 1}
}

// WithMode selects Weak (default) or Strong components.
func WithMode(mode Connectedness) DecomposeOption {
	return func(o *decomposeOptions) {
		if mode != Weak && mode != Strong {
			o.err = errors.Join(o.err, fmt.Errorf("%w: unknown mode %d", core.ErrInvalidRange, int(mode)))
			return
		}
		o.mode = mode
	}
}

// WithMaxComponents stops after k components; Unlimited (default) keeps all.
func WithMaxComponents(k int) DecomposeOption {
	return func(o *decomposeOptions) {
		if k < 1 && k != Unlimited {
			o.err = errors.Join(o.err, fmt.Errorf("%w: max components %d", core.ErrInvalidRange, k))
			return
		}
		o.maxComponents = k
	}
}

// WithMinElements skips components with fewer than m vertices (default 1).
func WithMinElements(m int) DecomposeOption {
	return func(o *decomposeOptions) {
		if m < 1 {
			o.err = errors.Join(o.err, fmt.Errorf("%w: min elements %d", core.ErrInvalidRange, m))
			return
		}
		o.minElements = m
	}
}

// Decompose returns one new owned graph per component of a. On failure every
// component built so far is closed.
func Decompose(a *core.Graph, opts ...DecomposeOption) ([]*core.Graph, error) {
	const op = "Decompose"
	s, err := operands(op, a)
	if err != nil {
		return nil, err
	}
	o := defaultDecomposeOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("%s: %w", op, o.err)
	}

	var comps [][]int
	if o.mode == Strong && s.directed {
		comps, err = strongComponents(a)
	} else {
		comps, err = weakComponents(a)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ends, err := a.EdgeList()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	label := make([]int, a.VCount())
	index := make([]int, a.VCount())
	for c, vs := range comps {
		for i, v := range vs {
			label[v], index[v] = c, i
		}
	}

	var out []*core.Graph
	for c, vs := range comps {
		if o.maxComponents != Unlimited && len(out) >= o.maxComponents {
			break
		}
		if len(vs) < o.minElements {
			continue
		}
		var sub []int
		for i := 0; i+1 < len(ends); i += 2 {
			u, v := ends[i], ends[i+1]
			if label[u] == c && label[v] == c {
				sub = append(sub, index[u], index[v])
			}
		}
		g, err := s.build(op, len(vs), sub)
		if err != nil {
			closeAll(out)
			return nil, err
		}
		out = append(out, g)
	}
	log.Debug("decomposed", "mode", o.mode, "components", len(comps), "kept", len(out))

	return out, nil
}

// weakComponents labels components by breadth-first search over ascending
// start vertices, ignoring direction.
func weakComponents(a *core.Graph) ([][]int, error) {
	rows, err := adjlist.Build(a, core.All)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	n := rows.Size()
	seen := roaring.New()
	var comps [][]int
	for start := 0; start < n; start++ {
		if seen.Contains(uint32(start)) {
			continue
		}
		seen.Add(uint32(start))
		queue := []int{start}
		for qi := 0; qi < len(queue); qi++ {
			row, err := rows.Row(queue[qi])
			if err != nil {
				return nil, err
			}
			for _, w := range row {
				if seen.CheckedAdd(uint32(w)) {
					queue = append(queue, w)
				}
			}
		}
		sort.Ints(queue)
		comps = append(comps, queue)
	}
	return comps, nil
}

// strongComponents runs an iterative Tarjan search over out-neighbors and
// returns the components ordered by their lowest vertex.
func strongComponents(a *core.Graph) ([][]int, error) {
	rows, err := adjlist.Build(a, core.Out)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	n := rows.Size()
	succ := make([][]int, n)
	for v := range succ {
		if succ[v], err = rows.Row(v); err != nil {
			return nil, err
		}
	}

	const unvisited = -1
	order := make([]int, n)
	low := make([]int, n)
	for v := range order {
		order[v] = unvisited
	}
	onStack := roaring.New()
	var (
		stack []int
		comps [][]int
		next  int
	)
	type frame struct{ v, i int }
	for root := 0; root < n; root++ {
		if order[root] != unvisited {
			continue
		}
		call := []frame{{v: root}}
		order[root], low[root] = next, next
		next++
		stack = append(stack, root)
		onStack.Add(uint32(root))

		for len(call) > 0 {
			top := &call[len(call)-1]
			v := top.v
			if top.i < len(succ[v]) {
				w := succ[v][top.i]
				top.i++
				switch {
				case order[w] == unvisited:
					order[w], low[w] = next, next
					next++
					stack = append(stack, w)
					onStack.Add(uint32(w))
					call = append(call, frame{v: w})
				case onStack.Contains(uint32(w)) && order[w] < low[v]:
					low[v] = order[w]
				}
				continue
			}
			call = call[:len(call)-1]
			if len(call) > 0 {
				if p := call[len(call)-1].v; low[v] < low[p] {
					low[p] = low[v]
				}
			}
			if low[v] == order[v] {
				var comp []int
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack.Remove(uint32(w))
					comp = append(comp, w)
					if w == v {
						break
					}
				}
				sort.Ints(comp)
				comps = append(comps, comp)
			}
		}
	}
	sort.Slice(comps, func(i, j int) bool { return comps[i][0] < comps[j][0] })
	return comps, nil
}

func closeAll(gs []*core.Graph) {
	for _, g := range gs {
		if err := g.Close(); err != nil {
			log.LogError(err, "closing partial result")
		}
	}
}
