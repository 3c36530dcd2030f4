// Package algebra combines whole graphs into new, independently owned graphs.
//
// Binary operations (DisjointUnion, Merge, Intersection, Difference,
// Compose) and their list variants never modify their inputs. Results are
// created in the engine of the first input; operands from different engines
// or with mixed directedness fail with core.ErrIncompatibleGraph, and a nil
// operand fails with core.ErrNilGraph. The caller owns every returned graph
// and must Close it.
//
// Edge multiplicities follow multiset rules: Merge keeps the maximum count
// of each edge over its inputs, Intersection the minimum and Difference
// max(0, mA-mB). Merge and Intersection pad smaller graphs with isolated
// vertices up to the largest vertex count.
//
// The operator table maps symbols to operations:
//
//	+  DisjointUnion    |  Merge    &  Intersection
//	-  Difference       ~  Complementer (unary, no self-loops)
//
// Apply runs one operator; Eval evaluates a whole expression with C-style
// precedence (~ binds tightest, then + and -, then &, then |):
//
//	g, err := algebra.Eval("(J - G) | H", map[string]*core.Graph{"J": j, "G": g, "H": h})
package algebra
