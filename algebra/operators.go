// File: operators.go
// Role: the fixed operator table mapping symbols to algebra operations.
//
//	+  DisjointUnion
//	|  Merge
//	&  Intersection
//	-  Difference
//	~  Complementer (no self-loops), unary

package algebra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvalg/core"
)

// ErrUnknownOperator reports a symbol outside the operator table.
var ErrUnknownOperator = errors.New("algebra: unknown operator")

// Operator is one entry of the operator table.
type Operator rune

const (
	OpDisjointUnion Operator = '+'
	OpMerge         Operator = '|'
	OpIntersection  Operator = '&'
	OpDifference    Operator = '-'
	OpComplement    Operator = '~'
)

var operatorNames = map[Operator]string{
	OpDisjointUnion: "DisjointUnion",
	OpMerge:         "Merge",
	OpIntersection:  "Intersection",
	OpDifference:    "Difference",
	OpComplement:    "Complementer",
}

// ParseOperator accepts the operator symbol or the operation name
// ("+" or "DisjointUnion", "~" or "Complementer", ...).
func ParseOperator(s string) (Operator, error) {
	for op, name := range operatorNames {
		if s == string(rune(op)) || s == name {
			return op, nil
		}
	}
	return 0, fmt.Errorf("ParseOperator(%q): %w", s, ErrUnknownOperator)
}

// String returns the operation name.
func (o Operator) String() string {
	if name, ok := operatorNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Operator(%q)", rune(o))
}

// Unary reports whether o takes a single operand.
func (o Operator) Unary() bool { return o == OpComplement }

// Apply runs o on its operands; b is ignored for unary operators.
func Apply(o Operator, a, b *core.Graph) (*core.Graph, error) {
	switch o {
	case OpDisjointUnion:
		return DisjointUnion(a, b)
	case OpMerge:
		return Merge(a, b)
	case OpIntersection:
		return Intersection(a, b)
	case OpDifference:
		return Difference(a, b)
	case OpComplement:
		return Complementer(a, core.NoSelfLoops)
	}
	return nil, fmt.Errorf("Apply: %w: %q", ErrUnknownOperator, rune(o))
}
