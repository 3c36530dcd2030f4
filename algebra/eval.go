// File: eval.go
// Role: evaluation of algebra expressions such as "(J - G) | H".
//
// Grammar, loosest binding first:
//
//	expr   = and { "|" and }
//	and    = sum { "&" sum }
//	sum    = unary { ("+" | "-") unary }
//	unary  = "~" unary | primary
//	primary = name | "(" expr ")"
//
// Names are [A-Za-z_][A-Za-z0-9_]*. Binary operators associate to the left.

package algebra

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/katalvlaran/lvalg/core"
)

var (
	// ErrSyntax reports a malformed expression.
	ErrSyntax = errors.New("algebra: syntax error")
	// ErrUnknownGraph reports a name missing from the environment.
	ErrUnknownGraph = errors.New("algebra: unknown graph")
)

// Eval evaluates expr over the graphs named in env and returns a new owned
// graph. Graphs in env are only read; every intermediate result is closed.
func Eval(expr string, env map[string]*core.Graph) (*core.Graph, error) {
	toks, err := tokenize(expr)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, env: env}
	v, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.toks) {
		v.close()
		return nil, fmt.Errorf("Eval: unexpected %q at %d: %w", p.toks[p.pos].text, p.toks[p.pos].at, ErrSyntax)
	}
	if v.owned {
		return v.g, nil
	}
	g, err := v.g.Clone()
	if err != nil {
		return nil, fmt.Errorf("Eval: %w", err)
	}
	return g, nil
}

type token struct {
	text string
	at   int
}

func tokenize(expr string) ([]token, error) {
	var toks []token
	rs := []rune(expr)
	for i := 0; i < len(rs); {
		r := rs[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '(' || r == ')' || r == '~' || r == '+' || r == '-' || r == '&' || r == '|':
			toks = append(toks, token{text: string(r), at: i})
			i++
		case r == '_' || unicode.IsLetter(r):
			j := i + 1
			for j < len(rs) && (rs[j] == '_' || unicode.IsLetter(rs[j]) || unicode.IsDigit(rs[j])) {
				j++
			}
			toks = append(toks, token{text: string(rs[i:j]), at: i})
			i = j
		default:
			return nil, fmt.Errorf("Eval: unexpected %q at %d: %w", r, i, ErrSyntax)
		}
	}
	return toks, nil
}

// value is an operand during evaluation; owned values are intermediate
// results and are closed once consumed.
type value struct {
	g     *core.Graph
	owned bool
}

func (v value) close() {
	if v.owned {
		if err := v.g.Close(); err != nil {
			log.LogError(err, "closing intermediate result")
		}
	}
}

type parser struct {
	toks []token
	pos  int
	env  map[string]*core.Graph
}

func (p *parser) peek() string {
	if p.pos < len(p.toks) {
		return p.toks[p.pos].text
	}
	return ""
}

// binary parses one left-associative precedence level.
func (p *parser) binary(next func() (value, error), ops ...Operator) (value, error) {
	left, err := next()
	if err != nil {
		return value{}, err
	}
	for {
		var op Operator
		found := false
		for _, o := range ops {
			if p.peek() == string(rune(o)) {
				op, found = o, true
			}
		}
		if !found {
			return left, nil
		}
		p.pos++
		right, err := next()
		if err != nil {
			left.close()
			return value{}, err
		}
		g, err := Apply(op, left.g, right.g)
		left.close()
		right.close()
		if err != nil {
			return value{}, fmt.Errorf("Eval: %w", err)
		}
		left = value{g: g, owned: true}
	}
}

func (p *parser) expr() (value, error) { return p.binary(p.and, OpMerge) }

func (p *parser) and() (value, error) { return p.binary(p.sum, OpIntersection) }

func (p *parser) sum() (value, error) { return p.binary(p.unary, OpDisjointUnion, OpDifference) }

func (p *parser) unary() (value, error) {
	if p.peek() != string(rune(OpComplement)) {
		return p.primary()
	}
	p.pos++
	operand, err := p.unary()
	if err != nil {
		return value{}, err
	}
	g, err := Apply(OpComplement, operand.g, nil)
	operand.close()
	if err != nil {
		return value{}, fmt.Errorf("Eval: %w", err)
	}
	return value{g: g, owned: true}, nil
}

func (p *parser) primary() (value, error) {
	if p.pos >= len(p.toks) {
		return value{}, fmt.Errorf("Eval: unexpected end of expression: %w", ErrSyntax)
	}
	t := p.toks[p.pos]
	p.pos++
	first := []rune(t.text)[0]
	switch {
	case t.text == "(":
		v, err := p.expr()
		if err != nil {
			return value{}, err
		}
		if p.peek() != ")" {
			v.close()
			return value{}, fmt.Errorf("Eval: missing ')' for '(' at %d: %w", t.at, ErrSyntax)
		}
		p.pos++
		return v, nil
	case first == '_' || unicode.IsLetter(first):
		g, ok := p.env[t.text]
		if !ok {
			return value{}, fmt.Errorf("Eval: %q: %w", t.text, ErrUnknownGraph)
		}
		return value{g: g}, nil
	}
	return value{}, fmt.Errorf("Eval: unexpected %q at %d: %w", t.text, t.at, ErrSyntax)
}
