// File: reader.go
// Role: parsing of the supported formats into new owned graphs.
// Determinism:
//   - Edges keep file order. Symbolic formats (ncol, lgl, GraphML, Pajek
//     labels) number vertices in order of first appearance; Names reports
//     the mapping of the last read.

package graphio

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvalg/core"
	"github.com/katalvlaran/lvalg/engine"
)

// Reader parses one graph from r.
type Reader struct {
	r     io.Reader
	cfg   config
	names []string
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader, opts ...Option) *Reader {
	return &Reader{r: r, cfg: newConfig(opts...)}
}

// Names returns the vertex names seen by the last read of a symbolic format,
// indexed by vertex id; nil for numeric formats.
func (rd *Reader) Names() []string {
	return rd.names
}

// Read dispatches on format; FormatAuto and FormatGraphViz are rejected.
func (rd *Reader) Read(format Format) (*core.Graph, error) {
	switch format {
	case FormatEdgeList:
		return rd.ReadEdgeList()
	case FormatNCOL:
		return rd.ReadNCOL()
	case FormatLGL:
		return rd.ReadLGL()
	case FormatGraphML:
		return rd.ReadGraphML()
	case FormatPajek:
		return rd.ReadPajek()
	case FormatDIMACS:
		return rd.ReadDIMACS()
	case FormatAdjList:
		return rd.ReadAdjList()
	}
	return nil, fmt.Errorf("read %s: %w", format, ErrUnsupportedFormat)
}

// build creates the graph for a finished parse.
func (rd *Reader) build(format Format, n int, ends []int, directed bool) (*core.Graph, error) {
	opts := []core.GraphOption{core.WithDirected(directed)}
	if rd.cfg.eng != nil {
		opts = append(opts, core.WithEngine(rd.cfg.eng))
	}
	g, err := core.NewGraphFromEdges(n, ends, opts...)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", format, err)
	}
	log.Debug("read graph", "format", format, "vertices", g.VCount(), "edges", g.ECount(), "directed", directed)
	return g, nil
}

// lines calls fn for every line with its 1-based number and its
// whitespace-separated fields. Blank lines are skipped.
func (rd *Reader) lines(fn func(line int, fields []string) error) error {
	sc := bufio.NewScanner(rd.r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for line := 1; sc.Scan(); line++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if err := fn(line, fields); err != nil {
			return err
		}
	}
	return sc.Err()
}

// vertexID parses a non-negative vertex id, subtracting base (0 or 1).
func vertexID(format Format, line int, s string, base int) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < base {
		return 0, parseErrorf(format, line, "bad vertex %q", s)
	}
	return v - base, nil
}

// symbols numbers names in order of first appearance.
type symbols struct {
	ids   map[string]int
	names []string
}

func (s *symbols) id(name string) int {
	if s.ids == nil {
		s.ids = map[string]int{}
	}
	if id, ok := s.ids[name]; ok {
		return id
	}
	id := len(s.names)
	s.ids[name] = id
	s.names = append(s.names, name)
	return id
}

// ReadEdgeList reads whitespace-separated vertex id pairs. Lines starting
// with '#' are comments. The vertex count is the largest id plus one.
func (rd *Reader) ReadEdgeList() (*core.Graph, error) {
	rd.names = nil
	var ends []int
	n := 0
	last := 0
	err := rd.lines(func(line int, fields []string) error {
		if strings.HasPrefix(fields[0], "#") {
			return nil
		}
		last = line
		for _, f := range fields {
			v, err := vertexID(FormatEdgeList, line, f, 0)
			if err != nil {
				return err
			}
			ends = append(ends, v)
			if v >= n {
				n = v + 1
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(ends)%2 != 0 {
		return nil, parseErrorf(FormatEdgeList, last, "odd number of vertex ids")
	}
	return rd.build(FormatEdgeList, n, ends, rd.cfg.directed)
}

// ReadNCOL reads "name name [weight]" lines; weights are ignored.
func (rd *Reader) ReadNCOL() (*core.Graph, error) {
	rd.names = nil
	var (
		syms symbols
		ends []int
	)
	err := rd.lines(func(line int, fields []string) error {
		if len(fields) < 2 || len(fields) > 3 {
			return parseErrorf(FormatNCOL, line, "want 2 or 3 fields, got %d", len(fields))
		}
		if len(fields) == 3 {
			if _, err := strconv.ParseFloat(fields[2], 64); err != nil {
				return parseErrorf(FormatNCOL, line, "bad weight %q", fields[2])
			}
		}
		ends = append(ends, syms.id(fields[0]), syms.id(fields[1]))
		return nil
	})
	if err != nil {
		return nil, err
	}
	rd.names = syms.names
	return rd.build(FormatNCOL, len(syms.names), ends, rd.cfg.directed)
}

// ReadLGL reads "# name" headers, each followed by one neighbor per line.
func (rd *Reader) ReadLGL() (*core.Graph, error) {
	rd.names = nil
	var (
		syms symbols
		ends []int
	)
	current := -1
	err := rd.lines(func(line int, fields []string) error {
		if fields[0] == "#" {
			if len(fields) != 2 {
				return parseErrorf(FormatLGL, line, "bad header")
			}
			current = syms.id(fields[1])
			return nil
		}
		if current < 0 {
			return parseErrorf(FormatLGL, line, "neighbor before first header")
		}
		if len(fields) > 2 {
			return parseErrorf(FormatLGL, line, "want 1 or 2 fields, got %d", len(fields))
		}
		ends = append(ends, current, syms.id(fields[0]))
		return nil
	})
	if err != nil {
		return nil, err
	}
	rd.names = syms.names
	return rd.build(FormatLGL, len(syms.names), ends, rd.cfg.directed)
}

// ReadAdjList reads lines "v w1 w2 ...", one edge v-wi per neighbor.
func (rd *Reader) ReadAdjList() (*core.Graph, error) {
	rd.names = nil
	var ends []int
	n := 0
	err := rd.lines(func(line int, fields []string) error {
		if strings.HasPrefix(fields[0], "#") {
			return nil
		}
		ids := make([]int, len(fields))
		for i, f := range fields {
			v, err := vertexID(FormatAdjList, line, f, 0)
			if err != nil {
				return err
			}
			ids[i] = v
			if v >= n {
				n = v + 1
			}
		}
		for _, w := range ids[1:] {
			ends = append(ends, ids[0], w)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rd.build(FormatAdjList, n, ends, rd.cfg.directed)
}

// ReadPajek reads "*Vertices n", optional "id label" lines, and 1-based
// "*Edges" or "*Arcs" sections. Any "*Arcs" section makes the graph
// directed. Names is nil unless the file labels at least one vertex;
// unlabeled vertices are then named in decimal.
func (rd *Reader) ReadPajek() (*core.Graph, error) {
	rd.names = nil
	const (
		none = iota
		vertices
		edges
	)
	var (
		labels   = map[int]string{}
		ends     []int
		n        = -1
		section  = none
		directed = rd.cfg.directed
	)
	err := rd.lines(func(line int, fields []string) error {
		if strings.HasPrefix(fields[0], "%") {
			return nil
		}
		if strings.HasPrefix(fields[0], "*") {
			switch strings.ToLower(fields[0]) {
			case "*vertices":
				if len(fields) < 2 {
					return parseErrorf(FormatPajek, line, "missing vertex count")
				}
				c, err := strconv.Atoi(fields[1])
				if err != nil || c < 0 || int64(c) > engine.MaxVertices {
					return parseErrorf(FormatPajek, line, "bad vertex count %q", fields[1])
				}
				n, section = c, vertices
			case "*edges":
				section = edges
			case "*arcs":
				section, directed = edges, true
			default:
				return parseErrorf(FormatPajek, line, "unknown section %q", fields[0])
			}
			return nil
		}
		switch section {
		case vertices:
			v, err := vertexID(FormatPajek, line, fields[0], 1)
			if err != nil || v >= n {
				return parseErrorf(FormatPajek, line, "bad vertex %q", fields[0])
			}
			if len(fields) > 1 {
				label := strings.Join(fields[1:], " ")
				if uq, err := strconv.Unquote(label); err == nil {
					label = uq
				}
				labels[v] = label
			}
		case edges:
			if len(fields) < 2 {
				return parseErrorf(FormatPajek, line, "want at least 2 fields")
			}
			for _, f := range fields[:2] {
				v, err := vertexID(FormatPajek, line, f, 1)
				if err != nil || v >= n {
					return parseErrorf(FormatPajek, line, "bad vertex %q", f)
				}
				ends = append(ends, v)
			}
		default:
			return parseErrorf(FormatPajek, line, "data before *Vertices")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, parseErrorf(FormatPajek, 0, "missing *Vertices")
	}
	g, err := rd.build(FormatPajek, n, ends, directed)
	if err != nil {
		return nil, err
	}
	if len(labels) > 0 {
		rd.names = make([]string, n)
		for v := range rd.names {
			if l, ok := labels[v]; ok {
				rd.names[v] = l
			} else {
				rd.names[v] = DecimalNames(v)
			}
		}
	}
	return g, nil
}

// ReadDIMACS reads a 1-based DIMACS file with a "p <type> n m" line
// followed by "a" or "e" edge lines. "c" comments and "n" source/target
// lines are accepted; the edge count must match the problem line.
func (rd *Reader) ReadDIMACS() (*core.Graph, error) {
	rd.names = nil
	var ends []int
	n, m := -1, 0
	err := rd.lines(func(line int, fields []string) error {
		switch fields[0] {
		case "c", "n":
			return nil
		case "p":
			if n >= 0 {
				return parseErrorf(FormatDIMACS, line, "duplicate problem line")
			}
			if len(fields) != 4 {
				return parseErrorf(FormatDIMACS, line, "want 'p <type> <n> <m>'")
			}
			var err1, err2 error
			n, err1 = strconv.Atoi(fields[2])
			m, err2 = strconv.Atoi(fields[3])
			if err1 != nil || err2 != nil || n < 0 || m < 0 {
				return parseErrorf(FormatDIMACS, line, "bad problem size")
			}
		case "a", "e":
			if n < 0 {
				return parseErrorf(FormatDIMACS, line, "edge before problem line")
			}
			if len(fields) < 3 {
				return parseErrorf(FormatDIMACS, line, "want at least 3 fields")
			}
			for _, f := range fields[1:3] {
				v, err := vertexID(FormatDIMACS, line, f, 1)
				if err != nil || v >= n {
					return parseErrorf(FormatDIMACS, line, "bad vertex %q", f)
				}
				ends = append(ends, v)
			}
		default:
			return parseErrorf(FormatDIMACS, line, "unknown line type %q", fields[0])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, parseErrorf(FormatDIMACS, 0, "missing problem line")
	}
	if len(ends)/2 != m {
		return nil, parseErrorf(FormatDIMACS, 0, "problem line declares %d edges, found %d", m, len(ends)/2)
	}
	return rd.build(FormatDIMACS, n, ends, rd.cfg.directed)
}

// ReadGraphML reads the first graph of a GraphML document. Directedness
// comes from its edgedefault attribute.
func (rd *Reader) ReadGraphML() (*core.Graph, error) {
	rd.names = nil
	var doc graphmlDoc
	if err := xml.NewDecoder(rd.r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("read %s: %v: %w", FormatGraphML, err, ErrParse)
	}
	if len(doc.Graphs) == 0 {
		return nil, fmt.Errorf("read %s: no graph element: %w", FormatGraphML, ErrParse)
	}
	gr := doc.Graphs[0]
	ids := make(map[string]int, len(gr.Nodes))
	names := make([]string, len(gr.Nodes))
	for i, node := range gr.Nodes {
		if _, dup := ids[node.ID]; dup {
			return nil, fmt.Errorf("read %s: duplicate node %q: %w", FormatGraphML, node.ID, ErrParse)
		}
		ids[node.ID] = i
		names[i] = node.ID
	}
	ends := make([]int, 0, 2*len(gr.Edges))
	for _, e := range gr.Edges {
		u, ok1 := ids[e.Source]
		v, ok2 := ids[e.Target]
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("read %s: edge %q-%q references unknown node: %w",
				FormatGraphML, e.Source, e.Target, ErrParse)
		}
		ends = append(ends, u, v)
	}
	rd.names = names
	return rd.build(FormatGraphML, len(names), ends, gr.EdgeDefault == "directed")
}
