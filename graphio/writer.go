// File: writer.go
// Role: serialization of a borrowed graph into the supported formats.
// Determinism:
//   - Output follows vertex id and edge id order; equal graphs and options
//     produce byte-identical output.
// Concurrency:
//   - The graph must not be mutated while a write is in progress.

package graphio

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lvalg/core"
)

// Writer serializes one graph. It borrows the graph, which must outlive it;
// writing never mutates the graph.
type Writer struct {
	g   *core.Graph
	w   io.Writer
	cfg config
}

// NewWriter returns a Writer over a borrowed alias of g.
func NewWriter(g *core.Graph, w io.Writer, opts ...Option) (*Writer, error) {
	if err := g.Check("graphio.NewWriter"); err != nil {
		return nil, err
	}
	return &Writer{g: g.Borrow(), w: w, cfg: newConfig(opts...)}, nil
}

// Close drops the borrowed alias. The graph itself stays alive.
func (wr *Writer) Close() error {
	return wr.g.Close()
}

// Write dispatches on format; FormatAuto is rejected.
func (wr *Writer) Write(format Format) error {
	switch format {
	case FormatEdgeList:
		return wr.WriteEdgeList()
	case FormatNCOL:
		return wr.WriteNCOL()
	case FormatLGL:
		return wr.WriteLGL()
	case FormatGraphML:
		return wr.WriteGraphML()
	case FormatGraphViz:
		return wr.WriteGraphViz()
	case FormatPajek:
		return wr.WritePajek()
	case FormatDIMACS:
		return wr.WriteDIMACS()
	case FormatAdjList:
		return wr.WriteAdjList()
	}
	return fmt.Errorf("write %s: %w", format, ErrUnsupportedFormat)
}

// snapshot reads what every writer needs from the graph.
type snapshot struct {
	n        int
	directed bool
	ends     []int
}

func (wr *Writer) snapshot(format Format) (snapshot, error) {
	op := "write " + format.String()
	if err := wr.g.Check(op); err != nil {
		return snapshot{}, err
	}
	ends, err := wr.g.EdgeList()
	if err != nil {
		return snapshot{}, fmt.Errorf("%s: %w", op, err)
	}
	log.Trace("writing graph", "format", format, "vertices", wr.g.VCount(), "edges", len(ends)/2)
	return snapshot{n: wr.g.VCount(), directed: wr.g.Directed(), ends: ends}, nil
}

// bySource groups edge targets under their stored source vertex, in edge id
// order.
func (s snapshot) bySource() [][]int {
	rows := make([][]int, s.n)
	for i := 0; i+1 < len(s.ends); i += 2 {
		rows[s.ends[i]] = append(rows[s.ends[i]], s.ends[i+1])
	}
	return rows
}

// isolated reports vertices with no incident edge.
func (s snapshot) isolated() []bool {
	iso := make([]bool, s.n)
	for i := range iso {
		iso[i] = true
	}
	for _, v := range s.ends {
		iso[v] = false
	}
	return iso
}

// emit runs body against a buffered writer and flushes it.
func (wr *Writer) emit(format Format, body func(b *bufio.Writer, s snapshot) error) error {
	s, err := wr.snapshot(format)
	if err != nil {
		return err
	}
	b := bufio.NewWriter(wr.w)
	if err = body(b, s); err == nil {
		err = b.Flush()
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	return nil
}

// WriteEdgeList writes one "from to" line per edge.
func (wr *Writer) WriteEdgeList() error {
	return wr.emit(FormatEdgeList, func(b *bufio.Writer, s snapshot) error {
		for i := 0; i+1 < len(s.ends); i += 2 {
			if _, err := fmt.Fprintf(b, "%d %d\n", s.ends[i], s.ends[i+1]); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteNCOL writes one "name name" line per edge. Isolated vertices are not
// represented.
func (wr *Writer) WriteNCOL() error {
	return wr.emit(FormatNCOL, func(b *bufio.Writer, s snapshot) error {
		for i := 0; i+1 < len(s.ends); i += 2 {
			if _, err := fmt.Fprintf(b, "%s %s\n", wr.cfg.names(s.ends[i]), wr.cfg.names(s.ends[i+1])); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteLGL writes a "# name" header per source vertex followed by one line
// per target. Isolated vertices get a header of their own.
func (wr *Writer) WriteLGL() error {
	return wr.emit(FormatLGL, func(b *bufio.Writer, s snapshot) error {
		rows, iso := s.bySource(), s.isolated()
		for v, row := range rows {
			if len(row) == 0 && !iso[v] {
				continue
			}
			if _, err := fmt.Fprintf(b, "# %s\n", wr.cfg.names(v)); err != nil {
				return err
			}
			for _, w := range row {
				if _, err := fmt.Fprintf(b, "%s\n", wr.cfg.names(w)); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// WriteAdjList writes one line per vertex: the vertex followed by the
// targets of the edges stored with it as source.
func (wr *Writer) WriteAdjList() error {
	return wr.emit(FormatAdjList, func(b *bufio.Writer, s snapshot) error {
		for v, row := range s.bySource() {
			if _, err := b.WriteString(strconv.Itoa(v)); err != nil {
				return err
			}
			for _, w := range row {
				if _, err := fmt.Fprintf(b, " %d", w); err != nil {
					return err
				}
			}
			if err := b.WriteByte('\n'); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteGraphViz writes a DOT graph or digraph with quoted vertex names.
func (wr *Writer) WriteGraphViz() error {
	return wr.emit(FormatGraphViz, func(b *bufio.Writer, s snapshot) error {
		kind, arrow := "graph", "--"
		if s.directed {
			kind, arrow = "digraph", "->"
		}
		if _, err := fmt.Fprintf(b, "/* Created by lvalg */\n%s {\n", kind); err != nil {
			return err
		}
		for v := 0; v < s.n; v++ {
			if _, err := fmt.Fprintf(b, "  %s;\n", strconv.Quote(wr.cfg.names(v))); err != nil {
				return err
			}
		}
		for i := 0; i+1 < len(s.ends); i += 2 {
			u, v := wr.cfg.names(s.ends[i]), wr.cfg.names(s.ends[i+1])
			if _, err := fmt.Fprintf(b, "  %s %s %s;\n", strconv.Quote(u), arrow, strconv.Quote(v)); err != nil {
				return err
			}
		}
		_, err := b.WriteString("}\n")
		return err
	})
}

// WritePajek writes "*Vertices n" with quoted labels and a 1-based "*Edges"
// (undirected) or "*Arcs" (directed) section.
func (wr *Writer) WritePajek() error {
	return wr.emit(FormatPajek, func(b *bufio.Writer, s snapshot) error {
		if _, err := fmt.Fprintf(b, "*Vertices %d\n", s.n); err != nil {
			return err
		}
		for v := 0; v < s.n; v++ {
			if _, err := fmt.Fprintf(b, "%d %s\n", v+1, strconv.Quote(wr.cfg.names(v))); err != nil {
				return err
			}
		}
		section := "*Edges"
		if s.directed {
			section = "*Arcs"
		}
		if _, err := fmt.Fprintln(b, section); err != nil {
			return err
		}
		for i := 0; i+1 < len(s.ends); i += 2 {
			if _, err := fmt.Fprintf(b, "%d %d\n", s.ends[i]+1, s.ends[i+1]+1); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteDIMACS writes a 1-based DIMACS file. With WithFlow it is a max-flow
// problem ("p max", unit capacities on "a" lines); otherwise a plain graph
// ("p edge", "e" lines).
func (wr *Writer) WriteDIMACS() error {
	return wr.emit(FormatDIMACS, func(b *bufio.Writer, s snapshot) error {
		m := len(s.ends) / 2
		tag := "e"
		if wr.cfg.flow {
			if wr.cfg.source >= s.n || wr.cfg.target >= s.n {
				return fmt.Errorf("flow endpoints %d,%d outside %d vertices: %w",
					wr.cfg.source, wr.cfg.target, s.n, core.ErrInvalidRange)
			}
			tag = "a"
			if _, err := fmt.Fprintf(b, "c created by lvalg\np max %d %d\nn %d s\nn %d t\n",
				s.n, m, wr.cfg.source+1, wr.cfg.target+1); err != nil {
				return err
			}
		} else if _, err := fmt.Fprintf(b, "c created by lvalg\np edge %d %d\n", s.n, m); err != nil {
			return err
		}
		for i := 0; i+1 < len(s.ends); i += 2 {
			line := fmt.Sprintf("%s %d %d", tag, s.ends[i]+1, s.ends[i+1]+1)
			if wr.cfg.flow {
				line += " 1"
			}
			if _, err := fmt.Fprintln(b, line); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteGraphML writes a GraphML document. Node ids are the configured
// names, or "n<id>" when no naming scheme was given.
func (wr *Writer) WriteGraphML() error {
	return wr.emit(FormatGraphML, func(b *bufio.Writer, s snapshot) error {
		name := wr.cfg.names
		if !wr.cfg.named {
			name = PrefixedNames("n")
		}
		doc := graphmlDoc{XMLNS: graphmlNS}
		gr := graphmlGraph{ID: "G", EdgeDefault: "undirected"}
		if s.directed {
			gr.EdgeDefault = "directed"
		}
		for v := 0; v < s.n; v++ {
			gr.Nodes = append(gr.Nodes, graphmlNode{ID: name(v)})
		}
		for i := 0; i+1 < len(s.ends); i += 2 {
			gr.Edges = append(gr.Edges, graphmlEdge{Source: name(s.ends[i]), Target: name(s.ends[i+1])})
		}
		doc.Graphs = []graphmlGraph{gr}

		if _, err := b.WriteString(xml.Header); err != nil {
			return err
		}
		enc := xml.NewEncoder(b)
		enc.Indent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return b.WriteByte('\n')
	})
}
