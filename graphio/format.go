// File: format.go
// Role: format identifiers and the file extension table.

package graphio

import (
	"fmt"
	"path"
	"strings"
)

// Format identifies a graph file format.
type Format int

const (
	// FormatAuto resolves the format from the file extension.
	FormatAuto Format = iota
	FormatEdgeList
	FormatNCOL
	FormatLGL
	FormatGraphML
	FormatGraphViz
	FormatPajek
	FormatDIMACS
	FormatAdjList
)

var formatNames = []string{
	FormatAuto:     "auto",
	FormatEdgeList: "edgelist",
	FormatNCOL:     "ncol",
	FormatLGL:      "lgl",
	FormatGraphML:  "graphml",
	FormatGraphViz: "graphviz",
	FormatPajek:    "pajek",
	FormatDIMACS:   "dimacs",
	FormatAdjList:  "adjlist",
}

func (f Format) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// extensions maps a lower-case file extension to its format.
var extensions = map[string]Format{
	".edgelist": FormatEdgeList,
	".edges":    FormatEdgeList,
	".edge":     FormatEdgeList,
	".dat":      FormatEdgeList,
	".txt":      FormatEdgeList,
	".ncol":     FormatNCOL,
	".lgl":      FormatLGL,
	".graphml":  FormatGraphML,
	".dot":      FormatGraphViz,
	".graphviz": FormatGraphViz,
	".net":      FormatPajek,
	".pajek":    FormatPajek,
	".dimacs":   FormatDIMACS,
	".adjlist":  FormatAdjList,
}

// ParseFormat accepts a format name as printed by Format.String, or a file
// extension with or without the leading dot.
func ParseFormat(s string) (Format, error) {
	l := strings.ToLower(strings.TrimSpace(s))
	for f, name := range formatNames {
		if l == name {
			return Format(f), nil
		}
	}
	if !strings.HasPrefix(l, ".") {
		l = "." + l
	}
	if f, ok := extensions[l]; ok {
		return f, nil
	}
	return FormatAuto, fmt.Errorf("ParseFormat(%q): %w", s, ErrUnsupportedFormat)
}

// DetectFormat resolves the format of p from its extension, after removing a
// compression suffix (.gz, .zst, .lz4).
func DetectFormat(p string) (Format, error) {
	base, _ := splitCompression(p)
	ext := strings.ToLower(path.Ext(base))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return FormatAuto, fmt.Errorf("DetectFormat(%q): extension %q: %w", p, ext, ErrUnsupportedFormat)
}
