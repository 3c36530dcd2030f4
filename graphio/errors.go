package graphio

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat reports an unknown format, an unknown extension,
	// or a format that cannot be read (GraphViz).
	ErrUnsupportedFormat = errors.New("graphio: unsupported format")

	// ErrParse reports malformed input.
	ErrParse = errors.New("graphio: parse error")
)

// parseErrorf reports ErrParse at a 1-based line.
func parseErrorf(format Format, line int, msg string, args ...interface{}) error {
	return fmt.Errorf("read %s: line %d: %s: %w", format, line, fmt.Sprintf(msg, args...), ErrParse)
}
