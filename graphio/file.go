// File: file.go
// Role: reading and writing graph files on a virtual filesystem, with
// transparent compression chosen by file suffix.

package graphio

import (
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/pierrec/lz4/v4"

	"github.com/katalvlaran/lvalg/core"
)

// Compression identifies a stream compression applied to a graph file.
type Compression int

const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionZstd
	CompressionLZ4
)

var compressionSuffixes = []struct {
	suffix string
	c      Compression
}{
	{".gz", CompressionGzip},
	{".zst", CompressionZstd},
	{".lz4", CompressionLZ4},
}

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	}
	return fmt.Sprintf("Compression(%d)", int(c))
}

// splitCompression strips a known compression suffix from p.
func splitCompression(p string) (string, Compression) {
	l := strings.ToLower(p)
	for _, s := range compressionSuffixes {
		if strings.HasSuffix(l, s.suffix) {
			return p[:len(p)-len(s.suffix)], s.c
		}
	}
	return p, CompressionNone
}

// resolve returns the effective format and compression for path.
func resolve(path string, format Format) (Format, Compression, error) {
	_, c := splitCompression(path)
	if format != FormatAuto {
		return format, c, nil
	}
	f, err := DetectFormat(path)
	return f, c, err
}

// compressor wraps w; closing the result flushes the compressed stream but
// leaves w open.
func compressor(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case CompressionGzip:
		return gzip.NewWriter(w), nil
	case CompressionZstd:
		return zstd.NewWriter(w)
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	}
	return nopWriteCloser{w}, nil
}

// decompressor wraps r.
func decompressor(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case CompressionGzip:
		return gzip.NewReader(r)
	case CompressionZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	}
	return io.NopCloser(r), nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// WriteFile writes g to path on fs. FormatAuto picks the format from the
// extension; a .gz, .zst or .lz4 suffix compresses the output. On failure
// the file is removed again.
func WriteFile(fs vfs.FileSystem, path string, g *core.Graph, format Format, opts ...Option) (err error) {
	format, c, err := resolve(path, format)
	if err != nil {
		return err
	}
	wr, err := NewWriter(g, nil, opts...)
	if err != nil {
		return err
	}
	defer wr.Close()

	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile(%q): %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("WriteFile(%q): %w", path, cerr)
		}
		if err != nil {
			if rerr := fs.Remove(path); rerr != nil {
				log.Warn("cannot remove incomplete graph file", "path", path, "error", rerr)
			}
		}
	}()
	zw, err := compressor(f, c)
	if err != nil {
		return fmt.Errorf("WriteFile(%q): %w", path, err)
	}
	wr.w = zw
	if err = wr.Write(format); err != nil {
		zw.Close()
		return fmt.Errorf("WriteFile(%q): %w", path, err)
	}
	if err = zw.Close(); err != nil {
		return fmt.Errorf("WriteFile(%q): %w", path, err)
	}
	log.Debug("wrote graph file", "path", path, "format", format, "compression", c)
	return nil
}

// ReadFile reads a graph from path on fs. FormatAuto picks the format from
// the extension; a .gz, .zst or .lz4 suffix decompresses the input. The
// returned names are those reported by Reader.Names.
func ReadFile(fs vfs.FileSystem, path string, format Format, opts ...Option) (*core.Graph, []string, error) {
	format, c, err := resolve(path, format)
	if err != nil {
		return nil, nil, err
	}
	f, err := fs.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("ReadFile(%q): %w", path, err)
	}
	defer f.Close()
	zr, err := decompressor(f, c)
	if err != nil {
		return nil, nil, fmt.Errorf("ReadFile(%q): %w", path, err)
	}
	defer zr.Close()

	rd := NewReader(zr, opts...)
	g, err := rd.Read(format)
	if err != nil {
		return nil, nil, fmt.Errorf("ReadFile(%q): %w", path, err)
	}
	log.Debug("read graph file", "path", path, "format", format, "compression", c)
	return g, rd.Names(), nil
}
