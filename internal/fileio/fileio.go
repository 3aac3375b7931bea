// SPDX-License-Identifier: MIT

// Package fileio opens input and output files for the command line tools.
// Paths ending in ".gz" or ".zst" are compressed or decompressed on the fly.
// The path "-" means stdin for Open and stdout for Create.
package fileio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression is the codec selected from a path suffix.
type Compression int

const (
	// None reads and writes plain bytes.
	None Compression = iota
	// Gzip handles ".gz" paths.
	Gzip
	// Zstd handles ".zst" paths.
	Zstd
)

// Stdio is the path that selects stdin or stdout.
const Stdio = "-"

// String implements fmt.Stringer.
func (c Compression) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	default:
		return "none"
	}
}

// Detect returns the codec for path.
func Detect(path string) Compression {
	switch {
	case strings.HasSuffix(path, ".gz"):
		return Gzip
	case strings.HasSuffix(path, ".zst"):
		return Zstd
	default:
		return None
	}
}

// Open opens path for reading and decompresses according to its suffix.
func Open(path string) (io.ReadCloser, error) {
	var f io.ReadCloser
	if path == Stdio {
		f = io.NopCloser(os.Stdin)
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("fileio: open: %w", err)
		}
		f = file
	}

	switch Detect(path) {
	case Gzip:
		zr, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("fileio: gzip %s: %w", path, err)
		}
		return &readCloser{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case Zstd:
		zr, err := zstd.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("fileio: zstd %s: %w", path, err)
		}
		return &readCloser{Reader: zr, closers: []io.Closer{closerFunc(zr.Close), f}}, nil
	default:
		return f, nil
	}
}

// Create creates or truncates path and compresses according to its suffix.
// Close must be called to flush the compressed stream.
func Create(path string) (io.WriteCloser, error) {
	var f io.WriteCloser
	if path == Stdio {
		f = nopWriteCloser{os.Stdout}
	} else {
		file, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("fileio: create: %w", err)
		}
		f = file
	}

	switch Detect(path) {
	case Gzip:
		zw := gzip.NewWriter(f)
		return &writeCloser{Writer: zw, closers: []io.Closer{zw, f}}, nil
	case Zstd:
		zw, err := zstd.NewWriter(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("fileio: zstd %s: %w", path, err)
		}
		return &writeCloser{Writer: zw, closers: []io.Closer{zw, f}}, nil
	default:
		return f, nil
	}
}

// readCloser closes the decompressor and then the file.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error { return closeAll(r.closers) }

// writeCloser flushes the compressor and then closes the file.
type writeCloser struct {
	io.Writer
	closers []io.Closer
}

func (w *writeCloser) Close() error { return closeAll(w.closers) }

func closeAll(cs []io.Closer) error {
	var errs []error
	for _, c := range cs {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("fileio: close: %w", err)
	}
	return nil
}

// closerFunc adapts zstd.Decoder.Close, which returns nothing.
type closerFunc func()

func (f closerFunc) Close() error {
	f()
	return nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
