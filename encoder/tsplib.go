// SPDX-License-Identifier: MIT

// Package encoder - TSPLIB EXPLICIT/UPPER_ROW reader and writer.
//
// Writer output (a single space follows every weight, no EOF line):
//
//	NAME: <name>
//	TYPE: TSP
//	DIMENSION: <n+K>
//	EDGE_WEIGHT_TYPE: EXPLICIT
//	EDGE_WEIGHT_FORMAT: UPPER_ROW
//	EDGE_WEIGHT_SECTION
//	w w w … ␠
//
// The reader is lenient about whitespace and line breaks inside the weight
// section, and accepts an optional trailing EOF keyword.
package encoder

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/tspk/matrix"
)

// TSPLIB keywords and values used by this package.
const (
	keyName          = "NAME"
	keyType          = "TYPE"
	keyComment       = "COMMENT"
	keyDimension     = "DIMENSION"
	keyWeightType    = "EDGE_WEIGHT_TYPE"
	keyWeightFormat  = "EDGE_WEIGHT_FORMAT"
	keyWeightSection = "EDGE_WEIGHT_SECTION"
	keyEOF           = "EOF"

	TypeTSP        = "TSP"
	WeightExplicit = "EXPLICIT"
	FormatUpperRow = "UPPER_ROW"
)

// Header is the specification part of a TSPLIB instance.
type Header struct {
	Name         string
	Type         string
	Comment      string
	Dimension    int
	WeightType   string
	WeightFormat string
}

// NewHeader returns an EXPLICIT/UPPER_ROW TSP header.
func NewHeader(name string, dimension int) Header {
	return Header{
		Name:         name,
		Type:         TypeTSP,
		Dimension:    dimension,
		WeightType:   WeightExplicit,
		WeightFormat: FormatUpperRow,
	}
}

// WriteHeader writes h followed by the EDGE_WEIGHT_SECTION keyword.
func WriteHeader(w io.Writer, h Header) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s\n", keyName, h.Name)
	fmt.Fprintf(&sb, "%s: %s\n", keyType, h.Type)
	if h.Comment != "" {
		fmt.Fprintf(&sb, "%s: %s\n", keyComment, h.Comment)
	}
	fmt.Fprintf(&sb, "%s: %d\n", keyDimension, h.Dimension)
	fmt.Fprintf(&sb, "%s: %s\n", keyWeightType, h.WeightType)
	fmt.Fprintf(&sb, "%s: %s\n", keyWeightFormat, h.WeightFormat)
	sb.WriteString(keyWeightSection + "\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("encoder: write header: %w", err)
	}

	return nil
}

// rowWriter buffers weight rows; every value is followed by one space.
type rowWriter struct {
	bw  *bufio.Writer
	buf []byte
}

func newRowWriter(w io.Writer) *rowWriter {
	return &rowWriter{bw: bufio.NewWriter(w)}
}

func (rw *rowWriter) Write(p []byte) (int, error) { return rw.bw.Write(p) }

// writeRow writes vals, then `zeros` zero entries, then a newline.
func (rw *rowWriter) writeRow(vals []int, zeros int) error {
	rw.buf = rw.buf[:0]
	for _, v := range vals {
		rw.buf = strconv.AppendInt(rw.buf, int64(v), 10)
		rw.buf = append(rw.buf, ' ')
	}
	for ; zeros > 0; zeros-- {
		rw.buf = append(rw.buf, '0', ' ')
	}
	rw.buf = append(rw.buf, '\n')
	if _, err := rw.bw.Write(rw.buf); err != nil {
		return fmt.Errorf("encoder: write row: %w", err)
	}

	return nil
}

func (rw *rowWriter) flush() error {
	if err := rw.bw.Flush(); err != nil {
		return fmt.Errorf("encoder: flush: %w", err)
	}
	return nil
}

// WriteUpper writes h and the strict upper triangle of u (h.Dimension must
// equal u.Rows()). Values are rounded to integers.
func WriteUpper(w io.Writer, h Header, u *matrix.Upper) error {
	if h.Dimension != u.Rows() {
		return fmt.Errorf("%w: header dimension %d, matrix %d", ErrMalformedTSPLIB, h.Dimension, u.Rows())
	}
	rw := newRowWriter(w)
	if err := WriteHeader(rw, h); err != nil {
		return err
	}

	var vals []int
	for i := 0; i < u.Rows()-1; i++ {
		row, err := u.UpperRow(i)
		if err != nil {
			return err
		}
		vals = vals[:0]
		for _, v := range row {
			vals = append(vals, int(v+0.5))
		}
		if err = rw.writeRow(vals, 0); err != nil {
			return err
		}
	}

	return rw.flush()
}

// ReadUpperRow parses an EXPLICIT/UPPER_ROW TSP instance.
//
// Stage 1: "KEY: VALUE" lines up to EDGE_WEIGHT_SECTION.
// Stage 2: exactly D(D-1)/2 non-negative integer weights in any line layout.
// Stage 3: optional EOF; anything else after the weights is an error.
//
// Errors: ErrMalformedTSPLIB (wrapped with the offending detail), read errors.
// Complexity: O(D²).
func ReadUpperRow(r io.Reader) (Header, *matrix.Upper, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16<<20)

	h, err := readSpecification(sc)
	if err != nil {
		return Header{}, nil, err
	}

	u, err := matrix.NewUpper(h.Dimension)
	if err != nil {
		return Header{}, nil, fmt.Errorf("%w: %v", ErrMalformedTSPLIB, err)
	}

	var (
		want = h.Dimension * (h.Dimension - 1) / 2
		got  int
		row  int
		done bool
		cur  []float64
	)
	cur, _ = u.UpperRow(0)

	for sc.Scan() {
		for _, tok := range strings.Fields(sc.Text()) {
			if done || got == want {
				if tok == keyEOF && !done {
					done = true
					continue
				}
				return Header{}, nil, fmt.Errorf("%w: unexpected token %q after %d weights", ErrMalformedTSPLIB, tok, want)
			}
			v, perr := strconv.Atoi(tok)
			if perr != nil || v < 0 {
				return Header{}, nil, fmt.Errorf("%w: weight %d: %q", ErrMalformedTSPLIB, got+1, tok)
			}
			for len(cur) == 0 {
				row++
				cur, _ = u.UpperRow(row)
			}
			cur[0] = float64(v)
			cur = cur[1:]
			got++
		}
	}
	if err = sc.Err(); err != nil {
		return Header{}, nil, fmt.Errorf("encoder: read weights: %w", err)
	}
	if got != want {
		return Header{}, nil, fmt.Errorf("%w: got %d weights, want %d", ErrMalformedTSPLIB, got, want)
	}

	return h, u, nil
}

// readSpecification consumes header lines through EDGE_WEIGHT_SECTION.
func readSpecification(sc *bufio.Scanner) (Header, error) {
	var h Header
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		key, val, _ := strings.Cut(line, ":")
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)

		switch key {
		case keyName:
			h.Name = val
		case keyComment:
			h.Comment = val
		case keyType:
			h.Type = val
		case keyDimension:
			dim, err := strconv.Atoi(val)
			if err != nil || dim < 2 {
				return Header{}, fmt.Errorf("%w: dimension %q", ErrMalformedTSPLIB, val)
			}
			h.Dimension = dim
		case keyWeightType:
			h.WeightType = val
		case keyWeightFormat:
			h.WeightFormat = val
		case keyWeightSection:
			return h, validateHeader(h)
		default:
			return Header{}, fmt.Errorf("%w: unsupported keyword %q", ErrMalformedTSPLIB, key)
		}
	}
	if err := sc.Err(); err != nil {
		return Header{}, fmt.Errorf("encoder: read header: %w", err)
	}

	return Header{}, fmt.Errorf("%w: missing %s", ErrMalformedTSPLIB, keyWeightSection)
}

func validateHeader(h Header) error {
	switch {
	case h.Type != TypeTSP:
		return fmt.Errorf("%w: TYPE %q", ErrMalformedTSPLIB, h.Type)
	case h.Dimension < 2:
		return fmt.Errorf("%w: missing DIMENSION", ErrMalformedTSPLIB)
	case h.WeightType != WeightExplicit:
		return fmt.Errorf("%w: EDGE_WEIGHT_TYPE %q", ErrMalformedTSPLIB, h.WeightType)
	case h.WeightFormat != FormatUpperRow:
		return fmt.Errorf("%w: EDGE_WEIGHT_FORMAT %q", ErrMalformedTSPLIB, h.WeightFormat)
	}

	return nil
}
