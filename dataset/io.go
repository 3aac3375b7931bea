// SPDX-License-Identifier: MIT

package dataset

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// maxLineBytes caps a single input line; wide expression matrices easily
// exceed bufio.Scanner's 64KiB default.
const maxLineBytes = 16 << 20

// Load decodes a rows×cols matrix from r (see package doc for the format).
//
// Stage 1: scan lines, deferring blank ones so trailing blanks are ignored.
// Stage 2: split each line on ',', drop one trailing empty token, check the count.
// Stage 3: parse tokens; values >= sentinel become missing cells.
//
// Errors: ErrShape, *ParseError wrapping ErrRowCount / ErrFieldCount / ErrParse,
// or the reader's error.
// Complexity: O(rows*cols).
func Load(r io.Reader, rows, cols int, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts)
	d, err := newMatrix(rows, cols, o.sentinel)
	if err != nil {
		return nil, err
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		lineNo    int // 1-based physical line number
		row       int // next row to fill
		blankLine int // first pending blank line, 0 if none
		line      string
	)
	for sc.Scan() {
		lineNo++
		line = strings.TrimSpace(sc.Text())
		if line == "" {
			if blankLine == 0 {
				blankLine = lineNo
			}
			continue
		}
		if blankLine != 0 {
			// A blank line followed by data is an empty row, not trailing padding.
			return nil, &ParseError{Line: blankLine, Err: ErrFieldCount}
		}
		if row == rows {
			return nil, &ParseError{Line: lineNo, Err: fmt.Errorf("%w: more than %d rows", ErrRowCount, rows)}
		}
		if err = d.parseRow(row, line); err != nil {
			if pe, ok := err.(*ParseError); ok {
				pe.Line = lineNo
				return nil, pe
			}
			return nil, err
		}
		row++
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: read: %w", err)
	}
	if row != rows {
		return nil, &ParseError{Line: lineNo, Err: fmt.Errorf("%w: got %d, want %d", ErrRowCount, row, rows)}
	}

	return d, nil
}

// parseRow decodes one non-blank line into row i. The returned *ParseError has
// its Line left for the caller to fill.
func (d *Matrix) parseRow(i int, line string) error {
	tokens := strings.Split(line, ",")
	if len(tokens) == d.Cols()+1 && strings.TrimSpace(tokens[len(tokens)-1]) == "" {
		tokens = tokens[:len(tokens)-1]
	}
	if len(tokens) != d.Cols() {
		return &ParseError{Err: fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(tokens), d.Cols())}
	}

	var (
		j   int
		v   float64
		err error
	)
	for j = 0; j < len(tokens); j++ {
		v, err = strconv.ParseFloat(strings.TrimSpace(tokens[j]), 64)
		if err != nil {
			return &ParseError{Field: j + 1, Err: fmt.Errorf("%w: %q", ErrParse, tokens[j])}
		}
		if err = d.put(i, j, v); err != nil {
			return &ParseError{Field: j + 1, Err: fmt.Errorf("%w: %q", ErrParse, tokens[j])}
		}
	}

	return nil
}

// Write renders d one row per line, comma-separated. Present values are
// rounded half away from zero to integers; missing cells are written as the
// missing token (DefaultMissingToken unless WithMissingToken is given).
//
// Complexity: O(rows*cols).
func Write(w io.Writer, d *Matrix, opts ...Option) error {
	o := gatherOptions(opts)
	bw := bufio.NewWriter(w)

	var (
		i, j int
		buf  []byte
	)
	for i = 0; i < d.Rows(); i++ {
		buf = buf[:0]
		for j = 0; j < d.Cols(); j++ {
			if j > 0 {
				buf = append(buf, ',')
			}
			buf = appendCell(buf, d, i, j, o.missingToken)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("dataset: write row %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("dataset: flush: %w", err)
	}

	return nil
}

// appendCell formats one cell: the rounded integer or the missing token.
func appendCell(buf []byte, d *Matrix, i, j int, missing string) []byte {
	v, ok := d.Value(i, j)
	if !ok {
		return append(buf, missing...)
	}
	r := math.Round(v)
	if r == 0 {
		r = 0 // drop the sign of -0
	}

	return strconv.AppendFloat(buf, r, 'f', 0, 64)
}
