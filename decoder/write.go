// SPDX-License-Identifier: MIT

package decoder

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/tspk/dataset"
)

// WriteMatrix writes data in the decoded row order: one comma-separated line
// per item, present values rounded to integers, missing cells as the missing
// token (see dataset.WithMissingToken; "0" by default).
func WriteMatrix(w io.Writer, r *Result, data *dataset.Matrix, opts ...dataset.Option) error {
	reordered, err := r.Reordered(data)
	if err != nil {
		return err
	}

	return dataset.Write(w, reordered, opts...)
}

// WriteBoundaries writes the K boundaries, one per line.
func WriteBoundaries(w io.Writer, r *Result) error {
	return writeInts(w, r.boundaries)
}

// WriteMapping writes, for every item in input order, its output row.
func WriteMapping(w io.Writer, r *Result) error {
	return writeInts(w, r.Mapping())
}

func writeInts(w io.Writer, vals []int) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for _, v := range vals {
		buf = strconv.AppendInt(buf[:0], int64(v), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("decoder: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("decoder: flush: %w", err)
	}

	return nil
}
