// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/tspk/matrix"
)

// maxCells bounds rows*cols so every cell offset fits the 32-bit bitmap.
const maxCells = math.MaxUint32

// Matrix is an immutable item×feature matrix with explicit missing cells.
// Missing cells hold 0 in the value buffer and are never read as values.
type Matrix struct {
	values   *matrix.Dense
	missing  *roaring.Bitmap
	sentinel float64
}

// newMatrix allocates an empty rows×cols Matrix.
func newMatrix(rows, cols int, sentinel float64) (*Matrix, error) {
	if rows <= 0 || cols <= 0 || uint64(rows)*uint64(cols) > maxCells {
		return nil, fmt.Errorf("%w: %dx%d", ErrShape, rows, cols)
	}
	values, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShape, err)
	}

	return &Matrix{values: values, missing: roaring.New(), sentinel: sentinel}, nil
}

// FromRows builds a Matrix from in-memory rows, applying the sentinel the same
// way Load does. All rows must have the same, non-zero length.
//
// Errors: ErrShape, ErrFieldCount (ragged rows), ErrParse (NaN/Inf values).
// Complexity: O(rows*cols).
func FromRows(rows [][]float64, opts ...Option) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrShape
	}
	o := gatherOptions(opts)
	d, err := newMatrix(len(rows), len(rows[0]), o.sentinel)
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = 0; i < len(rows); i++ {
		if len(rows[i]) != d.Cols() {
			return nil, &ParseError{Line: i + 1, Err: ErrFieldCount}
		}
		for j = 0; j < len(rows[i]); j++ {
			if err = d.put(i, j, rows[i][j]); err != nil {
				return nil, &ParseError{Line: i + 1, Field: j + 1, Err: ErrParse}
			}
		}
	}

	return d, nil
}

// put stores a decoded cell, routing sentinel-or-above values to the bitmap.
func (d *Matrix) put(i, j int, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrParse
	}
	if v >= d.sentinel {
		d.missing.Add(d.offset(i, j))
		return nil
	}

	return d.values.Set(i, j, v)
}

func (d *Matrix) offset(i, j int) uint32 {
	return uint32(i*d.values.Cols() + j)
}

// Rows returns the item count n.
func (d *Matrix) Rows() int { return d.values.Rows() }

// Cols returns the feature count m.
func (d *Matrix) Cols() int { return d.values.Cols() }

// Sentinel returns the threshold this matrix was decoded with.
func (d *Matrix) Sentinel() float64 { return d.sentinel }

// Present reports whether cell (i, j) holds a measurement.
// Out-of-range cells report false.
func (d *Matrix) Present(i, j int) bool {
	if i < 0 || i >= d.Rows() || j < 0 || j >= d.Cols() {
		return false
	}
	return !d.missing.Contains(d.offset(i, j))
}

// Value returns the measurement at (i, j) and whether it is present.
// Out-of-range and missing cells return (0, false).
func (d *Matrix) Value(i, j int) (float64, bool) {
	if !d.Present(i, j) {
		return 0, false
	}
	v, _ := d.values.At(i, j)

	return v, true
}

// Row returns a read-only view of row i's values; missing cells read 0, so
// pair it with Present or RowMask.
func (d *Matrix) Row(i int) ([]float64, error) {
	return d.values.Row(i)
}

// RowMask fills dst (len Cols()) with the presence flags of row i and returns it.
// A nil or short dst is reallocated.
func (d *Matrix) RowMask(i int, dst []bool) []bool {
	if cap(dst) < d.Cols() {
		dst = make([]bool, d.Cols())
	}
	dst = dst[:d.Cols()]
	for j := range dst {
		dst[j] = d.Present(i, j)
	}

	return dst
}

// MissingCount returns the number of missing cells.
func (d *Matrix) MissingCount() int {
	return int(d.missing.GetCardinality())
}

// Reorder returns a new Matrix whose row k is row order[k] of d. Duplicate
// indices are allowed; the receiver is not modified.
//
// Errors: ErrShape (empty order), matrix.ErrOutOfRange (index outside [0,Rows)).
// Complexity: O(len(order)*cols).
func (d *Matrix) Reorder(order []int) (*Matrix, error) {
	if len(order) == 0 {
		return nil, ErrShape
	}
	values, err := d.values.RowsInduced(order)
	if err != nil {
		return nil, fmt.Errorf("dataset: reorder: %w", err)
	}

	out := &Matrix{values: values, missing: roaring.New(), sentinel: d.sentinel}
	var k, j int
	for k = 0; k < len(order); k++ {
		for j = 0; j < d.Cols(); j++ {
			if !d.Present(order[k], j) {
				out.missing.Add(out.offset(k, j))
			}
		}
	}

	return out, nil
}
