// SPDX-License-Identifier: MIT

// Package matrix - Upper: packed symmetric storage with an implicit zero diagonal.
//
// Purpose:
//   - Materialize only the strict upper triangle of an n×n symmetric matrix,
//     row-major: row i holds columns i+1..n-1 (the TSPLIB UPPER_ROW layout).
//   - Expose the full symmetric matrix through the Matrix interface so solvers
//     can consume it without expanding to n² storage.
//
// Layout:
//
//	offset(i) = i*n - i*(i+1)/2      // first packed cell of row i
//	cell(i,j) = offset(i) + (j-i-1)  // for i < j
//
// Complexity quicksheet:
//   - NewUpper: O(n²/2) zero-init; At/Set: O(1); UpperRow: O(1); Clone: O(n²/2).

package matrix

import "fmt"

const ctxUpperRow = "UpperRow"

// Upper is an n×n symmetric matrix with zero diagonal backed by its strict
// upper triangle. Set(i,j,v) also defines (j,i).
type Upper struct {
	n    int       // order of the matrix
	data []float64 // packed strict upper triangle, len == n*(n-1)/2
}

// NewUpper creates an n×n zero Upper matrix.
// Complexity: O(n²) time and memory (half of Dense).
func NewUpper(n int) (*Upper, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Upper{n: n, data: make([]float64, n*(n-1)/2)}, nil
}

// Rows returns the order n.
func (u *Upper) Rows() int { return u.n }

// Cols returns the order n.
func (u *Upper) Cols() int { return u.n }

// rowOffset returns the packed offset of cell (i, i+1).
func (u *Upper) rowOffset(i int) int {
	return i*u.n - i*(i+1)/2
}

// cell maps (i,j), i != j, to its packed index after ordering the pair.
func (u *Upper) cell(i, j int) int {
	if i > j {
		i, j = j, i
	}

	return u.rowOffset(i) + (j - i - 1)
}

// At returns A[i,j]; the diagonal is always 0.
// Complexity: O(1).
func (u *Upper) At(i, j int) (float64, error) {
	if i < 0 || i >= u.n || j < 0 || j >= u.n {
		return 0, fmt.Errorf("Upper.%s(%d,%d): %w", ctxAt, i, j, ErrOutOfRange)
	}
	if i == j {
		return 0, nil
	}

	return u.data[u.cell(i, j)], nil
}

// Set assigns A[i,j] = A[j,i] = v. Writing a non-zero value onto the diagonal
// returns ErrNonZeroDiagonal; writing 0 there is a no-op.
// Complexity: O(1).
func (u *Upper) Set(i, j int, v float64) error {
	if i < 0 || i >= u.n || j < 0 || j >= u.n {
		return fmt.Errorf("Upper.%s(%d,%d): %w", ctxSet, i, j, ErrOutOfRange)
	}
	if i == j {
		if v != 0 {
			return fmt.Errorf("Upper.%s(%d,%d): %w", ctxSet, i, j, ErrNonZeroDiagonal)
		}
		return nil
	}
	u.data[u.cell(i, j)] = v

	return nil
}

// UpperRow returns the packed cells of row i (columns i+1..n-1) backed by the
// matrix storage. The last row is empty. Writes through the slice are visible
// to At, which lets producers fill a row without per-cell bounds checks.
//
// Complexity: O(1).
func (u *Upper) UpperRow(i int) ([]float64, error) {
	if i < 0 || i >= u.n {
		return nil, fmt.Errorf("Upper.%s(%d): %w", ctxUpperRow, i, ErrOutOfRange)
	}
	var (
		lo = u.rowOffset(i)
		hi = lo + (u.n - 1 - i)
	)

	return u.data[lo:hi:hi], nil
}

// Clone returns a deep copy.
// Complexity: O(n²/2).
func (u *Upper) Clone() Matrix {
	cp := make([]float64, len(u.data))
	copy(cp, u.data)

	return &Upper{n: u.n, data: cp}
}

// Dense expands u into a full n×n Dense matrix.
// Complexity: O(n²) time and memory.
func (u *Upper) Dense() *Dense {
	d := &Dense{r: u.n, c: u.n, data: make([]float64, u.n*u.n)}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < u.n; i++ {
		for j = i + 1; j < u.n; j++ {
			v = u.data[u.cell(i, j)]
			d.data[i*u.n+j] = v
			d.data[j*u.n+i] = v
		}
	}

	return d
}
