// Package matrix offers the owned numeric buffers used by the tspk pipeline.
//
// The matrix package provides:
//
//   - Dense: a row-major r×c buffer sized once at construction, with
//     bounds-checked At/Set, row views and copy-based row/column selection
//     (Induced, RowsInduced).
//   - Upper: a symmetric, zero-diagonal n×n matrix that stores only its strict
//     upper triangle, row by row. This is exactly the TSPLIB UPPER_ROW layout,
//     so producers can fill and stream it row by row.
//   - Validators shared by the solver and tests (ValidateSquare,
//     ValidateSymmetric, ValidateFinite).
//
// Both types implement Matrix and never panic on user input; errors are the
// sentinels in errors.go, wrapped with call-site coordinates.
package matrix
