// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrShape indicates non-positive row/column counts or a cell count that
	// does not fit the 32-bit missing-cell bitmap.
	ErrShape = errors.New("dataset: invalid shape")

	// ErrRowCount indicates the input has fewer or more rows than configured.
	ErrRowCount = errors.New("dataset: row count mismatch")

	// ErrFieldCount indicates a line with a token count different from cols.
	ErrFieldCount = errors.New("dataset: field count mismatch")

	// ErrParse indicates a token that is not a finite real number.
	ErrParse = errors.New("dataset: malformed value")

	// ErrSentinel indicates a non-finite or non-positive sentinel.
	ErrSentinel = errors.New("dataset: invalid sentinel")
)

// ParseError locates a load failure. Line is 1-based; Field is 1-based or 0
// when the failure concerns the whole line.
type ParseError struct {
	Line  int
	Field int
	Err   error
}

// Error implements error.
func (e *ParseError) Error() string {
	if e.Field > 0 {
		return fmt.Sprintf("dataset: line %d, field %d: %v", e.Line, e.Field, e.Err)
	}
	return fmt.Sprintf("dataset: line %d: %v", e.Line, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }
