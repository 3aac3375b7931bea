// SPDX-License-Identifier: MIT

package decoder

import (
	"errors"
	"fmt"
)

var (
	// ErrTourLength indicates a node count different from n+K.
	ErrTourLength = errors.New("decoder: tour length mismatch")

	// ErrTourIndex indicates a node index outside [0, n+K), usually a 0/1-based
	// convention mismatch.
	ErrTourIndex = errors.New("decoder: tour index out of range")

	// ErrTourDuplicate indicates a node visited twice.
	ErrTourDuplicate = errors.New("decoder: duplicate tour node")

	// ErrTourParse indicates a non-integer token in a tour file.
	ErrTourParse = errors.New("decoder: malformed tour token")

	// ErrNoDummy indicates a tour without any dummy node.
	ErrNoDummy = errors.New("decoder: tour has no dummy node")

	// ErrClusters indicates K < 1.
	ErrClusters = errors.New("decoder: cluster count must be >= 1")

	// ErrShape indicates an item count < 1 or a dataset whose row count does
	// not match the decoded tour.
	ErrShape = errors.New("decoder: dataset shape does not match tour")

	// ErrBase indicates an unknown tour numbering base.
	ErrBase = errors.New("decoder: unknown tour base")
)

// TourError locates a tour validation failure. Pos is the 0-based position in
// the tour (-1 when the failure concerns the whole tour); Value is the
// offending entry as it appeared in the input.
type TourError struct {
	Pos   int
	Value int
	Err   error
}

// Error implements error.
func (e *TourError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("decoder: tour: %v", e.Err)
	}
	return fmt.Sprintf("decoder: tour position %d (value %d): %v", e.Pos, e.Value, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *TourError) Unwrap() error { return e.Err }
