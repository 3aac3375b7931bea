// SPDX-License-Identifier: MIT

package encoder

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateVariance is matched by *DegenerateVarianceError.
	ErrDegenerateVariance = errors.New("encoder: degenerate variance")

	// ErrNegativeDistance is matched by *NegativeDistanceError.
	ErrNegativeDistance = errors.New("encoder: negative distance")

	// ErrInvalidClusters indicates K < 1.
	ErrInvalidClusters = errors.New("encoder: cluster count must be >= 1")

	// ErrInvalidWorkers indicates a worker count < 1.
	ErrInvalidWorkers = errors.New("encoder: worker count must be >= 1")

	// ErrMalformedTSPLIB indicates a TSPLIB file this package cannot read back.
	ErrMalformedTSPLIB = errors.New("encoder: malformed TSPLIB instance")
)

// DegenerateVarianceError reports a pair whose correlation denominator is
// (nearly) zero while the numerator is not: one of the items has no variance
// over the jointly present features.
type DegenerateVarianceError struct {
	X, Y int
	Den  float64
}

// Error implements error.
func (e *DegenerateVarianceError) Error() string {
	return fmt.Sprintf("encoder: items %d and %d: correlation denominator %g is too small", e.X, e.Y, e.Den)
}

// Is matches ErrDegenerateVariance.
func (e *DegenerateVarianceError) Is(target error) bool { return target == ErrDegenerateVariance }

// NegativeDistanceError reports a pair whose encoded distance fell below 0.
type NegativeDistanceError struct {
	X, Y  int
	Value int
}

// Error implements error.
func (e *NegativeDistanceError) Error() string {
	return fmt.Sprintf("encoder: items %d and %d: negative distance %d", e.X, e.Y, e.Value)
}

// Is matches ErrNegativeDistance.
func (e *NegativeDistanceError) Is(target error) bool { return target == ErrNegativeDistance }
