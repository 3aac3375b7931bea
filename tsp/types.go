// SPDX-License-Identifier: MIT

package tsp

import (
	"errors"
	"time"
)

// Sentinel errors. Matrix-level failures wrap both the tsp sentinel and the
// underlying matrix error, so either can be matched with errors.Is.
var (
	// ErrDimensionMismatch indicates a matrix smaller than 2×2 or a tour that is
	// not a permutation of the vertex set.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNonSquare indicates a distance matrix with Rows() != Cols().
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrAsymmetry indicates d(i,j) != d(j,i) beyond the structural tolerance.
	ErrAsymmetry = errors.New("tsp: distance matrix is not symmetric")

	// ErrNegativeWeight indicates a negative distance.
	ErrNegativeWeight = errors.New("tsp: negative distance")

	// ErrNaNInf indicates a NaN or infinite distance.
	ErrNaNInf = errors.New("tsp: NaN or Inf distance")

	// ErrStartOutOfRange indicates StartVertex outside [0, n).
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrInvalidOptions indicates a negative or zero knob where a positive one is required.
	ErrInvalidOptions = errors.New("tsp: invalid options")
)

// Options configures Solve. The zero value is not valid; start from DefaultOptions.
type Options struct {
	// StartVertex is where restart 0 begins and where returned tours are rotated to.
	StartVertex int

	// Restarts is the number of independent construct+improve runs (≥ 1).
	Restarts int

	// Workers bounds how many restarts run at once (≥ 1).
	Workers int

	// Seed selects the start-vertex stream of restarts ≥ 1. 0 means a fixed default.
	Seed int64

	// Eps is the 2-opt acceptance tolerance: a move is taken when Δ < -Eps.
	Eps float64

	// MaxIters caps accepted 2-opt moves per restart; 0 means unlimited.
	MaxIters int

	// TimeLimit is a soft per-restart budget for 2-opt; 0 means none. When it
	// runs out, the restart keeps the tour it has.
	TimeLimit time.Duration
}

// DefaultOptions returns a single deterministic restart from vertex 0.
func DefaultOptions() Options {
	return Options{
		StartVertex: 0,
		Restarts:    1,
		Workers:     1,
		Seed:        0,
		Eps:         1e-9,
		MaxIters:    0,
		TimeLimit:   0,
	}
}

// Result is a solved tour.
type Result struct {
	// Tour is an open permutation of {0..n-1} with Tour[0] == StartVertex.
	Tour []int

	// Cost is the cycle length including the closing edge, rounded to 1e-9.
	Cost float64

	// Restart is the index of the restart that produced Tour.
	Restart int
}
