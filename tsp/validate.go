// SPDX-License-Identifier: MIT

package tsp

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/tspk/matrix"
)

// symTol is the structural tolerance for symmetry checks. It is independent
// from Options.Eps, which governs 2-opt acceptance.
const symTol = 1e-9

// validateOptions checks Options without looking at the matrix.
// Complexity: O(1).
func validateOptions(opts Options) error {
	switch {
	case opts.Restarts < 1:
		return fmt.Errorf("%w: restarts %d", ErrInvalidOptions, opts.Restarts)
	case opts.Workers < 1:
		return fmt.Errorf("%w: workers %d", ErrInvalidOptions, opts.Workers)
	case opts.Eps < 0 || math.IsNaN(opts.Eps):
		return fmt.Errorf("%w: eps %v", ErrInvalidOptions, opts.Eps)
	case opts.MaxIters < 0:
		return fmt.Errorf("%w: max iters %d", ErrInvalidOptions, opts.MaxIters)
	case opts.TimeLimit < 0:
		return fmt.Errorf("%w: time limit %v", ErrInvalidOptions, opts.TimeLimit)
	}

	return nil
}

// loadWeights validates dist and copies its strict upper triangle.
//
// Stage 1: shape (square, n ≥ 2) via matrix validators.
// Stage 2: symmetry and finiteness via matrix validators.
// Stage 3: non-negativity while copying.
//
// Complexity: O(n²) time, O(n²/2) space.
func loadWeights(dist matrix.Matrix) (*weights, error) {
	if err := matrix.ValidateSquare(dist); err != nil {
		if errors.Is(err, matrix.ErrNilMatrix) {
			return nil, fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrNonSquare, err)
	}
	n := dist.Rows()
	if n < 2 {
		return nil, fmt.Errorf("%w: %d vertices", ErrDimensionMismatch, n)
	}
	if err := matrix.ValidateFinite(dist); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNaNInf, err)
	}
	if err := matrix.ValidateSymmetric(dist, symTol); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAsymmetry, err)
	}

	w := newWeights(n)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if v, err = dist.At(i, j); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
			}
			if v < 0 {
				return nil, fmt.Errorf("%w: d(%d,%d) = %v", ErrNegativeWeight, i, j, v)
			}
			w.set(i, j, v)
		}
	}

	return w, nil
}

// weights is a packed strict upper triangle; at(i,i) is 0.
type weights struct {
	n int
	w []float64
}

func newWeights(n int) *weights {
	return &weights{n: n, w: make([]float64, n*(n-1)/2)}
}

func (w *weights) index(i, j int) int {
	if i > j {
		i, j = j, i
	}
	return i*(2*w.n-i-1)/2 + (j - i - 1)
}

func (w *weights) at(i, j int) float64 {
	if i == j {
		return 0
	}
	return w.w[w.index(i, j)]
}

func (w *weights) set(i, j int, v float64) { w.w[w.index(i, j)] = v }
