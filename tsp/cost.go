// SPDX-License-Identifier: MIT

package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tspk/matrix"
)

// roundScale stabilizes reported costs to 1e-9 so equal tours compare equal
// regardless of summation order.
const roundScale = 1e9

// TourCost returns the length of the closed cycle tour[0] → … → tour[n-1] → tour[0].
//
// Errors: ErrNonSquare, ErrDimensionMismatch (tour is not a permutation),
// ErrNaNInf, ErrNegativeWeight.
// Complexity: O(n).
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	if err := matrix.ValidateSquare(dist); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNonSquare, err)
	}
	n := dist.Rows()
	if err := ValidatePermutation(tour, n); err != nil {
		return 0, err
	}

	var (
		sum  float64
		i    int
		u, v int
		w    float64
		err  error
	)
	for i = 0; i < n; i++ {
		u, v = tour[i], tour[(i+1)%n]
		if w, err = dist.At(u, v); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
		}
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, fmt.Errorf("%w: d(%d,%d)", ErrNaNInf, u, v)
		}
		if w < 0 {
			return 0, fmt.Errorf("%w: d(%d,%d) = %v", ErrNegativeWeight, u, v, w)
		}
		sum += w
	}

	return round1e9(sum), nil
}

// cycleCost is TourCost on validated weights.
// Complexity: O(n).
func cycleCost(w *weights, tour []int) float64 {
	var (
		sum float64
		n   = len(tour)
	)
	for i := 0; i < n; i++ {
		sum += w.at(tour[i], tour[(i+1)%n])
	}

	return round1e9(sum)
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
