// SPDX-License-Identifier: MIT

// Package tsp - open-tour utilities. A tour is a permutation of {0..n-1};
// the edge from the last vertex back to the first is implicit.
package tsp

import "fmt"

// ValidatePermutation checks that perm is a permutation of {0..n-1}.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return fmt.Errorf("%w: %d entries for %d vertices", ErrDimensionMismatch, len(perm), n)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return fmt.Errorf("%w: entry %d is %d", ErrDimensionMismatch, i, v)
		}
		if seen[v] {
			return fmt.Errorf("%w: vertex %d repeated at %d", ErrDimensionMismatch, v, i)
		}
		seen[v] = true
	}

	return nil
}

// RotateToStart returns a copy of tour shifted so that out[0] == start.
// The cyclic order and direction are preserved.
//
// Complexity: O(n).
func RotateToStart(tour []int, start int) ([]int, error) {
	n := len(tour)
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	pivot := -1
	for i, v := range tour {
		if v == start {
			pivot = i
			break
		}
	}
	if pivot < 0 {
		return nil, fmt.Errorf("%w: vertex %d missing", ErrDimensionMismatch, start)
	}

	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}

	return out, nil
}

// reverseInPlace reverses tour[i..k] inclusive. This is the 2-opt primitive.
// Complexity: O(k-i).
func reverseInPlace(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}
