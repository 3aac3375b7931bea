// SPDX-License-Identifier: MIT

// Package decoder - canonical rotation and partition of a validated tour.
package decoder

import (
	"fmt"

	"github.com/katalvlaran/tspk/dataset"
)

// Result is a decoded tour: the items in canonical tour order and the K
// cluster boundaries over that order. It is immutable.
type Result struct {
	order      []int // item indices, len n
	boundaries []int // last row index of each cluster, len K, non-decreasing
	first      int   // tour position of the first dummy
}

// Decode rotates and partitions tour for a dataset of n items and k dummies.
//
// Stage 1: validate k, the tour length (n+k) and the permutation.
// Stage 2: locate the first dummy (index ≥ n).
// Stage 3: walk positions first+1 … first+n+k-1 (mod n+k); real nodes extend
// the order, dummies record len(order)-1 as a boundary.
// Stage 4: close the last cluster at n-1 and check the counts.
//
// Errors: ErrClusters, *TourError, ErrNoDummy.
// Complexity: O(n+k) time and space.
func Decode(tour Tour, n, k int) (*Result, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrClusters, k)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: item count %d", ErrShape, n)
	}
	var dim = n + k
	if err := tour.Validate(dim); err != nil {
		return nil, err
	}

	first := -1
	for pos, v := range tour {
		if v >= n {
			first = pos
			break
		}
	}
	if first < 0 {
		return nil, ErrNoDummy
	}

	res := &Result{
		order:      make([]int, 0, n),
		boundaries: make([]int, 0, k),
		first:      first,
	}

	var (
		step int
		v    int
	)
	for step = 1; step < dim; step++ {
		v = tour[(first+step)%dim]
		if v >= n {
			res.boundaries = append(res.boundaries, len(res.order)-1)
			continue
		}
		res.order = append(res.order, v)
	}
	res.boundaries = append(res.boundaries, n-1)

	// Guaranteed by Validate; kept as an invariant check on the walk itself.
	if len(res.order) != n || len(res.boundaries) != k {
		return nil, fmt.Errorf("decoder: walk produced %d rows and %d boundaries, want %d and %d",
			len(res.order), len(res.boundaries), n, k)
	}

	return res, nil
}

// DecodeDataset is Decode with n taken from data.
func DecodeDataset(tour Tour, data *dataset.Matrix, k int) (*Result, error) {
	return Decode(tour, data.Rows(), k)
}

// Order returns a copy of the item indices in output row order.
func (r *Result) Order() []int {
	return append([]int(nil), r.order...)
}

// Boundaries returns a copy of the K boundaries. Boundary c is the output row
// index of the last member of cluster c; the last boundary is always n-1.
// Equal consecutive boundaries (or a leading -1) denote empty clusters.
func (r *Result) Boundaries() []int {
	return append([]int(nil), r.boundaries...)
}

// FirstDummy returns the tour position the walk started after.
func (r *Result) FirstDummy() int { return r.first }

// Clusters splits the order at the boundaries: K groups of item indices,
// possibly empty.
func (r *Result) Clusters() [][]int {
	out := make([][]int, len(r.boundaries))
	start := 0
	for c, b := range r.boundaries {
		out[c] = append([]int{}, r.order[start:b+1]...)
		start = b + 1
	}

	return out
}

// Mapping returns the inverse of Order: Mapping()[item] is the output row of item.
func (r *Result) Mapping() []int {
	m := make([]int, len(r.order))
	for row, item := range r.order {
		m[item] = row
	}

	return m
}

// Labels returns the cluster index of every item (indexed by item).
func (r *Result) Labels() []int {
	labels := make([]int, len(r.order))
	start := 0
	for c, b := range r.boundaries {
		for row := start; row <= b; row++ {
			labels[r.order[row]] = c
		}
		start = b + 1
	}

	return labels
}

// Reordered returns data with its rows permuted into output order.
func (r *Result) Reordered(data *dataset.Matrix) (*dataset.Matrix, error) {
	if data.Rows() != len(r.order) {
		return nil, fmt.Errorf("%w: dataset has %d rows, tour has %d items", ErrShape, data.Rows(), len(r.order))
	}

	return data.Reorder(r.order)
}
