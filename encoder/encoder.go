// SPDX-License-Identifier: MIT

// Package encoder - DistanceEncoder: rows of real distances plus dummy augmentation.
//
// Row layout for n items and K dummies (dimension D = n+K, UPPER_ROW):
//
//	real row x, 0 ≤ x ≤ n-2:  d(x,x+1) … d(x,n-1)  0 … 0   (K zeros)
//	dummy block row i, 0 ≤ i < K:                 0 … 0   (K-i zeros)
//
// The first dummy-block row is row n-1 of the full matrix (the last real item
// against the K dummies); row i of the block for i ≥ 1 is dummy n+i-1.
package encoder

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tspk/dataset"
	"github.com/katalvlaran/tspk/matrix"
)

// Encoder converts a dataset.Matrix into an augmented distance matrix.
// An Encoder is immutable and safe for concurrent use.
type Encoder struct {
	opts options
	pair func(d *dataset.Matrix, x, y int) (int, error)
}

// New validates the options and returns an Encoder.
//
// Errors: ErrInvalidClusters, ErrInvalidWorkers.
func New(opts ...Option) (*Encoder, error) {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.clusters < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidClusters, o.clusters)
	}
	if o.workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkers, o.workers)
	}

	return &Encoder{opts: o, pair: PairDistance}, nil
}

// Clusters returns K.
func (e *Encoder) Clusters() int { return e.opts.clusters }

// Dimension returns n+K for a dataset with n items.
func (e *Encoder) Dimension(d *dataset.Matrix) int { return d.Rows() + e.opts.clusters }

// Header returns the TSPLIB header describing the instance built from d.
func (e *Encoder) Header(d *dataset.Matrix) Header {
	return NewHeader(e.opts.name, e.Dimension(d))
}

// Encode materializes the full augmented distance matrix. Dummy entries stay 0.
//
// Errors: *DegenerateVarianceError, *NegativeDistanceError (first in row-major
// order), matrix errors, ctx.Err().
// Complexity: O(n²·m) time, O((n+K)²/2) memory.
func (e *Encoder) Encode(ctx context.Context, d *dataset.Matrix) (*matrix.Upper, error) {
	u, err := matrix.NewUpper(e.Dimension(d))
	if err != nil {
		return nil, err
	}

	err = e.forEachRealRow(ctx, d, func(x int, dists []int) error {
		row, rerr := u.UpperRow(x)
		if rerr != nil {
			return rerr
		}
		for k, v := range dists {
			row[k] = float64(v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u, nil
}

// WriteTo streams the TSPLIB header and all UPPER_ROW weight rows to w
// without retaining the matrix. Each weight is followed by a single space.
//
// Errors: as Encode, plus write errors.
// Complexity: O(n²·m) time, O(workers·n) memory.
func (e *Encoder) WriteTo(ctx context.Context, w io.Writer, d *dataset.Matrix) error {
	bw := newRowWriter(w)
	if err := WriteHeader(bw, e.Header(d)); err != nil {
		return err
	}

	k := e.opts.clusters
	err := e.forEachRealRow(ctx, d, func(_ int, dists []int) error {
		return bw.writeRow(dists, k)
	})
	if err != nil {
		return err
	}

	// Dummy block: K rows of K, K-1, …, 1 zeros.
	var i int
	for i = 0; i < k; i++ {
		if err = bw.writeRow(nil, k-i); err != nil {
			return err
		}
	}

	return bw.flush()
}

// forEachRealRow computes rows x = 0..n-2 and hands them to emit in order.
// Rows are computed in windows of workers*rowsPerWorker; within a window they
// run concurrently, but emission and error reporting follow row order.
func (e *Encoder) forEachRealRow(ctx context.Context, d *dataset.Matrix, emit func(x int, dists []int) error) error {
	var (
		n      = d.Rows()
		window = e.opts.workers * rowsPerWorker
		rows   = make([][]int, window)
		errs   = make([]error, window)
	)

	for lo := 0; lo < n-1; lo += window {
		hi := min(lo+window, n-1)

		if e.opts.workers == 1 {
			for x := lo; x < hi; x++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				rows[x-lo], errs[x-lo] = e.computeRow(d, x, rows[x-lo])
			}
		} else {
			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(e.opts.workers)
			for x := lo; x < hi; x++ {
				x := x
				g.Go(func() error {
					if err := gctx.Err(); err != nil {
						return err
					}
					rows[x-lo], errs[x-lo] = e.computeRow(d, x, rows[x-lo])
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
		}

		for x := lo; x < hi; x++ {
			if errs[x-lo] != nil {
				return errs[x-lo]
			}
			if err := emit(x, rows[x-lo]); err != nil {
				return err
			}
		}
	}

	return nil
}

// computeRow fills buf with d(x, y) for y = x+1..n-1, reusing its capacity.
func (e *Encoder) computeRow(d *dataset.Matrix, x int, buf []int) ([]int, error) {
	buf = buf[:0]
	for y := x + 1; y < d.Rows(); y++ {
		v, err := e.pair(d, x, y)
		if err != nil {
			return buf, err
		}
		buf = append(buf, v)
	}

	return buf, nil
}
