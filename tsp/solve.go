// SPDX-License-Identifier: MIT

package tsp

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tspk/matrix"
)

// Solve finds a short Hamiltonian cycle over dist.
//
// Stage 1: validate opts and dist (square, n ≥ 2, finite, symmetric, non-negative).
// Stage 2: run opts.Restarts construct+improve restarts, at most opts.Workers at once.
// Stage 3: keep the cheapest (ties → lowest restart index) and rotate it to
// opts.StartVertex.
//
// Errors: ErrInvalidOptions, ErrNonSquare, ErrDimensionMismatch, ErrNaNInf,
// ErrAsymmetry, ErrNegativeWeight, ErrStartOutOfRange, ctx.Err().
// Complexity: O(Restarts·iter·n²) time, O(n²/2 + Restarts·n) space.
func Solve(ctx context.Context, dist matrix.Matrix, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	w, err := loadWeights(dist)
	if err != nil {
		return Result{}, err
	}
	if opts.StartVertex < 0 || opts.StartVertex >= w.n {
		return Result{}, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, opts.StartVertex, w.n)
	}

	tours := make([][]int, opts.Restarts)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for r := 0; r < opts.Restarts; r++ {
		r := r
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t, err := twoOpt(gctx, w, nearestNeighbor(w, restartStart(opts, r, w.n)), opts)
			if err != nil {
				return err
			}
			tours[r] = t
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return Result{}, err
	}

	best := Result{Restart: -1}
	for r, t := range tours {
		cost := cycleCost(w, t)
		if best.Restart < 0 || cost < best.Cost {
			best = Result{Tour: t, Cost: cost, Restart: r}
		}
	}

	if best.Tour, err = RotateToStart(best.Tour, opts.StartVertex); err != nil {
		return Result{}, err
	}

	return best, nil
}
