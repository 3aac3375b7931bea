// SPDX-License-Identifier: MIT

// Package tsp - first-improvement 2-opt on an open tour.
//
// For cut positions 0 ≤ i < k ≤ n-1 (not adjacent on the cycle):
//
//	a=T[i], b=T[i+1], c=T[k], d=T[(k+1) mod n]
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d)
//
// A move with Δ < −Eps reverses T[i+1..k]; T[0] never moves. The scan restarts
// after every accepted move.
package tsp

import (
	"context"
	"time"
)

// checkEvery throttles context and deadline checks in the scan loop.
const checkEvery = 2048

// twoOpt improves tour in place and returns it.
//
// Stops at a local optimum, after opts.MaxIters accepted moves, or when the
// soft opts.TimeLimit expires. Only ctx cancellation is an error.
//
// Complexity: O(iter·n²) time, O(1) extra space.
func twoOpt(ctx context.Context, w *weights, tour []int, opts Options) ([]int, error) {
	var (
		n           = len(tour)
		eps         = opts.Eps
		accepted    int
		step        int
		useDeadline = opts.TimeLimit > 0
		deadline    time.Time
	)
	if useDeadline {
		deadline = time.Now().Add(opts.TimeLimit)
	}

	// stop reports cancellation (error) or budget exhaustion (true).
	stop := func() (bool, error) {
		step++
		if step%checkEvery != 0 {
			return false, nil
		}
		if err := ctx.Err(); err != nil {
			return true, err
		}
		return useDeadline && time.Now().After(deadline), nil
	}

	var (
		i, k, kMax int
		a, b, c, d int
		delta      float64
	)
	for {
		improved := false
		for i = 0; i <= n-3 && !improved; i++ {
			a, b = tour[i], tour[i+1]
			kMax = n - 1
			if i == 0 {
				kMax = n - 2 // edge (T[n-1], T[0]) shares a with (a, b)
			}
			for k = i + 2; k <= kMax; k++ {
				done, err := stop()
				if err != nil {
					return nil, err
				}
				if done {
					return tour, nil
				}

				c, d = tour[k], tour[(k+1)%n]
				delta = w.at(a, c) + w.at(b, d) - w.at(a, b) - w.at(c, d)
				if delta < -eps {
					reverseInPlace(tour, i+1, k)
					accepted++
					improved = true
					break
				}
			}
		}

		if !improved {
			return tour, nil
		}
		if opts.MaxIters > 0 && accepted >= opts.MaxIters {
			return tour, nil
		}
	}
}
