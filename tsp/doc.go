// SPDX-License-Identifier: MIT

// Package tsp is a small in-process solver for symmetric TSP instances such as
// the augmented distance matrices produced by package encoder.
//
// Pipeline per restart:
//
//  1. nearest-neighbour construction from a start vertex (ties → lowest index);
//  2. first-improvement 2-opt until a local optimum, MaxIters accepted moves,
//     or the soft TimeLimit.
//
// Restarts > 1 run concurrently (bounded by Workers). Restart 0 starts at
// StartVertex; restart r ≥ 1 starts at a vertex drawn from a stream derived
// from (Seed, r), so the result does not depend on scheduling. The cheapest
// tour wins and ties go to the lowest restart index.
//
// Tours are open permutations of {0..n-1}; the closing edge back to Tour[0]
// is implicit. Returned tours are rotated so that Tour[0] == StartVertex.
//
// The solver is a heuristic. It gives no optimality guarantee; external
// solvers such as Concorde or LKH remain the tool of choice for large inputs.
package tsp
