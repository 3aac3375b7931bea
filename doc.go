// Package tspk clusters the rows of a data matrix by turning the problem into
// a symmetric Travelling Salesman Problem.
//
// Rows become cities; the distance between two rows is derived from their
// Pearson correlation over the features both of them have. K dummy cities at
// distance 0 from everything are added, so an optimal tour visits them
// between groups of mutually close rows: cutting the tour at the dummies
// yields K clusters and a row order in which similar rows are neighbours.
//
// Under the hood, everything is organized under these packages:
//
//	dataset/ — n×m matrices with explicit missing cells (roaring bitmap), CSV-like I/O
//	encoder/ — Pearson distance, dummy augmentation, TSPLIB EXPLICIT/UPPER_ROW I/O
//	decoder/ — tour I/O (0- or 1-based), rotation to the first dummy, boundaries, summaries
//	tsp/     — built-in heuristic: nearest neighbour + 2-opt with parallel seeded restarts
//	matrix/  — Dense and packed Upper buffers shared by the packages above
//	cmd/tspk — the encode, solve, decode and cluster commands
//
// Quick example, the three-row sample with K = 1:
//
//	data       1,2 / 2,4 / 1000,1000 (1000 = missing)
//	distances  d(0,1)=0  d(0,2)=5000  d(1,2)=5000, dummy 3 at 0
//	tour       0 1 3 2  →  rows 2,0,1, boundary 2
//
// External solvers (Concorde, LKH) read the instances written by encode and
// produce the tours read by decode.
//
//	go install github.com/katalvlaran/tspk/cmd/tspk@latest
package tspk
