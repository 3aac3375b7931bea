// Package encoder turns a data matrix into a TSP instance whose tours encode
// a K-way clustering of the items.
//
// Every unordered pair of items (x, y) gets an integer distance derived from
// the Pearson correlation r of their jointly present features:
//
//	d(x, y) = round_half_up(5000 − 5000·r)   ∈ [0, 10000]
//
// so perfectly correlated items sit at 0, uncorrelated ones at 5000 and
// anti-correlated ones at 10000. Pairs without any jointly present feature
// are treated as uncorrelated.
//
// The instance is then augmented with K dummy nodes (indices n..n+K-1) at
// zero distance from everything. A minimum tour passes through each dummy
// once; cutting the tour at the dummies yields K clusters (see package decoder).
//
// Output is TSPLIB: EXPLICIT weights in UPPER_ROW format, written row by row
// without retaining the matrix (Encoder.WriteTo), or materialized as a
// matrix.Upper for in-process solvers (Encoder.Encode).
package encoder
