// Package decoder turns a solver tour over n items and K dummy nodes back
// into a clustered ordering of the items.
//
// A tour is a cyclic permutation of the n+K node indices. Nodes n..n+K-1 are
// the dummies added by package encoder. Decoding:
//
//  1. finds the first dummy in the tour (position d);
//  2. walks the cycle from d+1 back around to d-1;
//  3. appends every real node to the output order and, at every further
//     dummy, closes a cluster by recording the index of the last row written.
//
// The walk meets K-1 dummies; the K-th boundary is the end of the order
// (n-1), so a Result always carries exactly K boundaries. Starting right
// after the first dummy makes the output independent of where the solver
// chose to start its tour.
//
// The tour file format is the one Concorde writes: the node count followed
// by the node indices, whitespace separated, either 0-based or 1-based.
package decoder
