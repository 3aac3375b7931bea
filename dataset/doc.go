// Package dataset holds the item×feature data matrix consumed by the
// encoder and the decoder.
//
// Values are kept in an owned matrix.Dense; which cells are missing is kept
// separately in a roaring bitmap of flat cell offsets (i*cols + j). The
// missing-value sentinel (DefaultSentinel, 1000) is purely a file encoding:
// Load turns any token >= sentinel into a missing cell and callers then ask
// Value(i, j) for an explicit (value, present) pair.
//
// Text format (Load):
//
//	1.5,2,-3
//	1000,4,0.25
//
// One item per line, exactly cols comma-separated reals per line (a single
// trailing comma is tolerated), exactly rows non-blank lines. Trailing blank
// lines are ignored.
package dataset
