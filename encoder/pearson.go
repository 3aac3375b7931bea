// SPDX-License-Identifier: MIT

// Package encoder - pairwise correlation and its integer distance encoding.
//
// Numeric policy (fixed; part of the file format contract):
//   - |numerator| < 1e-5 is snapped to an exact 0 and the denominator is skipped.
//   - |denominator| < 1e-6 (or NaN) with a non-zero numerator is fatal.
//   - N == 0 forces r = 0 after the above, overriding any derived value.
//   - r is clamped to [-1, 1] before scaling.
//   - 5000 − 5000·r is rounded half-up.
package encoder

import (
	"math"

	"github.com/katalvlaran/tspk/dataset"
)

const (
	// numTol snaps near-null numerators to an exact zero correlation.
	numTol = 1e-5

	// denTol is the smallest usable correlation denominator.
	denTol = 1e-6

	// distanceScale maps r ∈ [-1,1] onto [0, 2*distanceScale].
	distanceScale = 5000

	// MaxDistance is the distance of a perfectly anti-correlated pair.
	MaxDistance = 2 * distanceScale

	// Uncorrelated is the distance of a pair with r == 0, including pairs
	// without jointly present features.
	Uncorrelated = distanceScale
)

// Moments are the sufficient statistics of a pair over jointly present features.
type Moments struct {
	N     int
	SumX  float64
	SumY  float64
	SumXY float64
	SumX2 float64
	SumY2 float64
}

// Accumulate gathers Moments for items x and y, skipping every feature where
// either value is missing.
//
// Complexity: O(cols).
func Accumulate(d *dataset.Matrix, x, y int) Moments {
	var (
		s      Moments
		j      int
		a, b   float64
		oa, ob bool
	)
	for j = 0; j < d.Cols(); j++ {
		a, oa = d.Value(x, j)
		b, ob = d.Value(y, j)
		if !oa || !ob {
			continue
		}
		s.N++
		s.SumX += a
		s.SumY += b
		s.SumXY += a * b
		s.SumX2 += a * a
		s.SumY2 += b * b
	}

	return s
}

// Correlation evaluates the Pearson coefficient under the package numeric
// policy. ok is false when the denominator is degenerate; den is returned
// for diagnostics in that case.
//
// Complexity: O(1).
func (s Moments) Correlation() (r float64, den float64, ok bool) {
	num := s.SumXY
	if s.N > 0 {
		num -= s.SumX * s.SumY / float64(s.N)
	}

	if num < numTol && num > -numTol {
		num = 0
	} else {
		n := float64(s.N)
		den = math.Sqrt((s.SumX2 - s.SumX*s.SumX/n) * (s.SumY2 - s.SumY*s.SumY/n))
		if math.IsNaN(den) || (den < denTol && den > -denTol) {
			return 0, den, false
		}
		num /= den
	}

	// Not enough data: assume uncorrelated.
	if s.N == 0 {
		num = 0
	}

	return clamp(num, -1, 1), den, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Correlate returns the clamped correlation of items x and y.
//
// Errors: *DegenerateVarianceError.
// Complexity: O(cols).
func Correlate(d *dataset.Matrix, x, y int) (float64, error) {
	return correlateMoments(Accumulate(d, x, y), x, y)
}

// correlateMoments attaches the pair identity to a degenerate result.
func correlateMoments(s Moments, x, y int) (float64, error) {
	r, den, ok := s.Correlation()
	if !ok {
		return 0, &DegenerateVarianceError{X: x, Y: y, Den: den}
	}

	return r, nil
}

// ToDistance maps a correlation in [-1, 1] to 5000 − 5000·r rounded half-up
// (truncate, then add one if the dropped fraction is >= 0.5).
//
// Complexity: O(1).
func ToDistance(r float64) int {
	v := distanceScale - distanceScale*r
	t := math.Trunc(v)
	if v-t >= 0.5 {
		t++
	}

	return int(t)
}

// PairDistance is Correlate followed by ToDistance with the final
// non-negativity check.
//
// Errors: *DegenerateVarianceError, *NegativeDistanceError.
// Complexity: O(cols).
func PairDistance(d *dataset.Matrix, x, y int) (int, error) {
	r, err := Correlate(d, x, y)
	if err != nil {
		return 0, err
	}
	dist := ToDistance(r)
	if dist < 0 {
		return 0, &NegativeDistanceError{X: x, Y: y, Value: dist}
	}

	return dist, nil
}
