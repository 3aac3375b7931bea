// SPDX-License-Identifier: MIT
package encoder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tspk/dataset"
	"github.com/katalvlaran/tspk/encoder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func mustRows(t *testing.T, rows [][]float64) *dataset.Matrix {
	t.Helper()
	d, err := dataset.FromRows(rows)
	require.NoError(t, err)
	return d
}

// TestPairDistanceAnchors pins the three anchor points of the encoding.
func TestPairDistanceAnchors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		x, y []float64
		want int
	}{
		{"identical", []float64{1, 5, 2, 8}, []float64{1, 5, 2, 8}, 0},
		{"scaled", []float64{1, 2}, []float64{2, 4}, 0},
		{"negated", []float64{1, 2, 3}, []float64{-1, -2, -3}, encoder.MaxDistance},
		{"no joint features", []float64{1, 1000}, []float64{1000, 3}, encoder.Uncorrelated},
		{"all missing", []float64{1000, 1000}, []float64{1000, 1000}, encoder.Uncorrelated},
		{"single joint feature", []float64{4, 1000}, []float64{7, 1000}, encoder.Uncorrelated},
		{"constant row", []float64{3, 3, 3}, []float64{1, 2, 3}, encoder.Uncorrelated},
		{"partial presence", []float64{1, 1000, 2, 3}, []float64{-2, 5, -4, -6}, encoder.MaxDistance},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			d := mustRows(t, [][]float64{tc.x, tc.y})
			got, err := encoder.PairDistance(d, 0, 1)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestToDistanceRounding checks the half-up rule on the scaled value.
func TestToDistanceRounding(t *testing.T) {
	assert.Equal(t, 5000, encoder.ToDistance(0))
	assert.Equal(t, 0, encoder.ToDistance(1))
	assert.Equal(t, 10000, encoder.ToDistance(-1))
	assert.Equal(t, 2500, encoder.ToDistance(0.5))
	assert.Equal(t, 4999, encoder.ToDistance(0.0002))   // 4999.0
	assert.Equal(t, 5001, encoder.ToDistance(-0.00012)) // 5000.6 rounds up
	assert.Equal(t, 5000, encoder.ToDistance(0.00005))  // 4999.75 rounds up
}

// TestMomentsDegenerate exercises the denominator guard directly: a non-zero
// numerator with zero variance on one side.
func TestMomentsDegenerate(t *testing.T) {
	s := encoder.Moments{N: 2, SumX: 2, SumX2: 2, SumY: 3, SumY2: 5, SumXY: 10}
	_, den, ok := s.Correlation()
	assert.False(t, ok)
	assert.Zero(t, den)

	// Negative variance from round-off yields NaN and is rejected too.
	s = encoder.Moments{N: 2, SumX: 2, SumX2: 1, SumY: 3, SumY2: 5, SumXY: 10}
	_, _, ok = s.Correlation()
	assert.False(t, ok)
}

// TestMomentsClamp shows that r is clamped to [-1,1].
func TestMomentsClamp(t *testing.T) {
	// num = 2, den = sqrt(1*1) = 1 → r = 2 → clamped to 1.
	s := encoder.Moments{N: 2, SumX: 2, SumX2: 3, SumY: 2, SumY2: 3, SumXY: 4}
	r, _, ok := s.Correlation()
	require.True(t, ok)
	assert.Equal(t, 1.0, r)
}

// TestCorrelateMatchesGonum cross-checks fully present rows against gonum/stat.
func TestCorrelateMatchesGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const m = 12
	for trial := 0; trial < 50; trial++ {
		x := make([]float64, m)
		y := make([]float64, m)
		for j := 0; j < m; j++ {
			x[j] = rng.Float64()*200 - 100
			y[j] = 0.3*x[j] + rng.Float64()*80 - 40
		}
		d := mustRows(t, [][]float64{x, y})

		got, err := encoder.Correlate(d, 0, 1)
		require.NoError(t, err)
		assert.InDelta(t, stat.Correlation(x, y, nil), got, 1e-9)
	}
}

// TestPairDistanceSymmetry checks d(x,y) == d(y,x) on sparse random data.
func TestPairDistanceSymmetry(t *testing.T) {
	d := randomDataset(t, 9, 6, 0.25, 11)
	for x := 0; x < d.Rows(); x++ {
		for y := 0; y < d.Rows(); y++ {
			if x == y {
				continue
			}
			a, err := encoder.PairDistance(d, x, y)
			require.NoError(t, err)
			b, err := encoder.PairDistance(d, y, x)
			require.NoError(t, err)
			assert.Equal(t, a, b, "pair (%d,%d)", x, y)
			assert.GreaterOrEqual(t, a, 0)
			assert.LessOrEqual(t, a, encoder.MaxDistance)
		}
	}
}

// randomDataset draws values in (-500, 500) and marks cells missing with
// probability pMissing.
func randomDataset(t *testing.T, n, m int, pMissing float64, seed int64) *dataset.Matrix {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, m)
		for j := range rows[i] {
			if rng.Float64() < pMissing {
				rows[i][j] = dataset.DefaultSentinel
				continue
			}
			rows[i][j] = rng.Float64()*1000 - 500
		}
	}
	return mustRows(t, rows)
}
