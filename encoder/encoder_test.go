// SPDX-License-Identifier: MIT
package encoder_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/katalvlaran/tspk/encoder"
	"github.com/katalvlaran/tspk/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleRows is the three-item scenario: row 2 is fully missing.
var sampleRows = [][]float64{{1, 2}, {2, 4}, {1000, 1000}}

const sampleTSP = `NAME: sample
TYPE: TSP
DIMENSION: 4
EDGE_WEIGHT_TYPE: EXPLICIT
EDGE_WEIGHT_FORMAT: UPPER_ROW
EDGE_WEIGHT_SECTION
0 5000 0 
5000 0 
0 
`

// TestWriteToSample pins the byte layout for the sample scenario.
func TestWriteToSample(t *testing.T) {
	enc, err := encoder.New(encoder.WithClusters(1), encoder.WithName("sample"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, enc.WriteTo(context.Background(), &buf, mustRows(t, sampleRows)))
	assert.Equal(t, sampleTSP, buf.String())
}

// TestWriteToDummyBlock checks row lengths for K > 1: real rows carry K zeros,
// the dummy block shrinks from K to 1.
func TestWriteToDummyBlock(t *testing.T) {
	const k = 3
	enc, err := encoder.New(encoder.WithClusters(k))
	require.NoError(t, err)

	d := mustRows(t, [][]float64{{1, 2, 3}, {3, 1, 2}, {2, 2, 9}, {5, 4, 1}})
	var buf bytes.Buffer
	require.NoError(t, enc.WriteTo(context.Background(), &buf, d))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	body := lines[6:]
	require.Len(t, body, d.Rows()+k-1)

	dim := d.Rows() + k
	for i, line := range body {
		fields := strings.Fields(line)
		require.Len(t, fields, dim-1-i, "row %d", i)
		if i < d.Rows()-1 {
			assert.Equal(t, []string{"0", "0", "0"}, fields[len(fields)-k:])
		} else {
			for _, f := range fields {
				assert.Equal(t, "0", f)
			}
		}
	}
}

// TestEncodeProperties checks range, symmetry and dummy entries on random data.
func TestEncodeProperties(t *testing.T) {
	const k = 2
	d := randomDataset(t, 12, 8, 0.2, 3)
	enc, err := encoder.New(encoder.WithClusters(k))
	require.NoError(t, err)

	u, err := enc.Encode(context.Background(), d)
	require.NoError(t, err)
	require.Equal(t, d.Rows()+k, u.Rows())
	require.NoError(t, matrix.ValidateSymmetric(u, 0))

	n := d.Rows()
	for i := 0; i < u.Rows(); i++ {
		for j := 0; j < u.Rows(); j++ {
			v, err := u.At(i, j)
			require.NoError(t, err)
			if i >= n || j >= n || i == j {
				assert.Zero(t, v, "(%d,%d)", i, j)
				continue
			}
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, float64(encoder.MaxDistance))
			want, err := encoder.PairDistance(d, i, j)
			require.NoError(t, err)
			assert.Equal(t, float64(want), v)
		}
	}
}

// TestWorkersProduceIdenticalOutput compares sequential and concurrent runs.
func TestWorkersProduceIdenticalOutput(t *testing.T) {
	d := randomDataset(t, 40, 10, 0.1, 5)

	render := func(workers int) string {
		enc, err := encoder.New(encoder.WithClusters(4), encoder.WithWorkers(workers))
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, enc.WriteTo(context.Background(), &buf, d))
		return buf.String()
	}

	seq := render(1)
	assert.Equal(t, seq, render(3))
	assert.Equal(t, seq, render(16))
}

// TestSingleItem covers n = 1: no real rows, only the dummy block.
func TestSingleItem(t *testing.T) {
	enc, err := encoder.New(encoder.WithClusters(2))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, enc.WriteTo(context.Background(), &buf, mustRows(t, [][]float64{{1, 2}})))
	assert.True(t, strings.HasSuffix(buf.String(), "EDGE_WEIGHT_SECTION\n0 0 \n0 \n"))
}

// TestNewValidation rejects nonsensical options.
func TestNewValidation(t *testing.T) {
	_, err := encoder.New(encoder.WithClusters(0))
	require.ErrorIs(t, err, encoder.ErrInvalidClusters)

	_, err = encoder.New(encoder.WithWorkers(0))
	require.ErrorIs(t, err, encoder.ErrInvalidWorkers)
}

// TestEncodeCanceled returns the context error before any work.
func TestEncodeCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	enc, err := encoder.New()
	require.NoError(t, err)
	_, err = enc.Encode(ctx, mustRows(t, sampleRows))
	require.ErrorIs(t, err, context.Canceled)
}
