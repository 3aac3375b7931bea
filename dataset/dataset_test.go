// SPDX-License-Identifier: MIT
package dataset_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/tspk/dataset"
	"github.com/katalvlaran/tspk/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadSentinelBecomesMissing checks the file-boundary sentinel mapping.
func TestLoadSentinelBecomesMissing(t *testing.T) {
	in := "1,2\n2,4\n1000,1000\n"
	d, err := dataset.Load(strings.NewReader(in), 3, 2)
	require.NoError(t, err)

	require.Equal(t, 3, d.Rows())
	require.Equal(t, 2, d.Cols())
	require.Equal(t, 2, d.MissingCount())

	v, ok := d.Value(1, 1)
	assert.True(t, ok)
	assert.Equal(t, 4.0, v)

	_, ok = d.Value(2, 0)
	assert.False(t, ok)
	assert.Equal(t, []bool{false, false}, d.RowMask(2, nil))
	assert.False(t, d.Present(5, 0))
}

// TestLoadTolerances covers trailing commas, CRLF, spaces and trailing blank lines.
func TestLoadTolerances(t *testing.T) {
	in := " 1.5, -2 ,\r\n3,999.99,\r\n\n\n"
	d, err := dataset.Load(strings.NewReader(in), 2, 2)
	require.NoError(t, err)

	v, ok := d.Value(0, 1)
	require.True(t, ok)
	assert.Equal(t, -2.0, v)

	v, ok = d.Value(1, 1)
	require.True(t, ok)
	assert.Equal(t, 999.99, v)
}

// TestLoadErrors is table-driven over the failure modes and their locations.
func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       string
		rows     int
		cols     int
		wantErr  error
		wantLine int
	}{
		{"too few rows", "1,2\n", 2, 2, dataset.ErrRowCount, 1},
		{"too many rows", "1,2\n3,4\n5,6\n", 2, 2, dataset.ErrRowCount, 3},
		{"short line", "1,2\n3\n", 2, 2, dataset.ErrFieldCount, 2},
		{"long line", "1,2,3\n", 1, 2, dataset.ErrFieldCount, 1},
		{"blank inside", "1,2\n\n3,4\n", 2, 2, dataset.ErrFieldCount, 2},
		{"garbage", "1,x\n", 1, 2, dataset.ErrParse, 1},
		{"nan", "NaN,1\n", 1, 2, dataset.ErrParse, 1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := dataset.Load(strings.NewReader(tc.in), tc.rows, tc.cols)
			require.ErrorIs(t, err, tc.wantErr)

			var pe *dataset.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tc.wantLine, pe.Line)
		})
	}
}

// TestLoadBadShape rejects non-positive shapes before reading.
func TestLoadBadShape(t *testing.T) {
	_, err := dataset.Load(strings.NewReader(""), 0, 3)
	require.ErrorIs(t, err, dataset.ErrShape)
}

// TestCustomSentinel lowers the threshold.
func TestCustomSentinel(t *testing.T) {
	d, err := dataset.FromRows([][]float64{{5, 99}}, dataset.WithSentinel(99))
	require.NoError(t, err)
	assert.True(t, d.Present(0, 0))
	assert.False(t, d.Present(0, 1))
	assert.Equal(t, 99.0, d.Sentinel())

	assert.Panics(t, func() { dataset.WithSentinel(-1) })
}

// TestReorder checks that rows and their presence move together.
func TestReorder(t *testing.T) {
	d, err := dataset.FromRows([][]float64{{1, 2}, {3, 4}, {1000, 5}})
	require.NoError(t, err)

	r, err := d.Reorder([]int{2, 0, 1})
	require.NoError(t, err)

	assert.False(t, r.Present(0, 0))
	v, ok := r.Value(0, 1)
	require.True(t, ok)
	assert.Equal(t, 5.0, v)
	row, err := r.Row(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, row)

	// Source is untouched.
	assert.False(t, d.Present(2, 0))
	assert.True(t, d.Present(0, 0))

	_, err = d.Reorder([]int{3})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestWriteRounding checks integer rendering and the missing token.
func TestWriteRounding(t *testing.T) {
	d, err := dataset.FromRows([][]float64{{1.5, -2.5, -0.4}, {2.49, 1000, 7}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dataset.Write(&buf, d))
	assert.Equal(t, "2,-3,0\n2,0,7\n", buf.String())

	buf.Reset()
	require.NoError(t, dataset.Write(&buf, d, dataset.WithMissingToken("NA")))
	assert.Equal(t, "2,-3,0\n2,NA,7\n", buf.String())
}
