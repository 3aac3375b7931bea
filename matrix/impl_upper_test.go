// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/tspk/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUpperSymmetricAccess checks that a single Set defines both triangles.
func TestUpperSymmetricAccess(t *testing.T) {
	u, err := matrix.NewUpper(4)
	require.NoError(t, err)

	require.NoError(t, u.Set(3, 1, 7))
	a, err := u.At(1, 3)
	require.NoError(t, err)
	b, err := u.At(3, 1)
	require.NoError(t, err)
	assert.Equal(t, 7.0, a)
	assert.Equal(t, a, b)

	d, err := u.At(2, 2)
	require.NoError(t, err)
	assert.Zero(t, d)

	require.NoError(t, matrix.ValidateSymmetric(u, 0))
}

// TestUpperDiagonalPolicy ensures the diagonal stays zero.
func TestUpperDiagonalPolicy(t *testing.T) {
	u, err := matrix.NewUpper(2)
	require.NoError(t, err)

	require.NoError(t, u.Set(1, 1, 0))
	require.ErrorIs(t, u.Set(1, 1, 2), matrix.ErrNonZeroDiagonal)
	require.ErrorIs(t, u.Set(0, 2, 1), matrix.ErrOutOfRange)
	_, err = u.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestUpperRowLayout walks the packed rows and compares with At.
func TestUpperRowLayout(t *testing.T) {
	const n = 5
	u, err := matrix.NewUpper(n)
	require.NoError(t, err)

	// Fill through row slices: value = 10*i + j.
	for i := 0; i < n; i++ {
		row, err := u.UpperRow(i)
		require.NoError(t, err)
		require.Len(t, row, n-1-i)
		for k := range row {
			row[k] = float64(10*i + (i + 1 + k))
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v, err := u.At(j, i)
			require.NoError(t, err)
			assert.Equal(t, float64(10*i+j), v, "cell (%d,%d)", i, j)
		}
	}

	d := u.Dense()
	v, err := d.At(4, 0)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)

	_, err = u.UpperRow(n)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestUpperClone ensures clones are independent.
func TestUpperClone(t *testing.T) {
	u, err := matrix.NewUpper(3)
	require.NoError(t, err)
	require.NoError(t, u.Set(0, 1, 1))

	c := u.Clone()
	require.NoError(t, c.Set(0, 1, 9))

	v, err := u.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}
