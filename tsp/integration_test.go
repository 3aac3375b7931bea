// SPDX-License-Identifier: MIT
package tsp_test

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspk/dataset"
	"github.com/katalvlaran/tspk/decoder"
	"github.com/katalvlaran/tspk/encoder"
	"github.com/katalvlaran/tspk/tsp"
)

// TestEncodeSolveDecode runs the full pipeline on two anti-correlated groups.
// Within a group distances are 0, across groups 10000, so a zero-cost tour
// must put a dummy at each group change.
func TestEncodeSolveDecode(t *testing.T) {
	data, err := dataset.FromRows([][]float64{
		{1, 2, 3, 4},    // group A
		{4, 3, 2, 1},    // group B
		{2, 4, 6, 8},    // A
		{8, 6, 4, 2},    // B
		{3, 6, 9, 12},   // A
		{5, 4, 3, 1000}, // B, last value missing
	})
	require.NoError(t, err)

	enc, err := encoder.New(encoder.WithClusters(2))
	require.NoError(t, err)
	dist, err := enc.Encode(context.Background(), data)
	require.NoError(t, err)

	opts := tsp.DefaultOptions()
	opts.Restarts = 4
	opts.Workers = 2
	res, err := tsp.Solve(context.Background(), dist, opts)
	require.NoError(t, err)
	require.Equal(t, 0.0, res.Cost)

	dec, err := decoder.DecodeDataset(decoder.Tour(res.Tour), data, 2)
	require.NoError(t, err)

	var groups [][]int
	for _, c := range dec.Clusters() {
		c = slices.Clone(c)
		slices.Sort(c)
		groups = append(groups, c)
	}
	slices.SortFunc(groups, func(a, b []int) int { return slices.Compare(a, b) })
	assert.Equal(t, [][]int{{0, 2, 4}, {1, 3, 5}}, groups)
}
