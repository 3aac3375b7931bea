// SPDX-License-Identifier: MIT

package decoder

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/tspk/dataset"
)

// ClusterSummary describes one decoded cluster.
type ClusterSummary struct {
	Index   int       // cluster number, 0-based in output order
	First   int       // output row of the first member (First > Last when empty)
	Last    int       // output row of the last member, i.e. the boundary
	Members []int     // item indices in output order
	Means   []float64 // per-feature mean over present values; NaN if none
	Present []int     // per-feature count of present values
}

// Size returns the member count.
func (s ClusterSummary) Size() int { return len(s.Members) }

// Summaries computes one ClusterSummary per cluster. Missing cells carry a
// zero weight, so each mean is taken over the present values only.
//
// Errors: ErrShape when data does not match the result.
// Complexity: O(n*m).
func (r *Result) Summaries(data *dataset.Matrix) ([]ClusterSummary, error) {
	if data.Rows() != len(r.order) {
		return nil, fmt.Errorf("%w: dataset has %d rows, tour has %d items", ErrShape, data.Rows(), len(r.order))
	}

	var (
		clusters = r.Clusters()
		out      = make([]ClusterSummary, len(clusters))
		start    = 0
	)
	for c, members := range clusters {
		s := ClusterSummary{
			Index:   c,
			First:   start,
			Last:    r.boundaries[c],
			Members: members,
			Means:   make([]float64, data.Cols()),
			Present: make([]int, data.Cols()),
		}
		start = r.boundaries[c] + 1

		xs := make([]float64, len(members))
		ws := make([]float64, len(members))
		for j := 0; j < data.Cols(); j++ {
			for k, item := range members {
				v, ok := data.Value(item, j)
				xs[k], ws[k] = v, 0
				if ok {
					ws[k] = 1
					s.Present[j]++
				}
			}
			if s.Present[j] == 0 {
				s.Means[j] = math.NaN()
				continue
			}
			s.Means[j] = stat.Mean(xs, ws)
		}
		out[c] = s
	}

	return out, nil
}
