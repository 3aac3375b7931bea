// SPDX-License-Identifier: MIT

package tsp

// nearestNeighbor builds a tour from start by repeatedly moving to the closest
// unvisited vertex. Ties go to the lowest index.
//
// Complexity: O(n²) time, O(n) space.
func nearestNeighbor(w *weights, start int) []int {
	var (
		n       = w.n
		tour    = make([]int, 0, n)
		visited = make([]bool, n)
		cur     = start
	)
	tour = append(tour, cur)
	visited[cur] = true

	for len(tour) < n {
		next := -1
		var best float64
		for v := 0; v < n; v++ {
			if visited[v] {
				continue
			}
			if d := w.at(cur, v); next < 0 || d < best {
				next, best = v, d
			}
		}
		tour = append(tour, next)
		visited[next] = true
		cur = next
	}

	return tour
}
