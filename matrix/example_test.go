// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/tspk/matrix"
)

// ExampleUpper fills a 3×3 symmetric matrix through its packed rows.
func ExampleUpper() {
	u, _ := matrix.NewUpper(3)
	row0, _ := u.UpperRow(0)
	row0[0], row0[1] = 4, 9
	_ = u.Set(2, 1, 5)

	fmt.Print(u.Dense())
	// Output:
	// [0, 4, 9]
	// [4, 0, 5]
	// [9, 5, 0]
}
