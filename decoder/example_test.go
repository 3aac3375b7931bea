// SPDX-License-Identifier: MIT
package decoder_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/tspk/dataset"
	"github.com/katalvlaran/tspk/decoder"
)

// ExampleDecodeDataset decodes the three-item sample: dummy node 3 sits at
// tour position 2, so the walk starts at item 2.
func ExampleDecodeDataset() {
	data, _ := dataset.FromRows([][]float64{{1, 2}, {2, 4}, {1000, 1000}})

	res, err := decoder.DecodeDataset(decoder.Tour{0, 1, 3, 2}, data, 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Order(), res.Boundaries())
	_ = decoder.WriteMatrix(os.Stdout, res, data)
	// Output:
	// [2 0 1] [2]
	// 0,0
	// 1,2
	// 2,4
}
