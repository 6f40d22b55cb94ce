// SPDX-License-Identifier: MIT

package query_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pathcount/adjlist"
	"github.com/katalvlaran/pathcount/paths"
	"github.com/katalvlaran/pathcount/query"
)

// ExampleRun evaluates a two-query batch.
func ExampleRun() {
	g, _ := adjlist.Parse("svr: fft dac\nfft: dac out\ndac: out")
	c, _ := paths.NewCounter(g)

	f, err := query.Parse([]byte(`
query "direct" {
  from = "svr"
  to   = "out"
}
query "via-fft" {
  through = ["svr", "fft", "out"]
}
`), "example.hcl")
	if err != nil {
		fmt.Println(err)
		return
	}

	results, _ := query.Run(context.Background(), c, f)
	for _, r := range results {
		fmt.Println(r.Name, r.Kind, r.Count)
	}
	// Output:
	// direct count 3
	// via-fft through 2
}
