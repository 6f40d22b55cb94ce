// SPDX-License-Identifier: MIT

package paths_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/pathcount/adjlist"
	"github.com/katalvlaran/pathcount/core"
	"github.com/katalvlaran/pathcount/paths"
)

// ExampleCountPaths counts the walks through a small reactor wiring.
func ExampleCountPaths() {
	g, _ := adjlist.Parse("you: bbb ccc\nbbb: ddd eee\nccc: ddd eee fff\nddd: out\neee: out\nfff: out")

	count, err := paths.CountPaths(g, core.NewNode("you"), core.NewNode("out"))
	fmt.Println(count, err)
	// Output: 5 <nil>
}

// ExampleCountPathsThrough shows that waypoint order matters.
func ExampleCountPathsThrough() {
	g, _ := adjlist.Parse("svr: fft dac\nfft: dac\ndac: out")

	fd, _ := paths.CountPathsThrough(g, core.NewNodes("svr", "fft", "dac", "out"))
	df, _ := paths.CountPathsThrough(g, core.NewNodes("svr", "dac", "fft", "out"))
	fmt.Println(fd, df)
	// Output: 1 0
}

// ExampleCountPathsVisiting sums over every order of the waypoints.
func ExampleCountPathsVisiting() {
	g, _ := adjlist.Parse("s: a b\na: b t\nb: t")

	count, _ := paths.CountPathsVisiting(g, core.NewNode("s"), core.NewNode("t"), core.NewNodes("b", "a"))
	fmt.Println(count)
	// Output: 1
}

// ExampleCycleError inspects the cycle behind a failed count.
func ExampleCycleError() {
	g, _ := adjlist.Parse("a: b\nb: a c")

	_, err := paths.CountPaths(g, core.NewNode("a"), core.NewNode("c"))
	var ce *paths.CycleError
	if errors.As(err, &ce) {
		fmt.Println(errors.Is(err, paths.ErrCycleDetected), ce.Cycle)
	}
	// Output: true [a b a]
}

// ExampleCounter reuses finished segments across queries.
func ExampleCounter() {
	g, _ := adjlist.Parse("svr: fft dac\nfft: dac\ndac: out")
	c, _ := paths.NewCounter(g)
	ctx := context.Background()

	through, _ := c.CountThrough(ctx, core.NewNodes("svr", "fft", "dac", "out"))
	visiting, _ := c.CountVisiting(ctx, core.NewNode("svr"), core.NewNode("out"), core.NewNodes("fft", "dac"))
	fmt.Println(through, visiting)
	fmt.Printf("%+v\n", c.Stats())
	// Output:
	// 1 1
	// {Hits:3 Misses:6 Entries:6}
}
