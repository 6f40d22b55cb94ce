// SPDX-License-Identifier: MIT

package paths_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathcount/adjlist"
	"github.com/katalvlaran/pathcount/core"
)

// reactorText is the ten-line sample with five walks from you to out.
const reactorText = `aaa: you hhh
you: bbb ccc
bbb: ddd eee
ccc: ddd eee fff
ddd: ggg
eee: out
fff: out
ggg: out
hhh: ccc fff iii
iii: out`

// serverText is the sample where only fft-before-dac routes reach out.
const serverText = `svr: aaa bbb
aaa: fft
fft: ccc
bbb: tty
tty: ccc
ccc: ddd eee
ddd: hub
hub: fff
eee: dac
dac: fff
fff: ggg hhh
ggg: out
hhh: out`

func mustParse(tb testing.TB, text string) *core.Graph {
	tb.Helper()
	g, err := adjlist.Parse(text)
	require.NoError(tb, err)

	return g
}

func n(name string) core.Node { return core.NewNode(name) }

// ladderText renders k diamonds s0 → {l0, r0} → s1 → … → sk as an
// adjacency list.
func ladderText(k int) string {
	var b strings.Builder
	for i := 0; i < k; i++ {
		fmt.Fprintf(&b, "s%d: l%d r%d\n", i, i, i)
		fmt.Fprintf(&b, "l%d: s%d\n", i, i+1)
		fmt.Fprintf(&b, "r%d: s%d\n", i, i+1)
	}

	return b.String()
}

func names(nodes []core.Node) []string {
	out := make([]string, len(nodes))
	for i, v := range nodes {
		out[i] = v.String()
	}

	return out
}
