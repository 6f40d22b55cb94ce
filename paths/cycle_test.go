// SPDX-License-Identifier: MIT

package paths_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathcount/builder"
	"github.com/katalvlaran/pathcount/paths"
)

func TestDetectCycle_Acyclic(t *testing.T) {
	for _, text := range []string{reactorText, serverText, ladderText(5), ""} {
		cycle, err := paths.DetectCycle(mustParse(t, text))
		require.NoError(t, err)
		assert.Nil(t, cycle)
	}
}

func TestDetectCycle_FindsClosedCycle(t *testing.T) {
	g := mustParse(t, "a: b\nb: c\nc: a d")
	cycle, err := paths.DetectCycle(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "a"}, names(cycle))
}

func TestDetectCycle_UnreachableFromFirstKey(t *testing.T) {
	// Counting from x never meets q/r; the whole-graph check does.
	g := mustParse(t, "x: y\nq: r\nr: q")
	cycle, err := paths.DetectCycle(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"q", "r", "q"}, names(cycle))

	got, err := paths.CountPaths(g, n("x"), n("y"))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got)
}

func TestDetectCycle_SelfLoopAndRing(t *testing.T) {
	cycle, err := paths.DetectCycle(mustParse(t, "a: a"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a"}, names(cycle))

	ring, err := builder.BuildGraph(nil, builder.Cycle(4))
	require.NoError(t, err)
	cycle, err = paths.DetectCycle(ring)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3", "0"}, names(cycle))
}

func TestDetectCycle_NilGraph(t *testing.T) {
	_, err := paths.DetectCycle(nil)
	require.ErrorIs(t, err, paths.ErrGraphNil)
}
