// SPDX-License-Identifier: MIT

package paths_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathcount/core"
	"github.com/katalvlaran/pathcount/paths"
)

func TestCountPathsThrough_WaypointOrder(t *testing.T) {
	g := mustParse(t, serverText)

	got, err := paths.CountPathsThrough(g, core.NewNodes("svr", "fft", "dac", "out"))
	require.NoError(t, err)
	assert.Equal(t, uint64(2), got)

	got, err = paths.CountPathsThrough(g, core.NewNodes("svr", "dac", "fft", "out"))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), got, "dac never leads to fft")
}

func TestCountPathsThrough_TwoWaypointsIsCountPaths(t *testing.T) {
	g := mustParse(t, "you: out")
	got, err := paths.CountPathsThrough(g, core.NewNodes("you", "out"))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got)

	r := mustParse(t, reactorText)
	for _, pair := range [][2]string{{"you", "out"}, {"aaa", "out"}, {"out", "you"}} {
		want, err := paths.CountPaths(r, n(pair[0]), n(pair[1]))
		require.NoError(t, err)
		got, err := paths.CountPathsThrough(r, core.NewNodes(pair[0], pair[1]))
		require.NoError(t, err)
		assert.Equal(t, want, got, "%s -> %s", pair[0], pair[1])
	}
}

func TestCountPathsThrough_RepeatedWaypoint(t *testing.T) {
	g := mustParse(t, reactorText)
	// A zero-length segment contributes a factor of 1.
	got, err := paths.CountPathsThrough(g, core.NewNodes("you", "you", "out", "out"))
	require.NoError(t, err)
	assert.Equal(t, uint64(5), got)
}

func TestCountPathsThrough_TooFewWaypoints(t *testing.T) {
	g := mustParse(t, reactorText)
	for _, wps := range [][]core.Node{nil, {}, core.NewNodes("you")} {
		_, err := paths.CountPathsThrough(g, wps)
		require.ErrorIs(t, err, paths.ErrTooFewWaypoints)
	}
}

func TestCountPathsThrough_CycleSurfacesDespiteZeroSegment(t *testing.T) {
	g := mustParse(t, "a: b\nb: a c")
	// c -> a is 0, but a -> c runs into the a/b loop.
	_, err := paths.CountPathsThrough(g, core.NewNodes("c", "a", "c"))
	require.ErrorIs(t, err, paths.ErrCycleDetected)
	assert.Contains(t, err.Error(), "segment a -> c")
}

func TestCountPathsThrough_ProductOverflow(t *testing.T) {
	// s40 -> s0 closes the ladder, but no segment walks past its own target.
	g := mustParse(t, ladderText(40)+"s40: s0\n")

	got, err := paths.CountPathsThrough(g, core.NewNodes("s0", "s40"))
	require.NoError(t, err)
	assert.Equal(t, uint64(1)<<40, got)

	_, err = paths.CountPathsThrough(g, core.NewNodes("s0", "s40", "s0", "s40"))
	require.ErrorIs(t, err, paths.ErrCountOverflow)

	got, err = paths.CountPathsThrough(g, core.NewNodes("nowhere", "s0", "s40", "s0", "s40"))
	require.NoError(t, err, "a zero segment wins over overflow")
	assert.Equal(t, uint64(0), got)
}

func TestCountPathsThrough_ConcurrencyAgrees(t *testing.T) {
	g := mustParse(t, ladderText(12))
	wps := core.NewNodes("s0", "s3", "s5", "s9", "s12")

	seq, err := paths.CountPathsThrough(g, wps)
	require.NoError(t, err)
	par, err := paths.CountPathsThrough(g, wps, paths.WithConcurrency(4))
	require.NoError(t, err)
	assert.Equal(t, seq, par)
	assert.Equal(t, uint64(1)<<12, par)
}

func TestCountPathsThrough_ConcurrentErrorIsReported(t *testing.T) {
	g := mustParse(t, "a: b\nb: a c\nc: d")
	_, err := paths.CountPathsThrough(g, core.NewNodes("c", "d", "a", "c"), paths.WithConcurrency(3))
	require.ErrorIs(t, err, paths.ErrCycleDetected)
}

func TestCountPathsThrough_NilGraph(t *testing.T) {
	_, err := paths.CountPathsThrough(nil, core.NewNodes("a", "b"))
	require.ErrorIs(t, err, paths.ErrGraphNil)
}
