// SPDX-License-Identifier: MIT

// Package builder_test checks every Constructor for topology size, edge
// layout and the closed-form walk counts the fixtures promise.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathcount/builder"
	"github.com/katalvlaran/pathcount/core"
	"github.com/katalvlaran/pathcount/paths"
)

func walks(t *testing.T, g *core.Graph, from, to string) uint64 {
	t.Helper()
	n, err := paths.CountPaths(g, core.NewNode(from), core.NewNode(to))
	require.NoError(t, err)

	return n
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		ctor      builder.Constructor
		wantNodes int
		wantEdges int
		from, to  string
		wantWalks uint64
	}{
		{"Path(5)", builder.Path(5), 5, 4, "0", "4", 1},
		{"Path(2)", builder.Path(2), 2, 1, "0", "1", 1},
		{"Ladder(1)", builder.Ladder(1), 4, 4, "0", "3", 2},
		{"Ladder(10)", builder.Ladder(10), 31, 40, "0", "30", 1 << 10},
		{"Grid(1,2)", builder.Grid(1, 2), 2, 1, "0,0", "0,1", 1},
		{"Grid(3,3)", builder.Grid(3, 3), 9, 12, "0,0", "2,2", 6},
		{"Grid(3,4)", builder.Grid(3, 4), 12, 17, "0,0", "2,3", 10},
		{"Complete(2)", builder.Complete(2), 2, 1, "0", "1", 1},
		{"Complete(6)", builder.Complete(6), 6, 15, "0", "5", 16},
	}

	for _, tc := range tests {
		tc := tc // per-iteration copy; go.mod targets go 1.21 loop semantics
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantNodes, g.NodeCount(), "nodes")
			assert.Equal(t, tc.wantEdges, g.EdgeCount(), "edges")
			assert.Equal(t, tc.wantWalks, walks(t, g, tc.from, tc.to), "walks")
		})
	}
}

func TestCycle_Topology(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Cycle(5))
	require.NoError(t, err)
	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, 5, g.EdgeCount())
	for i, name := range []string{"0", "1", "2", "3", "4"} {
		want := core.NewNodes([]string{"1", "2", "3", "4", "0"}[i])
		assert.Equal(t, want, g.Successors(core.NewNode(name)), "successors of %s", name)
	}

	loop, err := builder.BuildGraph(nil, builder.Cycle(1))
	require.NoError(t, err)
	assert.Equal(t, core.NewNodes("0"), loop.Successors(core.NewNode("0")))
}

func TestPath_EdgeOrderAndKeys(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSymbNumb("v")}, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, core.NewNodes("v0", "v1", "v2"), g.Nodes())
	assert.Equal(t, core.NewNodes("v1"), g.Successors(core.NewNode("v0")))
	assert.True(t, g.IsKey(core.NewNode("v2")), "sink is registered as a key")
	assert.Empty(t, g.Successors(core.NewNode("v2")))
}

func TestGrid_RightBeforeDown(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Grid(2, 2))
	require.NoError(t, err)
	assert.Equal(t, core.NewNodes("0,1", "1,0"), g.Successors(core.NewNode(builder.GridID(0, 0))))
	assert.Equal(t, core.NewNodes("1,1"), g.Successors(core.NewNode("0,1")))
	assert.Empty(t, g.Successors(core.NewNode("1,1")))
}

func TestLadderEnds(t *testing.T) {
	t.Parallel()

	first, last := builder.LadderEnds(4)
	assert.Equal(t, "0", first)
	assert.Equal(t, "12", last)

	first, last = builder.LadderEnds(2, builder.WithExcelColumnIDs())
	assert.Equal(t, "A", first)
	assert.Equal(t, "G", last)

	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithExcelColumnIDs()}, builder.Ladder(2))
	require.NoError(t, err)
	assert.Equal(t, uint64(4), walks(t, g, first, last))
}

func TestBuildGraph_Composition(t *testing.T) {
	t.Parallel()

	// A two-node chain glued onto the grid's far corner through a shared name.
	corner := builder.GridID(1, 1)
	glue := builder.WithIDScheme(func(i int) string {
		if i == 0 {
			return corner
		}
		return "tail"
	})
	g, err := builder.BuildGraph([]builder.BuilderOption{glue}, builder.Grid(2, 2), builder.Path(2))
	require.NoError(t, err)
	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, uint64(2), walks(t, g, "0,0", "tail"))
}

func TestBuilders_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := builder.BuildGraph(nil, builder.Grid(4, 5), builder.Complete(4))
	require.NoError(t, err)
	b, err := builder.BuildGraph(nil, builder.Grid(4, 5), builder.Complete(4))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Nodes(), b.Nodes())
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
	}{
		{"Path(1)", builder.Path(1)},
		{"Ladder(0)", builder.Ladder(0)},
		{"Grid(0,3)", builder.Grid(0, 3)},
		{"Grid(1,1)", builder.Grid(1, 1)},
		{"Complete(1)", builder.Complete(1)},
		{"Cycle(0)", builder.Cycle(0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, tc.ctor)
			require.ErrorIs(t, err, builder.ErrTooFewVertices)
		})
	}

	_, err := builder.BuildGraph(nil, builder.Path(3), nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	empty := builder.WithIDScheme(func(int) string { return "" })
	_, err = builder.BuildGraph([]builder.BuilderOption{empty}, builder.Path(2))
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	require.ErrorIs(t, err, core.ErrEmptyNode)
}

func TestIDFns(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0", builder.DefaultIDFn(0))
	assert.Equal(t, "123", builder.DefaultIDFn(123))
	assert.Equal(t, "v7", builder.SymbolNumberIDFn("v")(7))
	assert.Equal(t, "A", builder.ExcelColumnIDFn(0))
	assert.Equal(t, "Z", builder.ExcelColumnIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "AZ", builder.ExcelColumnIDFn(51))
	assert.Equal(t, "BA", builder.ExcelColumnIDFn(52))

	assert.Panics(t, func() { builder.SymbolNumberIDFn("v")(-1) })
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
}
