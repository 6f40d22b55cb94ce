// SPDX-License-Identifier: MIT
// Package: pathcount/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons
//     in order against one assembly, then freezes it into a core.Graph.
//   - Constructors share the ID space: equal names from two constructors are
//     the same node, which is how fixtures are glued together.
//   - Same inputs and options ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathcount/core"
)

// Constructor adds nodes and edges to an assembly using the resolved
// builderConfig. Constructors validate parameters first and return sentinel
// errors; they never panic.
type Constructor func(a *assembly, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order and returns the resulting immutable graph.
// Any constructor error is wrapped with "BuildGraph: %w".
//
// Complexity: Σ cost of constructors + O(V + E) to freeze.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	a := newAssembly()

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(a, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := core.NewGraph(a.adjacencies()...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
	}

	return g, nil
}

// assembly is the mutable staging area constructors write into. Keys keep
// first-insertion order so the frozen graph is deterministic.
type assembly struct {
	order []core.Node
	succ  map[core.Node][]core.Node
}

func newAssembly() *assembly {
	return &assembly{succ: make(map[core.Node][]core.Node)}
}

// addNode registers name as a key (with no edges yet) and returns its Node.
func (a *assembly) addNode(name string) core.Node {
	n := core.NewNode(name)
	if _, ok := a.succ[n]; !ok {
		a.succ[n] = nil
		a.order = append(a.order, n)
	}

	return n
}

// addEdge appends u→v, registering both endpoints.
func (a *assembly) addEdge(u, v string) {
	from := a.addNode(u)
	to := a.addNode(v)
	a.succ[from] = append(a.succ[from], to)
}

func (a *assembly) adjacencies() []core.Adjacency {
	out := make([]core.Adjacency, len(a.order))
	for i, n := range a.order {
		out[i] = core.Adjacency{From: n, To: a.succ[n]}
	}

	return out
}
