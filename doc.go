// SPDX-License-Identifier: MIT

// Package pathcount counts walks through directed graphs written as
// adjacency lists, with memoization, waypoints and cycle detection.
//
// Input is one line per node:
//
//	you: bbb ccc
//	bbb: ddd eee
//	ccc: ddd eee fff
//
// Subpackages:
//
//	core/     - immutable Graph and value-type Node
//	adjlist/  - adjacency-list text parser
//	paths/    - CountPaths, CountPathsThrough, CountPathsVisiting, DetectCycle
//	            and the cached Counter
//	builder/  - deterministic DAG fixtures (Path, Ladder, Grid, Complete, Cycle)
//	query/    - HCL batch query files
//
// Quick example:
//
//	g, _ := adjlist.Parse("you: a b\na: out\nb: out")
//	n, _ := paths.CountPaths(g, core.NewNode("you"), core.NewNode("out"))
//	// n == 2
//
// The pathcount command (cmd/pathcount) exposes the same operations on the
// command line.
package pathcount
