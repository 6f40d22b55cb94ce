// SPDX-License-Identifier: MIT

// Package query loads batch query files and evaluates them against one graph.
//
// A query file is HCL with one `query "<name>"` block per question:
//
//	query "part1" {
//	  from = "you"
//	  to   = "out"
//	}
//	query "ordered" {
//	  through = ["svr", "fft", "dac", "out"]
//	}
//	query "part2" {
//	  from     = "svr"
//	  to       = "out"
//	  visiting = ["fft", "dac"]
//	}
//
// A block is exactly one of: from+to (KindCount), through (KindThrough), or
// from+to+visiting (KindVisiting). Names are unique within a file.
//
// Run evaluates the queries in file order against any Evaluator, which
// *paths.Counter satisfies, so segments shared between queries are counted
// once.
package query
