// SPDX-License-Identifier: MIT

// Package builder assembles deterministic directed-graph fixtures whose path
// counts are known in closed form. Tests and benchmarks use them to exercise
// the counting engine at sizes where naive enumeration is hopeless.
//
// Topologies (Constructor factories):
//
//   - Path(n):          v0 → v1 → … → v(n-1). One walk end to end.
//   - Ladder(k):        k diamonds in series. 2^k walks end to end.
//   - Grid(rows, cols): lattice DAG with right and down edges, IDs "r,c".
//     C(rows+cols-2, rows-1) walks corner to corner.
//   - Complete(n):      transitive tournament i → j for i < j.
//     2^(n-2) walks from first to last.
//   - Cycle(n):         directed ring (n == 1 is a self-loop), for
//     cycle-handling tests.
//
// Configuration:
//
//   - BuilderOption:  functional options resolved into builderConfig.
//   - IDFn schemes:   DefaultIDFn ("0","1",…), SymbolNumberIDFn(prefix)
//     ("v0","v1",…), ExcelColumnIDFn ("A",…,"Z","AA",…).
//
// Guarantees:
//
//   - Same constructors, order and options ⇒ identical graphs.
//   - Constructors return sentinel errors (errors.Is) and never panic; option
//     constructors panic on meaningless input.
package builder
