// SPDX-License-Identifier: MIT
// Package: pathcount/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Constructors attach method context with %w wrapping.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, k, rows, cols) is
// below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that the assembled adjacency could not be
// turned into a graph, or that BuildGraph received a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
