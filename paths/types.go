// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, CycleError, and functional options for queries.

package paths

import (
	"context"
	"errors"
	"strings"

	"github.com/katalvlaran/pathcount/core"
)

// Visitation states for the iterative walker.
const (
	White = iota // not yet reached in this query
	Gray         // on the walker stack, count still pending
	Black        // count final and memoized
)

// MaxVisitingWaypoints caps the intermediate waypoints of CountPathsVisiting;
// the number of orderings grows factorially.
const MaxVisitingWaypoints = 8

// cancelCheckInterval is how many walker steps pass between context checks.
const cancelCheckInterval = 1024

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("paths: graph is nil")

	// ErrCycleDetected indicates a cycle reachable from the query start
	// before the target. Returned errors are *CycleError values that match
	// this sentinel through errors.Is.
	ErrCycleDetected = errors.New("paths: cycle detected")

	// ErrTooFewWaypoints indicates a waypoint query with fewer than two nodes.
	ErrTooFewWaypoints = errors.New("paths: at least two waypoints are required")

	// ErrTooManyWaypoints indicates more than MaxVisitingWaypoints
	// intermediate nodes in CountPathsVisiting.
	ErrTooManyWaypoints = errors.New("paths: too many waypoints")

	// ErrDuplicateWaypoint indicates a repeated node in an unordered
	// waypoint set.
	ErrDuplicateWaypoint = errors.New("paths: duplicate waypoint")

	// ErrCountOverflow indicates a path count larger than math.MaxUint64.
	ErrCountOverflow = errors.New("paths: path count overflows uint64")
)

// CycleError reports a cycle met during a count. Cycle is closed: its first
// node is repeated at the end.
type CycleError struct {
	Cycle []core.Node
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	names := make([]string, len(e.Cycle))
	for i, n := range e.Cycle {
		names[i] = n.String()
	}

	return ErrCycleDetected.Error() + ": " + strings.Join(names, " -> ")
}

// Is makes errors.Is(err, ErrCycleDetected) hold for every CycleError.
func (e *CycleError) Is(target error) bool {
	return target == ErrCycleDetected
}

// Option configures a single query.
type Option func(*Options)

// Options holds the per-query settings.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Concurrency bounds how many waypoint segments are counted at once.
	// 1 (the default) counts them sequentially.
	Concurrency int
}

// DefaultOptions returns Background context and sequential segments.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Concurrency: 1,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithConcurrency sets how many waypoint segments may be counted in
// parallel. Panics if n < 1.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic("paths: WithConcurrency(n<1)")
	}
	return func(o *Options) {
		o.Concurrency = n
	}
}

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
