// SPDX-License-Identifier: MIT

package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/pathcount/core"
)

// Evaluator answers the three query kinds. *paths.Counter implements it.
type Evaluator interface {
	Count(ctx context.Context, from, to core.Node) (uint64, error)
	CountThrough(ctx context.Context, waypoints []core.Node) (uint64, error)
	CountVisiting(ctx context.Context, from, to core.Node, via []core.Node) (uint64, error)
}

// Result is the outcome of one query. Err is set when the count failed; Count
// is then zero.
type Result struct {
	Name  string
	Kind  Kind
	Count uint64
	Err   error
}

// Run evaluates every query of f in file order. A failing query does not stop
// the others; the returned error joins all per-query failures, each prefixed
// with the query name. Cancellation of ctx stops the run early.
func Run(ctx context.Context, ev Evaluator, f *File) ([]Result, error) {
	if f == nil {
		return nil, nil
	}

	results := make([]Result, 0, len(f.Queries))
	var errs []error
	for _, q := range f.Queries {
		if err := ctx.Err(); err != nil {
			return results, errors.Join(append(errs, err)...)
		}

		r := Result{Name: q.Name}
		r.Kind, r.Err = q.Kind()
		if r.Err == nil {
			r.Count, r.Err = eval(ctx, ev, q, r.Kind)
		}
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("query %q: %w", q.Name, r.Err))
		}
		results = append(results, r)
	}

	return results, errors.Join(errs...)
}

func eval(ctx context.Context, ev Evaluator, q *Query, kind Kind) (uint64, error) {
	from, to, waypoints := q.Nodes()
	switch kind {
	case KindThrough:
		return ev.CountThrough(ctx, waypoints)
	case KindVisiting:
		return ev.CountVisiting(ctx, from, to, waypoints)
	default:
		return ev.Count(ctx, from, to)
	}
}
