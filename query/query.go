// SPDX-License-Identifier: MIT

package query

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/katalvlaran/pathcount/core"
)

// ErrInvalidQuery reports a block that is not one of the three query shapes,
// names an empty node, or reuses a name.
var ErrInvalidQuery = errors.New("query: invalid query")

// Kind names the counting operation a query maps to.
type Kind string

const (
	KindCount    Kind = "count"
	KindThrough  Kind = "through"
	KindVisiting Kind = "visiting"
)

// File is the decoded form of a query file.
type File struct {
	Queries []*Query `hcl:"query,block"`
}

// Query is one named question.
type Query struct {
	Name     string   `hcl:"name,label"`
	From     *string  `hcl:"from,optional"`
	To       *string  `hcl:"to,optional"`
	Through  []string `hcl:"through,optional"`
	Visiting []string `hcl:"visiting,optional"`
}

// Kind classifies q. It returns an error wrapping ErrInvalidQuery when the
// attributes do not form exactly one shape.
func (q *Query) Kind() (Kind, error) {
	endpoints := q.From != nil || q.To != nil
	switch {
	case q.Through != nil && (endpoints || q.Visiting != nil):
		return "", q.invalid("through cannot be combined with from, to or visiting")
	case q.Through != nil:
		return KindThrough, nil
	case q.From == nil || q.To == nil:
		return "", q.invalid("from and to are both required")
	case q.Visiting != nil:
		return KindVisiting, nil
	default:
		return KindCount, nil
	}
}

// Nodes returns the query's endpoints and waypoints as nodes.
func (q *Query) Nodes() (from, to core.Node, waypoints []core.Node) {
	if q.From != nil {
		from = core.NewNode(*q.From)
	}
	if q.To != nil {
		to = core.NewNode(*q.To)
	}
	if q.Through != nil {
		return from, to, core.NewNodes(q.Through...)
	}

	return from, to, core.NewNodes(q.Visiting...)
}

// validate checks the shape and that no node name is empty.
func (q *Query) validate() error {
	if _, err := q.Kind(); err != nil {
		return err
	}
	for _, p := range []*string{q.From, q.To} {
		if p != nil && *p == "" {
			return q.invalid("empty node name")
		}
	}
	for _, list := range [][]string{q.Through, q.Visiting} {
		for _, name := range list {
			if name == "" {
				return q.invalid("empty node name")
			}
		}
	}

	return nil
}

func (q *Query) invalid(reason string) error {
	return fmt.Errorf("%w %q: %s", ErrInvalidQuery, q.Name, reason)
}

// Parse decodes and validates query file source. filename is only used in
// diagnostics.
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("query: parse %s: %w", filename, diags)
	}

	var f File
	if diags = gohcl.DecodeBody(hclFile.Body, nil, &f); diags.HasErrors() {
		return nil, fmt.Errorf("query: decode %s: %w", filename, diags)
	}

	seen := make(map[string]struct{}, len(f.Queries))
	for _, q := range f.Queries {
		if _, dup := seen[q.Name]; dup {
			return nil, q.invalid("duplicate name")
		}
		seen[q.Name] = struct{}{}
		if err := q.validate(); err != nil {
			return nil, err
		}
	}

	return &f, nil
}

// Load reads and parses the query file at path.
func Load(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return Parse(src, path)
}
