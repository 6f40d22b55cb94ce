// SPDX-License-Identifier: MIT
//
// File: parse.go
// Role: Text → core.Graph conversion.
// Determinism:
//   - Keys are inserted in line order; successors keep token order.

package adjlist

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/pathcount/core"
)

const (
	separator = ":"

	// initialLineBuffer and maxLineSize bound the scanner. Successor lists
	// of large graphs can be long, so the ceiling is generous.
	initialLineBuffer = 64 << 10
	maxLineSize       = 16 << 20
)

// Parse converts adjacency-list text into a Graph.
//
// Errors:
//   - *ParseError wrapping ErrMalformedLine or ErrEmptyNodeName.
//
// Complexity: O(len(text)).
func Parse(text string) (*core.Graph, error) {
	return ParseReader(strings.NewReader(text))
}

// ParseReader consumes r to EOF and converts it into a Graph. Lines may end
// in "\n" or "\r\n".
func ParseReader(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, initialLineBuffer), maxLineSize)

	var (
		adjs   []core.Adjacency
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		adj, err := ParseLine(line)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Err: err}
		}
		adjs = append(adjs, adj)
	}
	if err := sc.Err(); err != nil {
		return nil, &ParseError{Line: lineNo + 1, Err: fmt.Errorf("adjlist: read: %w", err)}
	}

	g, err := core.NewGraph(adjs...)
	if err != nil {
		return nil, fmt.Errorf("adjlist: %w", err)
	}

	return g, nil
}

// ParseLine parses a single non-blank line of the form "name: a b c".
// It returns the bare sentinel (not a *ParseError) on failure; callers that
// know the line number wrap it.
func ParseLine(line string) (core.Adjacency, error) {
	name, rest, found := strings.Cut(line, separator)
	if !found {
		return core.Adjacency{}, ErrMalformedLine
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return core.Adjacency{}, ErrEmptyNodeName
	}

	// Fields drops the empty tokens produced by repeated spaces.
	tokens := strings.Fields(rest)
	to := make([]core.Node, len(tokens))
	for i, tok := range tokens {
		to[i] = core.NewNode(tok)
	}

	return core.Adjacency{From: core.NewNode(name), To: to}, nil
}
