// SPDX-License-Identifier: MIT

package adjlist

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine indicates a non-blank line without the ':' separator.
	ErrMalformedLine = errors.New("adjlist: malformed line, missing ':'")

	// ErrEmptyNodeName indicates a line whose node name is blank.
	ErrEmptyNodeName = errors.New("adjlist: empty node name")
)

// ParseError locates a parse failure. Err is one of the package sentinels or
// a read error from the underlying reader.
type ParseError struct {
	Line int    // 1-based line number
	Text string // offending line, trailing '\r' removed
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ParseError) Unwrap() error {
	return e.Err
}
