// SPDX-License-Identifier: MIT

package cli

// Process exit codes.
const (
	CodeOK      = 0
	CodeFailure = 1 // parse, query or cycle failure
	CodeUsage   = 2 // bad arguments, flags or configuration
)

// ExitError is an error that carries a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) *ExitError {
	return &ExitError{Code: CodeUsage, Message: err.Error()}
}
