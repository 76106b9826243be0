// Package errors provides structured error types for shortpath.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the HTTP API
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Every fatal condition maps to one code:
//   - INVALID_ARGUMENTS: wrong invocation, bad or out-of-range source vertex
//   - IO_ERROR: the graph file cannot be opened or its header read
//   - GRAPH_CONSTRUCTION: an edge was rejected while building the graph
//   - INVALID_CONFIG: the configuration file or environment is unusable
//   - INTERNAL_ERROR: anything unexpected
//
// Package-level sentinels in graph, io and dijkstra stay intact in the
// cause chain, so both [Is] and the standard errors.Is work on the result.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidArguments, "source vertex %d out of range", v)
//	if errors.Is(err, errors.ErrCodeInvalidArguments) {
//	    // Handle bad invocation
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "cannot read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	ErrCodeInvalidArguments  Code = "INVALID_ARGUMENTS"
	ErrCodeIO                Code = "IO_ERROR"
	ErrCodeGraphConstruction Code = "GRAPH_CONSTRUCTION"
	ErrCodeInvalidConfig     Code = "INVALID_CONFIG"
	ErrCodeInternal          Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message followed by the cause, without the
// code prefix. For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + e.Cause.Error()
		}
		return e.Message
	}
	return err.Error()
}

// ExitCode returns the process exit status for err: 0 for nil, 1 otherwise.
// Every failure class terminates the same way.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
