// Package urlerrors provides structured error types for urltools.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - TemplateError: path templates that fail URI-reference well-formedness
//   - OverflowError: assembled output exceeding the working buffer capacity
//
// # Usage with errors.Is
//
//	url, err := urlbuilder.Build("/users/:id", params)
//	if err != nil {
//	    var ovErr *urlerrors.OverflowError
//	    if errors.As(err, &ovErr) {
//	        // Retry with a larger capacity via urlbuilder.WithBufferCapacity
//	    }
//	}
package urlerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrInvalidTemplate indicates a path template failed well-formedness checks.
	ErrInvalidTemplate = errors.New("invalid template")

	// ErrBufferOverflow indicates the assembled URL exceeded the buffer capacity.
	ErrBufferOverflow = errors.New("buffer overflow")
)

// TemplateError represents a path template that is not a well-formed
// absolute or relative URI reference. The build aborts before any buffer
// write, so no partial output exists.
type TemplateError struct {
	// Template is the rejected template text
	Template string
	// Reason describes why the template was rejected
	Reason string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *TemplateError) Error() string {
	msg := "invalid template"
	if e.Template != "" {
		msg += fmt.Sprintf(" %q", e.Template)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *TemplateError) Is(target error) bool {
	return target == ErrInvalidTemplate
}

// OverflowError represents an assembled URL that would exceed the fixed
// working buffer capacity. The capacity is a hard ceiling, not a retry
// condition: callers needing larger output must configure a larger buffer.
// No partial output is ever returned alongside this error.
type OverflowError struct {
	// Capacity is the configured buffer capacity in bytes
	Capacity int
	// Needed is the total length the failed operation required (0 if unknown)
	Needed int
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *OverflowError) Error() string {
	msg := "buffer overflow"
	if e.Capacity > 0 {
		msg += fmt.Sprintf(" (capacity: %d", e.Capacity)
		if e.Needed > 0 {
			msg += fmt.Sprintf(", needed: %d", e.Needed)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as OverflowError has no underlying cause.
func (e *OverflowError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *OverflowError) Is(target error) bool {
	return target == ErrBufferOverflow
}
