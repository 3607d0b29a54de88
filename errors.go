package tally

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors
var (
	// ErrUnknownOperation is returned when an operation symbol is not in the
	// closed operation set.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrInvalidArgument is returned when operands violate an operation's
	// preconditions: wrong operand count, division by zero, negative
	// square-root argument, or non-positive logarithm argument or base.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ArgumentError represents one or more operand validation errors that
// occurred during a single Calculate call.
type ArgumentError struct {
	Errors []error
}

// Error implements the error interface.
func (ae *ArgumentError) Error() string {
	if len(ae.Errors) == 0 {
		return "argument validation failed"
	}
	if len(ae.Errors) == 1 {
		return fmt.Sprintf("argument validation failed: %v", ae.Errors[0])
	}

	var buf strings.Builder
	buf.WriteString(fmt.Sprintf("argument validation failed with %d errors:\n", len(ae.Errors)))
	for i, err := range ae.Errors {
		fmt.Fprintf(&buf, "  %d. %v\n", i+1, err)
	}
	return buf.String()
}

// Unwrap returns the underlying errors for use with errors.Is and errors.As.
// This implements the multi-error unwrap interface introduced in Go 1.20.
func (ae *ArgumentError) Unwrap() []error {
	return ae.Errors
}

// newArgumentError creates an ArgumentError from a slice of errors.
// Returns nil if the slice is empty.
func newArgumentError(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return &ArgumentError{Errors: errs}
}
