package primitive

import (
	"errors"
	"fmt"
)

// DispatchError represents a failure in primitive registration or dispatch.
//
// Dispatch errors are programming-contract problems (unknown primitive,
// malformed signature, wrong arity), not evaluation outcomes: an evaluation
// that simply produces no result is an absent Outcome, never an error.
type DispatchError struct {
	// Code identifies the error category.
	Code DispatchErrorCode

	// Name is the primitive name involved, when known.
	Name string

	// Message is a human-readable description.
	Message string
}

// DispatchErrorCode categorizes dispatch errors.
type DispatchErrorCode string

const (
	// ErrCodeUnknownPrimitive indicates no registered overload matched the
	// requested name and operand kinds.
	ErrCodeUnknownPrimitive DispatchErrorCode = "UNKNOWN_PRIMITIVE"

	// ErrCodeDuplicateSignature indicates a second registration of the same
	// (name, operand kinds) pair.
	ErrCodeDuplicateSignature DispatchErrorCode = "DUPLICATE_SIGNATURE"

	// ErrCodeInvalidSignature indicates a malformed declaration: empty name,
	// unknown kind, or nil apply function.
	ErrCodeInvalidSignature DispatchErrorCode = "INVALID_SIGNATURE"

	// ErrCodeArityMismatch indicates an invocation with the wrong number of
	// arguments for every overload of the name.
	ErrCodeArityMismatch DispatchErrorCode = "ARITY_MISMATCH"
)

// Error implements the error interface.
func (e *DispatchError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: %s (primitive=%s)", e.Code, e.Message, e.Name)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsUnknownPrimitive returns true if the error is an unknown-primitive
// dispatch error. Uses errors.As to handle wrapped errors.
func IsUnknownPrimitive(err error) bool {
	var de *DispatchError
	if errors.As(err, &de) {
		return de.Code == ErrCodeUnknownPrimitive
	}
	return false
}

// NotImplementedError marks an input in a branch the library does not
// support yet (general log, general cbrt). It is recoverable: a single
// unsupported input must not take down the host process, but the condition
// stays distinct from the absence-of-result encoding so callers cannot
// confuse "unsupported" with "no fact derivable".
type NotImplementedError struct {
	// Op is the primitive name.
	Op string

	// Input describes the offending input.
	Input string
}

// Error implements the error interface.
func (e *NotImplementedError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("NOT_IMPLEMENTED: %s is not implemented for %s", e.Op, e.Input)
	}
	return fmt.Sprintf("NOT_IMPLEMENTED: %s is not implemented for this input", e.Op)
}

// IsNotImplemented returns true if the error marks an unsupported branch.
// Uses errors.As to handle wrapped errors.
func IsNotImplemented(err error) bool {
	var ne *NotImplementedError
	return errors.As(err, &ne)
}
