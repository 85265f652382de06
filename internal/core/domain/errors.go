// Package domain defines the core domain models for twokey.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a domain error with a structured error code.
// Codes have the form TK-<AREA>-<NNNN>.
type DomainError struct {
	Code    string // Error code (e.g., "TK-KEY-4040")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ============================================================================
// Argument Errors (ARG)
// ============================================================================

var (
	// ErrInvalidArgument indicates an invalid argument, such as an empty key.
	ErrInvalidArgument = NewDomainError("TK-ARG-4000", "invalid argument")

	// ErrMissingArgument indicates a required argument is missing.
	ErrMissingArgument = NewDomainError("TK-ARG-4001", "missing required argument")

	// ErrUnknownRemapOp indicates an unsupported modify operation.
	ErrUnknownRemapOp = NewDomainError("TK-ARG-4002", "unknown remap operation")
)

// ============================================================================
// Key Errors (KEY)
// ============================================================================

var (
	// ErrOuterKeyNotFound indicates no inner map exists for the outer key.
	ErrOuterKeyNotFound = NewDomainError("TK-KEY-4040", "outer key not found")

	// ErrEntryNotFound indicates no value is stored under the composite key.
	ErrEntryNotFound = NewDomainError("TK-KEY-4041", "entry not found")
)

// ============================================================================
// Command and System Errors (CMD, SYS)
// ============================================================================

var (
	// ErrUnknownCommand indicates the REPL did not recognize a command.
	ErrUnknownCommand = NewDomainError("TK-CMD-4000", "unknown command")

	// ErrInternal indicates an unexpected internal failure.
	ErrInternal = NewDomainError("TK-SYS-5000", "internal error")
)
