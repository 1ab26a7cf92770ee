// Package errors provides typed errors for password generation.
// This enables callers to use errors.Is() and errors.As() for specific error handling.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions.
// Use errors.Is(err, errors.ErrConflictingConstraint) to check for specific errors.
var (
	// Configuration errors
	ErrConflictingConstraint = errors.New("uppercase and lowercase letters cannot both be disabled")
	ErrInvalidLength         = errors.New("invalid password length")
	ErrInvalidBoundary       = errors.New("invalid bucket boundary")
	ErrInvalidCount          = errors.New("invalid password count")
	ErrInvalidLogSetting     = errors.New("invalid log setting")

	// Randomness errors
	ErrRandFailure = errors.New("crypto/rand failure")
)

// RandError represents a failure while drawing from the random source.
// It wraps the underlying error with the draw that failed.
type RandError struct {
	Op  string // Draw name: "class", "slot", "bucket", "coin", "shuffle"
	Err error  // Underlying error
}

func (e *RandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rand %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("rand %s failed", e.Op)
}

func (e *RandError) Unwrap() error {
	if e.Err == nil {
		return ErrRandFailure
	}
	return e.Err
}

// Is reports every RandError as an ErrRandFailure.
func (e *RandError) Is(target error) bool {
	return target == ErrRandFailure
}

// NewRandError creates a new RandError.
func NewRandError(op string, err error) *RandError {
	return &RandError{Op: op, Err: err}
}

// ValidationError represents an input validation error.
type ValidationError struct {
	Field   string // Field name that failed validation
	Message string // Human-readable error message
	Err     error  // Optional sentinel this error refines
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewFieldError creates a ValidationError that matches sentinel under errors.Is.
func NewFieldError(field, message string, sentinel error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: sentinel}
}

// Is checks if target matches any of our sentinel errors.
// This is a convenience function for common error checks.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// IsConflict checks if the error indicates that both letter cases were disabled.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflictingConstraint)
}

// IsRandFailure checks if the error came from the random source.
func IsRandFailure(err error) bool {
	return errors.Is(err, ErrRandFailure)
}
