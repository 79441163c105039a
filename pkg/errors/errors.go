// Package errors provides custom error types for the wellmerge engine.
// These errors enable programmatic error checking and carry enough
// structure for callers to distinguish per-source problems, which the
// engine recovers from, from fatal input problems, which it does not.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the wellmerge engine
var (
	// ErrNoSources indicates that a merge was requested with zero sources
	ErrNoSources = errors.New("no sources provided")

	// ErrNoDepthColumn indicates that a source table has no recognizable depth column
	ErrNoDepthColumn = errors.New("no depth column found")

	// ErrNoDepthData indicates that no source contributed usable depth data
	ErrNoDepthData = errors.New("no usable depth data")

	// ErrNoUsableSources indicates that no source survived normalization
	ErrNoUsableSources = errors.New("no usable sources")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates that a requested curve or column was not found
	ErrNotFound = errors.New("not found")
)

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// NormalizeError represents a per-source normalization failure.
// These are recoverable: the merge drops the source and continues.
type NormalizeError struct {
	Source  string
	Message string
	Err     error
}

// Error implements the error interface
func (e *NormalizeError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("normalizing %s: %s", e.Source, e.Message)
	}
	return fmt.Sprintf("normalization failed: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *NormalizeError) Unwrap() error {
	return e.Err
}

// NewNormalizeError creates a new NormalizeError
func NewNormalizeError(source string, err error) *NormalizeError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &NormalizeError{Source: source, Message: message, Err: err}
}

// GridError represents a failure to build the master depth grid.
// These are fatal: without a grid there is nothing to merge onto.
type GridError struct {
	Message string
	Err     error
}

// Error implements the error interface
func (e *GridError) Error() string {
	return fmt.Sprintf("building master grid: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *GridError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *GridError) Is(target error) bool {
	return target == ErrNoDepthData
}

// NewGridError creates a new GridError
func NewGridError(message string, err error) *GridError {
	return &GridError{Message: message, Err: err}
}

// MergeError represents a fatal error during a merge operation
type MergeError struct {
	Sources []string
	Message string
	Err     error
}

// Error implements the error interface
func (e *MergeError) Error() string {
	if len(e.Sources) > 0 {
		return fmt.Sprintf("merging %v: %s", e.Sources, e.Message)
	}
	return fmt.Sprintf("merge failed: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *MergeError) Unwrap() error {
	return e.Err
}

// NewMergeError creates a new MergeError
func NewMergeError(sources []string, message string, err error) *MergeError {
	return &MergeError{Sources: sources, Message: message, Err: err}
}

// Helper functions for error checking

// IsNoDepthColumn checks if an error indicates a missing depth column
func IsNoDepthColumn(err error) bool {
	return errors.Is(err, ErrNoDepthColumn)
}

// IsNoDepthData checks if an error indicates unusable depth data
func IsNoDepthData(err error) bool {
	return errors.Is(err, ErrNoDepthData)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}
