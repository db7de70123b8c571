package scenario

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeValidation indicates a field or invariant the user has to fix
	ErrTypeValidation ErrorType = iota
	// ErrTypeDecode indicates a stored record that could not be read back
	ErrTypeDecode
	// ErrTypeStorage indicates the key-value store failed
	ErrTypeStorage
	// ErrTypeUnknown indicates an unknown or unexpected error
	ErrTypeUnknown
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeValidation:
		return "Validation Error"
	case ErrTypeDecode:
		return "Decode Error"
	case ErrTypeStorage:
		return "Storage Error"
	case ErrTypeUnknown:
		return "Unknown Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error is the error type returned by this package.
type Error struct {
	Type    ErrorType // Category of error
	Section Section   // Section the error belongs to
	Field   string    // Offending field, e.g. "cells[1].band"; may be empty
	Message string    // Human-readable error message
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *Error) Error() string {
	if _, ok := SectionAt(int(e.Section)); !ok {
		if e.Err != nil {
			return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
		}
		return fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	where := e.Section.String()
	if e.Field != "" {
		where += "." + e.Field
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s (caused by: %v)", e.Type, where, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", e.Type, where, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error for a section field
func NewValidationError(section Section, field, message string) *Error {
	return &Error{
		Type:    ErrTypeValidation,
		Section: section,
		Field:   field,
		Message: message,
	}
}

// NewDecodeError creates an error for an unreadable stored record
func NewDecodeError(message string, err error) *Error {
	return &Error{
		Type:    ErrTypeDecode,
		Section: -1,
		Message: message,
		Err:     err,
	}
}

// NewStorageError creates an error for a failed key-value store operation
func NewStorageError(message string, err error) *Error {
	return &Error{
		Type:    ErrTypeStorage,
		Section: -1,
		Message: message,
		Err:     err,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == ErrTypeValidation
	}
	return false
}

// IsDecodeError checks if an error is a decode error
func IsDecodeError(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == ErrTypeDecode
	}
	return false
}

// GetShortErrorMessage returns a concise, user-friendly error message
func GetShortErrorMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}

	switch e.Type {
	case ErrTypeValidation:
		if e.Field != "" {
			return fmt.Sprintf("%s %s: %s", e.Section.Label(), e.Field, e.Message)
		}
		return fmt.Sprintf("%s: %s", e.Section.Label(), e.Message)
	case ErrTypeDecode:
		return "Stored scenario could not be read - defaults were used"
	case ErrTypeStorage:
		return "Scenario storage unavailable"
	default:
		return e.Message
	}
}
