// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ParseError represents a failure raised by the title parse capability
type ParseError struct {
	Title string
	Err   error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse title '%s': %v", e.Title, e.Err)
}

// Unwrap returns the underlying parser error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsParse checks if an error is a ParseError
func IsParse(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
