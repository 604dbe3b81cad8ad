// Package errors defines the error taxonomy for tabstijl. Every failure the
// tool can report before reading input is a configuration mistake the user
// can fix; the formatting core itself cannot fail once configuration passes
// validation.
package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents an input validation failure for a named field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// UserError represents an error caused by user input or configuration.
// Suggestion can provide a concrete fix for the user.
type UserError struct {
	Message    string
	Suggestion string
	Err        error
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a UserError with a message and optional suggestion.
func NewUserError(message, suggestion string) *UserError {
	return &UserError{Message: message, Suggestion: suggestion}
}

// WrapUserError wraps an underlying error with a user-facing message and
// suggestion.
func WrapUserError(err error, message, suggestion string) *UserError {
	return &UserError{Message: message, Suggestion: suggestion, Err: err}
}

// IsUserError reports whether err is a UserError anywhere in its chain.
func IsUserError(err error) bool {
	var e *UserError
	return errors.As(err, &e)
}

// IsValidationError reports whether err is a ValidationError anywhere in
// its chain.
func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// UserSuggestion returns a suggestion string if err carries one.
func UserSuggestion(err error) string {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue.Suggestion
	}
	return ""
}
