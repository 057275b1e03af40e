package usecase

import (
	"fmt"
	"strings"
)

// FieldError describes one rejected input field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when input fails validation. Nothing was persisted.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// invalid builds a single-field ValidationError
func invalid(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

// NotFoundError is returned when an id or slug does not resolve to a visible record
type NotFoundError struct {
	Kind string
}

func (e *NotFoundError) Error() string {
	return e.Kind + " not found"
}

// ConflictError is returned when a unique field is already taken
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// AuthError is returned for missing or bad credentials and tokens.
// Messages stay generic so they do not reveal which check failed.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// Authentication failures
var (
	ErrNoToken            = &AuthError{Message: "No token provided, authorization denied"}
	ErrInvalidToken       = &AuthError{Message: "Token is not valid"}
	ErrInvalidCredentials = &AuthError{Message: "Invalid credentials"}
)

func statusMessage(allowed []string) string {
	return fmt.Sprintf("Invalid status. Must be one of: %s", strings.Join(allowed, ", "))
}
