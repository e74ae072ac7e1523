package services

import (
	"errors"
	"sort"
	"strings"
)

// Error variables
var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrTokenAlreadyRevoked = errors.New("access token already revoked")
	ErrForbidden           = errors.New("forbidden")
	ErrUserNotFound        = errors.New("user not found")
	ErrBoardNotFound       = errors.New("board not found")
	ErrColumnNotFound      = errors.New("column not found")
	ErrTaskNotFound        = errors.New("task not found")
)

// ValidationError reports input that failed a business rule, keyed by field.
type ValidationError struct {
	Errors map[string][]string
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: map[string][]string{field: {message}}}
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for f := range e.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}
