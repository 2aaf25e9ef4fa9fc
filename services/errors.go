package services

import (
	"errors"
	"strings"

	"cityserve-be/models"
)

var (
	// ErrNotFound is returned when no complaint matches the given id
	ErrNotFound = errors.New("complaint not found")
	// ErrUnauthorized is returned when the actor may not act on the complaint
	ErrUnauthorized = errors.New("not authorized to access this complaint")
	// ErrUserNotFound is returned when no user matches the lookup
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when registering an already-used email
	ErrEmailTaken = errors.New("user with this email already exists")
)

// ValidationError carries the per-field failures of a rejected payload
type ValidationError struct {
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		msgs = append(msgs, fe.Error())
	}
	return strings.Join(msgs, "; ")
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []models.FieldError{{Field: field, Message: message}}}
}
