// Package apperr defines the error taxonomy used across the service:
// validation failures are reported before any write is attempted, store
// failures wrap backend errors, conflicts map constraint violations.
package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound marks lookups that returned no record.
var ErrNotFound = errors.New("not found")

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func Validation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ConflictError covers constraint violations surfaced by the store, such
// as deleting a category that products still reference.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func Conflict(message string) error {
	return &ConflictError{Message: message}
}

// StoreError wraps a backend read/write failure. It is never retried.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func Store(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
