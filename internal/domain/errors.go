package domain

import (
	"errors"
	"fmt"
)

// ValidationError is a user-correctable request problem (blank field,
// non-positive quantity, malformed phone, duplicate username). Maps to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validationf builds a ValidationError with a formatted message.
func Validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError signals that a referenced entity id does not exist. Maps to 404.
type NotFoundError struct {
	Kind string // "item", "customer", "user", "bill"
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

// NotFound builds a NotFoundError for the given entity kind and id.
func NotFound(kind string, id int64) error {
	return &NotFoundError{Kind: kind, ID: id}
}

// PersistenceError wraps a store failure with the operation and key that
// triggered it. Maps to 500.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Persistence wraps a driver error with operation context.
func Persistence(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
