package common

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no record matches a tenant-scoped lookup. A
// record belonging to another tenant is indistinguishable from a missing one.
var ErrNotFound = errors.New("record not found")

// ValidationError reports malformed caller input. The reason is safe to show
// to the end user verbatim.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// PersistenceError wraps a failure from the backing store. Handlers surface it
// as a generic message; the wrapped cause stays in the logs.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *PersistenceError) Unwrap() error { return e.Err }

func NewPersistenceError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Err: err}
}
