package errs

import (
	"errors"
	"fmt"
)

// ErrConflict is the sentinel error for operations that would violate a
// cross-entity invariant, such as double-booking an order or deleting an
// entity that still holds active work.
var ErrConflict = errors.New("conflict with current state")

// ConflictError indicates that an operation was rejected because applying it
// would leave the system in an inconsistent state. The message is written for
// the operator and is safe to surface verbatim.
type ConflictError struct {
	// Message describes the violated invariant in operator terms.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// NewConflictError creates a ConflictError with an operator-facing message.
func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying
// error, typically a storage-level constraint violation.
func NewConflictErrorWithCause(message string, cause error) *ConflictError {
	return &ConflictError{Message: message, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrConflict, e.Message, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrConflict, e.Message))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
