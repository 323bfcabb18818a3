package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is the sentinel error for status changes that the
// owning state machine does not permit.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError indicates that an entity cannot move from its
// current status to the requested one.
type InvalidTransitionError struct {
	// Entity names the state machine owner (e.g., "assignment").
	Entity string
	// From is the current status.
	From string
	// To is the requested status.
	To string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// entity and status pair.
func NewInvalidTransitionError(entity, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s cannot move from %s to %s", ErrInvalidTransition, e.Entity, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
