package assignment

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

// ErrAssignmentIsNotConstructed is returned when an Assignment was not
// created through NewAssignment or RestoreAssignment.
var ErrAssignmentIsNotConstructed = errors.New(
	"Assignment must be created via NewAssignment or RestoreAssignment constructor",
)

// Assignment is the aggregate root pairing exactly one order with exactly
// one delivery person.
//
// Invariants:
//   - id, orderID, deliveryPersonID, and assignedAt are immutable
//   - status changes only through the Status state machine
//   - an order may have at most one active assignment at a time; that rule
//     is enforced by the create-assignment command and backstopped by a
//     partial unique index in storage
type Assignment struct {
	id               kernel.UUID
	orderID          kernel.UUID
	deliveryPersonID kernel.UUID
	assignedAt       time.Time
	status           Status

	guard guard.ConstructorGuard
}

// NewAssignment creates a fresh Assignment in Pending status with
// assignedAt set to the current time.
func NewAssignment(id, orderID, deliveryPersonID kernel.UUID) (*Assignment, error) {
	a := &Assignment{
		status:     Pending,
		assignedAt: time.Now().UTC(),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setDeliveryPersonID(deliveryPersonID),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment reconstructs an Assignment from persistent storage with
// its persisted status and timestamp.
func RestoreAssignment(
	id, orderID, deliveryPersonID kernel.UUID,
	assignedAt time.Time,
	status Status,
) (*Assignment, error) {
	a := &Assignment{
		assignedAt: assignedAt,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setDeliveryPersonID(deliveryPersonID),
		a.setStatus(status),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the Assignment was created through a constructor.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// IsEqual compares two assignments by identifier.
func (a *Assignment) IsEqual(other *Assignment) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the assignment's unique identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// OrderID returns the identifier of the linked order.
func (a *Assignment) OrderID() kernel.UUID {
	return a.orderID
}

// DeliveryPersonID returns the identifier of the linked courier.
func (a *Assignment) DeliveryPersonID() kernel.UUID {
	return a.deliveryPersonID
}

// AssignedAt returns the immutable creation timestamp.
func (a *Assignment) AssignedAt() time.Time {
	return a.assignedAt
}

// Status returns the current lifecycle status.
func (a *Assignment) Status() Status {
	return a.status
}

// IsActive reports whether the assignment still occupies its courier.
func (a *Assignment) IsActive() bool {
	return a.status.IsActive()
}

// TransitionTo moves the assignment to the requested status, enforcing the
// state machine. Side effects on the linked order and courier are the
// responsibility of the command handler.
func (a *Assignment) TransitionTo(next Status) error {
	newStatus, err := a.status.TransitionTo(next)
	if err != nil {
		return err
	}

	a.status = newStatus
	return nil
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	a.orderID = orderID
	return nil
}

func (a *Assignment) setDeliveryPersonID(deliveryPersonID kernel.UUID) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return err
	}
	a.deliveryPersonID = deliveryPersonID
	return nil
}

func (a *Assignment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	a.status = status
	return nil
}
