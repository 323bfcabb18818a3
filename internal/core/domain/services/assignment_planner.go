package services

import (
	"fmt"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/deliveryperson"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// AssignmentPlanner is a domain service that pairs an order with a delivery
// person and applies the assignment side effects on both aggregates in one
// step: the new assignment starts Pending, the order becomes Assigned, and
// the courier becomes unavailable.
//
// Business rules:
//   - The order must currently be UnAssigned (no active assignment)
//   - The delivery person must currently be available
//
// The planner only mutates in-memory aggregates; persisting all three
// entities atomically is the calling command handler's unit of work.
type AssignmentPlanner struct{}

// NewAssignmentPlanner creates a new AssignmentPlanner instance.
func NewAssignmentPlanner() AssignmentPlanner {
	return AssignmentPlanner{}
}

// Plan creates the assignment pairing o with p.
//
// Returns a ConflictError when the order already has active work or the
// courier is busy; these surface to the API as 409 responses.
func (AssignmentPlanner) Plan(o *order.Order, p *deliveryperson.DeliveryPerson) (*assignment.Assignment, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if o.Status() != order.UnAssigned {
		return nil, errs.NewConflictError(
			fmt.Sprintf("order %s is not awaiting assignment (status %s)", o.ID(), o.Status()),
		)
	}
	if !p.IsAvailable() {
		return nil, errs.NewConflictError(
			fmt.Sprintf("delivery person %s is not available", p.ID()),
		)
	}

	a, err := assignment.NewAssignment(kernel.NewUUID(), o.ID(), p.ID())
	if err != nil {
		return nil, err
	}

	if err = o.Assign(); err != nil {
		return nil, err
	}
	p.MarkBusy()

	return a, nil
}
