package commands

import (
	"context"

	"dispatch/internal/core/domain/model/assignment"
)

// UpdateAssignmentStatusCommandHandler moves an assignment through its
// delivery workflow and keeps the linked order and courier consistent with
// the new status. Completing or cancelling an assignment frees the courier
// for new work, and cancelling returns a non-terminal order to the pool.
type UpdateAssignmentStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateAssignmentStatusCommandHandler creates a handler for assignment
// status transitions.
func NewUpdateAssignmentStatusCommandHandler(uowFactory UoWFactory) UpdateAssignmentStatusCommandHandler {
	return UpdateAssignmentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment status change and returns the updated
// assignment. The assignment's state machine gates the transition; the order
// and courier updates ride in the same transaction so observers never see a
// delivered assignment with an undelivered order.
func (h UpdateAssignmentStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdateAssignmentStatusCommand,
) (*assignment.Assignment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// The unlocked read only resolves the linked order; the order lock is
	// taken first to keep one lock order with the order-side handlers, and
	// the assignment is then re-read under its own row lock so the
	// transition validates against committed state, not a stale snapshot.
	assignmentRepo := uow.AssignmentRepository()
	located, err := assignmentRepo.Get(ctx, cmd.AssignmentID())
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	lockedOrder, err := orderRepo.GetForUpdate(ctx, located.OrderID())
	if err != nil {
		return nil, err
	}

	current, err := assignmentRepo.GetForUpdate(ctx, cmd.AssignmentID())
	if err != nil {
		return nil, err
	}

	if err = current.TransitionTo(cmd.NewStatus()); err != nil {
		return nil, err
	}

	if err = assignmentRepo.Update(ctx, current); err != nil {
		return nil, err
	}

	orderChanged := false
	switch cmd.NewStatus() {
	case assignment.OutForDelivery:
		if err = lockedOrder.MarkOutForDelivery(); err != nil {
			return nil, err
		}
		orderChanged = true
	case assignment.Delivered:
		if err = lockedOrder.Deliver(); err != nil {
			return nil, err
		}
		orderChanged = true
	case assignment.Cancelled:
		// An order cancelled on its own stays cancelled; otherwise it
		// returns to the unassigned pool.
		if !lockedOrder.Status().IsTerminal() {
			if err = lockedOrder.Release(); err != nil {
				return nil, err
			}
			orderChanged = true
		}
	case assignment.Unknown, assignment.Pending, assignment.InProgress:
		// Accepting the assignment does not move the order.
	}

	if orderChanged {
		if err = orderRepo.Update(ctx, lockedOrder); err != nil {
			return nil, err
		}
	}

	if cmd.NewStatus().IsTerminal() {
		err = syncCourierAvailability(ctx, assignmentRepo, uow.DeliveryPersonRepository(), current.DeliveryPersonID())
		if err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return current, nil
}
