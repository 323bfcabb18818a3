package commands

import (
	"context"
)

// DeleteAssignmentCommandHandler removes an assignment record. Deleting an
// active assignment behaves like cancelling it first: the order returns to
// the unassigned pool and the courier is freed. Deleting a completed or
// cancelled assignment only drops the historical record.
type DeleteAssignmentCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteAssignmentCommandHandler creates a handler for assignment deletion.
func NewDeleteAssignmentCommandHandler(uowFactory UoWFactory) DeleteAssignmentCommandHandler {
	return DeleteAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment deletion command. Returns an
// ObjectNotFoundError when the assignment does not exist.
func (h DeleteAssignmentCommandHandler) Handle(ctx context.Context, cmd DeleteAssignmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignmentRepo := uow.AssignmentRepository()
	current, err := assignmentRepo.Get(ctx, cmd.AssignmentID())
	if err != nil {
		return err
	}

	wasActive := current.IsActive()

	if wasActive {
		orderRepo := uow.OrderRepository()
		lockedOrder, lockErr := orderRepo.GetForUpdate(ctx, current.OrderID())
		if lockErr != nil {
			return lockErr
		}

		// A concurrent transition may have completed the assignment while
		// this transaction waited for the order lock. Re-read under the
		// assignment's own lock and let the committed status decide the
		// side effects.
		current, err = assignmentRepo.GetForUpdate(ctx, cmd.AssignmentID())
		if err != nil {
			return err
		}
		wasActive = current.IsActive()

		if wasActive && !lockedOrder.Status().IsTerminal() {
			if err = lockedOrder.Release(); err != nil {
				return err
			}

			if err = orderRepo.Update(ctx, lockedOrder); err != nil {
				return err
			}
		}
	}

	if err = assignmentRepo.Delete(ctx, cmd.AssignmentID()); err != nil {
		return err
	}

	if wasActive {
		err = syncCourierAvailability(ctx, assignmentRepo, uow.DeliveryPersonRepository(), current.DeliveryPersonID())
		if err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
