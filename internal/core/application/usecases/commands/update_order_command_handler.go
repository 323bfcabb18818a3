package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// UpdateOrderCommandHandler replaces an order's editable details and, when the
// payload requests the "Cancelled" status, cancels the order together with its
// active assignment. Cancelling frees the assigned courier, so the handler
// runs against the full unit of work.
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
func NewUpdateOrderCommandHandler(uowFactory UoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order update command and returns the updated order.
// A requested status equal to the current one is a detail-only update. Any
// other requested status except "Cancelled" is rejected: progress through the
// lifecycle is driven by the assignment workflow, not by editing the order.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = existing.UpdateDetails(cmd.ClientName(), cmd.DeliveryAddress(), cmd.OrderDate()); err != nil {
		return nil, err
	}

	if cmd.Status() != existing.Status() {
		if cmd.Status() != order.Cancelled {
			return nil, errs.NewInvalidTransitionError(
				"order", existing.Status().String(), cmd.Status().String(),
			)
		}

		if err = h.cancelOrder(ctx, uow, existing); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}

// cancelOrder moves the order to "Cancelled" and cancels its active
// assignment, if any, freeing the assigned courier.
func (h UpdateOrderCommandHandler) cancelOrder(ctx context.Context, uow UoW, existing *order.Order) error {
	if err := existing.Cancel(); err != nil {
		return err
	}

	assignmentRepo := uow.AssignmentRepository()
	active, err := assignmentRepo.GetActiveByOrderID(ctx, existing.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err = active.TransitionTo(assignment.Cancelled); err != nil {
		return err
	}

	if err = assignmentRepo.Update(ctx, active); err != nil {
		return err
	}

	return syncCourierAvailability(ctx, assignmentRepo, uow.DeliveryPersonRepository(), active.DeliveryPersonID())
}
