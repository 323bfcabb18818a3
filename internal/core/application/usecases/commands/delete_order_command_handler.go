package commands

import (
	"context"

	"dispatch/internal/pkg/errs"
)

// DeleteOrderCommandHandler removes orders that are not currently being
// worked. An order with an active assignment cannot be deleted: the
// assignment must be cancelled or completed first.
type DeleteOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion operations.
func NewDeleteOrderCommandHandler(uowFactory UoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order deletion command. Returns a ConflictError when
// the order still has an active assignment, and an ObjectNotFoundError when
// the order does not exist.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	// Lock the order row first so the active-assignment check serializes
	// with CreateAssignment, which takes the same lock before inserting.
	orderRepo := uow.OrderRepository()
	if _, err := orderRepo.GetForUpdate(ctx, cmd.OrderID()); err != nil {
		return err
	}

	hasActive, err := uow.AssignmentRepository().ExistsActiveByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if hasActive {
		return errs.NewConflictError("order has an active assignment and cannot be deleted")
	}

	if err = orderRepo.Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
