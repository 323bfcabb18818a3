package commands

import (
	"context"

	"dispatch/internal/pkg/errs"
)

// DeleteDeliveryPersonCommandHandler removes couriers that are not currently
// working an assignment.
type DeleteDeliveryPersonCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteDeliveryPersonCommandHandler creates a handler for courier deletion operations.
func NewDeleteDeliveryPersonCommandHandler(uowFactory UoWFactory) DeleteDeliveryPersonCommandHandler {
	return DeleteDeliveryPersonCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier deletion command. Returns a ConflictError when
// the courier still has active assignments, and an ObjectNotFoundError when
// the courier does not exist.
func (h DeleteDeliveryPersonCommandHandler) Handle(ctx context.Context, cmd DeleteDeliveryPersonCommand) error {
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

	// Lock the courier row first so the active-assignment check serializes
	// with CreateAssignment, which takes the same lock before inserting.
	personRepo := uow.DeliveryPersonRepository()
	if _, err := personRepo.GetForUpdate(ctx, cmd.DeliveryPersonID()); err != nil {
		return err
	}

	activeCount, err := uow.AssignmentRepository().CountActiveByDeliveryPersonID(ctx, cmd.DeliveryPersonID())
	if err != nil {
		return err
	}
	if activeCount > 0 {
		return errs.NewConflictError("delivery person has active assignments and cannot be deleted")
	}

	if err = personRepo.Delete(ctx, cmd.DeliveryPersonID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
