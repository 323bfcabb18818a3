package commands

import (
	"context"

	"dispatch/internal/core/domain/model/deliveryperson"
)

// UpdateDeliveryPersonCommandHandler updates a courier's contact details.
type UpdateDeliveryPersonCommandHandler struct {
	uowFactory DeliveryPersonUoWFactory
}

// NewUpdateDeliveryPersonCommandHandler creates a handler for courier update operations.
func NewUpdateDeliveryPersonCommandHandler(uowFactory DeliveryPersonUoWFactory) UpdateDeliveryPersonCommandHandler {
	return UpdateDeliveryPersonCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier update command and returns the updated courier.
// The availability flag is left as stored.
func (h UpdateDeliveryPersonCommandHandler) Handle(
	ctx context.Context, cmd UpdateDeliveryPersonCommand,
) (*deliveryperson.DeliveryPerson, error) {
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

	personRepo := uow.DeliveryPersonRepository()
	person, err := personRepo.GetForUpdate(ctx, cmd.DeliveryPersonID())
	if err != nil {
		return nil, err
	}

	if err = person.UpdateDetails(cmd.Name(), cmd.PhoneNumber()); err != nil {
		return nil, err
	}

	if err = personRepo.Update(ctx, person); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return person, nil
}
