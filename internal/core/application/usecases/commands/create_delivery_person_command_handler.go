package commands

import (
	"context"

	"dispatch/internal/core/domain/model/deliveryperson"
)

// CreateDeliveryPersonCommandHandler handles courier registration.
type CreateDeliveryPersonCommandHandler struct {
	uowFactory DeliveryPersonUoWFactory
}

// NewCreateDeliveryPersonCommandHandler creates a handler for courier registration.
func NewCreateDeliveryPersonCommandHandler(uowFactory DeliveryPersonUoWFactory) CreateDeliveryPersonCommandHandler {
	return CreateDeliveryPersonCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier registration command and returns the created
// courier, available for assignments.
func (h CreateDeliveryPersonCommandHandler) Handle(
	ctx context.Context, cmd CreateDeliveryPersonCommand,
) (*deliveryperson.DeliveryPerson, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	person, err := deliveryperson.NewDeliveryPerson(cmd.DeliveryPersonID(), cmd.Name(), cmd.PhoneNumber())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DeliveryPersonRepository().Add(ctx, person); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return person, nil
}
