package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrDeleteDeliveryPersonCommandIsNotConstructed = errors.New(
	"DeleteDeliveryPersonCommand must be created via NewDeleteDeliveryPersonCommand constructor",
)

// DeleteDeliveryPersonCommand represents a request to remove a courier.
type DeleteDeliveryPersonCommand struct { //nolint:recvcheck //using for validation
	deliveryPersonID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteDeliveryPersonCommand creates a command to delete a courier by its identifier.
func NewDeleteDeliveryPersonCommand(deliveryPersonID kernel.UUID) (DeleteDeliveryPersonCommand, error) {
	personCommand := DeleteDeliveryPersonCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := personCommand.setDeliveryPersonID(deliveryPersonID); err != nil {
		return DeleteDeliveryPersonCommand{}, err
	}

	return personCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteDeliveryPersonCommandIsNotConstructed if validation fails.
func (c DeleteDeliveryPersonCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDeliveryPersonCommandIsNotConstructed)
}

// DeliveryPersonID returns the unique identifier for the courier.
func (c DeleteDeliveryPersonCommand) DeliveryPersonID() kernel.UUID {
	return c.deliveryPersonID
}

func (c *DeleteDeliveryPersonCommand) setDeliveryPersonID(deliveryPersonID kernel.UUID) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return err
	}

	c.deliveryPersonID = deliveryPersonID
	return nil
}
