package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateDeliveryPersonCommandIsNotConstructed = errors.New(
	"UpdateDeliveryPersonCommand must be created via NewUpdateDeliveryPersonCommand constructor",
)

// UpdateDeliveryPersonCommand represents a request to update a courier's
// contact details. The availability flag is derived from active assignments
// and cannot be edited directly.
type UpdateDeliveryPersonCommand struct { //nolint:recvcheck //using for validation
	deliveryPersonID kernel.UUID
	name             string
	phoneNumber      string

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryPersonCommand creates a command to update an existing courier.
func NewUpdateDeliveryPersonCommand(
	deliveryPersonID kernel.UUID, name, phoneNumber string,
) (UpdateDeliveryPersonCommand, error) {
	personCommand := UpdateDeliveryPersonCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		personCommand.setDeliveryPersonID(deliveryPersonID),
		personCommand.setName(name),
		personCommand.setPhoneNumber(phoneNumber),
	); err != nil {
		return UpdateDeliveryPersonCommand{}, err
	}

	return personCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateDeliveryPersonCommandIsNotConstructed if validation fails.
func (c UpdateDeliveryPersonCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryPersonCommandIsNotConstructed)
}

// DeliveryPersonID returns the unique identifier for the courier.
func (c UpdateDeliveryPersonCommand) DeliveryPersonID() kernel.UUID {
	return c.deliveryPersonID
}

// Name returns the updated courier name.
func (c UpdateDeliveryPersonCommand) Name() string {
	return c.name
}

// PhoneNumber returns the updated contact phone number.
func (c UpdateDeliveryPersonCommand) PhoneNumber() string {
	return c.phoneNumber
}

func (c *UpdateDeliveryPersonCommand) setDeliveryPersonID(deliveryPersonID kernel.UUID) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return err
	}

	c.deliveryPersonID = deliveryPersonID
	return nil
}

func (c *UpdateDeliveryPersonCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateDeliveryPersonCommand) setPhoneNumber(phoneNumber string) error {
	if phoneNumber == "" {
		return ErrPhoneNumberIsRequired
	}

	c.phoneNumber = phoneNumber
	return nil
}
