package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateDeliveryPersonCommandIsNotConstructed = errors.New(
		"CreateDeliveryPersonCommand must be created via NewCreateDeliveryPersonCommand constructor",
	)
	ErrNameIsRequired        = errors.New("name is required")
	ErrPhoneNumberIsRequired = errors.New("phone number is required")
)

// CreateDeliveryPersonCommand represents a request to register a new courier.
// New couriers start out available for assignments.
type CreateDeliveryPersonCommand struct { //nolint:recvcheck //using for validation
	deliveryPersonID kernel.UUID
	name             string
	phoneNumber      string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryPersonCommand creates a command to register a new courier.
// Validates that the identifier is valid and name and phone number are present.
func NewCreateDeliveryPersonCommand(
	deliveryPersonID kernel.UUID, name, phoneNumber string,
) (CreateDeliveryPersonCommand, error) {
	personCommand := CreateDeliveryPersonCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		personCommand.setDeliveryPersonID(deliveryPersonID),
		personCommand.setName(name),
		personCommand.setPhoneNumber(phoneNumber),
	); err != nil {
		return CreateDeliveryPersonCommand{}, err
	}

	return personCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDeliveryPersonCommandIsNotConstructed if validation fails.
func (c CreateDeliveryPersonCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryPersonCommandIsNotConstructed)
}

// DeliveryPersonID returns the unique identifier for the courier.
func (c CreateDeliveryPersonCommand) DeliveryPersonID() kernel.UUID {
	return c.deliveryPersonID
}

// Name returns the courier's display name.
func (c CreateDeliveryPersonCommand) Name() string {
	return c.name
}

// PhoneNumber returns the courier's contact phone number.
func (c CreateDeliveryPersonCommand) PhoneNumber() string {
	return c.phoneNumber
}

func (c *CreateDeliveryPersonCommand) setDeliveryPersonID(deliveryPersonID kernel.UUID) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return err
	}

	c.deliveryPersonID = deliveryPersonID
	return nil
}

func (c *CreateDeliveryPersonCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateDeliveryPersonCommand) setPhoneNumber(phoneNumber string) error {
	if phoneNumber == "" {
		return ErrPhoneNumberIsRequired
	}

	c.phoneNumber = phoneNumber
	return nil
}
