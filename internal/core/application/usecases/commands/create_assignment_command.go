package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCreateAssignmentCommandIsNotConstructed = errors.New(
	"CreateAssignmentCommand must be created via NewCreateAssignmentCommand constructor",
)

// CreateAssignmentCommand represents a request to assign a courier to an
// unassigned order.
//
// Example:
//
//	cmd, err := NewCreateAssignmentCommand(orderID, courierID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewCreateAssignmentCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    log.Println("order already taken or courier busy")
//	}
type CreateAssignmentCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	deliveryPersonID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateAssignmentCommand creates a command to link an order with a courier.
// Validates both identifiers.
func NewCreateAssignmentCommand(orderID, deliveryPersonID kernel.UUID) (CreateAssignmentCommand, error) {
	assignmentCommand := CreateAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignmentCommand.setOrderID(orderID),
		assignmentCommand.setDeliveryPersonID(deliveryPersonID),
	); err != nil {
		return CreateAssignmentCommand{}, err
	}

	return assignmentCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateAssignmentCommandIsNotConstructed if validation fails.
func (c CreateAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAssignmentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being assigned.
func (c CreateAssignmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeliveryPersonID returns the identifier of the courier taking the order.
func (c CreateAssignmentCommand) DeliveryPersonID() kernel.UUID {
	return c.deliveryPersonID
}

func (c *CreateAssignmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateAssignmentCommand) setDeliveryPersonID(deliveryPersonID kernel.UUID) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return err
	}

	c.deliveryPersonID = deliveryPersonID
	return nil
}
