package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to replace an order's editable
// details. The requested status is part of the full entity payload: keeping
// the current status leaves the lifecycle untouched, while requesting
// "Cancelled" cancels the order. Any other status change must go through the
// assignment workflow and is rejected.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	clientName      string
	deliveryAddress string
	orderDate       time.Time
	status          order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an existing order.
// Validates identifiers, required details and the requested status.
func NewUpdateOrderCommand(
	orderID kernel.UUID, clientName, deliveryAddress string, orderDate time.Time, status order.Status,
) (UpdateOrderCommand, error) {
	orderCommand := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setClientName(clientName),
		orderCommand.setDeliveryAddress(deliveryAddress),
		orderCommand.setOrderDate(orderDate),
		orderCommand.setStatus(status),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderCommandIsNotConstructed if validation fails.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientName returns the updated client name.
func (c UpdateOrderCommand) ClientName() string {
	return c.clientName
}

// DeliveryAddress returns the updated delivery address.
func (c UpdateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// OrderDate returns the updated scheduled delivery date.
func (c UpdateOrderCommand) OrderDate() time.Time {
	return c.orderDate
}

// Status returns the requested order status.
func (c UpdateOrderCommand) Status() order.Status {
	return c.status
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setClientName(clientName string) error {
	if clientName == "" {
		return ErrClientNameIsRequired
	}

	c.clientName = clientName
	return nil
}

func (c *UpdateOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *UpdateOrderCommand) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return ErrOrderDateIsRequired
	}

	c.orderDate = orderDate
	return nil
}

func (c *UpdateOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
