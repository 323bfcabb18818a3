package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrClientNameIsRequired      = errors.New("client name is required")
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
	ErrOrderDateIsRequired       = errors.New("order date is required")
)

// CreateOrderCommand represents a request to register a new delivery order.
// Encapsulates the client details and the date the delivery is scheduled for.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "Acme Corp", "123 Main Street", orderDate)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created and awaiting assignment", created.ID())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	clientName      string
	deliveryAddress string
	orderDate       time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Validates that the order ID is valid and that client name, delivery address
// and order date are all present. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID, clientName, deliveryAddress string, orderDate time.Time,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setClientName(clientName),
		orderCommand.setDeliveryAddress(deliveryAddress),
		orderCommand.setOrderDate(orderDate),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientName returns the name of the ordering client.
func (c CreateOrderCommand) ClientName() string {
	return c.clientName
}

// DeliveryAddress returns the delivery destination address.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// OrderDate returns the date the delivery is scheduled for.
func (c CreateOrderCommand) OrderDate() time.Time {
	return c.orderDate
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientName(clientName string) error {
	if clientName == "" {
		return ErrClientNameIsRequired
	}

	c.clientName = clientName
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *CreateOrderCommand) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return ErrOrderDateIsRequired
	}

	c.orderDate = orderDate
	return nil
}
