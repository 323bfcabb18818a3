package order

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
	// ErrClientNameIsRequired is returned when the client name is empty.
	ErrClientNameIsRequired = errs.NewValueIsRequiredError("clientName")
	// ErrDeliveryAddressIsRequired is returned when the delivery address is empty.
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("deliveryAddress")
	// ErrOrderDateIsRequired is returned when the order date is the zero time.
	ErrOrderDateIsRequired = errs.NewValueIsRequiredError("orderDate")
)

// Order is the aggregate root for a client delivery request.
//
// Invariants:
//   - id and createdAt are immutable after construction
//   - clientName and deliveryAddress are never empty
//   - status changes only through the Status state machine
//   - the UnAssigned→Assigned edge is reachable only through assignment
//     creation, never via a direct operator request
//
// Fields are private; the aggregate is mutated through validated methods
// and can only be created via its constructors.
type Order struct {
	id              kernel.UUID
	clientName      string
	deliveryAddress string
	orderDate       time.Time
	createdAt       time.Time
	status          Status

	guard guard.ConstructorGuard
}

// NewOrder creates a fresh Order in UnAssigned status with createdAt set to
// the current time. The order date is truncated to its calendar day.
// Returns aggregated validation errors for invalid input.
func NewOrder(id kernel.UUID, clientName, deliveryAddress string, orderDate time.Time) (*Order, error) {
	o := &Order{
		status:    UnAssigned,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientName(clientName),
		o.setDeliveryAddress(deliveryAddress),
		o.setOrderDate(orderDate),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage, including its
// persisted status and creation timestamp. Unlike NewOrder it does not apply
// initial-state defaults, but it revalidates every field.
func RestoreOrder(
	id kernel.UUID,
	clientName, deliveryAddress string,
	orderDate, createdAt time.Time,
	status Status,
) (*Order, error) {
	o := &Order{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientName(clientName),
		o.setDeliveryAddress(deliveryAddress),
		o.setOrderDate(orderDate),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientName returns the name of the client the delivery is for.
func (o *Order) ClientName() string {
	return o.clientName
}

// DeliveryAddress returns the destination address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// OrderDate returns the calendar date of the order.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// CreatedAt returns the immutable creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// UpdateDetails replaces the operator-editable fields. Status and
// timestamps are untouched.
func (o *Order) UpdateDetails(clientName, deliveryAddress string, orderDate time.Time) error {
	return errors.Join(
		o.setClientName(clientName),
		o.setDeliveryAddress(deliveryAddress),
		o.setOrderDate(orderDate),
	)
}

// Assign moves the order to Assigned. Called only when an assignment is
// created for it.
func (o *Order) Assign() error {
	return o.applyTransition(Assigned)
}

// Release returns the order to UnAssigned after its active assignment was
// cancelled or deleted.
func (o *Order) Release() error {
	return o.applyTransition(UnAssigned)
}

// MarkOutForDelivery mirrors the assignment going out for delivery.
func (o *Order) MarkOutForDelivery() error {
	return o.applyTransition(OutForDelivery)
}

// Deliver marks the order as delivered. Terminal.
func (o *Order) Deliver() error {
	return o.applyTransition(Delivered)
}

// Cancel marks the order as cancelled. Terminal. Permitted from any
// non-terminal status.
func (o *Order) Cancel() error {
	return o.applyTransition(Cancelled)
}

func (o *Order) applyTransition(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientName(clientName string) error {
	if clientName == "" {
		return ErrClientNameIsRequired
	}
	o.clientName = clientName
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

func (o *Order) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return ErrOrderDateIsRequired
	}
	o.orderDate = orderDate.UTC().Truncate(24 * time.Hour)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
