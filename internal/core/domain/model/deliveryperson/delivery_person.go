// Package deliveryperson contains the DeliveryPerson aggregate, a courier
// resource with a binary availability flag kept consistent with the
// person's active assignments.
package deliveryperson

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for delivery person operations.
var (
	// ErrDeliveryPersonIsNotConstructed is returned when a DeliveryPerson was
	// not created through NewDeliveryPerson or RestoreDeliveryPerson.
	ErrDeliveryPersonIsNotConstructed = errors.New(
		"DeliveryPerson must be created via NewDeliveryPerson or RestoreDeliveryPerson constructor",
	)
	// ErrNameIsRequired is returned when the name is empty.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneNumberIsRequired is returned when the phone number is empty.
	ErrPhoneNumberIsRequired = errs.NewValueIsRequiredError("phoneNumber")
)

// DeliveryPerson is the aggregate root for a courier.
//
// The availability flag is not edited by operators directly: it is false
// exactly while the person holds at least one active assignment, and the
// availability policy recomputes it with every assignment mutation.
type DeliveryPerson struct {
	id          kernel.UUID
	name        string
	phoneNumber string
	isAvailable bool

	guard guard.ConstructorGuard
}

// NewDeliveryPerson creates a courier that is immediately available for work.
func NewDeliveryPerson(id kernel.UUID, name, phoneNumber string) (*DeliveryPerson, error) {
	p := &DeliveryPerson{
		isAvailable: true,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPhoneNumber(phoneNumber),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreDeliveryPerson reconstructs a courier from persistent storage with
// its persisted availability.
func RestoreDeliveryPerson(id kernel.UUID, name, phoneNumber string, isAvailable bool) (*DeliveryPerson, error) {
	p := &DeliveryPerson{
		isAvailable: isAvailable,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPhoneNumber(phoneNumber),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the DeliveryPerson was created through a constructor.
func (p *DeliveryPerson) Validate() error {
	if p == nil {
		return ErrDeliveryPersonIsNotConstructed
	}
	return p.guard.Validate(ErrDeliveryPersonIsNotConstructed)
}

// IsEqual compares two couriers by identifier.
func (p *DeliveryPerson) IsEqual(other *DeliveryPerson) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (p *DeliveryPerson) ID() kernel.UUID {
	return p.id
}

// Name returns the courier's name.
func (p *DeliveryPerson) Name() string {
	return p.name
}

// PhoneNumber returns the courier's phone number.
func (p *DeliveryPerson) PhoneNumber() string {
	return p.phoneNumber
}

// IsAvailable reports whether the courier can accept a new assignment.
func (p *DeliveryPerson) IsAvailable() bool {
	return p.isAvailable
}

// UpdateDetails replaces the operator-editable fields.
func (p *DeliveryPerson) UpdateDetails(name, phoneNumber string) error {
	return errors.Join(
		p.setName(name),
		p.setPhoneNumber(phoneNumber),
	)
}

// MarkBusy flags the courier as holding active work.
func (p *DeliveryPerson) MarkBusy() {
	p.isAvailable = false
}

// MarkAvailable flags the courier as free for new assignments.
func (p *DeliveryPerson) MarkAvailable() {
	p.isAvailable = true
}

func (p *DeliveryPerson) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *DeliveryPerson) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *DeliveryPerson) setPhoneNumber(phoneNumber string) error {
	if phoneNumber == "" {
		return ErrPhoneNumberIsRequired
	}
	p.phoneNumber = phoneNumber
	return nil
}
