package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrListDeliveryPersonsQueryIsNotConstructed = errors.New(
	"ListDeliveryPersonsQuery must be created via NewListDeliveryPersonsQuery constructor",
)

// ListDeliveryPersonsQuery retrieves couriers, optionally narrowed to those
// currently available for assignments.
type ListDeliveryPersonsQuery struct {
	availableOnly bool

	guard guard.ConstructorGuard
}

// NewListDeliveryPersonsQuery creates an unfiltered courier listing query.
func NewListDeliveryPersonsQuery() ListDeliveryPersonsQuery {
	return ListDeliveryPersonsQuery{guard: guard.NewConstructorGuard()}
}

// AvailableOnly narrows the listing to available couriers.
func (q ListDeliveryPersonsQuery) AvailableOnly() ListDeliveryPersonsQuery {
	q.availableOnly = true
	return q
}

// Validate ensures the query was created through the constructor.
func (q ListDeliveryPersonsQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveryPersonsQueryIsNotConstructed)
}

// IsAvailableOnly reports whether the availability filter is set.
func (q ListDeliveryPersonsQuery) IsAvailableOnly() bool {
	return q.availableOnly
}

// DeliveryPersonResponse represents one courier row in read-model form.
type DeliveryPersonResponse struct {
	ID          kernel.UUID
	Name        string
	PhoneNumber string
	IsAvailable bool
}
