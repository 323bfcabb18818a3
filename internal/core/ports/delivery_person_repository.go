package ports

import (
	"context"

	"dispatch/internal/core/domain/model/deliveryperson"
	"dispatch/internal/core/domain/model/kernel"
)

// DeliveryPersonRepository defines the persistence contract for delivery
// person aggregates.
type DeliveryPersonRepository interface {
	// Add persists a new delivery person aggregate to storage.
	Add(ctx context.Context, aggregate *deliveryperson.DeliveryPerson) error

	// Update persists changes to an existing delivery person aggregate.
	Update(ctx context.Context, aggregate *deliveryperson.DeliveryPerson) error

	// Get retrieves a delivery person aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when the id is absent.
	Get(ctx context.Context, id kernel.UUID) (*deliveryperson.DeliveryPerson, error)

	// GetForUpdate retrieves a delivery person and, when called inside a
	// transaction, takes a row lock so concurrent assignment mutations
	// against the same courier serialize.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*deliveryperson.DeliveryPerson, error)

	// Delete removes the delivery person row. Returns an ObjectNotFoundError
	// when the id is absent.
	Delete(ctx context.Context, id kernel.UUID) error
}
