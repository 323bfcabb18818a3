package ports

import (
	"context"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for assignment
// aggregates. "Active" means the assignment status is neither Delivered nor
// Cancelled.
type AssignmentRepository interface {
	// Add persists a new assignment aggregate to storage. Returns a
	// ConflictError when the active-assignment unique index rejects the row
	// (a concurrent create won the race for the same order).
	Add(ctx context.Context, aggregate *assignment.Assignment) error

	// Update persists changes to an existing assignment aggregate.
	Update(ctx context.Context, aggregate *assignment.Assignment) error

	// Get retrieves an assignment aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when the id is absent.
	Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error)

	// GetForUpdate retrieves an assignment aggregate by its unique
	// identifier, taking a row lock when called inside a transaction.
	// Status transitions validate against this locked read so a concurrent
	// writer cannot slip a terminal status under the check.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error)

	// Delete removes the assignment row. Returns an ObjectNotFoundError when
	// the id is absent. Cancel-equivalent side effects on the linked order
	// and courier belong to the calling command handler.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetActiveByOrderID retrieves the order's single active assignment.
	// Returns an ObjectNotFoundError when the order has none.
	GetActiveByOrderID(ctx context.Context, orderID kernel.UUID) (*assignment.Assignment, error)

	// ExistsActiveByOrderID reports whether the order currently has an
	// active assignment. Used by the deletion and double-booking guards.
	ExistsActiveByOrderID(ctx context.Context, orderID kernel.UUID) (bool, error)

	// CountActiveByDeliveryPersonID counts the courier's active assignments.
	// The availability policy derives the courier's flag from this count.
	CountActiveByDeliveryPersonID(ctx context.Context, deliveryPersonID kernel.UUID) (int64, error)
}
