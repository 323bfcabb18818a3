// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, invariant checks, and persistence. A command's
// invariant checks and writes execute inside one unit of work, so an
// invariant failure aborts the whole operation.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DeliveryPersonRepoFactory provides access to the delivery person repository within a transaction.
	DeliveryPersonRepoFactory interface {
		DeliveryPersonRepository() ports.DeliveryPersonRepository
	}

	// AssignmentRepoFactory provides access to the assignment repository within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DeliveryPersonUoW manages transactions for courier-only operations.
	DeliveryPersonUoW interface {
		TxManager
		DeliveryPersonRepoFactory
	}

	// DeliveryPersonUoWFactory creates new courier unit of work instances.
	DeliveryPersonUoWFactory interface {
		Create() DeliveryPersonUoW
	}

	// UoW manages transactions that span all three aggregates. Used by every
	// command that touches an assignment, since assignment mutations carry
	// side effects on the linked order and courier.
	UoW interface {
		TxManager
		OrderRepoFactory
		DeliveryPersonRepoFactory
		AssignmentRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
