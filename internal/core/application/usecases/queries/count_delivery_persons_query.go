package queries

import (
	"context"
	"errors"

	"dispatch/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrCountDeliveryPersonsQueryIsNotConstructed = errors.New(
	"CountDeliveryPersonsQuery must be created via NewCountDeliveryPersonsQuery constructor",
)

// CountDeliveryPersonsQuery retrieves the total number of registered couriers.
type CountDeliveryPersonsQuery struct {
	guard guard.ConstructorGuard
}

// NewCountDeliveryPersonsQuery creates a parameterless courier counting query.
func NewCountDeliveryPersonsQuery() CountDeliveryPersonsQuery {
	return CountDeliveryPersonsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q CountDeliveryPersonsQuery) Validate() error {
	return q.guard.Validate(ErrCountDeliveryPersonsQueryIsNotConstructed)
}

// CountDeliveryPersonsQueryHandler counts courier rows.
type CountDeliveryPersonsQueryHandler struct {
	db *gorm.DB
}

// NewCountDeliveryPersonsQueryHandler creates a handler for courier counting queries.
func NewCountDeliveryPersonsQueryHandler(db *gorm.DB) CountDeliveryPersonsQueryHandler {
	return CountDeliveryPersonsQueryHandler{db: db}
}

// Handle executes the counting query.
func (h CountDeliveryPersonsQueryHandler) Handle(ctx context.Context, query CountDeliveryPersonsQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM delivery_persons`).Row().Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
