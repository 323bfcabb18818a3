package queries

import (
	"context"
	"errors"

	"dispatch/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrCountOrdersQueryIsNotConstructed = errors.New(
	"CountOrdersQuery must be created via NewCountOrdersQuery constructor",
)

// CountOrdersQuery retrieves the total number of orders. Drives the console's
// orders badge.
type CountOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewCountOrdersQuery creates a parameterless order counting query.
func NewCountOrdersQuery() CountOrdersQuery {
	return CountOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q CountOrdersQuery) Validate() error {
	return q.guard.Validate(ErrCountOrdersQueryIsNotConstructed)
}

// CountOrdersQueryHandler counts order rows.
type CountOrdersQueryHandler struct {
	db *gorm.DB
}

// NewCountOrdersQueryHandler creates a handler for order counting queries.
func NewCountOrdersQueryHandler(db *gorm.DB) CountOrdersQueryHandler {
	return CountOrdersQueryHandler{db: db}
}

// Handle executes the counting query.
func (h CountOrdersQueryHandler) Handle(ctx context.Context, query CountOrdersQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM orders`).Row().Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
