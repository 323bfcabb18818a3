// Package queries contains read-only operations over the persistence layer.
// Query handlers bypass the aggregates and read projections straight from the
// database, following the CQRS split: commands go through the domain model,
// queries go through SQL.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves orders, optionally narrowed to a single status or
// to client names containing a case-insensitive substring. With no filters it
// returns the full order list.
//
// Example:
//
//	query := NewListOrdersQuery().WithStatus(order.UnAssigned)
//	handler := NewListOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	status           *order.Status
	clientNamePart   string
	filterClientName bool

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates an unfiltered order listing query.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// WithStatus narrows the listing to orders in the given status.
func (q ListOrdersQuery) WithStatus(status order.Status) ListOrdersQuery {
	q.status = &status
	return q
}

// WithClientName narrows the listing to orders whose client name contains the
// given substring, case-insensitively.
func (q ListOrdersQuery) WithClientName(substring string) ListOrdersQuery {
	q.clientNamePart = substring
	q.filterClientName = true
	return q
}

// Validate ensures the query was created through the constructor and any
// status filter names a known status.
func (q ListOrdersQuery) Validate() error {
	if err := q.guard.Validate(ErrListOrdersQueryIsNotConstructed); err != nil {
		return err
	}

	if q.status != nil {
		return q.status.Validate()
	}

	return nil
}

// Status returns the status filter, or nil when the listing is unfiltered.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// ClientNamePart returns the client name substring filter and whether it is set.
func (q ListOrdersQuery) ClientNamePart() (string, bool) {
	return q.clientNamePart, q.filterClientName
}

// OrderResponse represents one order row in read-model form.
type OrderResponse struct {
	ID              kernel.UUID
	ClientName      string
	DeliveryAddress string
	OrderDate       time.Time
	CreatedAt       time.Time
	Status          order.Status
}
