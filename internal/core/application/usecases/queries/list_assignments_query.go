package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrListAssignmentsQueryIsNotConstructed = errors.New(
	"ListAssignmentsQuery must be created via NewListAssignmentsQuery constructor",
)

// ListAssignmentsQuery retrieves assignments joined with their order and
// courier summaries. Filters may narrow by assignment status, by courier name
// and by a case-insensitive client name substring; all filters combine.
//
// Example:
//
//	query := NewListAssignmentsQuery().
//	    WithStatus(assignment.Pending).
//	    WithDeliveryPersonName("John Doe")
//	handler := NewListAssignmentsQueryHandler(db)
//	rows, err := handler.Handle(ctx, query)
type ListAssignmentsQuery struct {
	status             *assignment.Status
	deliveryPersonName string
	filterPersonName   bool
	clientNamePart     string
	filterClientName   bool

	guard guard.ConstructorGuard
}

// NewListAssignmentsQuery creates an unfiltered assignment listing query.
func NewListAssignmentsQuery() ListAssignmentsQuery {
	return ListAssignmentsQuery{guard: guard.NewConstructorGuard()}
}

// WithStatus narrows the listing to assignments in the given status.
func (q ListAssignmentsQuery) WithStatus(status assignment.Status) ListAssignmentsQuery {
	q.status = &status
	return q
}

// WithDeliveryPersonName narrows the listing to assignments held by couriers
// with the exact given name.
func (q ListAssignmentsQuery) WithDeliveryPersonName(name string) ListAssignmentsQuery {
	q.deliveryPersonName = name
	q.filterPersonName = true
	return q
}

// WithClientName narrows the listing to assignments whose order's client name
// contains the given substring, case-insensitively.
func (q ListAssignmentsQuery) WithClientName(substring string) ListAssignmentsQuery {
	q.clientNamePart = substring
	q.filterClientName = true
	return q
}

// Validate ensures the query was created through the constructor and any
// status filter names a known status.
func (q ListAssignmentsQuery) Validate() error {
	if err := q.guard.Validate(ErrListAssignmentsQueryIsNotConstructed); err != nil {
		return err
	}

	if q.status != nil {
		return q.status.Validate()
	}

	return nil
}

// Status returns the status filter, or nil when unfiltered.
func (q ListAssignmentsQuery) Status() *assignment.Status {
	return q.status
}

// DeliveryPersonName returns the courier name filter and whether it is set.
func (q ListAssignmentsQuery) DeliveryPersonName() (string, bool) {
	return q.deliveryPersonName, q.filterPersonName
}

// ClientNamePart returns the client name substring filter and whether it is set.
func (q ListAssignmentsQuery) ClientNamePart() (string, bool) {
	return q.clientNamePart, q.filterClientName
}

// AssignmentResponse represents one assignment row joined with summaries of
// the linked order and courier.
type AssignmentResponse struct {
	ID         kernel.UUID
	AssignedAt time.Time
	Status     assignment.Status

	Order          OrderResponse
	DeliveryPerson DeliveryPersonResponse
}
