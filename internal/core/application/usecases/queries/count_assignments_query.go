package queries

import (
	"context"
	"errors"

	"dispatch/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrCountAssignmentsQueryIsNotConstructed = errors.New(
	"CountAssignmentsQuery must be created via NewCountAssignmentsQuery constructor",
)

// CountAssignmentsQuery retrieves the total number of assignments.
type CountAssignmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewCountAssignmentsQuery creates a parameterless assignment counting query.
func NewCountAssignmentsQuery() CountAssignmentsQuery {
	return CountAssignmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q CountAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrCountAssignmentsQueryIsNotConstructed)
}

// CountAssignmentsQueryHandler counts assignment rows.
type CountAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewCountAssignmentsQueryHandler creates a handler for assignment counting queries.
func NewCountAssignmentsQueryHandler(db *gorm.DB) CountAssignmentsQueryHandler {
	return CountAssignmentsQueryHandler{db: db}
}

// Handle executes the counting query.
func (h CountAssignmentsQueryHandler) Handle(ctx context.Context, query CountAssignmentsQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM assignments`).Row().Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
