package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetAssignmentQueryIsNotConstructed = errors.New(
	"GetAssignmentQuery must be created via NewGetAssignmentQuery constructor",
)

// GetAssignmentQuery retrieves a single assignment by its identifier,
// joined with its order and courier summaries.
type GetAssignmentQuery struct {
	assignmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAssignmentQuery creates a query for one assignment. Validates the identifier.
func NewGetAssignmentQuery(assignmentID kernel.UUID) (GetAssignmentQuery, error) {
	if err := assignmentID.Validate(); err != nil {
		return GetAssignmentQuery{}, err
	}

	return GetAssignmentQuery{
		assignmentID: assignmentID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAssignmentQueryIsNotConstructed if validation fails.
func (q GetAssignmentQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentQueryIsNotConstructed)
}

// AssignmentID returns the requested assignment identifier.
func (q GetAssignmentQuery) AssignmentID() kernel.UUID {
	return q.assignmentID
}
