package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrDeleteAssignmentCommandIsNotConstructed = errors.New(
	"DeleteAssignmentCommand must be created via NewDeleteAssignmentCommand constructor",
)

// DeleteAssignmentCommand represents a request to remove an assignment record.
type DeleteAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteAssignmentCommand creates a command to delete an assignment by its identifier.
func NewDeleteAssignmentCommand(assignmentID kernel.UUID) (DeleteAssignmentCommand, error) {
	assignmentCommand := DeleteAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := assignmentCommand.setAssignmentID(assignmentID); err != nil {
		return DeleteAssignmentCommand{}, err
	}

	return assignmentCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteAssignmentCommandIsNotConstructed if validation fails.
func (c DeleteAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the unique identifier for the assignment.
func (c DeleteAssignmentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

func (c *DeleteAssignmentCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}
