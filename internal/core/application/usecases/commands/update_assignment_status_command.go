package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateAssignmentStatusCommandIsNotConstructed = errors.New(
	"UpdateAssignmentStatusCommand must be created via NewUpdateAssignmentStatusCommand constructor",
)

// UpdateAssignmentStatusCommand represents a request to move an assignment
// through its delivery workflow.
type UpdateAssignmentStatusCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	newStatus    assignment.Status

	guard guard.ConstructorGuard
}

// NewUpdateAssignmentStatusCommand creates a command to change an assignment's status.
// Validates the identifier and that the target status is a known one.
func NewUpdateAssignmentStatusCommand(
	assignmentID kernel.UUID, newStatus assignment.Status,
) (UpdateAssignmentStatusCommand, error) {
	statusCommand := UpdateAssignmentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setAssignmentID(assignmentID),
		statusCommand.setNewStatus(newStatus),
	); err != nil {
		return UpdateAssignmentStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateAssignmentStatusCommandIsNotConstructed if validation fails.
func (c UpdateAssignmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAssignmentStatusCommandIsNotConstructed)
}

// AssignmentID returns the unique identifier for the assignment.
func (c UpdateAssignmentStatusCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// NewStatus returns the requested target status.
func (c UpdateAssignmentStatusCommand) NewStatus() assignment.Status {
	return c.newStatus
}

func (c *UpdateAssignmentStatusCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *UpdateAssignmentStatusCommand) setNewStatus(newStatus assignment.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
