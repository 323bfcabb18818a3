package commands

import (
	"context"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// CreateAssignmentCommandHandler orchestrates assigning a courier to an order.
// Both aggregates are locked for the duration of the transaction, so two
// concurrent requests against the same order or the same courier serialize and
// the loser observes the winner's state. A partial unique index on active
// assignments backstops the one-active-assignment-per-order invariant.
type CreateAssignmentCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateAssignmentCommandHandler creates a handler for assignment creation.
// Requires a UoWFactory for coordinating transactional updates across all
// three aggregates.
func NewCreateAssignmentCommandHandler(uowFactory UoWFactory) CreateAssignmentCommandHandler {
	return CreateAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment creation command. Loads and locks the order
// and the courier, checks the order is unassigned and the courier available,
// then persists the new assignment together with the order status change and
// the courier's busy flag. Returns a ConflictError when either party cannot
// take the assignment.
func (h CreateAssignmentCommandHandler) Handle(
	ctx context.Context, cmd CreateAssignmentCommand,
) (*assignment.Assignment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	personRepo := uow.DeliveryPersonRepository()
	assignmentRepo := uow.AssignmentRepository()

	lockedOrder, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	lockedPerson, err := personRepo.GetForUpdate(ctx, cmd.DeliveryPersonID())
	if err != nil {
		return nil, err
	}

	hasActive, err := assignmentRepo.ExistsActiveByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if hasActive {
		return nil, errs.NewConflictError("order already has an active assignment")
	}

	newAssignment, err := services.NewAssignmentPlanner().Plan(lockedOrder, lockedPerson)
	if err != nil {
		return nil, err
	}

	if err = assignmentRepo.Add(ctx, newAssignment); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, lockedOrder); err != nil {
		return nil, err
	}

	if err = personRepo.Update(ctx, lockedPerson); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newAssignment, nil
}
