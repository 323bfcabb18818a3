package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// syncCourierAvailability recomputes the courier's availability flag from the
// number of active assignments currently on record. Must run after the
// triggering assignment change has been persisted, inside the same
// transaction, so the count reflects the new state.
func syncCourierAvailability(
	ctx context.Context,
	assignmentRepo ports.AssignmentRepository,
	personRepo ports.DeliveryPersonRepository,
	deliveryPersonID kernel.UUID,
) error {
	person, err := personRepo.GetForUpdate(ctx, deliveryPersonID)
	if err != nil {
		return err
	}

	activeCount, err := assignmentRepo.CountActiveByDeliveryPersonID(ctx, deliveryPersonID)
	if err != nil {
		return err
	}

	if err = services.NewAvailabilityPolicy().Apply(person, activeCount); err != nil {
		return err
	}

	return personRepo.Update(ctx, person)
}
