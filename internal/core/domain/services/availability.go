package services

import (
	"dispatch/internal/core/domain/model/deliveryperson"
)

// AvailabilityPolicy recomputes a delivery person's availability as a pure
// function of how many active assignments reference them. It is applied
// inside the same unit of work as the assignment mutation that triggered
// it, so a courier is never observably available while holding active work.
type AvailabilityPolicy struct{}

// NewAvailabilityPolicy creates a new AvailabilityPolicy instance.
func NewAvailabilityPolicy() AvailabilityPolicy {
	return AvailabilityPolicy{}
}

// Apply sets p's availability from the current count of active assignments
// referencing p. Returns a validation error for an unconstructed aggregate.
func (AvailabilityPolicy) Apply(p *deliveryperson.DeliveryPerson, activeAssignments int64) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if activeAssignments > 0 {
		p.MarkBusy()
	} else {
		p.MarkAvailable()
	}
	return nil
}
