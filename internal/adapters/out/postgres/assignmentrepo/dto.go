// Package assignmentrepo implements the assignment repository over GORM.
package assignmentrepo

import (
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting assignments.
// A partial unique index on order_id over active rows (created during
// migration) enforces the one-active-assignment-per-order invariant at the
// storage level.
type AssignmentDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;not null;index"`
	DeliveryPersonID uuid.UUID `gorm:"type:uuid;not null;index"`
	AssignedAt       time.Time `gorm:"not null"`
	Status           string    `gorm:"type:varchar(32);not null;index"`
}

// TableName specifies the database table name for assignment entities.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// fromDomain converts an assignment aggregate to its database representation.
func fromDomain(aggregate *assignment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:               aggregate.ID().Bytes(),
		OrderID:          aggregate.OrderID().Bytes(),
		DeliveryPersonID: aggregate.DeliveryPersonID().Bytes(),
		AssignedAt:       aggregate.AssignedAt(),
		Status:           aggregate.Status().String(),
	}
}

// toDomain converts a database DTO back to an assignment aggregate.
func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	deliveryPersonID, err := kernel.UUIDFromBytes(dto.DeliveryPersonID[:])
	if err != nil {
		return nil, err
	}

	status, err := assignment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return assignment.RestoreAssignment(id, orderID, deliveryPersonID, dto.AssignedAt, status)
}
