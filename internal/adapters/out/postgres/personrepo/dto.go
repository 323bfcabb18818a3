// Package personrepo implements the delivery person repository over GORM.
package personrepo

import (
	"dispatch/internal/core/domain/model/deliveryperson"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryPersonDTO represents the database structure for persisting couriers.
type DeliveryPersonDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null;index"`
	PhoneNumber string    `gorm:"type:varchar(32);not null"`
	IsAvailable bool      `gorm:"not null;index"`
}

// TableName specifies the database table name for courier entities.
func (DeliveryPersonDTO) TableName() string {
	return "delivery_persons"
}

// fromDomain converts a courier aggregate to its database representation.
func fromDomain(aggregate *deliveryperson.DeliveryPerson) DeliveryPersonDTO {
	return DeliveryPersonDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		PhoneNumber: aggregate.PhoneNumber(),
		IsAvailable: aggregate.IsAvailable(),
	}
}

// toDomain converts a database DTO back to a courier aggregate.
func toDomain(dto DeliveryPersonDTO) (*deliveryperson.DeliveryPerson, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return deliveryperson.RestoreDeliveryPerson(id, dto.Name, dto.PhoneNumber, dto.IsAvailable)
}
