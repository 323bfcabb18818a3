// Package orderrepo implements the order repository over GORM, handling the
// conversion between the order aggregate and its database representation.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Statuses are stored by name so the rows stay readable and the read-model
// queries can filter on them directly.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientName      string    `gorm:"type:varchar(255);not null;index"`
	DeliveryAddress string    `gorm:"type:varchar(512);not null"`
	OrderDate       time.Time `gorm:"type:date;not null"`
	CreatedAt       time.Time `gorm:"not null"`
	Status          string    `gorm:"type:varchar(32);not null;index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		ClientName:      aggregate.ClientName(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		OrderDate:       aggregate.OrderDate(),
		CreatedAt:       aggregate.CreatedAt(),
		Status:          aggregate.Status().String(),
	}
}

// toDomain converts a database DTO back to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.ClientName, dto.DeliveryAddress, dto.OrderDate, dto.CreatedAt, status)
}
