package console

import (
	"time"

	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime/types"
)

// The console speaks the coordinator's wire format directly; these types
// mirror the JSON bodies the API serves and accepts.

// Order is an order as served by the coordinator API.
type Order struct {
	ID              uuid.UUID  `json:"id"`
	ClientName      string     `json:"clientName"`
	DeliveryAddress string     `json:"deliveryAddress"`
	OrderDate       types.Date `json:"orderDate"`
	CreatedAt       time.Time  `json:"createdAt"`
	Status          string     `json:"status"`
}

// OrderRequest is the payload for creating or replacing an order.
type OrderRequest struct {
	ClientName      string     `json:"clientName"`
	DeliveryAddress string     `json:"deliveryAddress"`
	OrderDate       types.Date `json:"orderDate"`
	Status          string     `json:"status,omitempty"`
}

// DeliveryPerson is a courier as served by the coordinator API.
type DeliveryPerson struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phoneNumber"`
	IsAvailable bool      `json:"isAvailable"`
}

// DeliveryPersonRequest is the payload for registering or updating a courier.
type DeliveryPersonRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
}

// Assignment is the joined read model row: the assignment plus the order and
// courier it links.
type Assignment struct {
	ID             uuid.UUID      `json:"id"`
	AssignedAt     time.Time      `json:"assignedAt"`
	Status         string         `json:"status"`
	Order          Order          `json:"order"`
	DeliveryPerson DeliveryPerson `json:"deliveryPerson"`
}

// CountResponse carries an entity count.
type CountResponse struct {
	Count int64 `json:"count"`
}
