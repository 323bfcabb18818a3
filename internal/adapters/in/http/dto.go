// Package http exposes the coordination API over echo. Handlers translate
// between wire DTOs and application commands/queries; business rules stay in
// the core layers.
package http

import (
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/deliveryperson"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime/types"
)

// Error is the uniform error body: {code, message}.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LoginRequest carries administrator credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}

// Order is the wire representation of an order.
type Order struct {
	ID              uuid.UUID  `json:"id"`
	ClientName      string     `json:"clientName"`
	DeliveryAddress string     `json:"deliveryAddress"`
	OrderDate       types.Date `json:"orderDate"`
	CreatedAt       time.Time  `json:"createdAt"`
	Status          string     `json:"status"`
}

// OrderRequest is the payload for creating or replacing an order. Status is
// ignored on create; on update it must either match the stored status or
// request cancellation.
type OrderRequest struct {
	ClientName      string     `json:"clientName"`
	DeliveryAddress string     `json:"deliveryAddress"`
	OrderDate       types.Date `json:"orderDate"`
	Status          string     `json:"status,omitempty"`
}

// DeliveryPerson is the wire representation of a courier.
type DeliveryPerson struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phoneNumber"`
	IsAvailable bool      `json:"isAvailable"`
}

// DeliveryPersonRequest is the payload for creating or updating a courier.
// Availability is derived from active assignments and not accepted as input.
type DeliveryPersonRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
}

// AssignmentSummary is the flat wire representation of an assignment, used by
// the mutation endpoints.
type AssignmentSummary struct {
	ID               uuid.UUID `json:"id"`
	OrderID          uuid.UUID `json:"orderId"`
	DeliveryPersonID uuid.UUID `json:"deliveryPersonId"`
	AssignedAt       time.Time `json:"assignedAt"`
	Status           string    `json:"status"`
}

// Assignment is the joined wire representation of an assignment, embedding
// order and courier summaries. Used by the read endpoints.
type Assignment struct {
	ID             uuid.UUID      `json:"id"`
	AssignedAt     time.Time      `json:"assignedAt"`
	Status         string         `json:"status"`
	Order          Order          `json:"order"`
	DeliveryPerson DeliveryPerson `json:"deliveryPerson"`
}

// AssignmentStatusRequest is the payload for PATCH /assignments/:id/status.
type AssignmentStatusRequest struct {
	Status string `json:"status"`
}

// CountResponse carries an entity count.
type CountResponse struct {
	Count int64 `json:"count"`
}

func orderFromAggregate(o *order.Order) Order {
	return Order{
		ID:              o.ID().Bytes(),
		ClientName:      o.ClientName(),
		DeliveryAddress: o.DeliveryAddress(),
		OrderDate:       types.Date{Time: o.OrderDate()},
		CreatedAt:       o.CreatedAt(),
		Status:          o.Status().String(),
	}
}

func orderFromResponse(resp queries.OrderResponse) Order {
	return Order{
		ID:              resp.ID.Bytes(),
		ClientName:      resp.ClientName,
		DeliveryAddress: resp.DeliveryAddress,
		OrderDate:       types.Date{Time: resp.OrderDate},
		CreatedAt:       resp.CreatedAt,
		Status:          resp.Status.String(),
	}
}

func personFromAggregate(p *deliveryperson.DeliveryPerson) DeliveryPerson {
	return DeliveryPerson{
		ID:          p.ID().Bytes(),
		Name:        p.Name(),
		PhoneNumber: p.PhoneNumber(),
		IsAvailable: p.IsAvailable(),
	}
}

func personFromResponse(resp queries.DeliveryPersonResponse) DeliveryPerson {
	return DeliveryPerson{
		ID:          resp.ID.Bytes(),
		Name:        resp.Name,
		PhoneNumber: resp.PhoneNumber,
		IsAvailable: resp.IsAvailable,
	}
}

func assignmentSummaryFromAggregate(a *assignment.Assignment) AssignmentSummary {
	return AssignmentSummary{
		ID:               a.ID().Bytes(),
		OrderID:          a.OrderID().Bytes(),
		DeliveryPersonID: a.DeliveryPersonID().Bytes(),
		AssignedAt:       a.AssignedAt(),
		Status:           a.Status().String(),
	}
}

func assignmentFromResponse(resp queries.AssignmentResponse) Assignment {
	return Assignment{
		ID:             resp.ID.Bytes(),
		AssignedAt:     resp.AssignedAt,
		Status:         resp.Status.String(),
		Order:          orderFromResponse(resp.Order),
		DeliveryPerson: personFromResponse(resp.DeliveryPerson),
	}
}
