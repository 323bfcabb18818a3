package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAssignmentQueryHandler reads a single assignment row joined with its
// order and courier.
type GetAssignmentQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignmentQueryHandler creates a handler for single-assignment queries.
func NewGetAssignmentQueryHandler(db *gorm.DB) GetAssignmentQueryHandler {
	return GetAssignmentQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no
// assignment with the given identifier exists.
func (h GetAssignmentQueryHandler) Handle(
	ctx context.Context, query GetAssignmentQuery,
) (AssignmentResponse, error) {
	if err := query.Validate(); err != nil {
		return AssignmentResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.assigned_at,
			a.status,
			o.id,
			o.client_name,
			o.delivery_address,
			o.order_date,
			o.created_at,
			o.status,
			p.id,
			p.name,
			p.phone_number,
			p.is_available
		FROM assignments a
		JOIN orders o ON o.id = a.order_id
		JOIN delivery_persons p ON p.id = a.delivery_person_id
		WHERE a.id = ?
	`, query.AssignmentID().String()).Row()

	var (
		assignmentID uuid.UUID
		assignedAt   time.Time
		statusName   string
		orderID      uuid.UUID
		clientName   string
		address      string
		orderDate    time.Time
		orderCreated time.Time
		orderStatus  string
		personID     uuid.UUID
		personName   string
		phoneNumber  string
		isAvailable  bool
	)

	err := row.Scan(
		&assignmentID, &assignedAt, &statusName,
		&orderID, &clientName, &address, &orderDate, &orderCreated, &orderStatus,
		&personID, &personName, &phoneNumber, &isAvailable,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return AssignmentResponse{}, errs.NewObjectNotFoundError("assignmentID", query.AssignmentID())
	}
	if err != nil {
		return AssignmentResponse{}, err
	}

	return buildAssignmentResponse(
		assignmentID, assignedAt, statusName,
		orderID, clientName, address, orderDate, orderCreated, orderStatus,
		personID, personName, phoneNumber, isAvailable,
	)
}
