package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListAssignmentsQueryHandler reads assignment rows joined with their order
// and courier, applying the query's filters in SQL.
type ListAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewListAssignmentsQueryHandler creates a handler for assignment listing queries.
func NewListAssignmentsQueryHandler(db *gorm.DB) ListAssignmentsQueryHandler {
	return ListAssignmentsQueryHandler{db: db}
}

// Handle executes the listing query. Results are sorted by assignment time,
// newest first.
func (h ListAssignmentsQueryHandler) Handle(
	ctx context.Context, query ListAssignmentsQuery,
) ([]AssignmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
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
		WHERE 1=1
	`
	args := make([]any, 0, 3)

	if status := query.Status(); status != nil {
		sql += " AND a.status = ?"
		args = append(args, status.String())
	}

	if name, ok := query.DeliveryPersonName(); ok {
		sql += " AND p.name = ?"
		args = append(args, name)
	}

	if part, ok := query.ClientNamePart(); ok {
		sql += " AND o.client_name ILIKE ?"
		args = append(args, "%"+part+"%")
	}

	sql += " ORDER BY a.assigned_at DESC, a.id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make([]AssignmentResponse, 0)
	for rows.Next() {
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

		err = rows.Scan(
			&assignmentID, &assignedAt, &statusName,
			&orderID, &clientName, &address, &orderDate, &orderCreated, &orderStatus,
			&personID, &personName, &phoneNumber, &isAvailable,
		)
		if err != nil {
			return nil, err
		}

		resp, buildErr := buildAssignmentResponse(
			assignmentID, assignedAt, statusName,
			orderID, clientName, address, orderDate, orderCreated, orderStatus,
			personID, personName, phoneNumber, isAvailable,
		)
		if buildErr != nil {
			return nil, buildErr
		}

		assignments = append(assignments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

func buildAssignmentResponse(
	assignmentID uuid.UUID, assignedAt time.Time, statusName string,
	orderID uuid.UUID, clientName, address string, orderDate, orderCreated time.Time, orderStatus string,
	personID uuid.UUID, personName, phoneNumber string, isAvailable bool,
) (AssignmentResponse, error) {
	id, err := kernel.UUIDFromBytes(assignmentID[:])
	if err != nil {
		return AssignmentResponse{}, err
	}

	status, err := assignment.StatusFromString(statusName)
	if err != nil {
		return AssignmentResponse{}, err
	}

	oID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return AssignmentResponse{}, err
	}

	oStatus, err := order.StatusFromString(orderStatus)
	if err != nil {
		return AssignmentResponse{}, err
	}

	pID, err := kernel.UUIDFromBytes(personID[:])
	if err != nil {
		return AssignmentResponse{}, err
	}

	return AssignmentResponse{
		ID:         id,
		AssignedAt: assignedAt,
		Status:     status,
		Order: OrderResponse{
			ID:              oID,
			ClientName:      clientName,
			DeliveryAddress: address,
			OrderDate:       orderDate,
			CreatedAt:       orderCreated,
			Status:          oStatus,
		},
		DeliveryPerson: DeliveryPersonResponse{
			ID:          pID,
			Name:        personName,
			PhoneNumber: phoneNumber,
			IsAvailable: isAvailable,
		},
	}, nil
}
