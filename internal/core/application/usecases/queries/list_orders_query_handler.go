package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads order rows from the database, applying the
// query's optional status and client name filters in SQL.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing query. Results are sorted by creation time,
// newest first, for stable output.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			client_name,
			delivery_address,
			order_date,
			created_at,
			status
		FROM orders
		WHERE 1=1
	`
	args := make([]any, 0, 2)

	if status := query.Status(); status != nil {
		sql += " AND status = ?"
		args = append(args, status.String())
	}

	if part, ok := query.ClientNamePart(); ok {
		sql += " AND client_name ILIKE ?"
		args = append(args, "%"+part+"%")
	}

	sql += " ORDER BY created_at DESC, id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderRow(row rowScanner) (OrderResponse, error) {
	var (
		id         uuid.UUID
		clientName string
		address    string
		orderDate  time.Time
		createdAt  time.Time
		statusName string
	)

	if err := row.Scan(&id, &clientName, &address, &orderDate, &createdAt, &statusName); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	status, err := order.StatusFromString(statusName)
	if err != nil {
		return OrderResponse{}, err
	}

	return OrderResponse{
		ID:              orderID,
		ClientName:      clientName,
		DeliveryAddress: address,
		OrderDate:       orderDate,
		CreatedAt:       createdAt,
		Status:          status,
	}, nil
}
