package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListDeliveryPersonsQueryHandler reads courier rows from the database.
type ListDeliveryPersonsQueryHandler struct {
	db *gorm.DB
}

// NewListDeliveryPersonsQueryHandler creates a handler for courier listing queries.
func NewListDeliveryPersonsQueryHandler(db *gorm.DB) ListDeliveryPersonsQueryHandler {
	return ListDeliveryPersonsQueryHandler{db: db}
}

// Handle executes the listing query, sorted by courier name.
func (h ListDeliveryPersonsQueryHandler) Handle(
	ctx context.Context, query ListDeliveryPersonsQuery,
) ([]DeliveryPersonResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			phone_number,
			is_available
		FROM delivery_persons
	`
	if query.IsAvailableOnly() {
		sql += " WHERE is_available"
	}
	sql += " ORDER BY name, id"

	rows, err := h.db.WithContext(ctx).Raw(sql).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	persons := make([]DeliveryPersonResponse, 0)
	for rows.Next() {
		var (
			id          uuid.UUID
			name        string
			phoneNumber string
			isAvailable bool
		)

		if err = rows.Scan(&id, &name, &phoneNumber, &isAvailable); err != nil {
			return nil, err
		}

		personID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		persons = append(persons, DeliveryPersonResponse{
			ID:          personID,
			Name:        name,
			PhoneNumber: phoneNumber,
			IsAvailable: isAvailable,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return persons, nil
}
