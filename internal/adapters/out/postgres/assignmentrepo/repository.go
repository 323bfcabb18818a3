package assignmentrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// uniqueViolation is the Postgres error code raised when the active-assignment
// unique index rejects a row.
const uniqueViolation = "23505"

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// activeScope narrows an assignments query to active rows, those whose status
// is neither Delivered nor Cancelled.
func activeScope(db *gorm.DB) *gorm.DB {
	return db.Where("status NOT IN ?", []string{
		assignment.Delivered.String(),
		assignment.Cancelled.String(),
	})
}

// Add saves a new assignment to the database. When the active-assignment
// unique index rejects the row, a concurrent create won the race for the same
// order and the error surfaces as a ConflictError.
func (r *GormAssignmentRepository) Add(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return errs.NewConflictErrorWithCause("order already has an active assignment", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing assignment's status to the database. The other
// columns are immutable once the assignment exists.
func (r *GormAssignmentRepository) Update(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
		Where("id = ?", dto.ID).
		Select("status").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("assignment", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an assignment by ID.
func (r *GormAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves an assignment by ID, taking a row lock when called
// inside a transaction. Concurrent status transitions on the same assignment
// serialize behind this lock and re-read committed state.
func (r *GormAssignmentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	return r.get(ctx, id, true)
}

func (r *GormAssignmentRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*assignment.Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if forUpdate {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto AssignmentDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an assignment row by ID.
func (r *GormAssignmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&AssignmentDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("assignment", id.String())
	}

	return nil
}

// GetActiveByOrderID retrieves the order's single active assignment.
func (r *GormAssignmentRepository) GetActiveByOrderID(
	ctx context.Context, orderID kernel.UUID,
) (*assignment.Assignment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	err := activeScope(r.db.WithContext(ctx)).First(&dto, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsActiveByOrderID reports whether the order currently has an active assignment.
func (r *GormAssignmentRepository) ExistsActiveByOrderID(ctx context.Context, orderID kernel.UUID) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := activeScope(r.db.WithContext(ctx).Model(&AssignmentDTO{})).
		Where("order_id = ?", orderID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// CountActiveByDeliveryPersonID counts the courier's active assignments.
func (r *GormAssignmentRepository) CountActiveByDeliveryPersonID(
	ctx context.Context, deliveryPersonID kernel.UUID,
) (int64, error) {
	if err := deliveryPersonID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := activeScope(r.db.WithContext(ctx).Model(&AssignmentDTO{})).
		Where("delivery_person_id = ?", deliveryPersonID.Bytes()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
