package personrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/deliveryperson"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDeliveryPersonRepository implements DeliveryPersonRepository using GORM.
type GormDeliveryPersonRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryPersonRepository creates a new GORM courier repository.
func NewGormDeliveryPersonRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryPersonRepository {
	return &GormDeliveryPersonRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new courier to the database.
func (r *GormDeliveryPersonRepository) Add(ctx context.Context, aggregate *deliveryperson.DeliveryPerson) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing courier to the database. Columns are named
// explicitly so is_available=false is not skipped as a zero value.
func (r *GormDeliveryPersonRepository) Update(ctx context.Context, aggregate *deliveryperson.DeliveryPerson) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryPersonDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "phone_number", "is_available").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("deliveryPerson", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a courier by ID.
func (r *GormDeliveryPersonRepository) Get(ctx context.Context, id kernel.UUID) (*deliveryperson.DeliveryPerson, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a courier by ID, taking a row lock when called
// inside a transaction.
func (r *GormDeliveryPersonRepository) GetForUpdate(
	ctx context.Context, id kernel.UUID,
) (*deliveryperson.DeliveryPerson, error) {
	return r.get(ctx, id, true)
}

func (r *GormDeliveryPersonRepository) get(
	ctx context.Context, id kernel.UUID, forUpdate bool,
) (*deliveryperson.DeliveryPerson, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if forUpdate {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto DeliveryPersonDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryPerson", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a courier row by ID.
func (r *GormDeliveryPersonRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&DeliveryPersonDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("deliveryPerson", id.String())
	}

	return nil
}
