package trackingrepo

import (
	"context"
	"errors"

	"gridstore/internal/core/domain/model/kernel"
	"gridstore/internal/core/domain/model/tracking"
	"gridstore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTrackingRepository implements TrackingRepository using GORM.
type GormTrackingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTrackingRepository creates a new GORM tracking repository.
func NewGormTrackingRepository(db *gorm.DB, tracker aggregateTracker) *GormTrackingRepository {
	return &GormTrackingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new tracker to the database.
func (r *GormTrackingRepository) Add(ctx context.Context, aggregate *tracking.Tracker) error {
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

// Update saves an existing tracker to the database.
func (r *GormTrackingRepository) Update(ctx context.Context, aggregate *tracking.Tracker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TrackerDTO{}).
		Where("id = ?", dto.ID).
		Select("ReceivedCount", "Status", "CompletedAt", "ShippedAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetActiveByKey retrieves the latest non-shipped tracker for an order key.
// A shipped tracker is invisible here: the same order arriving again starts
// over with a fresh tracker.
func (r *GormTrackingRepository) GetActiveByKey(ctx context.Context, orderKey string) (*tracking.Tracker, error) {
	if orderKey == "" {
		return nil, errs.NewValueIsRequiredError("orderKey")
	}

	var dto TrackerDTO
	err := r.db.WithContext(ctx).
		Where("order_key = ? AND status != ?", orderKey, tracking.StatusShipped.String()).
		Order("created_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order tracker", orderKey)
		}
		return nil, err
	}

	return toDomain(dto)
}
