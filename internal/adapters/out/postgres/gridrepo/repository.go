package gridrepo

import (
	"context"
	"errors"

	"gridstore/internal/core/domain/model/grid"
	"gridstore/internal/core/domain/model/kernel"
	"gridstore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormGridRepository implements GridRepository using GORM.
type GormGridRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormGridRepository creates a new GORM grid repository.
func NewGormGridRepository(db *gorm.DB, tracker aggregateTracker) *GormGridRepository {
	return &GormGridRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new grid to the database.
func (r *GormGridRepository) Add(ctx context.Context, aggregate *grid.Grid) error {
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

// Update saves an existing grid to the database.
func (r *GormGridRepository) Update(ctx context.Context, aggregate *grid.Grid) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&GridDTO{}).
		Where("id = ?", dto.ID).
		Select("Name", "Width", "Height", "IsActive").
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

// Get retrieves a grid by ID.
func (r *GormGridRepository) Get(ctx context.Context, id kernel.UUID) (*grid.Grid, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto GridDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("grid", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every grid in creation order.
func (r *GormGridRepository) GetAll(ctx context.Context) ([]*grid.Grid, error) {
	var dtos []GridDTO
	if err := r.db.WithContext(ctx).Order("created_at").Find(&dtos).Error; err != nil {
		return nil, err
	}

	grids := make([]*grid.Grid, 0, len(dtos))
	for _, dto := range dtos {
		g, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		grids = append(grids, g)
	}

	return grids, nil
}

// ExistsActive reports whether at least one active grid exists.
func (r *GormGridRepository) ExistsActive(ctx context.Context) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&GridDTO{}).
		Where("is_active").
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
