package cellrepo

import (
	"context"
	"errors"

	"gridstore/internal/core/domain/model/cell"
	"gridstore/internal/core/domain/model/kernel"
	"gridstore/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCellRepository implements CellRepository using GORM.
type GormCellRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCellRepository creates a new GORM cell repository.
func NewGormCellRepository(db *gorm.DB, tracker aggregateTracker) *GormCellRepository {
	return &GormCellRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddBatch saves a batch of new cells to the database in one insert.
func (r *GormCellRepository) AddBatch(ctx context.Context, aggregates []*cell.Cell) error {
	if len(aggregates) == 0 {
		return nil
	}

	dtos := make([]CellDTO, 0, len(aggregates))
	for _, aggregate := range aggregates {
		if err := aggregate.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(aggregate))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return err
	}

	for _, aggregate := range aggregates {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
	return nil
}

// Update saves an existing cell to the database.
func (r *GormCellRepository) Update(ctx context.Context, aggregate *cell.Cell) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CellDTO{}).
		Where("id = ?", dto.ID).
		Select(
			"Status", "OrderCode", "OrderDate", "OrderKey",
			"CurrentCount", "TargetCount", "Note", "FilledAt", "ClearedAt",
		).
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

// Get retrieves a cell by ID.
func (r *GormCellRepository) Get(ctx context.Context, id kernel.UUID) (*cell.Cell, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CellDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cell", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByGrid retrieves all cells of a grid in walking order.
func (r *GormCellRepository) GetByGrid(ctx context.Context, gridID kernel.UUID) ([]*cell.Cell, error) {
	if err := gridID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CellDTO
	err := r.db.WithContext(ctx).
		Where("grid_id = ?", gridID.Bytes()).
		Order("position_y, position_x").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	cells := make([]*cell.Cell, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		cells = append(cells, c)
	}

	return cells, nil
}

// GetFillingByOrderKey retrieves the filling cell holding the given order,
// locking the row for the duration of the transaction. Concurrent receipts
// of the same order serialize on this lock. Cells of deactivated grids are
// invisible here: an order does not continue into a grid being drained.
func (r *GormCellRepository) GetFillingByOrderKey(ctx context.Context, orderKey string) (*cell.Cell, error) {
	if orderKey == "" {
		return nil, errs.NewValueIsRequiredError("orderKey")
	}

	var dto CellDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "cells"}}).
		Joins("JOIN grids ON grids.id = cells.grid_id").
		Where("cells.order_key = ? AND cells.status = ? AND grids.is_active",
			orderKey, cell.StatusFilling.String()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("filling cell", orderKey)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetFirstEmpty retrieves the first empty cell over all active grids in
// walking order, locking the row so concurrent claims pick distinct cells.
// Grids are walked oldest first.
func (r *GormCellRepository) GetFirstEmpty(ctx context.Context) (*cell.Cell, error) {
	var dto CellDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "cells"}}).
		Joins("JOIN grids ON grids.id = cells.grid_id").
		Where("cells.status = ? AND grids.is_active", cell.StatusEmpty.String()).
		Order("grids.created_at, cells.position_y, cells.position_x").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("empty cell", "active grids")
		}
		return nil, err
	}

	return toDomain(dto)
}

// DeleteBatch removes the given cells from the database.
func (r *GormCellRepository) DeleteBatch(ctx context.Context, aggregates []*cell.Cell) error {
	if len(aggregates) == 0 {
		return nil
	}

	ids := make([]any, 0, len(aggregates))
	for _, aggregate := range aggregates {
		if err := aggregate.Validate(); err != nil {
			return err
		}
		ids = append(ids, aggregate.ID().Bytes())
	}

	return r.db.WithContext(ctx).Delete(&CellDTO{}, "id IN ?", ids).Error
}
