// Package gridrepo provides data transfer objects and mapping functions for
// grid persistence. Implements the repository pattern for the grid aggregate,
// handling conversion between domain entities and database representations.
package gridrepo

import (
	"time"

	"gridstore/internal/core/domain/model/grid"
	"gridstore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// GridDTO represents the database structure for persisting grid aggregates.
// The creation timestamp doubles as the walking order for allocation:
// active grids are scanned oldest first.
type GridDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	Width    int
	Height   int
	IsActive bool `gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for grid entities.
func (GridDTO) TableName() string {
	return "grids"
}

// fromDomain converts a grid domain aggregate to its database representation.
func fromDomain(aggregate *grid.Grid) GridDTO {
	return GridDTO{
		ID:       aggregate.ID().Bytes(),
		Name:     aggregate.Name(),
		Width:    aggregate.Width(),
		Height:   aggregate.Height(),
		IsActive: aggregate.IsActive(),
	}
}

// toDomain converts a database DTO to a grid domain aggregate.
func toDomain(dto GridDTO) (*grid.Grid, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return grid.RestoreGrid(id, dto.Name, dto.Width, dto.Height, dto.IsActive)
}
