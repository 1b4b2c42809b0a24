// Package cellrepo provides data transfer objects and mapping functions for
// cell persistence. Implements the repository pattern for the cell aggregate,
// handling conversion between domain entities and database representations.
package cellrepo

import (
	"time"

	"gridstore/internal/core/domain/model/cell"
	"gridstore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CellDTO represents the database structure for persisting cell aggregates.
// PositionY and PositionX form the walking order inside a grid.
type CellDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	GridID    uuid.UUID `gorm:"type:uuid;index"`
	PositionX int
	PositionY int
	Name      string

	Status    string `gorm:"index"`
	OrderCode string
	OrderDate string
	OrderKey  string `gorm:"index"`

	CurrentCount int
	TargetCount  int
	Note         string

	FilledAt  *time.Time
	ClearedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for cell entities.
func (CellDTO) TableName() string {
	return "cells"
}

// fromDomain converts a cell domain aggregate to its database representation.
func fromDomain(aggregate *cell.Cell) CellDTO {
	return CellDTO{
		ID:           aggregate.ID().Bytes(),
		GridID:       aggregate.GridID().Bytes(),
		PositionX:    int(aggregate.Position().X()),
		PositionY:    int(aggregate.Position().Y()),
		Name:         aggregate.Name(),
		Status:       aggregate.Status().String(),
		OrderCode:    aggregate.OrderCode(),
		OrderDate:    aggregate.OrderDate(),
		OrderKey:     aggregate.OrderKey(),
		CurrentCount: aggregate.CurrentCount(),
		TargetCount:  aggregate.TargetCount(),
		Note:         aggregate.Note(),
		FilledAt:     aggregate.FilledAt(),
		ClearedAt:    aggregate.ClearedAt(),
	}
}

// toDomain converts a database DTO to a cell domain aggregate.
func toDomain(dto CellDTO) (*cell.Cell, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	gridID, err := kernel.UUIDFromBytes(dto.GridID[:])
	if err != nil {
		return nil, err
	}

	position, err := kernel.NewPosition(kernel.Coordinate(dto.PositionX), kernel.Coordinate(dto.PositionY))
	if err != nil {
		return nil, err
	}

	status, err := cell.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return cell.RestoreCell(
		id,
		gridID,
		position,
		status,
		dto.OrderCode,
		dto.OrderDate,
		dto.OrderKey,
		dto.CurrentCount,
		dto.TargetCount,
		dto.Note,
		dto.FilledAt,
		dto.ClearedAt,
	)
}
