// Package trackingrepo provides data transfer objects and mapping functions
// for order tracker persistence. Implements the repository pattern for the
// tracker aggregate, handling conversion between domain entities and database
// representations.
package trackingrepo

import (
	"time"

	"gridstore/internal/core/domain/model/kernel"
	"gridstore/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// TrackerDTO represents the database structure for persisting order trackers.
// OrderKey is indexed but deliberately not unique: a shipped order that
// reappears gets a fresh tracker row while the shipped one stays as history.
type TrackerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderCode string
	OrderDate string
	OrderKey  string    `gorm:"index"`
	CellID    uuid.UUID `gorm:"type:uuid;index"`

	TotalCount    int
	ReceivedCount int
	Status        string `gorm:"index"`

	CompletedAt *time.Time
	ShippedAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for tracker entities.
func (TrackerDTO) TableName() string {
	return "order_trackers"
}

// fromDomain converts a tracker domain aggregate to its database representation.
func fromDomain(aggregate *tracking.Tracker) TrackerDTO {
	return TrackerDTO{
		ID:            aggregate.ID().Bytes(),
		OrderCode:     aggregate.OrderCode(),
		OrderDate:     aggregate.OrderDate(),
		OrderKey:      aggregate.OrderKey(),
		CellID:        aggregate.CellID().Bytes(),
		TotalCount:    aggregate.TotalCount(),
		ReceivedCount: aggregate.ReceivedCount(),
		Status:        aggregate.Status().String(),
		CompletedAt:   aggregate.CompletedAt(),
		ShippedAt:     aggregate.ShippedAt(),
	}
}

// toDomain converts a database DTO to a tracker domain aggregate.
func toDomain(dto TrackerDTO) (*tracking.Tracker, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	cellID, err := kernel.UUIDFromBytes(dto.CellID[:])
	if err != nil {
		return nil, err
	}

	status, err := tracking.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return tracking.RestoreTracker(
		id,
		dto.OrderCode,
		dto.OrderDate,
		dto.OrderKey,
		cellID,
		dto.TotalCount,
		dto.ReceivedCount,
		status,
		dto.CompletedAt,
		dto.ShippedAt,
	)
}
