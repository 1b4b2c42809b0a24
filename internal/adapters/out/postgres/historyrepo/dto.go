// Package historyrepo provides data transfer objects and mapping functions
// for cell history persistence. The ledger is append-only: rows are written
// once and read back through the query side.
package historyrepo

import (
	"time"

	"gridstore/internal/core/domain/model/history"

	"github.com/google/uuid"
)

// HistoryRecordDTO represents the database structure for persisting cell
// history records. Payloads are stored as jsonb documents so the ledger can
// be inspected with plain SQL.
type HistoryRecordDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	CellID uuid.UUID `gorm:"type:uuid;index"`

	Action      string `gorm:"index"`
	Description string

	OrderCode string
	OrderDate string
	OrderKey  string

	OldPayload []byte `gorm:"type:jsonb"`
	NewPayload []byte `gorm:"type:jsonb"`

	ProductCount int
	PerformedBy  string

	CreatedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for history records.
func (HistoryRecordDTO) TableName() string {
	return "cell_history"
}

// fromDomain converts a history record to its database representation.
func fromDomain(record *history.Record) (HistoryRecordDTO, error) {
	oldPayload, err := history.EncodePayload(record.OldPayload())
	if err != nil {
		return HistoryRecordDTO{}, err
	}

	newPayload, err := history.EncodePayload(record.NewPayload())
	if err != nil {
		return HistoryRecordDTO{}, err
	}

	return HistoryRecordDTO{
		ID:           record.ID().Bytes(),
		CellID:       record.CellID().Bytes(),
		Action:       record.Action().String(),
		Description:  record.Description(),
		OrderCode:    record.OrderCode(),
		OrderDate:    record.OrderDate(),
		OrderKey:     record.OrderKey(),
		OldPayload:   oldPayload,
		NewPayload:   newPayload,
		ProductCount: record.ProductCount(),
		PerformedBy:  record.PerformedBy(),
		CreatedAt:    record.CreatedAt(),
	}, nil
}
