package ports

import (
	"context"

	"gridstore/internal/core/domain/model/history"
)

// HistoryRepository defines the persistence contract for the audit ledger.
// The ledger is append-only: records are never updated or deleted, so the
// interface exposes only insertion.
type HistoryRepository interface {
	// Add persists a new history record.
	Add(ctx context.Context, record *history.Record) error
}
