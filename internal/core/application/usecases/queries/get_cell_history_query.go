package queries

import (
	"errors"
	"time"

	"gridstore/internal/core/domain/model/history"
	"gridstore/internal/core/domain/model/kernel"
	"gridstore/internal/pkg/guard"
)

var ErrGetCellHistoryQueryIsNotConstructed = errors.New(
	"GetCellHistoryQuery must be created via NewGetCellHistoryQuery constructor",
)

const (
	// DefaultHistoryPageSize bounds a history page when the caller does
	// not ask for a specific size.
	DefaultHistoryPageSize = 50

	// MaxHistoryPageSize is the hard ceiling for one history page.
	MaxHistoryPageSize = 500
)

// GetCellHistoryQuery retrieves the audit ledger of one cell, newest
// first, optionally filtered by action kind and paginated.
type GetCellHistoryQuery struct { //nolint:recvcheck //using for validation
	cellID kernel.UUID
	action *history.Action
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewGetCellHistoryQuery creates a history query for the given cell.
// action is an optional action-kind filter, "" for all kinds. limit of 0
// falls back to DefaultHistoryPageSize.
func NewGetCellHistoryQuery(cellID kernel.UUID, action string, limit, offset int) (GetCellHistoryQuery, error) {
	query := GetCellHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := cellID.Validate(); err != nil {
		return GetCellHistoryQuery{}, err
	}
	query.cellID = cellID

	if action != "" {
		parsed, err := history.ActionFromString(action)
		if err != nil {
			return GetCellHistoryQuery{}, err
		}
		query.action = &parsed
	}

	switch {
	case limit <= 0:
		query.limit = DefaultHistoryPageSize
	case limit > MaxHistoryPageSize:
		query.limit = MaxHistoryPageSize
	default:
		query.limit = limit
	}

	if offset > 0 {
		query.offset = offset
	}
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCellHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetCellHistoryQueryIsNotConstructed)
}

// CellID returns the identifier of the cell whose ledger to read.
func (q GetCellHistoryQuery) CellID() kernel.UUID {
	return q.cellID
}

// Action returns the optional action-kind filter, nil for all kinds.
func (q GetCellHistoryQuery) Action() *history.Action {
	return q.action
}

// Limit returns the page size.
func (q GetCellHistoryQuery) Limit() int {
	return q.limit
}

// Offset returns the number of records to skip.
func (q GetCellHistoryQuery) Offset() int {
	return q.offset
}

// GetCellHistoryQueryResponse represents one audit record.
type GetCellHistoryQueryResponse struct {
	ID           kernel.UUID
	CellID       kernel.UUID
	Action       string
	Description  string
	OrderCode    string
	OrderDate    string
	OrderKey     string
	OldPayload   history.Payload
	NewPayload   history.Payload
	ProductCount int
	PerformedBy  string
	CreatedAt    time.Time
}
