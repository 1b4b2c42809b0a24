package queries

import (
	"errors"
	"time"

	"gridstore/internal/core/domain/model/kernel"
	"gridstore/internal/pkg/guard"
)

var ErrGetGridCellsQueryIsNotConstructed = errors.New(
	"GetGridCellsQuery must be created via NewGetGridCellsQuery constructor",
)

// GetGridCellsQuery retrieves every cell of one grid in walking order.
type GetGridCellsQuery struct { //nolint:recvcheck //using for validation
	gridID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetGridCellsQuery creates a query for the cells of the given grid.
func NewGetGridCellsQuery(gridID kernel.UUID) (GetGridCellsQuery, error) {
	query := GetGridCellsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := gridID.Validate(); err != nil {
		return GetGridCellsQuery{}, err
	}

	query.gridID = gridID
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetGridCellsQuery) Validate() error {
	return q.guard.Validate(ErrGetGridCellsQueryIsNotConstructed)
}

// GridID returns the identifier of the grid to list.
func (q GetGridCellsQuery) GridID() kernel.UUID {
	return q.gridID
}

// CellResponse represents the full operational state of one cell.
// Shared by the grid listing and the by-status listing.
type CellResponse struct {
	ID           kernel.UUID
	GridID       kernel.UUID
	Name         string
	X            int
	Y            int
	Status       string
	OrderCode    string
	OrderDate    string
	OrderKey     string
	CurrentCount int
	TargetCount  int
	Note         string
	FilledAt     *time.Time
	ClearedAt    *time.Time
}
