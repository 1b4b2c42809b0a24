package queries

import (
	"errors"

	"gridstore/internal/pkg/guard"
)

var ErrGetSummaryQueryIsNotConstructed = errors.New(
	"GetSummaryQuery must be created via NewGetSummaryQuery constructor",
)

// GetSummaryQuery retrieves system-wide occupancy counters. Used by the
// periodic occupancy report job and the summary endpoint.
type GetSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSummaryQuery creates a parameterless summary query.
func NewGetSummaryQuery() GetSummaryQuery {
	return GetSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetSummaryQueryIsNotConstructed)
}

// GetSummaryQueryResponse represents the system-wide occupancy state.
type GetSummaryQueryResponse struct {
	Grids          int
	ActiveGrids    int
	TotalCells     int
	EmptyCells     int
	FillingCells   int
	FullCells      int
	StoredProducts int
	ActiveOrders   int
}
