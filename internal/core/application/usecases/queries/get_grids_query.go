// Package queries contains read-only operations over the storage state.
// Implements the query side of the CQRS architecture: handlers read the
// database directly with raw SQL and return plain response structs,
// bypassing the aggregates and the unit of work.
package queries

import (
	"errors"

	"gridstore/internal/core/domain/model/kernel"
	"gridstore/internal/pkg/guard"
)

var ErrGetGridsQueryIsNotConstructed = errors.New(
	"GetGridsQuery must be created via NewGetGridsQuery constructor",
)

// GetGridsQuery retrieves every grid with its per-status cell counts.
//
// Example:
//
//	query := NewGetGridsQuery()
//	handler := NewGetGridsQueryHandler(db)
//
//	grids, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get grids: %w", err)
//	}
//	for _, g := range grids {
//	    fmt.Printf("%s: %d/%d occupied\n", g.Name, g.FillingCells+g.FullCells, g.TotalCells)
//	}
type GetGridsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetGridsQuery creates a parameterless query for the grid overview.
func NewGetGridsQuery() GetGridsQuery {
	return GetGridsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetGridsQuery) Validate() error {
	return q.guard.Validate(ErrGetGridsQueryIsNotConstructed)
}

// GetGridsQueryResponse represents one grid with its occupancy breakdown.
type GetGridsQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Width        int
	Height       int
	IsActive     bool
	TotalCells   int
	EmptyCells   int
	FillingCells int
	FullCells    int
}
