package queries

import (
	"errors"

	"gridstore/internal/pkg/guard"
)

var ErrGetReadyCellsQueryIsNotConstructed = errors.New(
	"GetReadyCellsQuery must be created via NewGetReadyCellsQuery constructor",
)

// GetReadyCellsQuery retrieves the full cells in the order they filled up,
// the shipping station's work queue.
type GetReadyCellsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetReadyCellsQuery creates a parameterless ready-to-ship query.
func NewGetReadyCellsQuery() GetReadyCellsQuery {
	return GetReadyCellsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetReadyCellsQuery) Validate() error {
	return q.guard.Validate(ErrGetReadyCellsQueryIsNotConstructed)
}
