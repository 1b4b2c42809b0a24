package queries

import (
	"errors"

	"gridstore/internal/core/domain/model/cell"
	"gridstore/internal/pkg/guard"
)

var ErrGetCellsByStatusQueryIsNotConstructed = errors.New(
	"GetCellsByStatusQuery must be created via NewGetCellsByStatusQuery constructor",
)

// GetCellsByStatusQuery retrieves every cell in the given status across
// all grids. The status arrives as text from the outer layer.
type GetCellsByStatusQuery struct { //nolint:recvcheck //using for validation
	status cell.Status

	guard guard.ConstructorGuard
}

// NewGetCellsByStatusQuery creates a query for cells in one status.
func NewGetCellsByStatusQuery(status string) (GetCellsByStatusQuery, error) {
	query := GetCellsByStatusQuery{
		guard: guard.NewConstructorGuard(),
	}

	parsed, err := cell.StatusFromString(status)
	if err != nil {
		return GetCellsByStatusQuery{}, err
	}

	query.status = parsed
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCellsByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetCellsByStatusQueryIsNotConstructed)
}

// Status returns the status to filter on.
func (q GetCellsByStatusQuery) Status() cell.Status {
	return q.status
}
