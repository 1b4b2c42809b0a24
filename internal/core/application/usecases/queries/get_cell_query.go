package queries

import (
	"errors"
	"time"

	"gridstore/internal/core/domain/model/kernel"
	"gridstore/internal/pkg/guard"
)

var ErrGetCellQueryIsNotConstructed = errors.New(
	"GetCellQuery must be created via NewGetCellQuery constructor",
)

// GetCellQuery retrieves one cell together with the products it holds.
type GetCellQuery struct { //nolint:recvcheck //using for validation
	cellID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCellQuery creates a detail query for the given cell.
func NewGetCellQuery(cellID kernel.UUID) (GetCellQuery, error) {
	query := GetCellQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := cellID.Validate(); err != nil {
		return GetCellQuery{}, err
	}

	query.cellID = cellID
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCellQuery) Validate() error {
	return q.guard.Validate(ErrGetCellQueryIsNotConstructed)
}

// CellID returns the identifier of the cell to read.
func (q GetCellQuery) CellID() kernel.UUID {
	return q.cellID
}

// ProductResponse represents one stored product in a cell detail.
type ProductResponse struct {
	ID             kernel.UUID
	Code           string
	Size           string
	Color          string
	QRPayload      string
	SequenceNumber int
	OrderTotal     int
	CreatedAt      time.Time
}

// GetCellQueryResponse represents one cell with its stored products.
type GetCellQueryResponse struct {
	Cell     CellResponse
	Products []ProductResponse
}
