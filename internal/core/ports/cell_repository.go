package ports

import (
	"context"

	"gridstore/internal/core/domain/model/cell"
	"gridstore/internal/core/domain/model/kernel"
)

// CellRepository defines the persistence contract for cells.
//
// The two selection queries back the allocation path and must lock the
// returned row for the duration of the transaction, so that concurrent
// scans of the same order cannot claim two different cells.
type CellRepository interface {
	// AddBatch persists a set of newly generated cells in one statement.
	// Used at grid creation and when a resize grows the grid.
	AddBatch(ctx context.Context, cells []*cell.Cell) error

	// Update persists changes to an existing cell.
	Update(ctx context.Context, aggregate *cell.Cell) error

	// Get retrieves a cell by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*cell.Cell, error)

	// GetByGrid retrieves all cells of a grid in walking order,
	// ascending row then column.
	GetByGrid(ctx context.Context, gridID kernel.UUID) ([]*cell.Cell, error)

	// GetFillingByOrderKey retrieves the cell currently filling with the
	// given order, locked for update. Returns errs.ErrObjectNotFound via
	// a typed error when no such cell exists.
	GetFillingByOrderKey(ctx context.Context, orderKey string) (*cell.Cell, error)

	// GetFirstEmpty retrieves the first empty cell across active grids,
	// locked for update. Grids are walked in creation order, cells in
	// walking order. Returns a not-found error when every cell is taken.
	GetFirstEmpty(ctx context.Context) (*cell.Cell, error)

	// DeleteBatch removes cells dropped by a grid shrink.
	DeleteBatch(ctx context.Context, cells []*cell.Cell) error
}
