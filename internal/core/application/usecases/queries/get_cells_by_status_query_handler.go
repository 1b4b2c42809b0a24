package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCellsByStatusQueryHandler retrieves cells in one status across grids.
type GetCellsByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetCellsByStatusQueryHandler creates a handler for by-status cell listings.
func NewGetCellsByStatusQueryHandler(db *gorm.DB) GetCellsByStatusQueryHandler {
	return GetCellsByStatusQueryHandler{db: db}
}

// Handle executes the query. Cells come back in allocation walking order:
// grid creation time first, then row and column.
func (h GetCellsByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetCellsByStatusQuery,
) ([]CellResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id, c.grid_id, c.name, c.position_x, c.position_y, c.status,
			c.order_code, c.order_date, c.order_key,
			c.current_count, c.target_count, c.note, c.filled_at, c.cleared_at
		FROM cells c
		JOIN grids g ON g.id = c.grid_id
		WHERE c.status = ?
		ORDER BY g.created_at, c.position_y, c.position_x
	`, query.Status().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCellRows(rows)
}
