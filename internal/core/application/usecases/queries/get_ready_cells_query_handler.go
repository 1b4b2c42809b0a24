package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetReadyCellsQueryHandler retrieves the full cells, oldest fill first.
type GetReadyCellsQueryHandler struct {
	db *gorm.DB
}

// NewGetReadyCellsQueryHandler creates a handler for ready-to-ship listings.
func NewGetReadyCellsQueryHandler(db *gorm.DB) GetReadyCellsQueryHandler {
	return GetReadyCellsQueryHandler{db: db}
}

// Handle executes the query. The cell that has waited longest ships first.
func (h GetReadyCellsQueryHandler) Handle(
	ctx context.Context,
	query GetReadyCellsQuery,
) ([]CellResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id, grid_id, name, position_x, position_y, status,
			order_code, order_date, order_key,
			current_count, target_count, note, filled_at, cleared_at
		FROM cells
		WHERE status = 'full'
		ORDER BY filled_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCellRows(rows)
}
