package queries

import (
	"context"
	"database/sql"
	"time"

	"gridstore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetGridCellsQueryHandler retrieves the cells of one grid from the database.
type GetGridCellsQueryHandler struct {
	db *gorm.DB
}

// NewGetGridCellsQueryHandler creates a handler for grid cell listings.
func NewGetGridCellsQueryHandler(db *gorm.DB) GetGridCellsQueryHandler {
	return GetGridCellsQueryHandler{db: db}
}

// Handle executes the query. Cells come back row by row, the order the
// allocation engine walks them in.
func (h GetGridCellsQueryHandler) Handle(
	ctx context.Context,
	query GetGridCellsQuery,
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
		WHERE grid_id = ?
		ORDER BY position_y, position_x
	`, query.GridID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCellRows(rows)
}

func scanCellRows(rows *sql.Rows) ([]CellResponse, error) {
	cells := make([]CellResponse, 0)

	for rows.Next() {
		var cellResp CellResponse
		var id, gridID uuid.UUID
		var filledAt, clearedAt sql.NullTime

		err := rows.Scan(
			&id,
			&gridID,
			&cellResp.Name,
			&cellResp.X,
			&cellResp.Y,
			&cellResp.Status,
			&cellResp.OrderCode,
			&cellResp.OrderDate,
			&cellResp.OrderKey,
			&cellResp.CurrentCount,
			&cellResp.TargetCount,
			&cellResp.Note,
			&filledAt,
			&clearedAt,
		)
		if err != nil {
			return nil, err
		}

		cellID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		cellGridID, idErr := kernel.UUIDFromBytes(gridID[:])
		if idErr != nil {
			return nil, idErr
		}

		cellResp.ID = cellID
		cellResp.GridID = cellGridID
		cellResp.FilledAt = nullableTime(filledAt)
		cellResp.ClearedAt = nullableTime(clearedAt)
		cells = append(cells, cellResp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return cells, nil
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}
