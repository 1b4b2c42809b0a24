package queries

import (
	"context"

	"gridstore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetGridsQueryHandler retrieves the grid overview from the database.
type GetGridsQueryHandler struct {
	db *gorm.DB
}

// NewGetGridsQueryHandler creates a handler for grid overview queries.
// Requires a GORM database connection for query execution.
func NewGetGridsQueryHandler(db *gorm.DB) GetGridsQueryHandler {
	return GetGridsQueryHandler{db: db}
}

// Handle executes the query. Grids come back in creation order, the same
// order allocation walks them in.
func (h GetGridsQueryHandler) Handle(
	ctx context.Context,
	query GetGridsQuery,
) ([]GetGridsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	grids := make([]GetGridsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			g.id,
			g.name,
			g.width,
			g.height,
			g.is_active,
			COUNT(c.id) AS total_cells,
			COUNT(c.id) FILTER (WHERE c.status = 'empty') AS empty_cells,
			COUNT(c.id) FILTER (WHERE c.status = 'filling') AS filling_cells,
			COUNT(c.id) FILTER (WHERE c.status = 'full') AS full_cells
		FROM grids g
		LEFT JOIN cells c ON c.grid_id = g.id
		GROUP BY g.id, g.name, g.width, g.height, g.is_active, g.created_at
		ORDER BY g.created_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var gridResp GetGridsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&gridResp.Name,
			&gridResp.Width,
			&gridResp.Height,
			&gridResp.IsActive,
			&gridResp.TotalCells,
			&gridResp.EmptyCells,
			&gridResp.FillingCells,
			&gridResp.FullCells,
		)
		if err != nil {
			return nil, err
		}

		gridID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		gridResp.ID = gridID
		grids = append(grids, gridResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return grids, nil
}
