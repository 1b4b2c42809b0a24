package queries

import (
	"context"

	"gridstore/internal/core/domain/model/kernel"
	"gridstore/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCellQueryHandler retrieves one cell and its products from the database.
type GetCellQueryHandler struct {
	db *gorm.DB
}

// NewGetCellQueryHandler creates a handler for cell detail queries.
func NewGetCellQueryHandler(db *gorm.DB) GetCellQueryHandler {
	return GetCellQueryHandler{db: db}
}

// Handle executes the query. Missing cells fail with ErrObjectNotFound.
func (h GetCellQueryHandler) Handle(
	ctx context.Context,
	query GetCellQuery,
) (GetCellQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCellQueryResponse{}, err
	}

	cellRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id, grid_id, name, position_x, position_y, status,
			order_code, order_date, order_key,
			current_count, target_count, note, filled_at, cleared_at
		FROM cells
		WHERE id = ?
	`, query.CellID().Bytes()).Rows()
	if err != nil {
		return GetCellQueryResponse{}, err
	}
	defer cellRows.Close()

	cells, err := scanCellRows(cellRows)
	if err != nil {
		return GetCellQueryResponse{}, err
	}
	if len(cells) == 0 {
		return GetCellQueryResponse{}, errs.NewObjectNotFoundError("cell", query.CellID().String())
	}

	productRows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, code, size, color, qr_payload, sequence_number, order_total, created_at
		FROM products
		WHERE cell_id = ?
		ORDER BY created_at
	`, query.CellID().Bytes()).Rows()
	if err != nil {
		return GetCellQueryResponse{}, err
	}
	defer productRows.Close()

	products := make([]ProductResponse, 0)
	for productRows.Next() {
		var resp ProductResponse
		var id uuid.UUID

		err = productRows.Scan(
			&id,
			&resp.Code,
			&resp.Size,
			&resp.Color,
			&resp.QRPayload,
			&resp.SequenceNumber,
			&resp.OrderTotal,
			&resp.CreatedAt,
		)
		if err != nil {
			return GetCellQueryResponse{}, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetCellQueryResponse{}, idErr
		}
		resp.ID = productID
		products = append(products, resp)
	}
	if err = productRows.Err(); err != nil {
		return GetCellQueryResponse{}, err
	}

	return GetCellQueryResponse{Cell: cells[0], Products: products}, nil
}
