package queries

import (
	"context"
	"database/sql"

	"gridstore/internal/core/domain/model/kernel"
	"gridstore/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderByKeyQueryHandler retrieves one order tracker from the database.
type GetOrderByKeyQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByKeyQueryHandler creates a handler for single-order lookups.
func NewGetOrderByKeyQueryHandler(db *gorm.DB) GetOrderByKeyQueryHandler {
	return GetOrderByKeyQueryHandler{db: db}
}

// Handle executes the query. Returns an errs.ErrObjectNotFound-wrapping
// error when no tracker exists for the key.
func (h GetOrderByKeyQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByKeyQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id, t.order_code, t.order_date, t.order_key, t.cell_id, c.name,
			t.total_count, t.received_count, t.status, t.completed_at, t.shipped_at
		FROM order_trackers t
		JOIN cells c ON c.id = t.cell_id
		WHERE t.order_key = ?
		ORDER BY t.created_at DESC
		LIMIT 1
	`, query.OrderKey()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	orders, err := scanOrderRows(rows)
	if err != nil {
		return OrderResponse{}, err
	}
	if len(orders) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderKey", query.OrderKey())
	}

	return orders[0], nil
}

func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var orderResp OrderResponse
		var id, cellID uuid.UUID
		var completedAt, shippedAt sql.NullTime

		err := rows.Scan(
			&id,
			&orderResp.OrderCode,
			&orderResp.OrderDate,
			&orderResp.OrderKey,
			&cellID,
			&orderResp.CellName,
			&orderResp.TotalCount,
			&orderResp.ReceivedCount,
			&orderResp.Status,
			&completedAt,
			&shippedAt,
		)
		if err != nil {
			return nil, err
		}

		trackerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		trackerCellID, idErr := kernel.UUIDFromBytes(cellID[:])
		if idErr != nil {
			return nil, idErr
		}

		orderResp.ID = trackerID
		orderResp.CellID = trackerCellID
		orderResp.CompletedAt = nullableTime(completedAt)
		orderResp.ShippedAt = nullableTime(shippedAt)
		orders = append(orders, orderResp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
