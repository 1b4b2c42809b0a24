package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves order trackers from the database.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listings.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query, newest trackers first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			t.id, t.order_code, t.order_date, t.order_key, t.cell_id, c.name,
			t.total_count, t.received_count, t.status, t.completed_at, t.shipped_at
		FROM order_trackers t
		JOIN cells c ON c.id = t.cell_id
	`
	args := []any{}

	if query.Status() != nil {
		sqlQuery += " WHERE t.status = ?"
		args = append(args, query.Status().String())
	}

	sqlQuery += " ORDER BY t.created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
