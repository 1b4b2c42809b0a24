package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetSummaryQueryHandler retrieves the system-wide occupancy counters.
type GetSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetSummaryQueryHandler creates a handler for summary queries.
func NewGetSummaryQueryHandler(db *gorm.DB) GetSummaryQueryHandler {
	return GetSummaryQueryHandler{db: db}
}

// Handle executes the summary query as one round trip.
func (h GetSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetSummaryQuery,
) (GetSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSummaryQueryResponse{}, err
	}

	var summary GetSummaryQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM grids),
			(SELECT COUNT(*) FROM grids WHERE is_active),
			(SELECT COUNT(*) FROM cells),
			(SELECT COUNT(*) FROM cells WHERE status = 'empty'),
			(SELECT COUNT(*) FROM cells WHERE status = 'filling'),
			(SELECT COUNT(*) FROM cells WHERE status = 'full'),
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM order_trackers WHERE status != 'shipped')
	`).Row()

	err := row.Scan(
		&summary.Grids,
		&summary.ActiveGrids,
		&summary.TotalCells,
		&summary.EmptyCells,
		&summary.FillingCells,
		&summary.FullCells,
		&summary.StoredProducts,
		&summary.ActiveOrders,
	)
	if err != nil {
		return GetSummaryQueryResponse{}, err
	}

	return summary, nil
}
