package queries

import (
	"context"
	"database/sql"

	"gridstore/internal/core/domain/model/history"
	"gridstore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCellHistoryQueryHandler retrieves a page of one cell's audit ledger.
type GetCellHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetCellHistoryQueryHandler creates a handler for history queries.
func NewGetCellHistoryQueryHandler(db *gorm.DB) GetCellHistoryQueryHandler {
	return GetCellHistoryQueryHandler{db: db}
}

// Handle executes the query, newest records first. Persisted payloads are
// decoded back into their per-action snapshot shapes.
func (h GetCellHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetCellHistoryQuery,
) ([]GetCellHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id, cell_id, action, description,
			order_code, order_date, order_key,
			old_payload, new_payload, product_count, performed_by, created_at
		FROM cell_history
		WHERE cell_id = ?
	`
	args := []any{query.CellID().Bytes()}

	if query.Action() != nil {
		sqlQuery += " AND action = ?"
		args = append(args, query.Action().String())
	}

	sqlQuery += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, query.Limit(), query.Offset())

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]GetCellHistoryQueryResponse, 0)

	for rows.Next() {
		var recordResp GetCellHistoryQueryResponse
		var id, cellID uuid.UUID
		var oldPayload, newPayload []byte
		var performedBy sql.NullString

		err = rows.Scan(
			&id,
			&cellID,
			&recordResp.Action,
			&recordResp.Description,
			&recordResp.OrderCode,
			&recordResp.OrderDate,
			&recordResp.OrderKey,
			&oldPayload,
			&newPayload,
			&recordResp.ProductCount,
			&performedBy,
			&recordResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		recordID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		recordCellID, idErr := kernel.UUIDFromBytes(cellID[:])
		if idErr != nil {
			return nil, idErr
		}
		recordResp.ID = recordID
		recordResp.CellID = recordCellID
		recordResp.PerformedBy = performedBy.String

		action, actErr := history.ActionFromString(recordResp.Action)
		if actErr != nil {
			return nil, actErr
		}
		if recordResp.OldPayload, err = history.DecodePayload(action, history.SideOld, oldPayload); err != nil {
			return nil, err
		}
		if recordResp.NewPayload, err = history.DecodePayload(action, history.SideNew, newPayload); err != nil {
			return nil, err
		}

		records = append(records, recordResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
