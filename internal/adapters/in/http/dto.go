package http

import (
	"time"

	"gridstore/internal/core/application/usecases/commands"
	"gridstore/internal/core/application/usecases/queries"
)

// Error is the uniform error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateGridRequest is the body of POST /api/v1/grids.
type CreateGridRequest struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// UpdateGridRequest is the body of PUT /api/v1/grids/:gridId.
// An empty name keeps the current one.
type UpdateGridRequest struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// GridResponse is one grid with its occupancy breakdown.
type GridResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	IsActive     bool   `json:"is_active"`
	TotalCells   int    `json:"total_cells"`
	EmptyCells   int    `json:"empty_cells"`
	FillingCells int    `json:"filling_cells"`
	FullCells    int    `json:"full_cells"`
}

// CellResponse is the full operational state of one cell.
type CellResponse struct {
	ID           string     `json:"id"`
	GridID       string     `json:"grid_id"`
	Name         string     `json:"name"`
	X            int        `json:"x"`
	Y            int        `json:"y"`
	Status       string     `json:"status"`
	OrderCode    string     `json:"order_code,omitempty"`
	OrderDate    string     `json:"order_date,omitempty"`
	OrderKey     string     `json:"order_key,omitempty"`
	CurrentCount int        `json:"current_count"`
	TargetCount  int        `json:"target_count"`
	Note         string     `json:"note,omitempty"`
	FilledAt     *time.Time `json:"filled_at,omitempty"`
	ClearedAt    *time.Time `json:"cleared_at,omitempty"`
}

// ProductResponse is one stored product in a cell detail.
type ProductResponse struct {
	ID             string    `json:"id"`
	Code           string    `json:"code"`
	Size           string    `json:"size,omitempty"`
	Color          string    `json:"color,omitempty"`
	QRPayload      string    `json:"qr_payload"`
	SequenceNumber int       `json:"sequence_number"`
	OrderTotal     int       `json:"order_total"`
	CreatedAt      time.Time `json:"created_at"`
}

// CellDetailResponse is one cell with the products it holds.
type CellDetailResponse struct {
	Cell     CellResponse      `json:"cell"`
	Products []ProductResponse `json:"products"`
}

// AssignProductRequest is the body of POST /api/v1/products.
// Counts arrive as strings, exactly as the scanner station sends them.
type AssignProductRequest struct {
	ProductCode    string `json:"product_code"`
	Size           string `json:"size"`
	Color          string `json:"color"`
	QRPayload      string `json:"qr_payload"`
	SequenceNumber string `json:"sequence_number"`
	OrderTotal     string `json:"order_total"`
}

// AssignProductResponse tells the scanner station where the product went.
type AssignProductResponse struct {
	GridID       string `json:"grid_id"`
	CellID       string `json:"cell_id"`
	CellName     string `json:"cell_name"`
	CellX        int    `json:"cell_x"`
	CellY        int    `json:"cell_y"`
	CellStatus   string `json:"cell_status"`
	OrderCode    string `json:"order_code"`
	OrderDate    string `json:"order_date"`
	OrderKey     string `json:"order_key"`
	CurrentCount int    `json:"current_count"`
	TargetCount  int    `json:"target_count"`
	ProductID    string `json:"product_id"`
	ProductCode  string `json:"product_code"`

	ProductionArea  string `json:"production_area"`
	SizeCode        string `json:"size_code"`
	OrderNumber     string `json:"order_number"`
	ProductSequence int    `json:"product_sequence"`
}

// CheckProductResponse reports a duplicate pre-check outcome.
type CheckProductResponse struct {
	Code   string `json:"code"`
	Exists bool   `json:"exists"`
}

// SetCellStatusRequest is the body of PUT /api/v1/cells/:cellId/status.
type SetCellStatusRequest struct {
	Status      string `json:"status"`
	PerformedBy string `json:"performed_by"`
}

// UpdateCellNoteRequest is the body of PUT /api/v1/cells/:cellId/note.
type UpdateCellNoteRequest struct {
	Note        string `json:"note"`
	PerformedBy string `json:"performed_by"`
}

// ClearCellRequest is the body of POST /api/v1/cells/:cellId/clear.
type ClearCellRequest struct {
	PerformedBy string `json:"performed_by"`
}

// ClearCellResponse reports whether the clear removed anything.
type ClearCellResponse struct {
	Cleared bool `json:"cleared"`
}

// HistoryRecordResponse is one audit record of a cell's ledger.
type HistoryRecordResponse struct {
	ID           string    `json:"id"`
	CellID       string    `json:"cell_id"`
	Action       string    `json:"action"`
	Description  string    `json:"description"`
	OrderCode    string    `json:"order_code,omitempty"`
	OrderDate    string    `json:"order_date,omitempty"`
	OrderKey     string    `json:"order_key,omitempty"`
	OldPayload   any       `json:"old_payload,omitempty"`
	NewPayload   any       `json:"new_payload,omitempty"`
	ProductCount int       `json:"product_count"`
	PerformedBy  string    `json:"performed_by,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// OrderResponse is one order tracker with the cell it occupies.
type OrderResponse struct {
	ID            string     `json:"id"`
	OrderCode     string     `json:"order_code"`
	OrderDate     string     `json:"order_date"`
	OrderKey      string     `json:"order_key"`
	CellID        string     `json:"cell_id"`
	CellName      string     `json:"cell_name"`
	TotalCount    int        `json:"total_count"`
	ReceivedCount int        `json:"received_count"`
	Status        string     `json:"status"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	ShippedAt     *time.Time `json:"shipped_at,omitempty"`
}

// SummaryResponse is the system-wide occupancy state.
type SummaryResponse struct {
	Grids          int     `json:"grids"`
	ActiveGrids    int     `json:"active_grids"`
	TotalCells     int     `json:"total_cells"`
	EmptyCells     int     `json:"empty_cells"`
	FillingCells   int     `json:"filling_cells"`
	FullCells      int     `json:"full_cells"`
	StoredProducts int     `json:"stored_products"`
	ActiveOrders   int     `json:"active_orders"`
	Utilization    float64 `json:"utilization"`
}

func toCellResponse(c queries.CellResponse) CellResponse {
	return CellResponse{
		ID:           c.ID.String(),
		GridID:       c.GridID.String(),
		Name:         c.Name,
		X:            c.X,
		Y:            c.Y,
		Status:       c.Status,
		OrderCode:    c.OrderCode,
		OrderDate:    c.OrderDate,
		OrderKey:     c.OrderKey,
		CurrentCount: c.CurrentCount,
		TargetCount:  c.TargetCount,
		Note:         c.Note,
		FilledAt:     c.FilledAt,
		ClearedAt:    c.ClearedAt,
	}
}

func toCellResponses(cells []queries.CellResponse) []CellResponse {
	out := make([]CellResponse, len(cells))
	for i, c := range cells {
		out[i] = toCellResponse(c)
	}
	return out
}

func toOrderResponse(o queries.OrderResponse) OrderResponse {
	return OrderResponse{
		ID:            o.ID.String(),
		OrderCode:     o.OrderCode,
		OrderDate:     o.OrderDate,
		OrderKey:      o.OrderKey,
		CellID:        o.CellID.String(),
		CellName:      o.CellName,
		TotalCount:    o.TotalCount,
		ReceivedCount: o.ReceivedCount,
		Status:        o.Status,
		CompletedAt:   o.CompletedAt,
		ShippedAt:     o.ShippedAt,
	}
}

func toAssignProductResponse(r commands.AssignmentResult) AssignProductResponse {
	return AssignProductResponse{
		GridID:       r.GridID.String(),
		CellID:       r.CellID.String(),
		CellName:     r.CellName,
		CellX:        r.CellX,
		CellY:        r.CellY,
		CellStatus:   r.CellStatus.String(),
		OrderCode:    r.OrderCode,
		OrderDate:    r.OrderDate,
		OrderKey:     r.OrderKey,
		CurrentCount: r.CurrentCount,
		TargetCount:  r.TargetCount,
		ProductID:    r.ProductID.String(),
		ProductCode:  r.ProductCode,

		ProductionArea:  r.ProductionArea,
		SizeCode:        r.SizeCode,
		OrderNumber:     r.OrderNumber,
		ProductSequence: r.ProductSequence,
	}
}
