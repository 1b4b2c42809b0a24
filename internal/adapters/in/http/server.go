// Package http exposes the storage system over an echo HTTP facade.
// Handlers translate wire requests into commands and queries, and map
// application errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"gridstore/internal/core/application/usecases/commands"
	"gridstore/internal/core/application/usecases/queries"
	"gridstore/internal/core/domain/model/cell"
	"gridstore/internal/core/domain/model/grid"
	"gridstore/internal/core/domain/model/kernel"
	"gridstore/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP facade for the storage system.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createGridHandler     commands.CreateGridCommandHandler
	resizeGridHandler     commands.ResizeGridCommandHandler
	assignProductHandler  commands.AssignProductCommandHandler
	setCellStatusHandler  commands.SetCellStatusCommandHandler
	updateCellNoteHandler commands.UpdateCellNoteCommandHandler
	clearCellHandler      commands.ClearCellCommandHandler

	// Query handlers
	getGridsHandler         queries.GetGridsQueryHandler
	getGridCellsHandler     queries.GetGridCellsQueryHandler
	getCellHandler          queries.GetCellQueryHandler
	getCellsByStatusHandler queries.GetCellsByStatusQueryHandler
	getReadyCellsHandler    queries.GetReadyCellsQueryHandler
	getCellHistoryHandler   queries.GetCellHistoryQueryHandler
	getOrderByKeyHandler    queries.GetOrderByKeyQueryHandler
	getOrdersHandler        queries.GetOrdersQueryHandler
	getSummaryHandler       queries.GetSummaryQueryHandler
	checkProductHandler     queries.CheckProductCodeQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createGridHandler commands.CreateGridCommandHandler,
	resizeGridHandler commands.ResizeGridCommandHandler,
	assignProductHandler commands.AssignProductCommandHandler,
	setCellStatusHandler commands.SetCellStatusCommandHandler,
	updateCellNoteHandler commands.UpdateCellNoteCommandHandler,
	clearCellHandler commands.ClearCellCommandHandler,
	getGridsHandler queries.GetGridsQueryHandler,
	getGridCellsHandler queries.GetGridCellsQueryHandler,
	getCellHandler queries.GetCellQueryHandler,
	getCellsByStatusHandler queries.GetCellsByStatusQueryHandler,
	getReadyCellsHandler queries.GetReadyCellsQueryHandler,
	getCellHistoryHandler queries.GetCellHistoryQueryHandler,
	getOrderByKeyHandler queries.GetOrderByKeyQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getSummaryHandler queries.GetSummaryQueryHandler,
	checkProductHandler queries.CheckProductCodeQueryHandler,
) *Server {
	return &Server{
		createGridHandler:       createGridHandler,
		resizeGridHandler:       resizeGridHandler,
		assignProductHandler:    assignProductHandler,
		setCellStatusHandler:    setCellStatusHandler,
		updateCellNoteHandler:   updateCellNoteHandler,
		clearCellHandler:        clearCellHandler,
		getGridsHandler:         getGridsHandler,
		getGridCellsHandler:     getGridCellsHandler,
		getCellHandler:          getCellHandler,
		getCellsByStatusHandler: getCellsByStatusHandler,
		getReadyCellsHandler:    getReadyCellsHandler,
		getCellHistoryHandler:   getCellHistoryHandler,
		getOrderByKeyHandler:    getOrderByKeyHandler,
		getOrdersHandler:        getOrdersHandler,
		getSummaryHandler:       getSummaryHandler,
		checkProductHandler:     checkProductHandler,
	}
}

// RegisterRoutes binds every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/grids", s.CreateGrid)
	v1.GET("/grids", s.GetGrids)
	v1.PUT("/grids/:gridId", s.UpdateGrid)
	v1.GET("/grids/:gridId/cells", s.GetGridCells)

	v1.POST("/products", s.AssignProduct)
	v1.GET("/products/check", s.CheckProduct)

	v1.GET("/cells", s.GetCellsByStatus)
	v1.GET("/cells/ready", s.GetReadyCells)
	v1.GET("/cells/:cellId", s.GetCell)
	v1.PUT("/cells/:cellId/status", s.SetCellStatus)
	v1.PUT("/cells/:cellId/note", s.UpdateCellNote)
	v1.POST("/cells/:cellId/clear", s.ClearCell)
	v1.GET("/cells/:cellId/history", s.GetCellHistory)

	v1.GET("/orders", s.GetOrders)
	v1.GET("/orders/:orderKey", s.GetOrderByKey)

	v1.GET("/summary", s.GetSummary)
}

// CreateGrid handles POST /api/v1/grids - creates a grid with its cells.
func (s *Server) CreateGrid(ctx echo.Context) error {
	var req CreateGridRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateGridCommand(req.Name, req.Width, req.Height)
	if err != nil {
		return badRequest(ctx, "Invalid grid data: "+err.Error())
	}

	if err = s.createGridHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetGrids handles GET /api/v1/grids - lists grids with occupancy counts.
func (s *Server) GetGrids(ctx echo.Context) error {
	grids, err := s.getGridsHandler.Handle(ctx.Request().Context(), queries.NewGetGridsQuery())
	if err != nil {
		return s.mapError(ctx, err)
	}

	response := make([]GridResponse, len(grids))
	for i, g := range grids {
		response[i] = GridResponse{
			ID:           g.ID.String(),
			Name:         g.Name,
			Width:        g.Width,
			Height:       g.Height,
			IsActive:     g.IsActive,
			TotalCells:   g.TotalCells,
			EmptyCells:   g.EmptyCells,
			FillingCells: g.FillingCells,
			FullCells:    g.FullCells,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateGrid handles PUT /api/v1/grids/:gridId - renames and resizes a grid.
func (s *Server) UpdateGrid(ctx echo.Context) error {
	gridID, err := kernel.UUIDFromString(ctx.Param("gridId"))
	if err != nil {
		return badRequest(ctx, "Invalid grid ID")
	}

	var req UpdateGridRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewResizeGridCommand(gridID, req.Name, req.Width, req.Height)
	if err != nil {
		return badRequest(ctx, "Invalid grid data: "+err.Error())
	}

	if err = s.resizeGridHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetGridCells handles GET /api/v1/grids/:gridId/cells - lists the cells of
// a grid in walking order.
func (s *Server) GetGridCells(ctx echo.Context) error {
	gridID, err := kernel.UUIDFromString(ctx.Param("gridId"))
	if err != nil {
		return badRequest(ctx, "Invalid grid ID")
	}

	query, err := queries.NewGetGridCellsQuery(gridID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cells, err := s.getGridCellsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCellResponses(cells))
}

// AssignProduct handles POST /api/v1/products - runs one scan through the
// allocation engine and reports the assigned cell.
func (s *Server) AssignProduct(ctx echo.Context) error {
	var req AssignProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignProductCommand(
		req.ProductCode, req.Size, req.Color, req.QRPayload,
		req.SequenceNumber, req.OrderTotal,
	)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	result, err := s.assignProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAssignProductResponse(result))
}

// CheckProduct handles GET /api/v1/products/check?code=... - duplicate pre-check.
func (s *Server) CheckProduct(ctx echo.Context) error {
	query, err := queries.NewCheckProductCodeQuery(ctx.QueryParam("code"))
	if err != nil {
		return badRequest(ctx, "Missing product code")
	}

	result, err := s.checkProductHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CheckProductResponse{Code: result.Code, Exists: result.Exists})
}

// GetCellsByStatus handles GET /api/v1/cells?status=... - lists cells in one
// fill state across all grids.
func (s *Server) GetCellsByStatus(ctx echo.Context) error {
	query, err := queries.NewGetCellsByStatusQuery(ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, "Invalid status filter: "+err.Error())
	}

	cells, err := s.getCellsByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCellResponses(cells))
}

// GetReadyCells handles GET /api/v1/cells/ready - the shipping work queue,
// full cells oldest fill first.
func (s *Server) GetReadyCells(ctx echo.Context) error {
	cells, err := s.getReadyCellsHandler.Handle(ctx.Request().Context(), queries.NewGetReadyCellsQuery())
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCellResponses(cells))
}

// GetCell handles GET /api/v1/cells/:cellId - one cell with its products.
func (s *Server) GetCell(ctx echo.Context) error {
	cellID, err := kernel.UUIDFromString(ctx.Param("cellId"))
	if err != nil {
		return badRequest(ctx, "Invalid cell ID")
	}

	query, err := queries.NewGetCellQuery(cellID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	detail, err := s.getCellHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	products := make([]ProductResponse, len(detail.Products))
	for i, p := range detail.Products {
		products[i] = ProductResponse{
			ID:             p.ID.String(),
			Code:           p.Code,
			Size:           p.Size,
			Color:          p.Color,
			QRPayload:      p.QRPayload,
			SequenceNumber: p.SequenceNumber,
			OrderTotal:     p.OrderTotal,
			CreatedAt:      p.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, CellDetailResponse{
		Cell:     toCellResponse(detail.Cell),
		Products: products,
	})
}

// SetCellStatus handles PUT /api/v1/cells/:cellId/status - manual override
// between filling and full. Requesting empty routes through the clear
// operation, the only path that destroys order data.
func (s *Server) SetCellStatus(ctx echo.Context) error {
	cellID, err := kernel.UUIDFromString(ctx.Param("cellId"))
	if err != nil {
		return badRequest(ctx, "Invalid cell ID")
	}

	var req SetCellStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	if req.Status == cell.StatusEmpty.String() {
		return s.clearCell(ctx, cellID, req.PerformedBy)
	}

	cmd, err := commands.NewSetCellStatusCommand(cellID, req.Status, req.PerformedBy)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	if err = s.setCellStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateCellNote handles PUT /api/v1/cells/:cellId/note.
func (s *Server) UpdateCellNote(ctx echo.Context) error {
	cellID, err := kernel.UUIDFromString(ctx.Param("cellId"))
	if err != nil {
		return badRequest(ctx, "Invalid cell ID")
	}

	var req UpdateCellNoteRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCellNoteCommand(cellID, req.Note, req.PerformedBy)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.updateCellNoteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClearCell handles POST /api/v1/cells/:cellId/clear - empties a cell and
// ships its order. Clearing a missing or already-empty cell reports
// cleared=false instead of failing.
func (s *Server) ClearCell(ctx echo.Context) error {
	cellID, err := kernel.UUIDFromString(ctx.Param("cellId"))
	if err != nil {
		return badRequest(ctx, "Invalid cell ID")
	}

	var req ClearCellRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	return s.clearCell(ctx, cellID, req.PerformedBy)
}

func (s *Server) clearCell(ctx echo.Context, cellID kernel.UUID, performedBy string) error {
	cmd, err := commands.NewClearCellCommand(cellID, performedBy)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cleared, err := s.clearCellHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ClearCellResponse{Cleared: cleared})
}

// GetCellHistory handles GET /api/v1/cells/:cellId/history - the audit
// ledger, newest first, optionally filtered by action.
func (s *Server) GetCellHistory(ctx echo.Context) error {
	cellID, err := kernel.UUIDFromString(ctx.Param("cellId"))
	if err != nil {
		return badRequest(ctx, "Invalid cell ID")
	}

	limit := intQueryParam(ctx, "limit")
	offset := intQueryParam(ctx, "offset")

	query, err := queries.NewGetCellHistoryQuery(cellID, ctx.QueryParam("action"), limit, offset)
	if err != nil {
		return badRequest(ctx, "Invalid history filter: "+err.Error())
	}

	records, err := s.getCellHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	response := make([]HistoryRecordResponse, len(records))
	for i, r := range records {
		response[i] = HistoryRecordResponse{
			ID:           r.ID.String(),
			CellID:       r.CellID.String(),
			Action:       r.Action,
			Description:  r.Description,
			OrderCode:    r.OrderCode,
			OrderDate:    r.OrderDate,
			OrderKey:     r.OrderKey,
			OldPayload:   r.OldPayload,
			NewPayload:   r.NewPayload,
			ProductCount: r.ProductCount,
			PerformedBy:  r.PerformedBy,
			CreatedAt:    r.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrders handles GET /api/v1/orders - lists order trackers, optionally
// filtered by status.
func (s *Server) GetOrders(ctx echo.Context) error {
	query, err := queries.NewGetOrdersQuery(ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, "Invalid status filter: "+err.Error())
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderByKey handles GET /api/v1/orders/:orderKey - the latest tracker
// for one composite order key.
func (s *Server) GetOrderByKey(ctx echo.Context) error {
	query, err := queries.NewGetOrderByKeyQuery(ctx.Param("orderKey"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	order, err := s.getOrderByKeyHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(order))
}

// GetSummary handles GET /api/v1/summary - system-wide occupancy counters.
func (s *Server) GetSummary(ctx echo.Context) error {
	summary, err := s.getSummaryHandler.Handle(ctx.Request().Context(), queries.NewGetSummaryQuery())
	if err != nil {
		return s.mapError(ctx, err)
	}

	utilization := 0.0
	if summary.TotalCells > 0 {
		utilization = float64(summary.FillingCells+summary.FullCells) / float64(summary.TotalCells)
	}

	return ctx.JSON(http.StatusOK, SummaryResponse{
		Grids:          summary.Grids,
		ActiveGrids:    summary.ActiveGrids,
		TotalCells:     summary.TotalCells,
		EmptyCells:     summary.EmptyCells,
		FillingCells:   summary.FillingCells,
		FullCells:      summary.FullCells,
		StoredProducts: summary.StoredProducts,
		ActiveOrders:   summary.ActiveOrders,
		Utilization:    utilization,
	})
}

// mapError converts application and domain errors into HTTP responses.
func (s *Server) mapError(ctx echo.Context, err error) error {
	var occupied *grid.CellsOccupiedError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return jsonError(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, commands.ErrDuplicateProduct),
		errors.Is(err, commands.ErrNoActiveGrid),
		errors.Is(err, commands.ErrNoCapacity),
		errors.Is(err, cell.ErrInvalidTransition):
		return jsonError(ctx, http.StatusConflict, err.Error())
	case errors.As(err, &occupied):
		return jsonError(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	default:
		return jsonError(ctx, http.StatusInternalServerError, "Internal error")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return jsonError(ctx, http.StatusBadRequest, message)
}

func jsonError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}

func intQueryParam(ctx echo.Context, name string) int {
	value := ctx.QueryParam(name)
	if value == "" {
		return 0
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return parsed
}
