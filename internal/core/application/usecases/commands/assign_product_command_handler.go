package commands

import (
	"context"
	"errors"
	"time"

	"gridstore/internal/core/domain/model/cell"
	"gridstore/internal/core/domain/model/history"
	"gridstore/internal/core/domain/model/kernel"
	"gridstore/internal/core/domain/model/product"
	"gridstore/internal/core/domain/model/scan"
	"gridstore/internal/core/domain/model/tracking"
	"gridstore/internal/core/ports"
	"gridstore/internal/pkg/errs"
)

var (
	// ErrDuplicateProduct is returned when the scanned product code is
	// already present anywhere in the system.
	ErrDuplicateProduct = errors.New("product already assigned")

	// ErrNoActiveGrid is returned when no grid accepts products.
	ErrNoActiveGrid = errors.New("no active grid found")

	// ErrNoCapacity is returned when no cell can take the product: the
	// order has no filling cell and every cell is occupied.
	ErrNoCapacity = errors.New("no cell available for product")
)

// AssignmentResult is the full contract of a successful assignment, exposed
// verbatim by outer layers.
type AssignmentResult struct {
	GridID       kernel.UUID
	CellID       kernel.UUID
	CellName     string
	CellX        int
	CellY        int
	CellStatus   cell.Status
	OrderCode    string
	OrderDate    string
	OrderKey     string
	CurrentCount int
	TargetCount  int
	ProductID    kernel.UUID
	ProductCode  string

	ProductionArea  string
	SizeCode        string
	OrderNumber     string
	ProductSequence int
}

// AssignProductCommandHandler is the allocation engine. One scan flows
// through parsing, duplicate detection, cell selection, the cell state
// machine, the order tracker, and the audit ledger as a single transaction.
//
// Cell selection continues the order's filling cell when one exists,
// otherwise claims the first empty cell across active grids. Both lookups
// lock the row, so concurrent scans of one new order serialize on the
// claimed cell instead of splitting across two empty ones.
type AssignProductCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

// NewAssignProductCommandHandler creates a handler for product assignment.
func NewAssignProductCommandHandler(uowFactory UoWFactory, clock kernel.Clock) AssignProductCommandHandler {
	return AssignProductCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes one scan. On any failure the transaction rolls back and
// no partial assignment is observable. Returns ErrDuplicateProduct,
// ErrNoActiveGrid, ErrNoCapacity, or a parse error wrapping
// errs.ErrValueIsInvalid for malformed input.
func (h AssignProductCommandHandler) Handle(ctx context.Context, command AssignProductCommand) (AssignmentResult, error) {
	if err := command.Validate(); err != nil {
		return AssignmentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignmentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// Duplicate detection runs on the raw code before parsing, so a
	// rescanned product reports the duplicate even when its QR is damaged.
	exists, err := uow.ProductRepository().ExistsByCode(ctx, command.ProductCode())
	if err != nil {
		return AssignmentResult{}, err
	}
	if exists {
		return AssignmentResult{}, ErrDuplicateProduct
	}

	parsedCode, err := scan.ParseProductCode(command.ProductCode())
	if err != nil {
		return AssignmentResult{}, err
	}
	parsedQR, err := scan.ParseQRPayload(command.QRPayload())
	if err != nil {
		return AssignmentResult{}, err
	}

	orderCode := scan.DeriveOrderCode(command.ProductCode())
	orderDate := parsedQR.OrderDate
	orderKey := scan.ComposeOrderKey(orderCode, orderDate)

	hasActive, err := uow.GridRepository().ExistsActive(ctx)
	if err != nil {
		return AssignmentResult{}, err
	}
	if !hasActive {
		return AssignmentResult{}, ErrNoActiveGrid
	}

	targetCell, err := h.selectCell(ctx, uow.CellRepository(), orderKey)
	if err != nil {
		return AssignmentResult{}, err
	}

	now := h.clock.Now()
	oldStatus := targetCell.Status()
	if oldStatus == cell.StatusEmpty {
		if err = targetCell.AttachOrder(orderCode, orderDate, orderKey, command.OrderTotal()); err != nil {
			return AssignmentResult{}, err
		}
	}

	newProduct, err := product.NewProduct(
		kernel.NewUUID(), targetCell.ID(),
		command.ProductCode(), command.Size(), command.Color(), command.QRPayload(),
		command.SequenceNumber(), command.OrderTotal(), parsedCode, orderDate, now)
	if err != nil {
		return AssignmentResult{}, err
	}
	if err = uow.ProductRepository().Add(ctx, newProduct); err != nil {
		if errors.Is(err, ports.ErrDuplicateProductCode) {
			return AssignmentResult{}, ErrDuplicateProduct
		}
		return AssignmentResult{}, err
	}

	if err = targetCell.IncrementCount(now); err != nil {
		return AssignmentResult{}, err
	}
	if err = uow.CellRepository().Update(ctx, targetCell); err != nil {
		return AssignmentResult{}, err
	}

	if err = h.recordReceipt(ctx, uow.TrackingRepository(), targetCell, orderCode, orderDate, orderKey, command.OrderTotal(), now); err != nil {
		return AssignmentResult{}, err
	}

	if err = h.appendHistory(ctx, uow.HistoryRepository(), targetCell, newProduct, oldStatus, now); err != nil {
		return AssignmentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignmentResult{}, err
	}

	return AssignmentResult{
		GridID:       targetCell.GridID(),
		CellID:       targetCell.ID(),
		CellName:     targetCell.Name(),
		CellX:        int(targetCell.Position().X()),
		CellY:        int(targetCell.Position().Y()),
		CellStatus:   targetCell.Status(),
		OrderCode:    orderCode,
		OrderDate:    orderDate,
		OrderKey:     orderKey,
		CurrentCount: targetCell.CurrentCount(),
		TargetCount:  targetCell.TargetCount(),
		ProductID:    newProduct.ID(),
		ProductCode:  newProduct.Code(),

		ProductionArea:  parsedCode.ProductionArea,
		SizeCode:        parsedCode.SizeCode,
		OrderNumber:     parsedCode.OrderNumber,
		ProductSequence: parsedCode.ProductSequence,
	}, nil
}

// selectCell picks the cell for this scan: the order's filling cell when
// one exists, else the first empty cell across active grids. Both queries
// return the row locked for update.
func (h AssignProductCommandHandler) selectCell(ctx context.Context, cellRepo ports.CellRepository, orderKey string) (*cell.Cell, error) {
	fillingCell, err := cellRepo.GetFillingByOrderKey(ctx, orderKey)
	if err == nil {
		return fillingCell, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	emptyCell, err := cellRepo.GetFirstEmpty(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrNoCapacity
	}
	if err != nil {
		return nil, err
	}

	// Taking the empty cell's lock may have waited out a concurrent scan
	// that claimed a cell for this same order. Re-check before keeping
	// the empty cell, otherwise one order splits across two cells.
	fillingCell, err = cellRepo.GetFillingByOrderKey(ctx, orderKey)
	if err == nil {
		return fillingCell, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	return emptyCell, nil
}

// recordReceipt upserts the order tracker: created pending on the first
// scan of a new order key, then advanced by one receipt.
func (h AssignProductCommandHandler) recordReceipt(
	ctx context.Context,
	trackingRepo ports.TrackingRepository,
	targetCell *cell.Cell,
	orderCode, orderDate, orderKey string,
	orderTotal int,
	now time.Time,
) error {
	tracker, err := trackingRepo.GetActiveByKey(ctx, orderKey)
	if errors.Is(err, errs.ErrObjectNotFound) {
		tracker, err = tracking.NewTracker(
			kernel.NewUUID(), orderCode, orderDate, orderKey, targetCell.ID(), orderTotal)
		if err != nil {
			return err
		}
		if err = tracker.RecordReceipt(now); err != nil {
			return err
		}
		return trackingRepo.Add(ctx, tracker)
	}
	if err != nil {
		return err
	}

	if err = tracker.RecordReceipt(now); err != nil {
		return err
	}
	return trackingRepo.Update(ctx, tracker)
}

// appendHistory writes the product_added record and, when the scan changed
// the cell status, a status_changed record.
func (h AssignProductCommandHandler) appendHistory(
	ctx context.Context,
	historyRepo ports.HistoryRepository,
	targetCell *cell.Cell,
	newProduct *product.Product,
	oldStatus cell.Status,
	now time.Time,
) error {
	added, err := history.NewProductAddedRecord(
		kernel.NewUUID(), targetCell.ID(), targetCell.Name(),
		targetCell.OrderCode(), targetCell.OrderDate(), targetCell.OrderKey(),
		history.ProductSnapshot{
			Code:     newProduct.Code(),
			Size:     newProduct.Size(),
			Color:    newProduct.Color(),
			Sequence: newProduct.SequenceNumber(),
		},
		"", now)
	if err != nil {
		return err
	}
	if err = historyRepo.Add(ctx, added); err != nil {
		return err
	}

	if targetCell.Status() == oldStatus {
		return nil
	}

	changed, err := history.NewStatusChangedRecord(
		kernel.NewUUID(), targetCell.ID(), targetCell.Name(),
		targetCell.OrderCode(), targetCell.OrderDate(), targetCell.OrderKey(),
		history.StatusSnapshot{
			Status: oldStatus.String(),
			Count:  targetCell.CurrentCount() - 1,
		},
		history.StatusSnapshot{
			Status:   targetCell.Status().String(),
			Count:    targetCell.CurrentCount(),
			FilledAt: targetCell.FilledAt(),
		},
		"", now)
	if err != nil {
		return err
	}
	return historyRepo.Add(ctx, changed)
}
