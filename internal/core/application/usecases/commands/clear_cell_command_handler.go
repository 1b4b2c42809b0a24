package commands

import (
	"context"
	"errors"
	"time"

	"gridstore/internal/core/domain/model/cell"
	"gridstore/internal/core/domain/model/history"
	"gridstore/internal/core/domain/model/kernel"
	"gridstore/internal/pkg/errs"
)

// ClearCellCommandHandler empties a cell as one atomic unit: the order
// tracker ships, every product is snapshotted into a cell_cleared history
// record and deleted, and the cell returns to empty.
type ClearCellCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

// NewClearCellCommandHandler creates a handler for cell clearing.
func NewClearCellCommandHandler(uowFactory UoWFactory, clock kernel.Clock) ClearCellCommandHandler {
	return ClearCellCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the clear. Returns false without error, and without
// writing history, when the cell does not exist or is already empty.
func (h ClearCellCommandHandler) Handle(ctx context.Context, command ClearCellCommand) (bool, error) {
	if err := command.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	targetCell, err := uow.CellRepository().Get(ctx, command.CellID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if targetCell.Status() == cell.StatusEmpty {
		return false, nil
	}

	products, err := uow.ProductRepository().GetByCell(ctx, targetCell.ID())
	if err != nil {
		return false, err
	}

	snapshots := make([]history.ProductSnapshot, 0, len(products))
	for _, p := range products {
		snapshots = append(snapshots, history.ProductSnapshot{
			Code:     p.Code(),
			Size:     p.Size(),
			Color:    p.Color(),
			Sequence: p.SequenceNumber(),
		})
	}

	now := h.clock.Now()
	cleared, err := history.NewCellClearedRecord(
		kernel.NewUUID(), targetCell.ID(), targetCell.Name(),
		targetCell.OrderCode(), targetCell.OrderDate(), targetCell.OrderKey(),
		history.ClearSnapshot{
			Status:       targetCell.Status().String(),
			OrderCode:    targetCell.OrderCode(),
			OrderDate:    targetCell.OrderDate(),
			CurrentCount: targetCell.CurrentCount(),
			TargetCount:  targetCell.TargetCount(),
			Note:         targetCell.Note(),
			Products:     snapshots,
		},
		command.PerformedBy(), now)
	if err != nil {
		return false, err
	}
	if err = uow.HistoryRepository().Add(ctx, cleared); err != nil {
		return false, err
	}

	if err = h.shipTracker(ctx, uow, targetCell.OrderKey(), now); err != nil {
		return false, err
	}

	if err = uow.ProductRepository().DeleteByCell(ctx, targetCell.ID()); err != nil {
		return false, err
	}

	if err = targetCell.Clear(now); err != nil {
		return false, err
	}
	if err = uow.CellRepository().Update(ctx, targetCell); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}

// shipTracker moves the cell's order tracker to its terminal state.
// A cell can legitimately lack a tracker, e.g. after a manual status
// override on a cell whose tracker already shipped, so absence is not an
// error.
func (h ClearCellCommandHandler) shipTracker(ctx context.Context, uow UoW, orderKey string, now time.Time) error {
	if orderKey == "" {
		return nil
	}

	tracker, err := uow.TrackingRepository().GetActiveByKey(ctx, orderKey)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err = tracker.MarkShipped(now); err != nil {
		return err
	}
	return uow.TrackingRepository().Update(ctx, tracker)
}
