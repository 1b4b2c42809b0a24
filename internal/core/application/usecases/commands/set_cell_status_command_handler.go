package commands

import (
	"context"

	"gridstore/internal/core/domain/model/history"
	"gridstore/internal/core/domain/model/kernel"
)

// SetCellStatusCommandHandler applies a manual status override and writes
// the status_changed audit record in the same transaction. The override is
// permitted even when the cell's product count disagrees with the target
// status; the ledger keeps who forced it and when.
type SetCellStatusCommandHandler struct {
	uowFactory CellUoWFactory
	clock      kernel.Clock
}

// NewSetCellStatusCommandHandler creates a handler for manual status overrides.
func NewSetCellStatusCommandHandler(uowFactory CellUoWFactory, clock kernel.Clock) SetCellStatusCommandHandler {
	return SetCellStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the override. Forbidden transitions surface as
// cell.ErrInvalidTransition; a no-op override (target equals current
// status) writes no history record.
func (h SetCellStatusCommandHandler) Handle(ctx context.Context, command SetCellStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	targetCell, err := uow.CellRepository().Get(ctx, command.CellID())
	if err != nil {
		return err
	}

	now := h.clock.Now()
	oldCount := targetCell.CurrentCount()
	oldStatus, err := targetCell.SetStatusManual(command.Target(), now)
	if err != nil {
		return err
	}

	if err = uow.CellRepository().Update(ctx, targetCell); err != nil {
		return err
	}

	if oldStatus != targetCell.Status() {
		record, recErr := history.NewStatusChangedRecord(
			kernel.NewUUID(), targetCell.ID(), targetCell.Name(),
			targetCell.OrderCode(), targetCell.OrderDate(), targetCell.OrderKey(),
			history.StatusSnapshot{
				Status: oldStatus.String(),
				Count:  oldCount,
			},
			history.StatusSnapshot{
				Status:   targetCell.Status().String(),
				Count:    targetCell.CurrentCount(),
				FilledAt: targetCell.FilledAt(),
			},
			command.PerformedBy(), now)
		if recErr != nil {
			return recErr
		}
		if err = uow.HistoryRepository().Add(ctx, record); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
