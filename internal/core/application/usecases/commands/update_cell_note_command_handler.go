package commands

import (
	"context"

	"gridstore/internal/core/domain/model/history"
	"gridstore/internal/core/domain/model/kernel"
)

// UpdateCellNoteCommandHandler replaces a cell's note and writes the
// note_updated audit record in the same transaction.
type UpdateCellNoteCommandHandler struct {
	uowFactory CellUoWFactory
	clock      kernel.Clock
}

// NewUpdateCellNoteCommandHandler creates a handler for note updates.
func NewUpdateCellNoteCommandHandler(uowFactory CellUoWFactory, clock kernel.Clock) UpdateCellNoteCommandHandler {
	return UpdateCellNoteCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the note update. Setting the note to its current value
// writes no history record.
func (h UpdateCellNoteCommandHandler) Handle(ctx context.Context, command UpdateCellNoteCommand) error {
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

	oldNote := targetCell.UpdateNote(command.Note())
	if oldNote == command.Note() {
		return nil
	}

	if err = uow.CellRepository().Update(ctx, targetCell); err != nil {
		return err
	}

	record, err := history.NewNoteUpdatedRecord(
		kernel.NewUUID(), targetCell.ID(), targetCell.Name(),
		targetCell.OrderCode(), targetCell.OrderDate(), targetCell.OrderKey(),
		oldNote, targetCell.Note(),
		command.PerformedBy(), h.clock.Now())
	if err != nil {
		return err
	}
	if err = uow.HistoryRepository().Add(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
