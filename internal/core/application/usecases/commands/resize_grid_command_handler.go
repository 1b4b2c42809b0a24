package commands

import (
	"context"
)

// ResizeGridCommandHandler changes a grid's dimensions and reconciles its
// cell set in one transaction. A shrink that would drop cells still holding
// products fails with grid.CellsOccupiedError and changes nothing.
type ResizeGridCommandHandler struct {
	uowFactory GridUoWFactory
}

// NewResizeGridCommandHandler creates a handler for grid resizing.
func NewResizeGridCommandHandler(uowFactory GridUoWFactory) ResizeGridCommandHandler {
	return ResizeGridCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the resize command.
func (h ResizeGridCommandHandler) Handle(ctx context.Context, command ResizeGridCommand) error {
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

	targetGrid, err := uow.GridRepository().Get(ctx, command.GridID())
	if err != nil {
		return err
	}

	if command.Name() != "" {
		if err = targetGrid.Rename(command.Name()); err != nil {
			return err
		}
	}

	cells, err := uow.CellRepository().GetByGrid(ctx, targetGrid.ID())
	if err != nil {
		return err
	}

	// Omitted dimensions keep their current value, so the command can
	// carry a name change alone.
	width, height := command.Width(), command.Height()
	if width == 0 {
		width = targetGrid.Width()
	}
	if height == 0 {
		height = targetGrid.Height()
	}

	added, removed, err := targetGrid.Resize(width, height, cells)
	if err != nil {
		return err
	}

	if err = uow.GridRepository().Update(ctx, targetGrid); err != nil {
		return err
	}

	if len(removed) > 0 {
		if err = uow.CellRepository().DeleteBatch(ctx, removed); err != nil {
			return err
		}
	}
	if len(added) > 0 {
		if err = uow.CellRepository().AddBatch(ctx, added); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
