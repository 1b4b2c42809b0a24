package commands

import (
	"context"

	"gridstore/internal/core/domain/model/grid"
)

// CreateGridCommandHandler creates a grid and all of its cells in one
// transaction. The cells are generated row by row so insertion order
// matches the walking order used for first-empty-cell selection.
type CreateGridCommandHandler struct {
	uowFactory GridUoWFactory
}

// NewCreateGridCommandHandler creates a handler for grid creation.
func NewCreateGridCommandHandler(uowFactory GridUoWFactory) CreateGridCommandHandler {
	return CreateGridCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the grid creation command.
func (h CreateGridCommandHandler) Handle(ctx context.Context, command CreateGridCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	newGrid, err := grid.NewGrid(command.GridID(), command.Name(), command.Width(), command.Height())
	if err != nil {
		return err
	}

	cells, err := newGrid.GenerateCells()
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.GridRepository().Add(ctx, newGrid); err != nil {
		return err
	}

	if err = uow.CellRepository().AddBatch(ctx, cells); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
