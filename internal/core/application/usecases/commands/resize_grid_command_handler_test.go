package commands_test

import (
	"testing"

	"gridstore/internal/core/application/usecases/commands"
	"gridstore/internal/core/domain/model/cell"
	"gridstore/internal/core/domain/model/grid"
	"gridstore/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPersistedGrid(t *testing.T, width, height int) (*grid.Grid, []*cell.Cell) {
	t.Helper()
	g, err := grid.NewGrid(kernel.NewUUID(), "main floor", width, height)
	require.NoError(t, err)

	cells, err := g.GenerateCells()
	require.NoError(t, err)
	return g, cells
}

func TestResizeGridCommandHandler_Handle_Grow(t *testing.T) {
	// Arrange
	ctx := t.Context()
	g, cells := newPersistedGrid(t, 2, 1)

	cmd, err := commands.NewResizeGridCommand(g.ID(), "", 3, 1)
	require.NoError(t, err)

	mockGridRepo := new(MockGridRepository)
	mockCellRepo := new(MockCellRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockGridUoWFactory)

	var addedCells []*cell.Cell

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("GridRepository").Return(mockGridRepo)
	mockUoW.On("CellRepository").Return(mockCellRepo)
	mockGridRepo.On("Get", ctx, g.ID()).Return(g, nil).Once()
	mockCellRepo.On("GetByGrid", ctx, g.ID()).Return(cells, nil).Once()
	mockGridRepo.On("Update", ctx, g).Return(nil).Once()
	mockCellRepo.On("AddBatch", ctx, mock.MatchedBy(func(cells []*cell.Cell) bool {
		addedCells = cells
		return true
	})).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewResizeGridCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	require.Len(t, addedCells, 1)
	assert.Equal(t, "A3", addedCells[0].Name())
	mockCellRepo.AssertNotCalled(t, "DeleteBatch")

	mockUoW.AssertExpectations(t)
	mockGridRepo.AssertExpectations(t)
	mockCellRepo.AssertExpectations(t)
}

func TestResizeGridCommandHandler_Handle_NameOnlyUpdate(t *testing.T) {
	// Arrange: omitted dimensions bind to zero and must keep the layout.
	ctx := t.Context()
	g, cells := newPersistedGrid(t, 2, 1)

	cmd, err := commands.NewResizeGridCommand(g.ID(), "returns floor", 0, 0)
	require.NoError(t, err)

	mockGridRepo := new(MockGridRepository)
	mockCellRepo := new(MockCellRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockGridUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("GridRepository").Return(mockGridRepo)
	mockUoW.On("CellRepository").Return(mockCellRepo)
	mockGridRepo.On("Get", ctx, g.ID()).Return(g, nil).Once()
	mockCellRepo.On("GetByGrid", ctx, g.ID()).Return(cells, nil).Once()
	mockGridRepo.On("Update", ctx, g).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewResizeGridCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "returns floor", g.Name())
	assert.Equal(t, 2, g.Width())
	assert.Equal(t, 1, g.Height())
	mockCellRepo.AssertNotCalled(t, "AddBatch")
	mockCellRepo.AssertNotCalled(t, "DeleteBatch")

	mockUoW.AssertExpectations(t)
	mockGridRepo.AssertExpectations(t)
}

func TestResizeGridCommandHandler_Handle_ShrinkWithOccupiedCells(t *testing.T) {
	// Arrange
	ctx := t.Context()
	g, cells := newPersistedGrid(t, 3, 1)
	require.NoError(t, cells[2].AttachOrder("VA-M-000126", "101725", "VA-M-000126-101725", 2))
	require.NoError(t, cells[2].IncrementCount(testClock.Now()))

	cmd, err := commands.NewResizeGridCommand(g.ID(), "", 2, 1)
	require.NoError(t, err)

	mockGridRepo := new(MockGridRepository)
	mockCellRepo := new(MockCellRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockGridUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("GridRepository").Return(mockGridRepo)
	mockUoW.On("CellRepository").Return(mockCellRepo)
	mockGridRepo.On("Get", ctx, g.ID()).Return(g, nil).Once()
	mockCellRepo.On("GetByGrid", ctx, g.ID()).Return(cells, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewResizeGridCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	var occupied *grid.CellsOccupiedError
	require.ErrorAs(t, err, &occupied)
	assert.Equal(t, []string{"A3"}, occupied.CellNames)
	assert.Equal(t, 3, g.Width())
	mockGridRepo.AssertNotCalled(t, "Update")

	mockUoW.AssertExpectations(t)
}
