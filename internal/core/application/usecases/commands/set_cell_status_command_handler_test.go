package commands_test

import (
	"testing"

	"gridstore/internal/core/application/usecases/commands"
	"gridstore/internal/core/domain/model/cell"
	"gridstore/internal/core/domain/model/history"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewSetCellStatusCommand(t *testing.T) {
	t.Run("unknown target status", func(t *testing.T) {
		_, err := commands.NewSetCellStatusCommand(newEmptyCell(t).ID(), "shipped", "")
		require.Error(t, err)
	})
}

func TestSetCellStatusCommandHandler_Handle_OverridesToFull(t *testing.T) {
	// Arrange
	ctx := t.Context()

	fillingCell := newEmptyCell(t)
	require.NoError(t, fillingCell.AttachOrder("VA-M-000126", "101725", "VA-M-000126-101725", 3))

	cmd, err := commands.NewSetCellStatusCommand(fillingCell.ID(), "full", "operator")
	require.NoError(t, err)

	mockCellRepo := new(MockCellRepository)
	mockHistoryRepo := new(MockHistoryRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockCellUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("CellRepository").Return(mockCellRepo)
	mockUoW.On("HistoryRepository").Return(mockHistoryRepo)
	mockCellRepo.On("Get", ctx, fillingCell.ID()).Return(fillingCell, nil).Once()
	mockCellRepo.On("Update", ctx, fillingCell).Return(nil).Once()

	var capturedRecord *history.Record
	mockHistoryRepo.On("Add", ctx, mock.MatchedBy(func(r *history.Record) bool {
		capturedRecord = r
		return true
	})).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewSetCellStatusCommandHandler(mockFactory, testClock)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, cell.StatusFull, fillingCell.Status())
	assert.NotNil(t, fillingCell.FilledAt())

	require.NotNil(t, capturedRecord)
	assert.Equal(t, history.ActionStatusChanged, capturedRecord.Action())
	// The override forced full at count 0 of 3; both counts are in the
	// ledger so the disagreement stays visible.
	assert.Equal(t, history.StatusSnapshot{Status: "filling", Count: 0}, capturedRecord.OldPayload())
	assert.Equal(t, history.StatusSnapshot{
		Status:   "full",
		Count:    0,
		FilledAt: fillingCell.FilledAt(),
	}, capturedRecord.NewPayload())
	assert.Equal(t, "operator", capturedRecord.PerformedBy())

	mockUoW.AssertExpectations(t)
	mockCellRepo.AssertExpectations(t)
	mockHistoryRepo.AssertExpectations(t)
}

func TestSetCellStatusCommandHandler_Handle_EmptyCellRejected(t *testing.T) {
	// Arrange
	ctx := t.Context()
	emptyCell := newEmptyCell(t)

	cmd, err := commands.NewSetCellStatusCommand(emptyCell.ID(), "full", "")
	require.NoError(t, err)

	mockCellRepo := new(MockCellRepository)
	mockHistoryRepo := new(MockHistoryRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockCellUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("CellRepository").Return(mockCellRepo)
	mockCellRepo.On("Get", ctx, emptyCell.ID()).Return(emptyCell, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewSetCellStatusCommandHandler(mockFactory, testClock)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, cell.ErrInvalidTransition)
	mockHistoryRepo.AssertNotCalled(t, "Add")
	mockUoW.AssertExpectations(t)
}
