package cell_test

import (
	"testing"
	"time"

	"gridstore/internal/core/domain/model/cell"
	"gridstore/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCell(t *testing.T) *cell.Cell {
	t.Helper()
	position, err := kernel.NewPosition(0, 0)
	require.NoError(t, err)

	c, err := cell.NewCell(kernel.NewUUID(), kernel.NewUUID(), position)
	require.NoError(t, err)
	return c
}

func TestNewCell(t *testing.T) {
	t.Run("valid parameters", func(t *testing.T) {
		position, err := kernel.NewPosition(1, 1)
		require.NoError(t, err)

		c, err := cell.NewCell(kernel.NewUUID(), kernel.NewUUID(), position)

		require.NoError(t, err)
		assert.Equal(t, cell.StatusEmpty, c.Status())
		assert.Equal(t, "B2", c.Name())
		assert.Zero(t, c.CurrentCount())
		assert.Zero(t, c.TargetCount())
		assert.Empty(t, c.OrderKey())
		assert.Nil(t, c.FilledAt())
		require.NoError(t, c.Validate())
	})

	t.Run("invalid id", func(t *testing.T) {
		position, err := kernel.NewPosition(0, 0)
		require.NoError(t, err)

		_, err = cell.NewCell(kernel.UUID{}, kernel.NewUUID(), position)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var c cell.Cell
		require.ErrorIs(t, c.Validate(), cell.ErrCellIsNotConstructed)
	})
}

func TestCellAttachOrder(t *testing.T) {
	t.Run("attaches to empty cell", func(t *testing.T) {
		c := newTestCell(t)

		err := c.AttachOrder("VA-M-000001", "101725", "VA-M-000001-101725", 2)

		require.NoError(t, err)
		assert.Equal(t, cell.StatusFilling, c.Status())
		assert.Equal(t, "VA-M-000001", c.OrderCode())
		assert.Equal(t, "101725", c.OrderDate())
		assert.Equal(t, "VA-M-000001-101725", c.OrderKey())
		assert.Equal(t, 2, c.TargetCount())
		assert.Zero(t, c.CurrentCount())
	})

	t.Run("rejects non-empty cell without mutation", func(t *testing.T) {
		c := newTestCell(t)
		require.NoError(t, c.AttachOrder("VA-M-000001", "101725", "VA-M-000001-101725", 2))

		err := c.AttachOrder("VA-L-000002", "101725", "VA-L-000002-101725", 1)

		require.ErrorIs(t, err, cell.ErrInvalidTransition)
		assert.Equal(t, "VA-M-000001", c.OrderCode())
		assert.Equal(t, 2, c.TargetCount())
	})

	t.Run("rejects invalid target", func(t *testing.T) {
		c := newTestCell(t)
		err := c.AttachOrder("VA-M-000001", "101725", "VA-M-000001-101725", 0)
		require.ErrorIs(t, err, cell.ErrTargetIsInvalid)
		assert.Equal(t, cell.StatusEmpty, c.Status())
	})
}

func TestCellIncrementCount(t *testing.T) {
	now := time.Date(2025, 10, 17, 12, 0, 0, 0, time.UTC)

	t.Run("stays filling below target", func(t *testing.T) {
		c := newTestCell(t)
		require.NoError(t, c.AttachOrder("VA-M-000001", "101725", "VA-M-000001-101725", 2))

		require.NoError(t, c.IncrementCount(now))

		assert.Equal(t, 1, c.CurrentCount())
		assert.Equal(t, cell.StatusFilling, c.Status())
		assert.Nil(t, c.FilledAt())
	})

	t.Run("reaching target transitions to full and stamps filledAt", func(t *testing.T) {
		c := newTestCell(t)
		require.NoError(t, c.AttachOrder("VA-M-000001", "101725", "VA-M-000001-101725", 2))
		require.NoError(t, c.IncrementCount(now))

		require.NoError(t, c.IncrementCount(now))

		assert.Equal(t, 2, c.CurrentCount())
		assert.Equal(t, cell.StatusFull, c.Status())
		require.NotNil(t, c.FilledAt())
		assert.Equal(t, now, *c.FilledAt())
	})

	t.Run("rejected on empty cell", func(t *testing.T) {
		c := newTestCell(t)
		err := c.IncrementCount(now)
		require.ErrorIs(t, err, cell.ErrInvalidTransition)
		assert.Zero(t, c.CurrentCount())
	})

	t.Run("rejected on full cell keeps count at target", func(t *testing.T) {
		c := newTestCell(t)
		require.NoError(t, c.AttachOrder("VA-L-000002", "101725", "VA-L-000002-101725", 1))
		require.NoError(t, c.IncrementCount(now))

		err := c.IncrementCount(now)

		require.ErrorIs(t, err, cell.ErrInvalidTransition)
		assert.Equal(t, 1, c.CurrentCount())
	})
}

func TestCellSetStatusManual(t *testing.T) {
	now := time.Date(2025, 10, 17, 12, 0, 0, 0, time.UTC)

	t.Run("filling to full stamps filledAt", func(t *testing.T) {
		c := newTestCell(t)
		require.NoError(t, c.AttachOrder("VA-M-000001", "101725", "VA-M-000001-101725", 3))

		old, err := c.SetStatusManual(cell.StatusFull, now)

		require.NoError(t, err)
		assert.Equal(t, cell.StatusFilling, old)
		assert.Equal(t, cell.StatusFull, c.Status())
		require.NotNil(t, c.FilledAt())
	})

	t.Run("to empty is rejected", func(t *testing.T) {
		c := newTestCell(t)
		require.NoError(t, c.AttachOrder("VA-M-000001", "101725", "VA-M-000001-101725", 3))

		_, err := c.SetStatusManual(cell.StatusEmpty, now)

		require.ErrorIs(t, err, cell.ErrInvalidTransition)
		assert.Equal(t, cell.StatusFilling, c.Status())
	})
}

func TestCellClear(t *testing.T) {
	now := time.Date(2025, 10, 17, 12, 0, 0, 0, time.UTC)

	t.Run("resets order data and stamps clearedAt", func(t *testing.T) {
		c := newTestCell(t)
		require.NoError(t, c.AttachOrder("VA-M-000001", "101725", "VA-M-000001-101725", 1))
		require.NoError(t, c.IncrementCount(now))
		c.UpdateNote("fragile")

		require.NoError(t, c.Clear(now))

		assert.Equal(t, cell.StatusEmpty, c.Status())
		assert.Empty(t, c.OrderCode())
		assert.Empty(t, c.OrderDate())
		assert.Empty(t, c.OrderKey())
		assert.Zero(t, c.CurrentCount())
		assert.Zero(t, c.TargetCount())
		assert.Empty(t, c.Note())
		assert.Nil(t, c.FilledAt())
		require.NotNil(t, c.ClearedAt())
		assert.Equal(t, now, *c.ClearedAt())
	})

	t.Run("rejected on empty cell", func(t *testing.T) {
		c := newTestCell(t)
		err := c.Clear(now)
		require.ErrorIs(t, err, cell.ErrInvalidTransition)
		assert.Nil(t, c.ClearedAt())
	})
}

func TestCellUpdateNote(t *testing.T) {
	c := newTestCell(t)

	old := c.UpdateNote("check label")
	assert.Empty(t, old)
	assert.Equal(t, "check label", c.Note())

	old = c.UpdateNote("")
	assert.Equal(t, "check label", old)
	assert.Empty(t, c.Note())
}
