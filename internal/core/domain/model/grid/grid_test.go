package grid_test

import (
	"testing"
	"time"

	"gridstore/internal/core/domain/model/cell"
	"gridstore/internal/core/domain/model/grid"
	"gridstore/internal/core/domain/model/kernel"
	"gridstore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGrid(t *testing.T, width, height int) *grid.Grid {
	t.Helper()
	g, err := grid.NewGrid(kernel.NewUUID(), "main floor", width, height)
	require.NoError(t, err)
	return g
}

func TestNewGrid(t *testing.T) {
	t.Run("valid parameters", func(t *testing.T) {
		g, err := grid.NewGrid(kernel.NewUUID(), "main floor", 10, 5)

		require.NoError(t, err)
		assert.Equal(t, "main floor", g.Name())
		assert.Equal(t, 10, g.Width())
		assert.Equal(t, 5, g.Height())
		assert.Equal(t, 50, g.TotalCells())
		assert.True(t, g.IsActive())
		require.NoError(t, g.Validate())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := grid.NewGrid(kernel.NewUUID(), "", 10, 5)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid dimensions", func(t *testing.T) {
		testCases := []struct {
			name          string
			width, height int
		}{
			{"zero width", 0, 5},
			{"zero height", 10, 0},
			{"height above 26", 10, 27},
			{"width above 1000", 1001, 5},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := grid.NewGrid(kernel.NewUUID(), "main floor", tc.width, tc.height)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			})
		}
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var g grid.Grid
		require.ErrorIs(t, g.Validate(), grid.ErrGridIsNotConstructed)
	})
}

func TestRestoreGrid(t *testing.T) {
	g, err := grid.RestoreGrid(kernel.NewUUID(), "annex", 3, 2, false)

	require.NoError(t, err)
	assert.False(t, g.IsActive())
	require.NoError(t, g.Validate())
}

func TestGridGenerateCells(t *testing.T) {
	g := newTestGrid(t, 3, 2)

	cells, err := g.GenerateCells()

	require.NoError(t, err)
	require.Len(t, cells, 6)

	names := make([]string, 0, len(cells))
	for _, c := range cells {
		names = append(names, c.Name())
		assert.Equal(t, cell.StatusEmpty, c.Status())
		assert.True(t, g.ID().IsEqual(c.GridID()))
	}
	assert.Equal(t, []string{"A1", "A2", "A3", "B1", "B2", "B3"}, names)
}

func TestGridResize(t *testing.T) {
	now := time.Date(2025, 10, 17, 12, 0, 0, 0, time.UTC)

	t.Run("grow creates only missing cells", func(t *testing.T) {
		g := newTestGrid(t, 2, 1)
		existing, err := g.GenerateCells()
		require.NoError(t, err)

		added, removed, err := g.Resize(3, 2, existing)

		require.NoError(t, err)
		assert.Empty(t, removed)
		require.Len(t, added, 4)
		assert.Equal(t, 3, g.Width())
		assert.Equal(t, 2, g.Height())

		names := make([]string, 0, len(added))
		for _, c := range added {
			names = append(names, c.Name())
		}
		assert.Equal(t, []string{"A3", "B1", "B2", "B3"}, names)
	})

	t.Run("shrink removes empty out-of-bounds cells", func(t *testing.T) {
		g := newTestGrid(t, 3, 2)
		existing, err := g.GenerateCells()
		require.NoError(t, err)

		added, removed, err := g.Resize(2, 1, existing)

		require.NoError(t, err)
		assert.Empty(t, added)
		require.Len(t, removed, 4)
		assert.Equal(t, 2, g.Width())
		assert.Equal(t, 1, g.Height())
	})

	t.Run("shrink rejected when removed cell holds products", func(t *testing.T) {
		g := newTestGrid(t, 3, 1)
		existing, err := g.GenerateCells()
		require.NoError(t, err)

		last := existing[2]
		require.NoError(t, last.AttachOrder("VA-M-000001", "101725", "VA-M-000001-101725", 2))
		require.NoError(t, last.IncrementCount(now))

		_, _, err = g.Resize(2, 1, existing)

		var occupied *grid.CellsOccupiedError
		require.ErrorAs(t, err, &occupied)
		assert.Equal(t, []string{"A3"}, occupied.CellNames)
		assert.Equal(t, 3, g.Width())
	})

	t.Run("shrink allowed when out-of-bounds cell is filling but empty of products", func(t *testing.T) {
		g := newTestGrid(t, 3, 1)
		existing, err := g.GenerateCells()
		require.NoError(t, err)
		require.NoError(t, existing[2].AttachOrder("VA-M-000001", "101725", "VA-M-000001-101725", 2))

		_, removed, err := g.Resize(2, 1, existing)

		require.NoError(t, err)
		require.Len(t, removed, 1)
		assert.Equal(t, "A3", removed[0].Name())
	})

	t.Run("invalid dimensions leave grid unchanged", func(t *testing.T) {
		g := newTestGrid(t, 3, 2)
		existing, err := g.GenerateCells()
		require.NoError(t, err)

		_, _, err = g.Resize(0, 2, existing)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, 3, g.Width())
		assert.Equal(t, 2, g.Height())
	})
}

func TestGridRename(t *testing.T) {
	g := newTestGrid(t, 2, 2)

	require.NoError(t, g.Rename("west wing"))
	assert.Equal(t, "west wing", g.Name())

	require.Error(t, g.Rename(""))
	assert.Equal(t, "west wing", g.Name())
}
