package grid

import (
	"errors"
	"fmt"
	"strings"

	"gridstore/internal/core/domain/model/cell"
	"gridstore/internal/core/domain/model/kernel"
	"gridstore/internal/pkg/errs"
	"gridstore/internal/pkg/guard"
)

var (
	// ErrGridIsNotConstructed is returned when using an improperly initialized Grid.
	ErrGridIsNotConstructed = errors.New("Grid must be created via NewGrid or RestoreGrid constructor")

	// ErrNameIsRequired is returned when attempting to create a grid without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// CellsOccupiedError is returned when a shrink would remove cells that still
// hold products. It carries the names of the offending cells so callers can
// report them.
type CellsOccupiedError struct {
	CellNames []string
}

func (e *CellsOccupiedError) Error() string {
	return fmt.Sprintf("cannot shrink grid, cells still hold products: %s",
		strings.Join(e.CellNames, ", "))
}

// Grid is a named rectangular arrangement of storage cells. It owns cell
// generation: cells exist only as part of a grid and are created
// deterministically from its dimensions, row by row, so that "first empty
// cell" selection by insertion order is stable and testable.
type Grid struct {
	id       kernel.UUID
	name     string
	width    int
	height   int
	isActive bool

	guard guard.ConstructorGuard
}

// NewGrid creates an active grid with the given dimensions.
// Width must lie within [1, PositionMaxX+1] and height within
// [1, PositionMaxY+1]; rows are named with a single letter.
func NewGrid(id kernel.UUID, name string, width, height int) (*Grid, error) {
	g := &Grid{
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		g.setID(id),
		g.setName(name),
		g.setWidth(width),
		g.setHeight(height),
	); err != nil {
		return nil, err
	}

	return g, nil
}

// RestoreGrid reconstructs a grid from persistent storage.
func RestoreGrid(id kernel.UUID, name string, width, height int, isActive bool) (*Grid, error) {
	g := &Grid{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		g.setID(id),
		g.setName(name),
		g.setWidth(width),
		g.setHeight(height),
	); err != nil {
		return nil, err
	}

	g.isActive = isActive
	return g, nil
}

// IsEqual compares two grids by their unique identifiers.
func (g *Grid) IsEqual(other *Grid) bool {
	return other != nil && g.id.IsEqual(other.id)
}

// ID returns the grid's unique identifier.
func (g *Grid) ID() kernel.UUID {
	return g.id
}

// Name returns the grid's display name.
func (g *Grid) Name() string {
	return g.name
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// TotalCells returns width*height, the invariant cell count of the grid.
func (g *Grid) TotalCells() int {
	return g.width * g.height
}

// IsActive reports whether the grid participates in allocation.
func (g *Grid) IsActive() bool {
	return g.isActive
}

// Rename changes the grid's display name.
func (g *Grid) Rename(name string) error {
	return g.setName(name)
}

// GenerateCells creates the full set of empty cells for this grid,
// row by row (ascending y, then x), which fixes the insertion order
// used for first-empty-cell selection.
func (g *Grid) GenerateCells() ([]*cell.Cell, error) {
	cells := make([]*cell.Cell, 0, g.TotalCells())
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			position, err := kernel.NewPosition(kernel.Coordinate(x), kernel.Coordinate(y))
			if err != nil {
				return nil, err
			}

			c, err := cell.NewCell(kernel.NewUUID(), g.id, position)
			if err != nil {
				return nil, err
			}
			cells = append(cells, c)
		}
	}
	return cells, nil
}

// Resize changes the grid dimensions and reconciles the existing cell set.
// Growing yields the new cells to create; shrinking yields the cells to
// delete. A shrink is rejected with CellsOccupiedError when any removed
// cell still holds products, and the grid stays unchanged.
func (g *Grid) Resize(newWidth, newHeight int, existing []*cell.Cell) (added, removed []*cell.Cell, err error) {
	oldWidth, oldHeight := g.width, g.height
	if err = errors.Join(g.setWidth(newWidth), g.setHeight(newHeight)); err != nil {
		g.width, g.height = oldWidth, oldHeight
		return nil, nil, err
	}

	var occupied []string
	for _, c := range existing {
		if int(c.Position().X()) >= newWidth || int(c.Position().Y()) >= newHeight {
			if c.CurrentCount() > 0 {
				occupied = append(occupied, c.Name())
				continue
			}
			removed = append(removed, c)
		}
	}
	if len(occupied) > 0 {
		g.width, g.height = oldWidth, oldHeight
		return nil, nil, &CellsOccupiedError{CellNames: occupied}
	}

	kept := make(map[[2]int]bool, len(existing))
	for _, c := range existing {
		kept[[2]int{int(c.Position().X()), int(c.Position().Y())}] = true
	}

	for y := 0; y < newHeight; y++ {
		for x := 0; x < newWidth; x++ {
			if kept[[2]int{x, y}] {
				continue
			}

			position, posErr := kernel.NewPosition(kernel.Coordinate(x), kernel.Coordinate(y))
			if posErr != nil {
				return nil, nil, posErr
			}

			c, cellErr := cell.NewCell(kernel.NewUUID(), g.id, position)
			if cellErr != nil {
				return nil, nil, cellErr
			}
			added = append(added, c)
		}
	}

	return added, removed, nil
}

func (g *Grid) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	g.id = id
	return nil
}

func (g *Grid) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	g.name = name
	return nil
}

func (g *Grid) setWidth(width int) error {
	maxWidth := int(kernel.PositionMaxX) + 1
	if width < 1 || width > maxWidth {
		return errs.NewValueIsOutOfRangeError("width", width, 1, maxWidth)
	}
	g.width = width
	return nil
}

func (g *Grid) setHeight(height int) error {
	maxHeight := int(kernel.PositionMaxY) + 1
	if height < 1 || height > maxHeight {
		return errs.NewValueIsOutOfRangeError("height", height, 1, maxHeight)
	}
	g.height = height
	return nil
}

// Validate checks if the Grid was created through one of its constructors.
func (g *Grid) Validate() error {
	if g == nil {
		return ErrGridIsNotConstructed
	}
	return g.guard.Validate(ErrGridIsNotConstructed)
}
