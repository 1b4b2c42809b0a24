package commands

import (
	"errors"

	"gridstore/internal/core/domain/model/kernel"
	"gridstore/internal/pkg/guard"
)

var ErrResizeGridCommandIsNotConstructed = errors.New(
	"ResizeGridCommand must be created via NewResizeGridCommand constructor",
)

// ResizeGridCommand represents a request to change a grid's dimensions and
// optionally its name. Growing adds empty cells; shrinking removes
// out-of-bounds cells and is refused while any of them still holds products.
type ResizeGridCommand struct { //nolint:recvcheck //using for validation
	gridID kernel.UUID
	name   string
	width  int
	height int

	guard guard.ConstructorGuard
}

// NewResizeGridCommand creates a command to resize the given grid.
// An empty name keeps the current one, and a zero width or height keeps
// that dimension, so a name-only update is possible. Dimension bounds are
// enforced by the grid aggregate.
func NewResizeGridCommand(gridID kernel.UUID, name string, width, height int) (ResizeGridCommand, error) {
	command := ResizeGridCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setGridID(gridID); err != nil {
		return ResizeGridCommand{}, err
	}

	command.name = name
	command.width = width
	command.height = height
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ResizeGridCommand) Validate() error {
	return c.guard.Validate(ErrResizeGridCommandIsNotConstructed)
}

// GridID returns the identifier of the grid to resize.
func (c ResizeGridCommand) GridID() kernel.UUID {
	return c.gridID
}

// Name returns the requested grid name, "" to keep the current one.
func (c ResizeGridCommand) Name() string {
	return c.name
}

// Width returns the requested number of columns, 0 to keep the current one.
func (c ResizeGridCommand) Width() int {
	return c.width
}

// Height returns the requested number of rows, 0 to keep the current one.
func (c ResizeGridCommand) Height() int {
	return c.height
}

func (c *ResizeGridCommand) setGridID(gridID kernel.UUID) error {
	if err := gridID.Validate(); err != nil {
		return err
	}

	c.gridID = gridID
	return nil
}
