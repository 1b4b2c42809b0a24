package commands

import (
	"errors"

	"gridstore/internal/core/domain/model/kernel"
	"gridstore/internal/pkg/errs"
	"gridstore/internal/pkg/guard"
)

var ErrCreateGridCommandIsNotConstructed = errors.New(
	"CreateGridCommand must be created via NewCreateGridCommand constructor",
)

// CreateGridCommand represents a request to create a storage grid together
// with its full cell set.
//
// Example:
//
//	cmd, err := NewCreateGridCommand("main floor", 10, 5)
//	if err != nil {
//	    return fmt.Errorf("invalid grid data: %w", err)
//	}
//
//	handler := NewCreateGridCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create grid: %w", err)
//	}
//	fmt.Printf("Created grid with ID: %s", cmd.GridID())
type CreateGridCommand struct { //nolint:recvcheck //using for validation
	gridID kernel.UUID
	name   string
	width  int
	height int

	guard guard.ConstructorGuard
}

// NewCreateGridCommand creates a command to create a new grid.
// Automatically generates a unique ID for the grid. Dimension bounds are
// enforced by the grid aggregate; only presence is checked here.
func NewCreateGridCommand(name string, width, height int) (CreateGridCommand, error) {
	command := CreateGridCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setGridID(kernel.NewUUID()),
		command.setName(name),
	); err != nil {
		return CreateGridCommand{}, err
	}

	command.width = width
	command.height = height
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateGridCommand) Validate() error {
	return c.guard.Validate(ErrCreateGridCommandIsNotConstructed)
}

// GridID returns the generated grid ID from the command.
func (c CreateGridCommand) GridID() kernel.UUID {
	return c.gridID
}

// Name returns the grid name from the command.
func (c CreateGridCommand) Name() string {
	return c.name
}

// Width returns the requested number of columns.
func (c CreateGridCommand) Width() int {
	return c.width
}

// Height returns the requested number of rows.
func (c CreateGridCommand) Height() int {
	return c.height
}

func (c *CreateGridCommand) setGridID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.gridID = id
	return nil
}

func (c *CreateGridCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
