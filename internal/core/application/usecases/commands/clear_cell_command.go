package commands

import (
	"errors"

	"gridstore/internal/core/domain/model/kernel"
	"gridstore/internal/pkg/guard"
)

var ErrClearCellCommandIsNotConstructed = errors.New(
	"ClearCellCommand must be created via NewClearCellCommand constructor",
)

// ClearCellCommand represents a request to empty a cell: ship its order,
// archive its products into history, and return it to the empty state.
type ClearCellCommand struct { //nolint:recvcheck //using for validation
	cellID      kernel.UUID
	performedBy string

	guard guard.ConstructorGuard
}

// NewClearCellCommand creates a command to clear the given cell.
// performedBy identifies the operator for the audit record, "" for
// system-initiated clears.
func NewClearCellCommand(cellID kernel.UUID, performedBy string) (ClearCellCommand, error) {
	command := ClearCellCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCellID(cellID); err != nil {
		return ClearCellCommand{}, err
	}

	command.performedBy = performedBy
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearCellCommand) Validate() error {
	return c.guard.Validate(ErrClearCellCommandIsNotConstructed)
}

// CellID returns the identifier of the cell to clear.
func (c ClearCellCommand) CellID() kernel.UUID {
	return c.cellID
}

// PerformedBy returns the operator identity for the audit record.
func (c ClearCellCommand) PerformedBy() string {
	return c.performedBy
}

func (c *ClearCellCommand) setCellID(cellID kernel.UUID) error {
	if err := cellID.Validate(); err != nil {
		return err
	}

	c.cellID = cellID
	return nil
}
