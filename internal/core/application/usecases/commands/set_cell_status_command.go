package commands

import (
	"errors"

	"gridstore/internal/core/domain/model/cell"
	"gridstore/internal/core/domain/model/kernel"
	"gridstore/internal/pkg/guard"
)

var ErrSetCellStatusCommandIsNotConstructed = errors.New(
	"SetCellStatusCommand must be created via NewSetCellStatusCommand constructor",
)

// SetCellStatusCommand represents an administrative override of a cell's
// status between filling and full. The target status arrives as text from
// the outer layer and is parsed here; empty is rejected because the only
// path back to empty is the audited clear operation.
type SetCellStatusCommand struct { //nolint:recvcheck //using for validation
	cellID      kernel.UUID
	target      cell.Status
	performedBy string

	guard guard.ConstructorGuard
}

// NewSetCellStatusCommand creates a command to override a cell's status.
func NewSetCellStatusCommand(cellID kernel.UUID, target string, performedBy string) (SetCellStatusCommand, error) {
	command := SetCellStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCellID(cellID),
		command.setTarget(target),
	); err != nil {
		return SetCellStatusCommand{}, err
	}

	command.performedBy = performedBy
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCellStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetCellStatusCommandIsNotConstructed)
}

// CellID returns the identifier of the cell to override.
func (c SetCellStatusCommand) CellID() kernel.UUID {
	return c.cellID
}

// Target returns the desired status.
func (c SetCellStatusCommand) Target() cell.Status {
	return c.target
}

// PerformedBy returns the operator identity for the audit record.
func (c SetCellStatusCommand) PerformedBy() string {
	return c.performedBy
}

func (c *SetCellStatusCommand) setCellID(cellID kernel.UUID) error {
	if err := cellID.Validate(); err != nil {
		return err
	}

	c.cellID = cellID
	return nil
}

func (c *SetCellStatusCommand) setTarget(raw string) error {
	target, err := cell.StatusFromString(raw)
	if err != nil {
		return err
	}

	c.target = target
	return nil
}
