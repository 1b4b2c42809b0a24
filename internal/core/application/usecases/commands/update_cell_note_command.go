package commands

import (
	"errors"

	"gridstore/internal/core/domain/model/kernel"
	"gridstore/internal/pkg/guard"
)

var ErrUpdateCellNoteCommandIsNotConstructed = errors.New(
	"UpdateCellNoteCommand must be created via NewUpdateCellNoteCommand constructor",
)

// UpdateCellNoteCommand represents a request to replace a cell's free-text
// note. An empty note is valid and removes the existing one.
type UpdateCellNoteCommand struct { //nolint:recvcheck //using for validation
	cellID      kernel.UUID
	note        string
	performedBy string

	guard guard.ConstructorGuard
}

// NewUpdateCellNoteCommand creates a command to update the given cell's note.
func NewUpdateCellNoteCommand(cellID kernel.UUID, note, performedBy string) (UpdateCellNoteCommand, error) {
	command := UpdateCellNoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCellID(cellID); err != nil {
		return UpdateCellNoteCommand{}, err
	}

	command.note = note
	command.performedBy = performedBy
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCellNoteCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCellNoteCommandIsNotConstructed)
}

// CellID returns the identifier of the cell to annotate.
func (c UpdateCellNoteCommand) CellID() kernel.UUID {
	return c.cellID
}

// Note returns the new note text.
func (c UpdateCellNoteCommand) Note() string {
	return c.note
}

// PerformedBy returns the operator identity for the audit record.
func (c UpdateCellNoteCommand) PerformedBy() string {
	return c.performedBy
}

func (c *UpdateCellNoteCommand) setCellID(cellID kernel.UUID) error {
	if err := cellID.Validate(); err != nil {
		return err
	}

	c.cellID = cellID
	return nil
}
