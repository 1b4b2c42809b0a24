package history

import (
	"fmt"

	"gridstore/internal/pkg/errs"
)

// Action identifies what happened to a cell in one audit record.
type Action int

const (
	// ActionUnknown is the zero value, not valid for persisted records.
	ActionUnknown Action = iota

	// ActionProductAdded records one product landing in the cell.
	ActionProductAdded

	// ActionStatusChanged records a cell status transition, automatic or manual.
	ActionStatusChanged

	// ActionNoteUpdated records a change of the cell's free-text note.
	ActionNoteUpdated

	// ActionCellCleared records a destructive clear, with every product
	// that was in the cell snapshotted into the record.
	ActionCellCleared
)

// String returns the snake_case name of the action, "unknown" for
// unrecognized values.
func (a Action) String() string {
	switch a {
	case ActionProductAdded:
		return "product_added"
	case ActionStatusChanged:
		return "status_changed"
	case ActionNoteUpdated:
		return "note_updated"
	case ActionCellCleared:
		return "cell_cleared"
	default:
		return "unknown"
	}
}

// ActionFromString parses an action name as produced by String.
func ActionFromString(raw string) (Action, error) {
	switch raw {
	case "product_added":
		return ActionProductAdded, nil
	case "status_changed":
		return ActionStatusChanged, nil
	case "note_updated":
		return ActionNoteUpdated, nil
	case "cell_cleared":
		return ActionCellCleared, nil
	default:
		return ActionUnknown, fmt.Errorf("%w: unknown history action %q",
			errs.ErrValueIsInvalid, raw)
	}
}

// Validate checks the action holds one of the defined values.
func (a Action) Validate() error {
	switch a {
	case ActionProductAdded, ActionStatusChanged, ActionNoteUpdated, ActionCellCleared:
		return nil
	default:
		return fmt.Errorf("%w: unknown history action %d", errs.ErrValueIsInvalid, a)
	}
}
