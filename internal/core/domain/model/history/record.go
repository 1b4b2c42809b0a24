package history

import (
	"errors"
	"fmt"
	"time"

	"gridstore/internal/core/domain/model/kernel"
	"gridstore/internal/pkg/guard"
)

// ErrRecordIsNotConstructed is returned when using an improperly initialized Record.
var ErrRecordIsNotConstructed = errors.New("Record must be created via one of the history constructors")

// Record is one immutable audit entry in a cell's ledger. Records are
// created by every cell mutation and never updated or deleted afterwards.
type Record struct {
	id       kernel.UUID
	cellID   kernel.UUID
	action   Action
	describe string

	orderCode string
	orderDate string
	orderKey  string

	oldPayload Payload
	newPayload Payload

	productCount int
	performedBy  string
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewProductAddedRecord records one product landing in a cell.
func NewProductAddedRecord(
	id kernel.UUID,
	cellID kernel.UUID,
	cellName string,
	orderCode, orderDate, orderKey string,
	added ProductSnapshot,
	performedBy string,
	createdAt time.Time,
) (*Record, error) {
	return newRecord(id, cellID, ActionProductAdded,
		fmt.Sprintf("product %s added to cell %s", added.Code, cellName),
		orderCode, orderDate, orderKey,
		nil, added, 1, performedBy, createdAt)
}

// NewStatusChangedRecord records a cell status transition. Covers both the
// automatic filling/full transitions and manual overrides; the snapshots
// carry the count on both sides and the filled-at stamp on the new side.
func NewStatusChangedRecord(
	id kernel.UUID,
	cellID kernel.UUID,
	cellName string,
	orderCode, orderDate, orderKey string,
	oldState, newState StatusSnapshot,
	performedBy string,
	createdAt time.Time,
) (*Record, error) {
	return newRecord(id, cellID, ActionStatusChanged,
		fmt.Sprintf("cell %s changed from %s to %s", cellName, oldState.Status, newState.Status),
		orderCode, orderDate, orderKey,
		oldState, newState,
		0, performedBy, createdAt)
}

// NewNoteUpdatedRecord records a change of the cell's free-text note.
func NewNoteUpdatedRecord(
	id kernel.UUID,
	cellID kernel.UUID,
	cellName string,
	orderCode, orderDate, orderKey string,
	oldNote, newNote string,
	performedBy string,
	createdAt time.Time,
) (*Record, error) {
	return newRecord(id, cellID, ActionNoteUpdated,
		fmt.Sprintf("note updated on cell %s", cellName),
		orderCode, orderDate, orderKey,
		NoteSnapshot{Note: oldNote}, NoteSnapshot{Note: newNote},
		0, performedBy, createdAt)
}

// NewCellClearedRecord records a destructive clear with the full snapshot
// of what the cell held, every product included.
func NewCellClearedRecord(
	id kernel.UUID,
	cellID kernel.UUID,
	cellName string,
	orderCode, orderDate, orderKey string,
	cleared ClearSnapshot,
	performedBy string,
	createdAt time.Time,
) (*Record, error) {
	return newRecord(id, cellID, ActionCellCleared,
		fmt.Sprintf("cell %s cleared, %d products removed", cellName, len(cleared.Products)),
		orderCode, orderDate, orderKey,
		cleared, nil, len(cleared.Products), performedBy, createdAt)
}

// RestoreRecord reconstructs a record from persistent storage.
func RestoreRecord(
	id kernel.UUID,
	cellID kernel.UUID,
	action Action,
	describe string,
	orderCode, orderDate, orderKey string,
	oldPayload, newPayload Payload,
	productCount int,
	performedBy string,
	createdAt time.Time,
) (*Record, error) {
	r, err := newRecord(id, cellID, action, describe, orderCode, orderDate, orderKey,
		oldPayload, newPayload, productCount, performedBy, createdAt)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func newRecord(
	id kernel.UUID,
	cellID kernel.UUID,
	action Action,
	describe string,
	orderCode, orderDate, orderKey string,
	oldPayload, newPayload Payload,
	productCount int,
	performedBy string,
	createdAt time.Time,
) (*Record, error) {
	r := &Record{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		cellID.Validate(),
		action.Validate(),
	); err != nil {
		return nil, err
	}

	r.id = id
	r.cellID = cellID
	r.action = action
	r.describe = describe
	r.orderCode = orderCode
	r.orderDate = orderDate
	r.orderKey = orderKey
	r.oldPayload = oldPayload
	r.newPayload = newPayload
	r.productCount = productCount
	r.performedBy = performedBy
	r.createdAt = createdAt
	return r, nil
}

// IsEqual compares two records by their unique identifiers.
func (r *Record) IsEqual(other *Record) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// CellID returns the identifier of the cell this record belongs to.
func (r *Record) CellID() kernel.UUID {
	return r.cellID
}

// Action returns what kind of mutation this record captures.
func (r *Record) Action() Action {
	return r.action
}

// Description returns the human-readable summary of the action.
func (r *Record) Description() string {
	return r.describe
}

// OrderCode returns the order code in the cell at the time of the action.
func (r *Record) OrderCode() string {
	return r.orderCode
}

// OrderDate returns the order date in the cell at the time of the action.
func (r *Record) OrderDate() string {
	return r.orderDate
}

// OrderKey returns the composite order identity at the time of the action.
func (r *Record) OrderKey() string {
	return r.orderKey
}

// OldPayload returns the before-state snapshot, nil for product_added.
func (r *Record) OldPayload() Payload {
	return r.oldPayload
}

// NewPayload returns the after-state snapshot, nil for cell_cleared.
func (r *Record) NewPayload() Payload {
	return r.newPayload
}

// ProductCount returns how many products the action touched.
func (r *Record) ProductCount() int {
	return r.productCount
}

// PerformedBy returns the identity of the actor, "" for system actions.
func (r *Record) PerformedBy() string {
	return r.performedBy
}

// CreatedAt returns when the record was written.
func (r *Record) CreatedAt() time.Time {
	return r.createdAt
}

// Validate checks if the Record was created through one of its constructors.
func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}
