package cell

import (
	"errors"
	"fmt"
	"time"

	"gridstore/internal/core/domain/model/kernel"
	"gridstore/internal/pkg/errs"
	"gridstore/internal/pkg/guard"
)

var (
	// ErrCellIsNotConstructed is returned when using an improperly initialized Cell.
	ErrCellIsNotConstructed = errors.New("Cell must be created via NewCell or RestoreCell constructor")

	// ErrInvalidTransition is returned when an operation is attempted on a
	// cell whose status forbids it: attaching an order to a non-empty cell,
	// clearing an already-empty cell, or manually forcing a cell to empty.
	ErrInvalidTransition = errors.New("invalid cell status transition")

	// ErrTargetIsInvalid is returned when an order is attached with a
	// non-positive target product count.
	ErrTargetIsInvalid = errs.NewValueIsInvalidError("target product count")
)

// Cell is one addressable storage slot inside a grid. It owns the status
// state machine and the product-count bookkeeping for the single order that
// may occupy it at a time.
//
// Invariants:
//   - an empty cell carries no order identity and a zero count
//   - once an order is attached, currentCount never exceeds targetCount
//   - the only path from filling/full back to empty is Clear
type Cell struct {
	id       kernel.UUID
	gridID   kernel.UUID
	position kernel.Position
	name     string

	status    Status
	orderCode string
	orderDate string
	orderKey  string

	currentCount int
	targetCount  int
	note         string

	filledAt  *time.Time
	clearedAt *time.Time

	guard guard.ConstructorGuard
}

// NewCell creates an empty cell at the given position of a grid.
// The human-readable name is derived from the position.
func NewCell(id kernel.UUID, gridID kernel.UUID, position kernel.Position) (*Cell, error) {
	c := &Cell{
		status: StatusEmpty,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setGridID(gridID),
		c.setPosition(position),
	); err != nil {
		return nil, err
	}

	c.name = position.CellName()
	return c, nil
}

// RestoreCell reconstructs a cell from persistent storage with its full
// operational state, including an in-progress order if one is attached.
func RestoreCell(
	id kernel.UUID,
	gridID kernel.UUID,
	position kernel.Position,
	status Status,
	orderCode string,
	orderDate string,
	orderKey string,
	currentCount int,
	targetCount int,
	note string,
	filledAt *time.Time,
	clearedAt *time.Time,
) (*Cell, error) {
	c := &Cell{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setGridID(gridID),
		c.setPosition(position),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	c.name = position.CellName()
	c.status = status
	c.orderCode = orderCode
	c.orderDate = orderDate
	c.orderKey = orderKey
	c.currentCount = currentCount
	c.targetCount = targetCount
	c.note = note
	c.filledAt = filledAt
	c.clearedAt = clearedAt
	return c, nil
}

// IsEqual compares two cells by their unique identifiers.
func (c *Cell) IsEqual(other *Cell) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the cell's unique identifier.
func (c *Cell) ID() kernel.UUID {
	return c.id
}

// GridID returns the identifier of the grid owning this cell.
func (c *Cell) GridID() kernel.UUID {
	return c.gridID
}

// Position returns the cell's coordinates inside its grid.
func (c *Cell) Position() kernel.Position {
	return c.position
}

// Name returns the human-readable cell name, e.g. "A1".
func (c *Cell) Name() string {
	return c.name
}

// Status returns the current fill state of the cell.
func (c *Cell) Status() Status {
	return c.status
}

// OrderCode returns the code of the in-progress order, or "" when empty.
func (c *Cell) OrderCode() string {
	return c.orderCode
}

// OrderDate returns the date of the in-progress order, or "" when empty.
func (c *Cell) OrderDate() string {
	return c.orderDate
}

// OrderKey returns the composite identity of the in-progress order, or "" when empty.
func (c *Cell) OrderKey() string {
	return c.orderKey
}

// CurrentCount returns the number of products currently in the cell.
func (c *Cell) CurrentCount() int {
	return c.currentCount
}

// TargetCount returns the declared total of the in-progress order, or 0 when empty.
func (c *Cell) TargetCount() int {
	return c.targetCount
}

// Note returns the free-text note attached to the cell.
func (c *Cell) Note() string {
	return c.note
}

// FilledAt returns when the cell last reached full, nil if never or reset.
func (c *Cell) FilledAt() *time.Time {
	return c.filledAt
}

// ClearedAt returns when the cell was last cleared, nil if never.
func (c *Cell) ClearedAt() *time.Time {
	return c.clearedAt
}

// AttachOrder claims an empty cell for an order. It records the order
// identity and target count and moves the cell to filling.
// Only legal from empty; any other state signals ErrInvalidTransition
// and performs no mutation.
func (c *Cell) AttachOrder(orderCode, orderDate, orderKey string, targetCount int) error {
	if orderCode == "" {
		return errs.NewValueIsRequiredError("orderCode")
	}
	if orderKey == "" {
		return errs.NewValueIsRequiredError("orderKey")
	}
	if targetCount <= 0 {
		return fmt.Errorf("%w: %d is not greater than 0", ErrTargetIsInvalid, targetCount)
	}

	newStatus, err := c.status.Attach()
	if err != nil {
		return err
	}

	c.status = newStatus
	c.orderCode = orderCode
	c.orderDate = orderDate
	c.orderKey = orderKey
	c.targetCount = targetCount
	return nil
}

// IncrementCount registers one received product. Only legal while filling.
// When the count reaches the target the cell transitions to full and the
// filled timestamp is stamped with the supplied instant.
func (c *Cell) IncrementCount(now time.Time) error {
	if c.status != StatusFilling {
		return fmt.Errorf("%w: cannot add product to %s cell", ErrInvalidTransition, c.status)
	}

	c.currentCount++
	if c.currentCount >= c.targetCount {
		c.status = StatusFull
		filled := now
		c.filledAt = &filled
	}
	return nil
}

// SetStatusManual applies an administrative override between filling and
// full. Switching to full stamps the filled timestamp exactly as the
// automatic path does. Transitions to empty are rejected: Clear is the
// only path that destroys order data. Returns the previous status.
func (c *Cell) SetStatusManual(target Status, now time.Time) (Status, error) {
	newStatus, err := c.status.SetManual(target)
	if err != nil {
		return StatusUnknown, err
	}

	old := c.status
	c.status = newStatus
	if newStatus == StatusFull && old != StatusFull {
		filled := now
		c.filledAt = &filled
	}
	return old, nil
}

// UpdateNote replaces the cell's free-text note and returns the old note.
func (c *Cell) UpdateNote(note string) string {
	old := c.note
	c.note = note
	return old
}

// Clear resets the cell to empty: the order identity, counts, and note are
// wiped and the cleared timestamp is stamped. Only legal from filling or
// full; clearing an empty cell signals ErrInvalidTransition and performs
// no mutation. Archiving the cell's products is the caller's duty and must
// happen before Clear.
func (c *Cell) Clear(now time.Time) error {
	newStatus, err := c.status.Clear()
	if err != nil {
		return err
	}

	c.status = newStatus
	c.orderCode = ""
	c.orderDate = ""
	c.orderKey = ""
	c.currentCount = 0
	c.targetCount = 0
	c.note = ""
	c.filledAt = nil
	cleared := now
	c.clearedAt = &cleared
	return nil
}

func (c *Cell) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Cell) setGridID(gridID kernel.UUID) error {
	if err := gridID.Validate(); err != nil {
		return err
	}
	c.gridID = gridID
	return nil
}

func (c *Cell) setPosition(position kernel.Position) error {
	if err := position.Validate(); err != nil {
		return err
	}
	c.position = position
	return nil
}

// Validate checks if the Cell was created through one of its constructors.
func (c *Cell) Validate() error {
	if c == nil {
		return ErrCellIsNotConstructed
	}
	return c.guard.Validate(ErrCellIsNotConstructed)
}
