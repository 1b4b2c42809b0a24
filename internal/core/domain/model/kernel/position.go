package kernel

import (
	"fmt"

	"gridstore/internal/pkg/errs"
	"gridstore/internal/pkg/guard"
)

// Coordinate represents a zero-based position value inside a storage grid.
// Valid coordinates range from PositionMin to PositionMaxY/PositionMaxX inclusive.
type Coordinate int

const (
	// PositionMin is the minimum valid coordinate on a storage grid.
	PositionMin Coordinate = 0
	// PositionMaxX is the maximum valid X coordinate on a storage grid.
	PositionMaxX Coordinate = 999
	// PositionMaxY is the maximum valid Y coordinate on a storage grid.
	// Rows are named with a single letter, which caps the row count at 26.
	PositionMaxY Coordinate = 25
)

// ErrPositionIsNotConstructed is returned when attempting to use an improperly
// initialized Position. Positions must be created via NewPosition.
var ErrPositionIsNotConstructed = errs.NewValueIsRequiredError(
	"position must be created via NewPosition constructor")

// Position is a value object locating one cell inside a storage grid.
// X grows along a row (columns), Y selects the row. Coordinates are
// zero-based; the human-readable cell name is derived from them.
//
// Position is immutable and safe for concurrent use.
type Position struct {
	x     Coordinate
	y     Coordinate
	guard guard.ConstructorGuard
}

// NewPosition creates a validated grid position.
// X must lie within [PositionMin, PositionMaxX] and Y within
// [PositionMin, PositionMaxY].
func NewPosition(x Coordinate, y Coordinate) (Position, error) {
	if x < PositionMin || x > PositionMaxX {
		return Position{}, errs.NewValueIsOutOfRangeError("x", x, PositionMin, PositionMaxX)
	}
	if y < PositionMin || y > PositionMaxY {
		return Position{}, errs.NewValueIsOutOfRangeError("y", y, PositionMin, PositionMaxY)
	}

	return Position{
		x:     x,
		y:     y,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// X returns the column coordinate.
func (p Position) X() Coordinate {
	return p.x
}

// Y returns the row coordinate.
func (p Position) Y() Coordinate {
	return p.y
}

// CellName derives the human-readable cell name from the position:
// the row letter followed by the one-based column number.
// (0,0) is "A1", (1,0) is "A2", (0,1) is "B1".
func (p Position) CellName() string {
	return fmt.Sprintf("%c%d", rune('A'+p.y), p.x+1)
}

// String returns the "(x, y)" representation used in operation results.
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.x, p.y)
}

// IsEqual compares two positions by their coordinates.
func (p Position) IsEqual(other Position) bool {
	return p.x == other.x && p.y == other.y
}

// Validate ensures the position was created through NewPosition.
func (p Position) Validate() error {
	return p.guard.Validate(ErrPositionIsNotConstructed)
}
