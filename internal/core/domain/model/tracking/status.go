package tracking

import (
	"errors"
	"fmt"

	"gridstore/internal/pkg/errs"
)

// ErrTrackerIsShipped is returned when mutating a tracker that already
// reached its terminal shipped state.
var ErrTrackerIsShipped = errors.New("order tracker is shipped and terminal")

// Status represents the aggregate progress of one order.
//
// Lifecycle: pending -> filling -> completed -> shipped. Shipped is
// terminal; if the same order key reappears later a fresh tracker is
// created rather than reopening the shipped one.
type Status int

const (
	// StatusUnknown is the zero value, not valid for persisted trackers.
	StatusUnknown Status = iota

	// StatusPending means the tracker was created but no products arrived yet.
	StatusPending

	// StatusFilling means some, but not all, declared products arrived.
	StatusFilling

	// StatusCompleted means every declared product arrived.
	StatusCompleted

	// StatusShipped means the order left the warehouse. Terminal.
	StatusShipped
)

// String returns the lowercase name of the status, "unknown" for
// unrecognized values.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusFilling:
		return "filling"
	case StatusCompleted:
		return "completed"
	case StatusShipped:
		return "shipped"
	default:
		return "unknown"
	}
}

// StatusFromString parses a status name as produced by String.
func StatusFromString(raw string) (Status, error) {
	switch raw {
	case "pending":
		return StatusPending, nil
	case "filling":
		return StatusFilling, nil
	case "completed":
		return StatusCompleted, nil
	case "shipped":
		return StatusShipped, nil
	default:
		return StatusUnknown, fmt.Errorf("%w: unknown tracker status %q",
			errs.ErrValueIsInvalid, raw)
	}
}

// Validate checks the status holds one of the defined values.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusFilling, StatusCompleted, StatusShipped:
		return nil
	default:
		return fmt.Errorf("%w: unknown tracker status %d", errs.ErrValueIsInvalid, s)
	}
}
