package cell

import (
	"fmt"

	"gridstore/internal/pkg/errs"
)

// Status represents the fill state of a storage cell.
// It implements a state machine with defined transitions:
//
//	empty ──> filling ──> full
//	  ^          │          │
//	  └──────────┴──────────┘
//	        (clear only)
//
// Manual overrides may move a cell between filling and full in either
// direction, but the only path back to empty is the destructive clear
// operation, which archives the cell's contents first.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusEmpty means the cell holds no order and no products.
	StatusEmpty

	// StatusFilling means an order is attached and the product count is
	// below the order's target.
	StatusFilling

	// StatusFull means the product count has reached the order's target.
	StatusFull
)

// statusStrings maps statuses to the lowercase names used in persistence
// and on the wire, matching the facade contract.
func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		StatusEmpty:   "empty",
		StatusFilling: "filling",
		StatusFull:    "full",
	}
}

// StatusFromString parses a lowercase status name into a Status.
// Returns an error for anything that is not empty, filling, or full.
func StatusFromString(s string) (Status, error) {
	for status, name := range statusStrings() {
		if status != StatusUnknown && name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid cell status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are empty, filling, and full.
func (s Status) Validate() error {
	if s != StatusEmpty && s != StatusFilling && s != StatusFull {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid cell status", s),
		)
	}
	return nil
}

// String returns the lowercase name of the status.
// Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Attach transitions the status to filling when an order is attached.
// Only legal from empty.
func (s Status) Attach() (Status, error) {
	if s != StatusEmpty {
		return 0, fmt.Errorf("%w: cannot attach order to %s cell", ErrInvalidTransition, s)
	}
	return StatusFilling, nil
}

// SetManual validates a manual override between filling and full.
// Transitions to empty must go through Clear; every other combination
// outside filling<->full is rejected.
func (s Status) SetManual(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if target == StatusEmpty {
		return 0, fmt.Errorf("%w: manual transition to empty is forbidden, use clear", ErrInvalidTransition)
	}
	if s != StatusFilling && s != StatusFull {
		return 0, fmt.Errorf("%w: cannot manually change status of %s cell", ErrInvalidTransition, s)
	}
	return target, nil
}

// Clear transitions the status back to empty.
// Only legal from filling or full.
func (s Status) Clear() (Status, error) {
	if s != StatusFilling && s != StatusFull {
		return 0, fmt.Errorf("%w: cannot clear %s cell", ErrInvalidTransition, s)
	}
	return StatusEmpty, nil
}
