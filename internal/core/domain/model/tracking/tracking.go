package tracking

import (
	"errors"
	"time"

	"gridstore/internal/core/domain/model/kernel"
	"gridstore/internal/pkg/errs"
	"gridstore/internal/pkg/guard"
)

// ErrTrackerIsNotConstructed is returned when using an improperly initialized Tracker.
var ErrTrackerIsNotConstructed = errors.New("Tracker must be created via NewTracker or RestoreTracker constructor")

// Tracker aggregates the receipt progress of one order across scans.
// It is keyed by the composite order key (order code + order date) and
// references the cell the order occupies.
//
// Invariant: receivedCount is monotonically non-decreasing until the
// tracker ships, after which the aggregate is frozen.
type Tracker struct {
	id        kernel.UUID
	orderCode string
	orderDate string
	orderKey  string
	cellID    kernel.UUID

	totalCount    int
	receivedCount int
	status        Status

	completedAt *time.Time
	shippedAt   *time.Time

	guard guard.ConstructorGuard
}

// NewTracker creates a pending tracker for an order that just produced
// its first scan. The first receipt is recorded separately via RecordReceipt.
func NewTracker(id kernel.UUID, orderCode, orderDate, orderKey string, cellID kernel.UUID, totalCount int) (*Tracker, error) {
	t := &Tracker{
		status: StatusPending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setCellID(cellID),
		t.setOrderIdentity(orderCode, orderDate, orderKey),
		t.setTotalCount(totalCount),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTracker reconstructs a tracker from persistent storage.
func RestoreTracker(
	id kernel.UUID,
	orderCode string,
	orderDate string,
	orderKey string,
	cellID kernel.UUID,
	totalCount int,
	receivedCount int,
	status Status,
	completedAt *time.Time,
	shippedAt *time.Time,
) (*Tracker, error) {
	t := &Tracker{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setCellID(cellID),
		t.setOrderIdentity(orderCode, orderDate, orderKey),
		t.setTotalCount(totalCount),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	t.receivedCount = receivedCount
	t.status = status
	t.completedAt = completedAt
	t.shippedAt = shippedAt
	return t, nil
}

// IsEqual compares two trackers by their unique identifiers.
func (t *Tracker) IsEqual(other *Tracker) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the tracker's unique identifier.
func (t *Tracker) ID() kernel.UUID {
	return t.id
}

// OrderCode returns the order code this tracker follows.
func (t *Tracker) OrderCode() string {
	return t.orderCode
}

// OrderDate returns the order date this tracker follows.
func (t *Tracker) OrderDate() string {
	return t.orderDate
}

// OrderKey returns the composite order identity, code plus date.
func (t *Tracker) OrderKey() string {
	return t.orderKey
}

// CellID returns the identifier of the cell the order occupies.
func (t *Tracker) CellID() kernel.UUID {
	return t.cellID
}

// TotalCount returns the declared number of products in the order.
func (t *Tracker) TotalCount() int {
	return t.totalCount
}

// ReceivedCount returns how many products arrived so far.
func (t *Tracker) ReceivedCount() int {
	return t.receivedCount
}

// Status returns the tracker's current progress state.
func (t *Tracker) Status() Status {
	return t.status
}

// CompletedAt returns when the last declared product arrived, nil until then.
func (t *Tracker) CompletedAt() *time.Time {
	return t.completedAt
}

// ShippedAt returns when the order left the warehouse, nil until then.
func (t *Tracker) ShippedAt() *time.Time {
	return t.shippedAt
}

// RecordReceipt registers one received product. The tracker moves to
// filling on the first receipt and to completed once the received count
// reaches the declared total, stamping the completion time with the
// supplied instant. Rejected once shipped.
func (t *Tracker) RecordReceipt(now time.Time) error {
	if t.status == StatusShipped {
		return ErrTrackerIsShipped
	}

	t.receivedCount++
	if t.receivedCount >= t.totalCount {
		if t.status != StatusCompleted {
			completed := now
			t.completedAt = &completed
		}
		t.status = StatusCompleted
	} else {
		t.status = StatusFilling
	}
	return nil
}

// MarkShipped moves the tracker to its terminal shipped state and stamps
// the ship time. Legal from any non-shipped state: a partial order that is
// force-cleared ships with fewer products than declared.
func (t *Tracker) MarkShipped(now time.Time) error {
	if t.status == StatusShipped {
		return ErrTrackerIsShipped
	}

	t.status = StatusShipped
	shipped := now
	t.shippedAt = &shipped
	return nil
}

func (t *Tracker) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Tracker) setCellID(cellID kernel.UUID) error {
	if err := cellID.Validate(); err != nil {
		return err
	}
	t.cellID = cellID
	return nil
}

func (t *Tracker) setOrderIdentity(orderCode, orderDate, orderKey string) error {
	if orderCode == "" {
		return errs.NewValueIsRequiredError("orderCode")
	}
	if orderKey == "" {
		return errs.NewValueIsRequiredError("orderKey")
	}
	t.orderCode = orderCode
	t.orderDate = orderDate
	t.orderKey = orderKey
	return nil
}

func (t *Tracker) setTotalCount(totalCount int) error {
	if totalCount <= 0 {
		return errs.NewValueIsInvalidError("totalCount")
	}
	t.totalCount = totalCount
	return nil
}

// Validate checks if the Tracker was created through one of its constructors.
func (t *Tracker) Validate() error {
	if t == nil {
		return ErrTrackerIsNotConstructed
	}
	return t.guard.Validate(ErrTrackerIsNotConstructed)
}
