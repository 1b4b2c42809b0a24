package ports

import (
	"context"

	"gridstore/internal/core/domain/model/tracking"
)

// TrackingRepository defines the persistence contract for order trackers.
type TrackingRepository interface {
	// Add persists a new tracker.
	Add(ctx context.Context, aggregate *tracking.Tracker) error

	// Update persists changes to an existing tracker.
	Update(ctx context.Context, aggregate *tracking.Tracker) error

	// GetActiveByKey retrieves the latest non-shipped tracker for an order
	// key. Shipped trackers are terminal and excluded, so a recurring key
	// resolves to its fresh tracker. Returns a not-found error when no
	// active tracker exists.
	GetActiveByKey(ctx context.Context, orderKey string) (*tracking.Tracker, error)
}
