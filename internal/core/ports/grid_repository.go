// Package ports defines repository interfaces for the storage domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"gridstore/internal/core/domain/model/grid"
	"gridstore/internal/core/domain/model/kernel"
)

// GridRepository defines the persistence contract for grid aggregates.
type GridRepository interface {
	// Add persists a new grid aggregate to storage.
	// The grid must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *grid.Grid) error

	// Update persists changes to an existing grid aggregate.
	Update(ctx context.Context, aggregate *grid.Grid) error

	// Get retrieves a grid aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*grid.Grid, error)

	// GetAll retrieves every grid ordered by creation time.
	GetAll(ctx context.Context) ([]*grid.Grid, error)

	// ExistsActive reports whether at least one active grid exists.
	// Allocation is impossible without one.
	ExistsActive(ctx context.Context) (bool, error)
}
