// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"gridstore/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// GridRepoFactory provides access to the grid repository within a transaction.
	GridRepoFactory interface {
		GridRepository() ports.GridRepository
	}

	// CellRepoFactory provides access to the cell repository within a transaction.
	CellRepoFactory interface {
		CellRepository() ports.CellRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// TrackingRepoFactory provides access to the tracking repository within a transaction.
	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	// HistoryRepoFactory provides access to the history repository within a transaction.
	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	// GridUoW manages transactions for grid layout operations.
	// Used by commands that create or resize grids and their cells.
	GridUoW interface {
		TxManager
		GridRepoFactory
		CellRepoFactory
	}

	// GridUoWFactory creates new grid unit of work instances.
	GridUoWFactory interface {
		Create() GridUoW
	}

	// CellUoW manages transactions for single-cell administrative operations.
	// Every cell mutation also writes a history record, so the history
	// repository always travels with the cell repository.
	CellUoW interface {
		TxManager
		CellRepoFactory
		HistoryRepoFactory
	}

	// CellUoWFactory creates new cell unit of work instances.
	CellUoWFactory interface {
		Create() CellUoW
	}

	// UoW manages transactions spanning all five record types.
	// Used by assignment and clear, which must update the cell, its
	// products, the order tracker, and the ledger as one atomic unit.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   cellRepo := uow.CellRepository()
	//   productRepo := uow.ProductRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		GridRepoFactory
		CellRepoFactory
		ProductRepoFactory
		TrackingRepoFactory
		HistoryRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
