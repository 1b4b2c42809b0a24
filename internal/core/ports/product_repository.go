package ports

import (
	"context"
	"errors"

	"gridstore/internal/core/domain/model/kernel"
	"gridstore/internal/core/domain/model/product"
)

// ErrDuplicateProductCode is returned by ProductRepository.Add when the
// unique constraint on the product code fires. It is the backstop for the
// duplicate pre-check racing with a concurrent identical scan.
var ErrDuplicateProductCode = errors.New("product code already exists")

// ProductRepository defines the persistence contract for products.
type ProductRepository interface {
	// Add persists a new product. Returns ErrDuplicateProductCode when a
	// product with the same code already exists anywhere in the system.
	Add(ctx context.Context, aggregate *product.Product) error

	// ExistsByCode reports whether any product carries the given code.
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// GetByCell retrieves all products sitting in a cell, in arrival order.
	GetByCell(ctx context.Context, cellID kernel.UUID) ([]*product.Product, error)

	// DeleteByCell removes every product of a cell. Called by clear after
	// the products have been snapshotted into history.
	DeleteByCell(ctx context.Context, cellID kernel.UUID) error
}
