package queries

import (
	"errors"
	"time"

	"gridstore/internal/core/domain/model/kernel"
	"gridstore/internal/pkg/errs"
	"gridstore/internal/pkg/guard"
)

var ErrGetOrderByKeyQueryIsNotConstructed = errors.New(
	"GetOrderByKeyQuery must be created via NewGetOrderByKeyQuery constructor",
)

// GetOrderByKeyQuery retrieves the latest tracker for one order key.
// A recurring key resolves to its newest tracker, shipped or not.
type GetOrderByKeyQuery struct { //nolint:recvcheck //using for validation
	orderKey string

	guard guard.ConstructorGuard
}

// NewGetOrderByKeyQuery creates a query for the given composite order key.
func NewGetOrderByKeyQuery(orderKey string) (GetOrderByKeyQuery, error) {
	query := GetOrderByKeyQuery{
		guard: guard.NewConstructorGuard(),
	}

	if orderKey == "" {
		return GetOrderByKeyQuery{}, errs.NewValueIsRequiredError("orderKey")
	}

	query.orderKey = orderKey
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByKeyQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByKeyQueryIsNotConstructed)
}

// OrderKey returns the composite order key to look up.
func (q GetOrderByKeyQuery) OrderKey() string {
	return q.orderKey
}

// OrderResponse represents one order tracker with the cell it occupies.
// Shared by the single-key lookup and the order listing.
type OrderResponse struct {
	ID            kernel.UUID
	OrderCode     string
	OrderDate     string
	OrderKey      string
	CellID        kernel.UUID
	CellName      string
	TotalCount    int
	ReceivedCount int
	Status        string
	CompletedAt   *time.Time
	ShippedAt     *time.Time
}
