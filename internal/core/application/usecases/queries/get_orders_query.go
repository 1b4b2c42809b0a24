package queries

import (
	"errors"

	"gridstore/internal/core/domain/model/tracking"
	"gridstore/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves order trackers, optionally filtered by status.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	status *tracking.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an order listing query. status is an optional
// filter, "" for all statuses.
func NewGetOrdersQuery(status string) (GetOrdersQuery, error) {
	query := GetOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if status != "" {
		parsed, err := tracking.StatusFromString(status)
		if err != nil {
			return GetOrdersQuery{}, err
		}
		query.status = &parsed
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the optional status filter, nil for all statuses.
func (q GetOrdersQuery) Status() *tracking.Status {
	return q.status
}
