package queries

import (
	"errors"

	"gridstore/internal/pkg/errs"
	"gridstore/internal/pkg/guard"
)

var ErrCheckProductCodeQueryIsNotConstructed = errors.New(
	"CheckProductCodeQuery must be created via NewCheckProductCodeQuery constructor",
)

// CheckProductCodeQuery reports whether a product code is already stored.
// Scanner stations call this before submitting a scan so the operator gets
// immediate feedback; the real guarantee is the unique index on submit.
type CheckProductCodeQuery struct { //nolint:recvcheck //using for validation
	code string

	guard guard.ConstructorGuard
}

// NewCheckProductCodeQuery creates a duplicate pre-check query for the code.
func NewCheckProductCodeQuery(code string) (CheckProductCodeQuery, error) {
	query := CheckProductCodeQuery{
		guard: guard.NewConstructorGuard(),
	}

	if code == "" {
		return CheckProductCodeQuery{}, errs.NewValueIsRequiredError("code")
	}

	query.code = code
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q CheckProductCodeQuery) Validate() error {
	return q.guard.Validate(ErrCheckProductCodeQueryIsNotConstructed)
}

// Code returns the product code to check.
func (q CheckProductCodeQuery) Code() string {
	return q.code
}

// CheckProductCodeQueryResponse reports the outcome of a duplicate pre-check.
type CheckProductCodeQueryResponse struct {
	Code   string
	Exists bool
}
