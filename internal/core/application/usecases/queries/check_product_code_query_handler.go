package queries

import (
	"context"

	"gorm.io/gorm"
)

// CheckProductCodeQueryHandler answers duplicate pre-checks against the
// products table.
type CheckProductCodeQueryHandler struct {
	db *gorm.DB
}

// NewCheckProductCodeQueryHandler creates a handler for duplicate pre-checks.
func NewCheckProductCodeQueryHandler(db *gorm.DB) CheckProductCodeQueryHandler {
	return CheckProductCodeQueryHandler{db: db}
}

// Handle executes the existence check.
func (h CheckProductCodeQueryHandler) Handle(
	ctx context.Context,
	query CheckProductCodeQuery,
) (CheckProductCodeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckProductCodeQueryResponse{}, err
	}

	var exists bool
	err := h.db.WithContext(ctx).
		Raw("SELECT EXISTS(SELECT 1 FROM products WHERE code = ?)", query.Code()).
		Row().Scan(&exists)
	if err != nil {
		return CheckProductCodeQueryResponse{}, err
	}

	return CheckProductCodeQueryResponse{Code: query.Code(), Exists: exists}, nil
}
