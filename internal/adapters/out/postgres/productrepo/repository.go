package productrepo

import (
	"context"
	"errors"

	"gridstore/internal/core/domain/model/kernel"
	"gridstore/internal/core/domain/model/product"
	"gridstore/internal/core/ports"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add saves a new product to the database. A unique-constraint violation on
// the product code maps to ports.ErrDuplicateProductCode so callers can treat
// a racing double receipt the same as one caught by the pre-check.
func (r *GormProductRepository) Add(ctx context.Context, entity *product.Product) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return ports.ErrDuplicateProductCode
		}
		return err
	}

	return nil
}

// ExistsByCode reports whether a product with the given code is stored.
func (r *GormProductRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("code = ?", code).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetByCell retrieves the products of a cell in receipt order.
func (r *GormProductRepository) GetByCell(ctx context.Context, cellID kernel.UUID) ([]*product.Product, error) {
	if err := cellID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Where("cell_id = ?", cellID.Bytes()).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}

// DeleteByCell removes all products of a cell.
func (r *GormProductRepository) DeleteByCell(ctx context.Context, cellID kernel.UUID) error {
	if err := cellID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&ProductDTO{}, "cell_id = ?", cellID.Bytes()).Error
}

// isUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation, either as translated by GORM or as the raw driver error.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation"
}
