// Package productrepo provides data transfer objects and mapping functions
// for product persistence. Implements the repository pattern for the product
// entity, handling conversion between domain entities and database
// representations.
package productrepo

import (
	"time"

	"gridstore/internal/core/domain/model/kernel"
	"gridstore/internal/core/domain/model/product"
	"gridstore/internal/core/domain/model/scan"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting products.
// The unique index on Code is the last line of defense against double
// receipts racing past the application-level duplicate check.
type ProductDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	CellID uuid.UUID `gorm:"type:uuid;index"`

	Code      string `gorm:"uniqueIndex"`
	Size      string
	Color     string
	QRPayload string `gorm:"column:qr_payload"`

	SequenceNumber int
	OrderTotal     int

	ProductionArea  string
	SizeCode        string
	OrderNumber     string
	ProductSequence int
	OrderDate       string

	CreatedAt time.Time
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain entity to its database representation.
func fromDomain(entity *product.Product) ProductDTO {
	return ProductDTO{
		ID:             entity.ID().Bytes(),
		CellID:         entity.CellID().Bytes(),
		Code:           entity.Code(),
		Size:           entity.Size(),
		Color:          entity.Color(),
		QRPayload:      entity.QRPayload(),
		SequenceNumber:  entity.SequenceNumber(),
		OrderTotal:      entity.OrderTotal(),
		ProductionArea:  entity.ProductionArea(),
		SizeCode:        entity.SizeCode(),
		OrderNumber:     entity.OrderNumber(),
		ProductSequence: entity.ProductSequence(),
		OrderDate:       entity.OrderDate(),
		CreatedAt:       entity.CreatedAt(),
	}
}

// toDomain converts a database DTO to a product domain entity.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	cellID, err := kernel.UUIDFromBytes(dto.CellID[:])
	if err != nil {
		return nil, err
	}

	parsed := scan.ProductCode{
		ProductionArea:  dto.ProductionArea,
		SizeCode:        dto.SizeCode,
		OrderNumber:     dto.OrderNumber,
		ProductSequence: dto.ProductSequence,
	}

	return product.RestoreProduct(
		id,
		cellID,
		dto.Code,
		dto.Size,
		dto.Color,
		dto.QRPayload,
		dto.SequenceNumber,
		dto.OrderTotal,
		parsed,
		dto.OrderDate,
		dto.CreatedAt,
	)
}
