package product

import (
	"errors"
	"time"

	"gridstore/internal/core/domain/model/kernel"
	"gridstore/internal/core/domain/model/scan"
	"gridstore/internal/pkg/errs"
	"gridstore/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

// Product is one scanned unit sitting in a cell. It keeps both the raw scan
// inputs and the fields parsed from them; the raw values are what gets
// snapshotted into history when the cell is cleared.
//
// The product code is globally unique for the lifetime of the row.
type Product struct {
	id     kernel.UUID
	cellID kernel.UUID

	code      string
	size      string
	color     string
	qrPayload string

	sequenceNumber int
	orderTotal     int

	productionArea  string
	sizeCode        string
	orderNumber     string
	productSequence int
	orderDate       string

	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewProduct creates a product from a parsed scan, attached to the cell
// that accepted it. sequenceNumber is the position the scanner declared;
// parsed carries the sequence embedded in the code, and the two are kept
// apart so a disagreement between label and scan stays visible.
func NewProduct(
	id kernel.UUID,
	cellID kernel.UUID,
	code string,
	size string,
	color string,
	qrPayload string,
	sequenceNumber int,
	orderTotal int,
	parsed scan.ProductCode,
	orderDate string,
	createdAt time.Time,
) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setCellID(cellID),
		p.setCode(code),
		p.setSequenceNumber(sequenceNumber),
		p.setOrderTotal(orderTotal),
	); err != nil {
		return nil, err
	}

	p.size = size
	p.color = color
	p.qrPayload = qrPayload
	p.productionArea = parsed.ProductionArea
	p.sizeCode = parsed.SizeCode
	p.orderNumber = parsed.OrderNumber
	p.productSequence = parsed.ProductSequence
	p.orderDate = orderDate
	p.createdAt = createdAt
	return p, nil
}

// RestoreProduct reconstructs a product from persistent storage.
func RestoreProduct(
	id kernel.UUID,
	cellID kernel.UUID,
	code string,
	size string,
	color string,
	qrPayload string,
	sequenceNumber int,
	orderTotal int,
	parsed scan.ProductCode,
	orderDate string,
	createdAt time.Time,
) (*Product, error) {
	return NewProduct(id, cellID, code, size, color, qrPayload, sequenceNumber, orderTotal, parsed, orderDate, createdAt)
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// CellID returns the identifier of the cell holding this product.
func (p *Product) CellID() kernel.UUID {
	return p.cellID
}

// Code returns the globally-unique product code.
func (p *Product) Code() string {
	return p.code
}

// Size returns the declared size label.
func (p *Product) Size() string {
	return p.size
}

// Color returns the declared color label.
func (p *Product) Color() string {
	return p.color
}

// QRPayload returns the raw QR string as scanned.
func (p *Product) QRPayload() string {
	return p.qrPayload
}

// SequenceNumber returns the scanner-declared position within the order.
func (p *Product) SequenceNumber() int {
	return p.sequenceNumber
}

// ProductSequence returns the sequence parsed from the product code.
func (p *Product) ProductSequence() int {
	return p.productSequence
}

// OrderTotal returns the declared number of products in the order.
func (p *Product) OrderTotal() int {
	return p.orderTotal
}

// ProductionArea returns the production area parsed from the code.
func (p *Product) ProductionArea() string {
	return p.productionArea
}

// SizeCode returns the size code parsed from the code.
func (p *Product) SizeCode() string {
	return p.sizeCode
}

// OrderNumber returns the order number parsed from the code.
func (p *Product) OrderNumber() string {
	return p.orderNumber
}

// OrderDate returns the order date parsed from the QR payload.
func (p *Product) OrderDate() string {
	return p.orderDate
}

// CreatedAt returns when the product was assigned to its cell.
func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setCellID(cellID kernel.UUID) error {
	if err := cellID.Validate(); err != nil {
		return err
	}
	p.cellID = cellID
	return nil
}

func (p *Product) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	p.code = code
	return nil
}

func (p *Product) setSequenceNumber(sequenceNumber int) error {
	if sequenceNumber <= 0 {
		return errs.NewValueIsInvalidError("sequenceNumber")
	}
	p.sequenceNumber = sequenceNumber
	return nil
}

func (p *Product) setOrderTotal(orderTotal int) error {
	if orderTotal <= 0 {
		return errs.NewValueIsInvalidError("orderTotal")
	}
	p.orderTotal = orderTotal
	return nil
}

// Validate checks if the Product was created through one of its constructors.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}
