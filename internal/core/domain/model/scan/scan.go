// Package scan parses the identifiers carried by a scanned product label.
// A product code has four hyphen-delimited fields ("VA-M-000126-2"); the QR
// payload prefixes the code with the order date ("101725-VA-M-000126-2").
// All functions are pure and side-effect free.
package scan

import (
	"fmt"
	"strconv"
	"strings"

	"gridstore/internal/pkg/errs"
)

// productCodeFieldCount is the number of hyphen-delimited fields in a product code.
const productCodeFieldCount = 4

// ErrMalformedProductCode is returned when a product code does not split into
// four fields or its sequence field is not an integer.
var ErrMalformedProductCode = errs.NewValueIsInvalidError("product code")

// ErrMalformedQRPayload is returned when a QR payload does not contain the
// hyphen separating the order date from the embedded product code.
var ErrMalformedQRPayload = errs.NewValueIsInvalidError("qr payload")

// ProductCode holds the structured fields of a parsed product code.
// For "VA-M-000126-2": production area "VA", size code "M",
// order number "000126", product sequence 2.
type ProductCode struct {
	ProductionArea  string
	SizeCode        string
	OrderNumber     string
	ProductSequence int
}

// QRPayload holds the structured fields of a parsed QR payload.
// For "101725-VA-M-000126-2": order date "101725" and the embedded
// product code "VA-M-000126-2".
type QRPayload struct {
	OrderDate   string
	ProductCode string
}

// ParseProductCode splits a product code into its four fields.
// Fails with ErrMalformedProductCode if the field count differs from four
// or the last field is not an integer.
func ParseProductCode(code string) (ProductCode, error) {
	parts := strings.Split(code, "-")
	if len(parts) != productCodeFieldCount {
		return ProductCode{}, fmt.Errorf("%w: %q has %d fields, want %d",
			ErrMalformedProductCode, code, len(parts), productCodeFieldCount)
	}

	sequence, err := strconv.Atoi(parts[3])
	if err != nil {
		return ProductCode{}, fmt.Errorf("%w: sequence %q is not an integer",
			ErrMalformedProductCode, parts[3])
	}

	return ProductCode{
		ProductionArea:  parts[0],
		SizeCode:        parts[1],
		OrderNumber:     parts[2],
		ProductSequence: sequence,
	}, nil
}

// ParseQRPayload splits a QR payload on its first hyphen into the order date
// and the embedded product code. Fails with ErrMalformedQRPayload if no
// hyphen is present.
func ParseQRPayload(qr string) (QRPayload, error) {
	parts := strings.SplitN(qr, "-", 2)
	if len(parts) != 2 {
		return QRPayload{}, fmt.Errorf("%w: %q has no separator", ErrMalformedQRPayload, qr)
	}

	return QRPayload{
		OrderDate:   parts[0],
		ProductCode: parts[1],
	}, nil
}

// DeriveOrderCode extracts the order code from a product code: the first
// three fields joined by hyphen. "VA-M-000126-2" yields "VA-M-000126".
// The code must already have been validated via ParseProductCode.
func DeriveOrderCode(productCode string) string {
	parts := strings.Split(productCode, "-")
	if len(parts) < productCodeFieldCount-1 {
		return productCode
	}
	return strings.Join(parts[:productCodeFieldCount-1], "-")
}

// ComposeOrderKey builds the canonical composite order identity used to
// correlate scans of one order across cells and grids:
// order code plus order date. "VA-M-000126" + "101725" yields
// "VA-M-000126-101725".
func ComposeOrderKey(orderCode, orderDate string) string {
	return orderCode + "-" + orderDate
}
