package commands

import (
	"errors"
	"strconv"

	"gridstore/internal/pkg/errs"
	"gridstore/internal/pkg/guard"
)

var ErrAssignProductCommandIsNotConstructed = errors.New(
	"AssignProductCommand must be created via NewAssignProductCommand constructor",
)

// AssignProductCommand represents one scanned product arriving at the
// warehouse. Carries the raw scan payload; the sequence number and order
// total arrive as text from the scanner and are parsed here.
//
// Example:
//
//	cmd, err := NewAssignProductCommand(
//	    "VA-M-000126-2", "M", "black", "101725-VA-M-000126-2", "2", "3")
//	if err != nil {
//	    return fmt.Errorf("invalid scan: %w", err)
//	}
//
//	handler := NewAssignProductCommandHandler(uowFactory, clock)
//	result, err := handler.Handle(ctx, cmd)
type AssignProductCommand struct { //nolint:recvcheck //using for validation
	productCode    string
	size           string
	color          string
	qrPayload      string
	sequenceNumber int
	orderTotal     int

	guard guard.ConstructorGuard
}

// NewAssignProductCommand creates a command from a raw scan payload.
// The sequence number and order total must be positive integers in text
// form; the product code and QR payload must be present but are parsed
// structurally by the handler.
func NewAssignProductCommand(productCode, size, color, qrPayload, sequenceNumber, orderTotal string) (AssignProductCommand, error) {
	command := AssignProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductCode(productCode),
		command.setQRPayload(qrPayload),
		command.setSequenceNumber(sequenceNumber),
		command.setOrderTotal(orderTotal),
	); err != nil {
		return AssignProductCommand{}, err
	}

	command.size = size
	command.color = color
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignProductCommand) Validate() error {
	return c.guard.Validate(ErrAssignProductCommandIsNotConstructed)
}

// ProductCode returns the scanned product code.
func (c AssignProductCommand) ProductCode() string {
	return c.productCode
}

// Size returns the declared size label.
func (c AssignProductCommand) Size() string {
	return c.size
}

// Color returns the declared color label.
func (c AssignProductCommand) Color() string {
	return c.color
}

// QRPayload returns the raw QR string.
func (c AssignProductCommand) QRPayload() string {
	return c.qrPayload
}

// SequenceNumber returns the product's position within its order.
func (c AssignProductCommand) SequenceNumber() int {
	return c.sequenceNumber
}

// OrderTotal returns the declared number of products in the order.
func (c AssignProductCommand) OrderTotal() int {
	return c.orderTotal
}

func (c *AssignProductCommand) setProductCode(productCode string) error {
	if productCode == "" {
		return errs.NewValueIsRequiredError("productCode")
	}

	c.productCode = productCode
	return nil
}

func (c *AssignProductCommand) setQRPayload(qrPayload string) error {
	if qrPayload == "" {
		return errs.NewValueIsRequiredError("qrPayload")
	}

	c.qrPayload = qrPayload
	return nil
}

func (c *AssignProductCommand) setSequenceNumber(raw string) error {
	sequenceNumber, err := strconv.Atoi(raw)
	if err != nil || sequenceNumber <= 0 {
		return errs.NewValueIsInvalidError("sequenceNumber")
	}

	c.sequenceNumber = sequenceNumber
	return nil
}

func (c *AssignProductCommand) setOrderTotal(raw string) error {
	orderTotal, err := strconv.Atoi(raw)
	if err != nil || orderTotal <= 0 {
		return errs.NewValueIsInvalidError("orderTotal")
	}

	c.orderTotal = orderTotal
	return nil
}
