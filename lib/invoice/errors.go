package invoice

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingInput means the invoice, the item list or the business record is absent
	ErrMissingInput = errors.New("missing invoice, invoice items or negocio")

	ErrEmptyItems              = errors.New("invoiceItems must be a non-empty array")
	ErrInvalidTotal            = errors.New("invoiceTotal must be a valid number")
	ErrMissingBusinessIdentity = errors.New("negocio nombre and ruc are required")

	// ErrRender wraps failures while drawing or finalizing the document
	ErrRender = errors.New("failed to render invoice document")
	// ErrPublish wraps failures while writing the document to object storage
	ErrPublish = errors.New("failed to publish invoice document")
)

// ItemError reports an invalid line item. Index is 1-based.
type ItemError struct {
	Index  int
	Reason string
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d has invalid data: %s", e.Index, e.Reason)
}

const (
	reasonMissingOrZero = "subtotal or quantity missing or quantity equal to 0"
	reasonNotNumeric    = "non-numeric subtotal or quantity"
	reasonTotal         = "non-numeric total"
)
