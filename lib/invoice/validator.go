package invoice

import (
	"strings"

	"compaexpress/lib/models"
)

// Validate checks the request shape and numeric integrity before any rendering begins.
// Structural problems return ErrMissingInput; everything else is an equivalent-severity
// validation error.
func Validate(req *models.GeneratePDFRequest) error {
	if req == nil || req.Invoice == nil || req.InvoiceItems == nil || req.Negocio == nil {
		return ErrMissingInput
	}
	if len(req.InvoiceItems) == 0 {
		return ErrEmptyItems
	}

	for i, item := range req.InvoiceItems {
		if err := validateItem(i+1, item); err != nil {
			return err
		}
	}

	if !req.Invoice.InvoiceTotal.Numeric {
		return ErrInvalidTotal
	}

	if strings.TrimSpace(req.Negocio.Nombre) == "" || strings.TrimSpace(req.Negocio.Ruc) == "" {
		return ErrMissingBusinessIdentity
	}
	return nil
}

func validateItem(index int, item models.InvoiceItem) error {
	// zero is rejected for both fields; quantity zero would divide the unit price by zero
	if missingOrZero(item.Subtotal) || missingOrZero(item.Quantity) {
		return &ItemError{Index: index, Reason: reasonMissingOrZero}
	}
	if !item.Subtotal.Numeric || !item.Quantity.Numeric {
		return &ItemError{Index: index, Reason: reasonNotNumeric}
	}
	if !item.Total.Numeric {
		return &ItemError{Index: index, Reason: reasonTotal}
	}
	return nil
}

func missingOrZero(n models.Number) bool {
	return !n.Present || (n.Numeric && n.Value == 0)
}
