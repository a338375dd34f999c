package invoice

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	CurrencyPrefix     = "$"
	invoiceNumberWidth = 7
)

// FormatAmount renders v as fixed-point with exactly two fractional digits.
// Rounding is half away from zero on the shortest decimal form of v, so 99.999 is "100.00".
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// FormatCurrency prefixes FormatAmount with the currency sign
func FormatCurrency(v float64) string {
	return CurrencyPrefix + FormatAmount(v)
}

// UnitPrice derives the unit price from the line subtotal. quantity must be nonzero.
func UnitPrice(subtotal, quantity float64) float64 {
	return subtotal / quantity
}

// FormatQuantity renders a quantity without trailing zeros ("2", "1.5")
func FormatQuantity(v float64) string {
	return decimal.NewFromFloat(v).String()
}

// PadInvoiceNumber left-pads the invoice number with zeros to seven characters.
// Longer numbers are returned unchanged.
func PadInvoiceNumber(number string) string {
	if n := len([]rune(number)); n < invoiceNumberWidth {
		return strings.Repeat("0", invoiceNumberWidth-n) + number
	}
	return number
}
