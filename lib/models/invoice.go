package models

import (
	"bytes"
	"encoding/json"
)

// Number is a JSON numeric field that records whether it was present and whether it
// held a JSON number. Unmarshalling never fails, so type problems surface as validation
// errors instead of body decoding errors.
type Number struct {
	Value   float64
	Present bool
	Numeric bool
}

// NewNumber returns a present, numeric value
func NewNumber(v float64) Number {
	return Number{Value: v, Present: true, Numeric: true}
}

// UnmarshalJSON implements json.Unmarshaler
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	n.Present = true
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		n.Value = v
		n.Numeric = true
	}
	return nil
}

// MarshalJSON implements json.Marshaler
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Present || !n.Numeric {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// ID accepts either a JSON string or a JSON number and keeps its textual form
type ID string

// UnmarshalJSON implements json.Unmarshaler
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// Invoice is the sales note header
type Invoice struct {
	ID            ID     `json:"id"`
	InvoiceNumber string `json:"invoiceNumber"`
	InvoiceTotal  Number `json:"invoiceTotal"`
}

// InvoiceItem is one line of the sales note. The unit price is derived as Subtotal / Quantity.
type InvoiceItem struct {
	ProductoNombre string `json:"productoNombre,omitempty"`
	Quantity       Number `json:"quantity"`
	Subtotal       Number `json:"subtotal"`
	Total          Number `json:"total"`
}

// Negocio is the issuing business record
type Negocio struct {
	Nombre            string  `json:"nombre"`
	Representante     *string `json:"representante,omitempty"`
	Direccion         *string `json:"direccion,omitempty"`
	Telefono          *string `json:"telefono,omitempty"`
	CorreoElectronico *string `json:"correoElectronico,omitempty"`
	Ciudad            *string `json:"ciudad,omitempty"`
	Provincia         *string `json:"provincia,omitempty"`
	Pais              *string `json:"pais,omitempty"`
	MovilAccess       Number  `json:"movilAccess"`
	PcAccess          Number  `json:"pcAccess"`
	Ruc               string  `json:"ruc"`
	Logo              *string `json:"logo,omitempty"`
}

// GeneratePDFRequest is the body of the PDF generation endpoint.
// A nil pointer or nil slice means the field was absent or null.
type GeneratePDFRequest struct {
	Invoice      *Invoice      `json:"invoice"`
	InvoiceItems []InvoiceItem `json:"invoiceItems"`
	Negocio      *Negocio      `json:"negocio"`
}

// GeneratePDFResponse carries the storage key of the rendered document
type GeneratePDFResponse struct {
	PdfURL string `json:"pdfUrl"`
}

// String returns the ID text
func (id ID) String() string {
	return string(id)
}
