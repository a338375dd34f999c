package invoice

import (
	"fmt"

	"compaexpress/lib/models"
)

// Fixed texts printed on every sales note
const (
	DocumentTypeLabel = "NOTA DE VENTA"
	SeriesLabel       = "1-002-001-00"
	AuthorizationText = "AUT. SRI. 1132943772"
	TotalLabel        = "TOTAL USD $"
	PaymentTitle      = "FORMA DE PAGO"
	PaymentCashLine   = "[ ] Efectivo _____ [ ] Dinero Electrónico ___"
	PaymentCardLine   = "[ ] Tarjeta de Crédito ___ [ ] Débito ___ [ ] Otros Pagos: _______"
	SignatureBlank    = "_________________"
	AuthorizedLabel   = "Firma Autorizada"
	ReceivedLabel     = "Recibí Conforme"
	LegalText         = "ORIGINAL ADQUIRIENTE • COPIA EMISOR"
	ValidityNotice    = "VALIDO PARA SU EMISIÓN HASTA EL 02 DE JULIO DE 2024"
)

// Customer fields are printed as labelled blanks to fill in by hand
const (
	DateField    = "Fecha: ______________________________"
	ClientField  = "Cliente: ____________________________"
	TaxIDField   = "RUC: _________________________"
	PhoneField   = "Telf.: _________________"
	AddressField = "Dirección: __________________________"
)

var columnHeaders = [columnCount]string{"CANT.", "DESCRIPCIÓN", "V. UNITARIO", "V. TOTAL"}

// Document is the validated content of one sales note
type Document struct {
	Invoice models.Invoice
	Items   []models.InvoiceItem
	Profile BusinessProfile
	Logo    *Logo
}

// Renderer draws a Document onto a Canvas in a fixed order
type Renderer struct {
	Config LayoutConfig
}

// NewRenderer returns a renderer for the default A4 layout
func NewRenderer() *Renderer {
	return &Renderer{Config: DefaultLayout()}
}

// Render emits every drawing call for doc using l. Items beyond the table capacity
// have no row in l and are not drawn.
func (r *Renderer) Render(c Canvas, l Layout, doc Document) {
	base := DefaultPaint()
	biz := doc.Profile.Resolve()

	if l.HasLogo && doc.Logo != nil {
		c.Image(doc.Logo, l.Logo.X, l.Logo.Y, l.LogoWidth)
	}

	r.header(c, base, l.Header, biz)
	r.fiscal(c, base, l.Fiscal, biz, doc.Invoice)
	r.customer(c, base, l.Customer)
	r.table(c, base, l.Table, doc.Items)
	r.totals(c, base, l.Totals, doc.Invoice)
	r.signatures(c, base, l.Signatures)

	c.TextBox(base.WithSize(6), l.Legal.X, l.Legal.Y, l.LegalWidth, AlignCenter, LegalText)
	c.RotatedText(base.WithSize(6), l.NoticeAngle, l.Notice.X, l.Notice.Y, ValidityNotice)
}

func (r *Renderer) header(c Canvas, base PaintState, h HeaderLayout, biz ResolvedProfile) {
	c.TextBox(base.WithSize(18).Bold(), h.Name.X, h.Name.Y, h.NameWidth, AlignLeft, biz.Name)

	lines := []string{
		biz.Representative,
		biz.Address,
		"Tel.: " + biz.Phone,
		"Correo: " + biz.Email,
		fmt.Sprintf("%s, %s, %s", biz.City, biz.Province, biz.Country),
		fmt.Sprintf("Accesos: Móvil %s, PC %s", biz.MobileAccess, biz.PCAccess),
	}
	st := base.WithSize(10)
	for i, p := range h.Lines {
		if i >= len(lines) {
			break
		}
		c.Text(st, p.X, p.Y, lines[i])
	}
}

func (r *Renderer) fiscal(c Canvas, base PaintState, f FiscalLayout, biz ResolvedProfile, inv models.Invoice) {
	c.Rect(base.WithLineWidth(1.5), f.Box)
	for _, y := range f.Rules {
		c.Line(base, f.Box.X, y, f.Box.Right(), y)
	}

	small := base.WithSize(8)
	c.Text(small, f.TaxID.X, f.TaxID.Y, "R.U.C. "+biz.TaxID)
	c.Text(small, f.DocumentType.X, f.DocumentType.Y, DocumentTypeLabel)
	c.Text(small, f.Series.X, f.Series.Y, SeriesLabel)
	c.Text(base.WithSize(14).WithColor(Red), f.Number.X, f.Number.Y, PadInvoiceNumber(inv.InvoiceNumber))
	c.Text(small, f.Authorization.X, f.Authorization.Y, AuthorizationText)
}

func (r *Renderer) customer(c Canvas, base PaintState, cu CustomerLayout) {
	st := base.WithSize(10)
	c.Text(st, cu.Date.X, cu.Date.Y, DateField)
	c.Text(st, cu.Client.X, cu.Client.Y, ClientField)
	c.Text(st, cu.TaxID.X, cu.TaxID.Y, TaxIDField)
	c.Text(st, cu.Phone.X, cu.Phone.Y, PhoneField)
	c.Text(st, cu.Address.X, cu.Address.Y, AddressField)
}

func (r *Renderer) table(c Canvas, base PaintState, t TableLayout, items []models.InvoiceItem) {
	c.Rect(base, t.Box)
	for _, x := range t.Separators {
		c.Line(base, x, t.Box.Y, x, t.Box.Bottom())
	}
	c.Line(base, t.Box.X, t.HeaderLine, t.Box.Right(), t.HeaderLine)

	head := base.WithSize(10).Bold()
	for i, label := range columnHeaders {
		cell := t.Cells[i]
		c.TextBox(head, cell.X, t.HeaderY, cell.W, AlignCenter, label)
	}

	row := base.WithSize(9)
	for i, y := range t.Rows {
		item := items[i]
		name := item.ProductoNombre
		if name == "" {
			name = DefaultProduct
		}
		unit := UnitPrice(item.Subtotal.Value, item.Quantity.Value)

		c.TextBox(row, t.Cells[ColQuantity].X, y, t.Cells[ColQuantity].W, AlignCenter, FormatQuantity(item.Quantity.Value))
		c.TextBox(row, t.Cells[ColDescription].X, y, t.Cells[ColDescription].W, AlignLeft, name)
		c.TextBox(row, t.Cells[ColUnitPrice].X, y, t.Cells[ColUnitPrice].W, AlignRight, FormatCurrency(unit))
		c.TextBox(row, t.Cells[ColTotal].X, y, t.Cells[ColTotal].W, AlignRight, FormatCurrency(item.Total.Value))
	}
}

func (r *Renderer) totals(c Canvas, base PaintState, t TotalsLayout, inv models.Invoice) {
	st := base.WithSize(9)
	c.Text(st, t.PaymentTitle.X, t.PaymentTitle.Y, PaymentTitle)
	c.Text(st, t.PaymentCash.X, t.PaymentCash.Y, PaymentCashLine)
	c.Text(st, t.PaymentCard.X, t.PaymentCard.Y, PaymentCardLine)

	c.Text(base.WithSize(12).Bold(), t.TotalLabel.X, t.TotalLabel.Y, TotalLabel)
	c.Text(base.WithSize(14).Bold(), t.TotalAmount.X, t.TotalAmount.Y, FormatAmount(inv.InvoiceTotal.Value))
}

func (r *Renderer) signatures(c Canvas, base PaintState, s SignatureLayout) {
	st := base.WithSize(9)
	c.Text(st, s.AuthorizedLine.X, s.AuthorizedLine.Y, SignatureBlank)
	c.Text(st, s.AuthorizedLabel.X, s.AuthorizedLabel.Y, AuthorizedLabel)
	c.Text(st, s.ReceivedLine.X, s.ReceivedLine.Y, SignatureBlank)
	c.Text(st, s.ReceivedLabel.X, s.ReceivedLabel.Y, ReceivedLabel)
}
