package invoice

import (
	"fmt"
	"testing"

	"compaexpress/lib/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type drawOp struct {
	Kind  string
	State PaintState
	X, Y  float64
	W     float64
	Align Align
	Angle float64
	Text  string
	Logo  *Logo
}

// RecordingCanvas captures every drawing call in order
type RecordingCanvas struct {
	Ops      []drawOp
	BytesErr error
}

func (c *RecordingCanvas) Image(logo *Logo, x, y, w float64) {
	c.Ops = append(c.Ops, drawOp{Kind: "image", X: x, Y: y, W: w, Logo: logo})
}

func (c *RecordingCanvas) Text(st PaintState, x, y float64, s string) {
	c.Ops = append(c.Ops, drawOp{Kind: "text", State: st, X: x, Y: y, Text: s})
}

func (c *RecordingCanvas) TextBox(st PaintState, x, y, w float64, align Align, s string) {
	c.Ops = append(c.Ops, drawOp{Kind: "textbox", State: st, X: x, Y: y, W: w, Align: align, Text: s})
}

func (c *RecordingCanvas) Line(st PaintState, x1, y1, x2, y2 float64) {
	c.Ops = append(c.Ops, drawOp{Kind: "line", State: st, X: x1, Y: y1, W: x2 - x1})
}

func (c *RecordingCanvas) Rect(st PaintState, r Rect) {
	c.Ops = append(c.Ops, drawOp{Kind: "rect", State: st, X: r.X, Y: r.Y, W: r.W})
}

func (c *RecordingCanvas) RotatedText(st PaintState, angle, x, y float64, s string) {
	c.Ops = append(c.Ops, drawOp{Kind: "rotated", State: st, Angle: angle, X: x, Y: y, Text: s})
}

func (c *RecordingCanvas) Bytes() ([]byte, error) {
	if c.BytesErr != nil {
		return nil, c.BytesErr
	}
	return []byte(fmt.Sprintf("%%PDF-recorded %d ops", len(c.Ops))), nil
}

func (c *RecordingCanvas) find(text string) (drawOp, bool) {
	for _, op := range c.Ops {
		if op.Text == text {
			return op, true
		}
	}
	return drawOp{}, false
}

func (c *RecordingCanvas) texts() []string {
	var out []string
	for _, op := range c.Ops {
		if op.Text != "" {
			out = append(out, op.Text)
		}
	}
	return out
}

func (c *RecordingCanvas) count(kind string) int {
	n := 0
	for _, op := range c.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

func renderRequest(t *testing.T, req *models.GeneratePDFRequest, logo *Logo) *RecordingCanvas {
	t.Helper()
	require.NoError(t, Validate(req))
	r := NewRenderer()
	doc := Document{
		Invoice: *req.Invoice,
		Items:   req.InvoiceItems,
		Profile: NewBusinessProfile(*req.Negocio),
		Logo:    logo,
	}
	c := &RecordingCanvas{}
	r.Render(c, r.Config.Compute(logo != nil, len(doc.Items)), doc)
	return c
}

func TestRender_ExampleInvoice(t *testing.T) {
	//Arrange
	req := validRequest()

	//Act
	c := renderRequest(t, req, nil)

	//Assert
	unit, ok := c.find("$5.00")
	require.True(t, ok)
	assert.Equal(t, AlignRight, unit.Align)
	assert.Equal(t, 405.0, unit.X)
	assert.Equal(t, 310.0, unit.Y)

	total, ok := c.find("$10.00")
	require.True(t, ok)
	assert.Equal(t, 485.0, total.X)

	grand, ok := c.find("15.50")
	require.True(t, ok)
	assert.Equal(t, Point{X: 430, Y: 615}, Point{X: grand.X, Y: grand.Y})
	assert.Equal(t, StyleBold, grand.State.Style)
	assert.Equal(t, 14.0, grand.State.Size)

	qty, ok := c.find("2")
	require.True(t, ok)
	assert.Equal(t, AlignCenter, qty.Align)

	_, ok = c.find("Widget")
	assert.True(t, ok)
	assert.Zero(t, c.count("image"))
}

func TestRender_DrawOrder(t *testing.T) {
	c := renderRequest(t, validRequest(), nil)

	texts := c.texts()
	require.NotEmpty(t, texts)
	assert.Equal(t, "Acme", texts[0])
	assert.Equal(t, ValidityNotice, texts[len(texts)-1])
	assert.Equal(t, LegalText, texts[len(texts)-2])

	index := func(s string) int {
		for i, v := range texts {
			if v == s {
				return i
			}
		}
		t.Fatalf("text %q not drawn", s)
		return -1
	}
	order := []string{"Acme", "R.U.C. 123", "0000042", DateField, "CANT.", "Widget", PaymentTitle, TotalLabel, "15.50", AuthorizedLabel, LegalText}
	for i := 1; i < len(order); i++ {
		assert.Less(t, index(order[i-1]), index(order[i]), "%q before %q", order[i-1], order[i])
	}
}

func TestRender_FiscalBox(t *testing.T) {
	c := renderRequest(t, validRequest(), nil)

	var box drawOp
	for _, op := range c.Ops {
		if op.Kind == "rect" {
			box = op
			break
		}
	}
	assert.Equal(t, 1.5, box.State.LineWidth)
	assert.Equal(t, 350.0, box.X)
	assert.Equal(t, 50.0, box.Y)
	assert.Equal(t, 180.0, box.W)

	number, ok := c.find("0000042")
	require.True(t, ok)
	assert.Equal(t, Red, number.State.Color)
	assert.Equal(t, 14.0, number.State.Size)

	// the attention color does not leak into the next field
	auth, ok := c.find(AuthorizationText)
	require.True(t, ok)
	assert.Equal(t, Black, auth.State.Color)
	assert.Equal(t, 8.0, auth.State.Size)

	tax, ok := c.find("R.U.C. 123")
	require.True(t, ok)
	assert.Equal(t, 355.0, tax.X)
	assert.Equal(t, 55.0, tax.Y)
}

func TestRender_TableLines(t *testing.T) {
	c := renderRequest(t, validRequest(), nil)

	// fiscal box and table outline
	assert.Equal(t, 2, c.count("rect"))
	// three fiscal rules, three column separators and the header rule
	assert.Equal(t, 7, c.count("line"))
	for _, op := range c.Ops {
		if op.Kind == "line" {
			assert.Equal(t, DefaultStroke, op.State.LineWidth)
		}
	}
	for _, h := range columnHeaders {
		op, ok := c.find(h)
		require.True(t, ok, h)
		assert.Equal(t, AlignCenter, op.Align)
		assert.Equal(t, StyleBold, op.State.Style)
		assert.Equal(t, 288.0, op.Y)
	}
}

func TestRender_PlaceholdersKeepPositions(t *testing.T) {
	//Arrange
	full := validRequest()
	phone := "0999999999"
	address := "Av. Amazonas"
	full.Negocio.Telefono = &phone
	full.Negocio.Direccion = &address

	//Act
	withFields := renderRequest(t, full, nil)
	without := renderRequest(t, validRequest(), nil)

	//Assert
	require.Equal(t, len(withFields.Ops), len(without.Ops))
	for i := range without.Ops {
		assert.Equal(t, withFields.Ops[i].X, without.Ops[i].X)
		assert.Equal(t, withFields.Ops[i].Y, without.Ops[i].Y)
	}

	phoneLine, ok := without.find("Tel.: " + Placeholder)
	require.True(t, ok)
	assert.Equal(t, 105.0, phoneLine.Y)
	filledPhone, ok := withFields.find("Tel.: 0999999999")
	require.True(t, ok)
	assert.Equal(t, phoneLine.Y, filledPhone.Y)

	filledAddress, ok := withFields.find("Av. Amazonas")
	require.True(t, ok)
	assert.Equal(t, 90.0, filledAddress.Y)
	var placeholders []float64
	for _, op := range without.Ops {
		if op.Text == Placeholder {
			placeholders = append(placeholders, op.Y)
		}
	}
	// representative and address
	assert.Equal(t, []float64{75, 90}, placeholders)

	_, ok = without.find("No especificado, No especificado, Ecuador")
	assert.True(t, ok)
	_, ok = without.find("Accesos: Móvil 0, PC 0")
	assert.True(t, ok)
}

func TestRender_DefaultProductName(t *testing.T) {
	req := validRequest()
	req.InvoiceItems[0].ProductoNombre = ""

	c := renderRequest(t, req, nil)

	op, ok := c.find(DefaultProduct)
	require.True(t, ok)
	assert.Equal(t, AlignLeft, op.Align)
}

func TestRender_UnitPriceRounding(t *testing.T) {
	req := validRequest()
	req.InvoiceItems[0] = models.InvoiceItem{Quantity: models.NewNumber(3), Subtotal: models.NewNumber(10), Total: models.NewNumber(10)}
	req.Invoice.InvoiceTotal = models.NewNumber(99.999)

	c := renderRequest(t, req, nil)

	_, ok := c.find("$3.33")
	assert.True(t, ok)
	_, ok = c.find("100.00")
	assert.True(t, ok)
}

func TestRender_ClampsRowsAtCapacity(t *testing.T) {
	//Arrange
	req := validRequest()
	req.InvoiceItems = nil
	for i := 1; i <= 14; i++ {
		req.InvoiceItems = append(req.InvoiceItems, models.InvoiceItem{
			ProductoNombre: fmt.Sprintf("Item %d", i),
			Quantity:       models.NewNumber(1),
			Subtotal:       models.NewNumber(1),
			Total:          models.NewNumber(1),
		})
	}

	//Act
	c := renderRequest(t, req, nil)

	//Assert
	last, ok := c.find("Item 13")
	require.True(t, ok)
	assert.Equal(t, 550.0, last.Y)
	_, ok = c.find("Item 14")
	assert.False(t, ok)
}

func TestRender_Logo(t *testing.T) {
	logo := &Logo{Key: "logos/acme.png", Format: "PNG"}
	c := renderRequest(t, validRequest(), logo)

	require.Equal(t, "image", c.Ops[0].Kind)
	assert.Same(t, logo, c.Ops[0].Logo)
	assert.Equal(t, 60.0, c.Ops[0].X)
	assert.Equal(t, 30.0, c.Ops[0].Y)
	assert.Equal(t, 100.0, c.Ops[0].W)

	name, ok := c.find("Acme")
	require.True(t, ok)
	assert.Equal(t, 150.0, name.Y)
}

func TestRender_Notice(t *testing.T) {
	c := renderRequest(t, validRequest(), nil)

	last := c.Ops[len(c.Ops)-1]
	assert.Equal(t, "rotated", last.Kind)
	assert.Equal(t, 90.0, last.Angle)
	assert.Equal(t, 6.0, last.State.Size)
	assert.Equal(t, ValidityNotice, last.Text)
}

func TestPaintState_IsImmutable(t *testing.T) {
	base := DefaultPaint()

	bold := base.Bold().WithSize(14).WithColor(Red).WithLineWidth(1.5)

	assert.Equal(t, DefaultPaint(), base)
	assert.Equal(t, StyleBold, bold.Style)
	assert.Equal(t, StyleRegular, base.Style)
	assert.Equal(t, 14.0, bold.Size)
	assert.Equal(t, Red, bold.Color)
	assert.Equal(t, 1.5, bold.LineWidth)
}
