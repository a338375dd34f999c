package invoice

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// helveticaAscent converts a top-of-line position to the baseline gofpdf expects
const helveticaAscent = 0.718

// PDFCanvas draws on a single gofpdf page using the core Helvetica fonts
type PDFCanvas struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

// NewPDFCanvas creates a blank page sized by cfg. Automatic page breaks are off, so
// nothing drawn ever spills onto a second page.
func NewPDFCanvas(cfg LayoutConfig) *PDFCanvas {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: cfg.PageWidth, Ht: cfg.PageHeight},
	})
	pdf.SetMargins(cfg.Margin, cfg.Margin, cfg.Margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(true)
	pdf.AddPage()

	return &PDFCanvas{
		pdf: pdf,
		// core fonts are cp1252; accented labels and the bullet need translating
		tr: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

// NewPDFCanvasFactory adapts NewPDFCanvas to CanvasFactory
func NewPDFCanvasFactory() CanvasFactory {
	return func(cfg LayoutConfig) Canvas {
		return NewPDFCanvas(cfg)
	}
}

func (c *PDFCanvas) apply(st PaintState) {
	c.pdf.SetFont(st.Family, st.Style, st.Size)
	c.pdf.SetTextColor(st.Color.R, st.Color.G, st.Color.B)
	c.pdf.SetLineWidth(st.LineWidth)
}

func (c *PDFCanvas) Image(logo *Logo, x, y, w float64) {
	if logo == nil {
		return
	}
	// zero height lets gofpdf keep the aspect ratio from the image header
	h := 0.0
	if logo.Width > 0 && logo.Height > 0 {
		h = w * float64(logo.Height) / float64(logo.Width)
	}
	opts := gofpdf.ImageOptions{ImageType: logo.Format}
	c.pdf.RegisterImageOptionsReader(logo.Key, opts, bytes.NewReader(logo.Data))
	c.pdf.ImageOptions(logo.Key, x, y, w, h, false, opts, 0, "")
}

func (c *PDFCanvas) Text(st PaintState, x, y float64, s string) {
	c.apply(st)
	c.pdf.Text(x, y+st.Size*helveticaAscent, c.tr(s))
}

func (c *PDFCanvas) TextBox(st PaintState, x, y, w float64, align Align, s string) {
	c.apply(st)
	txt := fitWidth(c.tr(s), w, c.pdf.GetStringWidth)
	width := c.pdf.GetStringWidth(txt)
	switch align {
	case AlignCenter:
		x += (w - width) / 2
	case AlignRight:
		x += w - width
	}
	c.pdf.Text(x, y+st.Size*helveticaAscent, txt)
}

func (c *PDFCanvas) Line(st PaintState, x1, y1, x2, y2 float64) {
	c.apply(st)
	c.pdf.Line(x1, y1, x2, y2)
}

func (c *PDFCanvas) Rect(st PaintState, r Rect) {
	c.apply(st)
	c.pdf.Rect(r.X, r.Y, r.W, r.H, "D")
}

// RotatedText draws s counter-clockwise by angle degrees around (x, y)
func (c *PDFCanvas) RotatedText(st PaintState, angle, x, y float64, s string) {
	c.apply(st)
	c.pdf.TransformBegin()
	c.pdf.TransformRotate(angle, x, y)
	c.pdf.Text(x, y+st.Size*helveticaAscent, c.tr(s))
	c.pdf.TransformEnd()
}

func (c *PDFCanvas) Bytes() ([]byte, error) {
	if err := c.pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to draw document: %w", err)
	}
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return buf.Bytes(), nil
}

// fitWidth clips txt so it stays inside its cell. txt is already cp1252, one byte per glyph.
func fitWidth(txt string, w float64, measure func(string) float64) string {
	for len(txt) > 0 && measure(txt) > w {
		txt = txt[:len(txt)-1]
	}
	return txt
}
