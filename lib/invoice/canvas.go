package invoice

// Align is the horizontal alignment of text inside a box
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Color is an RGB fill color for text
type Color struct {
	R, G, B int
}

var (
	Black = Color{}
	Red   = Color{R: 255}
)

const (
	FontFamily    = "Helvetica"
	StyleRegular  = ""
	StyleBold     = "B"
	DefaultStroke = 0.5
)

// PaintState is the font, color and stroke used by one drawing call. It is a value:
// each With method returns a new state and never changes the receiver, so no drawing
// step depends on what an earlier step left behind.
type PaintState struct {
	Family    string
	Style     string
	Size      float64
	Color     Color
	LineWidth float64
}

// DefaultPaint is regular black Helvetica 10 with a thin stroke
func DefaultPaint() PaintState {
	return PaintState{
		Family:    FontFamily,
		Style:     StyleRegular,
		Size:      10,
		Color:     Black,
		LineWidth: DefaultStroke,
	}
}

func (s PaintState) WithSize(size float64) PaintState {
	s.Size = size
	return s
}

func (s PaintState) Bold() PaintState {
	s.Style = StyleBold
	return s
}

func (s PaintState) WithColor(c Color) PaintState {
	s.Color = c
	return s
}

func (s PaintState) WithLineWidth(w float64) PaintState {
	s.LineWidth = w
	return s
}

// Canvas receives drawing primitives in page coordinates (points, origin top-left).
// Text positions are the top of the text line, not the baseline.
type Canvas interface {
	Image(logo *Logo, x, y, w float64)
	Text(st PaintState, x, y float64, s string)
	TextBox(st PaintState, x, y, w float64, align Align, s string)
	Line(st PaintState, x1, y1, x2, y2 float64)
	Rect(st PaintState, r Rect)
	RotatedText(st PaintState, angle, x, y float64, s string)
	// Bytes finalizes the page and returns the encoded document
	Bytes() ([]byte, error)
}

// CanvasFactory creates a blank single-page canvas
type CanvasFactory func(cfg LayoutConfig) Canvas
