package invoice

// Point is a page position in points, origin top-left
type Point struct {
	X, Y float64
}

// Rect is a page rectangle in points
type Rect struct {
	X, Y, W, H float64
}

// Bottom returns the y coordinate of the lower edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Column indexes of the line-item table
const (
	ColQuantity = iota
	ColDescription
	ColUnitPrice
	ColTotal
	columnCount
)

// LayoutConfig holds every geometric constant of the sales note. All values are points.
type LayoutConfig struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64

	LeftColumn  float64
	RightColumn float64

	LogoY     float64
	LogoWidth float64

	HeaderTop         float64
	HeaderTopWithLogo float64
	HeaderNameWidth   float64
	HeaderNameGap     float64
	HeaderLineGap     float64
	HeaderLines       int

	FiscalBox        Rect
	FiscalRuleCount  int
	FiscalTextInset  float64
	FiscalLabelY     float64
	FiscalSeriesX    float64
	FiscalNumberY    float64
	FiscalAuthorizeY float64

	CustomerTop         float64
	CustomerTopWithLogo float64
	CustomerRowHeight   float64

	TableGap          float64
	TableWidthInset   float64
	TableHeight       float64
	TableHeaderHeight float64
	TableHeaderLabelY float64
	TableCellInset    float64
	ItemRowPadding    float64
	ItemRowHeight     float64
	// ItemRowLimitInset is how far above the table bottom the last row top must stay
	ItemRowLimitInset float64
	ColumnWidths      [columnCount]float64

	TotalsGap       float64
	TotalsLineGap   float64
	TotalAmountGap  float64
	SignatureGap    float64
	SignatureLabelY float64
	LegalGap        float64

	NoticeInset float64
	NoticeWidth float64
	NoticeAngle float64
}

// DefaultLayout returns the fixed A4 sales-note layout
func DefaultLayout() LayoutConfig {
	return LayoutConfig{
		PageWidth:  595.28,
		PageHeight: 841.89,
		Margin:     30,

		LeftColumn:  60,
		RightColumn: 350,

		LogoY:     30,
		LogoWidth: 100,

		HeaderTop:         50,
		HeaderTopWithLogo: 150,
		HeaderNameWidth:   250,
		HeaderNameGap:     25,
		HeaderLineGap:     15,
		HeaderLines:       6,

		FiscalBox:        Rect{X: 350, Y: 50, W: 180, H: 100},
		FiscalRuleCount:  3,
		FiscalTextInset:  5,
		FiscalLabelY:     15,
		FiscalSeriesX:    90,
		FiscalNumberY:    30,
		FiscalAuthorizeY: 80,

		CustomerTop:         180,
		CustomerTopWithLogo: 280,
		CustomerRowHeight:   20,

		TableGap:          40,
		TableWidthInset:   30,
		TableHeight:       300,
		TableHeaderHeight: 25,
		TableHeaderLabelY: 8,
		TableCellInset:    5,
		ItemRowPadding:    5,
		ItemRowHeight:     20,
		ItemRowLimitInset: 25,
		ColumnWidths:      [columnCount]float64{60, 280, 80, 80},

		TotalsGap:       20,
		TotalsLineGap:   15,
		TotalAmountGap:  80,
		SignatureGap:    70,
		SignatureLabelY: 15,
		LegalGap:        50,

		NoticeInset: 20,
		NoticeWidth: 200,
		NoticeAngle: 90,
	}
}

// ContentWidth is the page width inside both margins
func (c LayoutConfig) ContentWidth() float64 {
	return c.PageWidth - 2*c.Margin
}

// RowCapacity is the number of item rows the table can hold. It does not depend on
// where the table starts.
func (c LayoutConfig) RowCapacity() int {
	limit := c.TableHeight - c.ItemRowLimitInset
	n := 0
	for top := c.TableHeaderHeight + c.ItemRowPadding; top < limit; top += c.ItemRowHeight {
		n++
	}
	return n
}

// HeaderLayout positions the business name and its detail lines
type HeaderLayout struct {
	Name      Point
	NameWidth float64
	Lines     []Point
}

// FiscalLayout positions the fiscal information box
type FiscalLayout struct {
	Box           Rect
	Rules         []float64
	TaxID         Point
	DocumentType  Point
	Series        Point
	Number        Point
	Authorization Point
}

// CustomerLayout positions the fill-in customer fields
type CustomerLayout struct {
	Date    Point
	Client  Point
	TaxID   Point
	Phone   Point
	Address Point
}

// Cell is a table cell box: text starts at X and is aligned within W
type Cell struct {
	X, W float64
}

// TableLayout positions the line-item table and the retained rows
type TableLayout struct {
	Box        Rect
	HeaderLine float64
	Separators []float64
	Cells      [columnCount]Cell
	HeaderY    float64
	Rows       []float64
	// Dropped counts items that did not fit; they are omitted from the document
	Dropped int
}

// TotalsLayout positions the payment-method block and the grand total
type TotalsLayout struct {
	PaymentTitle Point
	PaymentCash  Point
	PaymentCard  Point
	TotalLabel   Point
	TotalAmount  Point
}

// SignatureLayout positions both signature blanks
type SignatureLayout struct {
	AuthorizedLine  Point
	AuthorizedLabel Point
	ReceivedLine    Point
	ReceivedLabel   Point
}

// Layout is the full set of coordinates for one rendering pass
type Layout struct {
	HasLogo     bool
	Logo        Point
	LogoWidth   float64
	Header      HeaderLayout
	Fiscal      FiscalLayout
	Customer    CustomerLayout
	Table       TableLayout
	Totals      TotalsLayout
	Signatures  SignatureLayout
	Legal       Point
	LegalWidth  float64
	Notice      Point
	NoticeSize  float64
	NoticeAngle float64
}

// Compute lays out the page for the logo state and item count. It is a pure function.
func (c LayoutConfig) Compute(hasLogo bool, itemCount int) Layout {
	l := Layout{
		HasLogo:   hasLogo,
		Logo:      Point{X: c.LeftColumn, Y: c.LogoY},
		LogoWidth: c.LogoWidth,
	}

	l.Header = c.header(hasLogo)
	l.Fiscal = c.fiscal()
	l.Customer = c.customer(hasLogo)
	l.Table = c.table(l.Customer.Address.Y+c.TableGap, itemCount)

	totalsY := l.Table.Box.Bottom() + c.TotalsGap
	l.Totals = TotalsLayout{
		PaymentTitle: Point{X: c.LeftColumn, Y: totalsY},
		PaymentCash:  Point{X: c.LeftColumn, Y: totalsY + c.TotalsLineGap},
		PaymentCard:  Point{X: c.LeftColumn, Y: totalsY + 2*c.TotalsLineGap},
		TotalLabel:   Point{X: c.RightColumn, Y: totalsY + c.TotalsLineGap},
		TotalAmount:  Point{X: c.RightColumn + c.TotalAmountGap, Y: totalsY + c.TotalsLineGap},
	}

	signatureY := totalsY + c.SignatureGap
	l.Signatures = SignatureLayout{
		AuthorizedLine:  Point{X: c.LeftColumn, Y: signatureY},
		AuthorizedLabel: Point{X: c.LeftColumn, Y: signatureY + c.SignatureLabelY},
		ReceivedLine:    Point{X: c.RightColumn, Y: signatureY},
		ReceivedLabel:   Point{X: c.RightColumn, Y: signatureY + c.SignatureLabelY},
	}

	l.Legal = Point{X: c.LeftColumn, Y: signatureY + c.LegalGap}
	l.LegalWidth = c.ContentWidth()

	// the notice reads bottom to top, centred on the page height
	l.Notice = Point{X: c.PageWidth - c.NoticeInset, Y: c.PageHeight/2 + c.NoticeWidth/2}
	l.NoticeSize = c.NoticeWidth
	l.NoticeAngle = c.NoticeAngle

	return l
}

func (c LayoutConfig) header(hasLogo bool) HeaderLayout {
	top := c.HeaderTop
	if hasLogo {
		top = c.HeaderTopWithLogo
	}

	h := HeaderLayout{
		Name:      Point{X: c.LeftColumn, Y: top},
		NameWidth: c.HeaderNameWidth,
		Lines:     make([]Point, c.HeaderLines),
	}
	for i := range h.Lines {
		h.Lines[i] = Point{X: c.LeftColumn, Y: top + c.HeaderNameGap + float64(i)*c.HeaderLineGap}
	}
	return h
}

func (c LayoutConfig) fiscal() FiscalLayout {
	box := c.FiscalBox
	spacing := box.H / float64(c.FiscalRuleCount+1)

	f := FiscalLayout{
		Box:           box,
		Rules:         make([]float64, c.FiscalRuleCount),
		TaxID:         Point{X: box.X + c.FiscalTextInset, Y: box.Y + c.FiscalTextInset},
		DocumentType:  Point{X: box.X + c.FiscalTextInset, Y: box.Y + c.FiscalLabelY},
		Series:        Point{X: box.X + c.FiscalSeriesX, Y: box.Y + c.FiscalLabelY},
		Number:        Point{X: box.X + c.FiscalTextInset, Y: box.Y + c.FiscalNumberY},
		Authorization: Point{X: box.X + c.FiscalTextInset, Y: box.Y + c.FiscalAuthorizeY},
	}
	for i := range f.Rules {
		f.Rules[i] = box.Y + float64(i+1)*spacing
	}
	return f
}

func (c LayoutConfig) customer(hasLogo bool) CustomerLayout {
	y := c.CustomerTop
	if hasLogo {
		y = c.CustomerTopWithLogo
	}

	return CustomerLayout{
		Date:    Point{X: c.LeftColumn, Y: y},
		Client:  Point{X: c.LeftColumn, Y: y + c.CustomerRowHeight},
		TaxID:   Point{X: c.LeftColumn, Y: y + 2*c.CustomerRowHeight},
		Phone:   Point{X: c.RightColumn, Y: y + 2*c.CustomerRowHeight},
		Address: Point{X: c.LeftColumn, Y: y + 3*c.CustomerRowHeight},
	}
}

// table places rows sequentially below the header row. Rows whose top reaches the
// limit are dropped rather than moved to another page; this is the legacy single-page
// behaviour and callers are expected to log TableLayout.Dropped.
func (c LayoutConfig) table(top float64, itemCount int) TableLayout {
	t := TableLayout{
		Box:        Rect{X: c.LeftColumn, Y: top, W: c.ContentWidth() - c.TableWidthInset, H: c.TableHeight},
		HeaderLine: top + c.TableHeaderHeight,
		HeaderY:    top + c.TableHeaderLabelY,
	}

	x := c.LeftColumn
	for i, w := range c.ColumnWidths {
		t.Cells[i] = Cell{X: x + c.TableCellInset, W: w - 2*c.TableCellInset}
		x += w
		if i < columnCount-1 {
			t.Separators = append(t.Separators, x)
		}
	}

	limit := top + c.TableHeight - c.ItemRowLimitInset
	rowTop := top + c.TableHeaderHeight + c.ItemRowPadding
	for i := 0; i < itemCount; i++ {
		if rowTop >= limit {
			t.Dropped = itemCount - i
			break
		}
		t.Rows = append(t.Rows, rowTop)
		rowTop += c.ItemRowHeight
	}
	return t
}
