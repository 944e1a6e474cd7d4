// Package canvas defines the capability surface the deck builder renders
// onto. The visual-document library itself (shape geometry, serialization)
// stays behind these interfaces: the builder only ever asks to create a
// slide and place text, rectangles, chevrons, tables, and charts at
// positions. memdeck provides the in-memory implementation; pptx adapts a
// real presentation file.
package canvas

import "github.com/deckforge/deckconv/coerce"

// Rect is a physical rectangle. Coordinates and sizes are in inches.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// ShapeKind selects a placeable auto-shape geometry.
type ShapeKind int

const (
	ShapeRectangle ShapeKind = iota
	ShapeChevron
)

// ChartKind is the resolved, renderable chart type after the dispatcher
// has folded orientation/stacking/marker options in.
type ChartKind string

const (
	ChartPie             ChartKind = "pie"
	ChartColumnClustered ChartKind = "column-clustered"
	ChartColumnStacked   ChartKind = "column-stacked"
	ChartBarClustered    ChartKind = "bar-clustered"
	ChartBarStacked      ChartKind = "bar-stacked"
	ChartLine            ChartKind = "line"
	ChartLineMarkers     ChartKind = "line-markers"
)

// LegendPosition places a chart legend. The renderer reserves padding on
// the named side so the legend never overlaps the plot area.
type LegendPosition string

const (
	LegendRight  LegendPosition = "right"
	LegendLeft   LegendPosition = "left"
	LegendTop    LegendPosition = "top"
	LegendBottom LegendPosition = "bottom"
	LegendCorner LegendPosition = "corner"
)

// ChartSeries is one named data series handed to the canvas.
type ChartSeries struct {
	Name   string
	Values []float64
	Color  *coerce.RGB
	Smooth bool
}

// ChartSpec is the complete chart payload. Drawing it is the canvas
// implementation's business.
type ChartSpec struct {
	Kind       ChartKind
	Title      string
	Categories []string
	Series     []ChartSeries
	// PointColors overrides the color of individual data points, indexed
	// by category. Only pie charts use it.
	PointColors       []*coerce.RGB
	Legend            LegendPosition
	ShowPercentLabels bool
}

// Canvas is a visual document under construction.
type Canvas interface {
	// SetSlideSize fixes the slide dimensions in inches for every slide.
	SetSlideSize(w, h float64)
	// SlideSize reports the current slide dimensions.
	SlideSize() (w, h float64)
	// AddSlide appends a blank slide.
	AddSlide() Slide
}

// Slide places elements. Placement order is z-order.
type Slide interface {
	AddTextBox(r Rect) TextFrame
	AddShape(kind ShapeKind, r Rect) Shape
	AddTable(rows, cols int, r Rect) Table
	AddChart(spec ChartSpec, r Rect)
}

// Shape is a placed auto-shape.
type Shape interface {
	SetFill(c coerce.RGB)
	// SetAdjust tunes the geometry's single adjustment handle; for a
	// chevron this is the point sharpness fraction.
	SetAdjust(frac float64)
	TextFrame() TextFrame
}

// TextFrame holds paragraphs inside a shape or text box.
type TextFrame interface {
	SetWordWrap(on bool)
	// SetMargins sets text insets in inches. Negative values mean "leave
	// the implementation default".
	SetMargins(left, right, top, bottom float64)
	AddParagraph() Paragraph
}

// Paragraph is one paragraph of a text frame.
type Paragraph interface {
	SetLevel(level int)
	SetAlignment(align string) // "left" | "center" | "right"
	AddRun() Run
}

// Run is one styled run of text.
type Run interface {
	SetText(text string)
	SetFont(name string)
	SetSize(points float64)
	SetBold(on bool)
	SetItalic(on bool)
	SetUnderline(on bool)
	SetColor(c coerce.RGB)
}

// Table is a placed table grid.
type Table interface {
	SetColumnWidths(inches []float64)
	// Cell returns the text frame of the cell at (row, col).
	Cell(row, col int) TextFrame
}
