// Package analyze walks an existing slide-deck document and reconstructs a
// compact JSON tree from it. The document itself stays behind capability
// interfaces: the analyzer only ever asks a shape whether it can be read
// as a chart, a table, a picture, a text frame, or a group. Every accessor
// that can fail returns an explicit (value, ok) pair instead of erroring,
// so one unreadable shape never aborts the extraction of its siblings.
package analyze

// Document is a loaded slide-deck document.
type Document interface {
	Slides() []Slide
}

// Slide exposes a slide's shapes in their natural (z) order.
type Slide interface {
	Shapes() []Shape
}

// Shape is one shape on a slide. The analyzer probes the capabilities in
// a fixed priority order: chart, table, picture, text frame, group.
type Shape interface {
	Chart() (Chart, bool)
	Table() (Table, bool)
	Picture() (Picture, bool)
	TextFrame() (TextFrame, bool)
	Group() ([]Shape, bool)
}

// PlaceholderType is the recognized subset of slide-layout placeholder
// roles.
type PlaceholderType int

const (
	PlaceholderOther PlaceholderType = iota
	PlaceholderTitle
	PlaceholderCenterTitle
	PlaceholderSubtitle
)

// TextFrame is a shape's text content.
type TextFrame interface {
	// Placeholder reports the shape's placeholder role, if it has one.
	Placeholder() (PlaceholderType, bool)
	Paragraphs() []Paragraph
}

// Paragraph is one paragraph of a text frame.
type Paragraph interface {
	Level() int
	Text() string
	// Alignment reports an explicit alignment ("left", "center",
	// "right"), if one is set.
	Alignment() (string, bool)
	Runs() []Run
}

// Run is one run of a paragraph.
type Run interface {
	// SizePt reports the run's explicit font size in points, if set.
	SizePt() (float64, bool)
}

// Chart is a chart shape's readable surface.
type Chart interface {
	Title() (string, bool)
	// TypeTag is the document format's name for the chart type.
	TypeTag() string
	Series() []Series
	// WorkbookBlob returns the embedded spreadsheet bytes backing the
	// chart, when the document carries them.
	WorkbookBlob() ([]byte, bool)
}

// Series is one chart series. Values are loosely typed; the analyzer
// coerces them to numbers where it can and keeps the raw value where it
// cannot.
type Series interface {
	Name() string
	Categories() []string
	Values() []any
}

// Table is a table shape's readable surface.
type Table interface {
	Rows() int
	Cols() int
	Cell(row, col int) Cell
}

// Cell is one table cell.
type Cell interface {
	Text() string
	IsMergeOrigin() bool
	IsSpanned() bool
}

// Picture is an image shape.
type Picture interface {
	// ContentType reports the image's MIME type, if known.
	ContentType() (string, bool)
}
