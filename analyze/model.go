package analyze

import "github.com/deckforge/deckconv/compact"

// FileResult is the full extraction of one document.
type FileResult struct {
	FileName   string        `json:"file_name"`
	SlideCount int           `json:"slide_count"`
	Slides     []SlideResult `json:"slides"`
}

// SlideResult is one slide's extracted elements. Elements holds the
// per-kind nodes below; a slide with nothing extractable has an empty
// list, which compaction then drops.
type SlideResult struct {
	SlideNumber int   `json:"slide_number"`
	Elements    []any `json:"elements"`
}

// TextNode is an extracted text frame.
type TextNode struct {
	Kind       string          `json:"kind"`
	Role       string          `json:"role,omitempty"`
	Paragraphs []ParagraphNode `json:"paragraphs,omitempty"`
}

// ParagraphNode keeps level without omitempty so an outline level of
// zero survives compaction.
type ParagraphNode struct {
	Level     int    `json:"level"`
	Text      string `json:"text"`
	Alignment string `json:"alignment,omitempty"`
}

// TableNode is an extracted table.
type TableNode struct {
	Kind  string     `json:"kind"`
	Rows  int        `json:"rows"`
	Cols  int        `json:"cols"`
	Cells []CellNode `json:"cells,omitempty"`
}

// CellNode addresses a cell by row and column. Row and column zero are
// meaningful, so neither carries omitempty.
type CellNode struct {
	Row         int    `json:"row"`
	Col         int    `json:"col"`
	Text        string `json:"text"`
	MergeOrigin bool   `json:"merge_origin,omitempty"`
	Spanned     bool   `json:"is_spanned,omitempty"`
}

// ChartNode is an extracted chart.
type ChartNode struct {
	Kind      string       `json:"kind"`
	Title     string       `json:"title,omitempty"`
	ChartType string       `json:"chart_type,omitempty"`
	Series    []SeriesNode `json:"series,omitempty"`
	ExcelData [][]string   `json:"excel_data,omitempty"`
}

// SeriesNode is one chart series.
type SeriesNode struct {
	Name   string      `json:"name,omitempty"`
	Points []PointNode `json:"points,omitempty"`
}

// PointNode pairs a category with its value. Value stays `any`: when a
// source value will not coerce to a number the raw value is kept as-is.
type PointNode struct {
	Category string `json:"category,omitempty"`
	Value    any    `json:"value,omitempty"`
}

// ImageNode is an extracted picture.
type ImageNode struct {
	Kind        string `json:"kind"`
	ContentType string `json:"content_type,omitempty"`
}

// GroupNode is a group shape with its immediate non-group children.
type GroupNode struct {
	Kind     string `json:"kind"`
	Children []any  `json:"children,omitempty"`
}

// Compact returns the result as a generic tree with every empty branch
// pruned, ready for JSON output.
func (r *FileResult) Compact() (any, error) {
	return compact.Struct(r)
}

// MarshalCompact renders the pruned result as JSON.
func (r *FileResult) MarshalCompact(pretty bool) ([]byte, error) {
	v, err := r.Compact()
	if err != nil {
		return nil, err
	}
	return compact.Marshal(v, pretty)
}
