package memdeck

import (
	"strings"

	"github.com/deckforge/deckconv/analyze"
	"github.com/deckforge/deckconv/canvas"
)

// Document returns a read view of the deck satisfying the analyzer's
// interfaces. The view shares the deck's data; build further and the view
// sees it.
func (d *Deck) Document() analyze.Document {
	return docView{d}
}

type docView struct {
	d *Deck
}

func (v docView) Slides() []analyze.Slide {
	out := make([]analyze.Slide, len(v.d.slides))
	for i, s := range v.d.slides {
		out[i] = slideView{s}
	}
	return out
}

type slideView struct {
	s *Slide
}

func (v slideView) Shapes() []analyze.Shape {
	out := make([]analyze.Shape, len(v.s.shapes))
	for i, rec := range v.s.shapes {
		out[i] = shapeView{rec}
	}
	return out
}

type shapeView struct {
	rec *ShapeRec
}

func (v shapeView) Chart() (analyze.Chart, bool) {
	if v.rec.typ != shapeChart {
		return nil, false
	}
	return chartView{v.rec}, true
}

func (v shapeView) Table() (analyze.Table, bool) {
	if v.rec.typ != shapeTable {
		return nil, false
	}
	return tableView{v.rec.table}, true
}

// Picture always reports false: the in-memory deck has no image shapes.
func (v shapeView) Picture() (analyze.Picture, bool) {
	return nil, false
}

func (v shapeView) TextFrame() (analyze.TextFrame, bool) {
	if v.rec.frame == nil || len(v.rec.frame.paras) == 0 {
		return nil, false
	}
	return frameView{v.rec.frame}, true
}

// Group always reports false: the in-memory deck records a flat shape
// list per slide.
func (v shapeView) Group() ([]analyze.Shape, bool) {
	return nil, false
}

type frameView struct {
	f *Frame
}

// Placeholder reports false; in-memory shapes carry no layout role.
func (v frameView) Placeholder() (analyze.PlaceholderType, bool) {
	return analyze.PlaceholderOther, false
}

func (v frameView) Paragraphs() []analyze.Paragraph {
	out := make([]analyze.Paragraph, len(v.f.paras))
	for i, p := range v.f.paras {
		out[i] = paraView{p}
	}
	return out
}

type paraView struct {
	p *Para
}

func (v paraView) Level() int { return v.p.level }

func (v paraView) Text() string {
	var b strings.Builder
	for _, r := range v.p.runs {
		b.WriteString(r.text)
	}
	return b.String()
}

func (v paraView) Alignment() (string, bool) {
	return v.p.align, v.p.alignSet
}

func (v paraView) Runs() []analyze.Run {
	out := make([]analyze.Run, len(v.p.runs))
	for i, r := range v.p.runs {
		out[i] = runView{r}
	}
	return out
}

type runView struct {
	r *RunRec
}

func (v runView) SizePt() (float64, bool) {
	return v.r.size, v.r.sizeSet
}

type tableView struct {
	t *TableRec
}

func (v tableView) Rows() int { return v.t.rows }
func (v tableView) Cols() int { return v.t.cols }

func (v tableView) Cell(row, col int) analyze.Cell {
	return cellView{v.t.cells[row*v.t.cols+col]}
}

type cellView struct {
	f *Frame
}

// Text joins the cell's paragraphs with newlines.
func (v cellView) Text() string {
	parts := make([]string, len(v.f.paras))
	for i, p := range v.f.paras {
		parts[i] = paraView{p}.Text()
	}
	return strings.Join(parts, "\n")
}

func (v cellView) IsMergeOrigin() bool { return false }
func (v cellView) IsSpanned() bool     { return false }

type chartView struct {
	rec *ShapeRec
}

func (v chartView) Title() (string, bool) {
	return v.rec.chart.Title, v.rec.chart.Title != ""
}

func (v chartView) TypeTag() string {
	return string(v.rec.chart.Kind)
}

func (v chartView) Series() []analyze.Series {
	out := make([]analyze.Series, len(v.rec.chart.Series))
	for i := range v.rec.chart.Series {
		out[i] = seriesView{
			cats: v.rec.chart.Categories,
			s:    &v.rec.chart.Series[i],
		}
	}
	return out
}

// WorkbookBlob reports false; the in-memory deck keeps series values
// directly and embeds no spreadsheet.
func (v chartView) WorkbookBlob() ([]byte, bool) {
	return nil, false
}

type seriesView struct {
	cats []string
	s    *canvas.ChartSeries
}

func (v seriesView) Name() string {
	return v.s.Name
}

func (v seriesView) Categories() []string {
	return v.cats
}

func (v seriesView) Values() []any {
	out := make([]any, len(v.s.Values))
	for i, f := range v.s.Values {
		out[i] = f
	}
	return out
}
