// Package pptx adapts a PowerPoint presentation to the converter's canvas
// and analyzer interfaces. All unioffice access lives here; everything
// above this package works in inches, plain strings, and the coerce color
// type.
package pptx

import (
	"fmt"
	"io"

	"github.com/unidoc/unioffice"
	"github.com/unidoc/unioffice/color"
	"github.com/unidoc/unioffice/drawing"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/presentation"
	"github.com/unidoc/unioffice/schema/soo/dml"
	"github.com/unidoc/unioffice/schema/soo/pml"

	"github.com/deckforge/deckconv/canvas"
	"github.com/deckforge/deckconv/coerce"
)

const emuPerInch = 914400

// Writer builds a presentation file through the canvas interfaces.
type Writer struct {
	p *presentation.Presentation
}

// NewWriter returns a writer over a fresh presentation.
func NewWriter() *Writer {
	return &Writer{p: presentation.New()}
}

// SetSlideSize fixes the slide dimensions in inches.
func (w *Writer) SetSlideSize(wi, hi float64) {
	sz := w.p.X().SldSz
	if sz == nil {
		sz = pml.NewCT_SlideSize()
		w.p.X().SldSz = sz
	}
	sz.CxAttr = int32(wi * emuPerInch)
	sz.CyAttr = int32(hi * emuPerInch)
}

// SlideSize reports the slide dimensions in inches.
func (w *Writer) SlideSize() (float64, float64) {
	sz := w.p.X().SldSz
	if sz == nil {
		return 13.333, 7.5
	}
	return float64(sz.CxAttr) / emuPerInch, float64(sz.CyAttr) / emuPerInch
}

// AddSlide appends a blank slide.
func (w *Writer) AddSlide() canvas.Slide {
	s := w.p.AddSlide()
	return &wSlide{s: s}
}

// Save writes the finished presentation.
func (w *Writer) Save(out io.Writer) error {
	return w.p.Save(out)
}

type wSlide struct {
	s presentation.Slide
}

// newSp appends a raw shape to the slide tree. The library's own textbox
// wrapper keeps its shape private, and the canvas needs body properties
// and geometry guides the wrapper never exposes, so shapes are built here
// the same way the wrapper builds them.
func (s *wSlide) newSp(geom dml.ST_ShapeType, r canvas.Rect) *pml.CT_Shape {
	c := pml.NewCT_GroupShapeChoice()
	s.s.X().CSld.SpTree.Choice = append(s.s.X().CSld.SpTree.Choice, c)

	sp := pml.NewCT_Shape()
	c.Sp = append(c.Sp, sp)
	sp.SpPr = dml.NewCT_ShapeProperties()

	props := drawing.MakeShapeProperties(sp.SpPr)
	props.SetGeometry(geom)
	props.SetPosition(
		measurement.Distance(r.X)*measurement.Inch,
		measurement.Distance(r.Y)*measurement.Inch)
	props.SetSize(
		measurement.Distance(r.W)*measurement.Inch,
		measurement.Distance(r.H)*measurement.Inch)
	return sp
}

func (s *wSlide) AddTextBox(r canvas.Rect) canvas.TextFrame {
	return &wFrame{sp: s.newSp(dml.ST_ShapeTypeRect, r)}
}

func (s *wSlide) AddShape(kind canvas.ShapeKind, r canvas.Rect) canvas.Shape {
	geom := dml.ST_ShapeTypeRect
	if kind == canvas.ShapeChevron {
		geom = dml.ST_ShapeTypeChevron
	}
	return &wShape{sp: s.newSp(geom, r)}
}

func (s *wSlide) AddTable(rows, cols int, r canvas.Rect) canvas.Table {
	return &wTable{
		slide: s,
		rows:  rows,
		cols:  cols,
		rect:  r,
		cells: map[int]canvas.TextFrame{},
	}
}

// AddChart draws a framed stand-in carrying the chart title. The
// underlying library writes no native presentation charts, so the chart
// area is reserved and labeled instead of plotted.
func (s *wSlide) AddChart(spec canvas.ChartSpec, r canvas.Rect) {
	sp := s.newSp(dml.ST_ShapeTypeRect, r)
	drawing.MakeShapeProperties(sp.SpPr).LineProperties().
		SetSolidFill(color.RGB(0xD1, 0xD5, 0xDB))

	label := spec.Title
	if label == "" {
		label = string(spec.Kind)
	}
	f := &wFrame{sp: sp}
	p := f.AddParagraph()
	p.SetAlignment("center")
	run := p.AddRun()
	run.SetText(label)
	run.SetBold(true)
	run.SetSize(14)
}

type wShape struct {
	sp *pml.CT_Shape
}

func (sh *wShape) SetFill(c coerce.RGB) {
	drawing.MakeShapeProperties(sh.sp.SpPr).SetSolidFill(color.RGB(c.R, c.G, c.B))
}

// SetAdjust writes the geometry's single adjustment guide. Preset
// geometry adjust values are in 1000ths of a percent.
func (sh *wShape) SetAdjust(frac float64) {
	if sh.sp.SpPr.PrstGeom == nil {
		return
	}
	sh.sp.SpPr.PrstGeom.AvLst = &dml.CT_GeomGuideList{
		Gd: []*dml.CT_GeomGuide{{
			NameAttr: "adj",
			FmlaAttr: formulaVal(frac),
		}},
	}
}

func (sh *wShape) TextFrame() canvas.TextFrame {
	return &wFrame{sp: sh.sp}
}

// formulaVal renders an adjust fraction as a preset geometry guide
// formula.
func formulaVal(frac float64) string {
	return fmt.Sprintf("val %d", int(frac*100000))
}

type wFrame struct {
	sp *pml.CT_Shape
}

// txBody creates the shape's text body on first use. Fill-only shapes
// never call here and stay without one.
func (f *wFrame) txBody() *dml.CT_TextBody {
	if f.sp.TxBody == nil {
		f.sp.TxBody = dml.NewCT_TextBody()
		f.sp.TxBody.BodyPr = dml.NewCT_TextBodyProperties()
		f.sp.TxBody.BodyPr.WrapAttr = dml.ST_TextWrappingTypeSquare
	}
	return f.sp.TxBody
}

func (f *wFrame) bodyPr() *dml.CT_TextBodyProperties {
	tb := f.txBody()
	if tb.BodyPr == nil {
		tb.BodyPr = dml.NewCT_TextBodyProperties()
	}
	return tb.BodyPr
}

func (f *wFrame) SetWordWrap(on bool) {
	if on {
		f.bodyPr().WrapAttr = dml.ST_TextWrappingTypeSquare
	} else {
		f.bodyPr().WrapAttr = dml.ST_TextWrappingTypeNone
	}
}

// SetMargins sets text insets in inches. Negative values leave the
// library default in place.
func (f *wFrame) SetMargins(left, right, top, bottom float64) {
	bp := f.bodyPr()
	if left >= 0 {
		bp.LInsAttr = inset(left)
	}
	if right >= 0 {
		bp.RInsAttr = inset(right)
	}
	if top >= 0 {
		bp.TInsAttr = inset(top)
	}
	if bottom >= 0 {
		bp.BInsAttr = inset(bottom)
	}
}

func inset(inches float64) *dml.ST_Coordinate32 {
	return &dml.ST_Coordinate32{
		ST_Coordinate32Unqualified: unioffice.Int32(int32(inches * emuPerInch)),
	}
}

func (f *wFrame) AddParagraph() canvas.Paragraph {
	tb := f.txBody()
	p := dml.NewCT_TextParagraph()
	tb.P = append(tb.P, p)
	return &wPara{p: drawing.MakeParagraph(p)}
}

type wPara struct {
	p drawing.Paragraph
}

func (p *wPara) SetLevel(level int) {
	p.p.Properties().SetLevel(int32(level))
}

func (p *wPara) SetAlignment(align string) {
	switch align {
	case "center":
		p.p.Properties().SetAlign(dml.ST_TextAlignTypeCtr)
	case "right":
		p.p.Properties().SetAlign(dml.ST_TextAlignTypeR)
	default:
		p.p.Properties().SetAlign(dml.ST_TextAlignTypeL)
	}
}

func (p *wPara) AddRun() canvas.Run {
	return &wRun{r: p.p.AddRun()}
}

type wRun struct {
	r drawing.Run
}

func (r *wRun) SetText(text string) {
	r.r.SetText(text)
}

func (r *wRun) SetFont(name string) {
	r.r.Properties().SetFont(name)
}

func (r *wRun) SetSize(points float64) {
	r.r.Properties().SetSize(measurement.Distance(points) * measurement.Point)
}

func (r *wRun) SetBold(on bool) {
	r.r.Properties().SetBold(on)
}

// rPr ensures and returns the run's character properties. The library
// wrapper covers font, size, bold, and fill but not italic or underline.
func (r *wRun) rPr() *dml.CT_TextCharacterProperties {
	r.r.Properties()
	return r.r.X().R.RPr
}

func (r *wRun) SetItalic(on bool) {
	r.rPr().IAttr = unioffice.Bool(on)
}

func (r *wRun) SetUnderline(on bool) {
	if on {
		r.rPr().UAttr = dml.ST_TextUnderlineTypeSng
	} else {
		r.rPr().UAttr = dml.ST_TextUnderlineTypeNone
	}
}

func (r *wRun) SetColor(c coerce.RGB) {
	r.r.Properties().SetSolidFill(color.RGB(c.R, c.G, c.B))
}

// wTable lays a grid of cell text boxes over the table rectangle. The
// library has no native presentation tables, so the grid is composed from
// primitives. Cells are created on first access, after column widths are
// known.
type wTable struct {
	slide  *wSlide
	rows   int
	cols   int
	rect   canvas.Rect
	widths []float64
	cells  map[int]canvas.TextFrame
}

func (t *wTable) SetColumnWidths(inches []float64) {
	t.widths = append([]float64(nil), inches...)
}

// colEdges returns the x offset of each column boundary within the table
// rectangle. Columns without an explicit width share the leftover space.
func (t *wTable) colEdges() []float64 {
	edges := make([]float64, t.cols+1)
	fixed := 0.0
	nFixed := 0
	for i := 0; i < t.cols && i < len(t.widths); i++ {
		fixed += t.widths[i]
		nFixed++
	}
	free := t.rect.W - fixed
	if free < 0 {
		free = 0
	}
	per := 0.0
	if t.cols > nFixed {
		per = free / float64(t.cols-nFixed)
	}
	x := 0.0
	for i := 0; i < t.cols; i++ {
		edges[i] = x
		if i < len(t.widths) {
			x += t.widths[i]
		} else {
			x += per
		}
	}
	edges[t.cols] = x
	return edges
}

func (t *wTable) Cell(row, col int) canvas.TextFrame {
	key := row*t.cols + col
	if f, ok := t.cells[key]; ok {
		return f
	}
	edges := t.colEdges()
	rowH := t.rect.H / float64(t.rows)
	r := canvas.Rect{
		X: t.rect.X + edges[col],
		Y: t.rect.Y + float64(row)*rowH,
		W: edges[col+1] - edges[col],
		H: rowH,
	}
	sp := t.slide.newSp(dml.ST_ShapeTypeRect, r)
	drawing.MakeShapeProperties(sp.SpPr).LineProperties().
		SetSolidFill(color.RGB(0xD1, 0xD5, 0xDB))
	f := &wFrame{sp: sp}
	t.cells[key] = f
	return f
}
