// Package memdeck is an in-memory slide deck. It records every canvas
// call into plain structs and can serve the same content back through the
// analyzer's read interfaces, which makes a build round-trip testable
// without touching a real presentation file.
package memdeck

import (
	"github.com/google/uuid"

	"github.com/deckforge/deckconv/canvas"
	"github.com/deckforge/deckconv/coerce"
)

type shapeType int

const (
	shapeTextBox shapeType = iota
	shapeAuto
	shapeTable
	shapeChart
)

// Deck is the in-memory document. New decks default to the 16:9 slide
// size.
type Deck struct {
	w, h   float64
	slides []*Slide
}

// New returns an empty deck.
func New() *Deck {
	return &Deck{w: 13.333, h: 7.5}
}

// SetSlideSize fixes the slide dimensions in inches.
func (d *Deck) SetSlideSize(w, h float64) {
	d.w, d.h = w, h
}

// SlideSize reports the slide dimensions in inches.
func (d *Deck) SlideSize() (float64, float64) {
	return d.w, d.h
}

// AddSlide appends a blank slide.
func (d *Deck) AddSlide() canvas.Slide {
	s := &Slide{}
	d.slides = append(d.slides, s)
	return s
}

// SlideRecords returns the recorded slides in order.
func (d *Deck) SlideRecords() []*Slide {
	return d.slides
}

// Slide records placed shapes in z-order.
type Slide struct {
	shapes []*ShapeRec
}

// ShapeRecords returns the slide's shapes in placement order.
func (s *Slide) ShapeRecords() []*ShapeRec {
	return s.shapes
}

type ShapeRec struct {
	id     string
	typ    shapeType
	rect   canvas.Rect
	kind   canvas.ShapeKind
	fill   *coerce.RGB
	adjust *float64
	frame  *Frame
	table  *TableRec
	chart  *canvas.ChartSpec
}

// ID returns the shape's generated identifier.
func (r *ShapeRec) ID() string { return r.id }

// Rect returns the shape's placement rectangle.
func (r *ShapeRec) Rect() canvas.Rect { return r.rect }

// Fill returns the solid fill color, if one was set.
func (r *ShapeRec) Fill() (coerce.RGB, bool) {
	if r.fill == nil {
		return coerce.RGB{}, false
	}
	return *r.fill, true
}

// Kind returns the auto-shape geometry; ok is false for anything that is
// not an auto-shape.
func (r *ShapeRec) Kind() (canvas.ShapeKind, bool) {
	return r.kind, r.typ == shapeAuto
}

// Adjust returns the geometry adjustment, if one was set.
func (r *ShapeRec) Adjust() (float64, bool) {
	if r.adjust == nil {
		return 0, false
	}
	return *r.adjust, true
}

func (s *Slide) add(typ shapeType, r canvas.Rect) *ShapeRec {
	rec := &ShapeRec{id: uuid.NewString(), typ: typ, rect: r}
	s.shapes = append(s.shapes, rec)
	return rec
}

// AddTextBox places a text box and returns its frame.
func (s *Slide) AddTextBox(r canvas.Rect) canvas.TextFrame {
	rec := s.add(shapeTextBox, r)
	rec.frame = &Frame{wordWrap: true}
	return rec.frame
}

// AddShape places an auto-shape.
func (s *Slide) AddShape(kind canvas.ShapeKind, r canvas.Rect) canvas.Shape {
	rec := s.add(shapeAuto, r)
	rec.kind = kind
	rec.frame = &Frame{wordWrap: true}
	return (*autoShape)(rec)
}

// AddTable places a rows-by-cols table grid.
func (s *Slide) AddTable(rows, cols int, r canvas.Rect) canvas.Table {
	rec := s.add(shapeTable, r)
	t := &TableRec{rows: rows, cols: cols, cells: make([]*Frame, rows*cols)}
	for i := range t.cells {
		t.cells[i] = &Frame{wordWrap: true}
	}
	rec.table = t
	return t
}

// AddChart records a complete chart payload.
func (s *Slide) AddChart(spec canvas.ChartSpec, r canvas.Rect) {
	rec := s.add(shapeChart, r)
	rec.chart = &spec
}

// autoShape exposes the shape mutators over a ShapeRec.
type autoShape ShapeRec

func (a *autoShape) SetFill(c coerce.RGB) {
	a.fill = &c
}

func (a *autoShape) SetAdjust(frac float64) {
	a.adjust = &frac
}

func (a *autoShape) TextFrame() canvas.TextFrame {
	return a.frame
}

// Frame records text frame content.
type Frame struct {
	wordWrap   bool
	margins    [4]float64 // left, right, top, bottom; -1 means default
	marginsSet bool
	paras      []*Para
}

func (f *Frame) SetWordWrap(on bool) {
	f.wordWrap = on
}

func (f *Frame) SetMargins(left, right, top, bottom float64) {
	f.margins = [4]float64{left, right, top, bottom}
	f.marginsSet = true
}

func (f *Frame) AddParagraph() canvas.Paragraph {
	p := &Para{}
	f.paras = append(f.paras, p)
	return p
}

// Para records one paragraph.
type Para struct {
	level    int
	align    string
	alignSet bool
	runs     []*RunRec
}

func (p *Para) SetLevel(level int) {
	p.level = level
}

func (p *Para) SetAlignment(align string) {
	p.align = align
	p.alignSet = true
}

func (p *Para) AddRun() canvas.Run {
	r := &RunRec{}
	p.runs = append(p.runs, r)
	return r
}

// RunRec records one styled run.
type RunRec struct {
	text      string
	font      string
	size      float64
	sizeSet   bool
	bold      bool
	italic    bool
	underline bool
	color     *coerce.RGB
}

func (r *RunRec) SetText(text string)   { r.text = text }
func (r *RunRec) SetFont(name string)   { r.font = name }
func (r *RunRec) SetBold(on bool)       { r.bold = on }
func (r *RunRec) SetItalic(on bool)     { r.italic = on }
func (r *RunRec) SetUnderline(on bool)  { r.underline = on }
func (r *RunRec) SetColor(c coerce.RGB) { r.color = &c }

func (r *RunRec) SetSize(points float64) {
	r.size = points
	r.sizeSet = true
}

// TableRec records a table grid of cell frames.
type TableRec struct {
	rows, cols int
	cells      []*Frame
	colWidths  []float64
}

func (t *TableRec) SetColumnWidths(inches []float64) {
	t.colWidths = append([]float64(nil), inches...)
}

func (t *TableRec) Cell(row, col int) canvas.TextFrame {
	return t.cells[row*t.cols+col]
}
