package pptx

import (
	"bytes"
	"fmt"
	"io"

	"github.com/unidoc/unioffice/presentation"
	"github.com/unidoc/unioffice/schema/soo/dml"
	"github.com/unidoc/unioffice/schema/soo/pml"

	"github.com/deckforge/deckconv/analyze"
)

const (
	uriChart = "http://schemas.openxmlformats.org/drawingml/2006/chart"
	uriTable = "http://schemas.openxmlformats.org/drawingml/2006/table"
)

// Open parses presentation file bytes into the analyzer's read view.
func Open(data []byte) (analyze.Document, error) {
	return OpenReader(bytes.NewReader(data), int64(len(data)))
}

// OpenReader is Open over an io.ReaderAt.
func OpenReader(r io.ReaderAt, size int64) (analyze.Document, error) {
	p, err := presentation.Read(r, size)
	if err != nil {
		return nil, fmt.Errorf("read presentation: %w", err)
	}
	return &rDoc{p: p}, nil
}

type rDoc struct {
	p *presentation.Presentation
}

func (d *rDoc) Slides() []analyze.Slide {
	slides := d.p.Slides()
	out := make([]analyze.Slide, len(slides))
	for i := range slides {
		out[i] = &rSlide{s: slides[i]}
	}
	return out
}

type rSlide struct {
	s presentation.Slide
}

func (s *rSlide) Shapes() []analyze.Shape {
	x := s.s.X()
	if x == nil || x.CSld == nil || x.CSld.SpTree == nil {
		return nil
	}
	return groupShapes(x.CSld.SpTree)
}

// groupShapes flattens one group level's choice entries into shape
// wrappers, preserving document order. Connectors carry no extractable
// content and are dropped.
func groupShapes(tree *pml.CT_GroupShape) []analyze.Shape {
	var out []analyze.Shape
	for _, c := range tree.Choice {
		for _, sp := range c.Sp {
			out = append(out, &rShape{sp: sp})
		}
		for _, gf := range c.GraphicFrame {
			out = append(out, &rFrameShape{gf: gf})
		}
		for _, pic := range c.Pic {
			out = append(out, &rPicShape{pic: pic})
		}
		for _, grp := range c.GrpSp {
			out = append(out, &rGroupShape{grp: grp})
		}
	}
	return out
}

// rShape is a plain shape; its only readable capability is text.
type rShape struct {
	sp *pml.CT_Shape
}

func (s *rShape) Chart() (analyze.Chart, bool)     { return nil, false }
func (s *rShape) Table() (analyze.Table, bool)     { return nil, false }
func (s *rShape) Picture() (analyze.Picture, bool) { return nil, false }
func (s *rShape) Group() ([]analyze.Shape, bool)   { return nil, false }

func (s *rShape) TextFrame() (analyze.TextFrame, bool) {
	if s.sp.TxBody == nil || len(s.sp.TxBody.P) == 0 {
		return nil, false
	}
	return &rTextFrame{sp: s.sp}, true
}

type rTextFrame struct {
	sp *pml.CT_Shape
}

func (f *rTextFrame) Placeholder() (analyze.PlaceholderType, bool) {
	nv := f.sp.NvSpPr
	if nv == nil || nv.NvPr == nil || nv.NvPr.Ph == nil {
		return analyze.PlaceholderOther, false
	}
	switch nv.NvPr.Ph.TypeAttr {
	case pml.ST_PlaceholderTypeTitle:
		return analyze.PlaceholderTitle, true
	case pml.ST_PlaceholderTypeCtrTitle:
		return analyze.PlaceholderCenterTitle, true
	case pml.ST_PlaceholderTypeSubTitle:
		return analyze.PlaceholderSubtitle, true
	}
	return analyze.PlaceholderOther, true
}

func (f *rTextFrame) Paragraphs() []analyze.Paragraph {
	out := make([]analyze.Paragraph, len(f.sp.TxBody.P))
	for i, p := range f.sp.TxBody.P {
		out[i] = &rParagraph{p: p}
	}
	return out
}

type rParagraph struct {
	p *dml.CT_TextParagraph
}

func (p *rParagraph) Level() int {
	if p.p.PPr == nil || p.p.PPr.LvlAttr == nil {
		return 0
	}
	return int(*p.p.PPr.LvlAttr)
}

func (p *rParagraph) Alignment() (string, bool) {
	if p.p.PPr == nil {
		return "", false
	}
	switch p.p.PPr.AlgnAttr {
	case dml.ST_TextAlignTypeL:
		return "left", true
	case dml.ST_TextAlignTypeCtr:
		return "center", true
	case dml.ST_TextAlignTypeR:
		return "right", true
	}
	return "", false
}

func (p *rParagraph) Text() string {
	var b bytes.Buffer
	for _, r := range p.p.EG_TextRun {
		if r.R != nil {
			b.WriteString(r.R.T)
		}
		if r.Br != nil {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (p *rParagraph) Runs() []analyze.Run {
	var out []analyze.Run
	for _, r := range p.p.EG_TextRun {
		if r.R != nil {
			out = append(out, &rRun{r: r.R})
		}
	}
	return out
}

type rRun struct {
	r *dml.CT_RegularTextRun
}

// SizePt reports the explicit run size. The file stores hundredths of a
// point.
func (r *rRun) SizePt() (float64, bool) {
	if r.r.RPr == nil || r.r.RPr.SzAttr == nil {
		return 0, false
	}
	return float64(*r.r.RPr.SzAttr) / 100, true
}

// rFrameShape is a graphic frame: a table or a chart, told apart by the
// graphic data URI.
type rFrameShape struct {
	gf *pml.CT_GraphicalObjectFrame
}

func (s *rFrameShape) uri() string {
	if s.gf.Graphic == nil || s.gf.Graphic.GraphicData == nil {
		return ""
	}
	return s.gf.Graphic.GraphicData.UriAttr
}

func (s *rFrameShape) Picture() (analyze.Picture, bool)     { return nil, false }
func (s *rFrameShape) TextFrame() (analyze.TextFrame, bool) { return nil, false }
func (s *rFrameShape) Group() ([]analyze.Shape, bool)       { return nil, false }

// Chart reports chart frames. The library resolves no chart part
// relationships for presentations, so the chart is identified but its
// series and embedded workbook stay unavailable.
func (s *rFrameShape) Chart() (analyze.Chart, bool) {
	if s.uri() != uriChart {
		return nil, false
	}
	return rChart{}, true
}

func (s *rFrameShape) Table() (analyze.Table, bool) {
	if s.uri() != uriTable {
		return nil, false
	}
	for _, el := range s.gf.Graphic.GraphicData.Any {
		if tbl, ok := el.(*dml.CT_Table); ok {
			return &rTable{tbl: tbl}, true
		}
	}
	return nil, false
}

type rChart struct{}

func (rChart) Title() (string, bool)        { return "", false }
func (rChart) TypeTag() string              { return "chart" }
func (rChart) Series() []analyze.Series     { return nil }
func (rChart) WorkbookBlob() ([]byte, bool) { return nil, false }

type rTable struct {
	tbl *dml.CT_Table
}

func (t *rTable) Rows() int {
	return len(t.tbl.Tr)
}

func (t *rTable) Cols() int {
	cols := 0
	if t.tbl.TblGrid != nil {
		cols = len(t.tbl.TblGrid.GridCol)
	}
	for _, tr := range t.tbl.Tr {
		if len(tr.Tc) > cols {
			cols = len(tr.Tc)
		}
	}
	return cols
}

func (t *rTable) Cell(row, col int) analyze.Cell {
	if row < 0 || row >= len(t.tbl.Tr) {
		return rCell{}
	}
	tr := t.tbl.Tr[row]
	if col < 0 || col >= len(tr.Tc) {
		return rCell{}
	}
	return rCell{tc: tr.Tc[col]}
}

type rCell struct {
	tc *dml.CT_TableCell
}

func (c rCell) Text() string {
	if c.tc == nil || c.tc.TxBody == nil {
		return ""
	}
	var b bytes.Buffer
	for i, p := range c.tc.TxBody.P {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString((&rParagraph{p: p}).Text())
	}
	return b.String()
}

// IsMergeOrigin reports whether the cell starts a horizontal or vertical
// span.
func (c rCell) IsMergeOrigin() bool {
	if c.tc == nil {
		return false
	}
	return (c.tc.GridSpanAttr != nil && *c.tc.GridSpanAttr > 1) ||
		(c.tc.RowSpanAttr != nil && *c.tc.RowSpanAttr > 1)
}

// IsSpanned reports whether the cell is covered by another cell's span.
func (c rCell) IsSpanned() bool {
	if c.tc == nil {
		return false
	}
	return (c.tc.HMergeAttr != nil && *c.tc.HMergeAttr) ||
		(c.tc.VMergeAttr != nil && *c.tc.VMergeAttr)
}

type rPicShape struct {
	pic *pml.CT_Picture
}

func (s *rPicShape) Chart() (analyze.Chart, bool)         { return nil, false }
func (s *rPicShape) Table() (analyze.Table, bool)         { return nil, false }
func (s *rPicShape) TextFrame() (analyze.TextFrame, bool) { return nil, false }
func (s *rPicShape) Group() ([]analyze.Shape, bool)       { return nil, false }

func (s *rPicShape) Picture() (analyze.Picture, bool) {
	return rPicture{}, true
}

// rPicture has no relationship access, so the image's media type is
// unknown.
type rPicture struct{}

func (rPicture) ContentType() (string, bool) { return "", false }

type rGroupShape struct {
	grp *pml.CT_GroupShape
}

func (s *rGroupShape) Chart() (analyze.Chart, bool)         { return nil, false }
func (s *rGroupShape) Table() (analyze.Table, bool)         { return nil, false }
func (s *rGroupShape) Picture() (analyze.Picture, bool)     { return nil, false }
func (s *rGroupShape) TextFrame() (analyze.TextFrame, bool) { return nil, false }

func (s *rGroupShape) Group() ([]analyze.Shape, bool) {
	return groupShapes(s.grp), true
}
