package analyze

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Role size thresholds in points. A text frame with no placeholder role
// is classified by the first explicitly sized run of its first paragraph.
const (
	titleSizePt   = 28
	headingSizePt = 20
)

// Analyzer extracts a FileResult from a Document. The zero value is
// usable; Logger defaults to a no-op.
type Analyzer struct {
	Logger *zap.Logger
}

func (a *Analyzer) logger() *zap.Logger {
	if a != nil && a.Logger != nil {
		return a.Logger
	}
	return zap.NewNop()
}

// AnalyzeDocument walks every slide of doc and returns the extracted
// tree. Shapes that expose none of the known capabilities are skipped.
func (a *Analyzer) AnalyzeDocument(doc Document, fileName string) *FileResult {
	slides := doc.Slides()
	res := &FileResult{
		FileName:   fileName,
		SlideCount: len(slides),
	}
	for i, s := range slides {
		sr := SlideResult{SlideNumber: i + 1}
		for _, sh := range s.Shapes() {
			if node := a.extractShape(sh, true); node != nil {
				sr.Elements = append(sr.Elements, node)
			}
		}
		res.Slides = append(res.Slides, sr)
	}
	return res
}

// extractShape classifies a shape by probing its capabilities in priority
// order. Groups are descended one level only, and grandchild groups are
// dropped.
func (a *Analyzer) extractShape(sh Shape, allowGroup bool) any {
	if c, ok := sh.Chart(); ok {
		return a.extractChart(c)
	}
	if t, ok := sh.Table(); ok {
		return extractTable(t)
	}
	if p, ok := sh.Picture(); ok {
		return extractPicture(p)
	}
	if tf, ok := sh.TextFrame(); ok {
		return extractText(tf)
	}
	if children, ok := sh.Group(); ok && allowGroup {
		g := &GroupNode{Kind: "group"}
		for _, child := range children {
			if node := a.extractShape(child, false); node != nil {
				g.Children = append(g.Children, node)
			}
		}
		if len(g.Children) == 0 {
			return nil
		}
		return g
	}
	return nil
}

func extractText(tf TextFrame) *TextNode {
	node := &TextNode{Kind: "text", Role: classifyRole(tf)}
	for _, p := range tf.Paragraphs() {
		pn := ParagraphNode{Level: p.Level(), Text: p.Text()}
		if align, ok := p.Alignment(); ok {
			pn.Alignment = align
		}
		node.Paragraphs = append(node.Paragraphs, pn)
	}
	return node
}

// classifyRole prefers the layout's placeholder role and falls back to a
// font-size heuristic on the first paragraph's first sized run.
func classifyRole(tf TextFrame) string {
	if ph, ok := tf.Placeholder(); ok {
		switch ph {
		case PlaceholderTitle, PlaceholderCenterTitle:
			return "title"
		case PlaceholderSubtitle:
			return "subtitle"
		}
	}
	paras := tf.Paragraphs()
	if len(paras) > 0 {
		for _, r := range paras[0].Runs() {
			size, ok := r.SizePt()
			if !ok {
				continue
			}
			switch {
			case size >= titleSizePt:
				return "title"
			case size >= headingSizePt:
				return "heading"
			}
			break
		}
	}
	return "body"
}

func extractTable(t Table) *TableNode {
	node := &TableNode{Kind: "table", Rows: t.Rows(), Cols: t.Cols()}
	for r := 0; r < t.Rows(); r++ {
		for c := 0; c < t.Cols(); c++ {
			cell := t.Cell(r, c)
			if cell == nil {
				continue
			}
			node.Cells = append(node.Cells, CellNode{
				Row:         r,
				Col:         c,
				Text:        cell.Text(),
				MergeOrigin: cell.IsMergeOrigin(),
				Spanned:     cell.IsSpanned(),
			})
		}
	}
	return node
}

func (a *Analyzer) extractChart(c Chart) *ChartNode {
	node := &ChartNode{Kind: "chart", ChartType: c.TypeTag()}
	if title, ok := c.Title(); ok {
		node.Title = title
	}
	for _, s := range c.Series() {
		sn := SeriesNode{Name: s.Name()}
		cats := s.Categories()
		vals := s.Values()
		n := len(cats)
		if len(vals) < n {
			n = len(vals)
		}
		for i := 0; i < n; i++ {
			sn.Points = append(sn.Points, PointNode{
				Category: cats[i],
				Value:    coerceNumber(vals[i]),
			})
		}
		node.Series = append(node.Series, sn)
	}
	if blob, ok := c.WorkbookBlob(); ok {
		grid, err := workbookGrid(blob)
		if err != nil {
			a.logger().Debug("skipping embedded chart workbook",
				zap.String("chart_type", node.ChartType),
				zap.Error(err))
		} else {
			node.ExcelData = grid
		}
	}
	return node
}

// coerceNumber turns numeric-looking values into float64 and keeps
// anything else untouched.
func coerceNumber(v any) any {
	switch n := v.(type) {
	case nil:
		return nil
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f
		}
		return n
	default:
		return v
	}
}

func extractPicture(p Picture) *ImageNode {
	node := &ImageNode{Kind: "image"}
	if ct, ok := p.ContentType(); ok {
		node.ContentType = ct
	}
	return node
}
