package render

import (
	"github.com/deckforge/deckconv/canvas"
	"github.com/deckforge/deckconv/spec"
)

// renderTable builds a (1 + row count) × max(header count, widest row)
// grid. The header row is always bold 12pt; rows shorter than the grid
// are padded with empty cells.
func (r *Renderer) renderTable(s canvas.Slide, el spec.ElementSpec) {
	ncols := len(el.Headers)
	for _, row := range el.Rows {
		if len(row) > ncols {
			ncols = len(row)
		}
	}
	if ncols == 0 {
		r.ignore(el, "table without headers or rows")
		return
	}
	nrows := 1 + len(el.Rows)

	rect := rectOf(el.Position, defaultTablePos)
	tbl := s.AddTable(nrows, ncols, rect)

	if len(el.ColumnWidths) > 0 {
		widths := el.ColumnWidths
		if len(widths) > ncols {
			widths = widths[:ncols]
		}
		tbl.SetColumnWidths(widths)
	}

	align := ""
	if el.Style != nil {
		align = el.Style.Align
	}

	for c := 0; c < ncols; c++ {
		text := ""
		if c < len(el.Headers) {
			text = el.Headers[c]
		}
		r.fillCell(tbl.Cell(0, c), text, true, align)
	}
	for i, row := range el.Rows {
		for c := 0; c < ncols; c++ {
			text := ""
			if c < len(row) {
				text = row[c]
			}
			r.fillCell(tbl.Cell(i+1, c), text, false, align)
		}
	}
}

func (r *Renderer) fillCell(tf canvas.TextFrame, text string, header bool, align string) {
	p := tf.AddParagraph()
	if align != "" {
		p.SetAlignment(align)
	}
	run := p.AddRun()
	run.SetText(text)
	font := spec.FontSpec{Size: 12}
	if header {
		font.Bold = boolPtr(true)
	}
	r.styleRun(run, &font, "")
}
