package render

import (
	"github.com/deckforge/deckconv/canvas"
	"github.com/deckforge/deckconv/coerce"
	"github.com/deckforge/deckconv/spec"
)

// rectOf resolves an element's position, falling back to the per-variant
// default when absent.
func rectOf(pos *spec.Position, def canvas.Rect) canvas.Rect {
	if pos == nil {
		return def
	}
	return canvas.Rect{X: pos.X, Y: pos.Y, W: pos.W, H: pos.H}
}

// styleRun applies merged font styling to a run: explicit values win,
// everything else falls back to the renderer defaults. An empty color
// string coerces to the default dark, so the fallback chain is one call.
func (r *Renderer) styleRun(run canvas.Run, font *spec.FontSpec, color string) {
	name := r.opts.FontName
	if font != nil && font.Name != "" {
		name = font.Name
	}
	run.SetFont(name)
	if font != nil {
		if font.Size > 0 {
			run.SetSize(font.Size)
		}
		if font.Bold != nil {
			run.SetBold(*font.Bold)
		}
		if font.Italic != nil {
			run.SetItalic(*font.Italic)
		}
		if font.Underline != nil {
			run.SetUnderline(*font.Underline)
		}
	}
	if color == "" {
		color = r.opts.TextColor
	}
	run.SetColor(coerce.ToRGB(color))
}

// styleParagraph applies the paragraph-level parts of a style block.
func styleParagraph(p canvas.Paragraph, style *spec.Style) {
	if style != nil && style.Align != "" {
		p.SetAlignment(style.Align)
	}
}

// applyMargins forwards only the supplied insets; -1 leaves the
// implementation default.
func applyMargins(tf canvas.TextFrame, m *spec.Margins) {
	if m == nil {
		return
	}
	left, right, top, bottom := -1.0, -1.0, -1.0, -1.0
	if m.Left != nil {
		left = *m.Left
	}
	if m.Right != nil {
		right = *m.Right
	}
	if m.Top != nil {
		top = *m.Top
	}
	if m.Bottom != nil {
		bottom = *m.Bottom
	}
	tf.SetMargins(left, right, top, bottom)
}

// simpleText drops a single styled paragraph into a new textbox. Used for
// titles, labels and other fixed chrome.
func (r *Renderer) simpleText(s canvas.Slide, rect canvas.Rect, text string, font spec.FontSpec, color, align string) {
	tf := s.AddTextBox(rect)
	tf.SetWordWrap(true)
	p := tf.AddParagraph()
	if align != "" {
		p.SetAlignment(align)
	}
	run := p.AddRun()
	run.SetText(text)
	r.styleRun(run, &font, color)
}

func boolPtr(b bool) *bool { return &b }
