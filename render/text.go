package render

import (
	"github.com/deckforge/deckconv/canvas"
	"github.com/deckforge/deckconv/coerce"
	"github.com/deckforge/deckconv/spec"
)

// renderTextbox handles the heading and paragraph variants: one paragraph
// in a word-wrapped box. A heading forces bold and a 28pt default while
// still honoring explicit name/size overrides from the style block.
func (r *Renderer) renderTextbox(s canvas.Slide, el spec.ElementSpec, variant string) {
	rect := rectOf(el.Position, defaultTextPos)
	style := el.Style

	font := spec.FontSpec{}
	color, align := "", ""
	var margins *spec.Margins
	if style != nil {
		if style.Font != nil {
			font = *style.Font
		}
		color = style.Text
		align = style.Align
		margins = style.Margins
	}
	if variant == "heading" {
		if font.Size == 0 {
			font.Size = 28
		}
		font.Bold = boolPtr(true)
		if align == "" {
			align = "left"
		}
	}

	tf := s.AddTextBox(rect)
	tf.SetWordWrap(true)
	applyMargins(tf, margins)

	p := tf.AddParagraph()
	if align != "" {
		p.SetAlignment(align)
	}
	run := p.AddRun()
	run.SetText(el.Text)
	r.styleRun(run, &font, color)
}

// renderBullets emits one paragraph per item with its indentation level.
// The element style applies uniformly; an item-level size wins over the
// element size, which defaults to 16pt.
func (r *Renderer) renderBullets(s canvas.Slide, el spec.ElementSpec) {
	rect := rectOf(el.Position, defaultTextPos)
	style := el.Style

	font := spec.FontSpec{}
	color := ""
	if style != nil {
		if style.Font != nil {
			font = *style.Font
		}
		color = style.Text
	}
	if font.Size == 0 {
		font.Size = 16
	}

	tf := s.AddTextBox(rect)
	tf.SetWordWrap(true)
	if style != nil {
		applyMargins(tf, style.Margins)
	}

	for _, item := range el.Items {
		p := tf.AddParagraph()
		p.SetLevel(item.Level)
		styleParagraph(p, style)
		run := p.AddRun()
		run.SetText(item.Text)
		itemFont := font
		if item.Size > 0 {
			itemFont.Size = item.Size
		}
		r.styleRun(run, &itemFont, color)
	}
}

// renderRich emits a single paragraph of independently-styled runs. A run
// without its own color falls back to the paragraph-level text color.
func (r *Renderer) renderRich(s canvas.Slide, el spec.ElementSpec) {
	rect := rectOf(el.Position, defaultTextPos)
	style := el.Style

	paraColor := ""
	if style != nil {
		paraColor = style.Text
	}

	tf := s.AddTextBox(rect)
	tf.SetWordWrap(true)
	if style != nil {
		applyMargins(tf, style.Margins)
	}

	p := tf.AddParagraph()
	styleParagraph(p, style)
	for _, rr := range el.Runs {
		run := p.AddRun()
		run.SetText(rr.Text)

		font := spec.FontSpec{}
		if rr.Font != nil {
			font = *rr.Font
		}
		name := r.opts.FontName
		if font.Name != "" {
			name = font.Name
		}
		run.SetFont(name)
		if font.Size > 0 {
			run.SetSize(font.Size)
		}
		if rr.Bold != nil {
			run.SetBold(*rr.Bold)
		}
		if rr.Italic != nil {
			run.SetItalic(*rr.Italic)
		}
		if rr.Underline != nil {
			run.SetUnderline(*rr.Underline)
		}
		color := rr.Color
		if color == "" {
			color = paraColor
		}
		if color == "" {
			color = r.opts.TextColor
		}
		run.SetColor(coerce.ToRGB(color))
	}
}
