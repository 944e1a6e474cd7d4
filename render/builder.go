package render

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/deckforge/deckconv/canvas"
	"github.com/deckforge/deckconv/coerce"
	"github.com/deckforge/deckconv/spec"
)

// Builder orchestrates slide creation for a whole deck.
type Builder struct {
	opts     Options
	renderer *Renderer
}

// NewBuilder builds a Builder with the given defaults.
func NewBuilder(opts Options) *Builder {
	return &Builder{opts: opts, renderer: NewRenderer(opts)}
}

// Build resolves the deck's slide list and renders every slide onto the
// canvas. It returns the number of slides produced. A deck that resolves
// to zero slides is not an error.
func (b *Builder) Build(deck *spec.DeckSpec, c canvas.Canvas) (int, error) {
	if deck == nil {
		return 0, fmt.Errorf("nil deck spec")
	}
	w, h := deck.AspectSize()
	c.SetSlideSize(w, h)

	slides := deck.ResolveSlides()
	for i, s := range slides {
		if s.Layout == "cover" {
			b.buildCover(c, s)
		} else {
			b.buildSlide(c, s)
		}
		b.opts.logger().Debug("slide built",
			zap.Int("index", i+1),
			zap.String("layout", s.Layout),
			zap.Int("elements", len(s.Elements)))
	}
	return len(slides), nil
}

// buildSlide is the generic path: blank slide, a default title box when no
// heading element would otherwise provide one, then every element in list
// order (list order is z-order).
func (b *Builder) buildSlide(c canvas.Canvas, s spec.SlideSpec) {
	slide := c.AddSlide()
	if s.Title != "" && firstText(s.Elements, "heading") == nil {
		b.renderer.simpleText(slide,
			canvas.Rect{X: 1.0, Y: 0.1, W: 11.3, H: 0.6},
			s.Title, spec.FontSpec{Size: 24, Bold: boolPtr(true)}, "", "left")
	}
	for _, el := range s.Elements {
		b.renderer.RenderElement(slide, el)
	}
}

// buildCover renders the distinguished cover layout: an accent-colored top
// band, a large left-aligned title from the first heading element, an
// optional subtitle from the first paragraph or rich element, and an
// owner/date footer.
func (b *Builder) buildCover(c canvas.Canvas, s spec.SlideSpec) {
	slide := c.AddSlide()
	w, h := c.SlideSize()

	accent := s.AccentColor
	if accent == "" {
		accent = coverBandColor
	}
	band := slide.AddShape(canvas.ShapeRectangle, canvas.Rect{X: 0, Y: 0, W: w, H: 1.2})
	band.SetFill(coerce.ToRGB(accent))

	title := firstText(s.Elements, "heading")
	subtitle := firstText(s.Elements, "paragraph", "rich")

	titleText := ""
	if title != nil {
		titleText = title.Text
	}
	b.renderer.simpleText(slide,
		canvas.Rect{X: 1.0, Y: 1.6, W: w - 2.0, H: 1.6},
		titleText, spec.FontSpec{Size: 40, Bold: boolPtr(true)}, coverTitleColor, "left")

	if subtitle != nil {
		b.renderer.simpleText(slide,
			canvas.Rect{X: 1.0, Y: 3.0, W: w - 2.0, H: 0.9},
			textOf(*subtitle), spec.FontSpec{Size: 18}, coverSubColor, "left")
	}

	if s.Meta != nil {
		footer := fmt.Sprintf("%s  •  %s", s.Meta.Owner, s.Meta.Date)
		b.renderer.simpleText(slide,
			canvas.Rect{X: 1.0, Y: h - 0.9, W: w - 2.0, H: 0.5},
			footer, spec.FontSpec{Size: 12}, coverFooterColor, "left")
	}
}

// firstText returns the first text element with one of the given variants.
func firstText(elements []spec.ElementSpec, variants ...string) *spec.ElementSpec {
	for i := range elements {
		el := &elements[i]
		if el.Type != "text" {
			continue
		}
		for _, v := range variants {
			if el.Variant == v {
				return el
			}
		}
	}
	return nil
}

// textOf flattens an element's visible text; rich elements concatenate
// their runs.
func textOf(el spec.ElementSpec) string {
	if el.Text != "" || len(el.Runs) == 0 {
		return el.Text
	}
	out := ""
	for _, r := range el.Runs {
		out += r.Text
	}
	return out
}
