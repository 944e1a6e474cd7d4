package render

import (
	"go.uber.org/zap"

	"github.com/deckforge/deckconv/canvas"
	"github.com/deckforge/deckconv/spec"
)

// Renderer places a single element onto a slide. It is stateless beyond
// its options and safe to share.
type Renderer struct {
	opts Options
}

// NewRenderer builds a Renderer with the given defaults.
func NewRenderer(opts Options) *Renderer {
	if opts.FontName == "" {
		opts.FontName = DefaultOptions().FontName
	}
	if opts.TextColor == "" {
		opts.TextColor = DefaultOptions().TextColor
	}
	if opts.ChevronHead <= 0 {
		opts.ChevronHead = DefaultOptions().ChevronHead
	}
	return &Renderer{opts: opts}
}

// RenderElement dispatches on the element's (type, variant/subtype) tags.
// Unknown combinations are an explicit ignored case: nothing is placed and
// the skip is logged, keeping malformed specs from aborting a build.
func (r *Renderer) RenderElement(s canvas.Slide, el spec.ElementSpec) {
	switch el.Type {
	case "text":
		variant := el.Variant
		if variant == "" {
			variant = "paragraph"
		}
		switch variant {
		case "heading", "paragraph":
			r.renderTextbox(s, el, variant)
		case "bullets":
			r.renderBullets(s, el)
		case "rich":
			r.renderRich(s, el)
		default:
			r.ignore(el, "unknown text variant")
		}
	case "table":
		r.renderTable(s, el)
	case "chart":
		switch el.Subtype {
		case "gantt":
			r.renderGantt(s, el)
		case "pie":
			r.renderPie(s, el)
		case "bar":
			r.renderBar(s, el)
		case "line":
			r.renderLine(s, el)
		default:
			r.ignore(el, "unknown chart subtype")
		}
	default:
		r.ignore(el, "unknown element type")
	}
}

func (r *Renderer) ignore(el spec.ElementSpec, reason string) {
	r.opts.logger().Debug("element ignored",
		zap.String("reason", reason),
		zap.String("type", el.Type),
		zap.String("variant", el.Variant),
		zap.String("subtype", el.Subtype))
}
