// Package render turns a resolved deck specification into placements on a
// canvas. It owns the element dispatch, the per-kind renderers, and the
// deck builder; the drawing itself happens behind the canvas interfaces.
package render

import (
	"go.uber.org/zap"

	"github.com/deckforge/deckconv/canvas"
)

// Options are the process-wide rendering defaults. The value is immutable
// once handed to a Renderer or Builder; per-element style blocks override
// it at well-defined points.
type Options struct {
	// FontName is the default font for every run that does not name one.
	FontName string
	// TextColor is the default text color as a hex string.
	TextColor string
	// ChevronHead is the default point-sharpness fraction for timeline
	// bars.
	ChevronHead float64
	// Logger receives a record of every silently-degraded input: skipped
	// elements, unparsable dates, ignored unknown tags. Nil means no
	// logging.
	Logger *zap.Logger
}

// DefaultOptions returns the built-in rendering defaults.
func DefaultOptions() Options {
	return Options{
		FontName:    "Calibri",
		TextColor:   "#1B1B1B",
		ChevronHead: 0.28,
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// fixed palette used by the generic renderers
const (
	laneStripeColor  = "#F3F4F6"
	gridGuideColor   = "#E0E0E0"
	topAxisColor     = "#D1D5DB"
	defaultItemFill  = "#90CAF9"
	coverBandColor   = "#111827"
	coverTitleColor  = "#111827"
	coverSubColor    = "#374151"
	coverFooterColor = "#6B7280"
)

// per-variant default positions, in inches
var (
	defaultTextPos  = canvas.Rect{X: 1.0, Y: 1.0, W: 10.0, H: 1.0}
	defaultTablePos = canvas.Rect{X: 1.0, Y: 1.0, W: 10.0, H: 2.0}
	defaultPiePos   = canvas.Rect{X: 6.0, Y: 2.0, W: 5.0, H: 4.0}
	defaultXYPos    = canvas.Rect{X: 1.0, Y: 2.0, W: 11.0, H: 4.0}
	defaultGanttPos = canvas.Rect{X: 1.0, Y: 1.2, W: 11.3, H: 5.0}
)
