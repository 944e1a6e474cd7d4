package render

import (
	"github.com/deckforge/deckconv/canvas"
	"github.com/deckforge/deckconv/coerce"
	"github.com/deckforge/deckconv/spec"
)

const defaultLegendPad = 0.7

// paddedFrame shrinks or offsets the dimension a legend occupies so the
// legend never overlaps the plot area. The surviving dimension is
// floor-clamped to one inch.
func paddedFrame(r canvas.Rect, legend canvas.LegendPosition, pad float64) canvas.Rect {
	if pad < 0 {
		pad = 0
	}
	clamp := func(v float64) float64 {
		if v < 1.0 {
			return 1.0
		}
		return v
	}
	switch legend {
	case canvas.LegendLeft:
		r.X += pad
		r.W = clamp(r.W - pad)
	case canvas.LegendTop:
		r.Y += pad
		r.H = clamp(r.H - pad)
	case canvas.LegendBottom:
		r.H = clamp(r.H - pad)
	default: // right and corner both occupy the right side
		r.W = clamp(r.W - pad)
	}
	return r
}

func legendOf(el spec.ElementSpec) (canvas.LegendPosition, float64) {
	pos := canvas.LegendPosition(el.Legend)
	switch pos {
	case canvas.LegendLeft, canvas.LegendTop, canvas.LegendBottom, canvas.LegendCorner:
	default:
		pos = canvas.LegendRight
	}
	pad := defaultLegendPad
	if el.LegendPadInches != nil {
		pad = *el.LegendPadInches
	}
	return pos, pad
}

func colorPtr(hex string) *coerce.RGB {
	if hex == "" {
		return nil
	}
	c := coerce.ToRGB(hex)
	return &c
}

// renderPie places a single-series pie chart with per-slice colors and
// optional percentage data labels.
func (r *Renderer) renderPie(s canvas.Slide, el spec.ElementSpec) {
	legend, pad := legendOf(el)
	rect := paddedFrame(rectOf(el.Position, defaultPiePos), legend, pad)

	categories := make([]string, len(el.Data))
	values := make([]float64, len(el.Data))
	pointColors := make([]*coerce.RGB, len(el.Data))
	for i, d := range el.Data {
		categories[i] = d.Label
		values[i] = d.Value
		pointColors[i] = colorPtr(d.Color)
	}

	s.AddChart(canvas.ChartSpec{
		Kind:              canvas.ChartPie,
		Title:             el.Title,
		Categories:        categories,
		Series:            []canvas.ChartSeries{{Name: el.Title, Values: values}},
		PointColors:       pointColors,
		Legend:            legend,
		ShowPercentLabels: el.ShowLabels && el.Labels == "percent",
	}, rect)
}

// renderBar folds orientation × stacking into one of the four renderable
// bar kinds and places the named series.
func (r *Renderer) renderBar(s canvas.Slide, el spec.ElementSpec) {
	stacked, horizontal := false, false
	if el.Options != nil {
		stacked = el.Options.Stacked
		horizontal = el.Options.Orientation == "horizontal"
	}
	var kind canvas.ChartKind
	switch {
	case horizontal && stacked:
		kind = canvas.ChartBarStacked
	case horizontal:
		kind = canvas.ChartBarClustered
	case stacked:
		kind = canvas.ChartColumnStacked
	default:
		kind = canvas.ChartColumnClustered
	}
	r.renderCategoryChart(s, el, kind, false)
}

// renderLine places a line chart, with markers by default and optional
// curve smoothing applied to every series.
func (r *Renderer) renderLine(s canvas.Slide, el spec.ElementSpec) {
	markers, smooth := true, false
	if el.Options != nil {
		if el.Options.Markers != nil {
			markers = *el.Options.Markers
		}
		smooth = el.Options.Smooth
	}
	kind := canvas.ChartLine
	if markers {
		kind = canvas.ChartLineMarkers
	}
	r.renderCategoryChart(s, el, kind, smooth)
}

func (r *Renderer) renderCategoryChart(s canvas.Slide, el spec.ElementSpec, kind canvas.ChartKind, smooth bool) {
	legend, pad := legendOf(el)
	rect := paddedFrame(rectOf(el.Position, defaultXYPos), legend, pad)

	var categories []string
	if el.X != nil {
		categories = el.X.Categories
	}
	series := make([]canvas.ChartSeries, len(el.Series))
	for i, ss := range el.Series {
		series[i] = canvas.ChartSeries{
			Name:   ss.Name,
			Values: ss.Data,
			Color:  colorPtr(ss.Color),
			Smooth: smooth,
		}
	}

	s.AddChart(canvas.ChartSpec{
		Kind:       kind,
		Title:      el.Title,
		Categories: categories,
		Series:     series,
		Legend:     legend,
	}, rect)
}
