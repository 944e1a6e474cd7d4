package render

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/deckforge/deckconv/canvas"
	"github.com/deckforge/deckconv/coerce"
	"github.com/deckforge/deckconv/layout"
	"github.com/deckforge/deckconv/spec"
)

const (
	defaultGutter      = 1.0
	defaultItemHeight  = 0.6
	defaultLabelOffset = 0.30
	defaultLabelSize   = 12.0
	gridGuideWidth     = 0.018
	topAxisHeight      = 0.012
	topAxisGap         = 0.06
)

// renderGantt draws a timeline chart: alternating lane bands with gutter
// labels, vertical grid guides with top labels, and one chevron bar per
// item. Items missing a start or end date are skipped; partial data never
// aborts the chart.
func (r *Renderer) renderGantt(s canvas.Slide, el spec.ElementSpec) {
	frame := rectOf(el.Position, defaultGanttPos)

	gutter := defaultGutter
	if el.GutterInches != nil {
		gutter = *el.GutterInches
	}

	var lanes []string
	var t0v, t1v any
	if el.Units != nil {
		if el.Units.YRange != nil {
			lanes = el.Units.YRange.Lanes
		}
		if el.Units.XRange != nil {
			t0v, t1v = el.Units.XRange.T0, el.Units.XRange.T1
		}
	}
	if el.ShortenLanes == nil || *el.ShortenLanes {
		shortened := make([]string, len(lanes))
		for i, lane := range lanes {
			shortened[i] = ShortenLane(lane)
		}
		lanes = shortened
	}

	t0 := coerce.ParseTime(t0v)
	t1 := coerce.ParseTime(t1v)
	scale := layout.NewScale(frame, gutter, len(lanes), t0, t1)

	// lane bands with labels in the gutter
	for i := 0; i < scale.Lanes; i++ {
		if scale.Striped(i) {
			band := s.AddShape(canvas.ShapeRectangle, scale.LaneBackground(i))
			band.SetFill(coerce.ToRGB(laneStripeColor))
		}
		label := fmt.Sprintf("Lane %d", i+1)
		if i < len(lanes) {
			label = lanes[i]
		}
		gr := scale.GutterRect(i)
		gr.W -= 0.1
		r.simpleText(s, gr, label, spec.FontSpec{Size: 12, Bold: boolPtr(true)}, "", "right")
	}

	r.renderGanttGrid(s, el.Grid, scale)

	head := r.opts.ChevronHead
	if el.ChevronHead != nil {
		head = *el.ChevronHead
	}

	for _, item := range el.GanttItems {
		if item.Start == nil || item.Start.X == nil || item.End == nil || item.End.X == nil {
			r.opts.logger().Debug("timeline item skipped: missing start or end",
				zap.String("id", item.ID))
			continue
		}
		heightFrac := defaultItemHeight
		if item.Size != nil && item.Size.Height > 0 {
			heightFrac = item.Size.Height
		}
		bar := scale.Bar(item.Start.Y,
			coerce.ParseTime(item.Start.X), coerce.ParseTime(item.End.X), heightFrac)

		fill, textColor := defaultItemFill, ""
		if item.Style != nil {
			if item.Style.Fill != "" {
				fill = item.Style.Fill
			}
			textColor = item.Style.Text
		}
		label := item.Label
		if label == "" {
			label = item.ID
		}
		r.drawChevron(s, bar, head, fill, label, textColor)
	}
}

func (r *Renderer) drawChevron(s canvas.Slide, bar canvas.Rect, head float64, fill, label, textColor string) {
	chev := s.AddShape(canvas.ShapeChevron, bar)
	chev.SetAdjust(head)
	chev.SetFill(coerce.ToRGB(fill))

	tf := chev.TextFrame()
	tf.SetWordWrap(true)
	tf.SetMargins(0.08, -1, 0.02, -1)
	p := tf.AddParagraph()
	run := p.AddRun()
	run.SetText(label)
	r.styleRun(run, &spec.FontSpec{Size: 11, Bold: boolPtr(true)}, textColor)
}

// renderGanttGrid places the vertical guides and their top labels. With
// explicit boundary dates the guides interpolate through the time scale
// and labels read "Qn YYYY"; with opaque labels only, guides are evenly
// spaced and the supplied text is printed verbatim.
func (r *Renderer) renderGanttGrid(s canvas.Slide, grid *spec.GanttGrid, scale *layout.Scale) {
	if grid == nil {
		return
	}
	showLabels := grid.ShowLabels == nil || *grid.ShowLabels
	labelOffset := defaultLabelOffset
	if grid.LabelOffsetInches != nil {
		labelOffset = *grid.LabelOffsetInches
	}
	labelSize := defaultLabelSize
	if grid.LabelFontSize != nil {
		labelSize = *grid.LabelFontSize
	}

	var guides []float64
	var labels []string
	switch {
	case len(grid.Quarters) > 0:
		boundaries := make([]time.Time, len(grid.Quarters))
		for i, q := range grid.Quarters {
			boundaries[i] = coerce.ParseTime(q)
		}
		guides = scale.GridX(boundaries)
		for i := 0; i+1 < len(boundaries); i++ {
			labels = append(labels, QuarterLabel(boundaries[i]))
		}
	case len(grid.Labels) > 0:
		guides = scale.EvenGridX(len(grid.Labels) + 1)
		labels = grid.Labels
	default:
		return
	}

	for _, x := range guides {
		guide := s.AddShape(canvas.ShapeRectangle,
			canvas.Rect{X: x, Y: scale.Content.Y, W: gridGuideWidth, H: scale.Content.H})
		guide.SetFill(coerce.ToRGB(gridGuideColor))
	}

	if grid.TopAxisLine == nil || *grid.TopAxisLine {
		axis := s.AddShape(canvas.ShapeRectangle, canvas.Rect{
			X: scale.Content.X,
			Y: scale.Content.Y - topAxisGap,
			W: scale.Content.W,
			H: topAxisHeight,
		})
		axis.SetFill(coerce.ToRGB(topAxisColor))
	}

	if !showLabels || len(guides) < 2 {
		return
	}
	for i, mid := range layout.MidpointsOf(guides) {
		if i >= len(labels) {
			break
		}
		rect := canvas.Rect{X: mid - 0.5, Y: scale.Content.Y - labelOffset, W: 1.0, H: 0.28}
		r.simpleText(s, rect, labels[i], spec.FontSpec{Size: labelSize}, "", "center")
	}
}

// QuarterLabel formats a date's calendar quarter as "Qn YYYY".
func QuarterLabel(t time.Time) string {
	q := (int(t.Month())-1)/3 + 1
	return fmt.Sprintf("Q%d %d", q, t.Year())
}

// ShortenLane rewrites a lane name of the shape "Phase N: rest" to
// "PN – rest" and truncates anything longer than 32 characters with an
// ellipsis.
func ShortenLane(name string) string {
	short := strings.TrimSpace(name)
	if len(short) >= 6 && strings.EqualFold(short[:6], "phase ") {
		head, tail, hasTail := strings.Cut(short, ":")
		fields := strings.Fields(head)
		num := fields[len(fields)-1]
		if hasTail {
			short = fmt.Sprintf("P%s – %s", num, strings.TrimSpace(tail))
		} else {
			short = "P" + num
		}
	}
	runes := []rune(short)
	if len(runes) > 32 {
		return string(runes[:32]) + "…"
	}
	return short
}
