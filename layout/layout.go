// Package layout maps the timeline chart's logical coordinate space
// (time on x, lane index on y) onto a physical canvas rectangle.
package layout

import (
	"time"

	"github.com/deckforge/deckconv/canvas"
)

// Scale is the frozen coordinate mapping for one timeline chart. Build it
// with NewScale; the zero value is not usable.
type Scale struct {
	T0, T1  time.Time
	Frame   canvas.Rect // the full chart frame, gutter included
	Content canvas.Rect // frame minus the left label gutter
	Lanes   int

	totalDays  float64
	laneHeight float64
}

// NewScale reserves gutter inches on the left of frame for lane labels and
// fixes the time range [t0, t1]. The content width is floor-clamped to one
// inch and the day span to one day, so degenerate inputs still produce a
// finite mapping.
func NewScale(frame canvas.Rect, gutter float64, lanes int, t0, t1 time.Time) *Scale {
	content := canvas.Rect{
		X: frame.X + gutter,
		Y: frame.Y,
		W: frame.W - gutter,
		H: frame.H,
	}
	if content.W < 1.0 {
		content.W = 1.0
	}
	laneCount := lanes
	if laneCount < 1 {
		laneCount = 1
	}
	days := t1.Sub(t0).Hours() / 24
	if days < 1 {
		days = 1
	}
	return &Scale{
		T0:         t0,
		T1:         t1,
		Frame:      frame,
		Content:    content,
		Lanes:      laneCount,
		totalDays:  days,
		laneHeight: content.H / float64(laneCount),
	}
}

// LaneHeight is the physical height of one lane row.
func (s *Scale) LaneHeight() float64 { return s.laneHeight }

// X linearly interpolates a date onto the content area's horizontal span.
// Dates outside [T0, T1] extrapolate; the caller decides whether that is
// acceptable.
func (s *Scale) X(t time.Time) float64 {
	d := t.Sub(s.T0).Hours() / 24
	return s.Content.X + s.Content.W*(d/s.totalDays)
}

// Y returns the top edge of the given lane row. Lane 0 is the topmost row.
// Out-of-range indices are not validated; they extrapolate beyond the
// content area the same way the arithmetic always has.
func (s *Scale) Y(lane int) float64 {
	return s.Content.Y + s.laneHeight*float64(lane)
}

// LaneBackground returns the full-width band of one lane row.
func (s *Scale) LaneBackground(lane int) canvas.Rect {
	return canvas.Rect{X: s.Content.X, Y: s.Y(lane), W: s.Content.W, H: s.laneHeight}
}

// Striped reports whether a lane row gets the alternating background
// shading. Lane 0 is shaded.
func (s *Scale) Striped(lane int) bool { return lane%2 == 0 }

// GutterRect returns the label area to the left of the content for a lane.
func (s *Scale) GutterRect(lane int) canvas.Rect {
	return canvas.Rect{
		X: s.Frame.X,
		Y: s.Y(lane),
		W: s.Content.X - s.Frame.X,
		H: s.laneHeight,
	}
}

// Bar returns the physical rectangle for a timeline bar spanning
// [start, end] in the given lane, with height heightFrac of the lane
// height, vertically centered in its row. If end precedes start the pair
// is swapped, so the width is always non-negative.
func (s *Scale) Bar(lane int, start, end time.Time, heightFrac float64) canvas.Rect {
	left, right := s.X(start), s.X(end)
	if right < left {
		left, right = right, left
	}
	h := s.laneHeight * heightFrac
	top := s.Y(lane) + (s.laneHeight-h)/2
	return canvas.Rect{X: left, Y: top, W: right - left, H: h}
}

// GridX maps explicit boundary dates to guide x positions.
func (s *Scale) GridX(boundaries []time.Time) []float64 {
	xs := make([]float64, len(boundaries))
	for i, b := range boundaries {
		xs[i] = s.X(b)
	}
	return xs
}

// EvenGridX returns n guide positions evenly spaced across the content
// width by fractional index. Used by the label-only grid variant, where no
// dates are available to interpolate.
func (s *Scale) EvenGridX(n int) []float64 {
	if n < 2 {
		if n == 1 {
			return []float64{s.Content.X}
		}
		return nil
	}
	xs := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = s.Content.X + s.Content.W*(float64(i)/float64(n-1))
	}
	return xs
}

// MidpointsOf returns the label anchor positions centered between each
// pair of adjacent guides.
func MidpointsOf(guides []float64) []float64 {
	if len(guides) < 2 {
		return nil
	}
	mids := make([]float64, len(guides)-1)
	for i := 0; i < len(guides)-1; i++ {
		mids[i] = (guides[i] + guides[i+1]) / 2
	}
	return mids
}
