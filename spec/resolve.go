package spec

import "sort"

// ResolveSlides collapses the two accepted top-level shapes into a single
// ordered slide list. Structured slides are returned as-is. Otherwise flat
// elements are grouped by their 1-based slide tag (missing or invalid tags
// default to slide 1) and emitted in ascending index order; the deck's
// metadata title, when present, becomes the first slide's title. A deck
// with neither shape resolves to zero slides.
//
// The rest of the pipeline only ever sees the resolved list and never
// re-examines which shape was given.
func (d *DeckSpec) ResolveSlides() []SlideSpec {
	if d == nil {
		return nil
	}
	if len(d.Slides) > 0 {
		return d.Slides
	}
	if len(d.Elements) == 0 {
		return nil
	}

	groups := make(map[int][]ElementSpec)
	for _, el := range d.Elements {
		idx := el.Slide
		if idx < 1 {
			idx = 1
		}
		groups[idx] = append(groups[idx], el)
	}

	indices := make([]int, 0, len(groups))
	for idx := range groups {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	slides := make([]SlideSpec, 0, len(indices))
	for _, idx := range indices {
		slides = append(slides, SlideSpec{Elements: groups[idx]})
	}
	if d.Metadata != nil && d.Metadata.Title != "" {
		slides[0].Title = d.Metadata.Title
	}
	return slides
}

// AspectSize returns the physical slide dimensions in inches for the
// deck's slide.size field: 16:9 (default) or 4:3.
func (d *DeckSpec) AspectSize() (w, h float64) {
	size := ""
	if d != nil && d.Slide != nil {
		size = d.Slide.Size
	}
	if size == "4:3" {
		return 10.0, 7.5
	}
	return 13.333, 7.5
}
