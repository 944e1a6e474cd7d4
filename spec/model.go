package spec

// Deck spec model. The JSON is schemaless upstream, so almost everything is
// optional; pointer fields distinguish "absent" from a zero value wherever
// the renderer treats those differently.

// DeckSpec is the root of a deck specification. Exactly one of Slides or
// Elements is normally present: Slides is the structured model, Elements is
// the flat model where each element carries a 1-based slide tag. When both
// are present Slides wins; when neither is, the deck resolves to zero
// slides.
type DeckSpec struct {
	Version  string        `json:"version,omitempty"`
	Metadata *Metadata     `json:"metadata,omitempty"`
	Slide    *SlideSize    `json:"slide,omitempty"`
	Slides   []SlideSpec   `json:"slides,omitempty"`
	Elements []ElementSpec `json:"elements,omitempty"`
}

// Metadata carries deck-level descriptive fields.
type Metadata struct {
	Title string `json:"title,omitempty"`
}

// SlideSize selects the slide aspect preset. "16:9" (default) or "4:3".
type SlideSize struct {
	Size string `json:"size,omitempty"`
}

// SlideSpec describes one slide. Elements render in list order, which is
// also z-order.
type SlideSpec struct {
	Layout      string        `json:"layout,omitempty"` // "cover" is the only recognized special value
	Title       string        `json:"title,omitempty"`
	AccentColor string        `json:"accentColor,omitempty"`
	Meta        *SlideMeta    `json:"meta,omitempty"`
	Elements    []ElementSpec `json:"elements,omitempty"`
}

// SlideMeta is the optional owner/date footer on cover slides.
type SlideMeta struct {
	Owner string `json:"owner,omitempty"`
	Date  string `json:"date,omitempty"`
}

// ElementSpec is the discriminated union over every renderable element.
// Type selects the family; Variant (text) and Subtype (chart) refine it.
// Fields not relevant to the selected kind are simply ignored.
type ElementSpec struct {
	Type    string `json:"type,omitempty"`
	Variant string `json:"variant,omitempty"`
	Subtype string `json:"subtype,omitempty"`

	// Flat-model slide tag, 1-based. Zero or negative means slide 1.
	Slide int `json:"slide,omitempty"`

	Position *Position `json:"position,omitempty"`
	Style    *Style    `json:"style,omitempty"`

	// text: heading / paragraph
	Text string `json:"text,omitempty"`
	// text: bullets. Shares the "items" key with GanttItems; see
	// UnmarshalJSON for how the two are told apart.
	Items []BulletItem `json:"-"`
	// text: rich
	Runs []RichRun `json:"runs,omitempty"`

	// table
	Headers      []string   `json:"headers,omitempty"`
	Rows         [][]string `json:"rows,omitempty"`
	ColumnWidths []float64  `json:"column_widths,omitempty"`

	// chart (all subtypes)
	Title           string   `json:"title,omitempty"`
	Legend          string   `json:"legend,omitempty"`
	LegendPadInches *float64 `json:"legendPadInches,omitempty"` // nil means default pad

	// chart: pie
	Data       []PieSlice `json:"data,omitempty"`
	ShowLabels bool       `json:"showLabels,omitempty"`
	Labels     string     `json:"labels,omitempty"` // "percent"

	// chart: bar / line
	X       *CategoryAxis `json:"x,omitempty"`
	Series  []SeriesSpec  `json:"series,omitempty"`
	Options *ChartOptions `json:"options,omitempty"`

	// chart: gantt
	GutterInches *float64       `json:"gutterInches,omitempty"` // nil means default gutter
	ShortenLanes *bool          `json:"shortenLanes,omitempty"` // nil means true
	ChevronHead  *float64       `json:"chevronHead,omitempty"`  // nil means renderer default
	Units        *GanttUnits    `json:"units,omitempty"`
	GanttItems   []TimelineItem `json:"-"`
	Grid         *GanttGrid     `json:"grid,omitempty"`
}

// Position is a physical rectangle in inches.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Style is the shared text styling block.
type Style struct {
	Font    *FontSpec `json:"font,omitempty"`
	Text    string    `json:"text,omitempty"` // text color, hex
	Align   string    `json:"align,omitempty"`
	Margins *Margins  `json:"margins,omitempty"`
}

// FontSpec carries font overrides. Pointer booleans distinguish "not
// specified" from an explicit false.
type FontSpec struct {
	Name      string  `json:"name,omitempty"`
	Size      float64 `json:"size,omitempty"`
	Bold      *bool   `json:"bold,omitempty"`
	Italic    *bool   `json:"italic,omitempty"`
	Underline *bool   `json:"underline,omitempty"`
}

// Margins are text-frame insets in inches. Pointers: only set what the
// spec supplies.
type Margins struct {
	Left   *float64 `json:"left,omitempty"`
	Right  *float64 `json:"right,omitempty"`
	Top    *float64 `json:"top,omitempty"`
	Bottom *float64 `json:"bottom,omitempty"`
}

// BulletItem is one bullet line with its indentation level and an
// optional point-size override.
type BulletItem struct {
	Text  string  `json:"text"`
	Level int     `json:"level,omitempty"`
	Size  float64 `json:"size,omitempty"`
}

// RichRun is one independently-styled inline run of a rich paragraph.
// Bold/Italic/Underline live at the run level (not inside font) to match
// the accepted input grammar.
type RichRun struct {
	Text      string    `json:"text"`
	Font      *FontSpec `json:"font,omitempty"`
	Bold      *bool     `json:"bold,omitempty"`
	Italic    *bool     `json:"italic,omitempty"`
	Underline *bool     `json:"underline,omitempty"`
	Color     string    `json:"color,omitempty"`
}

// PieSlice is one category of a pie chart.
type PieSlice struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color,omitempty"`
}

// CategoryAxis holds the categorical x-axis labels for bar/line charts.
type CategoryAxis struct {
	Categories []string `json:"categories,omitempty"`
}

// SeriesSpec is one named series of a bar/line chart.
type SeriesSpec struct {
	Name  string    `json:"name,omitempty"`
	Data  []float64 `json:"data,omitempty"`
	Color string    `json:"color,omitempty"`
}

// ChartOptions are the bar/line rendering switches.
type ChartOptions struct {
	Stacked     bool   `json:"stacked,omitempty"`
	Orientation string `json:"orientation,omitempty"` // "vertical" (default) | "horizontal"
	Markers     *bool  `json:"markers,omitempty"`     // nil means true
	Smooth      bool   `json:"smooth,omitempty"`
}

// GanttUnits declares the logical coordinate space of a timeline chart.
type GanttUnits struct {
	XRange *TimeRange `json:"xRange,omitempty"`
	YRange *LaneRange `json:"yRange,omitempty"`
}

// TimeRange is the inclusive [T0, T1] time span. Values are date-like and
// go through coerce.ParseTime.
type TimeRange struct {
	T0 any `json:"t0,omitempty"`
	T1 any `json:"t1,omitempty"`
}

// LaneRange declares the named lanes, top to bottom.
type LaneRange struct {
	Lanes []string `json:"lanes,omitempty"`
}

// TimelineItem is one bar on a gantt chart. Start.X/End.X are date-like;
// Start.Y is the lane index. An item missing either endpoint is skipped.
type TimelineItem struct {
	ID    string     `json:"id,omitempty"`
	Kind  string     `json:"kind,omitempty"`
	Label string     `json:"label,omitempty"`
	Start *TimePoint `json:"start,omitempty"`
	End   *TimePoint `json:"end,omitempty"`
	Size  *ItemSize  `json:"size,omitempty"`
	Style *ItemStyle `json:"style,omitempty"`
}

// TimePoint is a logical coordinate: X on the time axis, Y the lane index.
type TimePoint struct {
	X any `json:"x,omitempty"`
	Y int `json:"y,omitempty"`
}

// ItemSize holds the bar height as a fraction of the lane height.
type ItemSize struct {
	Height float64 `json:"height,omitempty"`
}

// ItemStyle carries the bar fill and label text colors.
type ItemStyle struct {
	Fill string `json:"fill,omitempty"`
	Text string `json:"text,omitempty"`
}

// GanttGrid configures the vertical guides and their top labels. Quarters
// holds explicit boundary dates; Labels is the label-only variant where
// guides are evenly spaced and the supplied text is printed verbatim.
type GanttGrid struct {
	Quarters          []any    `json:"quarters,omitempty"`
	Labels            []string `json:"labels,omitempty"`
	ShowLabels        *bool    `json:"showLabels,omitempty"` // nil means true
	LabelOffsetInches *float64 `json:"labelOffsetInches,omitempty"`
	LabelFontSize     *float64 `json:"labelFontSize,omitempty"`
	TopAxisLine       *bool    `json:"topAxisLine,omitempty"` // nil means true
}
