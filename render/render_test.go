package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckforge/deckconv/analyze"
	"github.com/deckforge/deckconv/memdeck"
	"github.com/deckforge/deckconv/render"
	"github.com/deckforge/deckconv/spec"
)

// analyzeOne renders a single element and reads it back through the
// analyzer, exercising both directions against the in-memory deck.
func analyzeOne(t *testing.T, el spec.ElementSpec) []any {
	t.Helper()
	d := memdeck.New()
	s := d.AddSlide()
	render.NewRenderer(render.Options{}).RenderElement(s, el)

	a := &analyze.Analyzer{}
	res := a.AnalyzeDocument(d.Document(), "roundtrip.pptx")
	require.Len(t, res.Slides, 1)
	return res.Slides[0].Elements
}

func TestHeadingRoundtrip(t *testing.T) {
	els := analyzeOne(t, spec.ElementSpec{
		Type:    "text",
		Variant: "heading",
		Text:    "Hello",
	})
	require.Len(t, els, 1)

	node, ok := els[0].(*analyze.TextNode)
	require.True(t, ok)
	// a heading defaults to 28pt, which reads back as a title
	assert.Equal(t, "title", node.Role)
	require.Len(t, node.Paragraphs, 1)
	assert.Equal(t, "Hello", node.Paragraphs[0].Text)
	assert.Equal(t, 0, node.Paragraphs[0].Level)
}

func TestParagraphRoundtrip(t *testing.T) {
	els := analyzeOne(t, spec.ElementSpec{
		Type: "text",
		Text: "plain body text",
	})
	require.Len(t, els, 1)

	node := els[0].(*analyze.TextNode)
	assert.Equal(t, "body", node.Role)
	assert.Equal(t, "plain body text", node.Paragraphs[0].Text)
}

func TestBulletLevels(t *testing.T) {
	els := analyzeOne(t, spec.ElementSpec{
		Type:    "text",
		Variant: "bullets",
		Items: []spec.BulletItem{
			{Text: "top"},
			{Text: "nested", Level: 1},
		},
	})
	require.Len(t, els, 1)

	node := els[0].(*analyze.TextNode)
	require.Len(t, node.Paragraphs, 2)
	assert.Equal(t, 0, node.Paragraphs[0].Level)
	assert.Equal(t, 1, node.Paragraphs[1].Level)
	assert.Equal(t, "nested", node.Paragraphs[1].Text)
}

func TestRichRunsConcatenate(t *testing.T) {
	els := analyzeOne(t, spec.ElementSpec{
		Type:    "text",
		Variant: "rich",
		Runs: []spec.RichRun{
			{Text: "Hello "},
			{Text: "world", Bold: boolRef(true)},
		},
	})
	require.Len(t, els, 1)

	node := els[0].(*analyze.TextNode)
	assert.Equal(t, "Hello world", node.Paragraphs[0].Text)
}

func TestTableRoundtrip(t *testing.T) {
	els := analyzeOne(t, spec.ElementSpec{
		Type:    "table",
		Headers: []string{"Name", "Owner"},
		Rows: [][]string{
			{"API", "Ada"},
			{"UI"}, // short row pads out
		},
	})
	require.Len(t, els, 1)

	node, ok := els[0].(*analyze.TableNode)
	require.True(t, ok)
	assert.Equal(t, 3, node.Rows)
	assert.Equal(t, 2, node.Cols)

	texts := map[[2]int]string{}
	for _, c := range node.Cells {
		texts[[2]int{c.Row, c.Col}] = c.Text
	}
	assert.Equal(t, "Name", texts[[2]int{0, 0}])
	assert.Equal(t, "Ada", texts[[2]int{1, 1}])
	assert.Equal(t, "", texts[[2]int{2, 1}])
}

func TestEmptyTableIgnored(t *testing.T) {
	els := analyzeOne(t, spec.ElementSpec{Type: "table"})
	assert.Empty(t, els)
}

func TestPieChartRoundtrip(t *testing.T) {
	els := analyzeOne(t, spec.ElementSpec{
		Type:    "chart",
		Subtype: "pie",
		Title:   "Share",
		Data: []spec.PieSlice{
			{Label: "A", Value: 60},
			{Label: "B", Value: 40},
		},
	})
	require.Len(t, els, 1)

	node, ok := els[0].(*analyze.ChartNode)
	require.True(t, ok)
	assert.Equal(t, "pie", node.ChartType)
	assert.Equal(t, "Share", node.Title)
	require.Len(t, node.Series, 1)
	require.Len(t, node.Series[0].Points, 2)
	assert.Equal(t, "A", node.Series[0].Points[0].Category)
	assert.Equal(t, 60.0, node.Series[0].Points[0].Value)
}

func TestChartExplicitZeroLegendPad(t *testing.T) {
	zero := 0.0
	el := spec.ElementSpec{
		Type:            "chart",
		Subtype:         "pie",
		Title:           "Share",
		LegendPadInches: &zero,
		Data:            []spec.PieSlice{{Label: "A", Value: 60}},
	}
	d := memdeck.New()
	s := d.AddSlide()
	render.NewRenderer(render.Options{}).RenderElement(s, el)

	recs := d.SlideRecords()[0].ShapeRecords()
	require.Len(t, recs, 1)
	// zero pad reserves nothing for the legend; the default pie frame
	// keeps its full 5 inch width
	assert.InDelta(t, 5.0, recs[0].Rect().W, 1e-9)
}

func TestBarChartOrientationAndStacking(t *testing.T) {
	cases := []struct {
		name string
		opts *spec.ChartOptions
		want string
	}{
		{"default", nil, "column-clustered"},
		{"stacked", &spec.ChartOptions{Stacked: true}, "column-stacked"},
		{"horizontal", &spec.ChartOptions{Orientation: "horizontal"}, "bar-clustered"},
		{"horizontal stacked", &spec.ChartOptions{Orientation: "horizontal", Stacked: true}, "bar-stacked"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			els := analyzeOne(t, spec.ElementSpec{
				Type:    "chart",
				Subtype: "bar",
				X:       &spec.CategoryAxis{Categories: []string{"Q1", "Q2"}},
				Series:  []spec.SeriesSpec{{Name: "S", Data: []float64{1, 2}}},
				Options: tc.opts,
			})
			require.Len(t, els, 1)
			assert.Equal(t, tc.want, els[0].(*analyze.ChartNode).ChartType)
		})
	}
}

func TestLineChartMarkersDefaultOn(t *testing.T) {
	els := analyzeOne(t, spec.ElementSpec{
		Type:    "chart",
		Subtype: "line",
		X:       &spec.CategoryAxis{Categories: []string{"Jan"}},
		Series:  []spec.SeriesSpec{{Name: "S", Data: []float64{3}}},
	})
	require.Len(t, els, 1)
	assert.Equal(t, "line-markers", els[0].(*analyze.ChartNode).ChartType)
}

func TestUnknownElementIgnored(t *testing.T) {
	d := memdeck.New()
	s := d.AddSlide()
	r := render.NewRenderer(render.Options{})
	r.RenderElement(s, spec.ElementSpec{Type: "video"})
	r.RenderElement(s, spec.ElementSpec{Type: "chart", Subtype: "donut"})

	assert.Empty(t, d.SlideRecords()[0].ShapeRecords())
}

func boolRef(b bool) *bool { return &b }
