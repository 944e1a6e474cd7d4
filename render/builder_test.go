package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckforge/deckconv/analyze"
	"github.com/deckforge/deckconv/coerce"
	"github.com/deckforge/deckconv/memdeck"
	"github.com/deckforge/deckconv/render"
	"github.com/deckforge/deckconv/spec"
)

const coverDeckJSON = `{
  "slides": [
    {
      "layout": "cover",
      "accentColor": "#0E7490",
      "meta": {"owner": "Alice", "date": "2025-06-01"},
      "elements": [
        {"type": "text", "variant": "heading", "text": "Roadmap 2025"},
        {"type": "text", "variant": "paragraph", "text": "Plan of record"}
      ]
    },
    {
      "title": "Timeline",
      "elements": [
        {
          "type": "chart", "subtype": "gantt",
          "units": {
            "xRange": {"t0": "2025 Q1", "t1": "2025 Q3"},
            "yRange": {"lanes": ["Phase 1: Discovery", "Phase 2: Build"]}
          },
          "items": [
            {"id": "a", "kind": "chevron", "label": "Discovery",
             "start": {"x": "2025 Q1", "y": 0}, "end": {"x": "2025 Q2", "y": 0}}
          ]
        }
      ]
    }
  ]
}`

func buildDeck(t *testing.T, raw string) (*memdeck.Deck, int) {
	t.Helper()
	deck, err := spec.Decode([]byte(raw))
	require.NoError(t, err)

	d := memdeck.New()
	n, err := render.NewBuilder(render.DefaultOptions()).Build(deck, d)
	require.NoError(t, err)
	return d, n
}

// slideTexts flattens every paragraph of every text frame on a slide.
func slideTexts(t *testing.T, d *memdeck.Deck, slide int) []string {
	t.Helper()
	a := &analyze.Analyzer{}
	res := a.AnalyzeDocument(d.Document(), "test.pptx")
	require.Greater(t, len(res.Slides), slide)

	var texts []string
	for _, el := range res.Slides[slide].Elements {
		if tn, ok := el.(*analyze.TextNode); ok {
			for _, p := range tn.Paragraphs {
				texts = append(texts, p.Text)
			}
		}
	}
	return texts
}

func TestBuildCoverAndGanttDeck(t *testing.T) {
	d, n := buildDeck(t, coverDeckJSON)
	assert.Equal(t, 2, n)
	require.Len(t, d.SlideRecords(), 2)

	// cover band uses the slide accent color across the full width
	cover := d.SlideRecords()[0]
	require.NotEmpty(t, cover.ShapeRecords())
	band := cover.ShapeRecords()[0]
	fill, ok := band.Fill()
	require.True(t, ok)
	assert.Equal(t, coerce.ToRGB("#0E7490"), fill)
	assert.InDelta(t, 13.333, band.Rect().W, 1e-9)
	assert.InDelta(t, 1.2, band.Rect().H, 1e-9)

	texts := slideTexts(t, d, 0)
	assert.Contains(t, texts, "Roadmap 2025")
	assert.Contains(t, texts, "Plan of record")
	assert.Contains(t, texts, "Alice  •  2025-06-01")

	// the gantt slide carries the shortened lane labels
	ganttTexts := slideTexts(t, d, 1)
	assert.Contains(t, ganttTexts, "P1 – Discovery")
	assert.Contains(t, ganttTexts, "Timeline")
}

func TestBuildDefaultTitleBox(t *testing.T) {
	d, _ := buildDeck(t, `{"slides": [{"title": "Agenda", "elements": [
		{"type": "text", "variant": "paragraph", "text": "body"}]}]}`)

	texts := slideTexts(t, d, 0)
	assert.Contains(t, texts, "Agenda")
}

func TestHeadingSuppressesDefaultTitleBox(t *testing.T) {
	d, _ := buildDeck(t, `{"slides": [{"title": "Agenda", "elements": [
		{"type": "text", "variant": "heading", "text": "Agenda"}]}]}`)

	count := 0
	for _, text := range slideTexts(t, d, 0) {
		if text == "Agenda" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestBuildFlatModelGroupsBySlideTag(t *testing.T) {
	d, n := buildDeck(t, `{"elements": [
		{"type": "text", "text": "second", "slide": 2},
		{"type": "text", "text": "first", "slide": 1},
		{"type": "text", "text": "also first"}]}`)

	assert.Equal(t, 2, n)
	assert.Contains(t, slideTexts(t, d, 0), "first")
	assert.Contains(t, slideTexts(t, d, 0), "also first")
	assert.Contains(t, slideTexts(t, d, 1), "second")
}

func TestBuildAspectSize(t *testing.T) {
	d, _ := buildDeck(t, `{"slide": {"size": "4:3"}, "slides": [{"elements": []}]}`)
	w, h := d.SlideSize()
	assert.InDelta(t, 10.0, w, 1e-9)
	assert.InDelta(t, 7.5, h, 1e-9)
}

func TestBuildNilDeck(t *testing.T) {
	_, err := render.NewBuilder(render.DefaultOptions()).Build(nil, memdeck.New())
	assert.Error(t, err)
}

func TestBuildEmptyDeckIsNotAnError(t *testing.T) {
	deck, err := spec.Decode([]byte(`{}`))
	require.NoError(t, err)
	n, err := render.NewBuilder(render.DefaultOptions()).Build(deck, memdeck.New())
	require.NoError(t, err)
	assert.Zero(t, n)
}
