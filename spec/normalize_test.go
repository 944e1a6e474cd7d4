package spec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("coerces exact-case boolean strings and drops null layout", func(t *testing.T) {
		got, err := Normalize([]byte(`{"layout": null, "title": "T", "flag": "True"}`))
		require.NoError(t, err)
		want := map[string]any{"title": "T", "flag": true}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Normalize mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("lowercase booleans pass through as strings", func(t *testing.T) {
		got, err := Normalize([]byte(`{"a": "true", "b": "false", "c": "False"}`))
		require.NoError(t, err)
		want := map[string]any{"a": "true", "b": "false", "c": false}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Normalize mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("recurses into lists and keeps non-layout nulls", func(t *testing.T) {
		got, err := Normalize([]byte(`{"xs": [{"layout": null, "flag": "False"}], "keep": null}`))
		require.NoError(t, err)
		want := map[string]any{
			"xs":   []any{map[string]any{"flag": false}},
			"keep": nil,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Normalize mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("repairs sloppy JSON before giving up", func(t *testing.T) {
		// trailing comma and single quotes are upstream classics
		got, err := Normalize([]byte(`{'title': 'T',}`))
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"title": "T"}, got)
	})

	t.Run("hopeless input errors", func(t *testing.T) {
		_, err := Normalize([]byte{0x00, 0x01})
		assert.Error(t, err)
	})
}

func TestDecode_ElementItems(t *testing.T) {
	raw := []byte(`{
		"slides": [{
			"elements": [
				{"type": "text", "variant": "bullets",
				 "items": [{"text": "a", "level": 0}, {"text": "b", "level": 1}]},
				{"type": "chart", "subtype": "gantt",
				 "items": [{"id": "t1", "start": {"x": "2025-01-01", "y": 0}, "end": {"x": "2025-06-30"}}]}
			]
		}]
	}`)
	deck, err := Decode(raw)
	require.NoError(t, err)
	require.Len(t, deck.Slides, 1)
	els := deck.Slides[0].Elements
	require.Len(t, els, 2)

	require.Len(t, els[0].Items, 2)
	assert.Equal(t, "b", els[0].Items[1].Text)
	assert.Equal(t, 1, els[0].Items[1].Level)
	assert.Empty(t, els[0].GanttItems)

	require.Len(t, els[1].GanttItems, 1)
	assert.Equal(t, "t1", els[1].GanttItems[0].ID)
	assert.Equal(t, "2025-01-01", els[1].GanttItems[0].Start.X)
	assert.Empty(t, els[1].Items)
}

func TestDecode_TopLevelMismatch(t *testing.T) {
	deck, err := Decode([]byte(`[1, 2, 3]`))
	require.NoError(t, err)
	assert.Empty(t, deck.ResolveSlides())
}

func TestResolveSlides_FlatModel(t *testing.T) {
	deck := &DeckSpec{
		Metadata: &Metadata{Title: "Flat"},
		Elements: []ElementSpec{
			{Type: "text", Variant: "heading", Text: "second", Slide: 2},
			{Type: "text", Variant: "paragraph", Text: "first-a"},
			{Type: "text", Variant: "paragraph", Text: "first-b", Slide: 1},
			{Type: "text", Variant: "paragraph", Text: "defaulted", Slide: -3},
		},
	}
	slides := deck.ResolveSlides()
	require.Len(t, slides, 2)

	// ascending slide index regardless of input order
	assert.Equal(t, "Flat", slides[0].Title)
	require.Len(t, slides[0].Elements, 3)
	assert.Equal(t, "first-a", slides[0].Elements[0].Text)
	assert.Equal(t, "defaulted", slides[0].Elements[2].Text)

	require.Len(t, slides[1].Elements, 1)
	assert.Equal(t, "second", slides[1].Elements[0].Text)
}

func TestResolveSlides_StructuredWins(t *testing.T) {
	deck := &DeckSpec{
		Slides:   []SlideSpec{{Title: "S1"}},
		Elements: []ElementSpec{{Type: "text", Text: "ignored"}},
	}
	slides := deck.ResolveSlides()
	require.Len(t, slides, 1)
	assert.Equal(t, "S1", slides[0].Title)
}

func TestAspectSize(t *testing.T) {
	std := &DeckSpec{Slide: &SlideSize{Size: "4:3"}}
	w, h := std.AspectSize()
	assert.Equal(t, 10.0, w)
	assert.Equal(t, 7.5, h)

	wide := &DeckSpec{}
	w, h = wide.AspectSize()
	assert.Equal(t, 13.333, w)
	assert.Equal(t, 7.5, h)
}
