package analyze_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/deckforge/deckconv/analyze"
)

// Minimal stub implementations of the document read interfaces.

type stubDoc struct {
	slides []analyze.Slide
}

func (d stubDoc) Slides() []analyze.Slide { return d.slides }

type stubSlide struct {
	shapes []analyze.Shape
}

func (s stubSlide) Shapes() []analyze.Shape { return s.shapes }

type stubShape struct {
	chart analyze.Chart
	table analyze.Table
	pic   analyze.Picture
	text  analyze.TextFrame
	group []analyze.Shape
}

func (s stubShape) Chart() (analyze.Chart, bool)         { return s.chart, s.chart != nil }
func (s stubShape) Table() (analyze.Table, bool)         { return s.table, s.table != nil }
func (s stubShape) Picture() (analyze.Picture, bool)     { return s.pic, s.pic != nil }
func (s stubShape) TextFrame() (analyze.TextFrame, bool) { return s.text, s.text != nil }
func (s stubShape) Group() ([]analyze.Shape, bool)       { return s.group, s.group != nil }

type stubFrame struct {
	ph    analyze.PlaceholderType
	hasPh bool
	paras []analyze.Paragraph
}

func (f stubFrame) Placeholder() (analyze.PlaceholderType, bool) { return f.ph, f.hasPh }
func (f stubFrame) Paragraphs() []analyze.Paragraph              { return f.paras }

type stubPara struct {
	level int
	text  string
	align string
	runs  []analyze.Run
}

func (p stubPara) Level() int                { return p.level }
func (p stubPara) Text() string              { return p.text }
func (p stubPara) Alignment() (string, bool) { return p.align, p.align != "" }
func (p stubPara) Runs() []analyze.Run       { return p.runs }

type stubRun struct {
	size    float64
	hasSize bool
}

func (r stubRun) SizePt() (float64, bool) { return r.size, r.hasSize }

type stubChart struct {
	title  string
	tag    string
	series []analyze.Series
	blob   []byte
}

func (c stubChart) Title() (string, bool)        { return c.title, c.title != "" }
func (c stubChart) TypeTag() string              { return c.tag }
func (c stubChart) Series() []analyze.Series     { return c.series }
func (c stubChart) WorkbookBlob() ([]byte, bool) { return c.blob, c.blob != nil }

type stubSeries struct {
	name string
	cats []string
	vals []any
}

func (s stubSeries) Name() string         { return s.name }
func (s stubSeries) Categories() []string { return s.cats }
func (s stubSeries) Values() []any        { return s.vals }

type stubPic struct{}

func (stubPic) ContentType() (string, bool) { return "image/png", true }

func textShape(role analyze.PlaceholderType, hasPh bool, paras ...analyze.Paragraph) stubShape {
	return stubShape{text: stubFrame{ph: role, hasPh: hasPh, paras: paras}}
}

func docOf(shapes ...analyze.Shape) stubDoc {
	return stubDoc{slides: []analyze.Slide{stubSlide{shapes: shapes}}}
}

func TestTitlePlaceholderExtraction(t *testing.T) {
	doc := docOf(textShape(analyze.PlaceholderTitle, true,
		stubPara{level: 0, text: "Hello"}))

	a := &analyze.Analyzer{}
	res := a.AnalyzeDocument(doc, "deck.pptx")

	got, err := res.Compact()
	require.NoError(t, err)

	want := map[string]any{
		"file_name":   "deck.pptx",
		"slide_count": float64(1),
		"slides": []any{
			map[string]any{
				"slide_number": float64(1),
				"elements": []any{
					map[string]any{
						"kind": "text",
						"role": "title",
						"paragraphs": []any{
							map[string]any{
								"level": float64(0),
								"text":  "Hello",
							},
						},
					},
				},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("compacted result mismatch (-want +got):\n%s", diff)
	}
}

func TestRoleFontSizeHeuristic(t *testing.T) {
	cases := []struct {
		name string
		runs []analyze.Run
		want string
	}{
		{"large run is a title", []analyze.Run{stubRun{size: 30, hasSize: true}}, "title"},
		{"exactly 28 is a title", []analyze.Run{stubRun{size: 28, hasSize: true}}, "title"},
		{"medium run is a heading", []analyze.Run{stubRun{size: 22, hasSize: true}}, "heading"},
		{"small run is body", []analyze.Run{stubRun{size: 12, hasSize: true}}, "body"},
		{"no sized run is body", []analyze.Run{stubRun{}}, "body"},
		{"first sized run decides", []analyze.Run{stubRun{}, stubRun{size: 36, hasSize: true}}, "title"},
	}
	a := &analyze.Analyzer{}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := docOf(textShape(analyze.PlaceholderOther, false,
				stubPara{text: "x", runs: tc.runs}))
			res := a.AnalyzeDocument(doc, "f.pptx")
			node := res.Slides[0].Elements[0].(*analyze.TextNode)
			assert.Equal(t, tc.want, node.Role)
		})
	}
}

func TestSubtitlePlaceholder(t *testing.T) {
	doc := docOf(textShape(analyze.PlaceholderSubtitle, true, stubPara{text: "sub"}))
	res := (&analyze.Analyzer{}).AnalyzeDocument(doc, "f.pptx")
	node := res.Slides[0].Elements[0].(*analyze.TextNode)
	assert.Equal(t, "subtitle", node.Role)
}

func TestChartSeriesTruncationAndCoercion(t *testing.T) {
	doc := docOf(stubShape{chart: stubChart{
		tag: "pie",
		series: []analyze.Series{stubSeries{
			name: "S",
			cats: []string{"a", "b", "c"},
			vals: []any{"42", "n/a"},
		}},
	}})

	res := (&analyze.Analyzer{}).AnalyzeDocument(doc, "f.pptx")
	node := res.Slides[0].Elements[0].(*analyze.ChartNode)
	require.Len(t, node.Series, 1)
	pts := node.Series[0].Points
	require.Len(t, pts, 2) // truncated to the shorter of categories/values

	assert.Equal(t, 42.0, pts[0].Value)
	assert.Equal(t, "n/a", pts[1].Value) // coercion failure keeps the raw value
}

func TestChartEmbeddedWorkbook(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	require.NoError(t, f.SetCellValue(sheet, "A1", "Category"))
	require.NoError(t, f.SetCellValue(sheet, "B1", "Value"))
	require.NoError(t, f.SetCellValue(sheet, "A2", "East"))
	require.NoError(t, f.SetCellValue(sheet, "B2", 12))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	doc := docOf(stubShape{chart: stubChart{tag: "bar", blob: buf.Bytes()}})
	res := (&analyze.Analyzer{}).AnalyzeDocument(doc, "f.pptx")
	node := res.Slides[0].Elements[0].(*analyze.ChartNode)

	require.Len(t, node.ExcelData, 2)
	assert.Equal(t, []string{"Category", "Value"}, node.ExcelData[0])
	assert.Equal(t, []string{"East", "12"}, node.ExcelData[1])
}

func TestCorruptWorkbookIsOmitted(t *testing.T) {
	doc := docOf(stubShape{chart: stubChart{tag: "bar", blob: []byte("not a workbook")}})
	res := (&analyze.Analyzer{}).AnalyzeDocument(doc, "f.pptx")
	node := res.Slides[0].Elements[0].(*analyze.ChartNode)
	assert.Nil(t, node.ExcelData)
}

func TestGroupDescendsOneLevel(t *testing.T) {
	inner := textShape(analyze.PlaceholderOther, false, stubPara{text: "leaf"})
	nested := stubShape{group: []analyze.Shape{inner}}
	doc := docOf(stubShape{group: []analyze.Shape{
		inner,
		stubShape{pic: stubPic{}},
		nested, // grandchild groups are dropped
	}})

	res := (&analyze.Analyzer{}).AnalyzeDocument(doc, "f.pptx")
	require.Len(t, res.Slides[0].Elements, 1)
	g := res.Slides[0].Elements[0].(*analyze.GroupNode)
	require.Len(t, g.Children, 2)
	assert.IsType(t, &analyze.TextNode{}, g.Children[0])
	assert.IsType(t, &analyze.ImageNode{}, g.Children[1])
}

func TestUnclassifiableShapeSkipped(t *testing.T) {
	res := (&analyze.Analyzer{}).AnalyzeDocument(docOf(stubShape{}), "f.pptx")
	assert.Empty(t, res.Slides[0].Elements)
}

func TestAnalyzeBatch(t *testing.T) {
	files := map[string][]byte{
		"decks/a.pptx": []byte("a"),
		"decks/b.pptx": []byte("b"),
		"notes.txt":    []byte("skip me"),
	}
	fetch := func(key string) ([]byte, error) {
		data, ok := files[key]
		if !ok {
			return nil, errors.New("no such key")
		}
		return data, nil
	}
	open := func(data []byte) (analyze.Document, error) {
		if string(data) == "b" {
			return nil, errors.New("corrupt file")
		}
		return docOf(textShape(analyze.PlaceholderTitle, true, stubPara{text: "T"})), nil
	}

	a := &analyze.Analyzer{}
	rep := a.AnalyzeBatch(open, fetch,
		[]string{"decks/a.pptx", "decks/b.pptx", "notes.txt", "decks/missing.pptx"})

	assert.Equal(t, []string{"decks/a.pptx"}, rep.Processed)
	assert.Contains(t, rep.Failed["decks/b.pptx"], "corrupt file")
	assert.Contains(t, rep.Failed["decks/missing.pptx"], "no such key")
	assert.NotContains(t, rep.Failed, "notes.txt")

	require.Contains(t, rep.Results, "decks/a.pptx")
	assert.Equal(t, "a.pptx", rep.Results["decks/a.pptx"].FileName)
	assert.Contains(t, rep.Summary, "Processed 1 file(s), 2 failed.")
	assert.Contains(t, rep.Summary, "a.pptx: 1 slide(s), 1 text.")
}
