package analyze

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// OpenFunc loads a slide-deck document from raw file bytes.
type OpenFunc func(data []byte) (Document, error)

// FetchFunc retrieves the bytes behind a storage key.
type FetchFunc func(key string) ([]byte, error)

// BatchReport summarizes one batch run. Failed keys carry the failure
// reason; keys with an unrecognized extension are skipped and appear in
// neither list.
type BatchReport struct {
	Processed []string               `json:"processed"`
	Failed    map[string]string      `json:"failed,omitempty"`
	Results   map[string]*FileResult `json:"results,omitempty"`
	Summary   string                 `json:"summary"`
}

// AnalyzeBatch fetches, opens, and analyzes every .pptx key. A fetch or
// open failure marks that key failed and the batch moves on.
func (a *Analyzer) AnalyzeBatch(open OpenFunc, fetch FetchFunc, keys []string) *BatchReport {
	rep := &BatchReport{
		Failed:  map[string]string{},
		Results: map[string]*FileResult{},
	}
	for _, key := range keys {
		if !strings.EqualFold(path.Ext(key), ".pptx") {
			a.logger().Debug("skipping non-deck key", zap.String("key", key))
			continue
		}
		data, err := fetch(key)
		if err != nil {
			a.logger().Warn("fetch failed", zap.String("key", key), zap.Error(err))
			rep.Failed[key] = fmt.Sprintf("fetch: %v", err)
			continue
		}
		doc, err := open(data)
		if err != nil {
			a.logger().Warn("open failed", zap.String("key", key), zap.Error(err))
			rep.Failed[key] = fmt.Sprintf("open: %v", err)
			continue
		}
		rep.Results[key] = a.AnalyzeDocument(doc, path.Base(key))
		rep.Processed = append(rep.Processed, key)
	}
	rep.Summary = summarize(rep)
	return rep
}

// summarize builds the human-readable roll-up: per-file element counts by
// kind, plus the failure tally.
func summarize(rep *BatchReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Processed %d file(s), %d failed.", len(rep.Processed), len(rep.Failed))
	keys := append([]string(nil), rep.Processed...)
	sort.Strings(keys)
	for _, key := range keys {
		res := rep.Results[key]
		counts := map[string]int{}
		for _, s := range res.Slides {
			for _, el := range s.Elements {
				counts[kindOf(el)]++
			}
		}
		fmt.Fprintf(&b, " %s: %d slide(s)", res.FileName, res.SlideCount)
		for _, kind := range []string{"text", "table", "chart", "image", "group"} {
			if n := counts[kind]; n > 0 {
				fmt.Fprintf(&b, ", %d %s", n, kind)
			}
		}
		b.WriteString(".")
	}
	return b.String()
}

func kindOf(el any) string {
	switch el.(type) {
	case *TextNode:
		return "text"
	case *TableNode:
		return "table"
	case *ChartNode:
		return "chart"
	case *ImageNode:
		return "image"
	case *GroupNode:
		return "group"
	default:
		return "other"
	}
}
