// Package deckconv converts between a loosely structured JSON deck
// specification and a slide-deck presentation file, in both directions.
// The entry points here wrap the full pipelines; the sub-packages expose
// the individual stages (spec parsing, layout, rendering, analysis).
package deckconv

import (
	"io"

	"go.uber.org/zap"

	"github.com/deckforge/deckconv/analyze"
	"github.com/deckforge/deckconv/canvas"
	"github.com/deckforge/deckconv/pptx"
	"github.com/deckforge/deckconv/render"
	"github.com/deckforge/deckconv/spec"
)

// Build parses raw spec JSON and renders it onto c. It returns the number
// of slides produced.
func Build(raw []byte, c canvas.Canvas, logger *zap.Logger) (int, error) {
	deck, err := spec.Decode(raw)
	if err != nil {
		return 0, err
	}
	opts := render.DefaultOptions()
	opts.Logger = logger
	return render.NewBuilder(opts).Build(deck, c)
}

// BuildPPTX parses raw spec JSON and writes a finished presentation file
// to out. It returns the number of slides produced.
func BuildPPTX(raw []byte, out io.Writer, logger *zap.Logger) (int, error) {
	w := pptx.NewWriter()
	n, err := Build(raw, w, logger)
	if err != nil {
		return 0, err
	}
	if err := w.Save(out); err != nil {
		return 0, err
	}
	return n, nil
}

// Analyze extracts the compact element tree from an already-open
// document.
func Analyze(doc analyze.Document, fileName string, logger *zap.Logger) *analyze.FileResult {
	a := &analyze.Analyzer{Logger: logger}
	return a.AnalyzeDocument(doc, fileName)
}

// AnalyzePPTX parses presentation file bytes and extracts the compact
// element tree.
func AnalyzePPTX(data []byte, fileName string, logger *zap.Logger) (*analyze.FileResult, error) {
	doc, err := pptx.Open(data)
	if err != nil {
		return nil, err
	}
	return Analyze(doc, fileName, logger), nil
}
