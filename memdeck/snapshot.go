package memdeck

import "github.com/deckforge/deckconv/compact"

// Snapshot renders the deck as a pruned generic tree, mostly for tests
// and debugging. Geometry is reported in inches.
func (d *Deck) Snapshot() (any, error) {
	type runSnap struct {
		Text  string  `json:"text"`
		Font  string  `json:"font,omitempty"`
		Size  float64 `json:"size,omitempty"`
		Bold  bool    `json:"bold,omitempty"`
		Color string  `json:"color,omitempty"`
	}
	type paraSnap struct {
		Level int       `json:"level"`
		Align string    `json:"align,omitempty"`
		Runs  []runSnap `json:"runs,omitempty"`
	}
	type shapeSnap struct {
		ID    string     `json:"id"`
		Type  string     `json:"type"`
		X     float64    `json:"x"`
		Y     float64    `json:"y"`
		W     float64    `json:"w"`
		H     float64    `json:"h"`
		Fill  string     `json:"fill,omitempty"`
		Chart string     `json:"chart,omitempty"`
		Paras []paraSnap `json:"paragraphs,omitempty"`
	}
	type slideSnap struct {
		Shapes []shapeSnap `json:"shapes,omitempty"`
	}
	type deckSnap struct {
		Width  float64     `json:"width"`
		Height float64     `json:"height"`
		Slides []slideSnap `json:"slides,omitempty"`
	}

	typeNames := map[shapeType]string{
		shapeTextBox: "textbox",
		shapeAuto:    "shape",
		shapeTable:   "table",
		shapeChart:   "chart",
	}

	snap := deckSnap{Width: d.w, Height: d.h}
	for _, s := range d.slides {
		ss := slideSnap{}
		for _, rec := range s.shapes {
			sh := shapeSnap{
				ID:   rec.id,
				Type: typeNames[rec.typ],
				X:    rec.rect.X,
				Y:    rec.rect.Y,
				W:    rec.rect.W,
				H:    rec.rect.H,
			}
			if rec.fill != nil {
				sh.Fill = rec.fill.Hex()
			}
			if rec.chart != nil {
				sh.Chart = string(rec.chart.Kind)
			}
			if rec.frame != nil {
				for _, p := range rec.frame.paras {
					ps := paraSnap{Level: p.level, Align: p.align}
					for _, r := range p.runs {
						rs := runSnap{Text: r.text, Font: r.font, Bold: r.bold}
						if r.sizeSet {
							rs.Size = r.size
						}
						if r.color != nil {
							rs.Color = r.color.Hex()
						}
						ps.Runs = append(ps.Runs, rs)
					}
					sh.Paras = append(sh.Paras, ps)
				}
			}
			ss.Shapes = append(ss.Shapes, sh)
		}
		snap.Slides = append(snap.Slides, ss)
	}
	return compact.Struct(snap)
}
