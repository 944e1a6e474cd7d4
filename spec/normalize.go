package spec

import (
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonrepair"
)

// Normalize parses raw spec JSON into a generic tree and cleans up the
// loose typing upstream producers emit: the exact-case literal strings
// "True"/"False" become booleans wherever they appear as scalar values,
// and a "layout" key whose value is null is dropped from its mapping.
// Lowercase "true"/"false" strings deliberately pass through unchanged.
//
// Parsing is tolerant: if strict JSON decoding fails the text is run
// through jsonrepair and decoded again before Normalize gives up.
func Normalize(raw []byte) (any, error) {
	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(string(raw))
		if repairErr != nil {
			return nil, fmt.Errorf("parse spec: %w (repair also failed: %v)", err, repairErr)
		}
		if err := json.Unmarshal([]byte(repaired), &tree); err != nil {
			return nil, fmt.Errorf("parse repaired spec: %w", err)
		}
	}
	return normalizeValue(tree), nil
}

func normalizeValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, child := range x {
			if k == "layout" && child == nil {
				continue
			}
			out[k] = normalizeValue(child)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, child := range x {
			out[i] = normalizeValue(child)
		}
		return out
	case string:
		switch x {
		case "True":
			return true
		case "False":
			return false
		}
		return x
	default:
		return v
	}
}

// Decode normalizes raw spec JSON and maps it onto the typed DeckSpec
// model. Unknown keys are ignored; the normalizer's coercions apply first
// so stringified booleans land in boolean fields.
func Decode(raw []byte) (*DeckSpec, error) {
	tree, err := Normalize(raw)
	if err != nil {
		return nil, err
	}
	if _, ok := tree.(map[string]any); !ok {
		// Structural mismatch at the top level resolves to an empty deck.
		return &DeckSpec{}, nil
	}
	clean, err := json.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("re-encode normalized spec: %w", err)
	}
	var deck DeckSpec
	if err := json.Unmarshal(clean, &deck); err != nil {
		return nil, fmt.Errorf("decode spec: %w", err)
	}
	return &deck, nil
}

// UnmarshalJSON resolves the shared "items" key: gantt charts carry
// timeline items there, bullet text elements carry bullet lines. A decode
// failure on either shape leaves the field empty rather than failing the
// element.
func (e *ElementSpec) UnmarshalJSON(b []byte) error {
	type alias ElementSpec
	aux := struct {
		*alias
		RawItems json.RawMessage `json:"items,omitempty"`
	}{alias: (*alias)(e)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if len(aux.RawItems) == 0 {
		return nil
	}
	if e.Type == "chart" && e.Subtype == "gantt" {
		if err := json.Unmarshal(aux.RawItems, &e.GanttItems); err != nil {
			e.GanttItems = nil
		}
		return nil
	}
	if err := json.Unmarshal(aux.RawItems, &e.Items); err != nil {
		e.Items = nil
	}
	return nil
}
