// Package compact implements the recursive falsy-removal rule shared by the
// build and analyze pipelines: any key or list entry whose value is null,
// false, an empty list, or an empty map is dropped. Zero and the empty
// string are kept.
package compact

import "encoding/json"

// Tree compacts a generic JSON tree (map[string]any / []any / scalars)
// in place of a copy. The input is not modified.
func Tree(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, child := range x {
			cv := Tree(child)
			if isEmpty(cv) {
				continue
			}
			out[k] = cv
		}
		return out
	case []any:
		out := make([]any, 0, len(x))
		for _, child := range x {
			cv := Tree(child)
			if isEmpty(cv) {
				continue
			}
			out = append(out, cv)
		}
		return out
	default:
		return v
	}
}

func isEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case []any:
		return len(x) == 0
	case map[string]any:
		return len(x) == 0
	}
	return false
}

// Struct converts any marshalable value to a generic tree and compacts it.
// The JSON round-trip means struct tags decide the key names.
func Struct(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var tree any
	if err := json.Unmarshal(b, &tree); err != nil {
		return nil, err
	}
	return Tree(tree), nil
}

// Marshal compacts v and serializes the result.
func Marshal(v any, pretty bool) ([]byte, error) {
	tree, err := Struct(v)
	if err != nil {
		return nil, err
	}
	if pretty {
		return json.MarshalIndent(tree, "", "  ")
	}
	return json.Marshal(tree)
}
