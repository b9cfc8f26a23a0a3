package jsonx

import json "github.com/goccy/go-json"

// ToDynamicJSON converts any value into a dynamic JSON object by marshaling
// it and unmarshaling the result into a map. Useful for SDKs that accept
// free-form parameter objects rather than typed schemas.
func ToDynamicJSON(val any) (map[string]any, error) {
	b, err := json.Marshal(val)
	if err != nil {
		return nil, err
	}
	result := make(map[string]any)
	if err := json.Unmarshal(b, &result); err != nil {
		return nil, err
	}
	return result, nil
}
