package schema

import (
	"encoding/json"
	"fmt"
)

// canonical returns the canonical JSON form of value, used both for literal
// equality and for rendering offending values in diagnostic traces. Returns
// false for values that have no canonical form (Absent, channels, functions,
// cyclic data, ...).
func canonical(value any) ([]byte, bool) {
	if _, ok := value.(AbsentValue); ok {
		return nil, false
	}

	jsonBytes, err := json.Marshal(value)
	if err != nil {
		return nil, false
	}

	return jsonBytes, true
}

// canonString renders value for a diagnostic trace line. Values without a
// canonical JSON form fall back to their Go formatting.
func canonString(value any) string {
	if _, ok := value.(AbsentValue); ok {
		return "<absent>"
	}

	if jsonBytes, ok := canonical(value); ok {
		return string(jsonBytes)
	}

	return fmt.Sprintf("%v", value)
}

// toJSONMap coerces a struct value to a map with JSON-like keys via a
// marshal/unmarshal round trip. Returns false when the value cannot be
// represented as JSON.
func toJSONMap(value any) (map[string]any, bool) {
	jsonBytes, err := json.Marshal(value)
	if err != nil {
		return nil, false
	}

	var jsonMap map[string]any
	if err := json.Unmarshal(jsonBytes, &jsonMap); err != nil {
		return nil, false
	}

	return jsonMap, true
}
