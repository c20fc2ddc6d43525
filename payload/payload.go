// Package payload decodes JSON and YAML documents into the untyped values
// (maps, slices, scalars) that schema validators consume, and provides
// decode-then-validate conveniences for request/response-sized payloads.
//
// Decoding and validation are kept as distinct failure channels: a document
// that cannot be decoded at all is an error, while a well-formed document
// that does not conform to the schema is an ordinary false verdict.
package payload

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/amp-labs/amp-schema/schema"
)

// Sentinel errors for document decoding.
var (
	ErrInvalidJSON = errors.New("payload is not valid JSON")
	ErrInvalidYAML = errors.New("payload is not valid YAML")
)

// FromJSON decodes a JSON document into an untyped value ready for
// validation: objects become map[string]any, arrays become []any, numbers
// become float64.
func FromJSON(data []byte) (any, error) {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return value, nil
}

// FromYAML decodes a YAML document into an untyped value ready for
// validation: mappings become map[string]any, sequences become []any.
func FromYAML(data []byte) (any, error) {
	var value any
	if err := yaml.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidYAML, err)
	}

	return value, nil
}

// JSON decodes a JSON document and validates it against v. A decode error is
// returned as an error; a document that decodes but does not conform yields
// (false, nil). Options configure the validator's diagnostics.
func JSON(v schema.Validator, data []byte, opts ...schema.Option) (bool, error) {
	value, err := FromJSON(data)
	if err != nil {
		return false, err
	}

	return v.Validate(value, opts...), nil
}

// YAML decodes a YAML document and validates it against v, with the same
// failure channels as JSON.
func YAML(v schema.Validator, data []byte, opts ...schema.Option) (bool, error) {
	value, err := FromYAML(data)
	if err != nil {
		return false, err
	}

	return v.Validate(value, opts...), nil
}
