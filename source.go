package typedmap

import (
	"bytes"
	"io"

	json "github.com/goccy/go-json"
)

// DecodeJSON decodes a JSON object from r into the map/list/scalar shape the
// matcher consumes. Numbers are preserved as json.Number so that integer and
// float categories stay distinguishable.
func DecodeJSON(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	return m, nil
}

// DecodeJSONBytes decodes a JSON object from a byte slice.
func DecodeJSONBytes(b []byte) (map[string]any, error) {
	return DecodeJSON(bytes.NewReader(b))
}

// ValidateJSON decodes a JSON document and validates it against the record
// schema. Decode failures are returned as-is and are unaffected by Silent.
func ValidateJSON(data []byte, s Schema, opts ...ValidateOpt) (bool, error) {
	m, err := DecodeJSONBytes(data)
	if err != nil {
		return false, err
	}
	return Validate(m, s, opts...)
}
