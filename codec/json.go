package codec

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/hupe1980/optfield"
)

// jsonNull is the JSON absence marker.
var jsonNull = []byte("null")

// JSONCodec implements Codec for JSON. An absent value is the null literal;
// a present value is the contained value's own JSON representation.
type JSONCodec[T any] struct{}

// Encode renders *p as JSON, or null when p is nil.
func (JSONCodec[T]) Encode(p *T) ([]byte, error) {
	if p == nil {
		return jsonNull, nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("codec: encode json: %w", err)
	}
	return data, nil
}

// Decode parses a JSON document, returning nil for the null literal.
func (JSONCodec[T]) Decode(data []byte) (*T, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("codec: decode json: invalid document")
	}
	if gjson.ParseBytes(data).Type == gjson.Null {
		return nil, nil
	}
	v := new(T)
	if err := json.Unmarshal(data, v); err != nil {
		return nil, fmt.Errorf("codec: decode json: %w", err)
	}
	return v, nil
}

// JSONField is a Field wired into encoding/json: present marshals as the
// value, absent marshals as null, and unmarshaling null clears the field.
// Intended as a struct field type in format-aware message definitions.
type JSONField[T any] struct {
	optfield.Field[T]
}

// MarshalJSON implements json.Marshaler over the logical projection.
func (f JSONField[T]) MarshalJSON() ([]byte, error) {
	return JSONCodec[T]{}.Encode(f.Field.Ptr())
}

// UnmarshalJSON implements json.Unmarshaler. Decoded values reuse retained
// storage when the field has any.
func (f *JSONField[T]) UnmarshalJSON(data []byte) error {
	return Decode[T](JSONCodec[T]{}, &f.Field, data)
}
