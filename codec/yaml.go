package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/optfield"
)

const yamlNullTag = "!!null"

// YAMLCodec implements Codec for YAML. An absent value is a null document;
// a present value is the contained value's own YAML representation.
type YAMLCodec[T any] struct{}

// Encode renders *p as YAML, or a null document when p is nil.
func (YAMLCodec[T]) Encode(p *T) ([]byte, error) {
	if p == nil {
		return []byte("null\n"), nil
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("codec: encode yaml: %w", err)
	}
	return data, nil
}

// Decode parses a YAML document, returning nil for empty or null documents.
func (YAMLCodec[T]) Decode(data []byte) (*T, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("codec: decode yaml: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.ShortTag() == yamlNullTag {
		return nil, nil
	}
	v := new(T)
	if err := root.Decode(v); err != nil {
		return nil, fmt.Errorf("codec: decode yaml: %w", err)
	}
	return v, nil
}

// YAMLField is a Field wired into yaml.v3 marshaling: present marshals as
// the value, absent marshals as null, and unmarshaling null clears the
// field. Intended as a struct field type in format-aware definitions.
type YAMLField[T any] struct {
	optfield.Field[T]
}

// MarshalYAML implements yaml.Marshaler over the logical projection.
func (f YAMLField[T]) MarshalYAML() (any, error) {
	if p := f.Field.Ptr(); p != nil {
		return *p, nil
	}
	return nil, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Decoded values reuse retained
// storage when the field has any.
func (f *YAMLField[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.ShortTag() == yamlNullTag {
		f.Field.Take()
		return nil
	}
	v := new(T)
	if err := node.Decode(v); err != nil {
		return fmt.Errorf("codec: decode yaml: %w", err)
	}
	f.Field.Set(*v)
	return nil
}
