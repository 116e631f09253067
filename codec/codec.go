package codec

import (
	"github.com/hupe1980/optfield"
)

// Codec serializes and deserializes a single optional value. A nil pointer
// on either side stands for the format's absence marker. Implementations
// must be stateless or safe to copy.
type Codec[T any] interface {
	// Encode renders *p, or the absence marker when p is nil.
	Encode(p *T) ([]byte, error)
	// Decode parses data, returning nil for the absence marker.
	Decode(data []byte) (*T, error)
}

// Encode serializes the logical projection of o with c. Retained-but-cleared
// storage is never observed; an absent container encodes as the absence
// marker.
func Encode[T any](c Codec[T], o optfield.Option[T]) ([]byte, error) {
	return c.Encode(o.Ptr())
}

// Decode deserializes data into o. On success o is either absent (absence
// marker) or present with the decoded value; on failure o is left as it
// was. Decode errors come from c and are passed through.
func Decode[T any](c Codec[T], o optfield.Option[T], data []byte) error {
	p, err := c.Decode(data)
	if err != nil {
		return err
	}
	if p == nil {
		o.Take()
		return nil
	}
	o.Set(*p)
	return nil
}
