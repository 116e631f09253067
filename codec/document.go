package codec

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/hupe1980/optfield"
)

// SetPath writes the logical projection of o into the JSON document doc at
// path: a present field replaces the value at the path, an absent field
// deletes the key entirely. The modified document is returned.
func SetPath[T any](doc []byte, path string, o optfield.Option[T]) ([]byte, error) {
	p := o.Ptr()
	if p == nil {
		out, err := sjson.DeleteBytes(doc, path)
		if err != nil {
			return nil, fmt.Errorf("codec: delete %q: %w", path, err)
		}
		return out, nil
	}
	out, err := sjson.SetBytes(doc, path, *p)
	if err != nil {
		return nil, fmt.Errorf("codec: set %q: %w", path, err)
	}
	return out, nil
}

// GetPath reads the value at path in the JSON document doc into a Field. A
// missing key or explicit null yields an absent field.
func GetPath[T any](doc []byte, path string) (optfield.Field[T], error) {
	res := gjson.GetBytes(doc, path)
	if !res.Exists() || res.Type == gjson.Null {
		return optfield.None[T](), nil
	}
	v := new(T)
	if err := json.Unmarshal([]byte(res.Raw), v); err != nil {
		return optfield.None[T](), fmt.Errorf("codec: get %q: %w", path, err)
	}
	return optfield.FromPtr(v), nil
}
