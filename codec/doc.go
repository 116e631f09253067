// Package codec provides structural serialization for optional-field
// containers as a pluggable capability. The core containers in the root
// package stay format-agnostic; this package composes formats in:
//
//   - Codec is the contract for serializing one optional value, where a
//     nil pointer stands for the format's absence marker
//   - JSONCodec / YAMLCodec implement it for JSON (absent is null) and YAML
//   - JSONField / YAMLField embed a Field and wire it into encoding/json
//     and yaml.v3 marshaling, for use as struct field types
//   - SetPath / GetPath move optional fields in and out of enclosing JSON
//     documents by path
//
// Encode and Decode operate on the Option capability interface, so every
// representation serializes identically through its logical projection. A
// successful decode always leaves the target either absent or holding the
// decoded value.
package codec
