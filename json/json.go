// Package json provides a JSON codec implementation.
package json

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/cheezypoofs/jsonmodels"
)

// std is a frozen configuration compatible with encoding/json.
var std = jsoniter.ConfigCompatibleWithStandardLibrary

// jsonCodec implements jsonmodels.Codec for JSON.
type jsonCodec struct{}

// New returns a JSON codec.
func New() jsonmodels.Codec {
	return &jsonCodec{}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	return std.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return std.Unmarshal(data, v)
}
