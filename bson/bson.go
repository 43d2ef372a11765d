// Package bson provides a BSON codec implementation.
package bson

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsonrw"

	"github.com/cheezypoofs/jsonmodels"
)

// bsonCodec implements jsonmodels.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() jsonmodels.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON. The top-level value must be a document; BSON
// has no encoding for bare scalars or null roots.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v. Documents decode as bson.M rather
// than the driver's default bson.D so that generic decoding yields
// string-keyed maps.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	dec, err := bson.NewDecoder(bsonrw.NewBSONDocumentReader(data))
	if err != nil {
		return err
	}
	dec.DefaultDocumentM()
	return dec.Decode(v)
}
