package jsonmodels

import (
	"context"
	"reflect"
	"time"
)

// Serializer binds a model type to a codec, converting between *T and the
// codec's wire format through the entity layer. Serializers are stateless
// after construction and safe for concurrent use.
type Serializer[T any] struct {
	codec    Codec
	typeName string
}

// NewSerializer creates a Serializer for model type T. It fails with
// ErrNotModel if *T does not embed Model. Register T's fields before the
// first Marshal or Unmarshal call.
func NewSerializer[T any](codec Codec) (*Serializer[T], error) {
	t := reflect.TypeFor[T]()
	if _, ok := any(new(T)).(Instance); !ok {
		return nil, newConversionError(ErrNotModel, t.Name(), "", nil)
	}

	sch := schemaFor(t)
	s := &Serializer[T]{
		codec:    codec,
		typeName: sch.typeName,
	}

	emitSerializerCreated(context.Background(), codec.ContentType(), sch.typeName, len(sch.fields))
	return s, nil
}

// ContentType returns the MIME type of the underlying codec.
func (s *Serializer[T]) ContentType() string {
	return s.codec.ContentType()
}

// Marshal converts the instance to its entity representation and encodes
// it with the codec. Set fields appear under their external keys; unset
// fields are omitted. A nil instance encodes as the codec's null.
func (s *Serializer[T]) Marshal(ctx context.Context, m *T) ([]byte, error) {
	start := time.Now()
	emitMarshalStart(ctx, s.codec.ContentType(), s.typeName)

	var retErr error
	var retData []byte
	defer func() {
		emitMarshalComplete(ctx, s.codec.ContentType(), s.typeName,
			len(retData), time.Since(start), retErr)
	}()

	var entity any
	if m != nil {
		v, err := ToEntity(any(m).(Instance))
		if err != nil {
			retErr = err
			return nil, retErr
		}
		entity = v.Interface()
	}

	data, err := s.codec.Marshal(entity)
	if err != nil {
		retErr = newCodecError(ErrMarshal, err)
		return nil, retErr
	}
	retData = data
	return data, nil
}

// Unmarshal decodes data with the codec and constructs a fresh instance
// from the resulting entity. The decoded root must be an object; keys that
// match no registered field are silently ignored.
func (s *Serializer[T]) Unmarshal(ctx context.Context, data []byte) (*T, error) {
	start := time.Now()
	emitUnmarshalStart(ctx, s.codec.ContentType(), s.typeName)

	var retErr error
	defer func() {
		emitUnmarshalComplete(ctx, s.codec.ContentType(), s.typeName,
			len(data), time.Since(start), retErr)
	}()

	var raw any
	if err := s.codec.Unmarshal(data, &raw); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return nil, retErr
	}

	entity, err := ValueOf(raw)
	if err != nil {
		retErr = err
		return nil, retErr
	}

	inst, err := FromEntity[T](entity)
	if err != nil {
		retErr = err
		return nil, retErr
	}
	return inst, nil
}
