package jsonmodels

import (
	"reflect"
	"sync"
)

// serializerKey combines type and codec for cache lookup.
type serializerKey struct {
	typ         reflect.Type
	contentType string
}

var (
	serializers   = make(map[serializerKey]any)
	serializersMu sync.RWMutex
)

// Use returns a cached serializer or builds a new one. The serializer is
// cached by model type and codec content type.
func Use[T any](codec Codec) (*Serializer[T], error) {
	typ := reflect.TypeFor[T]()
	key := serializerKey{typ: typ, contentType: codec.ContentType()}

	// Fast path: read-lock cache check
	serializersMu.RLock()
	if cached, ok := serializers[key]; ok {
		serializersMu.RUnlock()
		return cached.(*Serializer[T]), nil
	}
	serializersMu.RUnlock()

	// Slow path: build and cache with write-lock
	serializersMu.Lock()
	defer serializersMu.Unlock()

	// Double-check pattern
	if cached, ok := serializers[key]; ok {
		return cached.(*Serializer[T]), nil
	}

	serializer, err := NewSerializer[T](codec)
	if err != nil {
		return nil, err
	}

	serializers[key] = serializer
	return serializer, nil
}

// Reset clears the serializer cache.
// This is primarily useful for test isolation.
func Reset() {
	serializersMu.Lock()
	defer serializersMu.Unlock()
	serializers = make(map[serializerKey]any)
}
