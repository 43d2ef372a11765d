package jsonmodels

import (
	"errors"
	"fmt"
	"reflect"
)

// ToEntity converts a model instance into a JSON-ready object value. The
// output contains, for every registered field whose internal key is
// present in the instance's storage, the converted value under the field's
// external key. Fields that were never set are omitted entirely; fields
// explicitly set to Null appear as null. A nil instance converts to Null.
//
// If the instance implements EntityMarshaler, that method is called
// instead of descriptor iteration.
func ToEntity(m Instance) (Value, error) {
	if m == nil {
		return Null(), nil
	}
	rv := reflect.ValueOf(m)
	if rv.Kind() == reflect.Ptr && rv.IsNil() {
		return Null(), nil
	}

	if em, ok := m.(EntityMarshaler); ok {
		return em.MarshalEntity()
	}

	t := rv.Type()
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	sch := schemaFor(t)
	props := m.properties()

	out := make(map[string]Value, len(props))
	for _, f := range sch.fields {
		stored, ok := props[f.Name()]
		if !ok {
			continue
		}
		v, err := f.encodeValue(stored)
		if err != nil {
			return Null(), wrapFieldError(err, sch.typeName, f.Name())
		}
		out[f.JSONName()] = v
	}
	return Object(out), nil
}

// FromEntity constructs a fresh instance of model type T from an entity
// value. The root must be an object; every registered field whose external
// key is present in the object is converted and written directly into the
// new instance's storage, bypassing the setter path. Keys that match no
// registered field are silently ignored. Fields whose keys are absent
// remain unset.
//
// If *T implements EntityUnmarshaler, that method is called instead; it
// receives the entity as-is, including non-object roots.
func FromEntity[T any](entity Value) (*T, error) {
	t := reflect.TypeFor[T]()
	inst := new(T)

	m, ok := any(inst).(Instance)
	if !ok {
		return nil, newConversionError(ErrNotModel, t.Name(), "", nil)
	}

	if um, ok := any(inst).(EntityUnmarshaler); ok {
		if err := um.UnmarshalEntity(entity); err != nil {
			return nil, err
		}
		return inst, nil
	}

	if entity.Kind() != KindObject {
		return nil, newConversionError(ErrInvalidInput, t.Name(), "",
			fmt.Errorf("expected object, got %s", entity.Kind()))
	}

	sch := schemaFor(t)
	props := m.properties()
	for _, f := range sch.fields {
		raw, ok := entity.Field(f.JSONName())
		if !ok {
			continue
		}
		stored, err := f.decodeValue(raw)
		if err != nil {
			return nil, wrapFieldError(err, sch.typeName, f.Name())
		}
		props[f.Name()] = stored
	}
	return inst, nil
}

// wrapFieldError attaches model and field context to a conversion failure,
// carrying the innermost sentinel forward so errors.Is keeps working
// across nesting levels.
func wrapFieldError(err error, model, field string) error {
	sentinel := ErrTypeMismatch
	switch {
	case errors.Is(err, ErrNotModel):
		sentinel = ErrNotModel
	case errors.Is(err, ErrInvalidInput):
		sentinel = ErrInvalidInput
	case errors.Is(err, ErrUnsupportedValue):
		sentinel = ErrUnsupportedValue
	}
	return newConversionError(sentinel, model, field, err)
}
