package jsonmodels

import (
	"fmt"
	"reflect"
)

// Field is the contract shared by all descriptor variants. A Field is
// declared once per model type, registered via Register, and shared
// read-only across every instance of that type. It knows the field's
// internal key (its storage identity), its external JSON key, and how to
// convert values in both directions.
//
// The interface is sealed; the three variants are Property,
// ModelProperty, and ModelListProperty.
type Field interface {
	// Name returns the internal key, used as the storage identity.
	Name() string

	// JSONName returns the external key, used in entity representations.
	JSONName() string

	// encodeValue converts a stored value into its entity representation.
	encodeValue(stored any) (Value, error)

	// decodeValue converts an entity value into its stored representation.
	decodeValue(v Value) (any, error)
}

// Property declares a scalar field. Values pass through conversion
// unchanged in both directions.
type Property struct {
	name     string
	jsonName string
}

// NewProperty declares a scalar field with the given internal key. An
// empty jsonName defaults to name.
func NewProperty(name, jsonName string) *Property {
	if jsonName == "" {
		jsonName = name
	}
	return &Property{name: name, jsonName: jsonName}
}

// Name returns the internal key.
func (p *Property) Name() string { return p.name }

// JSONName returns the external key.
func (p *Property) JSONName() string { return p.jsonName }

// Get reads the field from an instance. Unset fields read as Null.
func (p *Property) Get(m Instance) Value {
	v, _ := m.properties()[p.name].(Value)
	return v
}

// Set writes the field on an instance unconditionally. Setting Null marks
// the field as set; it will appear as null in entity output.
func (p *Property) Set(m Instance, v Value) {
	m.properties()[p.name] = v
}

func (p *Property) encodeValue(stored any) (Value, error) {
	v, ok := stored.(Value)
	if !ok {
		return Null(), fmt.Errorf("%w: stored %T is not a Value", ErrTypeMismatch, stored)
	}
	return v, nil
}

func (p *Property) decodeValue(v Value) (any, error) {
	return v, nil
}

// ModelProperty declares a field holding a single nested model of type M.
// Outbound conversion delegates to the nested instance's own entity
// conversion; inbound conversion recursively constructs a *M. A nil
// pointer converts to null and back.
type ModelProperty[M any] struct {
	name     string
	jsonName string
}

// NewModelProperty declares a nested-model field with the given internal
// key. An empty jsonName defaults to name.
func NewModelProperty[M any](name, jsonName string) *ModelProperty[M] {
	if jsonName == "" {
		jsonName = name
	}
	return &ModelProperty[M]{name: name, jsonName: jsonName}
}

// Name returns the internal key.
func (p *ModelProperty[M]) Name() string { return p.name }

// JSONName returns the external key.
func (p *ModelProperty[M]) JSONName() string { return p.jsonName }

// Get reads the nested instance, or nil when the field is unset.
func (p *ModelProperty[M]) Get(m Instance) *M {
	v, _ := m.properties()[p.name].(*M)
	return v
}

// Set writes the nested instance unconditionally.
func (p *ModelProperty[M]) Set(m Instance, v *M) {
	m.properties()[p.name] = v
}

func (p *ModelProperty[M]) encodeValue(stored any) (Value, error) {
	nested, ok := stored.(*M)
	if !ok {
		return Null(), fmt.Errorf("%w: stored %T is not *%s", ErrTypeMismatch, stored, reflect.TypeFor[M]().Name())
	}
	if nested == nil {
		return Null(), nil
	}
	inst, ok := any(nested).(Instance)
	if !ok {
		return Null(), fmt.Errorf("%w: %s", ErrNotModel, reflect.TypeFor[M]().Name())
	}
	return ToEntity(inst)
}

func (p *ModelProperty[M]) decodeValue(v Value) (any, error) {
	if v.IsNull() {
		return (*M)(nil), nil
	}
	if v.Kind() != KindObject {
		return nil, fmt.Errorf("%w: %s entity for model field", ErrTypeMismatch, v.Kind())
	}
	return FromEntity[M](v)
}

// ModelListProperty declares a field holding an ordered list of nested
// models of type M. Conversion maps the single-model conversion over every
// element, preserving order. A nil slice converts to null and back.
type ModelListProperty[M any] struct {
	name     string
	jsonName string
}

// NewModelListProperty declares a list-of-models field with the given
// internal key. An empty jsonName defaults to name.
func NewModelListProperty[M any](name, jsonName string) *ModelListProperty[M] {
	if jsonName == "" {
		jsonName = name
	}
	return &ModelListProperty[M]{name: name, jsonName: jsonName}
}

// Name returns the internal key.
func (p *ModelListProperty[M]) Name() string { return p.name }

// JSONName returns the external key.
func (p *ModelListProperty[M]) JSONName() string { return p.jsonName }

// Get reads the nested list, or nil when the field is unset.
func (p *ModelListProperty[M]) Get(m Instance) []*M {
	v, _ := m.properties()[p.name].([]*M)
	return v
}

// Set writes the nested list unconditionally.
func (p *ModelListProperty[M]) Set(m Instance, v []*M) {
	m.properties()[p.name] = v
}

func (p *ModelListProperty[M]) encodeValue(stored any) (Value, error) {
	list, ok := stored.([]*M)
	if !ok {
		return Null(), fmt.Errorf("%w: stored %T is not []*%s", ErrTypeMismatch, stored, reflect.TypeFor[M]().Name())
	}
	if list == nil {
		return Null(), nil
	}
	items := make([]Value, len(list))
	for i, nested := range list {
		if nested == nil {
			items[i] = Null()
			continue
		}
		inst, ok := any(nested).(Instance)
		if !ok {
			return Null(), fmt.Errorf("%w: %s", ErrNotModel, reflect.TypeFor[M]().Name())
		}
		iv, err := ToEntity(inst)
		if err != nil {
			return Null(), fmt.Errorf("element %d: %w", i, err)
		}
		items[i] = iv
	}
	return Array(items...), nil
}

func (p *ModelListProperty[M]) decodeValue(v Value) (any, error) {
	if v.IsNull() {
		return []*M(nil), nil
	}
	if v.Kind() != KindArray {
		return nil, fmt.Errorf("%w: %s entity for model list field", ErrTypeMismatch, v.Kind())
	}
	items := v.Items()
	list := make([]*M, len(items))
	for i, item := range items {
		if item.IsNull() {
			continue
		}
		if item.Kind() != KindObject {
			return nil, fmt.Errorf("%w: %s element %d in model list", ErrTypeMismatch, item.Kind(), i)
		}
		nested, err := FromEntity[M](item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		list[i] = nested
	}
	return list, nil
}
