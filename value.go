package jsonmodels

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
)

// Kind identifies the JSON shape a Value holds.
type Kind int

const (
	// KindNull is the null value.
	KindNull Kind = iota
	// KindBool is a boolean.
	KindBool
	// KindNumber is a number, carried as float64.
	KindNumber
	// KindString is a string.
	KindString
	// KindArray is an ordered sequence of values.
	KindArray
	// KindObject is a string-keyed mapping of values.
	KindObject
)

// String returns the kind name for error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Value is the sole interchange type at the conversion boundary: a tagged
// union over the six JSON-compatible shapes. The zero Value is Null.
//
// Values are immutable by convention. The slices and maps returned by
// Items and Fields are the Value's backing storage and must not be
// modified by callers.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	seq  []Value
	obj  map[string]Value
}

// Null returns the null value. It is also the zero Value.
func Null() Value {
	return Value{}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Number returns a numeric value.
func Number(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Array returns an array value holding the given elements in order.
func Array(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindArray, seq: items}
}

// Object returns an object value backed by the given mapping.
func Object(fields map[string]Value) Value {
	if fields == nil {
		fields = map[string]Value{}
	}
	return Value{kind: KindObject, obj: fields}
}

// Kind reports the shape this value holds.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsBool returns the boolean content, or false for non-bool values.
func (v Value) AsBool() bool {
	return v.b
}

// AsNumber returns the numeric content, or 0 for non-number values.
func (v Value) AsNumber() float64 {
	return v.num
}

// AsString returns the string content, or "" for non-string values.
func (v Value) AsString() string {
	return v.str
}

// Items returns the elements of an array value, or nil otherwise.
func (v Value) Items() []Value {
	return v.seq
}

// Fields returns the members of an object value, or nil otherwise.
func (v Value) Fields() map[string]Value {
	return v.obj
}

// Field returns the named member of an object value and whether it is
// present. Absence and a present null member are distinct.
func (v Value) Field(name string) (Value, bool) {
	fv, ok := v.obj[name]
	return fv, ok
}

// Len returns the element count of an array value or the member count of
// an object value, and 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.seq)
	case KindObject:
		return len(v.obj)
	default:
		return 0
	}
}

// Interface converts the value into the generic shapes codecs consume:
// nil, bool, float64, string, []any, and map[string]any, recursively. The
// result contains no Value or model wrapper types.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindArray:
		out := make([]any, len(v.seq))
		for i, item := range v.seq {
			out[i] = item.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.obj))
		for name, member := range v.obj {
			out[name] = member.Interface()
		}
		return out
	default:
		return nil
	}
}

// ValueOf normalizes a generic decoded value into a Value. It accepts the
// output shapes of the supported codecs: nil, booleans, every integer and
// float width, json.Number, strings, []byte, []any, map[string]any, and
// map[any]any with string keys. Named map and slice types with those
// shapes (bson.M, bson.A, yaml aliases) are handled through a reflection
// fallback. Anything else fails with ErrUnsupportedValue.
func ValueOf(v any) (Value, error) {
	switch tv := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return tv, nil
	case bool:
		return Bool(tv), nil
	case float64:
		return Number(tv), nil
	case float32:
		return Number(float64(tv)), nil
	case int:
		return Number(float64(tv)), nil
	case int8:
		return Number(float64(tv)), nil
	case int16:
		return Number(float64(tv)), nil
	case int32:
		return Number(float64(tv)), nil
	case int64:
		return Number(float64(tv)), nil
	case uint:
		return Number(float64(tv)), nil
	case uint8:
		return Number(float64(tv)), nil
	case uint16:
		return Number(float64(tv)), nil
	case uint32:
		return Number(float64(tv)), nil
	case uint64:
		return Number(float64(tv)), nil
	case json.Number:
		n, err := strconv.ParseFloat(tv.String(), 64)
		if err != nil {
			return Null(), fmt.Errorf("%w: malformed number %q", ErrUnsupportedValue, tv.String())
		}
		return Number(n), nil
	case string:
		return String(tv), nil
	case []byte:
		return String(string(tv)), nil
	case []any:
		return arrayOf(tv)
	case map[string]any:
		return objectOf(tv)
	case map[any]any:
		fields := make(map[string]Value, len(tv))
		for key, member := range tv {
			name, ok := key.(string)
			if !ok {
				return Null(), fmt.Errorf("%w: non-string object key %v", ErrUnsupportedValue, key)
			}
			mv, err := ValueOf(member)
			if err != nil {
				return Null(), err
			}
			fields[name] = mv
		}
		return Object(fields), nil
	}

	return reflectValueOf(v)
}

func arrayOf(items []any) (Value, error) {
	out := make([]Value, len(items))
	for i, item := range items {
		iv, err := ValueOf(item)
		if err != nil {
			return Null(), err
		}
		out[i] = iv
	}
	return Array(out...), nil
}

func objectOf(fields map[string]any) (Value, error) {
	out := make(map[string]Value, len(fields))
	for name, member := range fields {
		mv, err := ValueOf(member)
		if err != nil {
			return Null(), err
		}
		out[name] = mv
	}
	return Object(out), nil
}

// reflectValueOf handles named map and slice types (bson.M, bson.A, and
// friends) that the type switch in ValueOf cannot match.
func reflectValueOf(v any) (Value, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Null(), fmt.Errorf("%w: map with %s keys", ErrUnsupportedValue, rv.Type().Key())
		}
		fields := make(map[string]Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			mv, err := ValueOf(iter.Value().Interface())
			if err != nil {
				return Null(), err
			}
			fields[iter.Key().String()] = mv
		}
		return Object(fields), nil
	case reflect.Slice, reflect.Array:
		out := make([]Value, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			iv, err := ValueOf(rv.Index(i).Interface())
			if err != nil {
				return Null(), err
			}
			out[i] = iv
		}
		return Array(out...), nil
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return ValueOf(rv.Elem().Interface())
	default:
		return Null(), fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}
