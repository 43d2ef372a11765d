package jsonmodels

import (
	"fmt"
	"reflect"
	"sync"
)

// schema is the resolved field set of a model type: its own declarations
// plus those inherited from embedded model types, deduplicated.
type schema struct {
	typeName string
	fields   []Field
}

var (
	schemaMu      sync.RWMutex
	registrations = make(map[reflect.Type][]Field)
	schemas       = make(map[reflect.Type]*schema)
)

var modelType = reflect.TypeFor[Model]()

// Register declares the ordered field set of model type T. It is meant to
// be called from an init function, once per type; calling it again appends
// further fields. Register panics if *T does not embed Model, since that
// is a programming error detectable at registration time.
//
// When two registered fields share an internal or external key, the
// last-registered field wins and earlier ones are dropped from the
// resolved set. Resolution order is explicit registration order, never
// map iteration order.
func Register[T any](fields ...Field) {
	t := reflect.TypeFor[T]()
	if _, ok := any(new(T)).(Instance); !ok {
		panic(fmt.Sprintf("jsonmodels: Register[%s]: type does not embed jsonmodels.Model", t.Name()))
	}

	schemaMu.Lock()
	defer schemaMu.Unlock()
	registrations[t] = append(registrations[t], fields...)
	// Any resolved schema may inherit from T through embedding.
	schemas = make(map[reflect.Type]*schema)
}

// schemaFor returns the resolved schema for t, building and caching it on
// first use.
func schemaFor(t reflect.Type) *schema {
	schemaMu.RLock()
	if s, ok := schemas[t]; ok {
		schemaMu.RUnlock()
		return s
	}
	schemaMu.RUnlock()

	schemaMu.Lock()
	defer schemaMu.Unlock()

	// Double-check pattern
	if s, ok := schemas[t]; ok {
		return s
	}

	s := &schema{
		typeName: t.Name(),
		fields:   resolveFields(collectFields(t)),
	}
	schemas[t] = s
	return s
}

// collectFields walks the embedding hierarchy depth-first, ancestors
// before the type's own declarations, so that a type's own fields win on
// duplicate keys. Caller holds schemaMu.
func collectFields(t reflect.Type) []Field {
	var out []Field
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if !sf.Anonymous {
				continue
			}
			et := sf.Type
			if et.Kind() == reflect.Ptr {
				et = et.Elem()
			}
			if et == modelType || et.Kind() != reflect.Struct {
				continue
			}
			out = append(out, collectFields(et)...)
		}
	}
	return append(out, registrations[t]...)
}

// resolveFields applies last-wins deduplication over both internal and
// external keys while preserving the order of the surviving fields.
func resolveFields(fields []Field) []Field {
	lastByName := make(map[string]int, len(fields))
	lastByJSON := make(map[string]int, len(fields))
	for i, f := range fields {
		lastByName[f.Name()] = i
		lastByJSON[f.JSONName()] = i
	}

	out := make([]Field, 0, len(fields))
	for i, f := range fields {
		if lastByName[f.Name()] != i || lastByJSON[f.JSONName()] != i {
			continue
		}
		out = append(out, f)
	}
	return out
}
