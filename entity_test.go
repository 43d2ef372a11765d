package jsonmodels_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cheezypoofs/jsonmodels"
)

func mustValueOf(t *testing.T, v any) jsonmodels.Value {
	t.Helper()
	entity, err := jsonmodels.ValueOf(v)
	if err != nil {
		t.Fatalf("ValueOf() error: %v", err)
	}
	return entity
}

func TestToEntity_OmitsUnsetFields(t *testing.T) {
	c := &Child{}
	c.SetField1(jsonmodels.Number(2))

	entity, err := jsonmodels.ToEntity(c)
	if err != nil {
		t.Fatalf("ToEntity() error: %v", err)
	}

	want := map[string]any{"Field1": float64(2)}
	if diff := cmp.Diff(want, entity.Interface()); diff != "" {
		t.Errorf("entity mismatch (-want +got):\n%s", diff)
	}

	c.SetField2(jsonmodels.String("a string!"))
	entity, err = jsonmodels.ToEntity(c)
	if err != nil {
		t.Fatalf("ToEntity() error: %v", err)
	}
	if _, ok := entity.Field("Field2"); !ok {
		t.Error("set field missing from entity output")
	}
}

func TestFromEntity_ScalarRoundTrip(t *testing.T) {
	input := map[string]any{
		"Field1": float64(3),
		"Field2": "is set",
	}

	c, err := jsonmodels.FromEntity[Child](mustValueOf(t, input))
	if err != nil {
		t.Fatalf("FromEntity() error: %v", err)
	}
	if got := c.Field1().AsNumber(); got != 3 {
		t.Errorf("Field1 = %v, want 3", got)
	}
	if got := c.Field2().AsString(); got != "is set" {
		t.Errorf("Field2 = %q, want %q", got, "is set")
	}

	entity, err := jsonmodels.ToEntity(c)
	if err != nil {
		t.Fatalf("ToEntity() error: %v", err)
	}
	if diff := cmp.Diff(input, entity.Interface()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFromEntity_PartialInputLeavesFieldsUnset(t *testing.T) {
	c, err := jsonmodels.FromEntity[Child](mustValueOf(t, map[string]any{"Field1": float64(2)}))
	if err != nil {
		t.Fatalf("FromEntity() error: %v", err)
	}

	if got := c.Field1().AsNumber(); got != 2 {
		t.Errorf("Field1 = %v, want 2", got)
	}
	if got := c.Field2(); !got.IsNull() {
		t.Errorf("Field2 = %v, want null", got.Kind())
	}

	entity, err := jsonmodels.ToEntity(c)
	if err != nil {
		t.Fatalf("ToEntity() error: %v", err)
	}
	if _, ok := entity.Field("Field2"); ok {
		t.Error("field absent from input appeared in output")
	}
}

func TestFromEntity_IgnoresUnknownKeys(t *testing.T) {
	input := map[string]any{
		"Field3":  "unknown",
		"Unknown": float64(99),
	}

	c, err := jsonmodels.FromEntity[Child](mustValueOf(t, input))
	if err != nil {
		t.Fatalf("FromEntity() error: %v", err)
	}
	if !c.Field1().IsNull() || !c.Field2().IsNull() {
		t.Error("unknown keys populated declared fields")
	}

	entity, err := jsonmodels.ToEntity(c)
	if err != nil {
		t.Fatalf("ToEntity() error: %v", err)
	}
	if entity.Len() != 0 {
		t.Errorf("entity has %d fields, want 0 (no trace of unknown keys)", entity.Len())
	}
}

func TestFromEntity_NestedModel(t *testing.T) {
	input := map[string]any{
		"Field1": float64(2),
		"Field2": float64(5),
		"Field3": map[string]any{
			"Field1": "field one",
			"Field2": "field two",
		},
	}

	p, err := jsonmodels.FromEntity[Parent](mustValueOf(t, input))
	if err != nil {
		t.Fatalf("FromEntity() error: %v", err)
	}
	if got := p.Field1().AsNumber(); got != 2 {
		t.Errorf("Field1 = %v, want 2", got)
	}
	if got := p.Field2().AsNumber(); got != 5 {
		t.Errorf("Field2 = %v, want 5", got)
	}
	if p.Field3() == nil {
		t.Fatal("Field3 = nil, want nested instance")
	}
	if got := p.Field3().Field2().AsString(); got != "field two" {
		t.Errorf("Field3.Field2 = %q, want %q", got, "field two")
	}

	entity, err := jsonmodels.ToEntity(p)
	if err != nil {
		t.Fatalf("ToEntity() error: %v", err)
	}
	if diff := cmp.Diff(input, entity.Interface()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFromEntity_ModelList(t *testing.T) {
	input := map[string]any{
		"Field1": []any{
			map[string]any{"Field1": float64(1)},
			map[string]any{"Field2": float64(2)},
		},
	}

	r, err := jsonmodels.FromEntity[Roster](mustValueOf(t, input))
	if err != nil {
		t.Fatalf("FromEntity() error: %v", err)
	}

	list := r.Field1()
	if len(list) != 2 {
		t.Fatalf("list length = %d, want 2", len(list))
	}
	if got := list[0].Field1().AsNumber(); got != 1 {
		t.Errorf("element 0 Field1 = %v, want 1", got)
	}
	if !list[0].Field2().IsNull() {
		t.Error("element 0 Field2 set, want unset")
	}
	if got := list[1].Field2().AsNumber(); got != 2 {
		t.Errorf("element 1 Field2 = %v, want 2", got)
	}
	if !list[1].Field1().IsNull() {
		t.Error("element 1 Field1 set, want unset")
	}

	// Re-serializing drops each element's unset field.
	entity, err := jsonmodels.ToEntity(r)
	if err != nil {
		t.Fatalf("ToEntity() error: %v", err)
	}
	if diff := cmp.Diff(input, entity.Interface()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestIndependentNameMapping(t *testing.T) {
	r, err := jsonmodels.FromEntity[Renamed](mustValueOf(t, map[string]any{"remote_name": "hello"}))
	if err != nil {
		t.Fatalf("FromEntity() error: %v", err)
	}
	if got := r.Local().AsString(); got != "hello" {
		t.Errorf("Local = %q, want %q", got, "hello")
	}

	entity, err := jsonmodels.ToEntity(r)
	if err != nil {
		t.Fatalf("ToEntity() error: %v", err)
	}
	if _, ok := entity.Field("Local"); ok {
		t.Error("entity contains the internal key, want external key only")
	}
	if v, ok := entity.Field("remote_name"); !ok || v.AsString() != "hello" {
		t.Errorf("entity[remote_name] = %v, %v; want hello, true", v, ok)
	}
}

func TestFromEntity_NonObjectRoot(t *testing.T) {
	tests := []struct {
		name string
		root jsonmodels.Value
	}{
		{name: "null", root: jsonmodels.Null()},
		{name: "number", root: jsonmodels.Number(1)},
		{name: "string", root: jsonmodels.String("nope")},
		{name: "array", root: jsonmodels.Array()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := jsonmodels.FromEntity[Child](tt.root)
			if !errors.Is(err, jsonmodels.ErrInvalidInput) {
				t.Errorf("error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestFromEntity_NotModel(t *testing.T) {
	type plain struct{ X int }

	_, err := jsonmodels.FromEntity[plain](jsonmodels.Object(nil))
	if !errors.Is(err, jsonmodels.ErrNotModel) {
		t.Errorf("error = %v, want ErrNotModel", err)
	}
}

func TestFromEntity_ListShapeMismatch(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]any
	}{
		{name: "scalar for list", input: map[string]any{"Field1": float64(7)}},
		{name: "object for list", input: map[string]any{"Field1": map[string]any{}}},
		{name: "scalar element", input: map[string]any{"Field1": []any{float64(7)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := jsonmodels.FromEntity[Roster](mustValueOf(t, tt.input))
			if !errors.Is(err, jsonmodels.ErrTypeMismatch) {
				t.Errorf("error = %v, want ErrTypeMismatch", err)
			}

			var ce *jsonmodels.ConversionError
			if !errors.As(err, &ce) {
				t.Fatalf("error type = %T, want *ConversionError", err)
			}
			if ce.Field != "Field1" {
				t.Errorf("error field = %q, want Field1", ce.Field)
			}
		})
	}
}

func TestFromEntity_NestedShapeMismatch(t *testing.T) {
	_, err := jsonmodels.FromEntity[Parent](mustValueOf(t, map[string]any{
		"Field3": []any{},
	}))
	if !errors.Is(err, jsonmodels.ErrTypeMismatch) {
		t.Errorf("error = %v, want ErrTypeMismatch", err)
	}
}

func TestNullNestedRoundTrip(t *testing.T) {
	p := &Parent{}
	p.SetField3(nil)

	entity, err := jsonmodels.ToEntity(p)
	if err != nil {
		t.Fatalf("ToEntity() error: %v", err)
	}
	v, ok := entity.Field("Field3")
	if !ok || !v.IsNull() {
		t.Fatalf("entity[Field3] = %v, %v; want null, true", v, ok)
	}

	back, err := jsonmodels.FromEntity[Parent](entity)
	if err != nil {
		t.Fatalf("FromEntity() error: %v", err)
	}
	if got := back.Field3(); got != nil {
		t.Errorf("Field3 = %v, want nil", got)
	}
}

func TestEmbeddedModelInheritsFields(t *testing.T) {
	input := map[string]any{
		"id":    "abc-123",
		"label": "derived",
	}

	d, err := jsonmodels.FromEntity[Derived](mustValueOf(t, input))
	if err != nil {
		t.Fatalf("FromEntity() error: %v", err)
	}
	if got := d.ID().AsString(); got != "abc-123" {
		t.Errorf("inherited ID = %q, want %q", got, "abc-123")
	}
	if got := d.Label().AsString(); got != "derived" {
		t.Errorf("Label = %q, want %q", got, "derived")
	}

	entity, err := jsonmodels.ToEntity(d)
	if err != nil {
		t.Fatalf("ToEntity() error: %v", err)
	}
	if diff := cmp.Diff(input, entity.Interface()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

// overridden exercises the EntityMarshaler/EntityUnmarshaler bypass.
type overridden struct {
	jsonmodels.Model

	raw string
}

func (o *overridden) MarshalEntity() (jsonmodels.Value, error) {
	return jsonmodels.Object(map[string]jsonmodels.Value{
		"raw": jsonmodels.String(o.raw),
	}), nil
}

func (o *overridden) UnmarshalEntity(v jsonmodels.Value) error {
	raw, _ := v.Field("raw")
	o.raw = raw.AsString()
	return nil
}

func TestEntityOverrides(t *testing.T) {
	o := &overridden{raw: "custom"}

	entity, err := jsonmodels.ToEntity(o)
	if err != nil {
		t.Fatalf("ToEntity() error: %v", err)
	}
	if v, ok := entity.Field("raw"); !ok || v.AsString() != "custom" {
		t.Errorf("entity[raw] = %v, %v; want custom, true", v, ok)
	}

	back, err := jsonmodels.FromEntity[overridden](entity)
	if err != nil {
		t.Fatalf("FromEntity() error: %v", err)
	}
	if back.raw != "custom" {
		t.Errorf("raw = %q, want %q", back.raw, "custom")
	}
}

func TestToEntity_NilInstance(t *testing.T) {
	entity, err := jsonmodels.ToEntity((*Child)(nil))
	if err != nil {
		t.Fatalf("ToEntity() error: %v", err)
	}
	if !entity.IsNull() {
		t.Errorf("entity = %v, want null", entity.Kind())
	}
}
