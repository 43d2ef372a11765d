package jsonmodels_test

import (
	"github.com/cheezypoofs/jsonmodels"
)

// Child is a leaf model with two scalar fields.
type Child struct {
	jsonmodels.Model
}

var (
	childField1 = jsonmodels.NewProperty("Field1", "")
	childField2 = jsonmodels.NewProperty("Field2", "")
)

func (c *Child) Field1() jsonmodels.Value     { return childField1.Get(c) }
func (c *Child) SetField1(v jsonmodels.Value) { childField1.Set(c, v) }
func (c *Child) Field2() jsonmodels.Value     { return childField2.Get(c) }
func (c *Child) SetField2(v jsonmodels.Value) { childField2.Set(c, v) }

// Parent nests a single Child under Field3.
type Parent struct {
	jsonmodels.Model
}

var (
	parentField1 = jsonmodels.NewProperty("Field1", "")
	parentField2 = jsonmodels.NewProperty("Field2", "")
	parentField3 = jsonmodels.NewModelProperty[Child]("Field3", "")
)

func (p *Parent) Field1() jsonmodels.Value     { return parentField1.Get(p) }
func (p *Parent) SetField1(v jsonmodels.Value) { parentField1.Set(p, v) }
func (p *Parent) Field2() jsonmodels.Value     { return parentField2.Get(p) }
func (p *Parent) SetField2(v jsonmodels.Value) { parentField2.Set(p, v) }
func (p *Parent) Field3() *Child               { return parentField3.Get(p) }
func (p *Parent) SetField3(v *Child)           { parentField3.Set(p, v) }

// Roster holds an ordered list of Child models under Field1.
type Roster struct {
	jsonmodels.Model
}

var rosterField1 = jsonmodels.NewModelListProperty[Child]("Field1", "")

func (r *Roster) Field1() []*Child     { return rosterField1.Get(r) }
func (r *Roster) SetField1(v []*Child) { rosterField1.Set(r, v) }

// Renamed binds its only field to an external key that differs from the
// field's internal identity.
type Renamed struct {
	jsonmodels.Model
}

var renamedLocal = jsonmodels.NewProperty("Local", "remote_name")

func (r *Renamed) Local() jsonmodels.Value     { return renamedLocal.Get(r) }
func (r *Renamed) SetLocal(v jsonmodels.Value) { renamedLocal.Set(r, v) }

// Base and Derived exercise field inheritance through embedding.
type Base struct {
	jsonmodels.Model
}

var baseID = jsonmodels.NewProperty("ID", "id")

type Derived struct {
	Base
}

var derivedLabel = jsonmodels.NewProperty("Label", "label")

func (d *Derived) ID() jsonmodels.Value        { return baseID.Get(d) }
func (d *Derived) SetID(v jsonmodels.Value)    { baseID.Set(d, v) }
func (d *Derived) Label() jsonmodels.Value     { return derivedLabel.Get(d) }
func (d *Derived) SetLabel(v jsonmodels.Value) { derivedLabel.Set(d, v) }

func init() {
	jsonmodels.Register[Child](childField1, childField2)
	jsonmodels.Register[Parent](parentField1, parentField2, parentField3)
	jsonmodels.Register[Roster](rosterField1)
	jsonmodels.Register[Renamed](renamedLocal)
	jsonmodels.Register[Base](baseID)
	jsonmodels.Register[Derived](derivedLabel)
}
