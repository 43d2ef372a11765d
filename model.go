package jsonmodels

// Model is the embeddable base for model types. It owns the instance's
// sparse storage mapping from internal key to current value: only fields
// that were explicitly set have an entry. Absence means "never set", which
// is distinct from a present Null entry.
//
// The zero Model is ready to use. Instances of types embedding Model are
// not safe for concurrent mutation; conversion of independent instances is.
type Model struct {
	props map[string]any
}

// properties returns the storage mapping, allocating it on first use.
// Being unexported, it also seals the Instance interface: only types
// embedding Model can satisfy it.
func (m *Model) properties() map[string]any {
	if m.props == nil {
		m.props = make(map[string]any)
	}
	return m.props
}

// Instance is satisfied by a pointer to any type that embeds Model.
type Instance interface {
	properties() map[string]any
}

// New constructs an instance of T and applies the given initializers in
// order. Initializers are expected to call the type's ordinary setters, so
// initial values take the same path as post-construction assignment:
//
//	user := jsonmodels.New(func(u *User) {
//	    u.SetName(jsonmodels.String("alice"))
//	})
func New[T any](inits ...func(*T)) *T {
	inst := new(T)
	for _, init := range inits {
		init(inst)
	}
	return inst
}
