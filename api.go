// Package jsonmodels provides a declarative mapping layer between typed
// model types and generic JSON-compatible entities.
//
// A model type embeds Model and declares its fields as package-level
// descriptors. Each descriptor binds one field to an external JSON key,
// possibly under a different name than the field's internal identity.
// Conversion is mechanical in both directions: FromEntity constructs a
// model instance from a parsed JSON object, ignoring unrecognized keys,
// and ToEntity converts an instance back into a JSON-ready object
// containing only fields that were actually set.
//
// # Declaring Models
//
// Fields are declared as descriptors and registered once, at init time:
//
//	type Address struct {
//	    jsonmodels.Model
//	}
//
//	var (
//	    addressStreet = jsonmodels.NewProperty("Street", "street")
//	    addressCity   = jsonmodels.NewProperty("City", "city")
//	)
//
//	func init() {
//	    jsonmodels.Register[Address](addressStreet, addressCity)
//	}
//
//	func (a *Address) Street() jsonmodels.Value     { return addressStreet.Get(a) }
//	func (a *Address) SetStreet(v jsonmodels.Value) { addressStreet.Set(a, v) }
//
// Nested models and lists of models use the generic descriptor variants:
//
//	type User struct {
//	    jsonmodels.Model
//	}
//
//	var (
//	    userName      = jsonmodels.NewProperty("Name", "name")
//	    userHome      = jsonmodels.NewModelProperty[Address]("Home", "home")
//	    userAddresses = jsonmodels.NewModelListProperty[Address]("Addresses", "addresses")
//	)
//
// # Presence Semantics
//
// Each instance owns a sparse storage mapping populated only for fields
// that were explicitly set. A field absent from storage is "unset" and is
// omitted from ToEntity output entirely; a field explicitly set to Null is
// present and serializes as null. Reading an unset scalar field returns
// Null rather than failing. There is no way to transition a field back to
// unset once written.
//
// # Entities and Values
//
// The core never touches JSON text. It consumes and produces Value, a
// tagged union over the six JSON-compatible shapes (null, boolean, number,
// string, array, object). Text encoding is delegated to a Codec; the json,
// yaml, msgpack, and bson subpackages provide implementations.
//
// # Serialization
//
//	ser, err := jsonmodels.Use[User](json.New())
//	data, err := ser.Marshal(ctx, user)
//	user, err := ser.Unmarshal(ctx, data)
//
// Serializers are cached per (model type, content type) and are safe for
// concurrent use.
package jsonmodels

// Codec provides content-type aware marshaling.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Override interfaces allow model types to bypass descriptor-driven
// conversion. When a type implements one of these interfaces, ToEntity and
// FromEntity call the interface method instead of iterating the type's
// registered fields. Nested conversions honor the override as well.

// EntityMarshaler bypasses descriptor-driven conversion during ToEntity.
//
// Implementations must not call ToEntity on the receiver, which would
// recurse indefinitely.
type EntityMarshaler interface {
	// MarshalEntity returns the JSON-ready representation of the receiver.
	MarshalEntity() (Value, error)
}

// EntityUnmarshaler bypasses descriptor-driven conversion during FromEntity.
//
// Implementations must not call FromEntity for the receiver's own type,
// which would recurse indefinitely.
type EntityUnmarshaler interface {
	// UnmarshalEntity populates the receiver from an entity value.
	UnmarshalEntity(v Value) error
}
