package form

import (
	"maps"
	"slices"
)

// Field names a signup form input.
type Field string

const (
	FieldFirstName Field = "firstName"
	FieldLastName  Field = "lastName"
	FieldEmail     Field = "email"
	FieldPassword  Field = "password"
)

// Fields lists the form inputs in display order.
func Fields() []Field {
	return []Field{FieldFirstName, FieldLastName, FieldEmail, FieldPassword}
}

// Known reports whether f is one of the signup fields.
func (f Field) Known() bool {
	return slices.Contains(Fields(), f)
}

func (f Field) String() string {
	return string(f)
}

// Values maps field names to their current string value. A Values is treated
// as immutable once published; use With to derive an updated copy.
type Values map[Field]string

// EmptyValues returns a value set with every field present and empty.
func EmptyValues() Values {
	out := make(Values, len(Fields()))
	for _, field := range Fields() {
		out[field] = ""
	}
	return out
}

// With returns a new Values containing v's entries overlaid with name=value.
func (v Values) With(name Field, value string) Values {
	out := make(Values, len(v)+1)
	maps.Copy(out, v)
	out[name] = value
	return out
}

// Get returns the value for name, or "" when unset.
func (v Values) Get(name Field) string {
	return v[name]
}

// Clone returns a shallow copy.
func (v Values) Clone() Values {
	if v == nil {
		return nil
	}
	return maps.Clone(v)
}

// Map exposes the values keyed by plain strings, the shape renderers and
// serializers consume.
func (v Values) Map() map[string]string {
	out := make(map[string]string, len(v))
	for name, value := range v {
		out[string(name)] = value
	}
	return out
}
