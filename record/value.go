package record

import "slices"

// Value is a field value: either a single string or an ordered list of
// strings. Which shape a field takes depends on whether its tag is a
// list tag, or on scalar-to-list promotion when list enforcement is
// relaxed.
type Value struct {
	scalar string
	list   []string
	isList bool
}

// StringValue returns a scalar value.
func StringValue(s string) Value {
	return Value{scalar: s}
}

// ListValue returns a list value.
func ListValue(elems ...string) Value {
	return Value{list: slices.Clone(elems), isList: true}
}

// IsList reports whether the value is a list.
func (v Value) IsList() bool {
	return v.isList
}

// Scalar returns the scalar content. For list values it returns the
// empty string.
func (v Value) Scalar() string {
	if v.isList {
		return ""
	}
	return v.scalar
}

// List returns the list content. For scalar values it returns nil.
func (v Value) List() []string {
	if !v.isList {
		return nil
	}
	return slices.Clone(v.list)
}

// Strings returns the value as a slice regardless of shape: a list's
// elements, or a one-element slice holding the scalar.
func (v Value) Strings() []string {
	if v.isList {
		return slices.Clone(v.list)
	}
	return []string{v.scalar}
}

// Append returns the value with one more element, promoting a scalar
// to a two-element list.
func (v Value) Append(s string) Value {
	if v.isList {
		return Value{list: append(slices.Clone(v.list), s), isList: true}
	}
	return Value{list: []string{v.scalar, s}, isList: true}
}

// Extend returns the value with the given elements appended, promoting
// a scalar to a list.
func (v Value) Extend(elems []string) Value {
	out := v
	for _, e := range elems {
		out = out.Append(e)
	}
	return out
}

// Equal reports whether two values have the same shape and content.
func (v Value) Equal(other Value) bool {
	if v.isList != other.isList {
		return false
	}
	if v.isList {
		return slices.Equal(v.list, other.list)
	}
	return v.scalar == other.scalar
}

func (v Value) clone() Value {
	if v.isList {
		return Value{list: slices.Clone(v.list), isList: true}
	}
	return v
}
