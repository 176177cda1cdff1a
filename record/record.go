// Package record defines the flat reference record produced and consumed
// by the tagged-citation formats.
package record

import "slices"

// Record is one bibliographic reference: an ordered mapping from field
// name to a Value. Field order is the order in which fields were first
// set, which for parsed records is the order they appeared in the input.
// A field name appears at most once per record.
type Record struct {
	names   []string
	values  map[string]Value
	unknown *UnknownFields
}

// New creates an empty record.
func New() *Record {
	return &Record{values: make(map[string]Value)}
}

// Len returns the number of named fields, not counting the unknown-tag
// container.
func (r *Record) Len() int {
	return len(r.names)
}

// Names returns the field names in insertion order.
func (r *Record) Names() []string {
	return slices.Clone(r.names)
}

// Has reports whether the record has a field with the given name.
func (r *Record) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

// Get returns the value for a field name.
func (r *Record) Get(name string) (Value, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Set stores a value under a field name. Setting an existing field
// replaces its value but keeps its position.
func (r *Record) Set(name string, v Value) {
	if _, ok := r.values[name]; !ok {
		r.names = append(r.names, name)
	}
	r.values[name] = v
}

// Delete removes a field from the record.
func (r *Record) Delete(name string) {
	if _, ok := r.values[name]; !ok {
		return
	}
	delete(r.values, name)
	r.names = slices.DeleteFunc(r.names, func(n string) bool { return n == name })
}

// Unknown returns the unknown-tag container, or nil if the record has
// no unmapped tags.
func (r *Record) Unknown() *UnknownFields {
	return r.unknown
}

// EnsureUnknown returns the unknown-tag container, creating it on first
// use.
func (r *Record) EnsureUnknown() *UnknownFields {
	if r.unknown == nil {
		r.unknown = newUnknownFields()
	}
	return r.unknown
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	c := New()
	for _, name := range r.names {
		c.Set(name, r.values[name].clone())
	}
	if r.unknown != nil {
		c.unknown = r.unknown.clone()
	}
	return c
}

// Equal reports whether two records have the same fields, in the same
// order, with equal values, including the unknown-tag container.
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	if !slices.Equal(r.names, other.names) {
		return false
	}
	for _, name := range r.names {
		if !r.values[name].Equal(other.values[name]) {
			return false
		}
	}
	if (r.unknown == nil) != (other.unknown == nil) {
		return false
	}
	if r.unknown != nil && !r.unknown.Equal(other.unknown) {
		return false
	}
	return true
}

// UnknownFields preserves tags absent from the active tag map: an
// ordered mapping from raw tag code to its accumulated values.
type UnknownFields struct {
	tags   []string
	values map[string][]string
}

func newUnknownFields() *UnknownFields {
	return &UnknownFields{values: make(map[string][]string)}
}

// Add appends a value under a raw tag code.
func (u *UnknownFields) Add(tag, value string) {
	if _, ok := u.values[tag]; !ok {
		u.tags = append(u.tags, tag)
	}
	u.values[tag] = append(u.values[tag], value)
}

// Tags returns the tag codes in insertion order.
func (u *UnknownFields) Tags() []string {
	return slices.Clone(u.tags)
}

// Values returns the accumulated values for a tag code.
func (u *UnknownFields) Values(tag string) []string {
	return slices.Clone(u.values[tag])
}

// Len returns the number of distinct unknown tag codes.
func (u *UnknownFields) Len() int {
	return len(u.tags)
}

// Equal reports whether two containers hold the same tags, in the same
// order, with the same values.
func (u *UnknownFields) Equal(other *UnknownFields) bool {
	if !slices.Equal(u.tags, other.tags) {
		return false
	}
	for _, tag := range u.tags {
		if !slices.Equal(u.values[tag], other.values[tag]) {
			return false
		}
	}
	return true
}

func (u *UnknownFields) clone() *UnknownFields {
	c := newUnknownFields()
	for _, tag := range u.tags {
		for _, v := range u.values[tag] {
			c.Add(tag, v)
		}
	}
	return c
}
