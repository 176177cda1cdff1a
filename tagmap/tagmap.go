// Package tagmap provides the tag-to-field configuration for the tagged
// citation formats: the default RIS, Web of Science, and PubMed maps,
// list-tag sets, per-tag delimiter rules, and loading of custom maps
// from YAML.
package tagmap

import (
	"fmt"
	"maps"
	"slices"
)

// unknownKey is the field name used for the unknown-tag container when
// a map does not declare one under the reserved UK tag.
const unknownKey = "unknown_tag"

// TagMap maps short tag codes to semantic field names and carries the
// per-tag accumulation rules. A TagMap is treated as read-only once
// handed to a parser or writer; use Clone before mutating a default.
type TagMap struct {
	// Name identifies the map (e.g. "ris", "wok").
	Name string `yaml:"name,omitempty"`

	// Description is human-readable documentation.
	Description string `yaml:"description,omitempty"`

	// Fields maps tag codes to field names. The reserved UK tag names
	// the unknown-tag container field.
	Fields map[string]string `yaml:"fields"`

	// ListTags are tags whose field is always an ordered list, even
	// when the tag occurs once.
	ListTags []string `yaml:"list_tags,omitempty"`

	// Delimiters maps tags to a literal separator. Content of such a
	// tag is split on the separator when parsing and joined with it
	// when writing, independent of list-tag membership.
	Delimiters map[string]string `yaml:"delimiters,omitempty"`

	// Ignore lists tags that are skipped silently on both parse and
	// write.
	Ignore []string `yaml:"ignore,omitempty"`

	// URLFields are field names whose entries may carry several
	// addresses on one physical line separated by semicolons. They are
	// re-split when a record is finalized.
	URLFields []string `yaml:"url_fields,omitempty"`
}

// ConfigError reports an invalid tag map configuration. It is returned
// at construction or first use, never mid-parse.
type ConfigError struct {
	TagMap string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.TagMap == "" {
		return "tag map: " + e.Reason
	}
	return fmt.Sprintf("tag map %q: %s", e.TagMap, e.Reason)
}

// Validate checks that the map is usable for parsing.
func (m *TagMap) Validate() error {
	if m == nil {
		return &ConfigError{Reason: "nil tag map"}
	}
	if len(m.Fields) == 0 {
		return &ConfigError{TagMap: m.Name, Reason: "no tag-to-field mapping configured"}
	}
	return nil
}

// FieldFor returns the field name for a tag code.
func (m *TagMap) FieldFor(tag string) (string, bool) {
	name, ok := m.Fields[tag]
	return name, ok
}

// UnknownKey returns the field name reserved for the unknown-tag
// container.
func (m *TagMap) UnknownKey() string {
	if name, ok := m.Fields["UK"]; ok {
		return name
	}
	return unknownKey
}

// IsListTag reports whether a tag accumulates into a list.
func (m *TagMap) IsListTag(tag string) bool {
	return slices.Contains(m.ListTags, tag)
}

// IsIgnored reports whether a tag is skipped silently.
func (m *TagMap) IsIgnored(tag string) bool {
	return slices.Contains(m.Ignore, tag)
}

// Delimiter returns the literal separator configured for a tag.
func (m *TagMap) Delimiter(tag string) (string, bool) {
	if m.Delimiters == nil {
		return "", false
	}
	d, ok := m.Delimiters[tag]
	return d, ok
}

// IsURLField reports whether a field is re-split on semicolons at
// record finalization.
func (m *TagMap) IsURLField(name string) bool {
	return slices.Contains(m.URLFields, name)
}

// Invert returns the field-name-to-tag mapping used by writers. Two
// tags mapping to the same field name make the inversion ambiguous and
// return a ConfigError rather than silently picking one.
func (m *TagMap) Invert() (map[string]string, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	inv := make(map[string]string, len(m.Fields))
	tags := make([]string, 0, len(m.Fields))
	for tag := range m.Fields {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	for _, tag := range tags {
		name := m.Fields[tag]
		if prev, ok := inv[name]; ok {
			return nil, &ConfigError{
				TagMap: m.Name,
				Reason: fmt.Sprintf("cannot invert mapping: tags %s and %s both map to field %q", prev, tag, name),
			}
		}
		inv[name] = tag
	}
	return inv, nil
}

// Clone returns a deep copy of the map.
func (m *TagMap) Clone() *TagMap {
	return &TagMap{
		Name:        m.Name,
		Description: m.Description,
		Fields:      maps.Clone(m.Fields),
		ListTags:    slices.Clone(m.ListTags),
		Delimiters:  maps.Clone(m.Delimiters),
		Ignore:      slices.Clone(m.Ignore),
		URLFields:   slices.Clone(m.URLFields),
	}
}

// Merge overlays a custom map on a base map and returns the result.
// Custom fields, delimiters, and sets override or extend the base;
// neither input is modified. Constructing parse or serialize options
// with a map replaces the dialect default entirely; Merge is for
// callers who want the default plus a handful of changes.
func Merge(base, custom *TagMap) *TagMap {
	merged := base.Clone()
	if custom == nil {
		return merged
	}
	if custom.Name != "" {
		merged.Name = custom.Name
	}
	if custom.Description != "" {
		merged.Description = custom.Description
	}
	if merged.Fields == nil {
		merged.Fields = make(map[string]string)
	}
	maps.Copy(merged.Fields, custom.Fields)
	for _, tag := range custom.ListTags {
		if !slices.Contains(merged.ListTags, tag) {
			merged.ListTags = append(merged.ListTags, tag)
		}
	}
	if len(custom.Delimiters) > 0 {
		if merged.Delimiters == nil {
			merged.Delimiters = make(map[string]string)
		}
		maps.Copy(merged.Delimiters, custom.Delimiters)
	}
	for _, tag := range custom.Ignore {
		if !slices.Contains(merged.Ignore, tag) {
			merged.Ignore = append(merged.Ignore, tag)
		}
	}
	for _, name := range custom.URLFields {
		if !slices.Contains(merged.URLFields, name) {
			merged.URLFields = append(merged.URLFields, name)
		}
	}
	return merged
}
