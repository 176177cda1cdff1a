// Package ris provides the format plugin for the base RIS dialect.
package ris

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/citekit/ris/format"
)

// Format implements the base RIS format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format     = (*Format)(nil)
	_ format.Parser     = (*Format)(nil)
	_ format.Serializer = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "ris"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "RIS bibliographic reference format"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"ris"}
}

// CanParse returns true if the input looks like RIS.
func (f *Format) CanParse(peek []byte) bool {
	return bytes.Contains(peek, []byte("TY  - "))
}

// Syntax is the RIS tag-line grammar: a two-character tag, two spaces,
// a hyphen, a space, then the content. Records open with TY and close
// with ER. Bare sequence-number lines ("1.") between records are
// header noise.
type Syntax struct{}

var (
	tagRe     = regexp.MustCompile(`^[A-Z][A-Z0-9]  - |^ER  -\s*$`)
	counterRe = regexp.MustCompile(`^[0-9]+\.`)
)

// StartTag returns the record start tag.
func (Syntax) StartTag() string { return "TY" }

// EndTag returns the record end tag.
func (Syntax) EndTag() string { return "ER" }

// IsTag reports whether the line is a tag line.
func (Syntax) IsTag(line string) bool { return tagRe.MatchString(line) }

// Tag returns the first two characters of a tag line.
func (Syntax) Tag(line string) string { return line[:2] }

// Content returns the part of a tag line after the separator.
func (Syntax) Content(line string) string {
	if len(line) < 6 {
		return ""
	}
	return strings.TrimSpace(line[6:])
}

// IsHeader reports whether a line outside a record is a skippable
// sequence-number line.
func (Syntax) IsHeader(line string) bool { return counterRe.MatchString(line) }

// FormatLine renders one RIS output line.
func (Syntax) FormatLine(tag, value string) string { return tag + "  - " + value }

// Counter reports that RIS output numbers each record.
func (Syntax) Counter() bool { return true }

func init() {
	format.Register(&Format{})
}
