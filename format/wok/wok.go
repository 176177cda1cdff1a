// Package wok provides the format plugin for Web of Science (WOK)
// exports.
package wok

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/citekit/ris/format"
)

// Format implements the WOK format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format     = (*Format)(nil)
	_ format.Parser     = (*Format)(nil)
	_ format.Serializer = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "wok"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "Web of Science export format"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"ciw", "wok"}
}

// CanParse returns true if the input looks like a WOK export.
func (f *Format) CanParse(peek []byte) bool {
	if bytes.HasPrefix(peek, []byte("FN ")) || bytes.HasPrefix(peek, []byte("PT ")) {
		return true
	}
	return bytes.Contains(peek, []byte("\nPT "))
}

// Syntax is the WOK tag-line grammar: a two-character tag, a single
// space, then the content. Records open with PT and close with a bare
// ER; the file ends with EF. Any non-tag line outside a record is
// header noise.
type Syntax struct{}

var tagRe = regexp.MustCompile(`^[A-Z][A-Z0-9] |^E[RF]\s*$`)

// StartTag returns the record start tag.
func (Syntax) StartTag() string { return "PT" }

// EndTag returns the record end tag.
func (Syntax) EndTag() string { return "ER" }

// IsTag reports whether the line is a tag line.
func (Syntax) IsTag(line string) bool { return tagRe.MatchString(line) }

// Tag returns the first two characters of a tag line.
func (Syntax) Tag(line string) string { return line[:2] }

// Content returns the part of a tag line after the tag.
func (Syntax) Content(line string) string {
	if len(line) < 3 {
		return ""
	}
	return strings.TrimSpace(line[2:])
}

// IsHeader treats every non-tag line outside a record as skippable.
func (Syntax) IsHeader(line string) bool { return true }

// FormatLine renders one WOK output line. Marker tags with no value
// (ER, EF) are written bare.
func (Syntax) FormatLine(tag, value string) string {
	if value == "" {
		return tag
	}
	return tag + " " + value
}

// Counter reports that WOK output has no sequence-number lines.
func (Syntax) Counter() bool { return false }

func init() {
	format.Register(&Format{})
}
