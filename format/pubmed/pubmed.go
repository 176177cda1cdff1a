// Package pubmed provides the format plugin for PubMed nbib exports.
package pubmed

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/citekit/ris/format"
)

// Format implements the PubMed nbib format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format     = (*Format)(nil)
	_ format.Parser     = (*Format)(nil)
	_ format.Serializer = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "pubmed"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "PubMed nbib citation format"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"nbib"}
}

// CanParse returns true if the input looks like an nbib export.
func (f *Format) CanParse(peek []byte) bool {
	return bytes.Contains(peek, []byte("PMID- "))
}

// Syntax is the nbib tag-line grammar: a tag of up to four characters
// padded with spaces to width four, a hyphen, a space, then the
// content. There is no end tag; a record runs until the next PMID or
// EOF.
type Syntax struct{}

var tagRe = regexp.MustCompile(`^[A-Z][A-Z0-9]{0,3} {0,3}- `)

// StartTag returns the record start tag.
func (Syntax) StartTag() string { return "PMID" }

// EndTag returns the empty string: nbib records have no end marker.
func (Syntax) EndTag() string { return "" }

// IsTag reports whether the line is a tag line.
func (Syntax) IsTag(line string) bool { return tagRe.MatchString(line) }

// Tag returns the tag code from the four-character tag field.
func (Syntax) Tag(line string) string {
	if len(line) < 4 {
		return strings.TrimRight(line, " ")
	}
	return strings.TrimRight(line[:4], " ")
}

// Content returns the part of a tag line after the separator.
func (Syntax) Content(line string) string {
	if len(line) < 6 {
		return ""
	}
	return strings.TrimSpace(line[6:])
}

// IsHeader reports that nbib has no header noise outside records.
func (Syntax) IsHeader(line string) bool { return false }

// FormatLine renders one nbib output line, padding the tag to the
// four-character field.
func (Syntax) FormatLine(tag, value string) string {
	return fmt.Sprintf("%-4s- %s", tag, value)
}

// Counter reports that nbib output has no sequence-number lines.
func (Syntax) Counter() bool { return false }

func init() {
	format.Register(&Format{})
}
