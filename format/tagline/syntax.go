// Package tagline implements the shared engine behind the tagged
// citation formats: classifying lines, accumulating them into records,
// and serializing records back to tag lines. Each dialect supplies a
// Syntax describing its grammar and constants.
package tagline

// Syntax describes one dialect's tag-line grammar: how lines are
// classified, how the tag and content parts are extracted, and how an
// output line is rendered.
type Syntax interface {
	// StartTag is the tag that opens a record.
	StartTag() string

	// EndTag is the tag that closes a record, or the empty string for
	// dialects whose records close on the next start tag or EOF.
	EndTag() string

	// IsTag reports whether a line is a tag line. Lines that are not
	// tag lines are continuations of the previous tag.
	IsTag(line string) bool

	// Tag extracts the tag code from a tag line.
	Tag(line string) string

	// Content extracts the content part of a tag line.
	Content(line string) string

	// IsHeader reports whether a line is skippable header noise. The
	// parser only consults it for lines outside a record.
	IsHeader(line string) bool

	// FormatLine renders one output line for a tag and value.
	FormatLine(tag, value string) string

	// Counter reports whether the writer numbers each record with a
	// sequence line ("1.", "2.", ...) ahead of its start tag.
	Counter() bool
}
