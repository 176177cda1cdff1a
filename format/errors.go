package format

import "fmt"

// ParseError reports malformed input: an unterminated record, a tag
// line outside a record, or a continuation line with no preceding tag.
// It is fatal to the parse call; records yielded before the error
// remain valid.
type ParseError struct {
	// Source names the input, when known.
	Source string

	// Line is the 1-based line number of the offending line.
	Line int

	// Text is the offending line.
	Text string

	// Msg describes what was expected.
	Msg string
}

func (e *ParseError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s: %s in line %d: %q", e.Source, e.Msg, e.Line, e.Text)
	}
	return fmt.Sprintf("%s in line %d: %q", e.Msg, e.Line, e.Text)
}

// ExportWarning is a non-fatal notification emitted during
// serialization when a record field cannot be written. The field is
// dropped from output and the call proceeds.
type ExportWarning struct {
	// Record is the 0-based index of the record being written.
	Record int

	// Field is the field name that could not be exported.
	Field string

	// Reason describes why the field was dropped.
	Reason string
}

func (w ExportWarning) String() string {
	return fmt.Sprintf("record %d: field %q not exported: %s", w.Record, w.Field, w.Reason)
}
