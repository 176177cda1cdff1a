// Package format defines the interface for citation format plugins.
package format

import (
	"io"

	"github.com/citekit/ris/record"
	"github.com/citekit/ris/tagmap"
)

// Format defines the interface that all format plugins must implement.
type Format interface {
	// Name returns the format identifier (e.g. "ris", "wok", "pubmed")
	Name() string

	// Description returns a human-readable format description
	Description() string

	// Extensions returns file extensions associated with this format
	Extensions() []string

	// CanParse returns true if this format can parse the given input
	CanParse(peek []byte) bool
}

// Parser is a format that can parse input into flat records.
type Parser interface {
	Format

	// Parse reads input and returns records. A nil opts uses defaults.
	Parse(r io.Reader, opts *ParseOptions) ([]*record.Record, error)
}

// Serializer is a format that can write records to output.
type Serializer interface {
	Format

	// Serialize writes records to the output. A nil opts uses defaults.
	Serialize(w io.Writer, records []*record.Record, opts *SerializeOptions) error
}

// ParseOptions contains options for parsing.
type ParseOptions struct {
	// TagMap replaces the dialect's default tag map entirely. Use
	// tagmap.Merge to extend a default instead.
	TagMap *tagmap.TagMap

	// SkipUnknownTags drops tags absent from the tag map instead of
	// collecting them in the record's unknown-tag container.
	SkipUnknownTags bool

	// SkipMissingTags tolerates lines without a valid tag anywhere in
	// the input instead of failing.
	SkipMissingTags bool

	// EnforceListTags keeps non-list tags scalar: a repeated scalar
	// tag keeps its first value. When disabled, a repeated scalar tag
	// is promoted to a list.
	EnforceListTags bool

	// FailOnIncomplete makes input that ends inside a record a parse
	// error. By default the incomplete record is silently discarded.
	// Dialects without an end tag close the final record at EOF and
	// never consult this.
	FailOnIncomplete bool

	// SourceName is an identifier for the source (for error messages)
	SourceName string

	// MultiValueSeparator is the delimiter for multi-value cells in
	// tabular formats.
	MultiValueSeparator string
}

// SerializeOptions contains options for serialization.
type SerializeOptions struct {
	// TagMap replaces the dialect's default tag map entirely.
	TagMap *tagmap.TagMap

	// Newline is the line separator for output. Defaults to "\n".
	Newline string

	// DefaultReferenceType is emitted on the start-tag line for
	// records carrying no reference type of their own.
	DefaultReferenceType string

	// SkipUnknownTags omits the unknown-tag container from output.
	SkipUnknownTags bool

	// OnWarning receives non-fatal export warnings, such as a field
	// with no tag in the active map. When nil, warnings are logged
	// with slog.
	OnWarning func(ExportWarning)

	// Columns specifies which columns to include (for tabular formats)
	Columns []string

	// MultiValueSeparator is the delimiter for multi-value cells in
	// tabular formats.
	MultiValueSeparator string

	// IncludeHeader includes a header row (for tabular formats)
	IncludeHeader bool
}

// NewParseOptions creates ParseOptions with defaults.
func NewParseOptions() *ParseOptions {
	return &ParseOptions{
		EnforceListTags:     true,
		MultiValueSeparator: "|",
	}
}

// NewSerializeOptions creates SerializeOptions with defaults.
func NewSerializeOptions() *SerializeOptions {
	return &SerializeOptions{
		Newline:              "\n",
		DefaultReferenceType: "JOUR",
		MultiValueSeparator:  "|",
		IncludeHeader:        true,
	}
}
