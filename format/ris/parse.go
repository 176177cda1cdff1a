package ris

import (
	"io"

	"github.com/citekit/ris/format"
	"github.com/citekit/ris/format/tagline"
	"github.com/citekit/ris/record"
	"github.com/citekit/ris/tagmap"
)

// Parse reads RIS input and returns flat records.
func (f *Format) Parse(r io.Reader, opts *format.ParseOptions) ([]*record.Record, error) {
	return tagline.Parse(r, Syntax{}, tagmap.RIS(), opts)
}

// NewReader returns a streaming RIS parser that yields one record at a
// time.
func NewReader(r io.Reader, opts *format.ParseOptions) (*tagline.Reader, error) {
	return tagline.NewReader(r, Syntax{}, tagmap.RIS(), opts)
}
