package pubmed

import (
	"io"

	"github.com/citekit/ris/format"
	"github.com/citekit/ris/format/tagline"
	"github.com/citekit/ris/record"
	"github.com/citekit/ris/tagmap"
)

// Parse reads nbib input and returns flat records. Record boundaries
// are inferred from PMID lines; the final record closes at EOF.
func (f *Format) Parse(r io.Reader, opts *format.ParseOptions) ([]*record.Record, error) {
	return tagline.Parse(r, Syntax{}, tagmap.PubMed(), opts)
}

// NewReader returns a streaming nbib parser that yields one record at
// a time.
func NewReader(r io.Reader, opts *format.ParseOptions) (*tagline.Reader, error) {
	return tagline.NewReader(r, Syntax{}, tagmap.PubMed(), opts)
}
