package pubmed

import (
	"io"

	"github.com/citekit/ris/format"
	"github.com/citekit/ris/format/tagline"
	"github.com/citekit/ris/record"
	"github.com/citekit/ris/tagmap"
)

// Serialize writes records in nbib layout: unterminated blocks
// separated by blank lines. Records must carry a pubmed_id; there is
// no meaningful default.
func (f *Format) Serialize(w io.Writer, records []*record.Record, opts *format.SerializeOptions) error {
	if opts == nil {
		opts = format.NewSerializeOptions()
		opts.DefaultReferenceType = ""
	}
	writer, err := tagline.NewWriter(Syntax{}, tagmap.PubMed(), opts)
	if err != nil {
		return err
	}
	return writer.Write(w, records)
}
