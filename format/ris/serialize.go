package ris

import (
	"io"

	"github.com/citekit/ris/format"
	"github.com/citekit/ris/format/tagline"
	"github.com/citekit/ris/record"
	"github.com/citekit/ris/tagmap"
)

// Serialize writes records as RIS, one numbered reference block per
// record.
func (f *Format) Serialize(w io.Writer, records []*record.Record, opts *format.SerializeOptions) error {
	writer, err := tagline.NewWriter(Syntax{}, tagmap.RIS(), opts)
	if err != nil {
		return err
	}
	return writer.Write(w, records)
}
