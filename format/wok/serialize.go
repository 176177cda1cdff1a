package wok

import (
	"io"

	"github.com/citekit/ris/format"
	"github.com/citekit/ris/format/tagline"
	"github.com/citekit/ris/record"
	"github.com/citekit/ris/tagmap"
)

// Serialize writes records in WOK layout: PT..ER blocks separated by
// blank lines, closed by an EF marker.
func (f *Format) Serialize(w io.Writer, records []*record.Record, opts *format.SerializeOptions) error {
	if opts == nil {
		opts = format.NewSerializeOptions()
		opts.DefaultReferenceType = "J"
	}
	newline := opts.Newline
	if newline == "" {
		newline = "\n"
	}

	writer, err := tagline.NewWriter(Syntax{}, tagmap.WOK(), opts)
	if err != nil {
		return err
	}
	if err := writer.Write(w, records); err != nil {
		return err
	}

	trailer := "EF" + newline
	if len(records) > 0 {
		trailer = newline + trailer
	}
	_, err = io.WriteString(w, trailer)
	return err
}
