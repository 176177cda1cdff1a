package csv

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/citekit/ris/format"
	"github.com/citekit/ris/record"
)

// Serialize writes records as CSV. Columns come from opts.Columns, or
// from the union of field names across all records in first-seen
// order. Multi-value fields are joined with the configured separator.
func (f *Format) Serialize(w io.Writer, records []*record.Record, opts *format.SerializeOptions) error {
	if opts == nil {
		opts = format.NewSerializeOptions()
	}

	sep := opts.MultiValueSeparator
	if sep == "" {
		sep = "|"
	}

	columns := opts.Columns
	if len(columns) == 0 {
		columns = collectColumns(records)
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	// Write header
	if opts.IncludeHeader {
		if err := writer.Write(columns); err != nil {
			return err
		}
	}

	// Write records
	for _, rec := range records {
		row := recordToRow(rec, columns, sep)
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	return writer.Error()
}

// collectColumns returns the union of field names across records in
// first-seen order.
func collectColumns(records []*record.Record) []string {
	var columns []string
	seen := make(map[string]bool)
	for _, rec := range records {
		for _, name := range rec.Names() {
			if !seen[name] {
				seen[name] = true
				columns = append(columns, name)
			}
		}
	}
	return columns
}

func recordToRow(rec *record.Record, columns []string, sep string) []string {
	row := make([]string, len(columns))
	for i, col := range columns {
		v, ok := rec.Get(col)
		if !ok {
			continue
		}
		if v.IsList() {
			row[i] = strings.Join(v.List(), sep)
		} else {
			row[i] = v.Scalar()
		}
	}
	return row
}
