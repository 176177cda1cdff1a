// Package csv provides a serializer-only format plugin for exporting
// flat records as CSV.
package csv

import "github.com/citekit/ris/format"

// Format implements the CSV export format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format     = (*Format)(nil)
	_ format.Serializer = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "csv"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "CSV export of flat citation records"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"csv"}
}

// CanParse returns false; CSV is export-only.
func (f *Format) CanParse(peek []byte) bool {
	return false
}

func init() {
	format.Register(&Format{})
}
