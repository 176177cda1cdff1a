package pubmed

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/citekit/ris/format"
	"github.com/citekit/ris/record"
	"github.com/citekit/ris/tagmap"
)

const sampleNbib = `PMID- 12345678
OWN - NLM
STAT- MEDLINE
TI  - A title that wraps onto
      the following line.
AB  - Abstract text.
FAU - Doe, John
AU  - Doe J
FAU - Roe, Jane
AU  - Roe J
MH  - Humans
MH  - Mice
SO  - J Things. 2015;9(3):100-110.

PMID- 87654321
TI  - Second article.
AU  - Smith A
`

func TestParseSample(t *testing.T) {
	f := &Format{}
	records, err := f.Parse(strings.NewReader(sampleNbib), nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	rec := records[0]
	if v, _ := rec.Get("pubmed_id"); v.Scalar() != "12345678" {
		t.Errorf("pubmed_id = %q", v.Scalar())
	}
	if v, _ := rec.Get("title"); v.Scalar() != "A title that wraps onto the following line." {
		t.Errorf("title = %q", v.Scalar())
	}

	full, _ := rec.Get("full_authors")
	got := full.List()
	if len(got) != 2 || got[0] != "Doe, John" || got[1] != "Roe, Jane" {
		t.Errorf("full_authors = %v", got)
	}

	mesh, _ := rec.Get("mesh_terms")
	if got := mesh.List(); len(got) != 2 || got[0] != "Humans" || got[1] != "Mice" {
		t.Errorf("mesh_terms = %v", got)
	}

	// The final record has no end marker; EOF closes it.
	if v, _ := records[1].Get("pubmed_id"); v.Scalar() != "87654321" {
		t.Errorf("pubmed_id = %q", v.Scalar())
	}
	if v, _ := records[1].Get("title"); v.Scalar() != "Second article." {
		t.Errorf("title = %q", v.Scalar())
	}
}

func TestCanParse(t *testing.T) {
	f := &Format{}
	if !f.CanParse([]byte("PMID- 12345678\nTI  - x\n")) {
		t.Error("CanParse rejected nbib input")
	}
	if f.CanParse([]byte("TY  - JOUR\n")) {
		t.Error("CanParse accepted RIS input")
	}
}

func TestSerializeLayout(t *testing.T) {
	rec := record.New()
	rec.Set("pubmed_id", record.StringValue("12345678"))
	rec.Set("status", record.StringValue("MEDLINE"))
	rec.Set("title", record.StringValue("A title."))
	rec.Set("full_authors", record.ListValue("Doe, John", "Roe, Jane"))

	var buf bytes.Buffer
	if err := (&Format{}).Serialize(&buf, []*record.Record{rec}, nil); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	want := strings.Join([]string{
		"PMID- 12345678",
		"STAT- MEDLINE",
		"TI  - A title.",
		"FAU - Doe, John",
		"FAU - Roe, Jane",
		"",
	}, "\n")
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestSerializeRequiresPubmedID(t *testing.T) {
	rec := record.New()
	rec.Set("title", record.StringValue("No identifier"))

	var buf bytes.Buffer
	err := (&Format{}).Serialize(&buf, []*record.Record{rec}, nil)
	if err == nil || !strings.Contains(err.Error(), "unknown type of reference") {
		t.Fatalf("Serialize() error = %v, want missing identifier error", err)
	}
}

func TestSerializeAmbiguousCustomMap(t *testing.T) {
	opts := format.NewSerializeOptions()
	opts.TagMap = &tagmap.TagMap{
		Name: "ambiguous",
		Fields: map[string]string{
			"TI": "title",
			"TT": "title",
		},
	}

	var buf bytes.Buffer
	err := (&Format{}).Serialize(&buf, nil, opts)
	var cfgErr *tagmap.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Serialize() error = %v, want *tagmap.ConfigError", err)
	}
}
