package format_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/citekit/ris/format"
	"github.com/citekit/ris/format/pubmed"
	"github.com/citekit/ris/format/ris"
	"github.com/citekit/ris/format/wok"
	"github.com/citekit/ris/record"
)

// TestRISRoundTrip checks that a file in canonical layout survives a
// parse/serialize cycle byte for byte.
func TestRISRoundTrip(t *testing.T) {
	input := strings.Join([]string{
		"1.",
		"TY  - JOUR",
		"AU  - Shannon, Claude E.",
		"AU  - Weaver, Warren",
		"TI  - A Mathematical Theory of Communication",
		"JF  - Bell System Technical Journal",
		"VL  - 27",
		"SP  - 379",
		"EP  - 423",
		"PY  - 1948",
		"ER  - ",
		"",
		"2.",
		"TY  - BOOK",
		"AU  - Knuth, Donald E.",
		"TI  - The Art of Computer Programming",
		"PB  - Addison-Wesley",
		"PY  - 1968",
		"ER  - ",
		"",
	}, "\n")

	f := &ris.Format{}
	records, err := f.Parse(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	var buf bytes.Buffer
	if err := f.Serialize(&buf, records, nil); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if buf.String() != input {
		t.Errorf("round trip changed output:\ngot:\n%s\nwant:\n%s", buf.String(), input)
	}

	// A second cycle must be stable too.
	again, err := f.Parse(bytes.NewReader(buf.Bytes()), nil)
	if err != nil {
		t.Fatalf("Reparse failed: %v", err)
	}
	compareRecords(t, records, again)
}

// TestWOKRoundTrip checks that WOK records survive a serialize/parse
// cycle with their fields intact.
func TestWOKRoundTrip(t *testing.T) {
	input := strings.Join([]string{
		"FN Clarivate Analytics Web of Science",
		"VR 1.0",
		"PT J",
		"AU Smith, J",
		"   Jones, A",
		"TI Ordered chaos in citation graphs",
		"SO JOURNAL OF THINGS",
		"PY 2015",
		"ER",
		"EF",
		"",
	}, "\n")

	f := &wok.Format{}
	records, err := f.Parse(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	var buf bytes.Buffer
	if err := f.Serialize(&buf, records, nil); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	again, err := f.Parse(bytes.NewReader(buf.Bytes()), nil)
	if err != nil {
		t.Fatalf("Reparse failed: %v", err)
	}
	compareRecords(t, records, again)
}

// TestPubMedRoundTrip checks that nbib records survive a
// serialize/parse cycle with their fields intact.
func TestPubMedRoundTrip(t *testing.T) {
	input := strings.Join([]string{
		"PMID- 12345678",
		"STAT- MEDLINE",
		"TI  - A title.",
		"FAU - Doe, John",
		"AU  - Doe J",
		"MH  - Humans",
		"",
		"PMID- 87654321",
		"TI  - Second article.",
		"",
	}, "\n")

	f := &pubmed.Format{}
	records, err := f.Parse(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	var buf bytes.Buffer
	if err := f.Serialize(&buf, records, nil); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	again, err := f.Parse(bytes.NewReader(buf.Bytes()), nil)
	if err != nil {
		t.Fatalf("Reparse failed: %v", err)
	}
	compareRecords(t, records, again)
}

// TestCrossFormatConversion converts RIS input to nbib output.
func TestCrossFormatConversion(t *testing.T) {
	input := strings.Join([]string{
		"TY  - JOUR",
		"TI  - A shared field name",
		"ER  - ",
		"",
	}, "\n")

	records, err := (&ris.Format{}).Parse(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	records[0].Set("pubmed_id", record.StringValue("12345678"))

	var buf bytes.Buffer
	opts := format.NewSerializeOptions()
	var warnings []format.ExportWarning
	opts.OnWarning = func(w format.ExportWarning) { warnings = append(warnings, w) }

	if err := (&pubmed.Format{}).Serialize(&buf, records, opts); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "PMID- 12345678\n") {
		t.Errorf("output missing identifier line:\n%s", out)
	}
	if !strings.Contains(out, "TI  - A shared field name\n") {
		t.Errorf("output missing title line:\n%s", out)
	}
	// type_of_reference has no nbib tag and is reported, not fatal.
	if len(warnings) != 1 || warnings[0].Field != "type_of_reference" {
		t.Errorf("warnings = %+v", warnings)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		filename string
		peek     string
		want     string
	}{
		{"refs.ris", "", "ris"},
		{"export.ciw", "", "wok"},
		{"pubmed.nbib", "", "pubmed"},
		{"refs.txt", "1.\nTY  - JOUR\nTI  - x\nER  - \n", "ris"},
		{"refs.txt", "PMID- 123\nTI  - x\n", "pubmed"},
	}

	for _, tt := range tests {
		f, err := format.DetectFormat(tt.filename, []byte(tt.peek))
		if err != nil {
			t.Errorf("DetectFormat(%q) error = %v", tt.filename, err)
			continue
		}
		if f.Name() != tt.want {
			t.Errorf("DetectFormat(%q) = %s, want %s", tt.filename, f.Name(), tt.want)
		}
	}

	if _, err := format.DetectFormat("notes.doc", []byte("plain text")); err == nil {
		t.Error("DetectFormat accepted undetectable input")
	}
}

func compareRecords(t *testing.T, want, got []*record.Record) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("Expected %d records, got %d", len(want), len(got))
	}
	for i := range want {
		if !want[i].Equal(got[i]) {
			t.Errorf("record %d changed:\nwant fields %v\ngot fields %v", i, want[i].Names(), got[i].Names())
		}
	}
}
