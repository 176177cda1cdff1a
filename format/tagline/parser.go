package tagline

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/citekit/ris/format"
	"github.com/citekit/ris/record"
	"github.com/citekit/ris/tagmap"
)

// maxLine bounds a single input line. Abstracts exported on one
// physical line can run long.
const maxLine = 1024 * 1024

// Reader parses a tagged-citation stream one record at a time. Next
// returns io.EOF after the final record. A Reader is not safe for
// concurrent use; parse state is local to one Reader.
type Reader struct {
	syntax  Syntax
	tm      *tagmap.TagMap
	opts    format.ParseOptions
	scanner *bufio.Scanner

	line    int
	inRef   bool
	cur     *record.Record
	lastTag string
	err     error
}

// NewReader creates a streaming parser over r. The tag map is
// validated here so that configuration problems surface before the
// first record, not mid-parse.
func NewReader(r io.Reader, syntax Syntax, tm *tagmap.TagMap, opts *format.ParseOptions) (*Reader, error) {
	if opts == nil {
		opts = format.NewParseOptions()
	}
	if opts.TagMap != nil {
		tm = opts.TagMap
	}
	if err := tm.Validate(); err != nil {
		return nil, err
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	return &Reader{
		syntax:  syntax,
		tm:      tm,
		opts:    *opts,
		scanner: scanner,
	}, nil
}

// TagMap returns the map the reader parses with.
func (r *Reader) TagMap() *tagmap.TagMap {
	return r.tm
}

// Next returns the next record, or io.EOF when the input is
// exhausted. After a non-EOF error the reader is unusable; records
// returned before the error remain valid.
func (r *Reader) Next() (*record.Record, error) {
	if r.err != nil {
		return nil, r.err
	}

	for r.scanner.Scan() {
		r.line++
		line := r.scanner.Text()
		if r.line == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		var rec *record.Record
		var err error
		if r.syntax.IsTag(line) {
			rec, err = r.tagLine(line)
		} else {
			err = r.otherLine(line)
		}
		if err != nil {
			r.err = err
			return nil, err
		}
		if rec != nil {
			return rec, nil
		}
	}

	if err := r.scanner.Err(); err != nil {
		r.err = fmt.Errorf("reading input: %w", err)
		return nil, r.err
	}

	if r.inRef {
		if r.syntax.EndTag() == "" {
			return r.finish(), nil
		}
		if r.opts.FailOnIncomplete {
			r.err = r.parseError("unexpected end of input inside record", "")
			return nil, r.err
		}
		// Incomplete trailing record is dropped.
		r.reset()
	}

	r.err = io.EOF
	return nil, io.EOF
}

// tagLine handles one tag line, returning a completed record when the
// line closed one.
func (r *Reader) tagLine(line string) (*record.Record, error) {
	tag := r.syntax.Tag(line)

	if r.tm.IsIgnored(tag) {
		return nil, nil
	}

	if end := r.syntax.EndTag(); end != "" && tag == end {
		if !r.inRef {
			return nil, nil
		}
		return r.finish(), nil
	}

	if tag == r.syntax.StartTag() {
		if r.inRef {
			if r.syntax.EndTag() == "" {
				rec := r.finish()
				r.start(tag, line)
				return rec, nil
			}
			return nil, r.parseError("missing end of record tag", line)
		}
		r.start(tag, line)
		return nil, nil
	}

	if !r.inRef {
		return nil, r.parseError("invalid start tag", line)
	}

	if _, ok := r.tm.FieldFor(tag); ok {
		r.addTag(tag, line, false)
	} else if !r.opts.SkipUnknownTags {
		r.addUnknown(tag, line)
	}
	return nil, nil
}

// otherLine handles a continuation line: content belonging to the most
// recently written tag.
func (r *Reader) otherLine(line string) error {
	if r.opts.SkipMissingTags {
		return nil
	}
	if r.inRef {
		if r.lastTag == "" {
			return r.parseError("expected tag", line)
		}
		r.addTag(r.lastTag, line, true)
		return nil
	}
	if r.syntax.IsHeader(line) {
		return nil
	}
	return r.parseError("expected start tag", line)
}

func (r *Reader) start(tag, line string) {
	r.cur = record.New()
	r.lastTag = ""
	r.inRef = true
	r.addTag(tag, line, false)
}

// addTag applies the field accumulation rule. allLine marks a
// continuation line, whose whole trimmed content extends the field.
func (r *Reader) addTag(tag, line string, allLine bool) {
	r.lastTag = tag
	name, ok := r.tm.FieldFor(tag)
	if !ok {
		return
	}

	var content string
	if allLine {
		content = strings.TrimSpace(line)
	} else {
		content = r.syntax.Content(line)
	}

	parts := []string{content}
	if d, ok := r.tm.Delimiter(tag); ok && !allLine {
		parts = splitTrim(content, d)
	}

	switch {
	case r.tm.IsListTag(tag):
		r.addListValues(name, parts)
	case allLine:
		r.extendValue(name, content)
	default:
		r.addSingleValue(name, parts)
	}
}

// addListValues appends parts to a list field, creating it if absent.
func (r *Reader) addListValues(name string, parts []string) {
	if v, ok := r.cur.Get(name); ok {
		r.cur.Set(name, v.Extend(parts))
		return
	}
	r.cur.Set(name, record.ListValue(parts...))
}

// addSingleValue stores content for a non-list tag. A first occurrence
// sets the field; a repeat keeps the first value under strict list-tag
// enforcement and promotes the field to a list otherwise.
func (r *Reader) addSingleValue(name string, parts []string) {
	v, exists := r.cur.Get(name)
	if !exists {
		if len(parts) > 1 {
			r.cur.Set(name, record.ListValue(parts...))
		} else {
			r.cur.Set(name, record.StringValue(parts[0]))
		}
		return
	}
	if r.opts.EnforceListTags {
		return
	}
	r.cur.Set(name, v.Extend(parts))
}

// extendValue joins continuation content onto the field's current
// value with a single space, reconstructing an in-line wrap. For list
// values the last element is extended.
func (r *Reader) extendValue(name, content string) {
	v, ok := r.cur.Get(name)
	if !ok {
		r.cur.Set(name, record.StringValue(content))
		return
	}
	if !v.IsList() {
		r.cur.Set(name, record.StringValue(v.Scalar()+" "+content))
		return
	}
	elems := v.List()
	if len(elems) == 0 {
		r.cur.Set(name, record.ListValue(content))
		return
	}
	elems[len(elems)-1] += " " + content
	r.cur.Set(name, record.ListValue(elems...))
}

func (r *Reader) addUnknown(tag, line string) {
	r.cur.EnsureUnknown().Add(tag, r.syntax.Content(line))
}

// finish finalizes the in-progress record and resets parse state.
func (r *Reader) finish() *record.Record {
	rec := r.cur
	r.splitURLFields(rec)
	r.reset()
	return rec
}

// splitURLFields re-splits designated URL fields on semicolons: the
// format allows several addresses on one physical line.
func (r *Reader) splitURLFields(rec *record.Record) {
	for _, name := range r.tm.URLFields {
		v, ok := rec.Get(name)
		if !ok {
			continue
		}
		var out []string
		split := false
		for _, entry := range v.Strings() {
			parts := splitTrim(entry, ";")
			if len(parts) > 1 {
				split = true
			}
			out = append(out, parts...)
		}
		if v.IsList() || split {
			rec.Set(name, record.ListValue(out...))
		}
	}
}

func (r *Reader) reset() {
	r.cur = nil
	r.lastTag = ""
	r.inRef = false
}

func (r *Reader) parseError(msg, text string) error {
	return &format.ParseError{
		Source: r.opts.SourceName,
		Line:   r.line,
		Text:   text,
		Msg:    msg,
	}
}

func splitTrim(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		out = []string{""}
	}
	return out
}

// Parse reads all records from r.
func Parse(r io.Reader, syntax Syntax, tm *tagmap.TagMap, opts *format.ParseOptions) ([]*record.Record, error) {
	reader, err := NewReader(r, syntax, tm, opts)
	if err != nil {
		return nil, err
	}
	var records []*record.Record
	for {
		rec, err := reader.Next()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}
