package tagline

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/citekit/ris/format"
	"github.com/citekit/ris/record"
	"github.com/citekit/ris/tagmap"
)

// Writer serializes records back into tag-line text, the inverse of
// Reader for records Reader itself produced.
type Writer struct {
	syntax    Syntax
	tm        *tagmap.TagMap
	rev       map[string]string
	opts      format.SerializeOptions
	typeField string
}

// NewWriter creates a writer for one dialect. The tag map is inverted
// here; an ambiguous mapping surfaces as a tagmap.ConfigError before
// anything is written.
func NewWriter(syntax Syntax, tm *tagmap.TagMap, opts *format.SerializeOptions) (*Writer, error) {
	if opts == nil {
		opts = format.NewSerializeOptions()
	}
	if opts.TagMap != nil {
		tm = opts.TagMap
	}
	rev, err := tm.Invert()
	if err != nil {
		return nil, err
	}
	resolved := *opts
	if resolved.Newline == "" {
		resolved.Newline = "\n"
	}
	return &Writer{
		syntax:    syntax,
		tm:        tm,
		rev:       rev,
		opts:      resolved,
		typeField: tm.Fields[syntax.StartTag()],
	}, nil
}

// Write serializes all records to w, separated by blank lines.
func (w *Writer) Write(out io.Writer, records []*record.Record) error {
	buf := bufio.NewWriter(out)
	for i, rec := range records {
		if i > 0 {
			if _, err := buf.WriteString(w.opts.Newline); err != nil {
				return err
			}
		}
		if err := w.writeRecord(buf, i, rec); err != nil {
			return err
		}
	}
	return buf.Flush()
}

func (w *Writer) writeRecord(buf *bufio.Writer, index int, rec *record.Record) error {
	if w.syntax.Counter() {
		if err := w.writeLine(buf, fmt.Sprintf("%d.", index+1)); err != nil {
			return err
		}
	}

	refType, err := w.referenceType(index, rec)
	if err != nil {
		return err
	}
	if err := w.writeLine(buf, w.syntax.FormatLine(w.syntax.StartTag(), refType)); err != nil {
		return err
	}

	for _, name := range rec.Names() {
		if name == w.typeField {
			continue
		}
		tag, ok := w.rev[name]
		if !ok {
			w.warn(index, name, "no tag for field in active map")
			continue
		}
		if tag == w.syntax.StartTag() || w.tm.IsIgnored(tag) {
			continue
		}
		v, _ := rec.Get(name)
		if err := w.writeField(buf, tag, v); err != nil {
			return err
		}
	}

	if u := rec.Unknown(); u != nil && !w.opts.SkipUnknownTags {
		for _, tag := range u.Tags() {
			for _, value := range u.Values(tag) {
				if err := w.writeLine(buf, w.syntax.FormatLine(tag, value)); err != nil {
					return err
				}
			}
		}
	}

	if end := w.syntax.EndTag(); end != "" {
		if err := w.writeLine(buf, w.syntax.FormatLine(end, "")); err != nil {
			return err
		}
	}
	return nil
}

// writeField emits one field: a delimiter join on a single line, one
// line per element for list values, or a plain scalar line.
func (w *Writer) writeField(buf *bufio.Writer, tag string, v record.Value) error {
	if d, ok := w.tm.Delimiter(tag); ok && v.IsList() {
		return w.writeLine(buf, w.syntax.FormatLine(tag, strings.Join(v.List(), d)))
	}
	if v.IsList() {
		for _, elem := range v.List() {
			if err := w.writeLine(buf, w.syntax.FormatLine(tag, elem)); err != nil {
				return err
			}
		}
		return nil
	}
	return w.writeLine(buf, w.syntax.FormatLine(tag, v.Scalar()))
}

// referenceType picks the value for the start-tag line: the record's
// own type field, else the configured default.
func (w *Writer) referenceType(index int, rec *record.Record) (string, error) {
	if w.typeField != "" {
		if v, ok := rec.Get(w.typeField); ok && !v.IsList() && v.Scalar() != "" {
			return v.Scalar(), nil
		}
	}
	if w.opts.DefaultReferenceType != "" {
		return w.opts.DefaultReferenceType, nil
	}
	return "", fmt.Errorf("record %d: unknown type of reference", index)
}

func (w *Writer) writeLine(buf *bufio.Writer, line string) error {
	if _, err := buf.WriteString(line); err != nil {
		return err
	}
	_, err := buf.WriteString(w.opts.Newline)
	return err
}

func (w *Writer) warn(index int, field, reason string) {
	warning := format.ExportWarning{Record: index, Field: field, Reason: reason}
	if w.opts.OnWarning != nil {
		w.opts.OnWarning(warning)
		return
	}
	slog.Warn("field not exported", "record", index, "field", field, "reason", reason)
}
