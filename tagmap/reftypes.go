package tagmap

import (
	"fmt"

	"github.com/citekit/ris/record"
)

// TypeOfReference maps RIS reference-type codes to readable names.
func TypeOfReference() map[string]string {
	return map[string]string{
		"ABST":    "abstract",
		"ADVS":    "audiovisual material",
		"AGGR":    "aggregated database",
		"ANCIENT": "ancient text",
		"ART":     "art work",
		"BILL":    "bill",
		"BLOG":    "blog",
		"BOOK":    "whole book",
		"CASE":    "case",
		"CHAP":    "book chapter",
		"CHART":   "chart",
		"CLSWK":   "classical work",
		"COMP":    "computer program",
		"CONF":    "conference proceeding",
		"CPAPER":  "conference paper",
		"CTLG":    "catalog",
		"DATA":    "data file",
		"DBASE":   "online database",
		"DICT":    "dictionary",
		"EBOOK":   "electronic book",
		"ECHAP":   "electronic book section",
		"EDBOOK":  "edited book",
		"EJOUR":   "electronic article",
		"ELEC":    "web page",
		"ENCYC":   "encyclopedia",
		"EQUA":    "equation",
		"FIGURE":  "figure",
		"GEN":     "generic",
		"GOVDOC":  "government document",
		"GRANT":   "grant",
		"HEAR":    "hearing",
		"ICOMM":   "internet communication",
		"INPR":    "in press",
		"JFULL":   "journal (full)",
		"JOUR":    "journal",
		"LEGAL":   "legal rule or regulation",
		"MANSCPT": "manuscript",
		"MAP":     "map",
		"MGZN":    "magazine article",
		"MPCT":    "motion picture",
		"MULTI":   "online multimedia",
		"MUSIC":   "music score",
		"NEWS":    "newspaper",
		"PAMP":    "pamphlet",
		"PAT":     "patent",
		"PCOMM":   "personal communication",
		"RPRT":    "report",
		"SER":     "serial publication",
		"SLIDE":   "slide",
		"SOUND":   "sound recording",
		"STAND":   "standard",
		"STAT":    "statute",
		"THES":    "thesis/dissertation",
		"UNBILL":  "unenacted bill",
		"UNPB":    "unpublished work",
		"VIDEO":   "video recording",
	}
}

// ConvertReferenceTypes returns a copy of the records with their
// type_of_reference values translated through types (code to name, or
// the inverse when reverse is set). Unknown types are left as-is, or
// reported as an error when strict is set and the value is not already
// a translated name.
func ConvertReferenceTypes(recs []*record.Record, types map[string]string, reverse, strict bool) ([]*record.Record, error) {
	table := types
	if table == nil {
		table = TypeOfReference()
	}
	if reverse {
		inv := make(map[string]string, len(table))
		for code, name := range table {
			if prev, ok := inv[name]; ok {
				return nil, &ConfigError{Reason: fmt.Sprintf("cannot invert type map: codes %s and %s both map to %q", prev, code, name)}
			}
			inv[name] = code
		}
		table = inv
	}

	typeField := RIS().Fields["TY"]
	out := make([]*record.Record, len(recs))
	for i, rec := range recs {
		c := rec.Clone()
		v, ok := c.Get(typeField)
		if !ok {
			out[i] = c
			continue
		}
		old := v.Scalar()
		if name, ok := table[old]; ok {
			c.Set(typeField, record.StringValue(name))
		} else if strict && !isTranslated(table, old) {
			return nil, fmt.Errorf("type %q not found", old)
		}
		out[i] = c
	}
	return out, nil
}

func isTranslated(table map[string]string, value string) bool {
	for _, name := range table {
		if name == value {
			return true
		}
	}
	return false
}
