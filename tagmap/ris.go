package tagmap

// RIS returns the default tag map for the base RIS dialect. The
// returned map is a fresh copy and safe to modify.
func RIS() *TagMap {
	return &TagMap{
		Name:        "ris",
		Description: "Default RIS tag map",
		Fields: map[string]string{
			"TY": "type_of_reference",
			"A1": "first_authors",
			"A2": "secondary_authors",
			"A3": "tertiary_authors",
			"A4": "subsidiary_authors",
			"AB": "abstract",
			"AD": "author_address",
			"AN": "accession_number",
			"AU": "authors",
			"C1": "custom1",
			"C2": "custom2",
			"C3": "custom3",
			"C4": "custom4",
			"C5": "custom5",
			"C6": "custom6",
			"C7": "custom7",
			"C8": "custom8",
			"CA": "caption",
			"CN": "call_number",
			"CY": "place_published",
			"DA": "date",
			"DB": "name_of_database",
			"DO": "doi",
			"DP": "database_provider",
			"EP": "end_page",
			"ET": "edition",
			"ID": "id",
			"IS": "number",
			"J2": "alternate_title1",
			"JA": "alternate_title2",
			"JF": "alternate_title3",
			"KW": "keywords",
			"L1": "file_attachments1",
			"L2": "file_attachments2",
			"L4": "figure",
			"LA": "language",
			"LB": "label",
			"M1": "note",
			"M3": "type_of_work",
			"N1": "notes",
			"N2": "notes_abstract",
			"NV": "number_of_volumes",
			"OP": "original_publication",
			"PB": "publisher",
			"PY": "year",
			"RI": "reviewed_item",
			"RN": "research_notes",
			"RP": "reprint_edition",
			"SE": "section",
			"SN": "issn",
			"SP": "start_page",
			"ST": "short_title",
			"T1": "primary_title",
			"T2": "secondary_title",
			"T3": "tertiary_title",
			"TA": "translated_author",
			"TI": "title",
			"TT": "translated_title",
			"UK": "unknown_tag",
			"UR": "urls",
			"VL": "volume",
			"Y1": "publication_year",
			"Y2": "access_date",
		},
		ListTags:  []string{"A1", "A2", "A3", "A4", "AU", "KW", "N1", "UR"},
		URLFields: []string{"urls"},
	}
}
