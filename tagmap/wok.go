package tagmap

// WOK returns the default tag map for the Web of Science (WOK)
// dialect. The returned map is a fresh copy and safe to modify.
func WOK() *TagMap {
	return &TagMap{
		Name:        "wok",
		Description: "Web of Science / WOK tag map",
		Fields: map[string]string{
			"PT": "publication_type",
			"AU": "authors",
			"AF": "author_full_names",
			"BA": "book_authors",
			"BE": "editors",
			"GP": "book_group_authors",
			"TI": "document_title",
			"SO": "publication_name",
			"SE": "book_series_title",
			"BS": "book_series_subtitle",
			"LA": "language",
			"DT": "document_type",
			"CT": "conference_title",
			"CY": "conference_date",
			"CL": "conference_location",
			"SP": "conference_sponsors",
			"HO": "conference_host",
			"DE": "author_keywords",
			"ID": "keywords_plus",
			"AB": "abstract",
			"C1": "author_address",
			"RP": "reprint_address",
			"EM": "email_address",
			"RI": "researcherid_number",
			"OI": "orcid_identifier",
			"FU": "funding_agency_and_grant_number",
			"FX": "funding_text",
			"CR": "cited_references",
			"NR": "cited_reference_count",
			"TC": "wos_times_cited_count",
			"Z9": "total_times_cited_count",
			"PU": "publisher",
			"PI": "publisher_city",
			"PA": "publisher_address",
			"SN": "issn",
			"BN": "isbn",
			"J9": "source_abbreviation",
			"JI": "iso_source_abbreviation",
			"PD": "publication_date",
			"PY": "year_published",
			"VL": "volume",
			"IS": "issue",
			"PN": "part_number",
			"SU": "supplement",
			"SI": "special_issue",
			"MA": "meeting_abstract",
			"BP": "beginning_page",
			"EP": "ending_page",
			"AR": "article_number",
			"DI": "digital_object_identifier",
			"D2": "book_digital_object_identifier",
			"PG": "page_count",
			"WC": "web_of_science_categories",
			"SC": "research_areas",
			"GA": "document_delivery_number",
			"UT": "accession_number",
			"PM": "pubmed_id",
			"UK": "unknown_tag",
		},
		ListTags: []string{"AU", "AF", "BA", "BE", "GP", "CR"},
		Ignore:   []string{"FN", "VR", "EF"},
	}
}
