package tagmap

// PubMed returns the default tag map for the PubMed/nbib dialect. The
// returned map is a fresh copy and safe to modify.
func PubMed() *TagMap {
	return &TagMap{
		Name:        "pubmed",
		Description: "PubMed nbib tag map",
		Fields: map[string]string{
			"PMID": "pubmed_id",
			"PMC":  "pmc_id",
			"OWN":  "owner",
			"STAT": "status",
			"DCOM": "date_completed",
			"LR":   "date_revised",
			"IS":   "issn",
			"VI":   "volume",
			"IP":   "issue",
			"DP":   "publication_date",
			"TI":   "title",
			"PG":   "pagination",
			"LID":  "location_id",
			"AB":   "abstract",
			"AU":   "authors",
			"FAU":  "full_authors",
			"AD":   "affiliations",
			"AUID": "author_identifiers",
			"LA":   "languages",
			"GR":   "grants",
			"PT":   "publication_types",
			"DEP":  "electronic_publication_date",
			"PL":   "place_of_publication",
			"TA":   "journal_abbreviation",
			"JT":   "journal",
			"JID":  "journal_id",
			"SB":   "subset",
			"MH":   "mesh_terms",
			"OT":   "other_terms",
			"OTO":  "other_term_owner",
			"COIS": "conflict_of_interest",
			"EDAT": "entrez_date",
			"MHDA": "mesh_date",
			"CRDT": "create_date",
			"PHST": "publication_history",
			"AID":  "article_ids",
			"PST":  "publication_status",
			"SO":   "source",
			"UK":   "unknown_tag",
		},
		ListTags: []string{"AU", "FAU", "AD", "AUID", "LA", "GR", "PT", "MH", "OT", "PHST", "AID"},
	}
}
