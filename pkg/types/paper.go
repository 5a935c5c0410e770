// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Paper is a bibliographic record from papers.csv, referenced from evidence
// rows by citation key.
type Paper struct {
	// CitationKey is the unique key, conventionally first author + year
	// (e.g. "Friston2010").
	CitationKey string `json:"citation_key" yaml:"citation_key"`

	// Authors is the comma-separated author list as extracted.
	Authors string `json:"authors" yaml:"authors"`

	// Year is the publication year. Zero when unknown.
	Year int `json:"year" yaml:"year"`

	// Title is the full paper title.
	Title string `json:"title" yaml:"title"`

	// Publication is the journal or conference name.
	Publication string `json:"publication,omitempty" yaml:"publication,omitempty"`

	// URL is a direct link to the paper, when one has been found.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
}
