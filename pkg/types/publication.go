// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the unified record shapes emitted by the registry
// adapters. Every record is produced fresh per request; nothing in this
// package holds state.
package types

// PublicationRecord is the unified shape for one publication. Records
// missing a title or abstract are never emitted; everything else is
// optional and left empty when the registry did not supply it.
type PublicationRecord struct {
	Title    string `json:"title" yaml:"title"`
	Abstract string `json:"abstract" yaml:"abstract"`

	// Identifiers. All optional; a record may carry any subset.
	DOI   string `json:"doi,omitempty" yaml:"doi,omitempty"`
	PMID  string `json:"pmid,omitempty" yaml:"pmid,omitempty"`
	PMCID string `json:"pmcid,omitempty" yaml:"pmcid,omitempty"`

	// Authors in source order.
	Authors []Author `json:"authors,omitempty" yaml:"authors,omitempty"`

	Journal string `json:"journal,omitempty" yaml:"journal,omitempty"`
	ISSN    string `json:"issn,omitempty" yaml:"issn,omitempty"`

	// PublicationDate is the free-form date string as supplied by the
	// registry (e.g. "2021 Mar 15"). It is not parsed.
	PublicationDate string `json:"publication_date,omitempty" yaml:"publication_date,omitempty"`

	CitationCount int      `json:"citation_count,omitempty" yaml:"citation_count,omitempty"`
	Keywords      []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`

	// Subjects holds decorated MeSH heading strings: a major topic is
	// prefixed with "*" and each qualifier is appended as "/qualifier"
	// in source order (e.g. "*Neoplasms/genetics/therapy").
	Subjects []string `json:"subjects,omitempty" yaml:"subjects,omitempty"`

	Grants []string `json:"grants,omitempty" yaml:"grants,omitempty"`

	FullTextURL string `json:"full_text_url,omitempty" yaml:"full_text_url,omitempty"`
	OpenAccess  bool   `json:"open_access" yaml:"open_access"`

	// Source labels the registry that produced the record.
	Source string `json:"source" yaml:"source"`
}

// Author is one publication author. ORCID is populated only when the
// source identifier's declared type equals "ORCID" case-insensitively;
// identifiers of any other type are dropped.
type Author struct {
	FullName     string   `json:"full_name,omitempty" yaml:"full_name,omitempty"`
	FirstName    string   `json:"first_name,omitempty" yaml:"first_name,omitempty"`
	LastName     string   `json:"last_name,omitempty" yaml:"last_name,omitempty"`
	Initials     string   `json:"initials,omitempty" yaml:"initials,omitempty"`
	ORCID        string   `json:"orcid,omitempty" yaml:"orcid,omitempty"`
	Affiliations []string `json:"affiliations,omitempty" yaml:"affiliations,omitempty"`
}
