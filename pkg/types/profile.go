// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ResearcherProfile aggregates a researcher's identity, biography,
// external references, affiliations, and works into one record. It is
// assembled from four sub-resources fetched concurrently; a failed
// sub-fetch fails the whole profile.
type ResearcherProfile struct {
	ORCID      string `json:"orcid" yaml:"orcid"`
	GivenName  string `json:"given_name,omitempty" yaml:"given_name,omitempty"`
	FamilyName string `json:"family_name,omitempty" yaml:"family_name,omitempty"`
	CreditName string `json:"credit_name,omitempty" yaml:"credit_name,omitempty"`

	// Emails are ordered primary-first, then verified-first, stable
	// within ties.
	Emails []string `json:"emails,omitempty" yaml:"emails,omitempty"`

	// Description holds ordered sections: the biography, then a
	// comma-joined keyword line. Empty sections are skipped.
	Description []string `json:"description,omitempty" yaml:"description,omitempty"`

	// ExternalLinks merges external identifiers and researcher URLs,
	// each tagged with the source that supplied it.
	ExternalLinks []ExternalReference `json:"external_links,omitempty" yaml:"external_links,omitempty"`

	Educations  []ProfileAffiliation `json:"educations,omitempty" yaml:"educations,omitempty"`
	Employments []ProfileAffiliation `json:"employments,omitempty" yaml:"employments,omitempty"`

	Works []ProfileWork `json:"works,omitempty" yaml:"works,omitempty"`
}

// ExternalReference is one external identifier or researcher URL.
type ExternalReference struct {
	Name   string `json:"name" yaml:"name"`
	URL    string `json:"url,omitempty" yaml:"url,omitempty"`
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
}

// ProfileAffiliation is one education or employment entry.
type ProfileAffiliation struct {
	Organization string `json:"organization" yaml:"organization"`
	City         string `json:"city,omitempty" yaml:"city,omitempty"`
	Region       string `json:"region,omitempty" yaml:"region,omitempty"`
	Country      string `json:"country,omitempty" yaml:"country,omitempty"`
	Department   string `json:"department,omitempty" yaml:"department,omitempty"`
	Role         string `json:"role,omitempty" yaml:"role,omitempty"`
	StartDate    string `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	Source       string `json:"source,omitempty" yaml:"source,omitempty"`
}

// ProfileWork is one work group collapsed into a single entry: the first
// summary in source order supplies title, date, and journal; the source
// labels of every summary are joined with ", " without deduplication.
type ProfileWork struct {
	Title   string `json:"title,omitempty" yaml:"title,omitempty"`
	Date    string `json:"date,omitempty" yaml:"date,omitempty"`
	Journal string `json:"journal,omitempty" yaml:"journal,omitempty"`
	DOI     string `json:"doi,omitempty" yaml:"doi,omitempty"`
	Sources string `json:"sources,omitempty" yaml:"sources,omitempty"`
}
