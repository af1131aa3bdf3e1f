// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package orcid

// ORCID public API v3.0 shapes for the four sub-resources that feed one
// researcher profile. The API wraps nearly every scalar in a
// {"value": ...} envelope and nulls out whole blocks freely, so every
// field here is a pointer or slice.

type value struct {
	Value *string `json:"value"`
}

type rawPerson struct {
	Name                *rawName           `json:"name"`
	Biography           *rawBiography      `json:"biography"`
	Emails              *rawEmails         `json:"emails"`
	ExternalIdentifiers *rawExternalIDList `json:"external-identifiers"`
	ResearcherURLs      *rawResearcherURLs `json:"researcher-urls"`
	Keywords            *rawKeywords       `json:"keywords"`
}

type rawName struct {
	GivenNames *value `json:"given-names"`
	FamilyName *value `json:"family-name"`
	CreditName *value `json:"credit-name"`
}

type rawBiography struct {
	Content *string `json:"content"`
}

type rawEmails struct {
	Email []rawEmail `json:"email"`
}

type rawEmail struct {
	Email    *string `json:"email"`
	Primary  *bool   `json:"primary"`
	Verified *bool   `json:"verified"`
}

type rawExternalIDList struct {
	ExternalIdentifier []rawExternalID `json:"external-identifier"`
}

type rawExternalID struct {
	Type   *string    `json:"external-id-type"`
	Value  *string    `json:"external-id-value"`
	URL    *value     `json:"external-id-url"`
	Source *rawSource `json:"source"`
}

type rawResearcherURLs struct {
	ResearcherURL []rawResearcherURL `json:"researcher-url"`
}

type rawResearcherURL struct {
	URLName *string    `json:"url-name"`
	URL     *value     `json:"url"`
	Source  *rawSource `json:"source"`
}

type rawKeywords struct {
	Keyword []rawKeyword `json:"keyword"`
}

type rawKeyword struct {
	Content *string `json:"content"`
}

type rawSource struct {
	SourceName *value `json:"source-name"`
}

// Works.

type rawWorks struct {
	Group []rawWorkGroup `json:"group"`
}

type rawWorkGroup struct {
	WorkSummary []rawWorkSummary `json:"work-summary"`
}

type rawWorkSummary struct {
	Title           *rawWorkTitle       `json:"title"`
	PublicationDate *rawDate            `json:"publication-date"`
	JournalTitle    *value              `json:"journal-title"`
	ExternalIDs     *rawWorkExternalIDs `json:"external-ids"`
	Source          *rawSource          `json:"source"`
}

// rawWorkExternalIDs is keyed "external-id", unlike the person
// external-identifier list.
type rawWorkExternalIDs struct {
	ExternalID []rawExternalID `json:"external-id"`
}

type rawWorkTitle struct {
	Title *value `json:"title"`
}

// rawDate is ORCID's structured date; year, month, and day values
// arrive as strings ("2008", "02").
type rawDate struct {
	Year  *value `json:"year"`
	Month *value `json:"month"`
	Day   *value `json:"day"`
}

// Affiliations (educations and employments share one shape).

type rawAffiliations struct {
	AffiliationGroup []rawAffiliationGroup `json:"affiliation-group"`
}

type rawAffiliationGroup struct {
	Summaries []rawAffiliationSummaryWrap `json:"summaries"`
}

type rawAffiliationSummaryWrap struct {
	EducationSummary  *rawAffiliationSummary `json:"education-summary"`
	EmploymentSummary *rawAffiliationSummary `json:"employment-summary"`
}

type rawAffiliationSummary struct {
	Organization   *rawOrganization `json:"organization"`
	DepartmentName *string          `json:"department-name"`
	RoleTitle      *string          `json:"role-title"`
	StartDate      *rawDate         `json:"start-date"`
	EndDate        *rawDate         `json:"end-date"`
	Source         *rawSource       `json:"source"`
}

type rawOrganization struct {
	Name    *string     `json:"name"`
	Address *rawAddress `json:"address"`
}

type rawAddress struct {
	City    *string `json:"city"`
	Region  *string `json:"region"`
	Country *string `json:"country"`
}
