// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// GrantRecord is the unified shape for one funded project. ProjectNumber
// is the only required field; string fields that the registry left empty
// collapse to "absent" where noted so the downstream harness always sees
// a value.
type GrantRecord struct {
	// ProjectNumber is the registry's project identifier (required).
	ProjectNumber string `json:"project_number" yaml:"project_number"`

	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Funder defaults to "NIH" when the registry omits the awarding agency.
	Funder string `json:"funder" yaml:"funder"`

	FiscalYear int `json:"fiscal_year,omitempty" yaml:"fiscal_year,omitempty"`

	// Amount is the award amount as a display string; a null award amount
	// collapses to "absent".
	Amount string `json:"amount" yaml:"amount"`

	// Currency is always "USD".
	Currency string `json:"currency" yaml:"currency"`

	StartDate string `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty" yaml:"end_date,omitempty"`

	// Recipient joins the recipient organization's name, city, and state
	// with ", "; when all three are empty it collapses to "absent".
	Recipient string `json:"recipient" yaml:"recipient"`

	PrincipalInvestigators []Investigator `json:"principal_investigators,omitempty" yaml:"principal_investigators,omitempty"`

	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`

	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	Active bool `json:"active" yaml:"active"`

	// AwardType defaults to "Other" when the registry omits it.
	AwardType string `json:"award_type" yaml:"award_type"`
}

// Investigator is one principal investigator on a grant.
type Investigator struct {
	GivenName  string `json:"given_name" yaml:"given_name"`
	FamilyName string `json:"family_name" yaml:"family_name"`
	CreditName string `json:"credit_name" yaml:"credit_name"`
}
