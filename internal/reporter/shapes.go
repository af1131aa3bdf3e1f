// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reporter

// NIH RePORTER v2 project search shapes. Every field is a pointer or
// slice: the API nulls out award amounts, preferred terms, award types,
// and organization fields freely, and null must read as absent rather
// than as a shape violation.

type searchRequest struct {
	Criteria searchCriteria `json:"criteria"`
	Limit    int            `json:"limit"`
	Offset   int            `json:"offset"`
}

type searchCriteria struct {
	PINames     []piName `json:"pi_names,omitempty"`
	OrgNames    []string `json:"org_names,omitempty"`
	ProjectNums []string `json:"project_nums,omitempty"`
}

type piName struct {
	AnyName string `json:"any_name"`
}

type searchResponse struct {
	Meta    *responseMeta `json:"meta"`
	Results []rawProject  `json:"results"`
}

type responseMeta struct {
	Total *int `json:"total"`
}

type rawProject struct {
	ProjectNum       *string          `json:"project_num"`
	ProjectTitle     *string          `json:"project_title"`
	AgencyICAdmin    *rawAgency       `json:"agency_ic_admin"`
	FiscalYear       *int             `json:"fiscal_year"`
	AwardAmount      *float64         `json:"award_amount"`
	ProjectStartDate *string          `json:"project_start_date"`
	ProjectEndDate   *string          `json:"project_end_date"`
	Organization     *rawOrganization `json:"organization"`

	PrincipalInvestigators []rawInvestigator `json:"principal_investigators"`
	ContactPIName          *string           `json:"contact_pi_name"`

	PrefTerms    *string `json:"pref_terms"`
	AbstractText *string `json:"abstract_text"`
	IsActive     *bool   `json:"is_active"`
	AwardType    *string `json:"award_type"`
}

type rawAgency struct {
	Name         *string `json:"name"`
	Abbreviation *string `json:"abbreviation"`
}

type rawOrganization struct {
	OrgName  *string `json:"org_name"`
	OrgCity  *string `json:"org_city"`
	OrgState *string `json:"org_state"`
}

type rawInvestigator struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	FullName  *string `json:"full_name"`
}
