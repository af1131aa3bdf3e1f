// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reporter

import (
	"strconv"
	"strings"

	"github.com/pdiddy/scholar-registry/pkg/types"
)

const (
	defaultFunder    = "NIH"
	defaultCurrency  = "USD"
	defaultAwardType = "Other"
	absent           = "absent"
)

// normalizeProject maps one validated raw project into a GrantRecord.
// The project number is the record identifier; a project without one
// produces no record.
func normalizeProject(raw rawProject) (types.GrantRecord, bool) {
	num := deref(raw.ProjectNum)
	if num == "" {
		return types.GrantRecord{}, false
	}

	rec := types.GrantRecord{
		ProjectNumber: num,
		Title:         deref(raw.ProjectTitle),
		Funder:        funder(raw.AgencyICAdmin),
		Amount:        amount(raw.AwardAmount),
		Currency:      defaultCurrency,
		StartDate:     deref(raw.ProjectStartDate),
		EndDate:       deref(raw.ProjectEndDate),
		Recipient:     recipient(raw.Organization),
		Keywords:      splitTerms(deref(raw.PrefTerms)),
		Abstract:      deref(raw.AbstractText),
		AwardType:     deref(raw.AwardType),
	}
	if rec.AwardType == "" {
		rec.AwardType = defaultAwardType
	}
	if raw.FiscalYear != nil {
		rec.FiscalYear = *raw.FiscalYear
	}
	if raw.IsActive != nil {
		rec.Active = *raw.IsActive
	}

	rec.PrincipalInvestigators = investigators(raw.PrincipalInvestigators, deref(raw.ContactPIName))

	return rec, true
}

func funder(a *rawAgency) string {
	if a != nil {
		if name := deref(a.Name); name != "" {
			return name
		}
		if abbr := deref(a.Abbreviation); abbr != "" {
			return abbr
		}
	}
	return defaultFunder
}

// amount renders the nullable award amount; null collapses to "absent".
func amount(v *float64) string {
	if v == nil {
		return absent
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// recipient joins the organization name, city, and state with ", ",
// skipping empty parts. An empty join collapses to "absent".
func recipient(org *rawOrganization) string {
	if org == nil {
		return absent
	}
	var parts []string
	for _, p := range []*string{org.OrgName, org.OrgCity, org.OrgState} {
		if v := deref(p); v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return absent
	}
	return strings.Join(parts, ", ")
}

// investigators maps the structured PI list when present and otherwise
// reconstructs a single PI from the "Last, First" contact name: the text
// before the first comma is the family name, the remainder the given
// name. With no comma the whole string is the family name.
func investigators(structured []rawInvestigator, contactName string) []types.Investigator {
	if len(structured) > 0 {
		out := make([]types.Investigator, 0, len(structured))
		for _, pi := range structured {
			out = append(out, types.Investigator{
				GivenName:  deref(pi.FirstName),
				FamilyName: deref(pi.LastName),
				CreditName: deref(pi.FullName),
			})
		}
		return out
	}

	if contactName == "" {
		return nil
	}
	pi := types.Investigator{CreditName: contactName}
	if idx := strings.Index(contactName, ","); idx >= 0 {
		pi.FamilyName = strings.TrimSpace(contactName[:idx])
		pi.GivenName = strings.TrimSpace(contactName[idx+1:])
	} else {
		pi.FamilyName = strings.TrimSpace(contactName)
	}
	return []types.Investigator{pi}
}

// splitTerms splits a semicolon-delimited preferred-terms string,
// trimming each segment and dropping empty ones. Source order is kept.
func splitTerms(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, seg := range strings.Split(s, ";") {
		if v := strings.TrimSpace(seg); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
