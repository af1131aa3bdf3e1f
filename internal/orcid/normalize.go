// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package orcid

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/scholar-registry/pkg/types"
)

// buildProfile assembles the four validated sub-resources into one
// profile record.
func buildProfile(id string, person rawPerson, works rawWorks, educations, employments rawAffiliations) types.ResearcherProfile {
	p := types.ResearcherProfile{ORCID: id}

	if person.Name != nil {
		p.GivenName = unwrap(person.Name.GivenNames)
		p.FamilyName = unwrap(person.Name.FamilyName)
		p.CreditName = unwrap(person.Name.CreditName)
	}

	if person.Emails != nil {
		p.Emails = sortedEmails(person.Emails.Email)
	}

	p.Description = descriptionSections(person)
	p.ExternalLinks = externalLinks(person)

	p.Educations = normalizeAffiliations(educations, func(w rawAffiliationSummaryWrap) *rawAffiliationSummary {
		return w.EducationSummary
	})
	p.Employments = normalizeAffiliations(employments, func(w rawAffiliationSummaryWrap) *rawAffiliationSummary {
		return w.EmploymentSummary
	})

	for _, g := range works.Group {
		if w, ok := mergeWorkGroup(g); ok {
			p.Works = append(p.Works, w)
		}
	}

	return p
}

// sortedEmails orders addresses primary-first, then verified-first;
// the sort is stable so source order breaks ties.
func sortedEmails(emails []rawEmail) []string {
	sorted := make([]rawEmail, len(emails))
	copy(sorted, emails)
	sort.SliceStable(sorted, func(i, j int) bool {
		if boolOf(sorted[i].Primary) != boolOf(sorted[j].Primary) {
			return boolOf(sorted[i].Primary)
		}
		if boolOf(sorted[i].Verified) != boolOf(sorted[j].Verified) {
			return boolOf(sorted[i].Verified)
		}
		return false
	})

	var out []string
	for _, e := range sorted {
		if v := deref(e.Email); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// descriptionSections builds ordered description sections: the
// biography first, then a comma-joined keyword line. Empty sections are
// skipped.
func descriptionSections(person rawPerson) []string {
	var out []string
	if person.Biography != nil {
		if bio := deref(person.Biography.Content); bio != "" {
			out = append(out, bio)
		}
	}
	if person.Keywords != nil {
		var kws []string
		for _, k := range person.Keywords.Keyword {
			if v := deref(k.Content); v != "" {
				kws = append(kws, v)
			}
		}
		if len(kws) > 0 {
			out = append(out, "Keywords: "+strings.Join(kws, ", "))
		}
	}
	return out
}

// externalLinks merges external identifiers and researcher URLs, in
// that order, each tagged with the source that supplied it.
func externalLinks(person rawPerson) []types.ExternalReference {
	var out []types.ExternalReference
	if person.ExternalIdentifiers != nil {
		for _, e := range person.ExternalIdentifiers.ExternalIdentifier {
			ref := types.ExternalReference{
				Name:   deref(e.Type),
				Source: sourceName(e.Source),
			}
			if e.URL != nil {
				ref.URL = unwrap(e.URL)
			}
			if ref.URL == "" {
				ref.URL = deref(e.Value)
			}
			if ref.Name != "" || ref.URL != "" {
				out = append(out, ref)
			}
		}
	}
	if person.ResearcherURLs != nil {
		for _, u := range person.ResearcherURLs.ResearcherURL {
			ref := types.ExternalReference{
				Name:   deref(u.URLName),
				Source: sourceName(u.Source),
			}
			if u.URL != nil {
				ref.URL = unwrap(u.URL)
			}
			if ref.Name != "" || ref.URL != "" {
				out = append(out, ref)
			}
		}
	}
	return out
}

func normalizeAffiliations(raw rawAffiliations, pick func(rawAffiliationSummaryWrap) *rawAffiliationSummary) []types.ProfileAffiliation {
	var out []types.ProfileAffiliation
	for _, g := range raw.AffiliationGroup {
		for _, wrap := range g.Summaries {
			s := pick(wrap)
			if s == nil {
				continue
			}
			aff := types.ProfileAffiliation{
				Department: deref(s.DepartmentName),
				Role:       deref(s.RoleTitle),
				StartDate:  reconstructDate(s.StartDate),
				EndDate:    reconstructDate(s.EndDate),
				Source:     sourceName(s.Source),
			}
			if s.Organization != nil {
				aff.Organization = deref(s.Organization.Name)
				if s.Organization.Address != nil {
					aff.City = deref(s.Organization.Address.City)
					aff.Region = deref(s.Organization.Address.Region)
					aff.Country = deref(s.Organization.Address.Country)
				}
			}
			if aff.Organization == "" && aff.Role == "" {
				continue
			}
			out = append(out, aff)
		}
	}
	return out
}

// mergeWorkGroup collapses a work group: the first summary in source
// order that supplies a non-absent title, date, or journal wins that
// field; all non-absent source labels are joined with ", " without
// deduplication; the DOI comes from the first external-id whose type is
// "doi" case-insensitively.
func mergeWorkGroup(g rawWorkGroup) (types.ProfileWork, bool) {
	if len(g.WorkSummary) == 0 {
		return types.ProfileWork{}, false
	}

	var w types.ProfileWork
	var sources []string
	for _, s := range g.WorkSummary {
		if w.Title == "" && s.Title != nil {
			w.Title = unwrap(s.Title.Title)
		}
		if w.Date == "" {
			w.Date = reconstructDate(s.PublicationDate)
		}
		if w.Journal == "" {
			w.Journal = unwrap(s.JournalTitle)
		}
		if w.DOI == "" && s.ExternalIDs != nil {
			for _, e := range s.ExternalIDs.ExternalID {
				if strings.EqualFold(deref(e.Type), "doi") {
					w.DOI = deref(e.Value)
					break
				}
			}
		}
		if src := sourceName(s.Source); src != "" {
			sources = append(sources, src)
		}
	}
	w.Sources = strings.Join(sources, ", ")
	return w, true
}

// reconstructDate turns a structured year/month/day into YYYY-MM-DD.
// The year is required; a missing year means no date. Month and day
// default to 1.
func reconstructDate(d *rawDate) string {
	if d == nil {
		return ""
	}
	year, ok := dateComponent(d.Year)
	if !ok {
		return ""
	}
	month, ok := dateComponent(d.Month)
	if !ok {
		month = 1
	}
	day, ok := dateComponent(d.Day)
	if !ok {
		day = 1
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

func dateComponent(v *value) (int, bool) {
	if v == nil || v.Value == nil {
		return 0, false
	}
	n, err := strconv.Atoi(*v.Value)
	if err != nil {
		return 0, false
	}
	return n, true
}

func sourceName(s *rawSource) string {
	if s == nil {
		return ""
	}
	return unwrap(s.SourceName)
}

func unwrap(v *value) string {
	if v == nil {
		return ""
	}
	return deref(v.Value)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func boolOf(b *bool) bool {
	return b != nil && *b
}
