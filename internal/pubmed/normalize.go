// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"strings"

	"github.com/pdiddy/scholar-registry/pkg/types"
)

// normalizeResult maps one validated raw result into a PublicationRecord.
// A result missing a title or abstract produces no record at all: that is
// completeness policy, not a validation failure, so the second return
// value reports whether a record was emitted.
func normalizeResult(raw rawResult) (types.PublicationRecord, bool) {
	title := deref(raw.Title)
	abstract := deref(raw.AbstractText)
	if title == "" || abstract == "" {
		return types.PublicationRecord{}, false
	}

	rec := types.PublicationRecord{
		Title:           title,
		Abstract:        abstract,
		DOI:             deref(raw.DOI),
		PMID:            deref(raw.PMID),
		PMCID:           deref(raw.PMCID),
		PublicationDate: publicationDate(raw),
		Source:          deref(raw.Source),
	}

	if raw.CitedByCount != nil {
		rec.CitationCount = *raw.CitedByCount
	}
	if raw.IsOpenAccess != nil && *raw.IsOpenAccess == "Y" {
		rec.OpenAccess = true
	}

	if raw.JournalInfo != nil && raw.JournalInfo.Journal != nil {
		rec.Journal = deref(raw.JournalInfo.Journal.Title)
		rec.ISSN = deref(raw.JournalInfo.Journal.ISSN)
		if rec.ISSN == "" {
			rec.ISSN = deref(raw.JournalInfo.Journal.ESSN)
		}
	}

	if raw.AuthorList != nil {
		for _, a := range raw.AuthorList.Author {
			rec.Authors = append(rec.Authors, normalizeAuthor(a))
		}
	}

	if raw.KeywordList != nil {
		rec.Keywords = append(rec.Keywords, raw.KeywordList.Keyword...)
	}

	if raw.MeshHeadingList != nil {
		for _, mh := range raw.MeshHeadingList.MeshHeading {
			if s := decorateMeshHeading(mh); s != "" {
				rec.Subjects = append(rec.Subjects, s)
			}
		}
	}

	if raw.GrantsList != nil {
		for _, g := range raw.GrantsList.Grant {
			if s := formatGrant(g); s != "" {
				rec.Grants = append(rec.Grants, s)
			}
		}
	}

	rec.FullTextURL = firstFullTextURL(raw.FullTextURLList)

	return rec, true
}

// normalizeAuthor maps a raw author. The author identifier feeds the
// ORCID field only when its declared type equals "ORCID"
// case-insensitively; identifiers of any other type are dropped.
func normalizeAuthor(a rawAuthor) types.Author {
	out := types.Author{
		FullName:  deref(a.FullName),
		FirstName: deref(a.FirstName),
		LastName:  deref(a.LastName),
		Initials:  deref(a.Initials),
	}
	if a.AuthorID != nil && strings.EqualFold(deref(a.AuthorID.Type), "ORCID") {
		out.ORCID = deref(a.AuthorID.Value)
	}
	if a.AffDetail != nil {
		for _, aff := range a.AffDetail.AuthorAffiliation {
			if v := deref(aff.Affiliation); v != "" {
				out.Affiliations = append(out.Affiliations, v)
			}
		}
	}
	return out
}

// decorateMeshHeading folds a MeSH heading into one string: a major
// topic gets a "*" prefix and every qualifier name is appended as
// "/qualifier" in source order.
func decorateMeshHeading(mh rawMeshHeading) string {
	name := deref(mh.DescriptorName)
	if name == "" {
		return ""
	}
	if deref(mh.MajorTopicYN) == "Y" {
		name = "*" + name
	}
	if mh.MeshQualifierList != nil {
		for _, q := range mh.MeshQualifierList.MeshQualifier {
			if v := deref(q.QualifierName); v != "" {
				name += "/" + v
			}
		}
	}
	return name
}

// firstFullTextURL returns the first URL in source order with a
// non-absent URL string. Source order is significant.
func firstFullTextURL(list *fullTextURLList) string {
	if list == nil {
		return ""
	}
	for _, u := range list.FullTextURL {
		if v := deref(u.URL); v != "" {
			return v
		}
	}
	return ""
}

func formatGrant(g rawGrant) string {
	id := deref(g.GrantID)
	agency := deref(g.Agency)
	switch {
	case id != "" && agency != "":
		return id + " (" + agency + ")"
	case id != "":
		return id
	default:
		return agency
	}
}

func publicationDate(raw rawResult) string {
	if d := deref(raw.FirstPublicationDate); d != "" {
		return d
	}
	return deref(raw.PubYear)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
