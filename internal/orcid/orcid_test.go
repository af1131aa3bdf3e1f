// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package orcid

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pdiddy/scholar-registry/internal/apierr"
	"github.com/pdiddy/scholar-registry/pkg/types"
)

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool    { return &b }
func val(s string) *value     { return &value{Value: &s} }

// --- sortedEmails ---

func TestSortedEmails(t *testing.T) {
	emails := []rawEmail{
		{Email: strptr("b@example.org"), Primary: boolptr(false), Verified: boolptr(true)},
		{Email: strptr("a@example.org"), Primary: boolptr(true), Verified: boolptr(false)},
		{Email: strptr("c@example.org"), Primary: boolptr(false), Verified: boolptr(false)},
	}
	got := sortedEmails(emails)
	want := []string{"a@example.org", "b@example.org", "c@example.org"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sortedEmails() = %v, want %v", got, want)
	}
}

func TestSortedEmailsStableWithinTies(t *testing.T) {
	emails := []rawEmail{
		{Email: strptr("first@example.org"), Primary: boolptr(false), Verified: boolptr(true)},
		{Email: strptr("second@example.org"), Primary: boolptr(false), Verified: boolptr(true)},
		{Email: strptr("third@example.org"), Primary: boolptr(false), Verified: boolptr(true)},
	}
	got := sortedEmails(emails)
	want := []string{"first@example.org", "second@example.org", "third@example.org"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sortedEmails() = %v, want %v", got, want)
	}
}

// --- reconstructDate ---

func TestReconstructDate(t *testing.T) {
	tests := []struct {
		name string
		date *rawDate
		want string
	}{
		{"full date", &rawDate{Year: val("2008"), Month: val("02"), Day: val("05")}, "2008-02-05"},
		{"month and day default to 1", &rawDate{Year: val("2008")}, "2008-01-01"},
		{"day defaults to 1", &rawDate{Year: val("2008"), Month: val("11")}, "2008-11-01"},
		{"missing year yields no date", &rawDate{Month: val("02"), Day: val("05")}, ""},
		{"null year value", &rawDate{Year: &value{}}, ""},
		{"nil date", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reconstructDate(tt.date); got != tt.want {
				t.Errorf("reconstructDate() = %q, want %q", got, tt.want)
			}
		})
	}
}

// --- mergeWorkGroup ---

func TestMergeWorkGroupFirstNonAbsentWins(t *testing.T) {
	g := rawWorkGroup{WorkSummary: []rawWorkSummary{
		{
			// First summary: no journal, no DOI.
			Title:  &rawWorkTitle{Title: val("Toward a Unified Theory of High-Energy Metaphysics")},
			Source: &rawSource{SourceName: val("Crossref")},
		},
		{
			Title:           &rawWorkTitle{Title: val("A later retitle that must not win")},
			PublicationDate: &rawDate{Year: val("2008"), Month: val("02")},
			JournalTitle:    val("Journal of Psychoceramics"),
			ExternalIDs: &rawWorkExternalIDs{ExternalID: []rawExternalID{
				{Type: strptr("wosuid"), Value: strptr("WOS:000001")},
				{Type: strptr("DOI"), Value: strptr("10.5555/12345678")},
			}},
			Source: &rawSource{SourceName: val("Scopus - Elsevier")},
		},
		{
			Source: &rawSource{SourceName: val("Crossref")},
		},
	}}

	w, ok := mergeWorkGroup(g)
	if !ok {
		t.Fatal("non-empty group must emit a work")
	}
	if w.Title != "Toward a Unified Theory of High-Energy Metaphysics" {
		t.Errorf("Title = %q", w.Title)
	}
	if w.Date != "2008-02-01" {
		t.Errorf("Date = %q", w.Date)
	}
	if w.Journal != "Journal of Psychoceramics" {
		t.Errorf("Journal = %q", w.Journal)
	}
	if w.DOI != "10.5555/12345678" {
		t.Errorf("DOI = %q (type match must be case-insensitive)", w.DOI)
	}
	// All sources joined in order, duplicates kept.
	if w.Sources != "Crossref, Scopus - Elsevier, Crossref" {
		t.Errorf("Sources = %q", w.Sources)
	}
}

func TestMergeWorkGroupEmpty(t *testing.T) {
	if _, ok := mergeWorkGroup(rawWorkGroup{}); ok {
		t.Error("empty group must not emit a work")
	}
}

// --- descriptionSections / externalLinks ---

func TestDescriptionSections(t *testing.T) {
	person := rawPerson{
		Biography: &rawBiography{Content: strptr("Josiah Carberry studies psychoceramics.")},
		Keywords: &rawKeywords{Keyword: []rawKeyword{
			{Content: strptr("psychoceramics")},
			{Content: strptr("ionian philology")},
		}},
	}
	got := descriptionSections(person)
	want := []string{
		"Josiah Carberry studies psychoceramics.",
		"Keywords: psychoceramics, ionian philology",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("descriptionSections() = %v, want %v", got, want)
	}

	if got := descriptionSections(rawPerson{}); got != nil {
		t.Errorf("empty person must yield no sections, got %v", got)
	}
}

// --- Profile aggregation against a mock server ---

const personJSON = `{
  "name": {
    "given-names": {"value": "Josiah"},
    "family-name": {"value": "Carberry"},
    "credit-name": {"value": "J. S. Carberry"}
  },
  "biography": {"content": "Professor of psychoceramics."},
  "emails": {"email": [
    {"email": "jc@example.org", "primary": false, "verified": true},
    {"email": "josiah@example.org", "primary": true, "verified": true}
  ]},
  "external-identifiers": {"external-identifier": [
    {
      "external-id-type": "Scopus Author ID",
      "external-id-value": "7007156898",
      "external-id-url": {"value": "https://www.scopus.com/authid/detail.uri?authorId=7007156898"},
      "source": {"source-name": {"value": "Scopus - Elsevier"}}
    }
  ]},
  "researcher-urls": {"researcher-url": [
    {
      "url-name": "Faculty page",
      "url": {"value": "https://example.edu/carberry"},
      "source": {"source-name": {"value": "Josiah Carberry"}}
    }
  ]},
  "keywords": {"keyword": [{"content": "psychoceramics"}]}
}`

const worksJSON = `{
  "group": [
    {
      "work-summary": [
        {
          "title": {"title": {"value": "Cracked pots through the ages"}},
          "publication-date": {"year": {"value": "2012"}, "month": null, "day": null},
          "journal-title": null,
          "external-ids": {"external-id": [{"external-id-type": "doi", "external-id-value": "10.5555/666655554444"}]},
          "source": {"source-name": {"value": "Crossref"}}
        },
        {
          "title": {"title": {"value": "Cracked pots through the ages"}},
          "journal-title": {"value": "Journal of Psychoceramics"},
          "source": {"source-name": {"value": "Scopus - Elsevier"}}
        }
      ]
    }
  ]
}`

const educationsJSON = `{
  "affiliation-group": [
    {
      "summaries": [
        {
          "education-summary": {
            "organization": {"name": "Brown University", "address": {"city": "Providence", "region": "RI", "country": "US"}},
            "department-name": "Psychoceramics",
            "role-title": "PhD",
            "start-date": {"year": {"value": "1930"}},
            "end-date": {"year": {"value": "1934"}, "month": {"value": "06"}},
            "source": {"source-name": {"value": "Josiah Carberry"}}
          }
        }
      ]
    }
  ]
}`

const employmentsJSON = `{
  "affiliation-group": [
    {
      "summaries": [
        {
          "employment-summary": {
            "organization": {"name": "Wesleyan University", "address": {"city": "Middletown", "region": "CT", "country": "US"}},
            "role-title": "Professor",
            "start-date": {"year": {"value": "1935"}},
            "source": {"source-name": {"value": "Wesleyan University"}}
          }
        }
      ]
    }
  ]
}`

// orcidTestServer serves the four sub-resources; failPath (when not
// empty) answers HTTP 500 instead.
func orcidTestServer(t *testing.T, failPath string, hits *int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	serve := func(suffix, body string) {
		mux.HandleFunc("/0000-0002-1825-0097/"+suffix, func(w http.ResponseWriter, r *http.Request) {
			if hits != nil {
				atomic.AddInt32(hits, 1)
			}
			if suffix == failPath {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, body)
		})
	}
	serve("person", personJSON)
	serve("works", worksJSON)
	serve("educations", educationsJSON)
	serve("employments", employmentsJSON)
	return httptest.NewServer(mux)
}

func orcidTestClient(ts *httptest.Server) *Client {
	return &Client{
		HTTP: ts.Client(),
		Cfg: types.ORCIDConfig{
			HTTPConfig:  types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "scholar-registry/test"},
			BaseURL:     ts.URL,
			AccessToken: "test-token",
		},
	}
}

func TestProfileAggregation(t *testing.T) {
	ts := orcidTestServer(t, "", nil)
	defer ts.Close()

	p, err := orcidTestClient(ts).Profile(context.Background(), "0000-0002-1825-0097")
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}

	if p.ORCID != "0000-0002-1825-0097" || p.GivenName != "Josiah" || p.FamilyName != "Carberry" || p.CreditName != "J. S. Carberry" {
		t.Errorf("identity = %+v", p)
	}
	wantEmails := []string{"josiah@example.org", "jc@example.org"}
	if !reflect.DeepEqual(p.Emails, wantEmails) {
		t.Errorf("Emails = %v, want %v", p.Emails, wantEmails)
	}
	if len(p.Description) != 2 || p.Description[1] != "Keywords: psychoceramics" {
		t.Errorf("Description = %v", p.Description)
	}
	if len(p.ExternalLinks) != 2 {
		t.Fatalf("ExternalLinks = %+v", p.ExternalLinks)
	}
	if p.ExternalLinks[0].Name != "Scopus Author ID" || p.ExternalLinks[0].Source != "Scopus - Elsevier" {
		t.Errorf("external identifier link = %+v", p.ExternalLinks[0])
	}
	if p.ExternalLinks[1].Name != "Faculty page" || p.ExternalLinks[1].URL != "https://example.edu/carberry" {
		t.Errorf("researcher url link = %+v", p.ExternalLinks[1])
	}

	if len(p.Educations) != 1 {
		t.Fatalf("Educations = %+v", p.Educations)
	}
	edu := p.Educations[0]
	if edu.Organization != "Brown University" || edu.StartDate != "1930-01-01" || edu.EndDate != "1934-06-01" {
		t.Errorf("education = %+v", edu)
	}
	if len(p.Employments) != 1 || p.Employments[0].Role != "Professor" {
		t.Errorf("Employments = %+v", p.Employments)
	}

	if len(p.Works) != 1 {
		t.Fatalf("Works = %+v", p.Works)
	}
	w := p.Works[0]
	if w.Title != "Cracked pots through the ages" || w.Date != "2012-01-01" || w.Journal != "Journal of Psychoceramics" {
		t.Errorf("work = %+v", w)
	}
	if w.DOI != "10.5555/666655554444" || w.Sources != "Crossref, Scopus - Elsevier" {
		t.Errorf("work doi/sources = %q %q", w.DOI, w.Sources)
	}
}

func TestProfileAllOrNothing(t *testing.T) {
	for _, failPath := range []string{"person", "works", "educations", "employments"} {
		t.Run(failPath, func(t *testing.T) {
			ts := orcidTestServer(t, failPath, nil)
			defer ts.Close()

			p, err := orcidTestClient(ts).Profile(context.Background(), "0000-0002-1825-0097")
			if err == nil {
				t.Fatal("Profile() must fail when a sub-fetch fails")
			}
			var te *apierr.TransportError
			if !errors.As(err, &te) {
				t.Errorf("want TransportError, got %T: %v", err, err)
			}
			// No partial profile may leak.
			if !reflect.DeepEqual(p, types.ResearcherProfile{}) {
				t.Errorf("partial profile leaked: %+v", p)
			}
		})
	}
}

func TestProfileNotFoundPassesThrough(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	_, err := orcidTestClient(ts).Profile(context.Background(), "0000-0002-1825-0097")
	var nf *apierr.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("want NotFoundError, got %T: %v", err, err)
	}
}

func TestProfileMissingTokenIsConfigError(t *testing.T) {
	var hits int32
	ts := orcidTestServer(t, "", &hits)
	defer ts.Close()

	c := orcidTestClient(ts)
	c.Cfg.AccessToken = ""

	_, err := c.Profile(context.Background(), "0000-0002-1825-0097")
	var ce *apierr.ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("want ConfigError, got %T: %v", err, err)
	}
	if ce.Setting != "orcid-access-token" {
		t.Errorf("Setting = %q", ce.Setting)
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Errorf("no network call may happen without a token, got %d hits", hits)
	}
}

func TestProfileSendsAuthHeader(t *testing.T) {
	mux := http.NewServeMux()
	var sawAuth atomic.Bool
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Bearer test-token" && r.Header.Get("Accept") == "application/json" {
			sawAuth.Store(true)
		}
		fmt.Fprint(w, `{}`)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	_, err := orcidTestClient(ts).Profile(context.Background(), "0000-0002-1825-0097")
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}
	if !sawAuth.Load() {
		t.Error("requests must carry the bearer token and JSON accept header")
	}
}
