// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tools exposes the registry operations as named tool calls for
// the orchestration harness: a tool table, parameter decoding, and text
// rendering of results. Every call returns text; failures come back as
// a single-line "Error: …" string, never as an escaped error.
package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/scholar-registry/internal/geo"
	"github.com/pdiddy/scholar-registry/internal/orcid"
	"github.com/pdiddy/scholar-registry/internal/pubmed"
	"github.com/pdiddy/scholar-registry/internal/reporter"
	"github.com/pdiddy/scholar-registry/internal/screening"
	"github.com/pdiddy/scholar-registry/pkg/types"
)

// Deps holds one client per registry. Tests substitute clients wired to
// httptest servers.
type Deps struct {
	PubMed    *pubmed.Client
	Reporter  *reporter.Client
	ORCID     *orcid.Client
	Screening *screening.Client
	Geo       *geo.Client
}

// NewDeps builds production clients from cfg.
func NewDeps(cfg types.Config) Deps {
	return Deps{
		PubMed:    pubmed.New(cfg.PubMed),
		Reporter:  reporter.New(cfg.Reporter),
		ORCID:     orcid.New(cfg.ORCID),
		Screening: screening.New(cfg.Screening),
		Geo:       geo.New(cfg.Geo),
	}
}

// Tool is one callable operation.
type Tool struct {
	Name        string
	Description string
	ParamHint   string
	Run         func(ctx context.Context, deps Deps, p Params) (any, error)
}

// registry lists every tool, in the order shown to the user.
var registry = []Tool{
	{
		Name:        "search_publications_by_identifier",
		Description: "Search publications by an author identifier or term",
		ParamHint:   `{"identifier": "...", "max_results": 10}`,
		Run: func(ctx context.Context, deps Deps, p Params) (any, error) {
			return deps.PubMed.SearchByIdentifier(ctx, p.String("identifier"), p.Int("max_results"))
		},
	},
	{
		Name:        "get_publication_detail",
		Description: "Fetch one publication by search index",
		ParamHint:   `{"identifier": "...", "index": 0}`,
		Run: func(ctx context.Context, deps Deps, p Params) (any, error) {
			return deps.PubMed.Detail(ctx, p.String("identifier"), p.Int("index"))
		},
	},
	{
		Name:        "search_grants_by_investigator",
		Description: "Search grants by principal investigator name",
		ParamHint:   `{"name": "...", "max_results": 10}`,
		Run: func(ctx context.Context, deps Deps, p Params) (any, error) {
			return deps.Reporter.SearchByInvestigator(ctx, p.String("name"), p.Int("max_results"))
		},
	},
	{
		Name:        "search_grants_by_organization",
		Description: "Search grants by recipient organization name",
		ParamHint:   `{"name": "...", "max_results": 10}`,
		Run: func(ctx context.Context, deps Deps, p Params) (any, error) {
			return deps.Reporter.SearchByOrganization(ctx, p.String("name"), p.Int("max_results"))
		},
	},
	{
		Name:        "get_grant_by_number",
		Description: "Fetch one grant by project number",
		ParamHint:   `{"project_number": "..."}`,
		Run: func(ctx context.Context, deps Deps, p Params) (any, error) {
			return deps.Reporter.GetByNumber(ctx, p.String("project_number"))
		},
	},
	{
		Name:        "get_researcher_profile",
		Description: "Aggregate a researcher profile from an ORCID iD",
		ParamHint:   `{"identifier": "0000-0002-1825-0097"}`,
		Run: func(ctx context.Context, deps Deps, p Params) (any, error) {
			return deps.ORCID.Profile(ctx, p.String("identifier"))
		},
	},
	{
		Name:        "geocode_address",
		Description: "Geocode a one-line street address",
		ParamHint:   `{"address": "..."}`,
		Run: func(ctx context.Context, deps Deps, p Params) (any, error) {
			return deps.Geo.Geocode(ctx, p.String("address"))
		},
	},
	{
		Name:        "compute_distance",
		Description: "Driving distance in kilometers between two addresses",
		ParamHint:   `{"origin": "...", "destination": "..."}`,
		Run: func(ctx context.Context, deps Deps, p Params) (any, error) {
			return deps.Geo.Distance(ctx, p.String("origin"), p.String("destination"))
		},
	},
	{
		Name:        "search_screening_list",
		Description: "Search the consolidated export screening list",
		ParamHint:   `{"name": "...", "countries": ["CN"], "city": "...", "state": "..."}`,
		Run: func(ctx context.Context, deps Deps, p Params) (any, error) {
			return deps.Screening.Search(ctx, screening.Query{
				Name:      p.String("name"),
				Countries: p.Strings("countries"),
				City:      p.String("city"),
				State:     p.String("state"),
			})
		},
	},
}

// All returns the tool table.
func All() []Tool {
	return registry
}

// Lookup returns the tool with the given name.
func Lookup(name string) (Tool, bool) {
	for _, t := range registry {
		if t.Name == name {
			return t, true
		}
	}
	return Tool{}, false
}

// Call runs the named tool and renders its result as text. Every
// failure, including an unknown tool name, comes back as a single-line
// "Error: …" string.
func Call(ctx context.Context, deps Deps, name string, p Params) string {
	tool, ok := Lookup(name)
	if !ok {
		return fmt.Sprintf("Error: unknown tool %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	result, err := tool.Run(ctx, deps, p)
	if err != nil {
		return "Error: " + err.Error()
	}
	text, err := Render(result)
	if err != nil {
		return "Error: " + err.Error()
	}
	return text
}

// Names returns every tool name, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, t := range registry {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names
}
