// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package screening queries the trade.gov Consolidated Screening List.
// The registry's shape is already close to what the harness needs, so
// entries are typed pass-throughs with no normalization beyond typing
// and a per-source count breakdown.
package screening

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/scholar-registry/internal/apierr"
	"github.com/pdiddy/scholar-registry/internal/httputil"
	"github.com/pdiddy/scholar-registry/pkg/types"
)

const registryName = "screening"

// Query holds the screening search filters. At least one must be set.
type Query struct {
	Name      string
	Countries []string
	City      string
	State     string
}

// IsEmpty reports whether the query contains no filters.
func (q Query) IsEmpty() bool {
	return q.Name == "" && len(q.Countries) == 0 && q.City == "" && q.State == ""
}

// Client queries the screening registry.
type Client struct {
	HTTP *http.Client
	Cfg  types.ScreeningConfig
}

// New returns a Client with a timeout-configured HTTP client.
func New(cfg types.ScreeningConfig) *Client {
	return &Client{HTTP: httputil.NewClient(cfg.HTTPConfig), Cfg: cfg}
}

// Search queries the consolidated screening list. A missing
// subscription key fails before any network call.
func (c *Client) Search(ctx context.Context, q Query) (types.ScreeningResult, error) {
	if q.IsEmpty() {
		return types.ScreeningResult{}, fmt.Errorf("screening query is empty: provide a name, country, city, or state")
	}
	if c.Cfg.APIKey == "" {
		return types.ScreeningResult{}, &apierr.ConfigError{Registry: registryName, Setting: "trade-gov-api-key"}
	}

	params := url.Values{}
	if q.Name != "" {
		params.Set("name", q.Name)
	}
	if len(q.Countries) > 0 {
		params.Set("countries", strings.Join(q.Countries, ","))
	}
	if q.City != "" {
		params.Set("city", q.City)
	}
	if q.State != "" {
		params.Set("state", q.State)
	}
	endpoint := c.Cfg.SearchURL + "?" + params.Encode()

	header := http.Header{}
	header.Set("subscription-key", c.Cfg.APIKey)

	var sr searchResponse
	err := httputil.GetJSON(ctx, c.HTTP, httputil.Request{
		Registry:   registryName,
		Endpoint:   endpoint,
		Params:     map[string]string{"name": q.Name},
		Identifier: q.Name,
		UserAgent:  c.Cfg.UserAgent,
		Header:     header,
	}, &sr)
	if err != nil {
		return types.ScreeningResult{}, err
	}

	return normalize(sr), nil
}

func normalize(sr searchResponse) types.ScreeningResult {
	out := types.ScreeningResult{}
	if sr.Total != nil {
		out.Total = *sr.Total
	}

	for _, r := range sr.Results {
		e := types.ScreeningEntity{
			Name:      deref(r.Name),
			AltNames:  r.AltNames,
			Source:    deref(r.Source),
			SourceURL: deref(r.SourceListURL),
			Programs:  r.Programs,
			Remarks:   deref(r.Remarks),
		}
		for _, a := range r.Addresses {
			e.Addresses = append(e.Addresses, types.ScreeningAddress{
				Address:    deref(a.Address),
				City:       deref(a.City),
				State:      deref(a.State),
				PostalCode: deref(a.PostalCode),
				Country:    deref(a.Country),
			})
		}
		for _, id := range r.IDs {
			e.IDs = append(e.IDs, types.ScreeningID{
				Type:    deref(id.Type),
				Number:  deref(id.Number),
				Country: deref(id.Country),
			})
		}
		out.Entities = append(out.Entities, e)
	}

	if len(out.Entities) > 0 {
		counts := make(map[string]int)
		for _, e := range out.Entities {
			if e.Source != "" {
				counts[e.Source]++
			}
		}
		if len(counts) > 0 {
			out.SourceCounts = counts
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

// Raw trade.gov shapes; every field optional or nullable.

type searchResponse struct {
	Total   *int        `json:"total"`
	Results []rawEntity `json:"results"`
}

type rawEntity struct {
	Name          *string      `json:"name"`
	AltNames      []string     `json:"alt_names"`
	Addresses     []rawAddress `json:"addresses"`
	Source        *string      `json:"source"`
	SourceListURL *string      `json:"source_list_url"`
	Programs      []string     `json:"programs"`
	IDs           []rawID      `json:"ids"`
	Remarks       *string      `json:"remarks"`
}

type rawAddress struct {
	Address    *string `json:"address"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	PostalCode *string `json:"postal_code"`
	Country    *string `json:"country"`
}

type rawID struct {
	Type    *string `json:"type"`
	Number  *string `json:"number"`
	Country *string `json:"country"`
}
