// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed queries the Europe PMC REST API over the PubMed corpus
// and normalizes results into unified publication records.
package pubmed

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/scholar-registry/internal/httputil"
	"github.com/pdiddy/scholar-registry/pkg/types"
)

const registryName = "pubmed"

// Client queries the publications registry.
type Client struct {
	HTTP *http.Client
	Cfg  types.PubMedConfig
}

// New returns a Client with a timeout-configured HTTP client.
func New(cfg types.PubMedConfig) *Client {
	return &Client{HTTP: httputil.NewClient(cfg.HTTPConfig), Cfg: cfg}
}

// SearchByIdentifier queries publications by an author identifier or
// free-text term and returns normalized records in registry order.
// Entries missing a title or abstract are dropped.
func (c *Client) SearchByIdentifier(ctx context.Context, identifier string, maxResults int) ([]types.PublicationRecord, error) {
	if identifier == "" {
		return nil, fmt.Errorf("identifier is empty")
	}
	if maxResults <= 0 {
		maxResults = c.Cfg.MaxResults
	}
	if maxResults <= 0 {
		maxResults = 10
	}

	params := url.Values{
		"query":      {buildQuery(identifier)},
		"resultType": {"core"},
		"format":     {"json"},
		"pageSize":   {fmt.Sprintf("%d", maxResults)},
	}
	endpoint := c.Cfg.SearchURL + "?" + params.Encode()

	var sr searchResponse
	err := httputil.GetJSON(ctx, c.HTTP, httputil.Request{
		Registry:   registryName,
		Endpoint:   endpoint,
		Params:     map[string]string{"query": identifier},
		Identifier: identifier,
		UserAgent:  c.Cfg.UserAgent,
	}, &sr)
	if err != nil {
		return nil, err
	}

	var records []types.PublicationRecord
	if sr.ResultList != nil {
		for _, raw := range sr.ResultList.Result {
			if rec, ok := normalizeResult(raw); ok {
				records = append(records, rec)
			}
		}
	}
	return records, nil
}

// Detail returns the record at index within the ordered results for
// identifier. An index outside the result list is an error.
func (c *Client) Detail(ctx context.Context, identifier string, index int) (types.PublicationRecord, error) {
	records, err := c.SearchByIdentifier(ctx, identifier, 0)
	if err != nil {
		return types.PublicationRecord{}, err
	}
	if index < 0 || index >= len(records) {
		return types.PublicationRecord{}, fmt.Errorf("index %d out of range: %d publications for %q", index, len(records), identifier)
	}
	return records[index], nil
}

// buildQuery maps an identifier onto a Europe PMC query. Identifiers
// shaped like an ORCID (0000-0002-1825-0097) search the AUTHORID field;
// anything else searches as free text.
func buildQuery(identifier string) string {
	if looksLikeORCID(identifier) {
		return fmt.Sprintf(`AUTHORID:%q`, identifier)
	}
	return identifier
}

func looksLikeORCID(s string) bool {
	if len(s) != 19 {
		return false
	}
	for i, r := range s {
		if i == 4 || i == 9 || i == 14 {
			if r != '-' {
				return false
			}
			continue
		}
		// Final character may be the X checksum digit.
		if r >= '0' && r <= '9' {
			continue
		}
		if i == 18 && (r == 'X' || r == 'x') {
			continue
		}
		return false
	}
	return true
}
