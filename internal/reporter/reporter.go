// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reporter queries the NIH RePORTER project API and normalizes
// funded projects into unified grant records.
package reporter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pdiddy/scholar-registry/internal/apierr"
	"github.com/pdiddy/scholar-registry/internal/httputil"
	"github.com/pdiddy/scholar-registry/pkg/types"
)

const registryName = "reporter"

// Client queries the grants registry.
type Client struct {
	HTTP *http.Client
	Cfg  types.ReporterConfig
}

// New returns a Client with a timeout-configured HTTP client.
func New(cfg types.ReporterConfig) *Client {
	return &Client{HTTP: httputil.NewClient(cfg.HTTPConfig), Cfg: cfg}
}

// SearchByInvestigator returns grants whose principal investigators
// match name, in registry order.
func (c *Client) SearchByInvestigator(ctx context.Context, name string, maxResults int) ([]types.GrantRecord, error) {
	if name == "" {
		return nil, fmt.Errorf("investigator name is empty")
	}
	criteria := searchCriteria{PINames: []piName{{AnyName: name}}}
	return c.search(ctx, criteria, name, maxResults)
}

// SearchByOrganization returns grants awarded to organizations matching
// name, in registry order.
func (c *Client) SearchByOrganization(ctx context.Context, name string, maxResults int) ([]types.GrantRecord, error) {
	if name == "" {
		return nil, fmt.Errorf("organization name is empty")
	}
	criteria := searchCriteria{OrgNames: []string{name}}
	return c.search(ctx, criteria, name, maxResults)
}

// GetByNumber returns the grant with the given project number. A number
// the registry does not know classifies as NotFound.
func (c *Client) GetByNumber(ctx context.Context, projectNumber string) (types.GrantRecord, error) {
	if projectNumber == "" {
		return types.GrantRecord{}, fmt.Errorf("project number is empty")
	}
	criteria := searchCriteria{ProjectNums: []string{projectNumber}}
	records, err := c.search(ctx, criteria, projectNumber, 1)
	if err != nil {
		return types.GrantRecord{}, err
	}
	if len(records) == 0 {
		return types.GrantRecord{}, &apierr.NotFoundError{Registry: registryName, Identifier: projectNumber}
	}
	return records[0], nil
}

func (c *Client) search(ctx context.Context, criteria searchCriteria, identifier string, maxResults int) ([]types.GrantRecord, error) {
	if maxResults <= 0 {
		maxResults = c.Cfg.MaxResults
	}
	if maxResults <= 0 {
		maxResults = 10
	}

	req := searchRequest{Criteria: criteria, Limit: maxResults}

	var sr searchResponse
	err := httputil.PostJSON(ctx, c.HTTP, httputil.Request{
		Registry:   registryName,
		Endpoint:   c.Cfg.SearchURL,
		Params:     map[string]string{"query": identifier},
		Identifier: identifier,
		UserAgent:  c.Cfg.UserAgent,
	}, req, &sr)
	if err != nil {
		return nil, err
	}

	var records []types.GrantRecord
	for _, raw := range sr.Results {
		if rec, ok := normalizeProject(raw); ok {
			records = append(records, rec)
		}
	}
	return records, nil
}
