// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package orcid queries the ORCID public API and aggregates a
// researcher's person, works, educations, and employments sub-resources
// into one profile record.
package orcid

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/pdiddy/scholar-registry/internal/apierr"
	"github.com/pdiddy/scholar-registry/internal/httputil"
	"github.com/pdiddy/scholar-registry/pkg/types"
)

const registryName = "orcid"

// Client queries the researcher-profile registry.
type Client struct {
	HTTP *http.Client
	Cfg  types.ORCIDConfig
}

// New returns a Client with a timeout-configured HTTP client.
func New(cfg types.ORCIDConfig) *Client {
	return &Client{HTTP: httputil.NewClient(cfg.HTTPConfig), Cfg: cfg}
}

// Profile fetches the four sub-resources concurrently and merges them.
// The join is all-or-nothing: the first failed sub-fetch cancels the
// rest and fails the whole profile, so a partial profile is never
// returned. A missing access token fails before any network call.
func (c *Client) Profile(ctx context.Context, id string) (types.ResearcherProfile, error) {
	if id == "" {
		return types.ResearcherProfile{}, fmt.Errorf("orcid identifier is empty")
	}
	if c.Cfg.AccessToken == "" {
		return types.ResearcherProfile{}, &apierr.ConfigError{Registry: registryName, Setting: "orcid-access-token"}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		person      rawPerson
		works       rawWorks
		educations  rawAffiliations
		employments rawAffiliations
	)

	fetches := []struct {
		path string
		out  any
	}{
		{"person", &person},
		{"works", &works},
		{"educations", &educations},
		{"employments", &employments},
	}

	ch := make(chan error, len(fetches))
	var wg sync.WaitGroup
	for _, f := range fetches {
		wg.Add(1)
		go func(path string, out any) {
			defer wg.Done()
			err := c.fetch(ctx, id, path, out)
			if err != nil {
				cancel()
			}
			ch <- err
		}(f.path, f.out)
	}

	wg.Wait()
	close(ch)

	// Prefer the causal failure over cancellations it triggered.
	var firstErr error
	for err := range ch {
		if err == nil {
			continue
		}
		if firstErr == nil || (errors.Is(firstErr, context.Canceled) && !errors.Is(err, context.Canceled)) {
			firstErr = err
		}
	}
	if firstErr != nil {
		return types.ResearcherProfile{}, firstErr
	}

	return buildProfile(id, person, works, educations, employments), nil
}

func (c *Client) fetch(ctx context.Context, id, path string, out any) error {
	endpoint := fmt.Sprintf("%s/%s/%s", c.Cfg.BaseURL, id, path)
	header := http.Header{}
	header.Set("Accept", "application/json")
	header.Set("Authorization", "Bearer "+c.Cfg.AccessToken)

	return httputil.GetJSON(ctx, c.HTTP, httputil.Request{
		Registry:   registryName,
		Endpoint:   endpoint,
		Params:     map[string]string{"resource": path},
		Identifier: id,
		UserAgent:  c.Cfg.UserAgent,
		Header:     header,
	}, out)
}
