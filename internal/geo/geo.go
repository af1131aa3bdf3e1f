// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package geo geocodes street addresses through the Census geocoder and
// computes driving distances through an OSRM route service. The only
// normalization is unit conversion: the router reports meters, the
// result carries kilometers.
package geo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/scholar-registry/internal/apierr"
	"github.com/pdiddy/scholar-registry/internal/httputil"
	"github.com/pdiddy/scholar-registry/pkg/types"
)

const registryName = "geo"

// Client queries the geocoder and the route service.
type Client struct {
	HTTP *http.Client
	Cfg  types.GeoConfig
}

// New returns a Client with a timeout-configured HTTP client.
func New(cfg types.GeoConfig) *Client {
	return &Client{HTTP: httputil.NewClient(cfg.HTTPConfig), Cfg: cfg}
}

// Geocode resolves a one-line address to coordinates. An address the
// geocoder cannot match classifies as NotFound.
func (c *Client) Geocode(ctx context.Context, address string) (types.CoordinatesResult, error) {
	if address == "" {
		return types.CoordinatesResult{}, fmt.Errorf("address is empty")
	}

	params := url.Values{
		"address":   {address},
		"benchmark": {"Public_AR_Current"},
		"format":    {"json"},
	}
	endpoint := c.Cfg.GeocoderURL + "?" + params.Encode()

	var gr geocodeResponse
	err := httputil.GetJSON(ctx, c.HTTP, httputil.Request{
		Registry:   registryName,
		Endpoint:   endpoint,
		Params:     map[string]string{"address": address},
		Identifier: address,
		UserAgent:  c.Cfg.UserAgent,
	}, &gr)
	if err != nil {
		return types.CoordinatesResult{}, err
	}

	if gr.Result == nil || len(gr.Result.AddressMatches) == 0 {
		return types.CoordinatesResult{}, &apierr.NotFoundError{Registry: registryName, Identifier: address}
	}

	m := gr.Result.AddressMatches[0]
	out := types.CoordinatesResult{}
	if m.MatchedAddress != nil {
		out.MatchedAddress = *m.MatchedAddress
	}
	if m.Coordinates != nil {
		if m.Coordinates.Y != nil {
			out.Latitude = *m.Coordinates.Y
		}
		if m.Coordinates.X != nil {
			out.Longitude = *m.Coordinates.X
		}
	}
	return out, nil
}

// Distance geocodes both addresses and returns the driving distance
// between them. The router's meter figure is divided by 1000.
func (c *Client) Distance(ctx context.Context, origin, destination string) (types.DistanceResult, error) {
	from, err := c.Geocode(ctx, origin)
	if err != nil {
		return types.DistanceResult{}, err
	}
	to, err := c.Geocode(ctx, destination)
	if err != nil {
		return types.DistanceResult{}, err
	}

	endpoint := fmt.Sprintf("%s/%f,%f;%f,%f?overview=false",
		c.Cfg.RouterURL, from.Longitude, from.Latitude, to.Longitude, to.Latitude)

	var rr routeResponse
	err = httputil.GetJSON(ctx, c.HTTP, httputil.Request{
		Registry:  registryName,
		Endpoint:  endpoint,
		Params:    map[string]string{"origin": origin, "destination": destination},
		UserAgent: c.Cfg.UserAgent,
	}, &rr)
	if err != nil {
		return types.DistanceResult{}, err
	}

	if deref(rr.Code) != "Ok" || len(rr.Routes) == 0 || rr.Routes[0].Distance == nil {
		return types.DistanceResult{}, &apierr.TransportError{
			Registry: registryName,
			Endpoint: endpoint,
			Params:   map[string]string{"origin": origin, "destination": destination},
			Err:      fmt.Errorf("router returned no route (code %q)", deref(rr.Code)),
		}
	}

	return types.DistanceResult{
		Origin:      from,
		Destination: to,
		Kilometers:  *rr.Routes[0].Distance / 1000,
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Census geocoder shapes.

type geocodeResponse struct {
	Result *geocodeResult `json:"result"`
}

type geocodeResult struct {
	AddressMatches []addressMatch `json:"addressMatches"`
}

type addressMatch struct {
	MatchedAddress *string      `json:"matchedAddress"`
	Coordinates    *coordinates `json:"coordinates"`
}

type coordinates struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

// OSRM route shapes.

type routeResponse struct {
	Code   *string    `json:"code"`
	Routes []rawRoute `json:"routes"`
}

type rawRoute struct {
	Distance *float64 `json:"distance"`
	Duration *float64 `json:"duration"`
}
