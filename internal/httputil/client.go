// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the HTTP helper shared by every registry
// adapter: one request, an explicit timeout, and failure classification
// into the apierr taxonomy. There is no retry logic in this layer; a
// failed request surfaces immediately and the caller decides whether to
// try again.
package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/scholar-registry/internal/apierr"
	"github.com/pdiddy/scholar-registry/pkg/types"
)

// NewClient returns an http.Client with the configured request timeout.
func NewClient(cfg types.HTTPConfig) *http.Client {
	return &http.Client{Timeout: cfg.Timeout}
}

// Request describes one call to a registry endpoint. Params and
// Identifier only feed error reporting: Params end up in a
// TransportError message, Identifier in a NotFoundError.
type Request struct {
	Registry   string
	Endpoint   string
	Params     map[string]string
	Identifier string
	UserAgent  string
	Header     http.Header
}

// GetJSON performs a GET and decodes the JSON response into out.
// HTTP 404 classifies as NotFound, any other non-2xx status or network
// failure as Transport, and a shape mismatch between the body and out
// as Validation (carrying the raw payload and the field path).
func GetJSON(ctx context.Context, client *http.Client, r Request, out any) error {
	body, err := do(ctx, client, r, http.MethodGet, nil, "")
	if err != nil {
		return err
	}
	return DecodeJSON(r.Registry, body, out)
}

// PostJSON performs a POST with a JSON body and decodes the JSON
// response into out. Classification matches GetJSON.
func PostJSON(ctx context.Context, client *http.Client, r Request, payload, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return &apierr.TransportError{Registry: r.Registry, Endpoint: r.Endpoint, Params: r.Params,
			Err: fmt.Errorf("encoding request body: %w", err)}
	}
	body, err := do(ctx, client, r, http.MethodPost, bytes.NewReader(data), "application/json")
	if err != nil {
		return err
	}
	return DecodeJSON(r.Registry, body, out)
}

// GetXML performs a GET and decodes the XML response into out. A body
// that does not decode classifies as Validation with the raw payload
// attached.
func GetXML(ctx context.Context, client *http.Client, r Request, out any) error {
	body, err := do(ctx, client, r, http.MethodGet, nil, "")
	if err != nil {
		return err
	}
	if err := xml.Unmarshal(body, out); err != nil {
		return &apierr.ValidationError{Registry: r.Registry, Payload: body, Err: err}
	}
	return nil
}

func do(ctx context.Context, client *http.Client, r Request, method string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, r.Endpoint, body)
	if err != nil {
		return nil, &apierr.TransportError{Registry: r.Registry, Endpoint: r.Endpoint, Params: r.Params,
			Err: fmt.Errorf("creating request: %w", err)}
	}
	if r.UserAgent != "" {
		req.Header.Set("User-Agent", r.UserAgent)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, vs := range r.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &apierr.TransportError{Registry: r.Registry, Endpoint: r.Endpoint, Params: r.Params, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		io.Copy(io.Discard, resp.Body)
		return nil, &apierr.NotFoundError{Registry: r.Registry, Identifier: r.Identifier}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, &apierr.TransportError{Registry: r.Registry, Endpoint: r.Endpoint, Params: r.Params,
			Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apierr.TransportError{Registry: r.Registry, Endpoint: r.Endpoint, Params: r.Params,
			Err: fmt.Errorf("reading response body: %w", err)}
	}
	return data, nil
}

// DecodeJSON unmarshals data into out. A type mismatch (the structural
// shape violation) becomes a ValidationError carrying the payload and
// the offending field path; malformed JSON that never parsed is a
// TransportError, matching any other unreadable response.
func DecodeJSON(registry string, data []byte, out any) error {
	err := json.Unmarshal(data, out)
	if err == nil {
		return nil
	}
	if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
		return &apierr.ValidationError{Registry: registry, Path: typeErr.Field, Payload: data, Err: err}
	}
	return &apierr.TransportError{Registry: registry, Err: fmt.Errorf("parsing response: %w", err)}
}
