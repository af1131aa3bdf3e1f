// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package apierr defines the failure taxonomy shared by every registry
// adapter: NotFound, Validation, Transport, and Config. Errors are
// classified once, at the point closest to their cause; outer layers
// pass an already-classified error through unchanged and only wrap
// genuinely unclassified errors into a TransportError.
package apierr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// NotFoundError reports that the registry answered with an explicit
// "no such identifier" signal (typically HTTP 404).
type NotFoundError struct {
	// Registry names the external source (e.g. "pubmed").
	Registry string

	// Identifier is the identifier that was looked up.
	Identifier string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: no match for %q (double-check the identifier)", e.Registry, e.Identifier)
}

// ValidationError reports a response that arrived but did not match the
// expected structural shape. It carries the raw payload and the parse
// diagnostics for debugging; the payload is never silently coerced.
type ValidationError struct {
	Registry string

	// Path is the JSON field path of the first violation, when known.
	Path string

	// Payload is the raw response body.
	Payload []byte

	// Err is the underlying decode diagnostic.
	Err error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: response shape mismatch at %s: %v", e.Registry, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: response shape mismatch: %v", e.Registry, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// TransportError reports any other failure reaching or reading the
// registry: timeout, non-2xx status, network failure, unreadable body.
type TransportError struct {
	Registry string

	// Endpoint is the URL that was called.
	Endpoint string

	// Params are the request parameters, for the error message.
	Params map[string]string

	// Err is the underlying cause.
	Err error
}

func (e *TransportError) Error() string {
	if len(e.Params) == 0 {
		return fmt.Sprintf("%s: request to %s failed: %v", e.Registry, e.Endpoint, e.Err)
	}
	keys := make([]string, 0, len(e.Params))
	for k := range e.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+e.Params[k])
	}
	return fmt.Sprintf("%s: request to %s (%s) failed: %v", e.Registry, e.Endpoint, strings.Join(pairs, " "), e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ConfigError reports a missing required credential or setting. It is
// raised before any network call is attempted.
type ConfigError struct {
	Registry string

	// Setting names the missing configuration value
	// (e.g. "orcid-access-token").
	Setting string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: missing required configuration %q", e.Registry, e.Setting)
}

// IsClassified reports whether err already carries one of the taxonomy
// types anywhere in its chain.
func IsClassified(err error) bool {
	var nf *NotFoundError
	var ve *ValidationError
	var te *TransportError
	var ce *ConfigError
	return errors.As(err, &nf) || errors.As(err, &ve) || errors.As(err, &te) || errors.As(err, &ce)
}

// Classify returns err unchanged when it is already classified, and
// otherwise wraps it into a TransportError for the given registry and
// endpoint. This is the outer-boundary fallback; adapters classify at
// the source.
func Classify(registry, endpoint string, params map[string]string, err error) error {
	if err == nil {
		return nil
	}
	if IsClassified(err) {
		return err
	}
	return &TransportError{Registry: registry, Endpoint: endpoint, Params: params, Err: err}
}
