// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package apierr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundErrorMessage(t *testing.T) {
	err := &NotFoundError{Registry: "pubmed", Identifier: "0000-0002-1825-0097"}
	assert.Contains(t, err.Error(), "pubmed")
	assert.Contains(t, err.Error(), "0000-0002-1825-0097")
	assert.Contains(t, err.Error(), "double-check")
}

func TestTransportErrorParamsSorted(t *testing.T) {
	err := &TransportError{
		Registry: "reporter",
		Endpoint: "https://api.example/v2/search",
		Params:   map[string]string{"b": "2", "a": "1"},
		Err:      errors.New("boom"),
	}
	msg := err.Error()
	assert.Contains(t, msg, "a=1 b=2")
	assert.Contains(t, msg, "boom")
}

func TestClassifyWrapsUnclassified(t *testing.T) {
	cause := errors.New("connection reset")
	err := Classify("orcid", "https://pub.orcid.org/v3.0/x/person", nil, cause)

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "orcid", te.Registry)
	assert.ErrorIs(t, err, cause)
}

func TestClassifyPassesThroughClassified(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"not found", &NotFoundError{Registry: "pubmed", Identifier: "x"}},
		{"validation", &ValidationError{Registry: "pubmed", Err: errors.New("bad shape")}},
		{"transport", &TransportError{Registry: "pubmed", Endpoint: "e", Err: errors.New("x")}},
		{"config", &ConfigError{Registry: "orcid", Setting: "orcid-access-token"}},
		{"wrapped not found", fmt.Errorf("outer: %w", &NotFoundError{Registry: "pubmed", Identifier: "x"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify("other", "endpoint", nil, tt.err)
			assert.Equal(t, tt.err, got, "classified error must pass through unchanged")
		})
	}
}

func TestClassifyNil(t *testing.T) {
	assert.NoError(t, Classify("pubmed", "e", nil, nil))
}

func TestIsClassified(t *testing.T) {
	assert.False(t, IsClassified(errors.New("plain")))
	assert.True(t, IsClassified(&ConfigError{Registry: "screening", Setting: "trade-gov-api-key"}))
	assert.True(t, IsClassified(fmt.Errorf("wrap: %w", &ValidationError{Registry: "geo", Err: errors.New("x")})))
}
