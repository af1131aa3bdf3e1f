// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package geo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/scholar-registry/internal/apierr"
	"github.com/pdiddy/scholar-registry/pkg/types"
)

const sampleGeocodeJSON = `{
  "result": {
    "addressMatches": [
      {
        "matchedAddress": "4600 SILVER HILL RD, WASHINGTON, DC, 20233",
        "coordinates": {"x": -76.92744, "y": 38.845985}
      }
    ]
  }
}`

const emptyGeocodeJSON = `{"result": {"addressMatches": []}}`

func geoTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	return &Client{
		HTTP: ts.Client(),
		Cfg: types.GeoConfig{
			HTTPConfig:  types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "scholar-registry/test"},
			GeocoderURL: ts.URL + "/geocode",
			RouterURL:   ts.URL + "/route",
		},
	}, ts
}

func TestGeocode(t *testing.T) {
	c, ts := geoTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, sampleGeocodeJSON)
	})
	defer ts.Close()

	got, err := c.Geocode(context.Background(), "4600 Silver Hill Rd, Washington DC")
	if err != nil {
		t.Fatalf("Geocode() error = %v", err)
	}
	if got.MatchedAddress != "4600 SILVER HILL RD, WASHINGTON, DC, 20233" {
		t.Errorf("MatchedAddress = %q", got.MatchedAddress)
	}
	if got.Latitude != 38.845985 || got.Longitude != -76.92744 {
		t.Errorf("coordinates = %f,%f", got.Latitude, got.Longitude)
	}
}

func TestGeocodeNoMatchIsNotFound(t *testing.T) {
	c, ts := geoTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, emptyGeocodeJSON)
	})
	defer ts.Close()

	_, err := c.Geocode(context.Background(), "nowhere at all")
	var nf *apierr.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("want NotFoundError, got %T: %v", err, err)
	}
	if nf.Identifier != "nowhere at all" {
		t.Errorf("Identifier = %q", nf.Identifier)
	}
}

func TestDistanceMetersToKilometers(t *testing.T) {
	c, ts := geoTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/route") {
			fmt.Fprint(w, `{"code": "Ok", "routes": [{"distance": 12345, "duration": 900}]}`)
			return
		}
		fmt.Fprint(w, sampleGeocodeJSON)
	})
	defer ts.Close()

	got, err := c.Distance(context.Background(), "origin addr", "destination addr")
	if err != nil {
		t.Fatalf("Distance() error = %v", err)
	}
	if got.Kilometers != 12.345 {
		t.Errorf("Kilometers = %v, want 12.345 exactly", got.Kilometers)
	}
	if got.Origin.MatchedAddress == "" || got.Destination.MatchedAddress == "" {
		t.Errorf("endpoints = %+v %+v", got.Origin, got.Destination)
	}
}

func TestDistanceNoRoute(t *testing.T) {
	c, ts := geoTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/route") {
			fmt.Fprint(w, `{"code": "NoRoute", "routes": []}`)
			return
		}
		fmt.Fprint(w, sampleGeocodeJSON)
	})
	defer ts.Close()

	_, err := c.Distance(context.Background(), "a", "b")
	var te *apierr.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("want TransportError, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "NoRoute") {
		t.Errorf("error should name the router code, got %v", err)
	}
}

func TestDistanceFailsWhenGeocodeFails(t *testing.T) {
	c, ts := geoTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, emptyGeocodeJSON)
	})
	defer ts.Close()

	_, err := c.Distance(context.Background(), "a", "b")
	var nf *apierr.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("want NotFoundError from failed geocode, got %T: %v", err, err)
	}
}
