package types

import "time"

// HTTPConfig holds shared HTTP settings used by adapters that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout for one external call.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "scholar-registry/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// PubMedConfig holds settings for the publications adapter (Europe PMC
// REST API over the PubMed corpus).
type PubMedConfig struct {
	HTTPConfig `yaml:",inline"`

	// SearchURL is the Europe PMC search endpoint.
	SearchURL string `json:"search_url" yaml:"search_url"`

	// MaxResults is the default maximum number of publications returned
	// by a search (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// ReporterConfig holds settings for the grants adapter (NIH RePORTER).
type ReporterConfig struct {
	HTTPConfig `yaml:",inline"`

	// SearchURL is the project search endpoint.
	SearchURL string `json:"search_url" yaml:"search_url"`

	// MaxResults is the default maximum number of grants returned by a
	// search (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// ORCIDConfig holds settings for the researcher-profile adapter.
type ORCIDConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the ORCID public API root (e.g.
	// "https://pub.orcid.org/v3.0").
	BaseURL string `json:"base_url" yaml:"base_url"`

	// AccessToken is the mandatory public-API access token. Calls fail
	// with a configuration error when it is empty.
	AccessToken string `json:"access_token,omitempty" yaml:"access_token,omitempty"`
}

// ScreeningConfig holds settings for the consolidated screening list
// adapter.
type ScreeningConfig struct {
	HTTPConfig `yaml:",inline"`

	// SearchURL is the screening-list search endpoint.
	SearchURL string `json:"search_url" yaml:"search_url"`

	// APIKey is the mandatory trade.gov subscription key. Calls fail
	// with a configuration error when it is empty.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// GeoConfig holds settings for the geocoding and distance adapter.
type GeoConfig struct {
	HTTPConfig `yaml:",inline"`

	// GeocoderURL is the Census one-line-address geocoder endpoint.
	GeocoderURL string `json:"geocoder_url" yaml:"geocoder_url"`

	// RouterURL is the OSRM route service root.
	RouterURL string `json:"router_url" yaml:"router_url"`
}

// Config groups all adapter configurations.
type Config struct {
	PubMed    PubMedConfig    `json:"pubmed" yaml:"pubmed"`
	Reporter  ReporterConfig  `json:"reporter" yaml:"reporter"`
	ORCID     ORCIDConfig     `json:"orcid" yaml:"orcid"`
	Screening ScreeningConfig `json:"screening" yaml:"screening"`
	Geo       GeoConfig       `json:"geo" yaml:"geo"`

	// HistoryPath is the sqlite file recording tool invocations
	// (default ".scholar-registry/history.db").
	HistoryPath string `json:"history_path" yaml:"history_path"`
}

// DefaultConfig returns the production endpoints and an interactive-use
// timeout. Credentials are never defaulted; they come from .secrets/ or
// the config file.
func DefaultConfig() Config {
	httpDefaults := HTTPConfig{
		Timeout:   30 * time.Second,
		UserAgent: "scholar-registry/0.1",
	}
	return Config{
		PubMed: PubMedConfig{
			HTTPConfig: httpDefaults,
			SearchURL:  "https://www.ebi.ac.uk/europepmc/webservices/rest/search",
			MaxResults: 10,
		},
		Reporter: ReporterConfig{
			HTTPConfig: httpDefaults,
			SearchURL:  "https://api.reporter.nih.gov/v2/projects/search",
			MaxResults: 10,
		},
		ORCID: ORCIDConfig{
			HTTPConfig: httpDefaults,
			BaseURL:    "https://pub.orcid.org/v3.0",
		},
		Screening: ScreeningConfig{
			HTTPConfig: httpDefaults,
			SearchURL:  "https://data.trade.gov/consolidated_screening_list/v1/search",
		},
		Geo: GeoConfig{
			HTTPConfig:  httpDefaults,
			GeocoderURL: "https://geocoding.geo.census.gov/geocoder/locations/onelineaddress",
			RouterURL:   "https://router.project-osrm.org/route/v1/driving",
		},
		HistoryPath: ".scholar-registry/history.db",
	}
}
