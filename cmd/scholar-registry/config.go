// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/viper"

	"github.com/pdiddy/scholar-registry/pkg/types"
)

// buildConfig materializes the runtime configuration. Values come from
// the config file or SCHOLAR_REGISTRY_* environment variables via viper,
// falling back to the production defaults. Credentials additionally fall
// back to the .secrets/ directory.
func buildConfig() types.Config {
	cfg := types.DefaultConfig()

	if v := viper.GetDuration("timeout"); v > 0 {
		for _, hc := range []*types.HTTPConfig{
			&cfg.PubMed.HTTPConfig, &cfg.Reporter.HTTPConfig,
			&cfg.ORCID.HTTPConfig, &cfg.Screening.HTTPConfig,
			&cfg.Geo.HTTPConfig,
		} {
			hc.Timeout = v
		}
	}

	overrideString(&cfg.PubMed.SearchURL, "pubmed.search_url")
	overrideInt(&cfg.PubMed.MaxResults, "pubmed.max_results")
	overrideString(&cfg.Reporter.SearchURL, "reporter.search_url")
	overrideInt(&cfg.Reporter.MaxResults, "reporter.max_results")
	overrideString(&cfg.ORCID.BaseURL, "orcid.base_url")
	overrideString(&cfg.Screening.SearchURL, "screening.search_url")
	overrideString(&cfg.Geo.GeocoderURL, "geo.geocoder_url")
	overrideString(&cfg.Geo.RouterURL, "geo.router_url")
	overrideString(&cfg.HistoryPath, "history_path")

	cfg.ORCID.AccessToken = secretDefault("orcid-access-token", viper.GetString("orcid.access_token"))
	cfg.Screening.APIKey = secretDefault("trade-gov-api-key", viper.GetString("screening.api_key"))

	return cfg
}

func overrideString(dst *string, key string) {
	if v := viper.GetString(key); v != "" {
		*dst = v
	}
}

func overrideInt(dst *int, key string) {
	if v := viper.GetInt(key); v > 0 {
		*dst = v
	}
}
