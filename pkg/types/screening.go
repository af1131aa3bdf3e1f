// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ScreeningResult holds export-screening matches. The registry's own
// shape is close to what the harness needs, so entries are typed
// pass-throughs with no further normalization.
type ScreeningResult struct {
	Total        int                `json:"total" yaml:"total"`
	Entities     []ScreeningEntity  `json:"entities,omitempty" yaml:"entities,omitempty"`
	SourceCounts map[string]int     `json:"source_counts,omitempty" yaml:"source_counts,omitempty"`
}

// ScreeningEntity is one screening-list match.
type ScreeningEntity struct {
	Name      string              `json:"name" yaml:"name"`
	AltNames  []string            `json:"alt_names,omitempty" yaml:"alt_names,omitempty"`
	Addresses []ScreeningAddress  `json:"addresses,omitempty" yaml:"addresses,omitempty"`
	Source    string              `json:"source,omitempty" yaml:"source,omitempty"`
	SourceURL string              `json:"source_url,omitempty" yaml:"source_url,omitempty"`
	Programs  []string            `json:"programs,omitempty" yaml:"programs,omitempty"`
	IDs       []ScreeningID       `json:"ids,omitempty" yaml:"ids,omitempty"`
	Remarks   string              `json:"remarks,omitempty" yaml:"remarks,omitempty"`
}

// ScreeningAddress is one address attached to a screening entity.
type ScreeningAddress struct {
	Address    string `json:"address,omitempty" yaml:"address,omitempty"`
	City       string `json:"city,omitempty" yaml:"city,omitempty"`
	State      string `json:"state,omitempty" yaml:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty" yaml:"postal_code,omitempty"`
	Country    string `json:"country,omitempty" yaml:"country,omitempty"`
}

// ScreeningID is one identifier attached to a screening entity.
type ScreeningID struct {
	Type    string `json:"type,omitempty" yaml:"type,omitempty"`
	Number  string `json:"number,omitempty" yaml:"number,omitempty"`
	Country string `json:"country,omitempty" yaml:"country,omitempty"`
}
