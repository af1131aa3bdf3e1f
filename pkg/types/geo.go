// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CoordinatesResult is a geocoded address.
type CoordinatesResult struct {
	// MatchedAddress is the normalized address the geocoder matched.
	MatchedAddress string  `json:"matched_address" yaml:"matched_address"`
	Latitude       float64 `json:"latitude" yaml:"latitude"`
	Longitude      float64 `json:"longitude" yaml:"longitude"`
}

// DistanceResult is the driving distance between two geocoded addresses.
// Kilometers is the router's meter figure divided by 1000.
type DistanceResult struct {
	Origin      CoordinatesResult `json:"origin" yaml:"origin"`
	Destination CoordinatesResult `json:"destination" yaml:"destination"`
	Kilometers  float64           `json:"kilometers" yaml:"kilometers"`
}
