// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"encoding/json"
	"fmt"
)

// Params holds decoded tool parameters. Values arrive from JSON (the
// call subcommand) or YAML (param files), so numbers may be float64 or
// int and lists may be []any; the getters absorb both.
type Params map[string]any

// ParseParams decodes a JSON object into Params. An empty string is an
// empty parameter set.
func ParseParams(raw string) (Params, error) {
	if raw == "" {
		return Params{}, nil
	}
	var p Params
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("parsing tool parameters: %w", err)
	}
	return p, nil
}

// String returns the string value for key, or "".
func (p Params) String(key string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return ""
}

// Int returns the integer value for key, or 0.
func (p Params) Int(key string) int {
	switch v := p[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// Strings returns the string-list value for key. A bare string counts
// as a one-element list.
func (p Params) Strings(key string) []string {
	switch v := p[key].(type) {
	case []string:
		return v
	case []any:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	}
	return nil
}
