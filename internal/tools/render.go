// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// Render serializes a result for the calling harness: indented JSON
// with struct field order preserved, no truncation. Empty record lists
// render as a plain sentence rather than "null".
func Render(result any) (string, error) {
	if result == nil {
		return "No results found.", nil
	}
	if isEmptySlice(result) {
		return "No results found.", nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(result); err != nil {
		return "", fmt.Errorf("rendering result: %w", err)
	}
	return buf.String(), nil
}

// isEmptySlice reports whether v is a slice with no elements. A nil
// record slice would otherwise render as "null".
func isEmptySlice(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Slice && rv.Len() == 0
}
