// Package typed provides type-safe access to parsed configuration documents.
package typed

import (
	"encoding/json"
	"fmt"
)

// Result pairs the resolved configuration path with the typed document.
type Result[T any] struct {
	Path   string
	Config T
}

// Decode maps a parsed configuration document onto T.
// The document goes through a JSON round-trip, so T uses the usual json
// struct tags and unknown members are ignored.
func Decode[T any](config any) (T, error) {
	var out T

	data, err := json.Marshal(config)
	if err != nil {
		return out, fmt.Errorf("failed to marshal document: %w", err)
	}

	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("unmarshal to target type failed: %w", err)
	}

	return out, nil
}
