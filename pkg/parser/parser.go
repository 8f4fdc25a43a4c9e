// Package parser converts tsconfig-style text into a strict JSON value.
package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/tsconf/pkg/sanitize"
)

// Parse runs the full pipeline on contents: byte-order mark stripping,
// comment stripping, trailing-comma removal, then a strict JSON parse.
// A blank document (empty or whitespace-only after sanitation) yields an
// empty object without invoking the JSON parser; the file format explicitly
// allows a fully empty file.
func Parse(contents string) (any, error) {
	return parse(contents, false)
}

// ParseStrict is Parse with numbers decoded as json.Number instead of
// float64, preserving precision of large integers.
func ParseStrict(contents string) (any, error) {
	return parse(contents, true)
}

func parse(contents string, strict bool) (any, error) {
	text := sanitize.StripBOM(contents)
	text = sanitize.StripComments(text)
	text = sanitize.RemoveTrailingCommas(text)

	if sanitize.IsBlank(text) {
		return map[string]any{}, nil
	}

	var v any
	decoder := json.NewDecoder(strings.NewReader(text))
	if strict {
		decoder.UseNumber()
	}
	if err := decoder.Decode(&v); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, fmt.Errorf("invalid json: trailing data after top-level value")
	}
	return v, nil
}
