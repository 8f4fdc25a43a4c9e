package parser

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestParse_BlankDocuments(t *testing.T) {
	// Whitespace-only input never reaches the JSON parser: it maps to an
	// empty object instead of a syntax error.
	for _, in := range []string{"", "   \n\t", "\uFEFF", "// only a comment\n", "/* nothing */"} {
		got, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", in, err)
		}
		obj, ok := got.(map[string]any)
		if !ok || len(obj) != 0 {
			t.Errorf("Parse(%q) = %#v, want empty object", in, got)
		}
	}
}

func TestParse_TrailingComma(t *testing.T) {
	got, err := Parse(`{"a":1,}`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := map[string]any{"a": float64(1)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %#v, want %#v", got, want)
	}
}

func TestParse_CommentsAndBOM(t *testing.T) {
	in := "\uFEFF{\n\t// compiler settings\n\t\"compilerOptions\": {\n\t\t\"strict\": true, /* keep */\n\t},\n}"
	got, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := map[string]any{
		"compilerOptions": map[string]any{"strict": true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %#v, want %#v", got, want)
	}
}

func TestParse_SyntaxErrorPropagates(t *testing.T) {
	for _, in := range []string{"{", `{"a":}`, "[1 2]", `{"a":1} extra`} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) expected error, got nil", in)
		}
	}
}

func TestParse_RoundTrip(t *testing.T) {
	values := []any{
		map[string]any{"files": []any{"a.ts", "b.ts"}, "n": float64(42)},
		[]any{float64(1), "two", true, nil},
		"scalar",
		float64(3.5),
		true,
	}
	for _, v := range values {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatal(err)
		}
		got, err := Parse(string(data))
		if err != nil {
			t.Fatalf("Parse(%s) error = %v", data, err)
		}
		if !reflect.DeepEqual(got, v) {
			t.Errorf("round trip of %s = %#v, want %#v", data, got, v)
		}
	}
}

func TestParseStrict_Numbers(t *testing.T) {
	got, err := ParseStrict(`{"big": 9007199254740993}`)
	if err != nil {
		t.Fatalf("ParseStrict() error = %v", err)
	}
	obj := got.(map[string]any)
	n, ok := obj["big"].(json.Number)
	if !ok {
		t.Fatalf("expected json.Number, got %T", obj["big"])
	}
	if n.String() != "9007199254740993" {
		t.Errorf("precision lost: %s", n)
	}
}
