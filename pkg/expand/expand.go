// Package expand interprets the file-selection members of a parsed
// configuration document: `files`, `include`, and `exclude`. Expansion is
// purely mechanical glob matching; no semantic validation happens here.
package expand

import (
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Selection holds the raw file-selection members of a document.
type Selection struct {
	Files   []string
	Include []string
	Exclude []string
}

// FromConfig extracts the selection members from a parsed document.
// Non-object documents and non-string list entries yield an empty selection;
// shape errors are a concern for the caller's schema layer, not this one.
func FromConfig(config any) Selection {
	obj, ok := config.(map[string]any)
	if !ok {
		return Selection{}
	}
	return Selection{
		Files:   toStrings(obj["files"]),
		Include: toStrings(obj["include"]),
		Exclude: toStrings(obj["exclude"]),
	}
}

// Files returns the files selected by the document, relative to rootDir,
// slash-separated. Entries listed in `files` are always kept, in order;
// `include` patterns are expanded with doublestar and filtered through
// `exclude`, then appended sorted. Explicit `files` entries are exempt from
// `exclude`, matching the usual tsconfig precedence.
func Files(rootDir string, config any) ([]string, error) {
	sel := FromConfig(config)

	seen := make(map[string]struct{})
	var out []string
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	for _, f := range sel.Files {
		add(f)
	}

	if len(sel.Include) == 0 {
		return out, nil
	}

	fsys := os.DirFS(rootDir)
	var matched []string
	for _, pattern := range sel.Include {
		names, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid include pattern %q: %w", pattern, err)
		}
		for _, name := range names {
			info, err := fs.Stat(fsys, name)
			if err != nil || info.IsDir() {
				continue
			}
			excluded, err := matchesAny(sel.Exclude, name)
			if err != nil {
				return nil, err
			}
			if !excluded {
				matched = append(matched, name)
			}
		}
	}

	sort.Strings(matched)
	for _, name := range matched {
		add(name)
	}
	return out, nil
}

// matchesAny reports whether name matches any pattern, either directly or as
// a descendant of a matched directory (an exclude of "dist" covers
// "dist/a.js").
func matchesAny(patterns []string, name string) (bool, error) {
	for _, p := range patterns {
		ok, err := doublestar.Match(p, name)
		if err != nil {
			return false, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
		if ok {
			return true, nil
		}
		ok, err = doublestar.Match(p+"/**", name)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func toStrings(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
